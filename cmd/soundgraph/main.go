// SPDX-License-Identifier: EPL-2.0

// Package main is the entry point of the soundgraph command.
package main

import "github.com/ik5/soundgraph/internal/cli"

func main() {
	cli.Execute()
}
