// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 scales a sample in [-1, 1] to 16-bit PCM.
// Out of range samples are clipped and NaN becomes silence.
func Float32ToInt16(x float32) int16 {
	if x != x {
		return 0
	}

	// 32767 for the positive peak keeps 1.0 from overflowing
	return int16(Clamp(x, -1, 1) * 32767.0)
}

// Float32ToInt16Slice converts src into dst, which must be at least as long.
func Float32ToInt16Slice(dst []int16, src []float32) {
	for i, x := range src {
		dst[i] = Float32ToInt16(x)
	}
}
