package hrr

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// Discrete Fourier transforms used by the frequency-domain kernels in ops.go.
// Power-of-two lengths take the iterative radix-2 path; every other length
// falls back to the direct O(n²) DFT, which is fine at demonstration sizes.

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// forwardDFT transforms a real vector into the frequency domain.
func forwardDFT(v Vector) []complex128 {
	freq := make([]complex128, len(v))
	for i, val := range v {
		freq[i] = complex(val, 0)
	}
	if isPowerOfTwo(len(v)) {
		fftInPlace(freq, false)
		return freq
	}
	return naiveDFT(freq, false)
}

// inverseDFT transforms frequency components back, keeping the real parts.
func inverseDFT(freq []complex128) Vector {
	n := len(freq)
	var out []complex128
	if isPowerOfTwo(n) {
		out = make([]complex128, n)
		copy(out, freq)
		fftInPlace(out, true)
	} else {
		out = naiveDFT(freq, true)
	}
	v := make(Vector, n)
	scale := 1 / float64(n)
	for i, c := range out {
		v[i] = real(c) * scale
	}
	return v
}

// fftInPlace is an iterative radix-2 Cooley-Tukey transform. len(data) must
// be a power of two. inverse selects the conjugate transform (unscaled).
func fftInPlace(data []complex128, inverse bool) {
	n := len(data)
	if n < 2 {
		return
	}

	// Bit-reversal permutation.
	shift := 64 - uint(bits.Len(uint(n-1)))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
	}

	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := sign * 2 * math.Pi / float64(size)
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				w := cmplx.Rect(1, step*float64(k))
				even := data[start+k]
				odd := data[start+k+half] * w
				data[start+k] = even + odd
				data[start+k+half] = even - odd
			}
		}
	}
}

// naiveDFT evaluates the transform definition directly (unscaled).
func naiveDFT(data []complex128, inverse bool) []complex128 {
	n := len(data)
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for i := 0; i < n; i++ {
			angle := sign * 2 * math.Pi * float64(k) * float64(i) / float64(n)
			sum += data[i] * cmplx.Rect(1, angle)
		}
		out[k] = sum
	}
	return out
}
