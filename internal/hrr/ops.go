package hrr

import (
	"fmt"
	"math/cmplx"
)

// Convolve computes the circular convolution of a and b:
//
//	c[k] = Σ_i a[i] * b[(k−i) mod n]
//
// The binding operation of HRR. Commutative and associative, so multiple
// bindings compose by repeated convolution or by superposition of bound
// pairs. Computed in the frequency domain as an element-wise product.
func Convolve(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("convolve: %w (%d vs %d)", ErrDimensionMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return nil, fmt.Errorf("convolve: %w (got 0)", ErrInvalidDimension)
	}

	freqA := forwardDFT(a)
	freqB := forwardDFT(b)
	for i := range freqA {
		freqA[i] *= freqB[i]
	}
	return inverseDFT(freqA), nil
}

// ConvolveDirect computes the same circular convolution by direct O(n²)
// summation. Semantically equivalent to Convolve; kept for cross-checking
// and as the reference definition.
func ConvolveDirect(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("convolve: %w (%d vs %d)", ErrDimensionMismatch, len(a), len(b))
	}
	n := len(a)
	if n == 0 {
		return nil, fmt.Errorf("convolve: %w (got 0)", ErrInvalidDimension)
	}
	c := make(Vector, n)
	for k := 0; k < n; k++ {
		var sum float64
		for i := 0; i < n; i++ {
			j := k - i
			if j < 0 {
				j += n
			}
			sum += a[i] * b[j]
		}
		c[k] = sum
	}
	return c, nil
}

// Correlate computes the circular correlation of c with a:
//
//	d[k] = Σ_i c[i] * a[(i−k) mod n]
//
// The unbinding operation: given c = Convolve(a, b), Correlate(c, a)
// approximates b, with noise growing with the number of superposed bindings
// in c and shrinking with dimensionality. Implemented as convolution with the
// involution of a.
func Correlate(c, a Vector) (Vector, error) {
	if len(c) != len(a) {
		return nil, fmt.Errorf("correlate: %w (%d vs %d)", ErrDimensionMismatch, len(c), len(a))
	}
	return Convolve(c, Involution(a))
}

// Involution returns the approximate inverse of a under circular convolution:
// the first component stays in place and the remainder is reversed, so
// Involution(a)[k] = a[(n−k) mod n].
func Involution(a Vector) Vector {
	n := len(a)
	inv := make(Vector, n)
	if n == 0 {
		return inv
	}
	inv[0] = a[0]
	for k := 1; k < n; k++ {
		inv[k] = a[n-k]
	}
	return inv
}

// Exponentiate raises a vector to a real power under circular convolution by
// exponentiating its frequency components. Exponentiate(a, 2) equals
// Convolve(a, a) up to floating-point error; fractional powers interpolate
// between bindings.
func Exponentiate(a Vector, power float64) (Vector, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("exponentiate: %w (got 0)", ErrInvalidDimension)
	}
	freq := forwardDFT(a)
	p := complex(power, 0)
	for i := range freq {
		freq[i] = cmplx.Pow(freq[i], p)
	}
	return inverseDFT(freq), nil
}
