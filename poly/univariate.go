package poly

import "github.com/arnaucube/sumfold/field"

// Univariate is a dense-coefficient univariate polynomial: Coeffs[i] is the
// coefficient of x^i. This is the representation sum-check round polynomials
// are built in, as opposed to Multilinear's evaluation form.
type Univariate struct {
	Coeffs []field.F
}

// NewUnivariate wraps a coefficient slice, lowest degree first.
func NewUnivariate(coeffs []field.F) *Univariate {
	out := make([]field.F, len(coeffs))
	copy(out, coeffs)
	return &Univariate{Coeffs: out}
}

// Degree returns the formal degree (len(Coeffs)-1); a zero-length
// polynomial has degree -1.
func (u *Univariate) Degree() int {
	return len(u.Coeffs) - 1
}

// Evaluate evaluates u at x via Horner's method.
func (u *Univariate) Evaluate(x field.F) field.F {
	acc := field.Zero()
	for i := len(u.Coeffs) - 1; i >= 0; i-- {
		acc = field.Add(field.Mul(acc, x), u.Coeffs[i])
	}
	return acc
}

// Add returns u+other, coefficient-wise, padding the shorter with zeros.
func (u *Univariate) Add(other *Univariate) *Univariate {
	n := len(u.Coeffs)
	if len(other.Coeffs) > n {
		n = len(other.Coeffs)
	}
	out := make([]field.F, n)
	for i := 0; i < n; i++ {
		var a, b field.F
		if i < len(u.Coeffs) {
			a = u.Coeffs[i]
		} else {
			a = field.Zero()
		}
		if i < len(other.Coeffs) {
			b = other.Coeffs[i]
		} else {
			b = field.Zero()
		}
		out[i] = field.Add(a, b)
	}
	return &Univariate{Coeffs: out}
}

// Mul returns the full convolution product u*other.
func (u *Univariate) Mul(other *Univariate) *Univariate {
	if len(u.Coeffs) == 0 || len(other.Coeffs) == 0 {
		return &Univariate{}
	}
	out := make([]field.F, len(u.Coeffs)+len(other.Coeffs)-1)
	for i := range out {
		out[i] = field.Zero()
	}
	for i, a := range u.Coeffs {
		if field.IsZero(a) {
			continue
		}
		for j, b := range other.Coeffs {
			out[i+j] = field.Add(out[i+j], field.Mul(a, b))
		}
	}
	return &Univariate{Coeffs: out}
}

// ScalarMul returns u scaled by s.
func (u *Univariate) ScalarMul(s field.F) *Univariate {
	out := make([]field.F, len(u.Coeffs))
	for i, c := range u.Coeffs {
		out[i] = field.Mul(c, s)
	}
	return &Univariate{Coeffs: out}
}

// EvaluateSumOverBooleanHypercube returns u(0)+u(1), the quantity a
// sum-check round polynomial is checked against.
func (u *Univariate) EvaluateSumOverBooleanHypercube() field.F {
	return field.Add(u.Evaluate(field.Zero()), u.Evaluate(field.One()))
}

// ToBytes returns the canonical little-endian concatenation of every
// coefficient, for transcript absorption.
func (u *Univariate) ToBytes() []byte {
	out := make([]byte, 0, len(u.Coeffs)*field.NumBytes)
	for _, c := range u.Coeffs {
		out = append(out, field.ToBytesLE(c)...)
	}
	return out
}

// Interpolate returns the unique lowest-degree polynomial passing through
// (xs[i], ys[i]) for all i, via Lagrange interpolation. Fails with
// ErrDuplicateX if any two x-coordinates coincide, and with
// ErrLengthMismatch if len(xs) != len(ys).
func Interpolate(xs, ys []field.F) (*Univariate, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if field.Equal(xs[i], xs[j]) {
				return nil, ErrDuplicateX
			}
		}
	}
	result := &Univariate{Coeffs: []field.F{field.Zero()}}
	for i := range xs {
		// basis_i(x) = prod_{j!=i} (x - xs[j]) / (xs[i] - xs[j])
		basis := &Univariate{Coeffs: []field.F{field.One()}}
		denom := field.One()
		for j := range xs {
			if j == i {
				continue
			}
			basis = basis.Mul(&Univariate{Coeffs: []field.F{field.Neg(xs[j]), field.One()}})
			denom = field.Mul(denom, field.Sub(xs[i], xs[j]))
		}
		scaled := basis.ScalarMul(field.Mul(ys[i], field.Inverse(denom)))
		result = result.Add(scaled)
	}
	return result, nil
}
