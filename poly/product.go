package poly

import "github.com/arnaucube/sumfold/field"

// Product is an ordered sequence of multilinears sharing the same variable
// count, implicitly multiplied together. Its degree (as a polynomial in any
// single variable) equals the number of factors.
type Product struct {
	Factors []*Multilinear
}

// NewProduct validates that every factor shares NumVars and wraps them.
func NewProduct(factors []*Multilinear) (*Product, error) {
	if len(factors) == 0 {
		return nil, ErrInvalidShape
	}
	n := factors[0].NumVars()
	for _, f := range factors {
		if f.NumVars() != n {
			return nil, ErrInvalidShape
		}
	}
	out := make([]*Multilinear, len(factors))
	copy(out, factors)
	return &Product{Factors: out}, nil
}

// NumVars returns the shared variable count of every factor.
func (p *Product) NumVars() int { return p.Factors[0].NumVars() }

// Degree returns the number of factors, i.e. this product's degree as a
// polynomial in any one variable.
func (p *Product) Degree() int { return len(p.Factors) }

// EvaluateAt returns the pointwise product of every factor's evaluation at
// hypercube index i.
func (p *Product) EvaluateAt(i int) field.F {
	acc := field.One()
	for _, f := range p.Factors {
		acc = field.Mul(acc, f.Evals()[i])
	}
	return acc
}

// PartiallyEvaluate fixes variable varIndex to r in every factor, returning
// a new Product over the remaining variables.
func (p *Product) PartiallyEvaluate(varIndex int, r field.F) (*Product, error) {
	out := make([]*Multilinear, len(p.Factors))
	for i, f := range p.Factors {
		next, err := f.PartiallyEvaluate(varIndex, r)
		if err != nil {
			return nil, err
		}
		out[i] = next
	}
	return &Product{Factors: out}, nil
}
