package poly

import "github.com/arnaucube/sumfold/field"

// SumPoly is an ordered sequence of Products sharing the same variable
// count, implicitly summed together. This is the shape sum-check's prover
// consumes: GKR reduces a layer's check to a SumPoly of two terms, each a
// Product of two factors (the mul or add selector, and the tensor product
// or tensor sum of the next layer's W polynomial with itself).
type SumPoly struct {
	Terms []*Product
}

// NewSumPoly validates that every term shares NumVars and wraps them.
func NewSumPoly(terms []*Product) (*SumPoly, error) {
	if len(terms) == 0 {
		return nil, ErrInvalidShape
	}
	n := terms[0].NumVars()
	for _, t := range terms {
		if t.NumVars() != n {
			return nil, ErrInvalidShape
		}
	}
	out := make([]*Product, len(terms))
	copy(out, terms)
	return &SumPoly{Terms: out}, nil
}

// NumVars returns the shared variable count of every term.
func (s *SumPoly) NumVars() int { return s.Terms[0].NumVars() }

// Degree returns the maximum degree across terms, i.e. the degree of the
// sum-check round polynomial this SumPoly produces.
func (s *SumPoly) Degree() int {
	d := 0
	for _, t := range s.Terms {
		if t.Degree() > d {
			d = t.Degree()
		}
	}
	return d
}

// EvaluateAt returns the sum of every term's evaluation at hypercube index i.
func (s *SumPoly) EvaluateAt(i int) field.F {
	acc := field.Zero()
	for _, t := range s.Terms {
		acc = field.Add(acc, t.EvaluateAt(i))
	}
	return acc
}

// EvaluationSum sums EvaluateAt over the whole hypercube.
func (s *SumPoly) EvaluationSum() field.F {
	acc := field.Zero()
	n := 1 << uint(s.NumVars())
	for i := 0; i < n; i++ {
		acc = field.Add(acc, s.EvaluateAt(i))
	}
	return acc
}

// PartiallyEvaluate fixes variable varIndex to r in every term.
func (s *SumPoly) PartiallyEvaluate(varIndex int, r field.F) (*SumPoly, error) {
	out := make([]*Product, len(s.Terms))
	for i, t := range s.Terms {
		next, err := t.PartiallyEvaluate(varIndex, r)
		if err != nil {
			return nil, err
		}
		out[i] = next
	}
	return &SumPoly{Terms: out}, nil
}
