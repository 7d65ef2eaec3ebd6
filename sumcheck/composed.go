// Package sumcheck implements the sum-check protocol: a prover that reduces
// a multivariate sum claim to a single point-evaluation claim round by
// round, and a verifier that checks the round polynomials and (optionally)
// the final oracle evaluation. GKR drives this package directly: it calls
// the partial-verify / generate-for-partial-verify entry points so its own
// per-layer transcript keeps running across sum-check instances.
package sumcheck

import (
	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/poly"
)

// Composed is anything sum-check can run over: a raw multilinear (degree 1
// per variable) or a sum-of-products polynomial (degree = its factor
// count). Both reduce to the same round-by-round algorithm: the degree only
// changes how many sample points a round polynomial needs.
type Composed interface {
	NumVars() int
	Degree() int
	PartiallyEvaluate(varIndex int, r field.F) (Composed, error)
	EvaluationSum() field.F
	// EvaluateFull evaluates the original polynomial at a fully-bound
	// point, one field element per variable. Used by the full verifier's
	// oracle check.
	EvaluateFull(point []field.F) (field.F, error)
}

type mlComposed struct{ m *poly.Multilinear }

// FromMultilinear wraps a raw multilinear as a degree-1 Composed input.
func FromMultilinear(m *poly.Multilinear) Composed { return mlComposed{m} }

func (c mlComposed) NumVars() int { return c.m.NumVars() }
func (c mlComposed) Degree() int  { return 1 }

func (c mlComposed) PartiallyEvaluate(varIndex int, r field.F) (Composed, error) {
	next, err := c.m.PartiallyEvaluate(varIndex, r)
	if err != nil {
		return nil, err
	}
	return mlComposed{next}, nil
}

func (c mlComposed) EvaluationSum() field.F { return c.m.EvaluationSum() }

func (c mlComposed) EvaluateFull(point []field.F) (field.F, error) {
	assignments := make([]poly.Assignment, len(point))
	for i, v := range point {
		assignments[i] = poly.Bound(v)
	}
	out, err := c.m.Evaluate(assignments)
	if err != nil {
		return field.F{}, err
	}
	return out.Scalar(), nil
}

type sumPolyComposed struct{ s *poly.SumPoly }

// FromSumPoly wraps a sum-of-products polynomial as a Composed input.
func FromSumPoly(s *poly.SumPoly) Composed { return sumPolyComposed{s} }

func (c sumPolyComposed) NumVars() int { return c.s.NumVars() }
func (c sumPolyComposed) Degree() int  { return c.s.Degree() }

func (c sumPolyComposed) PartiallyEvaluate(varIndex int, r field.F) (Composed, error) {
	next, err := c.s.PartiallyEvaluate(varIndex, r)
	if err != nil {
		return nil, err
	}
	return sumPolyComposed{next}, nil
}

func (c sumPolyComposed) EvaluationSum() field.F { return c.s.EvaluationSum() }

func (c sumPolyComposed) EvaluateFull(point []field.F) (field.F, error) {
	cur := c.s
	for _, r := range point {
		next, err := cur.PartiallyEvaluate(0, r)
		if err != nil {
			return field.F{}, err
		}
		cur = next
	}
	return cur.EvaluateAt(0), nil
}
