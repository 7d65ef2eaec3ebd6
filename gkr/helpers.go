// Package gkr implements the GKR protocol over a fan-in-2 arithmetic
// circuit: a prover that evaluates the circuit and runs one sum-check per
// layer with an alpha/beta random-linear fold carrying claims from one
// layer to the next, and a verifier that mirrors every step. The input
// layer's claim is closed either by the verifier reading the input
// directly, or by a multilinear KZG opening when the input must stay
// hidden from the verifier.
package gkr

import (
	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/poly"
)

// fixPrefix partially evaluates m's first len(values) variables, in order,
// at the given values.
func fixPrefix(m *poly.Multilinear, values []field.F) (*poly.Multilinear, error) {
	cur := m
	for _, v := range values {
		next, err := cur.PartiallyEvaluate(0, v)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// evalFull evaluates a 0-free-variable-after-binding multilinear fully at
// point, returning its scalar value.
func evalFull(m *poly.Multilinear, point []field.F) (field.F, error) {
	assignments := make([]poly.Assignment, len(point))
	for i, v := range point {
		assignments[i] = poly.Bound(v)
	}
	out, err := m.Evaluate(assignments)
	if err != nil {
		return field.F{}, err
	}
	return out.Scalar(), nil
}

// fold combines mRb and mRc (the same selector fixed at rb and at rc
// respectively) into alpha*mRb + beta*mRc.
func fold(mRb, mRc *poly.Multilinear, alpha, beta field.F) (*poly.Multilinear, error) {
	return mRb.ScalarMul(alpha).Add(mRc.ScalarMul(beta))
}

func split(vals []field.F) (rb, rc []field.F) {
	half := len(vals) / 2
	return vals[:half], vals[half:]
}
