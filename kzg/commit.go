package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/poly"
)

// commit computes Sum_i basis[i]*f.evals[i] in G1, yielding g1^{f(tau)} when
// basis is the encrypted Lagrange basis at tau. len(basis) must equal
// f.Len().
func commit(basis []bn254.G1Affine, f *poly.Multilinear) (bn254.G1Affine, error) {
	evals := f.Evals()
	if len(evals) != len(basis) {
		return bn254.G1Affine{}, ErrLengthMismatch
	}

	var acc bn254.G1Jac
	acc.FromAffine(&basis[0])
	acc.ScalarMultiplication(&acc, field.ToBigInt(evals[0]))

	for i := 1; i < len(evals); i++ {
		var term bn254.G1Jac
		term.FromAffine(&basis[i])
		term.ScalarMultiplication(&term, field.ToBigInt(evals[i]))
		acc.AddAssign(&term)
	}

	var result bn254.G1Affine
	result.FromJacobian(&acc)
	return result, nil
}

// Commit commits f against setup's encrypted Lagrange basis.
func Commit(setup *TrustedSetup, f *poly.Multilinear) (bn254.G1Affine, error) {
	if f.NumVars() != setup.NumVars {
		return bn254.G1Affine{}, ErrLengthMismatch
	}
	return commit(setup.EncryptedLagrangeBasis, f)
}
