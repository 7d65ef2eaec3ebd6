package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/arnaucube/sumfold/field"
)

// TrustedSetup is the consumed output of an (external, not reproduced here)
// MPC ceremony: an encrypted Lagrange basis in G1 and an encrypted tau
// vector in G2, both fixed for a given variable count.
type TrustedSetup struct {
	EncryptedLagrangeBasis []bn254.G1Affine // length 2^n
	EncryptedTaus          []bn254.G2Affine // length n
	NumVars                int
}

// LagrangeBasis returns the n-variable Lagrange basis evaluated at taus: for
// hypercube vertex i, L_i(taus) = product over variable j of (taus[j] if
// bit j of i is set, else 1-taus[j]), using the same MSB-first bit
// convention as every other component (variable j sits at bit position
// n-1-j).
func LagrangeBasis(taus []field.F) []field.F {
	n := len(taus)
	size := 1 << uint(n)
	out := make([]field.F, size)
	for i := 0; i < size; i++ {
		acc := field.One()
		for j := 0; j < n; j++ {
			p := n - 1 - j
			if (i>>uint(p))&1 == 1 {
				acc = field.Mul(acc, taus[j])
			} else {
				acc = field.Mul(acc, field.Sub(field.One(), taus[j]))
			}
		}
		out[i] = acc
	}
	return out
}

// NewTrustedSetup encrypts the Lagrange basis at taus into G1 and taus
// themselves into G2. taus must never be used or retained after this call:
// this is the one place the secret values are handled in cleartext.
func NewTrustedSetup(taus []field.F) (*TrustedSetup, error) {
	n := len(taus)
	if n == 0 {
		return nil, ErrLengthMismatch
	}

	_, _, g1Gen, g2Gen := bn254.Generators()

	basis := LagrangeBasis(taus)
	encBasis := make([]bn254.G1Affine, len(basis))
	for i, l := range basis {
		encBasis[i].ScalarMultiplication(&g1Gen, field.ToBigInt(l))
	}

	encTaus := make([]bn254.G2Affine, n)
	for j, t := range taus {
		encTaus[j].ScalarMultiplication(&g2Gen, field.ToBigInt(t))
	}

	return &TrustedSetup{
		EncryptedLagrangeBasis: encBasis,
		EncryptedTaus:          encTaus,
		NumVars:                n,
	}, nil
}
