package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/log"
)

// VerifyProof checks the pairing identity
//
//	e(C - g1^v, g2^1) =? prod_j e(q_j, g2^{tau_j} - g2^{a_j})
//
// by folding it into a single multi-pairing-equals-one check:
// e(C-g1^v, g2^1) * prod_j e(q_j, g2^{a_j}-g2^{tau_j}) == 1.
func VerifyProof(proof *Proof, openings []field.F, encryptedTaus []bn254.G2Affine) bool {
	n := len(openings)
	if len(encryptedTaus) != n || len(proof.QuotientCommitments) != n {
		return false
	}

	_, _, g1Gen, g2Gen := bn254.Generators()

	var vG1 bn254.G1Affine
	vG1.ScalarMultiplication(&g1Gen, field.ToBigInt(proof.Value))
	var cMinusV bn254.G1Affine
	cMinusV.Sub(&proof.Commitment, &vG1)

	g1s := make([]bn254.G1Affine, n+1)
	g2s := make([]bn254.G2Affine, n+1)
	g1s[0] = cMinusV
	g2s[0] = g2Gen

	for j := 0; j < n; j++ {
		var ajG2 bn254.G2Affine
		ajG2.ScalarMultiplication(&g2Gen, field.ToBigInt(openings[j]))
		var diff bn254.G2Affine
		diff.Sub(&ajG2, &encryptedTaus[j])

		g1s[j+1] = proof.QuotientCommitments[j]
		g2s[j+1] = diff
	}

	ok, err := bn254.PairingCheck(g1s, g2s)
	if err != nil {
		log.Errorw(err, "kzg: pairing check errored")
		return false
	}
	return ok
}
