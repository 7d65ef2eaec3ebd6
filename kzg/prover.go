package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/log"
	"github.com/arnaucube/sumfold/poly"
)

// Proof is a multilinear KZG opening: a commitment to f, its claimed value
// at the opening point, and one quotient commitment per variable.
type Proof struct {
	Commitment          bn254.G1Affine
	Value               field.F
	QuotientCommitments []bn254.G1Affine
}

// GenerateProof commits f and opens it at openings (one field element per
// variable, in variable order). Dividing out variable j leaves a quotient
// over the remaining (n-j) variables; it is blown up with n-j variables
// (the yet-to-be-processed suffix) on the Left-padded with j variables
// (the j already-divided-out variables, which the quotient is provably
// independent of, including the one just eliminated) so every quotient
// commits against the same n-variable basis as f itself.
func GenerateProof(setup *TrustedSetup, f *poly.Multilinear, openings []field.F) (*Proof, error) {
	n := f.NumVars()
	if len(openings) != n || setup.NumVars != n {
		return nil, ErrLengthMismatch
	}

	commitment, err := commit(setup.EncryptedLagrangeBasis, f)
	if err != nil {
		log.Errorw(err, "kzg: failed to commit polynomial")
		return nil, err
	}

	assignments := make([]poly.Assignment, n)
	for i, a := range openings {
		assignments[i] = poly.Bound(a)
	}
	vML, err := f.Evaluate(assignments)
	if err != nil {
		return nil, err
	}
	v := vML.Scalar()

	cur := f.Minus(v)
	quotientCommitments := make([]bn254.G1Affine, n)
	for j := 1; j <= n; j++ {
		a := openings[j-1]
		q, r, err := cur.QuotientRemainder(a, 0)
		if err != nil {
			return nil, err
		}
		blown := q.BlowUp(poly.Left, j)
		qc, err := commit(setup.EncryptedLagrangeBasis, blown)
		if err != nil {
			log.Errorw(err, "kzg: failed to commit quotient")
			return nil, err
		}
		quotientCommitments[j-1] = qc
		cur = r
	}

	return &Proof{
		Commitment:          commitment,
		Value:               v,
		QuotientCommitments: quotientCommitments,
	}, nil
}
