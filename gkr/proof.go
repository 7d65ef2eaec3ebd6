package gkr

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/kzg"
	"github.com/arnaucube/sumfold/poly"
	"github.com/arnaucube/sumfold/sumcheck"
)

// WEval is the pair of claimed values (W(rb), W(rc)) a layer's sum-check
// folds into one claim via the verifier's alpha/beta challenge.
type WEval struct {
	U, V field.F
}

// Proof is a GKR proof over a plain (verifier-known) input layer: the
// output wire polynomial, one sum-check transcript per circuit layer, and
// the (u,v) pair closing every layer's fold except the last, whose claim is
// closed by the verifier evaluating the input directly.
type Proof struct {
	OutputPoly     *poly.Multilinear
	WPolysEvals    []WEval
	SumcheckProofs []*sumcheck.Proof
}

// KZGProof is a GKR proof over a hidden input layer: identical to Proof
// except the final layer's claim is closed by two multilinear KZG openings
// of a committed input polynomial instead of a direct evaluation.
type KZGProof struct {
	Commitment     bn254.G1Affine
	OutputPoly     *poly.Multilinear
	WPolysEvals    []WEval
	SumcheckProofs []*sumcheck.Proof
	OpenRb         *kzg.Proof
	OpenRc         *kzg.Proof
}
