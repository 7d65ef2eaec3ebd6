package gkr

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/arnaucube/sumfold/circuit"
	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/kzg"
	"github.com/arnaucube/sumfold/log"
	"github.com/arnaucube/sumfold/poly"
	"github.com/arnaucube/sumfold/sumcheck"
	"github.com/arnaucube/sumfold/transcript"
)

// closeFinal resolves the (u,v) pair closing the input layer's claim, given
// the final round's (rb,rc) split. Returns ok=false if the resolution
// itself fails (e.g. a KZG opening doesn't verify).
type closeFinal func(rb, rc []field.F) (u, v field.F, ok bool)

// verifyCore mirrors proveCore: it replays every layer's sum-check against
// the shared transcript and checks each layer's fold identity, deferring
// only the input layer's (u,v) resolution to closeInput.
func verifyCore(circ *circuit.Circuit, tr *transcript.Transcript, outputPoly *poly.Multilinear, preAbsorb []byte, wPolysEvals []WEval, sumcheckProofs []*sumcheck.Proof, closeInput closeFinal) bool {
	layerCount := circ.GetLayerCount()
	if len(sumcheckProofs) != layerCount || len(wPolysEvals) != layerCount-1 {
		return false
	}

	if preAbsorb != nil {
		tr.Append(preAbsorb)
	}
	tr.Append(outputPoly.ToBytes())

	a0 := outputPoly.NumVars()
	randomValues := tr.SampleNChallenges(a0)

	muli0, err := circ.GetMulI(0)
	if err != nil {
		return false
	}
	addi0, err := circ.GetAddI(0)
	if err != nil {
		return false
	}
	currentMuli, err := fixPrefix(muli0, randomValues)
	if err != nil {
		return false
	}
	currentAddi, err := fixPrefix(addi0, randomValues)
	if err != nil {
		return false
	}
	sigma, err := evalFull(outputPoly, randomValues)
	if err != nil {
		return false
	}

	for k := 0; k < layerCount; k++ {
		proofK := sumcheckProofs[k]
		if !field.Equal(sigma, proofK.InitialClaimSum) {
			return false
		}
		ok, sigmaFinal, challenges := sumcheck.PartialVerify(proofK, tr)
		if !ok {
			return false
		}

		rb, rc := split(challenges)

		var u, v field.F
		if k == layerCount-1 {
			var closeOk bool
			u, v, closeOk = closeInput(rb, rc)
			if !closeOk {
				return false
			}
		} else {
			u, v = wPolysEvals[k].U, wPolysEvals[k].V
		}

		point := append(append([]field.F{}, rb...), rc...)
		newMuliVal, err := evalFull(currentMuli, point)
		if err != nil {
			return false
		}
		newAddiVal, err := evalFull(currentAddi, point)
		if err != nil {
			return false
		}
		fbcEval := field.Add(
			field.Mul(newAddiVal, field.Add(u, v)),
			field.Mul(newMuliVal, field.Mul(u, v)),
		)
		if !field.Equal(fbcEval, sigmaFinal) {
			return false
		}

		if k == layerCount-1 {
			break
		}

		tr.Append(field.ToBytesLE(u))
		tr.Append(field.ToBytesLE(v))
		alpha := tr.SampleChallenge()
		beta := tr.SampleChallenge()

		muliNext, err := circ.GetMulI(k + 1)
		if err != nil {
			return false
		}
		addiNext, err := circ.GetAddI(k + 1)
		if err != nil {
			return false
		}
		muliAtRb, err := fixPrefix(muliNext, rb)
		if err != nil {
			return false
		}
		muliAtRc, err := fixPrefix(muliNext, rc)
		if err != nil {
			return false
		}
		addiAtRb, err := fixPrefix(addiNext, rb)
		if err != nil {
			return false
		}
		addiAtRc, err := fixPrefix(addiNext, rc)
		if err != nil {
			return false
		}

		currentMuli, err = fold(muliAtRb, muliAtRc, alpha, beta)
		if err != nil {
			return false
		}
		currentAddi, err = fold(addiAtRb, addiAtRc, alpha, beta)
		if err != nil {
			return false
		}
		sigma = field.Add(field.Mul(alpha, u), field.Mul(beta, v))
	}

	return true
}

// VerifyProof checks a plain GKR proof, evaluating the input layer directly.
func VerifyProof(inputs []field.F, circ *circuit.Circuit, tr *transcript.Transcript, proof *Proof) bool {
	inputML, err := paddedInput(circ, inputs)
	if err != nil {
		log.Errorw(err, "gkr: failed to build input multilinear")
		return false
	}

	closeInput := func(rb, rc []field.F) (field.F, field.F, bool) {
		u, err := evalFull(inputML, rb)
		if err != nil {
			return field.F{}, field.F{}, false
		}
		v, err := evalFull(inputML, rc)
		if err != nil {
			return field.F{}, field.F{}, false
		}
		return u, v, true
	}

	return verifyCore(circ, tr, proof.OutputPoly, nil, proof.WPolysEvals, proof.SumcheckProofs, closeInput)
}

// VerifyProofWithKZG checks a GKR proof whose input layer is hidden behind a
// KZG commitment, verifying both openings instead of reading the input.
func VerifyProofWithKZG(circ *circuit.Circuit, tr *transcript.Transcript, proof *KZGProof, encryptedTaus []bn254.G2Affine) bool {
	closeInput := func(rb, rc []field.F) (field.F, field.F, bool) {
		if !proof.OpenRb.Commitment.Equal(&proof.Commitment) || !proof.OpenRc.Commitment.Equal(&proof.Commitment) {
			return field.F{}, field.F{}, false
		}
		if !kzg.VerifyProof(proof.OpenRb, rb, encryptedTaus) {
			return field.F{}, field.F{}, false
		}
		if !kzg.VerifyProof(proof.OpenRc, rc, encryptedTaus) {
			return field.F{}, field.F{}, false
		}
		return proof.OpenRb.Value, proof.OpenRc.Value, true
	}

	return verifyCore(circ, tr, proof.OutputPoly, proof.Commitment.Marshal(), proof.WPolysEvals, proof.SumcheckProofs, closeInput)
}

func paddedInput(circ *circuit.Circuit, inputs []field.F) (*poly.Multilinear, error) {
	allEvals, err := circ.EvaluateAtInput(inputs)
	if err != nil {
		return nil, err
	}
	return allEvals[len(allEvals)-1], nil
}
