package gkr

import (
	"github.com/arnaucube/sumfold/circuit"
	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/kzg"
	"github.com/arnaucube/sumfold/log"
	"github.com/arnaucube/sumfold/poly"
	"github.com/arnaucube/sumfold/sumcheck"
	"github.com/arnaucube/sumfold/transcript"
)

// coreResult carries what every layer's sum-check produced, plus the final
// round's (rb,rc) split, which GenerateProofWithKZG needs to open the input
// commitment (GenerateProof leaves the input layer to the verifier).
type coreResult struct {
	wPolysEvals      []WEval
	sumcheckProofs   []*sumcheck.Proof
	finalRb, finalRc []field.F
}

// proveCore runs every layer's sum-check against a shared transcript.
// preAbsorb, when non-nil, is absorbed before the output polynomial's bytes
// (the KZG-closed variant uses this to bind the input commitment first).
func proveCore(circ *circuit.Circuit, tr *transcript.Transcript, allEvals []*poly.Multilinear, preAbsorb []byte) (*coreResult, error) {
	if preAbsorb != nil {
		tr.Append(preAbsorb)
	}

	layerCount := circ.GetLayerCount()
	w0 := allEvals[0]
	tr.Append(w0.ToBytes())

	a0 := w0.NumVars()
	randomValues := tr.SampleNChallenges(a0)

	muli0, err := circ.GetMulI(0)
	if err != nil {
		return nil, err
	}
	addi0, err := circ.GetAddI(0)
	if err != nil {
		return nil, err
	}
	currentMuli, err := fixPrefix(muli0, randomValues)
	if err != nil {
		return nil, err
	}
	currentAddi, err := fixPrefix(addi0, randomValues)
	if err != nil {
		return nil, err
	}
	sigma, err := evalFull(w0, randomValues)
	if err != nil {
		return nil, err
	}

	sumcheckProofs := make([]*sumcheck.Proof, layerCount)
	wPolysEvals := make([]WEval, 0, layerCount-1)
	var finalRb, finalRc []field.F

	for k := 0; k < layerCount; k++ {
		wk1 := allEvals[k+1]
		term1, err := poly.NewProduct([]*poly.Multilinear{currentMuli, poly.TensorMul(wk1, wk1)})
		if err != nil {
			return nil, err
		}
		term2, err := poly.NewProduct([]*poly.Multilinear{currentAddi, poly.TensorAdd(wk1, wk1)})
		if err != nil {
			return nil, err
		}
		sp, err := poly.NewSumPoly([]*poly.Product{term1, term2})
		if err != nil {
			return nil, err
		}

		proofK, challenges, err := sumcheck.GenerateProofForPartialVerify(sigma, sumcheck.FromSumPoly(sp), tr)
		if err != nil {
			return nil, err
		}
		sumcheckProofs[k] = proofK

		rb, rc := split(challenges)
		if k == layerCount-1 {
			finalRb, finalRc = rb, rc
			break
		}

		wk := allEvals[k+1]
		u, err := evalFull(wk, rb)
		if err != nil {
			return nil, err
		}
		v, err := evalFull(wk, rc)
		if err != nil {
			return nil, err
		}
		wPolysEvals = append(wPolysEvals, WEval{U: u, V: v})

		tr.Append(field.ToBytesLE(u))
		tr.Append(field.ToBytesLE(v))
		alpha := tr.SampleChallenge()
		beta := tr.SampleChallenge()

		muliNext, err := circ.GetMulI(k + 1)
		if err != nil {
			return nil, err
		}
		addiNext, err := circ.GetAddI(k + 1)
		if err != nil {
			return nil, err
		}
		muliAtRb, err := fixPrefix(muliNext, rb)
		if err != nil {
			return nil, err
		}
		muliAtRc, err := fixPrefix(muliNext, rc)
		if err != nil {
			return nil, err
		}
		addiAtRb, err := fixPrefix(addiNext, rb)
		if err != nil {
			return nil, err
		}
		addiAtRc, err := fixPrefix(addiNext, rc)
		if err != nil {
			return nil, err
		}

		currentMuli, err = fold(muliAtRb, muliAtRc, alpha, beta)
		if err != nil {
			return nil, err
		}
		currentAddi, err = fold(addiAtRb, addiAtRc, alpha, beta)
		if err != nil {
			return nil, err
		}
		sigma = field.Add(field.Mul(alpha, u), field.Mul(beta, v))
	}

	return &coreResult{
		wPolysEvals:    wPolysEvals,
		sumcheckProofs: sumcheckProofs,
		finalRb:        finalRb,
		finalRc:        finalRc,
	}, nil
}

// GenerateProof runs GKR over circ evaluated at inputs, assuming the
// verifier will evaluate the input layer directly.
func GenerateProof(circ *circuit.Circuit, tr *transcript.Transcript, inputs []field.F) (*Proof, error) {
	allEvals, err := circ.EvaluateAtInput(inputs)
	if err != nil {
		log.Errorw(err, "gkr: failed to evaluate circuit")
		return nil, err
	}

	core, err := proveCore(circ, tr, allEvals, nil)
	if err != nil {
		log.Errorw(err, "gkr: proof generation failed")
		return nil, err
	}

	return &Proof{
		OutputPoly:     allEvals[0],
		WPolysEvals:    core.wPolysEvals,
		SumcheckProofs: core.sumcheckProofs,
	}, nil
}

// GenerateProofWithKZG runs GKR over circ evaluated at inputs, committing
// the input layer with setup and closing the final layer's claim with two
// KZG openings instead of revealing the input to the verifier.
func GenerateProofWithKZG(circ *circuit.Circuit, tr *transcript.Transcript, inputs []field.F, setup *kzg.TrustedSetup) (*KZGProof, error) {
	allEvals, err := circ.EvaluateAtInput(inputs)
	if err != nil {
		log.Errorw(err, "gkr: failed to evaluate circuit")
		return nil, err
	}
	inputML := allEvals[len(allEvals)-1]

	commitment, err := kzg.Commit(setup, inputML)
	if err != nil {
		log.Errorw(err, "gkr: failed to commit input layer")
		return nil, err
	}
	commitmentBytes := commitment.Marshal()

	core, err := proveCore(circ, tr, allEvals, commitmentBytes)
	if err != nil {
		log.Errorw(err, "gkr: proof generation failed")
		return nil, err
	}

	openRb, err := kzg.GenerateProof(setup, inputML, core.finalRb)
	if err != nil {
		log.Errorw(err, "gkr: failed to open input at rb")
		return nil, err
	}
	openRc, err := kzg.GenerateProof(setup, inputML, core.finalRc)
	if err != nil {
		log.Errorw(err, "gkr: failed to open input at rc")
		return nil, err
	}

	return &KZGProof{
		Commitment:     commitment,
		OutputPoly:     allEvals[0],
		WPolysEvals:    core.wPolysEvals,
		SumcheckProofs: core.sumcheckProofs,
		OpenRb:         openRb,
		OpenRc:         openRc,
	}, nil
}
