package sumcheck

import (
	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/log"
	"github.com/arnaucube/sumfold/transcript"
)

// PartialVerify checks every round polynomial of proof against the running
// claim and the transcript, without performing the final oracle check
// against the original polynomial. This is the entry point GKR uses, since
// the oracle identity it needs involves the *enclosing* layer's W/selector
// polynomials, not the sum-polynomial sum-check saw directly.
//
// Returns (ok, sigma_final, challenges). On failure it returns false
// immediately; per spec, whatever was absorbed into tr before the failing
// round stays absorbed.
func PartialVerify(proof *Proof, tr *transcript.Transcript) (bool, field.F, []field.F) {
	sigma := proof.InitialClaimSum
	if len(proof.RoundPolys) == 0 {
		return field.IsZero(sigma), sigma, nil
	}

	challenges := make([]field.F, len(proof.RoundPolys))
	for k, gk := range proof.RoundPolys {
		if !field.Equal(gk.EvaluateSumOverBooleanHypercube(), sigma) {
			return false, sigma, nil
		}
		tr.Append(field.ToBytesLE(sigma))
		tr.Append(gk.ToBytes())
		rk := tr.SampleChallenge()
		sigma = gk.Evaluate(rk)
		challenges[k] = rk
	}
	return true, sigma, challenges
}

// VerifyProof runs PartialVerify over a fresh transcript and, unless f has
// zero variables (already fully checked by PartialVerify's trivial case),
// additionally checks the oracle identity sigma_final == f(r1,...,rn).
func VerifyProof(f Composed, proof *Proof) bool {
	tr := transcript.New()
	ok, sigmaFinal, challenges := PartialVerify(proof, tr)
	if !ok {
		return false
	}
	if f.NumVars() == 0 {
		return true
	}
	val, err := f.EvaluateFull(challenges)
	if err != nil {
		log.Errorw(err, "sumcheck: oracle check failed to evaluate")
		return false
	}
	return field.Equal(sigmaFinal, val)
}
