package sumcheck

import (
	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/log"
	"github.com/arnaucube/sumfold/poly"
	"github.com/arnaucube/sumfold/transcript"
)

// GenerateSumcheckProof runs the full protocol over f with a fresh
// transcript and returns the resulting proof. f.EvaluationSum() is taken as
// the initial claim.
func GenerateSumcheckProof(f Composed) (*Proof, error) {
	tr := transcript.New()
	proof, _, err := run(f.EvaluationSum(), f, tr)
	if err != nil {
		log.Errorw(err, "sumcheck: proof generation failed")
	}
	return proof, err
}

// GenerateProofForPartialVerify runs sum-check over s against the supplied
// initial claim sigma, continuing an already-running transcript. This is
// the entry point GKR uses so a single transcript spans every layer's
// sum-check instance. Returns the proof and the round challenges, in order.
func GenerateProofForPartialVerify(sigma field.F, s Composed, tr *transcript.Transcript) (*Proof, []field.F, error) {
	return run(sigma, s, tr)
}

// run is the shared round loop: for a degree-d composed input, each round
// samples y_i = (partial eval at x=i).EvaluationSum() for i = 0..d,
// interpolates the round polynomial through those points, absorbs it, and
// folds the challenge in before moving to the next round. This subsumes the
// multilinear "split table in half and sum" rule as the d=1 special case.
func run(sigma field.F, composed Composed, tr *transcript.Transcript) (*Proof, []field.F, error) {
	n := composed.NumVars()
	if n == 0 {
		return &Proof{InitialClaimSum: sigma}, nil, nil
	}

	roundPolys := make([]*poly.Univariate, n)
	challenges := make([]field.F, n)
	cur := composed
	claim := sigma

	for k := 0; k < n; k++ {
		degree := cur.Degree()
		xs := make([]field.F, degree+1)
		ys := make([]field.F, degree+1)
		for i := 0; i <= degree; i++ {
			xs[i] = field.FromUint64(uint64(i))
			partial, err := cur.PartiallyEvaluate(0, xs[i])
			if err != nil {
				return nil, nil, err
			}
			ys[i] = partial.EvaluationSum()
		}
		gk, err := poly.Interpolate(xs, ys)
		if err != nil {
			return nil, nil, err
		}

		tr.Append(field.ToBytesLE(claim))
		tr.Append(gk.ToBytes())
		rk := tr.SampleChallenge()

		next, err := cur.PartiallyEvaluate(0, rk)
		if err != nil {
			return nil, nil, err
		}
		claim = gk.Evaluate(rk)
		cur = next

		roundPolys[k] = gk
		challenges[k] = rk
	}

	return &Proof{InitialClaimSum: sigma, RoundPolys: roundPolys}, challenges, nil
}
