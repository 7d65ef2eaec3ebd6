package sumcheck

import (
	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/poly"
)

// Proof is the transcript-independent artifact sum-check produces: the
// claimed initial sum and one round polynomial per variable.
type Proof struct {
	InitialClaimSum field.F
	RoundPolys      []*poly.Univariate
}
