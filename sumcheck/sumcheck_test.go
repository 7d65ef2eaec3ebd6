package sumcheck_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/poly"
	"github.com/arnaucube/sumfold/sumcheck"
)

func f(v uint64) field.F { return field.FromUint64(v) }

func TestSumcheckMultilinearPass(t *testing.T) {
	c := qt.New(t)

	m, err := poly.New([]field.F{f(0), f(0), f(0), f(3), f(0), f(0), f(2), f(5)})
	c.Assert(err, qt.IsNil)

	input := sumcheck.FromMultilinear(m)
	proof, err := sumcheck.GenerateSumcheckProof(input)
	c.Assert(err, qt.IsNil)
	c.Assert(len(proof.RoundPolys), qt.Equals, 3)

	c.Assert(sumcheck.VerifyProof(sumcheck.FromMultilinear(m), proof), qt.IsTrue)
}

func TestSumcheckTamperedProofFails(t *testing.T) {
	c := qt.New(t)

	m, err := poly.New([]field.F{f(0), f(0), f(0), f(3), f(0), f(0), f(2), f(5)})
	c.Assert(err, qt.IsNil)

	proof, err := sumcheck.GenerateSumcheckProof(sumcheck.FromMultilinear(m))
	c.Assert(err, qt.IsNil)

	last := proof.RoundPolys[len(proof.RoundPolys)-1]
	tampered := make([]field.F, len(last.Coeffs))
	copy(tampered, last.Coeffs)
	tampered[0] = field.Add(tampered[0], field.One())
	proof.RoundPolys[len(proof.RoundPolys)-1] = poly.NewUnivariate(tampered)

	c.Assert(sumcheck.VerifyProof(sumcheck.FromMultilinear(m), proof), qt.IsFalse)
}

func TestSumcheckZeroVariables(t *testing.T) {
	c := qt.New(t)

	m, err := poly.New([]field.F{f(0)})
	c.Assert(err, qt.IsNil)

	proof, err := sumcheck.GenerateSumcheckProof(sumcheck.FromMultilinear(m))
	c.Assert(err, qt.IsNil)
	c.Assert(len(proof.RoundPolys), qt.Equals, 0)
	c.Assert(sumcheck.VerifyProof(sumcheck.FromMultilinear(m), proof), qt.IsTrue)
}

func TestSumcheckSumPoly(t *testing.T) {
	c := qt.New(t)

	a, _ := poly.New([]field.F{f(1), f(2)})
	b, _ := poly.New([]field.F{f(3), f(4)})
	prod, err := poly.NewProduct([]*poly.Multilinear{a, b})
	c.Assert(err, qt.IsNil)
	sp, err := poly.NewSumPoly([]*poly.Product{prod})
	c.Assert(err, qt.IsNil)

	input := sumcheck.FromSumPoly(sp)
	proof, err := sumcheck.GenerateSumcheckProof(input)
	c.Assert(err, qt.IsNil)
	c.Assert(sumcheck.VerifyProof(sumcheck.FromSumPoly(sp), proof), qt.IsTrue)
}
