package poly_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/poly"
)

func TestProductDegreeAndEvaluate(t *testing.T) {
	c := qt.New(t)

	a, _ := poly.New([]field.F{f(1), f(2)})
	b, _ := poly.New([]field.F{f(3), f(4)})

	p, err := poly.NewProduct([]*poly.Multilinear{a, b})
	c.Assert(err, qt.IsNil)
	c.Assert(p.Degree(), qt.Equals, 2)
	c.Assert(field.Equal(p.EvaluateAt(0), f(3)), qt.IsTrue)  // 1*3
	c.Assert(field.Equal(p.EvaluateAt(1), f(8)), qt.IsTrue)  // 2*4
}

func TestProductRejectsMismatchedShape(t *testing.T) {
	c := qt.New(t)

	a, _ := poly.New([]field.F{f(1), f(2)})
	b, _ := poly.New([]field.F{f(1), f(2), f(3), f(4)})
	_, err := poly.NewProduct([]*poly.Multilinear{a, b})
	c.Assert(err, qt.Equals, poly.ErrInvalidShape)
}

func TestProductPartiallyEvaluate(t *testing.T) {
	c := qt.New(t)

	a, _ := poly.New([]field.F{f(1), f(2)})
	b, _ := poly.New([]field.F{f(3), f(4)})
	p, _ := poly.NewProduct([]*poly.Multilinear{a, b})

	next, err := p.PartiallyEvaluate(0, f(1))
	c.Assert(err, qt.IsNil)
	c.Assert(next.NumVars(), qt.Equals, 0)
	c.Assert(field.Equal(next.EvaluateAt(0), field.Mul(f(2), f(4))), qt.IsTrue)
}
