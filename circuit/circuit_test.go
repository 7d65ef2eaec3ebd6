package circuit_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/arnaucube/sumfold/circuit"
	"github.com/arnaucube/sumfold/field"
)

func f(v uint64) field.F { return field.FromUint64(v) }

func twoLayerCircuit() *circuit.Circuit {
	return circuit.New([][]circuit.Gate{
		{{Left: 0, Right: 1, Op: circuit.Add}},
		{{Left: 0, Right: 1, Op: circuit.Add}, {Left: 2, Right: 3, Op: circuit.Mul}},
	})
}

func TestTwoLayerCircuitEvaluate(t *testing.T) {
	c := qt.New(t)

	circ := twoLayerCircuit()
	evals, err := circ.EvaluateAtInput([]field.F{f(1), f(2), f(3), f(4)})
	c.Assert(err, qt.IsNil)
	c.Assert(len(evals), qt.Equals, 3) // 2 layers + input

	w0 := evals[0]
	c.Assert(field.Equal(w0.Evals()[0], f(15)), qt.IsTrue)
	c.Assert(field.Equal(w0.Evals()[1], f(0)), qt.IsTrue)

	w1 := evals[1]
	c.Assert(field.Equal(w1.Evals()[0], f(3)), qt.IsTrue)  // 1+2
	c.Assert(field.Equal(w1.Evals()[1], f(12)), qt.IsTrue) // 3*4
}

func TestTwoLayerCircuitSelectors(t *testing.T) {
	c := qt.New(t)

	circ := twoLayerCircuit()
	add1, err := circ.GetAddI(1)
	c.Assert(err, qt.IsNil)
	c.Assert(add1.NumVars(), qt.Equals, 5) // a=1, b=2

	for i, e := range add1.Evals() {
		if i == 1 {
			c.Assert(field.Equal(e, f(1)), qt.IsTrue)
		} else {
			c.Assert(field.IsZero(e), qt.IsTrue, qt.Commentf("index %d must be 0", i))
		}
	}

	mul1, err := circ.GetMulI(1)
	c.Assert(err, qt.IsNil)
	for i, e := range mul1.Evals() {
		if i == 27 {
			c.Assert(field.Equal(e, f(1)), qt.IsTrue)
		} else {
			c.Assert(field.IsZero(e), qt.IsTrue, qt.Commentf("index %d must be 0", i))
		}
	}
}

func TestLayerCountAndWi(t *testing.T) {
	c := qt.New(t)

	circ := twoLayerCircuit()
	c.Assert(circ.GetLayerCount(), qt.Equals, 2)

	evals, err := circ.EvaluateAtInput([]field.F{f(1), f(2), f(3), f(4)})
	c.Assert(err, qt.IsNil)

	w0, err := circ.GetWi(0, evals)
	c.Assert(err, qt.IsNil)
	c.Assert(field.Equal(w0.Evals()[0], f(15)), qt.IsTrue)

	_, err = circ.GetWi(99, evals)
	c.Assert(err, qt.Equals, circuit.ErrIndexOutOfBounds)
}

func TestOutOfBoundsGateIndex(t *testing.T) {
	c := qt.New(t)

	circ := circuit.New([][]circuit.Gate{
		{{Left: 0, Right: 5, Op: circuit.Add}},
	})
	_, err := circ.EvaluateAtInput([]field.F{f(1), f(2)})
	c.Assert(err, qt.Equals, circuit.ErrIndexOutOfBounds)
}
