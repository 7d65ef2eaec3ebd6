package kzg_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	qt "github.com/frankban/quicktest"

	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/kzg"
	"github.com/arnaucube/sumfold/poly"
)

func f(v int64) field.F {
	if v >= 0 {
		return field.FromUint64(uint64(v))
	}
	return field.Neg(field.FromUint64(uint64(-v)))
}

func scenarioTaus() []field.F { return []field.F{f(5), f(2), f(3)} }

func TestLagrangeBasisMatchesScenario(t *testing.T) {
	c := qt.New(t)

	basis := kzg.LagrangeBasis(scenarioTaus())
	want := []field.F{f(-8), f(12), f(16), f(-24), f(10), f(-15), f(-20), f(30)}
	c.Assert(len(basis), qt.Equals, len(want))
	for i := range want {
		c.Assert(field.Equal(basis[i], want[i]), qt.IsTrue, qt.Commentf("index %d", i))
	}
}

func TestCommitMatchesScenario(t *testing.T) {
	c := qt.New(t)

	setup, err := kzg.NewTrustedSetup(scenarioTaus())
	c.Assert(err, qt.IsNil)

	fEvals, err := poly.New([]field.F{f(0), f(4), f(0), f(4), f(0), f(4), f(3), f(7)})
	c.Assert(err, qt.IsNil)

	commitment, err := kzg.Commit(setup, fEvals)
	c.Assert(err, qt.IsNil)

	_, _, g1Gen, _ := bn254.Generators()
	var want bn254.G1Affine
	want.ScalarMultiplication(&g1Gen, field.ToBigInt(f(42)))

	c.Assert(commitment.Equal(&want), qt.IsTrue)
}

func TestKZGRoundTrip(t *testing.T) {
	c := qt.New(t)

	setup, err := kzg.NewTrustedSetup(scenarioTaus())
	c.Assert(err, qt.IsNil)

	fEvals, err := poly.New([]field.F{f(0), f(4), f(0), f(4), f(0), f(4), f(3), f(7)})
	c.Assert(err, qt.IsNil)

	openings := []field.F{f(6), f(4), f(0)}
	proof, err := kzg.GenerateProof(setup, fEvals, openings)
	c.Assert(err, qt.IsNil)

	c.Assert(kzg.VerifyProof(proof, openings, setup.EncryptedTaus), qt.IsTrue)
}

func TestKZGTamperedValueFails(t *testing.T) {
	c := qt.New(t)

	setup, err := kzg.NewTrustedSetup(scenarioTaus())
	c.Assert(err, qt.IsNil)

	fEvals, err := poly.New([]field.F{f(0), f(4), f(0), f(4), f(0), f(4), f(3), f(7)})
	c.Assert(err, qt.IsNil)

	openings := []field.F{f(6), f(4), f(0)}
	proof, err := kzg.GenerateProof(setup, fEvals, openings)
	c.Assert(err, qt.IsNil)

	proof.Value = field.Add(proof.Value, field.One())
	c.Assert(kzg.VerifyProof(proof, openings, setup.EncryptedTaus), qt.IsFalse)
}

func TestKZGTamperedQuotientFails(t *testing.T) {
	c := qt.New(t)

	setup, err := kzg.NewTrustedSetup(scenarioTaus())
	c.Assert(err, qt.IsNil)

	fEvals, err := poly.New([]field.F{f(0), f(4), f(0), f(4), f(0), f(4), f(3), f(7)})
	c.Assert(err, qt.IsNil)

	openings := []field.F{f(6), f(4), f(0)}
	proof, err := kzg.GenerateProof(setup, fEvals, openings)
	c.Assert(err, qt.IsNil)

	_, _, g1Gen, _ := bn254.Generators()
	proof.QuotientCommitments[0] = g1Gen

	c.Assert(kzg.VerifyProof(proof, openings, setup.EncryptedTaus), qt.IsFalse)
}
