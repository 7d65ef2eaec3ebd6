package poly

import (
	"math/bits"

	"github.com/arnaucube/sumfold/field"
)

// Direction selects which side new variables are added on by Multilinear.BlowUp.
type Direction int

const (
	// Left adds new variables before the existing ones (as the new
	// highest-order bits): the result is independent of the new prefix.
	Left Direction = iota
	// Right adds new variables after the existing ones (as the new
	// lowest-order bits): the result is independent of the new suffix.
	Right
)

// Multilinear is a multilinear polynomial in evaluation form over the
// Boolean hypercube {0,1}^n. Index i = b0 b1 ... b_{n-1} with b0 the
// most-significant bit; this ordering is shared by every other component in
// the stack (circuit selectors, KZG quotients, GKR random points) and must
// never be flipped locally.
type Multilinear struct {
	evals   []field.F
	numVars int
}

// New builds a Multilinear from a length-2^n evaluation vector. n is
// inferred as log2(len(evals)); len(evals) must be an exact power of two.
func New(evals []field.F) (*Multilinear, error) {
	n := len(evals)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrInvalidShape
	}
	out := make([]field.F, n)
	copy(out, evals)
	return &Multilinear{evals: out, numVars: bits.Len(uint(n)) - 1}, nil
}

// NumVars returns the number of Boolean variables.
func (m *Multilinear) NumVars() int { return m.numVars }

// Evals returns the raw evaluation vector. Callers must not mutate it.
func (m *Multilinear) Evals() []field.F { return m.evals }

// Len returns the number of evaluations (2^NumVars).
func (m *Multilinear) Len() int { return len(m.evals) }

// insertZeroBit inserts a cleared bit at position p (0 = least significant)
// into the (n-1)-bit number j, producing an n-bit number with bit p unset.
// This is the dense<->sparse renumbering used by every operation that drops
// or targets a single variable.
func insertZeroBit(j, p int) int {
	high := j >> p
	low := j & ((1 << p) - 1)
	return (high << (p + 1)) | low
}

// bitPosition converts a variable index (0 = first/most-significant
// variable) into a bit position counted from the least-significant bit of an
// n-variable hypercube index.
func bitPosition(numVars, varIndex int) int {
	return numVars - 1 - varIndex
}

// PartiallyEvaluate fixes variable varIndex to r, returning the resulting
// (n-1)-variable multilinear. The pair (y0, y1) for output index j is found
// by inserting a cleared bit at the target position into j (y0) and setting
// it (y1); the tie-break / bit convention matches spec exactly.
func (m *Multilinear) PartiallyEvaluate(varIndex int, r field.F) (*Multilinear, error) {
	if varIndex < 0 || varIndex >= m.numVars {
		return nil, ErrIndexOutOfBounds
	}
	p := bitPosition(m.numVars, varIndex)
	outLen := len(m.evals) / 2
	out := make([]field.F, outLen)
	for j := 0; j < outLen; j++ {
		i0 := insertZeroBit(j, p)
		i1 := i0 | (1 << p)
		y0, y1 := m.evals[i0], m.evals[i1]
		// y0 + r*(y1-y0)
		out[j] = field.Add(y0, field.Mul(r, field.Sub(y1, y0)))
	}
	return &Multilinear{evals: out, numVars: m.numVars - 1}, nil
}

// Assignment is one slot of an Evaluate call: either a bound field value or
// Unset, meaning "leave this variable free".
type Assignment struct {
	Value field.F
	Set   bool
}

// Bound constructs a set Assignment.
func Bound(v field.F) Assignment { return Assignment{Value: v, Set: true} }

// Unset is the zero value of Assignment and represents a free variable.
var Unset = Assignment{}

// Evaluate applies PartiallyEvaluate to each set slot of points, in order,
// renumbering subsequent indices so slot k always refers to the k-th
// still-present variable. len(points) must equal NumVars. When every slot
// is set, the result is a degenerate 1-variable... actually 0-variable,
// 1-element multilinear whose sole evaluation is the polynomial's value at
// that point (retrieve it with Scalar()).
func (m *Multilinear) Evaluate(points []Assignment) (*Multilinear, error) {
	if len(points) != m.numVars {
		return nil, ErrLengthMismatch
	}
	cur := m
	removed := 0
	for i, p := range points {
		if !p.Set {
			continue
		}
		next, err := cur.PartiallyEvaluate(i-removed, p.Value)
		if err != nil {
			return nil, err
		}
		cur = next
		removed++
	}
	return cur, nil
}

// Scalar returns the sole evaluation of a 0-variable (length-1) multilinear.
// Panics if m has any free variables left; callers should only invoke this
// after an Evaluate call with every slot set.
func (m *Multilinear) Scalar() field.F {
	if m.numVars != 0 {
		panic("poly: Scalar called on a multilinear with free variables")
	}
	return m.evals[0]
}

// ScalarMul multiplies every evaluation by s.
func (m *Multilinear) ScalarMul(s field.F) *Multilinear {
	out := make([]field.F, len(m.evals))
	for i, e := range m.evals {
		out[i] = field.Mul(e, s)
	}
	return &Multilinear{evals: out, numVars: m.numVars}
}

// Add returns the pointwise sum of m and other, which must share NumVars.
func (m *Multilinear) Add(other *Multilinear) (*Multilinear, error) {
	if m.numVars != other.numVars {
		return nil, ErrInvalidShape
	}
	out := make([]field.F, len(m.evals))
	for i := range out {
		out[i] = field.Add(m.evals[i], other.evals[i])
	}
	return &Multilinear{evals: out, numVars: m.numVars}, nil
}

// Minus subtracts the scalar v from every evaluation.
func (m *Multilinear) Minus(v field.F) *Multilinear {
	out := make([]field.F, len(m.evals))
	for i, e := range m.evals {
		out[i] = field.Sub(e, v)
	}
	return &Multilinear{evals: out, numVars: m.numVars}
}

// EvaluationSum returns the sum of all evaluations over the hypercube.
func (m *Multilinear) EvaluationSum() field.F {
	sum := field.Zero()
	for _, e := range m.evals {
		sum = field.Add(sum, e)
	}
	return sum
}

// tensor builds the multilinear over vars(a)+vars(b) variables whose
// evaluation at the concatenated index (i ‖ j) is op(a[i], b[j]).
func tensor(a, b *Multilinear, op func(x, y field.F) field.F) *Multilinear {
	lenB := len(b.evals)
	out := make([]field.F, len(a.evals)*lenB)
	for i, ai := range a.evals {
		for j, bj := range b.evals {
			out[i*lenB+j] = op(ai, bj)
		}
	}
	return &Multilinear{evals: out, numVars: a.numVars + b.numVars}
}

// TensorAdd returns the multilinear over (vars(a)+vars(b)) variables whose
// evaluation at (i,j) is a[i]+b[j]. Used to build W(b)+W(c).
func TensorAdd(a, b *Multilinear) *Multilinear {
	return tensor(a, b, field.Add)
}

// TensorMul returns the multilinear over (vars(a)+vars(b)) variables whose
// evaluation at (i,j) is a[i]*b[j]. Used to build W(b)*W(c).
func TensorMul(a, b *Multilinear) *Multilinear {
	return tensor(a, b, field.Mul)
}

// BlowUp adds k new variables to m without changing the underlying function.
// Left duplicates the whole evaluation vector 2^k times end-to-end (new
// variables are the new high-order/prefix bits). Right repeats each element
// 2^k times consecutively (new variables are the new low-order/suffix
// bits).
func (m *Multilinear) BlowUp(dir Direction, k int) *Multilinear {
	if k == 0 {
		out := make([]field.F, len(m.evals))
		copy(out, m.evals)
		return &Multilinear{evals: out, numVars: m.numVars}
	}
	factor := 1 << uint(k)
	n := len(m.evals)
	out := make([]field.F, n*factor)
	switch dir {
	case Left:
		for idx := range out {
			out[idx] = m.evals[idx%n]
		}
	case Right:
		for idx := range out {
			out[idx] = m.evals[idx/factor]
		}
	}
	return &Multilinear{evals: out, numVars: m.numVars + k}
}

// QuotientRemainder divides m by the linear factor (x_{varIndex} - r): the
// quotient is a multilinear over the remaining n-1 variables whose
// coefficient at index i is the slope y1-y0 across the flipped bit; the
// remainder is m partially evaluated at r (spec.md §4.1, used by KZG open).
func (m *Multilinear) QuotientRemainder(r field.F, varIndex int) (quotient, remainder *Multilinear, err error) {
	if varIndex < 0 || varIndex >= m.numVars {
		return nil, nil, ErrIndexOutOfBounds
	}
	p := bitPosition(m.numVars, varIndex)
	outLen := len(m.evals) / 2
	qOut := make([]field.F, outLen)
	for j := 0; j < outLen; j++ {
		i0 := insertZeroBit(j, p)
		i1 := i0 | (1 << p)
		qOut[j] = field.Sub(m.evals[i1], m.evals[i0])
	}
	quotient = &Multilinear{evals: qOut, numVars: m.numVars - 1}
	remainder, err = m.PartiallyEvaluate(varIndex, r)
	if err != nil {
		return nil, nil, err
	}
	return quotient, remainder, nil
}

// ToBytes returns the canonical little-endian concatenation of every
// evaluation's byte encoding, suitable for transcript absorption.
func (m *Multilinear) ToBytes() []byte {
	out := make([]byte, 0, len(m.evals)*field.NumBytes)
	for _, e := range m.evals {
		out = append(out, field.ToBytesLE(e)...)
	}
	return out
}
