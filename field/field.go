// Package field provides the prime field element used throughout the proof
// stack. It wraps gnark-crypto's bn254 scalar field so every other package
// (poly, transcript, circuit, sumcheck, kzg, gkr) shares one canonical
// representation, one byte encoding, and one set of arithmetic semantics.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// F is an element of the bn254 scalar field. Equality is canonical: two F
// values are equal iff they represent the same residue.
type F = fr.Element

// NumBytes is the canonical little-endian byte length of an F.
const NumBytes = fr.Bytes

// Zero returns the additive identity.
func Zero() F {
	var z F
	z.SetZero()
	return z
}

// One returns the multiplicative identity.
func One() F {
	var o F
	o.SetOne()
	return o
}

// FromUint64 builds an element from a small integer.
func FromUint64(v uint64) F {
	var e F
	e.SetUint64(v)
	return e
}

// FromBigInt reduces x modulo the field order.
func FromBigInt(x *big.Int) F {
	var e F
	e.SetBigInt(x)
	return e
}

// ToBigInt returns the canonical (non-Montgomery) big.Int representative of
// e, used at elliptic-curve scalar-multiplication boundaries.
func ToBigInt(e F) *big.Int {
	var out big.Int
	e.BigInt(&out)
	return &out
}

// FromBytesLE interprets b as the little-endian byte encoding of an integer
// and reduces it modulo the field order.
func FromBytesLE(b []byte) F {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	var e F
	e.SetBytes(rev)
	return e
}

// ToBytesLE returns the canonical little-endian encoding of the integer
// representative of e, used whenever a field element is absorbed into a
// transcript or serialised for hashing.
func ToBytesLE(e F) []byte {
	be := e.Bytes() // gnark-crypto encodes big-endian, canonical (non-Montgomery)
	out := make([]byte, len(be))
	for i, c := range be {
		out[len(be)-1-i] = c
	}
	return out
}

// Add returns a+b without mutating either argument.
func Add(a, b F) F {
	var r F
	r.Add(&a, &b)
	return r
}

// Sub returns a-b without mutating either argument.
func Sub(a, b F) F {
	var r F
	r.Sub(&a, &b)
	return r
}

// Mul returns a*b without mutating either argument.
func Mul(a, b F) F {
	var r F
	r.Mul(&a, &b)
	return r
}

// Inverse returns a⁻¹. Panics if a is zero: callers must only invert
// nonzero field elements.
func Inverse(a F) F {
	var r F
	if a.IsZero() {
		panic("field: inverse of zero")
	}
	r.Inverse(&a)
	return r
}

// Neg returns -a.
func Neg(a F) F {
	var r F
	r.Neg(&a)
	return r
}

// Equal reports whether a and b represent the same residue.
func Equal(a, b F) bool {
	return a.Equal(&b)
}

// IsZero reports whether a is the additive identity.
func IsZero(a F) bool {
	return a.IsZero()
}
