// Package transcript implements the Fiat–Shamir heuristic as a deterministic
// running sponge over Keccak-256 (golang.org/x/crypto/sha3's
// NewLegacyKeccak256, the same primitive go-ethereum's crypto.Keccak256
// wraps).
package transcript

import (
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/arnaucube/sumfold/field"
)

// Transcript is a running Keccak-256 sponge. It is deterministic in the
// concatenation of everything absorbed: two transcripts fed identical byte
// sequences squeeze identical challenges.
type Transcript struct {
	h hash.Hash
}

// New creates a transcript with an empty initial state.
func New() *Transcript {
	return &Transcript{h: sha3.NewLegacyKeccak256()}
}

// Append absorbs data into the sponge.
func (t *Transcript) Append(data []byte) {
	// hash.Hash.Write never errors for the Keccak sponge implementation.
	_, _ = t.h.Write(data)
}

// AppendN absorbs a sequence of byte strings, in order.
func (t *Transcript) AppendN(items [][]byte) {
	for _, item := range items {
		t.Append(item)
	}
}

// SampleChallenge squeezes a field element: it finalises the current sponge
// state into a digest, interprets the digest as a little-endian integer
// reduced modulo the field order, and re-absorbs the digest so that a
// subsequent call without further Append produces a different challenge.
//
// hash.Hash.Sum does not mutate internal state, so "clone then finalise" in
// spec terms is just Sum(nil) followed by a Write of the result.
func (t *Transcript) SampleChallenge() field.F {
	digest := t.h.Sum(nil)
	t.Append(digest)
	return field.FromBytesLE(digest)
}

// SampleNChallenges squeezes n field elements in sequence.
func (t *Transcript) SampleNChallenges(n int) []field.F {
	out := make([]field.F, n)
	for i := range out {
		out[i] = t.SampleChallenge()
	}
	return out
}
