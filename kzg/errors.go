// Package kzg implements the multilinear generalisation of the KZG
// polynomial commitment scheme: a trusted-setup consumer that commits a
// multilinear polynomial to a single G1 point and opens it at a hypercube
// point with one quotient commitment per variable, verified by a single
// multi-pairing check. GKR uses this to close its input-layer claim without
// the verifier re-reading the input.
package kzg

import "fmt"

// ErrLengthMismatch is returned when an openings list, a trusted setup's
// variable count, or a commitment basis disagrees with the polynomial's
// variable count, and when a trusted setup is built from an empty tau
// vector. VerifyProof reports a mismatched quotient-commitment list by
// returning false.
var ErrLengthMismatch = fmt.Errorf("length mismatch")
