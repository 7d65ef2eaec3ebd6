// Package poly implements the polynomial primitives the rest of the proof
// stack is built from: dense-coefficient univariate polynomials, multilinear
// polynomials in evaluation form over the Boolean hypercube, and the
// product/sum compositions sum-check consumes.
package poly

import "fmt"

// ErrInvalidShape is returned when an evaluation vector's length is not a
// power of two, or when two polynomials composed together disagree on
// variable count.
var ErrInvalidShape = fmt.Errorf("invalid shape")

// ErrIndexOutOfBounds is returned when a variable or layer index exceeds the
// polynomial's variable count.
var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

// ErrLengthMismatch is returned when a points/openings list's length does
// not match the polynomial's variable count.
var ErrLengthMismatch = fmt.Errorf("length mismatch")

// ErrDuplicateX is returned by Lagrange interpolation when two x-coordinates
// coincide, which would require dividing by zero.
var ErrDuplicateX = fmt.Errorf("duplicate x coordinate")
