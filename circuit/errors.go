// Package circuit implements layered fan-in-2 arithmetic circuits: gate
// evaluation from the input layer outward, and the addᵢ/mulᵢ/Wᵢ selector
// and wire multilinears GKR's per-layer sum-check is built from.
package circuit

import "fmt"

// ErrIndexOutOfBounds is returned when a layer index, or a gate's left/right
// wire index, exceeds the bounds it must address.
var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
