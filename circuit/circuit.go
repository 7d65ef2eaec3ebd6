package circuit

import (
	"math/bits"

	"github.com/arnaucube/sumfold/field"
	"github.com/arnaucube/sumfold/poly"
)

// Circuit is an ordered sequence of layers, the output layer first. Layer
// k's gate at local index j reads layer k+1's wires at Left/Right and
// produces wire j of layer k. The innermost layer reads the raw input wires.
type Circuit struct {
	Layers [][]Gate
}

// New wraps an ordered, output-first layer list.
func New(layers [][]Gate) *Circuit {
	out := make([][]Gate, len(layers))
	copy(out, layers)
	return &Circuit{Layers: out}
}

// GetLayerCount returns the number of gate layers (the input layer is not
// counted).
func (c *Circuit) GetLayerCount() int { return len(c.Layers) }

// ceilLog2 returns the smallest a such that 2^a >= n, for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// paddedSize returns max(2, next power of two >= n).
func paddedSize(n int) int {
	p := 1 << uint(ceilLog2(n))
	if p < 2 {
		return 2
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// EvaluateAtInput evaluates every gate from the input layer outward,
// returning one multilinear per layer (output-first, as in Layers) plus the
// input multilinear appended last.
func (c *Circuit) EvaluateAtInput(inputs []field.F) ([]*poly.Multilinear, error) {
	current := make([]field.F, paddedSize(len(inputs)))
	copy(current, inputs)

	result := make([]*poly.Multilinear, len(c.Layers)+1)
	inputML, err := poly.New(current)
	if err != nil {
		return nil, err
	}
	result[len(c.Layers)] = inputML

	for k := len(c.Layers) - 1; k >= 0; k-- {
		layer := c.Layers[k]
		out := make([]field.F, paddedSize(len(layer)))
		for i := range out {
			out[i] = field.Zero()
		}
		for j, g := range layer {
			if g.Left < 0 || g.Left >= len(current) || g.Right < 0 || g.Right >= len(current) {
				return nil, ErrIndexOutOfBounds
			}
			l, r := current[g.Left], current[g.Right]
			switch g.Op {
			case Add:
				out[j] = field.Add(l, r)
			case Mul:
				out[j] = field.Mul(l, r)
			}
		}
		ml, err := poly.New(out)
		if err != nil {
			return nil, err
		}
		result[k] = ml
		current = out
	}
	return result, nil
}

// GetWi returns the wire multilinear of layer i from a result produced by
// EvaluateAtInput.
func (c *Circuit) GetWi(i int, evals []*poly.Multilinear) (*poly.Multilinear, error) {
	if i < 0 || i >= len(evals) {
		return nil, ErrIndexOutOfBounds
	}
	return evals[i], nil
}

// bitWidths returns (a, b): a is the output-bit width of layer i (derived
// from its padded gate count), b is the input-bit width (derived from the
// highest wire index any gate in layer i references).
func (c *Circuit) bitWidths(i int) (a, b int, err error) {
	if i < 0 || i >= len(c.Layers) {
		return 0, 0, ErrIndexOutOfBounds
	}
	layer := c.Layers[i]
	a = ceilLog2(paddedSize(len(layer)))
	maxIdx := 0
	for _, g := range layer {
		maxIdx = maxInt(maxIdx, maxInt(g.Left, g.Right))
	}
	b = ceilLog2(maxInt(2, maxIdx+1))
	return a, b, nil
}

// selector builds the addᵢ or mulᵢ multilinear for layer i: a multilinear
// over (out ‖ left ‖ right), 1 exactly at the binary encoding of each
// present gate of the matching operation, 0 elsewhere.
func (c *Circuit) selector(i int, op Operation) (*poly.Multilinear, error) {
	a, b, err := c.bitWidths(i)
	if err != nil {
		return nil, err
	}
	size := 1 << uint(a+2*b)
	evals := make([]field.F, size)
	for idx := range evals {
		evals[idx] = field.Zero()
	}
	for j, g := range c.Layers[i] {
		if g.Op != op {
			continue
		}
		idx := ((j << uint(b)) | g.Left) << uint(b) | g.Right
		evals[idx] = field.One()
	}
	return poly.New(evals)
}

// GetAddI builds the addᵢ selector multilinear for layer i (0 = output
// layer).
func (c *Circuit) GetAddI(i int) (*poly.Multilinear, error) {
	return c.selector(i, Add)
}

// GetMulI builds the mulᵢ selector multilinear for layer i (0 = output
// layer).
func (c *Circuit) GetMulI(i int) (*poly.Multilinear, error) {
	return c.selector(i, Mul)
}
