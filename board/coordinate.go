package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// StandardDim is the side length of the board. All bitboard code is
	// hard-wired to it.
	StandardDim = 8
	// NumSquares is the number of squares, and of bits in an occupancy mask.
	NumSquares = StandardDim * StandardDim

	// Columns are lettered, so a board can't be wider than the alphabet.
	maxDim = 26
)

var reAlgebraic = regexp.MustCompile(`^([A-Za-z])([0-9]+)$`)

// A Codec converts between the representations of a square: grid (x, y),
// linear row-major index, bit index and algebraic notation. The zero value
// is the standard 8x8 codec.
type Codec struct {
	dim int
}

var standard = Codec{dim: StandardDim}

// NewCodec returns a codec for a dim x dim board. Odd sizes, and sizes
// that can't be lettered A-Z, are rejected.
func NewCodec(dim int) (Codec, error) {
	if dim < 2 || dim > maxDim || dim%2 != 0 {
		return Codec{}, fmt.Errorf("%w: %d", ErrUnsupportedDimension, dim)
	}
	return Codec{dim: dim}, nil
}

// Dim returns the side length of the board.
func (c Codec) Dim() int {
	if c.dim == 0 {
		return StandardDim
	}
	return c.dim
}

func (c Codec) inside(x, y int) bool {
	n := c.Dim()
	return x >= 0 && x < n && y >= 0 && y < n
}

// ToLinear maps (x, y) to the row-major index x + dim*y.
func (c Codec) ToLinear(x, y int) (int, error) {
	if !c.inside(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, x, y)
	}
	return x + c.Dim()*y, nil
}

// FromLinear is the inverse of ToLinear.
func (c Codec) FromLinear(index int) (int, int, error) {
	n := c.Dim()
	if index < 0 || index >= n*n {
		return 0, 0, fmt.Errorf("%w: linear index %d", ErrOutOfRange, index)
	}
	return index % n, index / n, nil
}

// ToBitIndex maps a linear index to its bit index. The first square (A1)
// is the most significant bit.
func (c Codec) ToBitIndex(linear int) (int, error) {
	n := c.Dim()
	if linear < 0 || linear > n*n-1 {
		return 0, fmt.Errorf("%w: linear index %d", ErrOutOfRange, linear)
	}
	return n*n - 1 - linear, nil
}

// FromBitIndex returns the grid coordinates of a bit index.
func (c Codec) FromBitIndex(bit int) (int, int, error) {
	n := c.Dim()
	if bit < 0 || bit > n*n-1 {
		return 0, 0, fmt.Errorf("%w: bit index %d", ErrOutOfRange, bit)
	}
	return c.FromLinear(n*n - 1 - bit)
}

// ToAlgebraic returns the column letter followed by the 1-based row, e.g.
// (3, 3) is "D4".
func (c Codec) ToAlgebraic(x, y int) (string, error) {
	if !c.inside(x, y) {
		return "", fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, x, y)
	}
	return string(rune('A'+x)) + strconv.Itoa(y+1), nil
}

// FromAlgebraic parses a letter followed by a row number. The letter is
// case-insensitive.
func (c Codec) FromAlgebraic(code string) (int, int, error) {
	m := reAlgebraic.FindStringSubmatch(code)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q is not a letter followed by digits", ErrInvalidFormat, code)
	}
	x := int(strings.ToUpper(m[1])[0] - 'A')
	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 || row > c.Dim() || x >= c.Dim() {
		return 0, 0, fmt.Errorf("%w: %q on a %dx%d board", ErrOutOfRange, code, c.Dim(), c.Dim())
	}
	return x, row - 1, nil
}

// ToLinear maps (x, y) on the standard board to a row-major index.
func ToLinear(x, y int) (int, error) {
	return standard.ToLinear(x, y)
}

// FromLinear maps a row-major index on the standard board back to (x, y).
func FromLinear(index int) (int, int, error) {
	return standard.FromLinear(index)
}

// ToBitIndex maps a linear index on the standard board to a bit index.
func ToBitIndex(linear int) (int, error) {
	return standard.ToBitIndex(linear)
}

// FromBitIndex maps a bit index on the standard board to (x, y).
func FromBitIndex(bit int) (int, int, error) {
	return standard.FromBitIndex(bit)
}

// ToAlgebraic returns the algebraic name of (x, y) on the standard board.
func ToAlgebraic(x, y int) (string, error) {
	return standard.ToAlgebraic(x, y)
}

// FromAlgebraic parses an algebraic name on the standard board.
func FromAlgebraic(code string) (int, int, error) {
	return standard.FromAlgebraic(code)
}
