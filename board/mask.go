package board

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	// EmptyMask has no square set.
	EmptyMask uint64 = 0
	// FullMask has every square set.
	FullMask uint64 = ^EmptyMask
)

// Squares returns the squares set in mask, in increasing bit-index order.
func Squares(mask uint64) []Square {
	sqs := make([]Square, 0, bits.OnesCount64(mask))
	for mask != 0 {
		sqs = append(sqs, Square(bits.TrailingZeros64(mask)))
		mask &= mask - 1
	}
	return sqs
}

// MaskOf returns the mask with exactly the given squares set. Invalid
// squares are ignored.
func MaskOf(sqs ...Square) uint64 {
	var m uint64
	for _, sq := range sqs {
		m |= sq.Mask()
	}
	return m
}

// MaskFromBitIndexes sets the listed bit indexes.
func MaskFromBitIndexes(indexes ...int) (uint64, error) {
	var m uint64
	for _, i := range indexes {
		if i < 0 || i >= NumSquares {
			return 0, fmt.Errorf("%w: bit index %d", ErrOutOfRange, i)
		}
		m |= 1 << uint(i)
	}
	return m, nil
}

// MaskFromAlgebraic sets the squares named in algebraic notation.
func MaskFromAlgebraic(codes ...string) (uint64, error) {
	var m uint64
	for _, c := range codes {
		sq, err := ParseSquare(c)
		if err != nil {
			return 0, err
		}
		m |= sq.Mask()
	}
	return m, nil
}

// MustMask is MaskFromAlgebraic for literals known to be valid; it panics
// otherwise.
func MustMask(codes ...string) uint64 {
	m, err := MaskFromAlgebraic(codes...)
	if err != nil {
		panic(err)
	}
	return m
}

// AlgebraicList names the squares set in mask, A1 first, then B1, and so on
// row by row.
func AlgebraicList(mask uint64) []string {
	sqs := Squares(mask)
	// increasing bit index is H8 first
	slices.Reverse(sqs)
	return lo.Map(sqs, func(sq Square, _ int) string {
		return sq.String()
	})
}

// DrawMask renders mask as a grid with row 1 at the top, for debugging.
func DrawMask(mask uint64) string {
	var sb strings.Builder
	sb.WriteString("  A B C D E F G H\n")
	for y := 0; y < StandardDim; y++ {
		fmt.Fprintf(&sb, "%d ", y+1)
		for x := 0; x < StandardDim; x++ {
			if mask&squareAt(x, y).Mask() != 0 {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
