// Package movegen computes the set of legal moves for a side from the two
// occupancy masks of a position.
package movegen

import (
	"math/bits"

	"github.com/samber/lo"

	"github.com/domino14/othlib/board"
)

// LegalMoves returns the mask of empty squares where the owner of own may
// place a disc: squares that bracket one or more contiguous opponent discs
// in at least one direction against a disc of own.
//
// The masks are expected to be disjoint, but any pair of inputs gives some
// answer; nothing here fails.
func LegalMoves(own, opponent uint64) uint64 {
	empty := ^(own | opponent)
	var moves uint64
	for _, d := range board.Directions {
		// opponent runs that start next to one of our discs
		run := board.Shift(d, own) & opponent
		for {
			next := run | board.Shift(d, run)&opponent
			if next == run {
				break
			}
			run = next
		}
		moves |= board.Shift(d, run) & empty
	}
	return moves
}

// ForColor returns the legal moves for c on b.
func ForColor(b *board.BitBoard, c board.Color) uint64 {
	return LegalMoves(b.Get(c), b.Get(c.Opponent()))
}

// LegalSquares lists the legal moves in increasing bit-index order.
func LegalSquares(own, opponent uint64) []board.Square {
	return board.Squares(LegalMoves(own, opponent))
}

// LegalAlgebraic names the legal moves, A1 first, row by row.
func LegalAlgebraic(own, opponent uint64) []string {
	return board.AlgebraicList(LegalMoves(own, opponent))
}

// Mobility is the number of legal moves.
func Mobility(own, opponent uint64) int {
	return bits.OnesCount64(LegalMoves(own, opponent))
}

func HasLegalMove(own, opponent uint64) bool {
	return LegalMoves(own, opponent) != 0
}

// IsLegal reports whether sq is a legal move.
func IsLegal(own, opponent uint64, sq board.Square) bool {
	return LegalMoves(own, opponent)&sq.Mask() != 0
}

// MustPass reports whether c has no move while the other side does.
func MustPass(b *board.BitBoard, c board.Color) bool {
	return ForColor(b, c) == 0 && ForColor(b, c.Opponent()) != 0
}

// GameOver reports whether neither side can move. A full board is the usual
// case but not the only one.
func GameOver(b *board.BitBoard) bool {
	return !lo.SomeBy([]board.Color{board.Black, board.White}, func(c board.Color) bool {
		return ForColor(b, c) != 0
	})
}
