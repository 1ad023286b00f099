package zobrist

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/domino14/othlib/board"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for an othello position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// Unlike BitBoard.Hash, the key includes the side to move and can be
// updated disc by disc.
type Zobrist struct {
	whiteToMove uint64

	posTable [board.NumSquares][board.NumColors]uint64
}

func (z *Zobrist) Initialize(boardDim int) error {
	if boardDim != board.StandardDim {
		return fmt.Errorf("%w: %d", board.ErrUnsupportedDimension, boardDim)
	}
	for i := 0; i < board.NumSquares; i++ {
		for j := 0; j < board.NumColors; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.whiteToMove = frand.Uint64n(bignum) + 1
	return nil
}

// Hash computes the key of b with toMove to play.
func (z *Zobrist) Hash(b *board.BitBoard, toMove board.Color) uint64 {
	key := uint64(0)
	for c := board.Black; c <= board.White; c++ {
		for _, sq := range board.Squares(b.Get(c)) {
			key ^= z.posTable[sq][c]
		}
	}
	if toMove == board.White {
		key ^= z.whiteToMove
	}
	return key
}

// Toggle adds a disc of colour c on sq to the key, or removes it if it is
// already there.
func (z *Zobrist) Toggle(key uint64, sq board.Square, c board.Color) uint64 {
	if !sq.Valid() || c > board.White {
		return key
	}
	return key ^ z.posTable[sq][c]
}

// Flip turns the disc on sq over.
func (z *Zobrist) Flip(key uint64, sq board.Square) uint64 {
	if !sq.Valid() {
		return key
	}
	return key ^ z.posTable[sq][board.Black] ^ z.posTable[sq][board.White]
}

// FlipAll turns over every disc in mask.
func (z *Zobrist) FlipAll(key uint64, mask uint64) uint64 {
	for _, sq := range board.Squares(mask) {
		key = z.Flip(key, sq)
	}
	return key
}

// Pass hands the move to the other side, which every ply does.
func (z *Zobrist) Pass(key uint64) uint64 {
	return key ^ z.whiteToMove
}
