package zobrist

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/othlib/board"
)

func newZobrist(t *testing.T) *Zobrist {
	t.Helper()
	z := &Zobrist{}
	if err := z.Initialize(8); err != nil {
		t.Fatal(err)
	}
	return z
}

func TestInitializeDimension(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	is.True(errors.Is(z.Initialize(15), board.ErrUnsupportedDimension))
}

func TestSideToMove(t *testing.T) {
	is := is.New(t)
	z := newZobrist(t)
	b, err := board.New(8)
	is.NoErr(err)
	h := z.Hash(b, board.Black)
	is.True(h != z.Hash(b, board.White))
	is.Equal(z.Pass(h), z.Hash(b, board.White))
	is.Equal(z.Pass(z.Pass(h)), h)
}

// Black plays D3 from the start, flipping D4. Building the key incrementally
// must land on the same value as hashing the resulting board.
func TestIncrementalMatchesFull(t *testing.T) {
	is := is.New(t)
	z := newZobrist(t)
	start, err := board.New(8)
	is.NoErr(err)
	h := z.Hash(start, board.Black)

	h1 := z.Toggle(h, board.D3, board.Black)
	h1 = z.FlipAll(h1, board.D4.Mask())
	h1 = z.Pass(h1)

	after, err := board.FromMasks(
		board.InitialBlack|board.MustMask("D3", "D4"),
		board.InitialWhite&^board.MustMask("D4"))
	is.NoErr(err)
	is.Equal(h1, z.Hash(after, board.White))

	// and back again
	h2 := z.Pass(z.Flip(z.Toggle(h1, board.D3, board.Black), board.D4))
	is.Equal(h2, h)
}

func TestInvalidInputsLeaveKey(t *testing.T) {
	is := is.New(t)
	z := newZobrist(t)
	is.Equal(z.Toggle(42, board.NoSquare, board.Black), uint64(42))
	is.Equal(z.Toggle(42, board.A1, board.Color(5)), uint64(42))
	is.Equal(z.Flip(42, board.NoSquare), uint64(42))
}

func TestColorsDiffer(t *testing.T) {
	is := is.New(t)
	z := newZobrist(t)
	a, _ := board.FromMasks(board.MustMask("A1"), 0)
	b, _ := board.FromMasks(0, board.MustMask("A1"))
	is.True(z.Hash(a, board.Black) != z.Hash(b, board.Black))
}
