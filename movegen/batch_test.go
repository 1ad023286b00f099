package movegen

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestBatchMatchesSequential(t *testing.T) {
	is := is.New(t)
	positions := make([]Position, 3000)
	for i := range positions {
		own, opp := randomPosition()
		positions[i] = Position{Own: own, Opponent: opp}
	}
	for _, workers := range []int{0, 1, 3, 16} {
		got, err := Batch(context.Background(), positions, workers)
		is.NoErr(err)
		is.Equal(len(got), len(positions))
		for i, p := range positions {
			if got[i] != LegalMoves(p.Own, p.Opponent) {
				t.Fatalf("workers %d, position %d: got %#x", workers, i, got[i])
			}
		}
	}
}

func TestBatchEmpty(t *testing.T) {
	is := is.New(t)
	got, err := Batch(context.Background(), nil, 4)
	is.NoErr(err)
	is.Equal(len(got), 0)
}

func TestBatchCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	positions := make([]Position, 1000)
	got, err := Batch(ctx, positions, 2)
	is.True(errors.Is(err, context.Canceled))
	is.Equal(got, nil)

	_, err = Batch(ctx, nil, 2)
	is.True(errors.Is(err, context.Canceled))
}
