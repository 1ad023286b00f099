package movegen

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// A Position is a pair of occupancy masks seen from the side to move.
type Position struct {
	Own      uint64
	Opponent uint64
}

// Legal returns the legal moves for the side to move.
func (p Position) Legal() uint64 {
	return LegalMoves(p.Own, p.Opponent)
}

// batchChunk is how many positions a single goroutine takes at a time.
const batchChunk = 256

// Batch computes the legal moves of every position using up to workers
// goroutines. Results are in input order. If workers <= 0, GOMAXPROCS is
// used. A cancelled context stops the batch and its error is returned.
func Batch(ctx context.Context, positions []Position, workers int) ([]uint64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]uint64, len(positions))
	if len(positions) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return results, nil
	}
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for from := 0; from < len(positions); from += batchChunk {
		from := from
		to := min(from+batchChunk, len(positions))
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			for i := from; i < to; i++ {
				if i%64 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				results[i] = positions[i].Legal()
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		// a cancel after the last chunk was queued but before Wait
		err = ctx.Err()
	}
	if err != nil {
		log.Debug().Err(err).Int("positions", len(positions)).Msg("batch interrupted")
		return nil, err
	}
	log.Debug().Int("positions", len(positions)).Int("workers", workers).
		Dur("elapsed", time.Since(start)).Msg("batch done")
	return results, nil
}
