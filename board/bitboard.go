package board

import (
	"fmt"
	"math/bits"

	"github.com/rs/zerolog/log"
)

const (
	// InitialBlack is Black's occupancy at the start of a game: D5 and E4.
	InitialBlack uint64 = 0x0000000810000000
	// InitialWhite is White's occupancy at the start of a game: D4 and E5.
	InitialWhite uint64 = 0x0000001008000000
)

// A BitBoard holds one occupancy mask per colour. The two masks never share
// a set bit unless validation has been switched off.
type BitBoard struct {
	discs [NumColors]uint64
	// zero value validates
	noValidate bool
}

// An Option configures a BitBoard at construction.
type Option func(*BitBoard)

// WithValidation turns the disjointness check on mutation on or off. It is
// on by default.
func WithValidation(on bool) Option {
	return func(b *BitBoard) {
		b.noValidate = !on
	}
}

// New returns a board of the given dimension set to the starting position.
// Only 8x8 fits in a 64-bit mask.
func New(dim int, opts ...Option) (*BitBoard, error) {
	if dim != StandardDim {
		return nil, fmt.Errorf("%w: %dx%d, only %dx%d is supported",
			ErrUnsupportedDimension, dim, dim, StandardDim, StandardDim)
	}
	b := NewEmpty(opts...)
	b.discs[Black] = InitialBlack
	b.discs[White] = InitialWhite
	return b, nil
}

// NewEmpty returns a board with no discs on it.
func NewEmpty(opts ...Option) *BitBoard {
	b := &BitBoard{}
	for _, o := range opts {
		o(b)
	}
	return b
}

// FromMasks builds a board from explicit occupancies.
func FromMasks(black, white uint64, opts ...Option) (*BitBoard, error) {
	b := NewEmpty(opts...)
	if b.validating() && black&white != 0 {
		return nil, overlapError(black & white)
	}
	b.discs[Black] = black
	b.discs[White] = white
	return b, nil
}

func (b *BitBoard) validating() bool {
	return !b.noValidate
}

func overlapError(overlap uint64) error {
	return fmt.Errorf("%w: squares %v occupied by both colors",
		ErrStateInvariant, AlgebraicList(overlap))
}

// Get returns c's occupancy.
func (b *BitBoard) Get(c Color) uint64 {
	if !c.valid() {
		return 0
	}
	return b.discs[c]
}

// Set replaces c's occupancy outright. It is meant for loading positions and
// test setup, not for playing moves. When validating, a mask that overlaps
// the other colour is rejected and the board is left unchanged.
func (b *BitBoard) Set(c Color, mask uint64) error {
	if !c.valid() {
		return fmt.Errorf("%w: color %d", ErrOutOfRange, c)
	}
	if b.validating() {
		if overlap := mask & b.discs[c.Opponent()]; overlap != 0 {
			log.Debug().Str("color", c.String()).Strs("overlap", AlgebraicList(overlap)).
				Msg("rejected overlapping occupancy")
			return overlapError(overlap)
		}
	}
	b.discs[c] = mask
	return nil
}

// Shift is Shift(d, b.Get(c)).
func (b *BitBoard) Shift(d Direction, c Color) uint64 {
	return Shift(d, b.Get(c))
}

// Occupied returns the squares holding a disc of either colour.
func (b *BitBoard) Occupied() uint64 {
	return b.discs[Black] | b.discs[White]
}

// Empty returns the squares holding no disc.
func (b *BitBoard) Empty() uint64 {
	return ^b.Occupied()
}

// CountEmpty returns the number of empty squares.
func (b *BitBoard) CountEmpty() int {
	return bits.OnesCount64(b.Empty())
}

// CountOccupied returns the number of discs on the board.
func (b *BitBoard) CountOccupied() int {
	return NumSquares - b.CountEmpty()
}

// Count returns the number of c's discs.
func (b *BitBoard) Count(c Color) int {
	return bits.OnesCount64(b.Get(c))
}

// At reports the colour of the disc on sq, if any. With overlapping masks
// (validation off) Black wins.
func (b *BitBoard) At(sq Square) (Color, bool) {
	m := sq.Mask()
	switch {
	case b.discs[Black]&m != 0:
		return Black, true
	case b.discs[White]&m != 0:
		return White, true
	}
	return Black, false
}

// Validate checks the disjointness invariant regardless of the validation
// option.
func (b *BitBoard) Validate() error {
	if overlap := b.discs[Black] & b.discs[White]; overlap != 0 {
		return overlapError(overlap)
	}
	return nil
}

// Copy returns an independent copy of the board, options included.
func (b *BitBoard) Copy() *BitBoard {
	cp := *b
	return &cp
}

// Equal compares occupancies only.
func (b *BitBoard) Equal(other *BitBoard) bool {
	return b.discs == other.discs
}
