package board

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
)

// binaryLen is the size of the binary form: Black's mask then White's,
// big-endian.
const binaryLen = NumColors * 8

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *BitBoard) MarshalBinary() ([]byte, error) {
	return b.appendBinary(make([]byte, 0, binaryLen)), nil
}

func (b *BitBoard) appendBinary(buf []byte) []byte {
	buf = binary.BigEndian.AppendUint64(buf, b.discs[Black])
	return binary.BigEndian.AppendUint64(buf, b.discs[White])
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. When validating,
// overlapping masks are rejected and the board is left unchanged.
func (b *BitBoard) UnmarshalBinary(data []byte) error {
	if len(data) != binaryLen {
		return fmt.Errorf("%w: %d bytes, want %d", ErrInvalidFormat, len(data), binaryLen)
	}
	black := binary.BigEndian.Uint64(data[0:8])
	white := binary.BigEndian.Uint64(data[8:16])
	if b.validating() && black&white != 0 {
		return overlapError(black & white)
	}
	b.discs[Black] = black
	b.discs[White] = white
	return nil
}

// Hash returns a 64-bit key for the position, suitable for caches and
// transposition tables. Side to move is not part of it.
func (b *BitBoard) Hash() uint64 {
	var buf [binaryLen]byte
	return xxhash.Sum64(b.appendBinary(buf[:0]))
}
