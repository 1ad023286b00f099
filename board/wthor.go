package board

import "fmt"

// WTHOR game archives store each ply as one byte, 10*row + column with both
// 1-based, so A1 is 11 and H8 is 88. This has nothing to do with bit
// indexes.

// FromWThorMove decodes an archive move byte.
func FromWThorMove(code byte) (Square, error) {
	row, col := int(code/10), int(code%10)
	if row < 1 || row > StandardDim || col < 1 || col > StandardDim {
		return NoSquare, fmt.Errorf("%w: archive move %d", ErrOutOfRange, code)
	}
	return squareAt(col-1, row-1), nil
}

// WThorMove encodes sq as an archive move byte. Invalid squares encode as 0,
// which archives use for "no move".
func (sq Square) WThorMove() byte {
	if !sq.Valid() {
		return 0
	}
	return byte(10*(sq.Y()+1) + sq.X() + 1)
}
