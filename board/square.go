package board

import "fmt"

// A Square is a bit index into an occupancy mask. Bit 0 is H8 and bit 63
// is A1, i.e. the bit index is 63 - (x + 8*y).
type Square uint8

// Squares in bit-index order.
const (
	H8 Square = iota
	G8
	F8
	E8
	D8
	C8
	B8
	A8
	H7
	G7
	F7
	E7
	D7
	C7
	B7
	A7
	H6
	G6
	F6
	E6
	D6
	C6
	B6
	A6
	H5
	G5
	F5
	E5
	D5
	C5
	B5
	A5
	H4
	G4
	F4
	E4
	D4
	C4
	B4
	A4
	H3
	G3
	F3
	E3
	D3
	C3
	B3
	A3
	H2
	G2
	F2
	E2
	D2
	C2
	B2
	A2
	H1
	G1
	F1
	E1
	D1
	C1
	B1
	A1
	NoSquare Square = NumSquares
)

// NewSquare returns the square at grid (x, y).
func NewSquare(x, y int) (Square, error) {
	if !standard.inside(x, y) {
		return NoSquare, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, x, y)
	}
	return squareAt(x, y), nil
}

func squareAt(x, y int) Square {
	return Square(NumSquares - 1 - (x + StandardDim*y))
}

// ParseSquare parses algebraic notation such as "d3" or "F5".
func ParseSquare(s string) (Square, error) {
	x, y, err := FromAlgebraic(s)
	if err != nil {
		return NoSquare, err
	}
	return squareAt(x, y), nil
}

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool {
	return sq < NoSquare
}

// Linear returns the row-major index x + 8*y.
func (sq Square) Linear() int {
	return NumSquares - 1 - int(sq)
}

// X returns the column, 0 for A.
func (sq Square) X() int {
	return sq.Linear() % StandardDim
}

// Y returns the row, 0 for row 1.
func (sq Square) Y() int {
	return sq.Linear() / StandardDim
}

// Mask returns an occupancy mask with only sq set.
func (sq Square) Mask() uint64 {
	if !sq.Valid() {
		return 0
	}
	return 1 << sq
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'A'+sq.X(), sq.Y()+1)
}
