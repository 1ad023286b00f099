package board

// A Color is one of the two sides. It doubles as the index into a
// BitBoard's mask array.
type Color uint8

const (
	Black Color = iota
	White
)

// NumColors is the number of sides in a game.
const NumColors = 2

// Opponent returns the other side.
func (c Color) Opponent() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "none"
}

// Char is the one-letter form used by the text board format.
func (c Color) Char() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

func (c Color) valid() bool {
	return c == Black || c == White
}
