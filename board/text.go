package board

import (
	"fmt"
	"strings"
)

const emptyChar = '-'

// String renders the board as eight lines of "-", "B" and "W", row 1 first.
// ParseText reads the same format back.
func (b *BitBoard) String() string {
	var sb strings.Builder
	for y := 0; y < StandardDim; y++ {
		for x := 0; x < StandardDim; x++ {
			sb.WriteByte(b.charAt(squareAt(x, y)))
		}
		if y != StandardDim-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *BitBoard) charAt(sq Square) byte {
	c, ok := b.At(sq)
	if !ok {
		return emptyChar
	}
	return c.Char()
}

// Display renders the board with column letters and row numbers. Empty
// squares in marks (typically the legal moves) are drawn as "*".
func (b *BitBoard) Display(marks uint64) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < StandardDim; x++ {
		fmt.Fprintf(&sb, "%c ", 'A'+x)
	}
	sb.WriteString("\n")
	for y := 0; y < StandardDim; y++ {
		fmt.Fprintf(&sb, "%2d ", y+1)
		for x := 0; x < StandardDim; x++ {
			sq := squareAt(x, y)
			ch := b.charAt(sq)
			if ch == emptyChar && marks&sq.Mask() != 0 {
				ch = '*'
			}
			sb.WriteByte(ch)
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "black %d white %d empty %d\n",
		b.Count(Black), b.Count(White), b.CountEmpty())
	return sb.String()
}

// ParseText reads a board in the String format. Surrounding whitespace on
// each line is ignored.
func ParseText(s string, opts ...Option) (*BitBoard, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != StandardDim {
		return nil, fmt.Errorf("%w: %d rows", ErrUnsupportedDimension, len(lines))
	}
	var discs [NumColors]uint64
	for y, line := range lines {
		row := strings.TrimSpace(line)
		if len(row) != StandardDim {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d",
				ErrInvalidFormat, y+1, len(row), StandardDim)
		}
		for x := 0; x < StandardDim; x++ {
			switch row[x] {
			case 'B':
				discs[Black] |= squareAt(x, y).Mask()
			case 'W':
				discs[White] |= squareAt(x, y).Mask()
			case emptyChar:
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %s",
					ErrInvalidFormat, row[x], squareAt(x, y))
			}
		}
	}
	// a character is one colour or the other, so these can't overlap
	return FromMasks(discs[Black], discs[White], opts...)
}

// MarshalText implements encoding.TextMarshaler.
func (b *BitBoard) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The board's
// validation option is kept.
func (b *BitBoard) UnmarshalText(text []byte) error {
	parsed, err := ParseText(string(text))
	if err != nil {
		return err
	}
	b.discs = parsed.discs
	return nil
}
