package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestLinearRoundTrip(t *testing.T) {
	is := is.New(t)
	for y := 0; y < StandardDim; y++ {
		for x := 0; x < StandardDim; x++ {
			i, err := ToLinear(x, y)
			is.NoErr(err)
			is.Equal(i, x+8*y)
			gx, gy, err := FromLinear(i)
			is.NoErr(err)
			is.Equal(gx, x)
			is.Equal(gy, y)
		}
	}
}

func TestBitIndex(t *testing.T) {
	is := is.New(t)
	bit, err := ToBitIndex(0)
	is.NoErr(err)
	is.Equal(bit, 63)
	bit, err = ToBitIndex(63)
	is.NoErr(err)
	is.Equal(bit, 0)

	x, y, err := FromBitIndex(0)
	is.NoErr(err)
	is.Equal(x, 7)
	is.Equal(y, 7)

	_, err = ToBitIndex(64)
	is.True(errors.Is(err, ErrOutOfRange))
	_, err = ToBitIndex(-1)
	is.True(errors.Is(err, ErrOutOfRange))
	_, _, err = FromBitIndex(64)
	is.True(errors.Is(err, ErrOutOfRange))
}

func TestAlgebraic(t *testing.T) {
	is := is.New(t)
	for y := 0; y < StandardDim; y++ {
		for x := 0; x < StandardDim; x++ {
			code, err := ToAlgebraic(x, y)
			is.NoErr(err)
			gx, gy, err := FromAlgebraic(code)
			is.NoErr(err)
			is.Equal(gx, x)
			is.Equal(gy, y)
		}
	}
	code, err := ToAlgebraic(3, 2)
	is.NoErr(err)
	is.Equal(code, "D3")
}

func TestAlgebraicErrors(t *testing.T) {
	testCases := []struct {
		code string
		want error
	}{
		{"", ErrInvalidFormat},
		{"D", ErrInvalidFormat},
		{"44", ErrInvalidFormat},
		{"DD4", ErrInvalidFormat},
		{"D4 ", ErrInvalidFormat},
		{"é4", ErrInvalidFormat},
		{"I1", ErrOutOfRange},
		{"A9", ErrOutOfRange},
		{"A0", ErrOutOfRange},
		{"Z26", ErrOutOfRange},
		{"A99999999999999999999", ErrOutOfRange},
	}
	for _, tc := range testCases {
		_, _, err := FromAlgebraic(tc.code)
		if !errors.Is(err, tc.want) {
			t.Errorf("FromAlgebraic(%q): got %v, want %v", tc.code, err, tc.want)
		}
	}
}

func TestAlgebraicLowerCase(t *testing.T) {
	is := is.New(t)
	x, y, err := FromAlgebraic("f5")
	is.NoErr(err)
	is.Equal(x, 5)
	is.Equal(y, 4)
}

func TestOutOfRangeCoordinates(t *testing.T) {
	is := is.New(t)
	_, err := ToLinear(8, 0)
	is.True(errors.Is(err, ErrOutOfRange))
	_, err = ToLinear(0, -1)
	is.True(errors.Is(err, ErrOutOfRange))
	_, _, err = FromLinear(64)
	is.True(errors.Is(err, ErrOutOfRange))
	_, err = ToAlgebraic(-1, 3)
	is.True(errors.Is(err, ErrOutOfRange))
}

func TestCodecDimensions(t *testing.T) {
	is := is.New(t)
	for _, dim := range []int{0, 1, 3, 7, 27, 28} {
		_, err := NewCodec(dim)
		is.True(errors.Is(err, ErrUnsupportedDimension))
	}

	c, err := NewCodec(10)
	is.NoErr(err)
	is.Equal(c.Dim(), 10)
	i, err := c.ToLinear(9, 9)
	is.NoErr(err)
	is.Equal(i, 99)
	bit, err := c.ToBitIndex(0)
	is.NoErr(err)
	is.Equal(bit, 99)
	x, y, err := c.FromAlgebraic("J10")
	is.NoErr(err)
	is.Equal(x, 9)
	is.Equal(y, 9)
	_, _, err = c.FromAlgebraic("K1")
	is.True(errors.Is(err, ErrOutOfRange))

	var zero Codec
	is.Equal(zero.Dim(), StandardDim)
}

func TestSquare(t *testing.T) {
	is := is.New(t)
	is.Equal(int(A1), 63)
	is.Equal(int(H8), 0)
	is.Equal(A1.Mask(), uint64(1)<<63)
	is.Equal(D3.String(), "D3")
	is.Equal(D3.X(), 3)
	is.Equal(D3.Y(), 2)
	is.Equal(NoSquare.String(), "-")
	is.Equal(NoSquare.Mask(), uint64(0))

	for sq := Square(0); sq < NoSquare; sq++ {
		parsed, err := ParseSquare(sq.String())
		is.NoErr(err)
		is.Equal(parsed, sq)
		made, err := NewSquare(sq.X(), sq.Y())
		is.NoErr(err)
		is.Equal(made, sq)
		bit, err := ToBitIndex(sq.Linear())
		is.NoErr(err)
		is.Equal(bit, int(sq))
	}

	_, err := NewSquare(8, 8)
	is.True(errors.Is(err, ErrOutOfRange))
}
