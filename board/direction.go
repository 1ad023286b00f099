package board

// A Direction is one of the eight compass directions a line of discs can
// run in. North is toward row 1, east is toward column H.
type Direction uint8

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// NumDirections is the number of compass directions.
const NumDirections = 8

// Directions lists every direction in table order.
var Directions = [NumDirections]Direction{N, NE, E, SE, S, SW, W, NW}

// A Sense says which way a shift moves bits.
type Sense uint8

const (
	// TowardLower is a right shift.
	TowardLower Sense = iota
	// TowardHigher is a left shift.
	TowardHigher
)

func (s Sense) String() string {
	if s == TowardLower {
		return "right"
	}
	return "left"
}

type directionInfo struct {
	name     string
	distance uint
	sense    Sense
	// applied after the shift; clears bits that wrapped across the A/H edge.
	edgeMask uint64
	dx, dy   int
}

var directionTable = [NumDirections]directionInfo{
	N:  {"N", 8, TowardHigher, 0xFFFFFFFFFFFFFFFF, 0, -1},
	NE: {"NE", 7, TowardHigher, 0x7F7F7F7F7F7F7F00, 1, -1},
	E:  {"E", 1, TowardLower, 0x7F7F7F7F7F7F7F7F, 1, 0},
	SE: {"SE", 9, TowardLower, 0x007F7F7F7F7F7F7F, 1, 1},
	S:  {"S", 8, TowardLower, 0xFFFFFFFFFFFFFFFF, 0, 1},
	SW: {"SW", 7, TowardLower, 0x00FEFEFEFEFEFEFE, -1, 1},
	W:  {"W", 1, TowardHigher, 0xFEFEFEFEFEFEFEFE, -1, 0},
	NW: {"NW", 9, TowardHigher, 0xFEFEFEFEFEFEFE00, -1, -1},
}

// Valid reports whether d is one of the eight directions.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// Distance is the number of bit positions a one-square step shifts by.
func (d Direction) Distance() uint {
	if !d.Valid() {
		return 0
	}
	return directionTable[d].distance
}

// Sense is the shift direction of a one-square step.
func (d Direction) Sense() Sense {
	if !d.Valid() {
		return TowardLower
	}
	return directionTable[d].sense
}

// EdgeMask is the mask applied to the shifted value.
func (d Direction) EdgeMask() uint64 {
	if !d.Valid() {
		return 0
	}
	return directionTable[d].edgeMask
}

// Delta returns the grid step (dx, dy) of the direction.
func (d Direction) Delta() (int, int) {
	if !d.Valid() {
		return 0, 0
	}
	return directionTable[d].dx, directionTable[d].dy
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + NumDirections/2) % NumDirections
}

func (d Direction) String() string {
	if !d.Valid() {
		return "none"
	}
	return directionTable[d].name
}
