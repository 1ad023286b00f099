package board

// Shift moves every bit of mask one square in direction d. Bits that would
// leave the board vanish, including those that would otherwise wrap from
// column H to column A of a neighbouring row (or the reverse). An unknown
// direction yields an empty mask.
func Shift(d Direction, mask uint64) uint64 {
	if !d.Valid() {
		return 0
	}
	info := &directionTable[d]
	if info.sense == TowardLower {
		return (mask >> info.distance) & info.edgeMask
	}
	return (mask << info.distance) & info.edgeMask
}
