package uniwidth

// BreakState is the two-bit, caller-owned state carried across pairs of
// codepoints within a single left-to-right cluster scan. It is never
// hidden inside this package: every call to GraphemeBreak reads and
// writes a state value the caller holds, and the caller is responsible
// for resetting it to the zero value at logical break points (CR/LF
// handling is external to this package, same as the boundary classes
// themselves).
//
// The zero value is the correct initial state.
type BreakState struct {
	// ExtendedPictographic is set while inside an Emoji · Extend* ·
	// ZWJ sequence anticipating another Emoji (GB11).
	ExtendedPictographic bool

	// RegionalIndicator toggles across consecutive regional-indicator
	// codepoints (GB12/GB13): true after an odd number of consecutive
	// RI x RI pairs, i.e. when the last pair was joined.
	RegionalIndicator bool
}

func (s BreakState) bits() int {
	var b int
	if s.ExtendedPictographic {
		b |= 0b01
	}
	if s.RegionalIndicator {
		b |= 0b10
	}
	return b
}

func breakStateFromBits(b int) BreakState {
	return BreakState{
		ExtendedPictographic: b&0b01 != 0,
		RegionalIndicator:    b&0b10 != 0,
	}
}

// encodeBreakKey packs (state, c1, c2) into the 10-bit composite key
// used to index BreakTable: bits [0..1] = state, [2..5] = c1,
// [6..9] = c2.
func encodeBreakKey(state BreakState, c1, c2 BoundaryClass) int {
	return state.bits() | int(c1)<<2 | int(c2)<<6
}

const breakTableSize = 1 << 10 // 2 state bits + 4 + 4 class bits
