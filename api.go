package uniwidth

// Width returns the display column width of cp: 0, 1, or 2. Behavior
// for surrogates is unspecified, matching TableReader.Get.
func Width(cp rune) int {
	return defaultTableReader().Get(cp).Width
}

// GraphemeBreak reports whether a user-perceived character boundary
// lies between cp1 and cp2, advancing *state in the process. Callers
// must exclude CR, LF, and control codepoints before calling; behavior
// on those is undefined by contract. state must not be shared across
// concurrent calls: it is a per-scan value owned by the caller, reset
// to the zero BreakState at the start of each cluster scan.
func GraphemeBreak(cp1, cp2 rune, state *BreakState) bool {
	reader := defaultTableReader()
	c1 := reader.Get(cp1).Class
	c2 := reader.Get(cp2).Class
	cell := lookupBreak(*state, c1, c2)
	*state = cell.nextState()
	return cell.broken()
}
