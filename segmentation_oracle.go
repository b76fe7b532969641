package uniwidth

// classifyPair is the reference UAX #29 subset described by the spec.
// It is used only to populate BreakTable at startup; the hot path
// never calls it directly. It returns true when a user-perceived
// boundary lies between c1 and c2, and mutates *state in place.
//
// Rules are applied in the listed order; the first match decides the
// verdict (R0 is stateful bookkeeping, not itself a verdict, and
// always runs first). GB3/GB4 are intentionally absent: callers filter
// control codepoints, CR, and LF before they ever reach this package.
func classifyPair(c1, c2 BoundaryClass, state *BreakState) bool {
	// R0: entering a pictographic run.
	if !state.ExtendedPictographic && (c1 == ClassExtendedPictographic || c1 == ClassExtendedPictographicBase) {
		state.ExtendedPictographic = true
	}

	switch {
	// GB6: Hangul L x (L | V | LV | LVT)
	case c1 == ClassL && (c2 == ClassL || c2 == ClassV || c2 == ClassLV || c2 == ClassLVT):
		return noBreak(state)

	// GB7: Hangul (LV | V) x (V | T)
	case (c1 == ClassLV || c1 == ClassV) && (c2 == ClassV || c2 == ClassT):
		return noBreak(state)

	// GB8: Hangul (LVT | T) x T
	case (c1 == ClassLVT || c1 == ClassT) && c2 == ClassT:
		return noBreak(state)

	// GB9: x (Extend | ZWJ)
	case c2 == ClassExtend || c2 == ClassZWJ:
		return noBreak(state)

	// GB9a: x SpacingMark
	case c2 == ClassSpacingMark:
		return noBreak(state)

	// GB9b: Prepend x
	case c1 == ClassPrepend:
		return noBreak(state)

	// GB12/GB13: RI x RI
	case c1 == ClassRegionalIndicator && c2 == ClassRegionalIndicator:
		if state.RegionalIndicator {
			state.RegionalIndicator = false
			return true
		}
		state.RegionalIndicator = true
		return false

	// GB11: EP Extend* ZWJ x EP
	case state.ExtendedPictographic && c1 == ClassZWJ && (c2 == ClassExtendedPictographic || c2 == ClassExtendedPictographicBase):
		state.ExtendedPictographic = false
		return false

	// Emoji modifier sequence.
	case c2 == ClassEmojiModifier && c1 == ClassExtendedPictographicBase:
		return noBreak(state)

	default:
		return breakHere(state)
	}
}

// noBreak clears the regional-indicator flag (GB12/13 manages it
// itself and never reaches here) and leaves ExtendedPictographic as R0
// set it, since the pictographic run is still open.
func noBreak(state *BreakState) bool {
	state.RegionalIndicator = false
	return false
}

// breakHere closes out both flags: the sequence that could have
// continued them is over.
func breakHere(state *BreakState) bool {
	state.RegionalIndicator = false
	state.ExtendedPictographic = false
	return true
}
