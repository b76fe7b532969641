package uniwidth

import (
	"sort"
	"unicode"
)

// builtinOracle is the concrete, in-repo PropertyOracle from which the
// public API's tables are built at process start. The distilled spec
// treats "the authoritative Unicode property oracle" as an external
// collaborator reachable only through classify/equal; this is this
// module's own implementation of that collaborator, built from
// curated Unicode range tables rather than by parsing a UCD XML dump
// at runtime (there is no such dump bundled with this module, and
// nothing in the retrieved example corpus ships one either — see
// DESIGN.md).
//
// Ranges are expressed as closed [lo, hi] pairs, sorted and
// non-overlapping, and resolved with a binary search, the same shape
// stdlib's own unicode.RangeTable uses for its 16-bit ranges.
type builtinOracle struct {
	equalOracle
}

// newBuiltinOracle returns the default PropertyOracle.
func newBuiltinOracle() *builtinOracle {
	return &builtinOracle{}
}

// NewBuiltinOracle exposes the built-in PropertyOracle to callers
// outside this package, notably cmd/uniwidthgen, which needs to run
// TableBuilder against it explicitly rather than through the lazy
// process-wide singleton the public API (Width, GraphemeBreak) uses.
func NewBuiltinOracle() PropertyOracle {
	return newBuiltinOracle()
}

type codepointRange [2]rune

func inRanges(cp rune, ranges []codepointRange) bool {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i][1] >= cp })
	return i < len(ranges) && ranges[i][0] <= cp
}

// Hangul jamo blocks (Grapheme_Cluster_Break = L, V, T). The modern
// and old Jamo Extended blocks are included alongside the main Hangul
// Jamo block.
var hangulLRanges = []codepointRange{
	{0x1100, 0x115F}, {0xA960, 0xA97C},
}

var hangulVRanges = []codepointRange{
	{0x1160, 0x11A7}, {0xD7B0, 0xD7C6},
}

var hangulTRanges = []codepointRange{
	{0x11A8, 0x11FF}, {0xD7CB, 0xD7FB},
}

const (
	hangulSBase = 0xAC00
	hangulLCnt  = 19
	hangulVCnt  = 21
	hangulTCnt  = 28
	hangulNCnt  = hangulVCnt * hangulTCnt
	hangulSCnt  = hangulLCnt * hangulNCnt
)

// hangulSyllableClass applies the Unicode Hangul Syllable
// decomposition formula to classify a precomposed syllable as LV or
// LVT without tabulating all 11,172 of them.
func hangulSyllableClass(cp rune) (BoundaryClass, bool) {
	sIndex := int(cp) - hangulSBase
	if sIndex < 0 || sIndex >= hangulSCnt {
		return ClassInvalid, false
	}
	if sIndex%hangulTCnt == 0 {
		return ClassLV, true
	}
	return ClassLVT, true
}

// Prepend (Grapheme_Cluster_Break = Prepend). A representative subset
// of the Unicode-assigned Prepend codepoints.
var prependRanges = []codepointRange{
	{0x0600, 0x0605}, {0x06DD, 0x06DD}, {0x070F, 0x070F}, {0x08E2, 0x08E2},
	{0x0D4E, 0x0D4E}, {0x110BD, 0x110BD}, {0x110CD, 0x110CD},
	{0x111C2, 0x111C3}, {0x1193F, 0x1193F}, {0x11941, 0x11941},
	{0x11A3A, 0x11A3A}, {0x11A84, 0x11A89}, {0x11D46, 0x11D46},
}

// Extend (Grapheme_Cluster_Break = Extend), combining marks that
// aren't already covered by the general-category fallback below, plus
// a handful of format/variation-selector codepoints the terminal must
// treat as zero-width joiners to the preceding cluster.
var extendRanges = []codepointRange{
	{0x0483, 0x0489}, {0x200C, 0x200C}, {0xFE00, 0xFE0E}, {0xE0100, 0xE01EF},
}

// SpacingMark (Grapheme_Cluster_Break = SpacingMark): a representative
// subset of Indic spacing combining marks.
var spacingMarkRanges = []codepointRange{
	{0x0903, 0x0903}, {0x093B, 0x093B}, {0x093E, 0x0940}, {0x0949, 0x094C},
	{0x094E, 0x094F}, {0x0982, 0x0983}, {0x09BE, 0x09C0},
}

// Regional_Indicator.
var regionalIndicatorRanges = []codepointRange{
	{0x1F1E6, 0x1F1FF},
}

// Emoji_Modifier: the five Fitzpatrick skin tone modifiers.
var emojiModifierRanges = []codepointRange{
	{0x1F3FB, 0x1F3FF},
}

// Extended_Pictographic: the emoji-carrying blocks plus a handful of
// pre-Unicode-9 dingbats that carry the property individually.
var extendedPictographicRanges = []codepointRange{
	{0x231A, 0x231B}, {0x2328, 0x2328}, {0x23CF, 0x23CF}, {0x23E9, 0x23F3},
	{0x23F8, 0x23FA}, {0x24C2, 0x24C2}, {0x25AA, 0x25AB}, {0x25FB, 0x25FE},
	{0x2600, 0x27BF}, {0x2934, 0x2935}, {0x2B00, 0x2BFF}, {0x3030, 0x3030},
	{0x303D, 0x303D}, {0x3297, 0x3297}, {0x3299, 0x3299},
	{0x1F000, 0x1F0FF}, {0x1F100, 0x1F1AD}, {0x1F200, 0x1F2FF},
	{0x1F300, 0x1F5FF}, {0x1F600, 0x1F64F}, {0x1F680, 0x1F6FF},
	{0x1F780, 0x1F7FF}, {0x1F900, 0x1F9FF}, {0x1FA00, 0x1FA6F},
	{0x1FA70, 0x1FAFF},
}

// Extended_Pictographic ∩ Emoji_Modifier_Base: codepoints that can be
// directly followed by an Emoji_Modifier. A representative subset
// covering the common "person"/hand/gesture emoji.
var extendedPictographicBaseRanges = []codepointRange{
	{0x261D, 0x261D}, {0x26F9, 0x26F9}, {0x270A, 0x270D},
	{0x1F385, 0x1F385}, {0x1F3C2, 0x1F3C4}, {0x1F3C7, 0x1F3C7},
	{0x1F3CA, 0x1F3CC}, {0x1F442, 0x1F443}, {0x1F446, 0x1F450},
	{0x1F466, 0x1F478}, {0x1F47C, 0x1F47C}, {0x1F481, 0x1F483},
	{0x1F485, 0x1F487}, {0x1F48F, 0x1F48F}, {0x1F491, 0x1F491},
	{0x1F4AA, 0x1F4AA}, {0x1F574, 0x1F575}, {0x1F57A, 0x1F57A},
	{0x1F590, 0x1F590}, {0x1F595, 0x1F596}, {0x1F645, 0x1F647},
	{0x1F64B, 0x1F64F}, {0x1F6A3, 0x1F6A3}, {0x1F6B4, 0x1F6B6},
	{0x1F6C0, 0x1F6C0}, {0x1F6CC, 0x1F6CC}, {0x1F90C, 0x1F90C},
	{0x1F90F, 0x1F90F}, {0x1F918, 0x1F91F}, {0x1F926, 0x1F926},
	{0x1F930, 0x1F939}, {0x1F93C, 0x1F93E}, {0x1F977, 0x1F977},
}

// East Asian Wide/Fullwidth ranges (display width 2). Ambiguous-width
// codepoints are treated as narrow, matching this module's
// terminal-by-convention choice rather than locale-dependent
// East_Asian_Width=Ambiguous handling.
var wideRanges = []codepointRange{
	{0x1100, 0x115F}, {0x231A, 0x231B}, {0x2329, 0x232A}, {0x23E9, 0x23EC},
	{0x23F0, 0x23F0}, {0x23F3, 0x23F3}, {0x25FD, 0x25FE}, {0x2614, 0x2615},
	{0x2648, 0x2653}, {0x267F, 0x267F}, {0x2693, 0x2693}, {0x26A1, 0x26A1},
	{0x26AA, 0x26AB}, {0x26BD, 0x26BE}, {0x26C4, 0x26C5}, {0x26CE, 0x26CE},
	{0x26D4, 0x26D4}, {0x26EA, 0x26EA}, {0x26F2, 0x26F3}, {0x26F5, 0x26F5},
	{0x26FA, 0x26FA}, {0x26FD, 0x26FD}, {0x2705, 0x2705}, {0x270A, 0x270B},
	{0x2728, 0x2728}, {0x274C, 0x274C}, {0x274E, 0x274E}, {0x2753, 0x2755},
	{0x2757, 0x2757}, {0x2795, 0x2797}, {0x27B0, 0x27B0}, {0x27BF, 0x27BF},
	{0x2B1B, 0x2B1C}, {0x2B50, 0x2B50}, {0x2B55, 0x2B55},
	{0x2E80, 0x303E}, {0x3041, 0x33FF}, {0x3400, 0x4DBF}, {0x4E00, 0x9FFF},
	{0xA000, 0xA4CF}, {0xAC00, 0xD7A3}, {0xF900, 0xFAFF}, {0xFE30, 0xFE4F},
	{0xFF00, 0xFF60}, {0xFFE0, 0xFFE6},
	{0x16FE0, 0x16FE4}, {0x17000, 0x18AFF}, {0x1B000, 0x1B2FF},
	{0x1F004, 0x1F004}, {0x1F0CF, 0x1F0CF}, {0x1F18E, 0x1F18E},
	{0x1F191, 0x1F19A}, {0x1F200, 0x1F2FF}, {0x1F300, 0x1F64F},
	{0x1F680, 0x1F6FF}, {0x1F900, 0x1F9FF}, {0x1FA70, 0x1FAFF},
	{0x20000, 0x2FFFD}, {0x30000, 0x3FFFD},
}

// Box-drawing, block elements, and narrow combining ligature halves
// are ambiguous-width by East_Asian_Width but conventionally narrow in
// terminals, same override the teacher's triegen applies.
var forcedNarrowRanges = []codepointRange{
	{0x2500, 0x259F}, {0x4DC0, 0x4DFF}, {0xFE20, 0xFE2F},
}

// Classify implements PropertyOracle.
func (o *builtinOracle) Classify(cp rune) (PropertyRecord, error) {
	if cp < 0 || cp > maxScalar {
		return PropertyRecord{}, errOutOfRange(cp)
	}

	class := classifyBoundary(cp)
	width := classifyWidth(cp, class)
	return PropertyRecord{Width: width, Class: class}, nil
}

func classifyBoundary(cp rune) BoundaryClass {
	if class, ok := hangulSyllableClass(cp); ok {
		return class
	}
	switch {
	case inRanges(cp, hangulLRanges):
		return ClassL
	case inRanges(cp, hangulVRanges):
		return ClassV
	case inRanges(cp, hangulTRanges):
		return ClassT
	case cp == 0x200D:
		return ClassZWJ
	case inRanges(cp, regionalIndicatorRanges):
		return ClassRegionalIndicator
	case inRanges(cp, prependRanges):
		return ClassPrepend
	case inRanges(cp, emojiModifierRanges):
		return ClassEmojiModifier
	case inRanges(cp, extendedPictographicBaseRanges):
		return ClassExtendedPictographicBase
	case inRanges(cp, extendedPictographicRanges):
		return ClassExtendedPictographic
	case inRanges(cp, spacingMarkRanges):
		return ClassSpacingMark
	case inRanges(cp, extendRanges):
		return ClassExtend
	case unicode.In(cp, unicode.Mn, unicode.Me, unicode.Cf):
		// Matches the general-category fallback UCD-derived
		// generators apply when there's no explicit GCB tag:
		// nonspacing/enclosing marks and format characters extend
		// the preceding cluster.
		return ClassExtend
	default:
		return ClassInvalid
	}
}

func classifyWidth(cp rune, class BoundaryClass) int {
	if inRanges(cp, forcedNarrowRanges) {
		return 1
	}
	switch class {
	case ClassExtend, ClassZWJ:
		return 0
	}
	if unicode.In(cp, unicode.Mn, unicode.Me, unicode.Cf) {
		return 0
	}
	if inRanges(cp, wideRanges) {
		return 2
	}
	return 1
}

type outOfRangeError struct{ cp rune }

func (e outOfRangeError) Error() string { return "codepoint out of Unicode scalar range" }

func errOutOfRange(cp rune) error { return outOfRangeError{cp: cp} }
