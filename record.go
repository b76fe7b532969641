package uniwidth

// BoundaryClass is the per-codepoint grapheme-cluster-break tag driving
// the segmentation state machine. It is a reduced subset of the
// Unicode Grapheme_Cluster_Break and Emoji properties: control, CR and
// LF are intentionally absent because callers filter them out before
// ever reaching this package.
type BoundaryClass uint8

const (
	ClassInvalid BoundaryClass = iota
	ClassL
	ClassV
	ClassT
	ClassLV
	ClassLVT
	ClassPrepend
	ClassExtend
	ClassZWJ
	ClassSpacingMark
	ClassRegionalIndicator
	ClassExtendedPictographic
	ClassExtendedPictographicBase
	ClassEmojiModifier

	classCount
)

var boundaryClassNames = [classCount]string{
	ClassInvalid:                  "invalid",
	ClassL:                        "L",
	ClassV:                        "V",
	ClassT:                        "T",
	ClassLV:                       "LV",
	ClassLVT:                      "LVT",
	ClassPrepend:                  "prepend",
	ClassExtend:                   "extend",
	ClassZWJ:                      "zwj",
	ClassSpacingMark:              "spacing_mark",
	ClassRegionalIndicator:        "regional_indicator",
	ClassExtendedPictographic:     "extended_pictographic",
	ClassExtendedPictographicBase: "extended_pictographic_base",
	ClassEmojiModifier:            "emoji_modifier",
}

// String returns the name used throughout the spec and tests.
func (c BoundaryClass) String() string {
	if int(c) < len(boundaryClassNames) {
		return boundaryClassNames[c]
	}
	return "invalid"
}

// PropertyRecord is the compact per-codepoint record produced by a
// PropertyOracle and compressed by the TableBuilder. It is immutable
// after construction and compares structurally: two records with the
// same Width and Class are indistinguishable to the builder's
// deduplication pass and to callers.
type PropertyRecord struct {
	Width int
	Class BoundaryClass
}

// packedRecord is the dense, 1-byte-per-entry encoding of a
// PropertyRecord used inside stage3. Width takes 2 bits (clamped to
// {0,1,2}), Class takes the remaining 6 (classCount comfortably fits).
//
// Packing is purely a storage detail: equality of PropertyRecord is
// defined structurally on the unpacked fields, never on the packed
// byte, so a change to the bit layout here can never change semantics.
type packedRecord uint8

const (
	packedWidthShift = 6
	packedWidthMask  = 0b11
	packedClassMask  = 0b0011_1111
)

func packRecord(r PropertyRecord) packedRecord {
	w := r.Width
	if w < 0 {
		w = 0
	} else if w > 2 {
		w = 2
	}
	return packedRecord(byte(w&packedWidthMask)<<packedWidthShift | byte(r.Class)&packedClassMask)
}

func (p packedRecord) unpack() PropertyRecord {
	return PropertyRecord{
		Width: int(p>>packedWidthShift) & packedWidthMask,
		Class: BoundaryClass(p) & packedClassMask,
	}
}

// equalRecords implements the oracle's structural equality contract
// used by TableBuilder to deduplicate stage3 entries.
func equalRecords(a, b PropertyRecord) bool {
	return a.Width == b.Width && a.Class == b.Class
}
