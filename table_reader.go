package uniwidth

// TableReader is the runtime three-stage table lookup: total and
// infallible for any valid scalar value, three dependent loads, no
// branches, no allocation. stage3 is held packed, one byte per entry,
// so the table this struct wraps stays cache-dense at rest; Get is the
// only place that pays the unpack cost, and only for the single entry
// a lookup actually touches.
type TableReader struct {
	stage1 []uint16
	stage2 []uint16
	stage3 []packedRecord
}

// NewTableReader wraps three previously-built (or previously-emitted
// and reloaded) stage arrays. It does not copy them: callers must
// treat the slices as read-only for the life of the TableReader,
// matching spec section 3's "all arrays are read-only for the life of
// the process."
func NewTableReader(stage1, stage2 []uint16, stage3 []packedRecord) *TableReader {
	return &TableReader{stage1: stage1, stage2: stage2, stage3: stage3}
}

// Get resolves the PropertyRecord for cp via
// stage3[stage2[stage1[cp>>8] + (cp&0xFF)]]. Behavior for surrogates
// or other out-of-range input is unspecified, per spec section 4.2;
// callers are expected to only ever pass scalar values.
func (r *TableReader) Get(cp rune) PropertyRecord {
	block := r.stage1[int(cp)>>8]
	idx := r.stage2[int(block)+int(cp&0xFF)]
	return r.stage3[idx].unpack()
}
