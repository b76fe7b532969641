package uniwidth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constOracle classifies every codepoint the same way, useful for
// exercising the builder's block-deduplication path in isolation.
type constOracle struct {
	equalOracle
	rec PropertyRecord
}

func (o constOracle) Classify(cp rune) (PropertyRecord, error) {
	return o.rec, nil
}

// stepOracle switches from one record to another at a fixed threshold, so
// exactly two stage1 blocks are distinct and the rest collapse.
type stepOracle struct {
	equalOracle
	threshold rune
	below     PropertyRecord
	above     PropertyRecord
}

func (o stepOracle) Classify(cp rune) (PropertyRecord, error) {
	if cp < o.threshold {
		return o.below, nil
	}
	return o.above, nil
}

// failingOracle errors on one specific codepoint and succeeds on every
// other, to exercise isFatal/Config.FailOnOracleError.
type failingOracle struct {
	equalOracle
	failAt rune
}

func (o failingOracle) Classify(cp rune) (PropertyRecord, error) {
	if cp == o.failAt {
		return PropertyRecord{}, errors.New("simulated oracle failure")
	}
	return PropertyRecord{Width: 1, Class: ClassInvalid}, nil
}

func TestTableBuilderConstantOracleDedupesEverything(t *testing.T) {
	oracle := constOracle{rec: PropertyRecord{Width: 1, Class: ClassInvalid}}
	stage1, stage2, stage3, err := NewTableBuilder(NewConfig()).Build(oracle)
	require.NoError(t, err)

	assert.Len(t, stage3, 1, "every codepoint maps to the same record")
	assert.Len(t, stage2, 256, "a single distinct block, deduplicated to one copy")
	for _, offset := range stage1 {
		assert.EqualValues(t, 0, offset)
	}
	assert.Len(t, stage1, (maxScalar+1+255)/256)
}

func TestTableBuilderTotalityOverFullRange(t *testing.T) {
	oracle := newBuiltinOracle()
	stage1, stage2, stage3, err := NewTableBuilder(NewConfig()).Build(oracle)
	require.NoError(t, err)

	reader := NewTableReader(stage1, stage2, stage3)
	for _, cp := range []rune{0, 0x41, 0x1F600, 0x10FFFF} {
		// Get must not panic for any in-range codepoint.
		_ = reader.Get(cp)
	}
}

func TestTableBuilderOracleEquivalence(t *testing.T) {
	oracle := newBuiltinOracle()
	stage1, stage2, stage3, err := NewTableBuilder(NewConfig()).Build(oracle)
	require.NoError(t, err)
	reader := NewTableReader(stage1, stage2, stage3)

	samples := []rune{0x61, 0x301, 0x4E2D, 0x1F1E6, 0x1100, 0x1161, 0x11A8, 0x200D, 0x1F3FF}
	for _, cp := range samples {
		want, err := oracle.Classify(cp)
		require.NoError(t, err)
		assert.Equal(t, want, reader.Get(cp), "U+%04X", cp)
	}
}

func TestTableBuilderOracleFailureFatalByDefault(t *testing.T) {
	oracle := failingOracle{failAt: 0x1234}
	_, _, _, err := NewTableBuilder(NewConfig()).Build(oracle)
	require.Error(t, err)
	var oe OracleFailureError
	assert.ErrorAs(t, err, &oe)
	assert.Equal(t, rune(0x1234), oe.Codepoint)
}

func TestTableBuilderOracleFailureTolerated(t *testing.T) {
	cfg := NewConfig()
	cfg.FailOnOracleError = false

	oracle := failingOracle{failAt: 0x1234}
	stage1, stage2, stage3, err := NewTableBuilder(cfg).Build(oracle)
	require.NoError(t, err)

	reader := NewTableReader(stage1, stage2, stage3)
	assert.Equal(t, PropertyRecord{Width: 1, Class: ClassInvalid}, reader.Get(0x1234))
}

func TestTableBuilderStepOracleProducesTwoBlocks(t *testing.T) {
	oracle := stepOracle{
		threshold: 512,
		below:     PropertyRecord{Width: 1, Class: ClassL},
		above:     PropertyRecord{Width: 2, Class: ClassV},
	}
	stage1, stage2, _, err := NewTableBuilder(NewConfig()).Build(oracle)
	require.NoError(t, err)

	// Blocks before the threshold and after it are distinct; the
	// boundary block (containing codepoints 256..511, all "below")
	// matches the first, so only two unique blocks exist in stage2.
	assert.Len(t, stage2, 512)
	assert.NotEqual(t, stage1[0], stage1[2])
}
