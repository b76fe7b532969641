package uniwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableReaderGet(t *testing.T) {
	stage1 := []uint16{0, 2}
	stage2 := []uint16{0, 1, 1, 0}
	records := []PropertyRecord{
		{Width: 1, Class: ClassInvalid},
		{Width: 2, Class: ClassL},
	}
	stage3 := []packedRecord{packRecord(records[0]), packRecord(records[1])}
	reader := NewTableReader(stage1, stage2, stage3)

	assert.Equal(t, records[0], reader.Get(0))
	assert.Equal(t, records[1], reader.Get(1))
	assert.Equal(t, records[1], reader.Get(256+0))
	assert.Equal(t, records[0], reader.Get(256+1))
}

func TestTableReaderIndexBoundsAcrossDefaultTables(t *testing.T) {
	reader := defaultTableReader()
	for _, cp := range []rune{0, 0x7F, 0xFFFF, 0x10000, 0x10FFFF} {
		assert.NotPanics(t, func() { reader.Get(cp) })
	}
}
