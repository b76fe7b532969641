package uniwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackRecordRoundTrip(t *testing.T) {
	cases := []PropertyRecord{
		{Width: 0, Class: ClassExtend},
		{Width: 1, Class: ClassInvalid},
		{Width: 2, Class: ClassExtendedPictographicBase},
	}
	for _, rec := range cases {
		got := packRecord(rec).unpack()
		assert.Equal(t, rec, got)
	}
}

func TestPackRecordClampsWidth(t *testing.T) {
	assert.Equal(t, 2, packRecord(PropertyRecord{Width: 5, Class: ClassL}).unpack().Width)
	assert.Equal(t, 0, packRecord(PropertyRecord{Width: -1, Class: ClassL}).unpack().Width)
}

func TestEqualRecords(t *testing.T) {
	a := PropertyRecord{Width: 1, Class: ClassExtend}
	b := PropertyRecord{Width: 1, Class: ClassExtend}
	c := PropertyRecord{Width: 2, Class: ClassExtend}
	assert.True(t, equalRecords(a, b))
	assert.False(t, equalRecords(a, c))
}

func TestBoundaryClassString(t *testing.T) {
	assert.Equal(t, "extend", ClassExtend.String())
	assert.Equal(t, "regional_indicator", ClassRegionalIndicator.String())
	assert.Equal(t, "invalid", BoundaryClass(255).String())
}
