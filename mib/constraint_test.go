package mib

import (
	"testing"

	"github.com/BabisK/snmpcodec/internal/testutil"
)

func rangeConstraint(isSize bool, ranges ...Range) *Constraint {
	c := NewConstraint(isSize)
	for _, r := range ranges {
		c.AddElement(r)
	}
	c.Normalize()
	return c
}

func TestConstraintNormalizeMergesOverlapping(t *testing.T) {
	c := rangeConstraint(false, Range{Min: 5, Max: 10}, Range{Min: 1, Max: 3}, Range{Min: 8, Max: 12})
	got := c.Elements()
	testutil.Len(t, got, 2)
	testutil.Equal(t, Range{Min: 1, Max: 3}, got[0])
	testutil.Equal(t, Range{Min: 5, Max: 12}, got[1])
}

func TestConstraintNormalizeAdjacentRanges(t *testing.T) {
	// 1..3 and 4..6 are adjacent (3+1 == 4) and should merge into one range.
	c := rangeConstraint(false, Range{Min: 1, Max: 3}, Range{Min: 4, Max: 6})
	got := c.Elements()
	testutil.Len(t, got, 1)
	testutil.Equal(t, Range{Min: 1, Max: 6}, got[0])
}

func TestConstraintContains(t *testing.T) {
	c := rangeConstraint(false, Range{Min: 0, Max: 255})
	testutil.True(t, c.Contains(0))
	testutil.True(t, c.Contains(255))
	testutil.False(t, c.Contains(256))
	testutil.False(t, c.Contains(-1))
}

func TestConstraintExtractValueRange(t *testing.T) {
	c := rangeConstraint(false, Range{Min: 0, Max: 255})
	content, next, ok := c.Extract([]uint32{200, 1, 2})
	testutil.True(t, ok)
	testutil.SliceEqual(t, []uint32{200}, content)
	testutil.SliceEqual(t, []uint32{1, 2}, next)

	_, _, ok = c.Extract([]uint32{256, 1, 2})
	testutil.False(t, ok, "256 is out of range")

	_, _, ok = c.Extract(nil)
	testutil.False(t, ok, "empty oid")
}

func TestConstraintExtractFixedSize(t *testing.T) {
	c := rangeConstraint(true, Range{Min: 4, Max: 4})
	content, next, ok := c.Extract([]uint32{10, 20, 30, 40, 99})
	testutil.True(t, ok)
	testutil.SliceEqual(t, []uint32{10, 20, 30, 40}, content)
	testutil.SliceEqual(t, []uint32{99}, next)

	_, _, ok = c.Extract([]uint32{10, 20})
	testutil.False(t, ok, "too short for SIZE(4)")
}

func TestConstraintExtractSizeRangeWithLengthPrefix(t *testing.T) {
	c := rangeConstraint(true, Range{Min: 0, Max: 32})
	// oid[0] is the length-prefix byte: 3 bytes of content follow, then a
	// trailing arc belonging to whatever comes next.
	content, next, ok := c.Extract([]uint32{3, 10, 20, 30, 99})
	testutil.True(t, ok)
	testutil.SliceEqual(t, []uint32{10, 20, 30}, content)
	testutil.SliceEqual(t, []uint32{99}, next)

	_, _, ok = c.Extract([]uint32{33, 1, 2})
	testutil.False(t, ok, "length prefix exceeds SIZE upper bound")

	_, _, ok = c.Extract([]uint32{5, 1, 2})
	testutil.False(t, ok, "oid too short to hold the declared length")
}

func TestConstraintExtractSizeRangeNoUpperBound(t *testing.T) {
	// An empty constraint (no declared elements) should not reject any
	// length prefix, only enforce the oid has enough trailing arcs.
	c := NewConstraint(true)
	content, next, ok := c.Extract([]uint32{2, 1, 2, 9})
	testutil.True(t, ok)
	testutil.SliceEqual(t, []uint32{1, 2}, content)
	testutil.SliceEqual(t, []uint32{9}, next)
}

func TestRangeString(t *testing.T) {
	testutil.Equal(t, "5", Range{Min: 5, Max: 5}.String())
	testutil.Equal(t, "0..255", Range{Min: 0, Max: 255}.String())
}
