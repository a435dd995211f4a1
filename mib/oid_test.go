package mib

import (
	"testing"

	"github.com/BabisK/snmpcodec/internal/testutil"
)

func TestParseOID(t *testing.T) {
	oid, err := ParseOID("1.3.6.1.2.1")
	testutil.NoError(t, err)
	testutil.SliceEqual(t, []uint32{1, 3, 6, 1, 2, 1}, []uint32(oid))
}

func TestParseOIDLeadingDot(t *testing.T) {
	oid, err := ParseOID(".1.3.6.1")
	testutil.NoError(t, err)
	testutil.SliceEqual(t, []uint32{1, 3, 6, 1}, []uint32(oid))
}

func TestParseOIDEmpty(t *testing.T) {
	oid, err := ParseOID("")
	testutil.NoError(t, err)
	testutil.Len(t, []uint32(oid), 0)
}

func TestParseOIDInvalid(t *testing.T) {
	cases := []string{"1..3", "1.3.", "1.a.3", ".", "1,3"}
	for _, c := range cases {
		if _, err := ParseOID(c); err == nil {
			t.Errorf("ParseOID(%q) expected an error, got nil", c)
		}
	}
}

func TestOIDString(t *testing.T) {
	testutil.Equal(t, "1.3.6.1", OID{1, 3, 6, 1}.String())
	testutil.Equal(t, "", OID(nil).String())
}

func TestOIDParent(t *testing.T) {
	testutil.SliceEqual(t, []uint32{1, 3, 6}, []uint32(OID{1, 3, 6, 1}.Parent()))
	testutil.Nil(t, []uint32(OID{1}.Parent()))
	testutil.Nil(t, []uint32(OID(nil).Parent()))
}

func TestOIDChild(t *testing.T) {
	base := OID{1, 3, 6}
	child := base.Child(1)
	testutil.SliceEqual(t, []uint32{1, 3, 6, 1}, []uint32(child))
	// Child must not mutate the receiver.
	testutil.SliceEqual(t, []uint32{1, 3, 6}, []uint32(base))
}

func TestOIDHasPrefix(t *testing.T) {
	full := OID{1, 3, 6, 1, 2, 1}
	testutil.True(t, full.HasPrefix(OID{1, 3, 6}))
	testutil.True(t, full.HasPrefix(OID{}))
	testutil.True(t, full.HasPrefix(full))
	testutil.False(t, full.HasPrefix(OID{1, 3, 7}))
	testutil.False(t, full.HasPrefix(OID{1, 3, 6, 1, 2, 1, 9}))
}

func TestOIDEqual(t *testing.T) {
	testutil.True(t, OID{1, 2, 3}.Equal(OID{1, 2, 3}))
	testutil.False(t, OID{1, 2, 3}.Equal(OID{1, 2, 4}))
	testutil.False(t, OID{1, 2}.Equal(OID{1, 2, 3}))
}

func TestOIDCompare(t *testing.T) {
	testutil.Equal(t, 0, OID{1, 2, 3}.Compare(OID{1, 2, 3}))
	testutil.Equal(t, -1, OID{1, 2, 3}.Compare(OID{1, 2, 4}))
	testutil.Equal(t, 1, OID{1, 2, 4}.Compare(OID{1, 2, 3}))
	testutil.Equal(t, -1, OID{1, 2}.Compare(OID{1, 2, 3}))
}

func TestOIDLastArc(t *testing.T) {
	testutil.Equal(t, uint32(1), OID{1, 3, 6, 1}.LastArc())
	testutil.Equal(t, uint32(0), OID(nil).LastArc())
}
