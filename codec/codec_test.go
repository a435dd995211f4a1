package codec_test

import (
	"net"
	"testing"

	"github.com/BabisK/snmpcodec/codec"
	"github.com/BabisK/snmpcodec/internal/testutil"
	"github.com/BabisK/snmpcodec/mib"
)

func TestDefaultRegistryCoversTwelveTypes(t *testing.T) {
	r := codec.Default()
	names := []string{
		"INTEGER", "Unsigned32", "Counter32", "Counter64", "Gauge32",
		"IpAddress", "OCTET STRING", "BIT STRING", "OBJECT IDENTIFIER",
		"Opaque", "TimeTicks", "NULL",
	}
	for _, n := range names {
		if _, ok := r.Lookup(n); !ok {
			t.Errorf("Default() registry missing codec for %s", n)
		}
	}
}

func TestRegistryLookupMiss(t *testing.T) {
	r := codec.NewRegistry()
	_, ok := r.Lookup("INTEGER")
	testutil.False(t, ok)
}

func TestIntegerCodecDecode(t *testing.T) {
	c, _ := codec.Default().Lookup("INTEGER")
	v, err := c.Decode([]uint32{42})
	testutil.NoError(t, err)
	testutil.Equal[any](t, int8(42), v)

	_, err = c.Decode([]uint32{1, 2})
	testutil.Error(t, err, "INTEGER expects exactly one arc")
}

func TestCounter64CodecDecode(t *testing.T) {
	c, _ := codec.Default().Lookup("Counter64")
	v, err := c.Decode([]uint32{1, 0})
	testutil.NoError(t, err)
	testutil.Equal[any](t, uint64(1)<<32, v)
}

func TestIPAddressCodecDecode(t *testing.T) {
	c, _ := codec.Default().Lookup("IpAddress")
	v, err := c.Decode([]uint32{192, 168, 1, 1})
	testutil.NoError(t, err)
	ip, ok := v.(net.IP)
	testutil.True(t, ok, "expected a net.IP")
	testutil.True(t, ip.Equal(net.IPv4(192, 168, 1, 1)))

	_, err = c.Decode([]uint32{192, 168})
	testutil.Error(t, err, "IpAddress expects exactly four arcs")
}

func TestOctetStringCodecDecode(t *testing.T) {
	c, _ := codec.Default().Lookup("OCTET STRING")
	v, err := c.Decode([]uint32{'h', 'i'})
	testutil.NoError(t, err)
	testutil.Equal(t, "hi", string(v.([]byte)))

	_, err = c.Decode([]uint32{300})
	testutil.Error(t, err, "arc out of byte range")
}

func TestObjectIdentifierCodecDecode(t *testing.T) {
	c, _ := codec.Default().Lookup("OBJECT IDENTIFIER")
	v, err := c.Decode([]uint32{1, 3, 6})
	testutil.NoError(t, err)
	oid, ok := v.(mib.OID)
	testutil.True(t, ok, "expected an mib.OID")
	testutil.True(t, oid.Equal(mib.OID{1, 3, 6}))
}

func TestTimeTicksCodecDecode(t *testing.T) {
	c, _ := codec.Default().Lookup("TimeTicks")
	v, err := c.Decode([]uint32{100})
	testutil.NoError(t, err)
	testutil.Equal[any](t, uint8(100), v)
}

func TestNullCodecDecode(t *testing.T) {
	c, _ := codec.Default().Lookup("NULL")
	v, err := c.Decode(nil)
	testutil.NoError(t, err)
	testutil.Nil(t, v)

	_, err = c.Decode([]uint32{1})
	testutil.Error(t, err, "NULL expects zero arcs")
}

func TestCounter64ConstraintConsumesTwoArcs(t *testing.T) {
	c, _ := codec.Default().Lookup("Counter64")
	constraint := c.Constraint()
	testutil.NotNil(t, constraint)
	content, next, ok := constraint.Extract([]uint32{1, 2, 3})
	testutil.True(t, ok)
	testutil.SliceEqual(t, []uint32{1, 2}, content)
	testutil.SliceEqual(t, []uint32{3}, next)
}
