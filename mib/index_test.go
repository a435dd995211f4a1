package mib_test

import (
	"testing"

	"github.com/BabisK/snmpcodec/codec"
	"github.com/BabisK/snmpcodec/internal/testutil"
	"github.com/BabisK/snmpcodec/mib"
)

// newRow builds a minimal table row object: a KindRow node carrying the
// given INDEX entries, detached from any real module/table tree since
// ResolveIndex only walks the row's own index list and each column's type.
func newRow(t *testing.T, store *mib.Store, name string, index []mib.IndexEntry) *mib.ObjectType {
	t.Helper()
	row := mib.NewObjectType(mib.NewSymbol("IF-MIB", name))
	node := store.Root().GetOrCreateChild(uint32(len(index) + 1))
	node.SetKind(mib.KindRow)
	node.SetObject(row)
	row.SetNode(node)
	row.SetIndex(index)
	return row
}

func intColumn(name string) *mib.ObjectType {
	col := mib.NewObjectType(mib.NewSymbol("IF-MIB", name))
	col.SetType(mib.NewTypeDescriptor(mib.TypeInteger))
	return col
}

func TestResolveIndexSingleInteger(t *testing.T) {
	store := mib.NewStore(mib.DefaultConfig())
	col := intColumn("ifIndex")
	row := newRow(t, store, "ifEntry", []mib.IndexEntry{{Object: col}})

	values, err := mib.ResolveIndex(row, mib.OID{5}, codec.Default())
	testutil.NoError(t, err)
	testutil.Len(t, values, 1)
	testutil.Equal(t, "ifIndex", values[0].Object.Name())
	testutil.Equal[any](t, int8(5), values[0].Value)
}

func TestResolveIndexMultipleColumns(t *testing.T) {
	store := mib.NewStore(mib.DefaultConfig())
	col1 := intColumn("ifIndex")
	col2 := intColumn("ifStackHigherLayer")
	row := newRow(t, store, "ifStackEntry", []mib.IndexEntry{{Object: col1}, {Object: col2}})

	values, err := mib.ResolveIndex(row, mib.OID{3, 7}, codec.Default())
	testutil.NoError(t, err)
	testutil.Len(t, values, 2)
	testutil.Equal[any](t, int8(3), values[0].Value)
	testutil.Equal[any](t, int8(7), values[1].Value)
}

func TestResolveIndexOctetStringWithSize(t *testing.T) {
	store := mib.NewStore(mib.DefaultConfig())
	col := mib.NewObjectType(mib.NewSymbol("IF-MIB", "ifName"))
	strType := mib.NewTypeDescriptor(mib.TypeOctetString)
	c := mib.NewConstraint(true)
	c.AddElement(mib.Range{Min: 0, Max: 255})
	c.Normalize()
	strType.SetConstraint(c)
	col.SetType(strType)
	row := newRow(t, store, "ifXEntry", []mib.IndexEntry{{Object: col}})

	// length-prefix byte 3, then the 3 octets 'e','t','h'.
	oid := mib.OID{3, 'e', 't', 'h'}
	values, err := mib.ResolveIndex(row, oid, codec.Default())
	testutil.NoError(t, err)
	testutil.Len(t, values, 1)
	testutil.Equal(t, "eth", string(values[0].Value.([]byte)))
}

func TestResolveIndexEnumTranslation(t *testing.T) {
	store := mib.NewStore(mib.DefaultConfig())
	col := mib.NewObjectType(mib.NewSymbol("IF-MIB", "ifAdminStatus"))
	enumType := mib.NewTypeDescriptor(mib.TypeInteger)
	enumType.SetNames([]mib.NamedValue{
		{Label: "up", Value: 1},
		{Label: "down", Value: 2},
		{Label: "testing", Value: 3},
	})
	col.SetType(enumType)
	row := newRow(t, store, "ifTestEntry", []mib.IndexEntry{{Object: col}})

	values, err := mib.ResolveIndex(row, mib.OID{2}, codec.Default())
	testutil.NoError(t, err)
	testutil.Equal(t, "down", values[0].Value)
}

func TestResolveIndexAugmentsChain(t *testing.T) {
	store := mib.NewStore(mib.DefaultConfig())
	col := intColumn("ifIndex")
	base := newRow(t, store, "ifEntry", []mib.IndexEntry{{Object: col}})

	aug := mib.NewObjectType(mib.NewSymbol("IF-MIB", "ifXEntry"))
	augNode := store.Root().GetOrCreateChild(99)
	augNode.SetKind(mib.KindRow)
	augNode.SetObject(aug)
	aug.SetNode(augNode)
	aug.SetAugments(base)

	values, err := mib.ResolveIndex(aug, mib.OID{42}, codec.Default())
	testutil.NoError(t, err)
	testutil.Len(t, values, 1)
	testutil.Equal[any](t, int8(42), values[0].Value)
}

func TestResolveIndexTrailingArcsError(t *testing.T) {
	store := mib.NewStore(mib.DefaultConfig())
	col := intColumn("ifIndex")
	row := newRow(t, store, "ifEntry", []mib.IndexEntry{{Object: col}})

	_, err := mib.ResolveIndex(row, mib.OID{5, 99}, codec.Default())
	testutil.Error(t, err, "expected an error for trailing index arcs")
}

func TestResolveIndexShortOIDError(t *testing.T) {
	store := mib.NewStore(mib.DefaultConfig())
	col1 := intColumn("ifIndex")
	col2 := intColumn("ifStackHigherLayer")
	row := newRow(t, store, "ifStackEntry", []mib.IndexEntry{{Object: col1}, {Object: col2}})

	_, err := mib.ResolveIndex(row, mib.OID{3}, codec.Default())
	testutil.Error(t, err, "expected an error when the oid is too short for every index entry")
}

func TestResolveIndexUnknownBaseType(t *testing.T) {
	store := mib.NewStore(mib.DefaultConfig())
	col := mib.NewObjectType(mib.NewSymbol("IF-MIB", "ifWeird"))
	col.SetType(mib.NewTypeDescriptor(mib.TypeChoice))
	row := newRow(t, store, "ifWeirdEntry", []mib.IndexEntry{{Object: col}})

	_, err := mib.ResolveIndex(row, mib.OID{1}, codec.NewRegistry())
	testutil.Error(t, err, "expected an error for a base type with no registered codec")
}
