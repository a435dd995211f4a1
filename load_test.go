package snmpcodec

import (
	"testing"
	"testing/fstest"

	"github.com/BabisK/snmpcodec/codec"
	"github.com/BabisK/snmpcodec/internal/testutil"
	"github.com/BabisK/snmpcodec/mib"
)

const testMIBSource = `TEST-MIB DEFINITIONS ::= BEGIN

IMPORTS
	MODULE-IDENTITY, OBJECT-TYPE
		FROM SNMPv2-SMI;

testModule MODULE-IDENTITY
	LAST-UPDATED "202601010000Z"
	ORGANIZATION "Test Org"
	CONTACT-INFO "test@example.com"
	DESCRIPTION "A test module for exercising Load end to end."
	::= { iso 3 6 1 4 1 99999 }

testTable OBJECT-TYPE
	SYNTAX SEQUENCE OF TestEntry
	MAX-ACCESS not-accessible
	STATUS current
	DESCRIPTION "A table"
	::= { testModule 1 }

testEntry OBJECT-TYPE
	SYNTAX TestEntry
	MAX-ACCESS not-accessible
	STATUS current
	DESCRIPTION "A row"
	INDEX { testIndex }
	::= { testTable 1 }

TestEntry ::= SEQUENCE {
	testIndex Integer32,
	testName OCTET STRING,
	testStatus INTEGER
}

testIndex OBJECT-TYPE
	SYNTAX Integer32 (1..2147483647)
	MAX-ACCESS not-accessible
	STATUS current
	DESCRIPTION "Index"
	::= { testEntry 1 }

testName OBJECT-TYPE
	SYNTAX OCTET STRING (SIZE (0..255))
	MAX-ACCESS read-only
	STATUS current
	DESCRIPTION "Name"
	::= { testEntry 2 }

testStatus OBJECT-TYPE
	SYNTAX INTEGER { up(1), down(2) }
	MAX-ACCESS read-only
	STATUS current
	DESCRIPTION "Status"
	::= { testEntry 3 }

END
`

func testMIBFS() fstest.MapFS {
	return fstest.MapFS{"TEST-MIB": &fstest.MapFile{Data: []byte(testMIBSource)}}
}

func TestLoadCompilesModuleEndToEnd(t *testing.T) {
	store, err := Load(FS("test", testMIBFS()))
	testutil.NoError(t, err)

	mod := store.Module("TEST-MIB")
	testutil.NotNil(t, mod)
	testutil.Equal(t, mib.LanguageSMIv2, mod.Language())
	testutil.Equal(t, "Test Org", mod.Organization())

	table, ok := store.Object(mib.NewSymbol("TEST-MIB", "testTable"))
	testutil.True(t, ok)
	testutil.True(t, table.IsTable())

	row, ok := store.Object(mib.NewSymbol("TEST-MIB", "testEntry"))
	testutil.True(t, ok)
	testutil.True(t, row.IsRow())
	testutil.Len(t, row.Index(), 1)
	testutil.Equal(t, "testIndex", row.Index()[0].Object.Name())

	testIndexObj, ok := store.Object(mib.NewSymbol("TEST-MIB", "testIndex"))
	testutil.True(t, ok)
	testutil.True(t, testIndexObj.IsColumn())
	testutil.True(t, testIndexObj.OID().Equal(mib.OID{1, 3, 6, 1, 4, 1, 99999, 1, 1, 1}))

	values, err := mib.ResolveIndex(row, mib.OID{5}, codec.Default())
	testutil.NoError(t, err)
	testutil.Len(t, values, 1)
	testutil.Equal[any](t, int8(5), values[0].Value)
}

func TestLoadSkipsNonMIBContent(t *testing.T) {
	fsys := fstest.MapFS{
		"README": &fstest.MapFile{Data: []byte("just some text, not a MIB at all")},
	}
	store, err := Load(FS("test", fsys))
	testutil.NoError(t, err)
	testutil.Len(t, store.Modules(), 0)
}

func TestLoadNoSourcesErrors(t *testing.T) {
	_, err := Load(nil)
	testutil.Error(t, err)
}

func TestLoadModulesOnlyRequestedClosure(t *testing.T) {
	store, err := LoadModules([]string{"TEST-MIB"}, FS("test", testMIBFS()))
	testutil.NoError(t, err)
	testutil.NotNil(t, store.Module("TEST-MIB"))
}

func TestLoadModulesSkipsUnknownName(t *testing.T) {
	store, err := LoadModules([]string{"NO-SUCH-MIB"}, FS("test", testMIBFS()))
	testutil.NoError(t, err)
	testutil.Len(t, store.Modules(), 0)
}

func TestLoadWithNoContentHeuristicAcceptsAnyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"TEST-MIB": &fstest.MapFile{Data: []byte(testMIBSource)},
	}
	store, err := Load(FS("test", fsys), WithNoContentHeuristic())
	testutil.NoError(t, err)
	testutil.NotNil(t, store.Module("TEST-MIB"))
}
