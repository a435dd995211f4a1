package main

import (
	"testing"
	"testing/fstest"

	snmpcodec "github.com/BabisK/snmpcodec"
	"github.com/BabisK/snmpcodec/internal/testutil"
	"github.com/BabisK/snmpcodec/mib"
)

const cliTestMIBSource = `TEST-MIB DEFINITIONS ::= BEGIN

IMPORTS
	MODULE-IDENTITY, OBJECT-TYPE
		FROM SNMPv2-SMI;

testModule MODULE-IDENTITY
	LAST-UPDATED "202601010000Z"
	ORGANIZATION "Test Org"
	CONTACT-INFO "test@example.com"
	DESCRIPTION "A test module."
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
	testName OCTET STRING
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

END
`

func fixtureStore(t testing.TB) *mib.Store {
	t.Helper()
	fsys := fstest.MapFS{"TEST-MIB": &fstest.MapFile{Data: []byte(cliTestMIBSource)}}
	store, err := snmpcodec.Load(snmpcodec.FS("test", fsys))
	testutil.NoError(t, err)
	return store
}

func TestModuleNameFromFile(t *testing.T) {
	testutil.Equal(t, "IF-MIB", moduleNameFromFile("/a/b/IF-MIB"))
	testutil.Equal(t, "IF-MIB", moduleNameFromFile("/a/b/IF-MIB.mib"))
	testutil.Equal(t, "SNMPv2-TC", moduleNameFromFile("SNMPv2-TC.txt"))
}

func TestDiagConfigFor(t *testing.T) {
	testutil.Equal(t, mib.StrictnessStrict, diagConfigFor(true, false, -1).Level)
	testutil.Equal(t, mib.StrictnessPermissive, diagConfigFor(false, true, -1).Level)
	testutil.Equal(t, mib.StrictnessNormal, diagConfigFor(false, false, -1).Level)

	got := diagConfigFor(false, false, int(mib.StrictnessPermissive))
	testutil.Equal(t, mib.StrictnessPermissive, got.Level)
}

func TestFormatConstraint(t *testing.T) {
	c := mib.NewConstraint(false)
	c.AddElement(mib.Range{Min: 0, Max: 255})
	c.Normalize()
	testutil.Equal(t, "0..255", formatConstraint(c))

	multi := mib.NewConstraint(false)
	multi.AddElement(mib.Range{Min: 1, Max: 1})
	multi.AddElement(mib.Range{Min: 3, Max: 5})
	multi.Normalize()
	testutil.Equal(t, "1 | 3..5", formatConstraint(multi))
}

func TestTruncateDesc(t *testing.T) {
	short := "a short description"
	testutil.Equal(t, short, truncateDesc(short, false))

	long := make([]byte, defaultDescLimit+50)
	for i := range long {
		long[i] = 'x'
	}
	got := truncateDesc(string(long), false)
	testutil.Equal(t, defaultDescLimit+len("..."), len(got))
	testutil.Equal(t, string(long), truncateDesc(string(long), true))
}

func TestCollectAllHelpers(t *testing.T) {
	store := fixtureStore(t)
	testutil.Len(t, collectAllObjects(store), 4) // testTable, testEntry, testIndex, testName
	testutil.Len(t, collectAllTypes(store), 1)   // TestEntry
	testutil.Len(t, collectAllNotifications(store), 0)
	testutil.Len(t, collectAllGroups(store), 0)
	testutil.Len(t, collectAllCompliances(store), 0)
	testutil.Len(t, collectAllCapabilities(store), 0)
}

func TestFindByName(t *testing.T) {
	store := fixtureStore(t)

	obj, typ, node, mod := findByName(store, "testIndex")
	testutil.NotNil(t, obj)
	testutil.Nil(t, typ)
	testutil.Nil(t, node)
	testutil.NotNil(t, mod)
	testutil.Equal(t, "TEST-MIB", mod.Name())

	obj, typ, node, mod = findByName(store, "noSuchThing")
	testutil.Nil(t, obj)
	testutil.Nil(t, typ)
	testutil.Nil(t, node)
	testutil.Nil(t, mod)
}

func TestIsOIDString(t *testing.T) {
	testutil.True(t, isOIDString("1.3.6.1"))
	testutil.True(t, isOIDString(".1.3.6.1"))
	testutil.False(t, isOIDString("ifIndex"))
	testutil.False(t, isOIDString(""))
	testutil.False(t, isOIDString("1.3..1"))
}

func TestWalkExactAndNodeDisplayName(t *testing.T) {
	store := fixtureStore(t)
	n := walkExact(store.Root(), mib.OID{1, 3, 6, 1, 4, 1, 99999, 1, 1})
	testutil.NotNil(t, n)
	testutil.Equal(t, "testEntry", nodeDisplayName(n))

	missing := walkExact(store.Root(), mib.OID{9, 9, 9})
	testutil.Nil(t, missing)
}

func TestNodeDisplayNameFallsBackToOID(t *testing.T) {
	store := fixtureStore(t)
	child := store.Root().Child(1).GetOrCreateChild(99) // an internal node with no name
	testutil.Equal(t, child.OID().String(), nodeDisplayName(child))
}

func TestParseKindFilter(t *testing.T) {
	cases := map[string]mib.Kind{
		"scalar":       mib.KindScalar,
		"table":        mib.KindTable,
		"row":          mib.KindRow,
		"column":       mib.KindColumn,
		"notification": mib.KindNotification,
		"node":         mib.KindNode,
	}
	for name, want := range cases {
		got, ok := parseKindFilter(name)
		testutil.True(t, ok, "kind %s should be recognized", name)
		testutil.Equal(t, want, got)
	}

	_, ok := parseKindFilter("bogus")
	testutil.False(t, ok)
}

func TestMatchBaseType(t *testing.T) {
	store := fixtureStore(t)
	obj, _, _, _ := findByName(store, "testIndex")
	testutil.True(t, matchBaseType(obj, "integer"))
	testutil.False(t, matchBaseType(obj, "octet string"))
}

func TestMatchesAny(t *testing.T) {
	testutil.True(t, matchesAny([]string{"E*"}, "E101"))
	testutil.False(t, matchesAny([]string{"W*"}, "E101"))
	testutil.True(t, matchesAny([]string{"W*", "E*"}, "E101"))
}

func TestParseSeverityName(t *testing.T) {
	sev, err := parseSeverityName("error")
	testutil.NoError(t, err)
	testutil.Equal(t, mib.SeverityError, sev)

	sev, err = parseSeverityName("WARNING")
	testutil.NoError(t, err)
	testutil.Equal(t, mib.SeverityWarning, sev)

	_, err = parseSeverityName("bogus")
	testutil.Error(t, err)
}

func TestSeverityToSARIF(t *testing.T) {
	testutil.Equal(t, "error", severityToSARIF(mib.SeverityFatal))
	testutil.Equal(t, "error", severityToSARIF(mib.SeverityError))
	testutil.Equal(t, "warning", severityToSARIF(mib.SeverityStyle))
	testutil.Equal(t, "note", severityToSARIF(mib.SeverityInfo))
}

func TestBuildLintResult(t *testing.T) {
	store := mib.NewStore(mib.StrictConfig())
	store.Report(mib.Diagnostic{Severity: mib.SeverityError, Code: "E1", Module: "TEST-MIB", Message: "m1"})
	store.Report(mib.Diagnostic{Severity: mib.SeverityWarning, Code: "W1", Module: "TEST-MIB", Message: "m2"})

	lintOnly = nil
	result := buildLintResult(store, mib.SeverityError)
	testutil.Equal(t, 2, result.Summary.Total)
	testutil.Equal(t, 1, result.ExitCode)
	testutil.Equal(t, 1, result.Summary.BySev["error"])
	testutil.Equal(t, 2, result.Summary.ByModule["TEST-MIB"])

	lintOnly = []string{"W*"}
	result = buildLintResult(store, mib.SeverityError)
	testutil.Equal(t, 1, result.Summary.Total)
	testutil.Equal(t, 0, result.ExitCode) // the warning alone doesn't cross the error threshold
	lintOnly = nil
}

func TestBuildDumpOutputModuleAndObjects(t *testing.T) {
	store := fixtureStore(t)
	out := buildDumpOutput(store, nil)

	testutil.Len(t, out.Modules, 1)
	testutil.Equal(t, "TEST-MIB", out.Modules[0].Name)
	testutil.Equal(t, "Test Org", out.Modules[0].Organization)

	testutil.Len(t, out.Objects, 4)
	testutil.NotNil(t, out.Tree)

	var entryJSON *ObjectJSON
	for i := range out.Objects {
		if out.Objects[i].Name == "testEntry" {
			entryJSON = &out.Objects[i]
		}
	}
	testutil.NotNil(t, entryJSON)
	testutil.Equal(t, "row", entryJSON.Kind)
	testutil.Len(t, entryJSON.Index, 1)
	testutil.Equal(t, "testIndex", entryJSON.Index[0].Object)
}

func TestBuildDumpOutputOIDFilter(t *testing.T) {
	store := fixtureStore(t)
	filter := mib.OID{1, 3, 6, 1, 4, 1, 99999, 1, 1} // testEntry's own OID
	out := buildDumpOutput(store, filter)

	// testEntry itself plus its two columns share this prefix; its parent
	// testTable (one arc shorter) does not.
	testutil.Len(t, out.Objects, 3)
	for _, o := range out.Objects {
		testutil.True(t, o.Name == "testEntry" || o.Name == "testIndex" || o.Name == "testName")
	}
}

func TestResolveRowAndIndexSuffix(t *testing.T) {
	store := fixtureStore(t)

	row, err := resolveRow(store, "TEST-MIB::testEntry")
	testutil.NoError(t, err)
	testutil.Equal(t, "testEntry", row.Name())

	row, err = resolveRow(store, "testEntry")
	testutil.NoError(t, err)
	testutil.Equal(t, "testEntry", row.Name())

	_, err = resolveRow(store, "TEST-MIB::noSuchRow")
	testutil.Error(t, err)

	_, err = resolveRow(store, "NO-SUCH-MODULE::testEntry")
	testutil.Error(t, err)

	_, err = resolveRow(store, "noSuchThing")
	testutil.Error(t, err)

	// bare index suffix, unchanged.
	suffix := indexSuffix(row, mib.OID{5})
	testutil.True(t, suffix.Equal(mib.OID{5}))

	// full row-oid-plus-index instance OID, prefix stripped.
	full := mib.OID{1, 3, 6, 1, 4, 1, 99999, 1, 1, 5}
	suffix = indexSuffix(row, full)
	testutil.True(t, suffix.Equal(mib.OID{5}))
}
