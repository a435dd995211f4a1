package mib

import (
	"errors"
	"testing"

	"github.com/BabisK/snmpcodec/internal/testutil"
)

func TestNewStoreSeedsRootArcs(t *testing.T) {
	store := NewStore(DefaultConfig())
	root := store.Root()
	testutil.NotNil(t, root)

	want := map[uint32]string{0: "ccitt", 1: "iso", 2: "joint-iso-ccitt"}
	for arc, name := range want {
		child := root.Child(arc)
		testutil.NotNil(t, child, "expected root arc %d to be seeded", arc)
		testutil.Equal(t, name, child.Name())
		testutil.Equal(t, KindNode, child.Kind())
	}
}

func TestNewModuleDuplicate(t *testing.T) {
	store := NewStore(DefaultConfig())
	_, err := store.NewModule("IF-MIB")
	testutil.NoError(t, err)

	_, err = store.NewModule("IF-MIB")
	testutil.Error(t, err)
	testutil.True(t, errors.Is(err, &Error{Kind: ErrDuplicateModule}))
}

func TestAddTypeDuplicate(t *testing.T) {
	store := NewStore(DefaultConfig())
	sym := NewSymbol("IF-MIB", "InterfaceIndex")
	testutil.NoError(t, store.AddType(sym, NewTypeDescriptor(TypeInteger)))

	err := store.AddType(sym, NewTypeDescriptor(TypeInteger))
	testutil.Error(t, err)
	testutil.True(t, errors.Is(err, &Error{Kind: ErrDuplicateSymbol}))
}

func TestAddObjectTypeBindsModule(t *testing.T) {
	store := NewStore(DefaultConfig())
	mod, err := store.NewModule("IF-MIB")
	testutil.NoError(t, err)

	sym := NewSymbol("IF-MIB", "ifNumber")
	obj := NewObjectType(sym)
	path := OidPath{OidComponentNumber{Value: 1}}
	testutil.NoError(t, store.AddObjectType(sym, obj, path))

	testutil.Len(t, mod.Objects(), 1)
	testutil.Equal(t, "ifNumber", mod.Objects()[0].Name())

	got, ok := store.Object(sym)
	testutil.True(t, ok)
	testutil.Equal(t, obj, got)

	err = store.AddObjectType(sym, NewObjectType(sym), path)
	testutil.Error(t, err)
	testutil.True(t, errors.Is(err, &Error{Kind: ErrDuplicateSymbol}))
}

func TestResolveAcrossKinds(t *testing.T) {
	store := NewStore(DefaultConfig())
	path := OidPath{OidComponentNumber{Value: 1}}

	objSym := NewSymbol("IF-MIB", "ifTable")
	obj := NewObjectType(objSym)
	testutil.NoError(t, store.AddObjectType(objSym, obj, path))

	notifSym := NewSymbol("IF-MIB", "linkDown")
	notif := &Notification{}
	testutil.NoError(t, store.AddNotificationType(notifSym, notif, path))

	groupSym := NewSymbol("IF-MIB", "ifGeneralGroup")
	group := &Group{}
	testutil.NoError(t, store.AddGroup(groupSym, group, path))

	complianceSym := NewSymbol("IF-MIB", "ifCompliance")
	compliance := &Compliance{}
	testutil.NoError(t, store.AddCompliance(complianceSym, compliance, path))

	capabilitySym := NewSymbol("IF-MIB", "ifCapabilities")
	capability := &Capability{}
	testutil.NoError(t, store.AddCapability(capabilitySym, capability, path))

	kind, entity := store.Resolve(objSym)
	testutil.Equal(t, KindUnknown, kind) // bare ObjectType has no Kind set on its Node
	testutil.NotNil(t, entity)

	kind, entity = store.Resolve(notifSym)
	testutil.Equal(t, KindNotification, kind)
	testutil.NotNil(t, entity)

	kind, entity = store.Resolve(groupSym)
	testutil.Equal(t, KindGroup, kind)
	testutil.NotNil(t, entity)

	kind, entity = store.Resolve(complianceSym)
	testutil.Equal(t, KindCompliance, kind)
	testutil.NotNil(t, entity)

	kind, entity = store.Resolve(capabilitySym)
	testutil.Equal(t, KindCapabilities, kind)
	testutil.NotNil(t, entity)

	kind, entity = store.Resolve(NewSymbol("IF-MIB", "noSuchThing"))
	testutil.Equal(t, KindUnknown, kind)
	testutil.Nil(t, entity)
}

func TestRegisterNodeNumericPath(t *testing.T) {
	store := NewStore(DefaultConfig())
	enterprises := NewSymbol("TEST-MIB", "enterprises")
	path := OidPath{
		OidComponentNumber{Value: 1}, OidComponentNumber{Value: 3},
		OidComponentNumber{Value: 6}, OidComponentNumber{Value: 1},
		OidComponentNumber{Value: 4}, OidComponentNumber{Value: 1},
	}
	_, err := store.AddMacroValue(enterprises, path)
	testutil.NoError(t, err)

	oid, err := store.NumericOid(enterprises)
	testutil.NoError(t, err)
	testutil.True(t, oid.Equal(OID{1, 3, 6, 1, 4, 1}))

	myCompany := NewSymbol("TEST-MIB", "myCompany")
	childPath := OidPath{OidComponentSymbolNumber{Ref: enterprises, Value: 9999}}
	node, err := store.AddMacroValue(myCompany, childPath)
	testutil.NoError(t, err)
	testutil.Equal(t, "myCompany", node.Name())

	oid, err = store.NumericOid(myCompany)
	testutil.NoError(t, err)
	testutil.True(t, oid.Equal(OID{1, 3, 6, 1, 4, 1, 9999}))

	// the node must actually have been grafted into the tree at that path.
	found := store.Root()
	for _, arc := range []uint32(oid) {
		found = found.Child(arc)
		testutil.NotNil(t, found)
	}
	testutil.Equal(t, "myCompany", found.Name())
}

func TestNumericOidResolvesBareRootSymbol(t *testing.T) {
	store := NewStore(DefaultConfig())
	// { iso 3 6 1 4 1 99999 }, the overwhelmingly common shape of a
	// top-level module OID assignment.
	testModule := NewSymbol("TEST-MIB", "testModule")
	path := OidPath{
		OidComponentSymbol{Ref: NewSymbol("", "iso")},
		OidComponentNumber{Value: 3}, OidComponentNumber{Value: 6},
		OidComponentNumber{Value: 1}, OidComponentNumber{Value: 4},
		OidComponentNumber{Value: 1}, OidComponentNumber{Value: 99999},
	}
	node, err := store.RegisterNode(testModule, path)
	testutil.NoError(t, err)
	testutil.True(t, node.OID().Equal(OID{1, 3, 6, 1, 4, 1, 99999}))
}

func TestRegisterNodeUnresolvedImport(t *testing.T) {
	store := NewStore(DefaultConfig())
	sym := NewSymbol("TEST-MIB", "orphan")
	path := OidPath{OidComponentSymbol{Ref: NewSymbol("TEST-MIB", "neverDeclared")}}
	_, err := store.RegisterNode(sym, path)
	testutil.Error(t, err)
	testutil.True(t, errors.Is(err, &Error{Kind: ErrUnresolvedImport}))
}

func TestAddMacroValueDuplicate(t *testing.T) {
	store := NewStore(DefaultConfig())
	sym := NewSymbol("TEST-MIB", "enterprises")
	path := OidPath{OidComponentNumber{Value: 1}}
	_, err := store.AddMacroValue(sym, path)
	testutil.NoError(t, err)

	_, err = store.AddMacroValue(sym, path)
	testutil.Error(t, err)
	testutil.True(t, errors.Is(err, &Error{Kind: ErrDuplicateSymbol}))
}

func TestResolveTypesFollowsReferencedChain(t *testing.T) {
	store := NewStore(DefaultConfig())
	baseSym := NewSymbol("IF-MIB", "InterfaceIndex")
	base := NewTypeDescriptor(TypeInteger)
	base.SetDisplayHint("d")
	testutil.NoError(t, store.AddType(baseSym, base))

	refSym := NewSymbol("IF-MIB", "ifIndex")
	ref := NewTypeDescriptor(TypeReferenced)
	ref.SetReferenceSymbol(baseSym)
	testutil.NoError(t, store.AddType(refSym, ref))

	objSym := NewSymbol("IF-MIB", "ifIndex")
	obj := NewObjectType(objSym)
	obj.SetType(ref)
	testutil.NoError(t, store.AddObjectType(objSym, obj, OidPath{OidComponentNumber{Value: 1}}))

	testutil.NoError(t, store.ResolveTypes())
	testutil.Equal(t, base, ref.Resolved())
	testutil.Equal(t, "d", obj.EffectiveDisplayHint())
}

func TestResolveTypesDetectsCycle(t *testing.T) {
	store := NewStore(DefaultConfig())
	symA := NewSymbol("TEST-MIB", "TypeA")
	symB := NewSymbol("TEST-MIB", "TypeB")

	typeA := NewTypeDescriptor(TypeReferenced)
	typeA.SetReferenceSymbol(symB)
	typeB := NewTypeDescriptor(TypeReferenced)
	typeB.SetReferenceSymbol(symA)

	testutil.NoError(t, store.AddType(symA, typeA))
	testutil.NoError(t, store.AddType(symB, typeB))

	err := store.ResolveTypes()
	testutil.Error(t, err)
	testutil.True(t, errors.Is(err, &Error{Kind: ErrTypeCycle}))
}

func TestReportFiltersBySeverity(t *testing.T) {
	store := NewStore(DefaultConfig()) // Level: StrictnessNormal (Minor threshold)
	store.Report(Diagnostic{Severity: SeverityError, Code: "E1", Message: "reported"})
	store.Report(Diagnostic{Severity: SeverityWarning, Code: "W1", Message: "filtered out"})

	diags := store.Diagnostics()
	testutil.Len(t, diags, 1)
	testutil.Equal(t, "E1", diags[0].Code)
}

func TestReportStrictReportsEverything(t *testing.T) {
	store := NewStore(StrictConfig())
	store.Report(Diagnostic{Severity: SeverityInfo, Code: "I1"})
	diags := store.Diagnostics()
	testutil.Len(t, diags, 1)
}

func TestUnresolvedRoundTrip(t *testing.T) {
	store := NewStore(DefaultConfig())
	ref := UnresolvedRef{Kind: UnresolvedIndex, Symbol: "ifIndex", Module: "IF-MIB"}
	store.ReportUnresolved(ref)

	got := store.Unresolved()
	testutil.Len(t, got, 1)
	testutil.Equal(t, ref, got[0])
}

func TestModulesSortedByName(t *testing.T) {
	store := NewStore(DefaultConfig())
	_, err := store.NewModule("SNMPv2-MIB")
	testutil.NoError(t, err)
	_, err = store.NewModule("IF-MIB")
	testutil.NoError(t, err)

	mods := store.Modules()
	testutil.Len(t, mods, 2)
	testutil.Equal(t, "IF-MIB", mods[0].Name())
	testutil.Equal(t, "SNMPv2-MIB", mods[1].Name())
}
