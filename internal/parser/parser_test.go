package parser

import (
	"testing"

	"github.com/BabisK/snmpcodec/internal/ast"
	"github.com/BabisK/snmpcodec/internal/testutil"
	"github.com/BabisK/snmpcodec/internal/types"
)

// ruleEvent records one EnterRule/ExitRule pair along with the fields
// reported while it was open, for assertion convenience in tests.
type ruleEvent struct {
	rule    ast.Rule
	name    string
	hasName bool
	fields  []fieldEvent
}

type fieldEvent struct {
	field ast.Field
	value any
}

// recordingListener is a test double that records every event it receives
// without assembling them into any larger structure, mirroring the shape
// a real builder would consume.
type recordingListener struct {
	stack       []*ruleEvent
	rules       []ruleEvent
	imports     []ast.ImportClause
	diagnostics []types.Diagnostic
}

func (l *recordingListener) EnterRule(rule ast.Rule, name *ast.Ident, span types.Span) {
	ev := &ruleEvent{rule: rule}
	if name != nil {
		ev.name = name.Name
		ev.hasName = true
	}
	l.stack = append(l.stack, ev)
}

func (l *recordingListener) ExitRule(rule ast.Rule, span types.Span) {
	n := len(l.stack)
	ev := l.stack[n-1]
	l.stack = l.stack[:n-1]
	if len(l.stack) == 0 {
		l.rules = append(l.rules, *ev)
	} else {
		// Nested rule (e.g. ComplianceModule within ModuleCompliance, or the
		// top-level Module wrapping everything): fold into the parent's
		// field list so assertions can still find it by rule kind.
		parent := l.stack[len(l.stack)-1]
		parent.fields = append(parent.fields, fieldEvent{field: -1, value: *ev})
	}
}

func (l *recordingListener) Field(field ast.Field, value any, span types.Span) {
	cur := l.stack[len(l.stack)-1]
	cur.fields = append(cur.fields, fieldEvent{field: field, value: value})
}

func (l *recordingListener) Imports(imports []ast.ImportClause, span types.Span) {
	l.imports = append(l.imports, imports...)
}

func (l *recordingListener) Error(diag types.Diagnostic) {
	l.diagnostics = append(l.diagnostics, diag)
}

// definitions returns the top-level rule events recorded inside the
// RuleModule wrapper (i.e. excluding the Module rule itself).
func (l *recordingListener) definitions() []ruleEvent {
	var defs []ruleEvent
	for _, ev := range l.rules {
		if ev.rule != ast.RuleModule {
			defs = append(defs, ev)
			continue
		}
		for _, f := range ev.fields {
			if f.field == -1 {
				if nested, ok := f.value.(ruleEvent); ok {
					defs = append(defs, nested)
				}
			}
		}
	}
	return defs
}

func (ev ruleEvent) fieldValue(f ast.Field) (any, bool) {
	for _, fv := range ev.fields {
		if fv.field == f {
			return fv.value, true
		}
	}
	return nil, false
}

func parseSource(t *testing.T, source string) *recordingListener {
	t.Helper()
	return parseSourceWithConfig(t, source, types.PermissiveConfig())
}

func parseSourceWithConfig(t *testing.T, source string, config types.DiagnosticConfig) *recordingListener {
	t.Helper()
	l := &recordingListener{}
	p := New([]byte(source), l, nil, config)
	ok := p.ParseModule()
	testutil.True(t, ok, "expected module header to parse")
	return l
}

func TestParseEmptyModule(t *testing.T) {
	l := parseSource(t, "TEST-MIB DEFINITIONS ::= BEGIN END")

	testutil.Len(t, l.rules, 1, "top-level rule count")
	testutil.Equal(t, ast.RuleModule, l.rules[0].rule, "top-level rule kind")
	testutil.Equal(t, "TEST-MIB", l.rules[0].name, "module name")
	testutil.Len(t, l.definitions(), 0, "body should be empty")
}

func TestParseModuleWithImports(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		IMPORTS
			MODULE-IDENTITY, OBJECT-TYPE FROM SNMPv2-SMI
			DisplayString FROM SNMPv2-TC;
		END`)

	testutil.Len(t, l.imports, 2, "imports count")
	testutil.Equal(t, "SNMPv2-SMI", l.imports[0].FromModule.Name, "first import module")
	testutil.Len(t, l.imports[0].Symbols, 2, "first import symbols count")
	testutil.Equal(t, "SNMPv2-TC", l.imports[1].FromModule.Name, "second import module")
}

func TestParseValueAssignment(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testObject OBJECT IDENTIFIER ::= { iso 3 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")
	testutil.Equal(t, ast.RuleValueAssignment, defs[0].rule, "rule kind")
	testutil.Equal(t, "testObject", defs[0].name, "definition name")

	oidVal, ok := defs[0].fieldValue(ast.FieldOidAssignment)
	testutil.True(t, ok, "expected OidAssignment field")
	oid := oidVal.(ast.OidAssignment)
	testutil.Len(t, oid.Components, 2, "OID components count")
}

func TestParseSimpleObjectType(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testIndex OBJECT-TYPE
			SYNTAX Integer32
			MAX-ACCESS read-only
			STATUS current
			DESCRIPTION "Test description"
			::= { testEntry 1 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")
	testutil.Equal(t, ast.RuleObjectType, defs[0].rule, "rule kind")
	testutil.Equal(t, "testIndex", defs[0].name, "definition name")

	accessVal, ok := defs[0].fieldValue(ast.FieldAccess)
	testutil.True(t, ok, "expected Access field")
	testutil.Equal(t, ast.AccessValueReadOnly, accessVal.(ast.AccessClause).Value, "access value")

	statusVal, ok := defs[0].fieldValue(ast.FieldStatus)
	testutil.True(t, ok, "expected Status field")
	testutil.Equal(t, ast.StatusValueCurrent, statusVal.(ast.StatusClause).Value, "status value")

	descVal, ok := defs[0].fieldValue(ast.FieldDescription)
	testutil.True(t, ok, "expected Description field")
	testutil.Equal(t, "Test description", descVal.(ast.QuotedString).Value, "description value")
}

func TestParseIntegerEnum(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testStatus OBJECT-TYPE
			SYNTAX INTEGER { up(1), down(2), testing(3) }
			MAX-ACCESS read-only
			STATUS current
			DESCRIPTION "Test status"
			::= { test 1 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")

	syntaxVal, ok := defs[0].fieldValue(ast.FieldSyntax)
	testutil.True(t, ok, "expected Syntax field")
	enumSyntax, ok := syntaxVal.(ast.SyntaxClause).Syntax.(*ast.TypeSyntaxIntegerEnum)
	testutil.True(t, ok, "expected IntegerEnum syntax, got %T", syntaxVal.(ast.SyntaxClause).Syntax)
	testutil.Len(t, enumSyntax.NamedNumbers, 3, "named numbers count")
	testutil.Equal(t, "up", enumSyntax.NamedNumbers[0].Name.Name, "first named number name")
	testutil.Equal(t, int64(1), enumSyntax.NamedNumbers[0].Value, "first named number value")
}

func TestParseModuleIdentity(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testMIB MODULE-IDENTITY
			LAST-UPDATED "200001010000Z"
			ORGANIZATION "Test Org"
			CONTACT-INFO "test@test.com"
			DESCRIPTION "Test MIB"
			::= { enterprises 1 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")
	testutil.Equal(t, ast.RuleModuleIdentity, defs[0].rule, "rule kind")
	testutil.Equal(t, "testMIB", defs[0].name, "definition name")

	luVal, ok := defs[0].fieldValue(ast.FieldLastUpdated)
	testutil.True(t, ok, "expected LastUpdated field")
	testutil.Equal(t, "200001010000Z", luVal.(ast.QuotedString).Value, "last-updated value")

	orgVal, ok := defs[0].fieldValue(ast.FieldOrganization)
	testutil.True(t, ok, "expected Organization field")
	testutil.Equal(t, "Test Org", orgVal.(ast.QuotedString).Value, "organization value")
}

func TestParseModuleIdentityWithRevisions(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testMIB MODULE-IDENTITY
			LAST-UPDATED "200201010000Z"
			ORGANIZATION "Test Org"
			CONTACT-INFO "test@test.com"
			DESCRIPTION "Test MIB"
			REVISION "200201010000Z"
			DESCRIPTION "Second revision."
			REVISION "200001010000Z"
			DESCRIPTION "Initial revision."
			::= { enterprises 1 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")

	var revisions []ast.RevisionClause
	for _, f := range defs[0].fields {
		if f.field == ast.FieldRevision {
			revisions = append(revisions, f.value.(ast.RevisionClause))
		}
	}
	testutil.Len(t, revisions, 2, "revision count")
	testutil.Equal(t, "200201010000Z", revisions[0].Date.Value, "first revision date")
	testutil.Equal(t, "200001010000Z", revisions[1].Date.Value, "second revision date")
}

func TestParseTextualConvention(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		TestString TEXTUAL-CONVENTION
			DISPLAY-HINT "255a"
			STATUS current
			DESCRIPTION "A test string"
			SYNTAX OCTET STRING (SIZE (0..255))
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")
	testutil.Equal(t, ast.RuleTextualConvention, defs[0].rule, "rule kind")
	testutil.Equal(t, "TestString", defs[0].name, "definition name")

	hintVal, ok := defs[0].fieldValue(ast.FieldDisplayHint)
	testutil.True(t, ok, "expected DisplayHint field")
	testutil.Equal(t, "255a", hintVal.(ast.QuotedString).Value, "display hint value")
}

func TestParseTypeAssignment(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		SimpleInt ::= INTEGER
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")
	testutil.Equal(t, ast.RuleTypeAssignment, defs[0].rule, "rule kind")
	testutil.Equal(t, "SimpleInt", defs[0].name, "definition name")
}

func TestParseObjectTypeWithIndex(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testEntry OBJECT-TYPE
			SYNTAX TestEntry
			MAX-ACCESS not-accessible
			STATUS current
			DESCRIPTION "A row"
			INDEX { testIndex, IMPLIED testName }
			::= { testTable 1 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")

	idxVal, ok := defs[0].fieldValue(ast.FieldIndex)
	testutil.True(t, ok, "expected Index field")
	idxClause := idxVal.(ast.IndexClause)
	items := idxClause.Indexes()
	testutil.Len(t, items, 2, "index item count")
	testutil.Equal(t, "testIndex", items[0].Object.Name, "first index object")
	testutil.False(t, items[0].Implied, "first index should not be implied")
	testutil.Equal(t, "testName", items[1].Object.Name, "second index object")
	testutil.True(t, items[1].Implied, "second index should be implied")
}

func TestParseObjectTypeWithAugments(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testExtEntry OBJECT-TYPE
			SYNTAX TestExtEntry
			MAX-ACCESS not-accessible
			STATUS current
			DESCRIPTION "An augmenting row"
			AUGMENTS { testEntry }
			::= { testExtTable 1 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")

	augVal, ok := defs[0].fieldValue(ast.FieldAugments)
	testutil.True(t, ok, "expected Augments field")
	testutil.Equal(t, "testEntry", augVal.(ast.AugmentsClause).Target.Name, "augments target")
}

func TestParseObjectTypeWithDefval(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testRetries OBJECT-TYPE
			SYNTAX INTEGER
			MAX-ACCESS read-write
			STATUS current
			DESCRIPTION "Retry count"
			DEFVAL { 3 }
			::= { testObjects 1 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")

	dvVal, ok := defs[0].fieldValue(ast.FieldDefVal)
	testutil.True(t, ok, "expected DefVal field")
	dv := dvVal.(ast.DefValClause).Value.(*ast.DefValContentInteger)
	testutil.Equal(t, int64(3), dv.Value, "defval integer value")
}

func TestParseNotificationType(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testTrap NOTIFICATION-TYPE
			OBJECTS { testObject1, testObject2 }
			STATUS current
			DESCRIPTION "A test notification"
			::= { testNotifications 1 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")
	testutil.Equal(t, ast.RuleNotificationType, defs[0].rule, "rule kind")

	objsVal, ok := defs[0].fieldValue(ast.FieldObjects)
	testutil.True(t, ok, "expected Objects field")
	objs := objsVal.([]ast.Ident)
	testutil.Len(t, objs, 2, "objects count")
	testutil.Equal(t, "testObject1", objs[0].Name, "first object")
}

func TestParseObjectGroup(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testGroup OBJECT-GROUP
			OBJECTS { testObject1, testObject2 }
			STATUS current
			DESCRIPTION "A test group"
			::= { testConformance 1 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")
	testutil.Equal(t, ast.RuleObjectGroup, defs[0].rule, "rule kind")
}

func TestParseModuleCompliance(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testCompliance MODULE-COMPLIANCE
			STATUS current
			DESCRIPTION "Compliance statement"
			MODULE
				MANDATORY-GROUPS { testGroup }
				OBJECT testObject1
					MIN-ACCESS read-only
					DESCRIPTION "Read-only is ok"
			::= { testConformance 2 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")
	testutil.Equal(t, ast.RuleModuleCompliance, defs[0].rule, "rule kind")

	var nested *ruleEvent
	for _, f := range defs[0].fields {
		if f.field == -1 {
			ev := f.value.(ruleEvent)
			nested = &ev
		}
	}
	testutil.NotNil(t, nested, "expected a nested ComplianceModule rule")
	testutil.Equal(t, ast.RuleComplianceModule, nested.rule, "nested rule kind")

	mgVal, ok := nested.fieldValue(ast.FieldMandatoryGroups)
	testutil.True(t, ok, "expected MandatoryGroups field")
	testutil.Len(t, mgVal.([]ast.Ident), 1, "mandatory group count")

	objVal, ok := nested.fieldValue(ast.FieldComplianceObject)
	testutil.True(t, ok, "expected ComplianceObject field")
	testutil.Equal(t, "testObject1", objVal.(ast.ComplianceObjectClause).Object.Name, "compliance object name")
}

func TestParseAgentCapabilities(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testAgent AGENT-CAPABILITIES
			PRODUCT-RELEASE "1.0"
			STATUS current
			DESCRIPTION "Test agent"
			SUPPORTS TEST-MIB
				INCLUDES { testGroup }
				VARIATION testObject1
					DESCRIPTION "Optional in this agent"
			::= { testAgentModules 1 }
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")
	testutil.Equal(t, ast.RuleAgentCapabilities, defs[0].rule, "rule kind")

	var nested *ruleEvent
	for _, f := range defs[0].fields {
		if f.field == -1 {
			ev := f.value.(ruleEvent)
			nested = &ev
		}
	}
	testutil.NotNil(t, nested, "expected a nested SupportsModule rule")
	testutil.Equal(t, ast.RuleSupportsModule, nested.rule, "nested rule kind")
	testutil.Equal(t, "TEST-MIB", nested.name, "supports module name")

	incVal, ok := nested.fieldValue(ast.FieldInclude)
	testutil.True(t, ok, "expected Include field")
	testutil.Len(t, incVal.([]ast.Ident), 1, "includes count")
}

func TestParseTrapType(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		testTrap TRAP-TYPE
			ENTERPRISE testEnterprise
			VARIABLES { testVar1 }
			DESCRIPTION "A v1 trap"
			::= 1
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")
	testutil.Equal(t, ast.RuleTrapType, defs[0].rule, "rule kind")

	entVal, ok := defs[0].fieldValue(ast.FieldEnterprise)
	testutil.True(t, ok, "expected Enterprise field")
	testutil.Equal(t, "testEnterprise", entVal.(ast.Ident).Name, "enterprise name")

	numVal, ok := defs[0].fieldValue(ast.FieldTrapNumber)
	testutil.True(t, ok, "expected TrapNumber field")
	testutil.Equal(t, uint32(1), numVal.(uint32), "trap number")
}

func TestParseSequenceType(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		TestEntry ::= SEQUENCE {
			testIndex INTEGER,
			testName OCTET STRING
		}
		END`)

	defs := l.definitions()
	testutil.Len(t, defs, 1, "definitions count")

	syntaxVal, ok := defs[0].fieldValue(ast.FieldTypeSyntax)
	testutil.True(t, ok, "expected TypeSyntax field")
	seq, ok := syntaxVal.(*ast.TypeSyntaxSequence)
	testutil.True(t, ok, "expected Sequence syntax, got %T", syntaxVal)
	testutil.Len(t, seq.Fields, 2, "sequence field count")
	testutil.Equal(t, "testIndex", seq.Fields[0].Name.Name, "first field name")
}

func TestParseRecoversFromBadDefinition(t *testing.T) {
	l := parseSource(t, `TEST-MIB DEFINITIONS ::= BEGIN
		badObject BOGUS-MACRO garbage tokens here
		goodObject OBJECT IDENTIFIER ::= { iso 5 }
		END`)

	testutil.True(t, len(l.diagnostics) > 0, "expected at least one diagnostic")

	defs := l.definitions()
	found := false
	for _, d := range defs {
		if d.name == "goodObject" {
			found = true
		}
	}
	testutil.True(t, found, "expected recovery to reach goodObject")
}

func TestValidateIdentifierDiagnostics(t *testing.T) {
	l := parseSourceWithConfig(t, `TEST-MIB DEFINITIONS ::= BEGIN
		test_object OBJECT IDENTIFIER ::= { iso 9 }
		END`, types.StrictConfig())

	found := false
	for _, d := range l.diagnostics {
		if d.Code == types.DiagIdentifierUnderscore {
			found = true
		}
	}
	testutil.True(t, found, "expected identifier-underscore diagnostic")
}
