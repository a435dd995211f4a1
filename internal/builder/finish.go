package builder

import (
	"github.com/BabisK/snmpcodec/internal/ast"
	"github.com/BabisK/snmpcodec/mib"
)

// oidAssignmentPath reads the frame's FieldOidAssignment, if present, and
// converts it to a symbolic mib.OidPath. Returns a nil path for rules that
// never reported one (TrapType derives its position from FieldEnterprise
// instead; ComplianceModule/SupportsModule have no OID of their own).
func (b *Builder) oidAssignmentPath(f *frame) mib.OidPath {
	v, ok := f.last(ast.FieldOidAssignment)
	if !ok {
		return nil
	}
	oa := v.(ast.OidAssignment)
	return b.convertOidPath(oa.Components)
}

// classifyKind infers a registered node's structural Kind from what its
// OBJECT-TYPE declared: a SEQUENCE OF SYNTAX makes it a table, an INDEX or
// AUGMENTS clause makes it a row, and a direct child of a row is a column.
// Anything else accessible is a scalar. This mirrors the teacher's
// internal/resolver/semantics.go inferNodeKinds, collapsed from a
// whole-tree second pass into a decision made the moment each node is
// registered — correct because SMI text conventionally declares a table's
// row before its columns.
func (b *Builder) classifyKind(node *mib.Node, hasIndex, hasAugments, isSequenceOf bool) mib.Kind {
	switch {
	case isSequenceOf:
		return mib.KindTable
	case hasIndex || hasAugments:
		return mib.KindRow
	case node.Parent() != nil && node.Parent().Kind() == mib.KindRow:
		return mib.KindColumn
	default:
		return mib.KindScalar
	}
}

// finishValueAssignment handles a plain "name OBJECT IDENTIFIER ::= { ... }"
// value assignment: a bare OID node with no attribute bag. Non-OID value
// assignments (integer/string constants) carry no FieldOidAssignment and
// are out of scope — this compiler's domain is the OID tree, not general
// ASN.1 value evaluation.
func (b *Builder) finishValueAssignment(f *frame) {
	path := b.oidAssignmentPath(f)
	if path == nil {
		return
	}
	sym := b.resolveSymbol(f.name.Name)
	if _, err := b.store.AddMacroValue(sym, path); err != nil {
		b.fail(err)
	}
}

// finishTypeAssignment handles a plain "Name ::= <TypeSyntax>" type
// definition (not a TEXTUAL-CONVENTION macro, which carries its own rule).
func (b *Builder) finishTypeAssignment(f *frame) {
	v, ok := f.last(ast.FieldTypeSyntax)
	if !ok {
		return
	}
	sym := b.resolveSymbol(f.name.Name)
	td := b.convertTypeSyntax(v.(ast.TypeSyntax))
	td.SetName(f.name.Name)
	td.SetModule(b.module)
	if err := b.store.AddType(sym, td); err != nil {
		b.fail(err)
	}
}

// finishModuleIdentity handles MODULE-IDENTITY: it both stamps the
// enclosing Module's own metadata (LAST-UPDATED, ORGANIZATION, CONTACT-INFO,
// DESCRIPTION, REVISION history) and registers a plain information node at
// its OID, per SMIv2's convention that a module's MODULE-IDENTITY clause
// names both the module and a tree position simultaneously.
func (b *Builder) finishModuleIdentity(f *frame) {
	sym := b.resolveSymbol(f.name.Name)
	if b.module != nil {
		b.module.SetLastUpdated(f.quoted(ast.FieldLastUpdated))
		b.module.SetOrganization(f.quoted(ast.FieldOrganization))
		b.module.SetContactInfo(f.quoted(ast.FieldContactInfo))
		b.module.SetDescription(f.quoted(ast.FieldDescription))
		for _, v := range f.fields[ast.FieldRevision] {
			rc := v.(ast.RevisionClause)
			b.module.AddRevision(mib.Revision{Date: rc.Date.Value, Description: rc.Description.Value})
		}
	}

	path := b.oidAssignmentPath(f)
	node, err := b.store.AddMacroValue(sym, path)
	if err != nil {
		b.fail(err)
		return
	}
	if b.module != nil {
		b.module.SetOID(node.OID())
	}
}

// finishObjectIdentity handles OBJECT-IDENTITY: a not-accessible information
// node carrying STATUS/DESCRIPTION/REFERENCE but no SYNTAX.
func (b *Builder) finishObjectIdentity(f *frame) {
	sym := b.resolveSymbol(f.name.Name)
	obj := mib.NewObjectType(sym)
	obj.SetModule(b.module)
	obj.SetAccess(mib.AccessNotAccessible)
	if v, ok := f.last(ast.FieldStatus); ok {
		sc := v.(ast.StatusClause)
		st, isSMIv1 := convertStatus(&sc)
		obj.SetStatus(st)
		if isSMIv1 {
			b.smiv1 = true
		}
	}
	obj.SetDescription(f.quoted(ast.FieldDescription))
	obj.SetReference(f.quoted(ast.FieldReference))

	path := b.oidAssignmentPath(f)
	if err := b.store.AddObjectType(sym, obj, path); err != nil {
		b.fail(err)
		return
	}
	node, err := b.store.RegisterNode(sym, path)
	if err != nil {
		b.fail(err)
		return
	}
	node.SetKind(mib.KindNode)
	node.SetObject(obj)
	obj.SetNode(node)
}

// finishObjectType handles OBJECT-TYPE: the core SMI definition, carrying
// SYNTAX/UNITS/ACCESS/STATUS/DESCRIPTION/REFERENCE/DEFVAL plus, for table
// rows, INDEX or AUGMENTS. INDEX columns and AUGMENTS targets are usually
// forward references within the same module (the row's OBJECT-TYPE
// conventionally precedes its own columns in source text), so both are
// recorded as pending and resolved once the whole module has been read
// (see Finish).
func (b *Builder) finishObjectType(f *frame) {
	sym := b.resolveSymbol(f.name.Name)
	obj := mib.NewObjectType(sym)
	obj.SetModule(b.module)

	var typeSyntax *mib.TypeDescriptor
	if v, ok := f.last(ast.FieldSyntax); ok {
		sc := v.(ast.SyntaxClause)
		typeSyntax = b.convertTypeSyntax(sc.Syntax)
		obj.SetType(typeSyntax)
	}
	obj.SetUnits(f.quoted(ast.FieldUnits))
	if v, ok := f.last(ast.FieldAccess); ok {
		ac := v.(ast.AccessClause)
		obj.SetAccess(convertAccess(&ac))
	}
	if v, ok := f.last(ast.FieldStatus); ok {
		sc := v.(ast.StatusClause)
		st, isSMIv1 := convertStatus(&sc)
		obj.SetStatus(st)
		if isSMIv1 {
			b.smiv1 = true
		}
	}
	obj.SetDescription(f.quoted(ast.FieldDescription))
	obj.SetReference(f.quoted(ast.FieldReference))
	if v, ok := f.last(ast.FieldDefVal); ok {
		dv := v.(ast.DefValClause)
		obj.SetDefaultValue(b.convertDefVal(&dv))
	}

	path := b.oidAssignmentPath(f)
	if err := b.store.AddObjectType(sym, obj, path); err != nil {
		b.fail(err)
		return
	}
	node, err := b.store.RegisterNode(sym, path)
	if err != nil {
		b.fail(err)
		return
	}
	obj.SetNode(node)
	node.SetObject(obj)

	var indexItems []ast.IndexItem
	hasIndex := false
	if v, ok := f.last(ast.FieldIndex); ok {
		ic := v.(ast.IndexClause)
		indexItems = ic.Indexes()
		hasIndex = true
	}

	hasAugments := false
	var augTarget mib.Symbol
	if v, ok := f.last(ast.FieldAugments); ok {
		ac := v.(ast.AugmentsClause)
		augTarget = b.resolveSymbol(ac.Target.Name)
		hasAugments = true
	}

	isSequenceOf := typeSyntax != nil && typeSyntax.Kind() == mib.TypeSequenceOf
	node.SetKind(b.classifyKind(node, hasIndex, hasAugments, isSequenceOf))

	if hasIndex {
		b.pendingIndexes = append(b.pendingIndexes, pendingIndex{row: obj, entries: indexItems})
	}
	if hasAugments {
		b.pendingAugments = append(b.pendingAugments, pendingAugment{row: obj, target: augTarget})
	}
}

// finishNotificationType handles NOTIFICATION-TYPE: an OBJECTS list plus the
// usual STATUS/DESCRIPTION/REFERENCE, registered at its own declared OID.
func (b *Builder) finishNotificationType(f *frame) {
	sym := b.resolveSymbol(f.name.Name)
	n := mib.NewNotification(sym)
	n.SetModule(b.module)
	b.bindNotificationObjects(n, f.fields[ast.FieldObjects])
	if v, ok := f.last(ast.FieldStatus); ok {
		sc := v.(ast.StatusClause)
		st, _ := convertStatus(&sc)
		n.SetStatus(st)
	}
	n.SetDescription(f.quoted(ast.FieldDescription))
	n.SetReference(f.quoted(ast.FieldReference))

	path := b.oidAssignmentPath(f)
	b.commitNotification(sym, n, path)
}

// finishTrapType handles the SMIv1 TRAP-TYPE macro. TRAP-TYPE has no OID
// clause of its own: its position is ENTERPRISE's OID with a 0 then the
// trap number appended, the conventional SMIv1-to-v2 mapping every
// compiler in this space applies when presenting v1 traps alongside v2
// notifications.
func (b *Builder) finishTrapType(f *frame) {
	sym := b.resolveSymbol(f.name.Name)
	n := mib.NewNotification(sym)
	n.SetModule(b.module)
	b.bindNotificationObjects(n, f.fields[ast.FieldVariables])
	n.SetDescription(f.quoted(ast.FieldDescription))
	n.SetReference(f.quoted(ast.FieldReference))

	var path mib.OidPath
	if v, ok := f.last(ast.FieldEnterprise); ok {
		ent := v.(ast.Ident)
		path = mib.OidPath{
			mib.OidComponentSymbol{Ref: b.resolveSymbol(ent.Name)},
			mib.OidComponentNumber{Value: 0},
		}
	}
	if v, ok := f.last(ast.FieldTrapNumber); ok {
		path = append(path, mib.OidComponentNumber{Value: v.(uint32)})
	}

	b.smiv1 = true
	b.commitNotification(sym, n, path)
}

func (b *Builder) bindNotificationObjects(n *mib.Notification, events []any) {
	for _, v := range events {
		for _, id := range v.([]ast.Ident) {
			sym := b.resolveSymbol(id.Name)
			if obj, ok := b.store.Object(sym); ok {
				n.AddObject(obj)
				continue
			}
			b.pendingNotificationObjects = append(b.pendingNotificationObjects, pendingNotificationObject{n: n, sym: sym})
		}
	}
}

func (b *Builder) commitNotification(sym mib.Symbol, n *mib.Notification, path mib.OidPath) {
	if err := b.store.AddNotificationType(sym, n, path); err != nil {
		b.fail(err)
		return
	}
	node, err := b.store.RegisterNode(sym, path)
	if err != nil {
		b.fail(err)
		return
	}
	node.SetKind(mib.KindNotification)
	node.SetNotification(n)
	n.SetNode(node)
}

// finishTextualConvention handles TEXTUAL-CONVENTION: a named, reusable
// SYNTAX refinement carrying its own DISPLAY-HINT/STATUS/DESCRIPTION.
// TEXTUAL-CONVENTION binds no OID; it is recorded purely in the type table.
func (b *Builder) finishTextualConvention(f *frame) {
	sym := b.resolveSymbol(f.name.Name)
	var td *mib.TypeDescriptor
	if v, ok := f.last(ast.FieldSyntax); ok {
		sc := v.(ast.SyntaxClause)
		td = b.convertTypeSyntax(sc.Syntax)
	} else {
		td = mib.NewTypeDescriptor(mib.TypeUnknown)
	}
	td.SetName(f.name.Name)
	td.SetModule(b.module)
	td.SetDisplayHint(f.quoted(ast.FieldDisplayHint))
	td.SetDescription(f.quoted(ast.FieldDescription))
	td.SetReferenceClause(f.quoted(ast.FieldReference))
	if v, ok := f.last(ast.FieldStatus); ok {
		sc := v.(ast.StatusClause)
		st, isSMIv1 := convertStatus(&sc)
		td.SetStatus(st)
		if isSMIv1 {
			b.smiv1 = true
		}
	}
	if err := b.store.AddTextualConvention(sym, td); err != nil {
		b.fail(err)
	}
}

// finishGroup handles both OBJECT-GROUP and NOTIFICATION-GROUP: a named set
// of member nodes (object columns/scalars, or notifications respectively)
// plus STATUS/DESCRIPTION/REFERENCE. Members are frequently declared before
// the group that names them, so unresolved members defer to Finish just
// like INDEX/AUGMENTS.
func (b *Builder) finishGroup(f *frame, isNotificationGroup bool) {
	sym := b.resolveSymbol(f.name.Name)
	g := mib.NewGroup(sym)
	g.SetModule(b.module)
	g.SetIsNotificationGroup(isNotificationGroup)

	memberField := ast.FieldObjects
	if isNotificationGroup {
		memberField = ast.FieldNotifications
	}
	for _, v := range f.fields[memberField] {
		for _, id := range v.([]ast.Ident) {
			msym := b.resolveSymbol(id.Name)
			if obj, ok := b.store.Object(msym); ok {
				g.AddMember(obj.Node())
				continue
			}
			b.pendingGroupMembers = append(b.pendingGroupMembers, pendingGroupMember{g: g, sym: msym})
		}
	}
	if v, ok := f.last(ast.FieldStatus); ok {
		sc := v.(ast.StatusClause)
		st, _ := convertStatus(&sc)
		g.SetStatus(st)
	}
	g.SetDescription(f.quoted(ast.FieldDescription))
	g.SetReference(f.quoted(ast.FieldReference))

	path := b.oidAssignmentPath(f)
	if err := b.store.AddGroup(sym, g, path); err != nil {
		b.fail(err)
		return
	}
	node, err := b.store.RegisterNode(sym, path)
	if err != nil {
		b.fail(err)
		return
	}
	node.SetKind(mib.KindGroup)
	node.SetGroup(g)
	g.SetNode(node)
}

// finishModuleCompliance handles MODULE-COMPLIANCE: STATUS/DESCRIPTION/
// REFERENCE plus the nested MODULE clauses folded in by foldComplianceModule
// while this frame was their parent.
func (b *Builder) finishModuleCompliance(f *frame) {
	sym := b.resolveSymbol(f.name.Name)
	c := mib.NewCompliance(sym)
	c.SetModule(b.module)
	if v, ok := f.last(ast.FieldStatus); ok {
		sc := v.(ast.StatusClause)
		st, _ := convertStatus(&sc)
		c.SetStatus(st)
	}
	c.SetDescription(f.quoted(ast.FieldDescription))
	c.SetReference(f.quoted(ast.FieldReference))
	c.SetModules(f.complianceModules)

	path := b.oidAssignmentPath(f)
	if err := b.store.AddCompliance(sym, c, path); err != nil {
		b.fail(err)
		return
	}
	node, err := b.store.RegisterNode(sym, path)
	if err != nil {
		b.fail(err)
		return
	}
	node.SetKind(mib.KindCompliance)
	node.SetCompliance(c)
	c.SetNode(node)
}

// foldComplianceModule converts one MODULE clause of a MODULE-COMPLIANCE
// into a mib.ComplianceModule and folds it into the parent
// MODULE-COMPLIANCE frame's accumulator, rather than committing anything
// to the Store directly — a MODULE clause has no Store identity of its
// own. f.name is the empty Ident for the unqualified "MODULE" form, which
// refers to the compliance statement's own module.
func (b *Builder) foldComplianceModule(f *frame) {
	cm := mib.ComplianceModule{ModuleName: f.name.Name}
	if v, ok := f.last(ast.FieldMandatoryGroups); ok {
		cm.MandatoryGroups = identNames(v.([]ast.Ident))
	}
	for _, v := range f.fields[ast.FieldComplianceGroup] {
		cg := v.(ast.ComplianceGroupClause)
		cm.Groups = append(cm.Groups, mib.ComplianceGroup{
			Group:       cg.Group.Name,
			Description: cg.Description.Value,
		})
	}
	for _, v := range f.fields[ast.FieldComplianceObject] {
		co := v.(ast.ComplianceObjectClause)
		entry := mib.ComplianceObject{Object: co.Object.Name, Description: co.Description.Value}
		if co.MinAccess != nil {
			a := convertAccess(co.MinAccess)
			entry.MinAccess = &a
		}
		cm.Objects = append(cm.Objects, entry)
	}
	if parent := b.parent(); parent != nil {
		parent.complianceModules = append(parent.complianceModules, cm)
	}
}

// finishAgentCapabilities handles AGENT-CAPABILITIES: PRODUCT-RELEASE plus
// STATUS/DESCRIPTION/REFERENCE and the nested SUPPORTS clauses folded in by
// foldSupportsModule.
func (b *Builder) finishAgentCapabilities(f *frame) {
	sym := b.resolveSymbol(f.name.Name)
	c := mib.NewCapability(sym)
	c.SetModule(b.module)
	c.SetProductRelease(f.quoted(ast.FieldProductRelease))
	if v, ok := f.last(ast.FieldStatus); ok {
		sc := v.(ast.StatusClause)
		st, _ := convertStatus(&sc)
		c.SetStatus(st)
	}
	c.SetDescription(f.quoted(ast.FieldDescription))
	c.SetReference(f.quoted(ast.FieldReference))
	c.SetSupports(f.supportsModules)

	path := b.oidAssignmentPath(f)
	if err := b.store.AddCapability(sym, c, path); err != nil {
		b.fail(err)
		return
	}
	node, err := b.store.RegisterNode(sym, path)
	if err != nil {
		b.fail(err)
		return
	}
	node.SetKind(mib.KindCapabilities)
	node.SetCapability(c)
	c.SetNode(node)
}

// foldSupportsModule converts one SUPPORTS clause into a
// mib.CapabilitiesModule and folds it into the parent AGENT-CAPABILITIES
// frame. Per-object/per-notification VARIATION refinements are not surfaced
// as distinct Field/Rule events by this parser (only the module-level
// INCLUDES list is), so ObjectVariations/NotificationVariations are left
// empty; a capabilities statement's module set and included groups are
// still fully captured.
func (b *Builder) foldSupportsModule(f *frame) {
	sm := mib.CapabilitiesModule{ModuleName: f.name.Name}
	if v, ok := f.last(ast.FieldInclude); ok {
		sm.Includes = identNames(v.([]ast.Ident))
	}
	if parent := b.parent(); parent != nil {
		parent.supportsModules = append(parent.supportsModules, sm)
	}
}

// resolvePending links every deferred INDEX entry, AUGMENTS target, group
// member, and notification object against the now-complete Store. Anything
// still unresolved at this point references a symbol the Store has not
// bound, which includes an import from a module not compiled yet. Nothing
// retries the reference later; a miss here is recorded as a diagnostic and
// an UnresolvedRef, not a fatal error.
func (b *Builder) resolvePending() {
	for _, p := range b.pendingIndexes {
		entries := make([]mib.IndexEntry, 0, len(p.entries))
		for _, item := range p.entries {
			sym := b.resolveSymbol(item.Object.Name)
			obj, ok := b.store.Object(sym)
			if !ok {
				b.store.Report(mib.Diagnostic{
					Severity: mib.SeverityError,
					Code:     "unresolved-index",
					Module:   b.moduleName,
					Message:  "INDEX references undefined object " + sym.String(),
				})
				b.store.ReportUnresolved(mib.UnresolvedRef{Kind: mib.UnresolvedIndex, Symbol: sym.Name, Module: b.moduleName})
				continue
			}
			entries = append(entries, mib.IndexEntry{Object: obj, Implied: item.Implied})
		}
		p.row.SetIndex(entries)
	}

	for _, p := range b.pendingAugments {
		target, ok := b.store.Object(p.target)
		if !ok {
			b.store.Report(mib.Diagnostic{
				Severity: mib.SeverityError,
				Code:     "unresolved-augments",
				Module:   b.moduleName,
				Message:  "AUGMENTS references undefined row " + p.target.String(),
			})
			b.store.ReportUnresolved(mib.UnresolvedRef{Kind: mib.UnresolvedAugments, Symbol: p.target.Name, Module: b.moduleName})
			continue
		}
		p.row.SetAugments(target)
	}

	for _, p := range b.pendingGroupMembers {
		obj, ok := b.store.Object(p.sym)
		if !ok {
			b.store.Report(mib.Diagnostic{
				Severity: mib.SeverityError,
				Code:     "unresolved-group-member",
				Module:   b.moduleName,
				Message:  "group member references undefined object " + p.sym.String(),
			})
			b.store.ReportUnresolved(mib.UnresolvedRef{Kind: mib.UnresolvedGroupMember, Symbol: p.sym.Name, Module: b.moduleName})
			continue
		}
		p.g.AddMember(obj.Node())
	}

	for _, p := range b.pendingNotificationObjects {
		obj, ok := b.store.Object(p.sym)
		if !ok {
			b.store.Report(mib.Diagnostic{
				Severity: mib.SeverityError,
				Code:     "unresolved-notification-object",
				Module:   b.moduleName,
				Message:  "notification OBJECTS references undefined object " + p.sym.String(),
			})
			b.store.ReportUnresolved(mib.UnresolvedRef{Kind: mib.UnresolvedNotificationObject, Symbol: p.sym.Name, Module: b.moduleName})
			continue
		}
		p.n.AddObject(obj)
	}
}
