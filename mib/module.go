package mib

import "slices"

// Module is a single parsed MIB module: its meta-data plus every symbol it
// binds. Grounded in the teacher's mib/module.go, adapted to the Symbol-keyed
// data model used throughout this package.
type Module struct {
	name        string
	language    Language
	sourcePath  string
	oid         OID
	organization string
	contactInfo string
	desc        string
	lastUpdated string
	revisions   []Revision
	imports     []Import

	objects       []*ObjectType
	objectsByName map[string]*ObjectType

	types       []*TypeDescriptor
	typesByName map[string]*TypeDescriptor

	notifications       []*Notification
	notificationsByName map[string]*Notification

	groups       []*Group
	groupsByName map[string]*Group

	compliances       []*Compliance
	compliancesByName map[string]*Compliance

	capabilities       []*Capability
	capabilitiesByName map[string]*Capability

	nodes       []*Node
	nodesByName map[string]*Node
}

func newModule(name string) *Module {
	return &Module{
		name:                 name,
		objectsByName:        make(map[string]*ObjectType),
		typesByName:          make(map[string]*TypeDescriptor),
		notificationsByName:  make(map[string]*Notification),
		groupsByName:         make(map[string]*Group),
		compliancesByName:    make(map[string]*Compliance),
		capabilitiesByName:   make(map[string]*Capability),
		nodesByName:          make(map[string]*Node),
	}
}

func (m *Module) Name() string         { return m.name }
func (m *Module) Language() Language   { return m.language }
func (m *Module) SourcePath() string   { return m.sourcePath }
func (m *Module) OID() OID             { return slices.Clone(m.oid) }
func (m *Module) Organization() string { return m.organization }
func (m *Module) ContactInfo() string  { return m.contactInfo }
func (m *Module) Description() string  { return m.desc }
func (m *Module) LastUpdated() string  { return m.lastUpdated }
func (m *Module) Revisions() []Revision { return slices.Clone(m.revisions) }
func (m *Module) Imports() []Import     { return slices.Clone(m.imports) }

func (m *Module) Objects() []*ObjectType     { return slices.Clone(m.objects) }
func (m *Module) Types() []*TypeDescriptor   { return slices.Clone(m.types) }
func (m *Module) Notifications() []*Notification { return slices.Clone(m.notifications) }
func (m *Module) Groups() []*Group           { return slices.Clone(m.groups) }
func (m *Module) Compliances() []*Compliance { return slices.Clone(m.compliances) }
func (m *Module) Capabilities() []*Capability { return slices.Clone(m.capabilities) }
func (m *Module) Nodes() []*Node             { return slices.Clone(m.nodes) }

func (m *Module) Tables() []*ObjectType  { return objectsByKind(m.objects, KindTable) }
func (m *Module) Rows() []*ObjectType    { return objectsByKind(m.objects, KindRow) }
func (m *Module) Columns() []*ObjectType { return objectsByKind(m.objects, KindColumn) }
func (m *Module) Scalars() []*ObjectType { return objectsByKind(m.objects, KindScalar) }

func (m *Module) Object(name string) *ObjectType           { return m.objectsByName[name] }
func (m *Module) Type(name string) *TypeDescriptor         { return m.typesByName[name] }
func (m *Module) Notification(name string) *Notification   { return m.notificationsByName[name] }
func (m *Module) Group(name string) *Group                 { return m.groupsByName[name] }
func (m *Module) Compliance(name string) *Compliance       { return m.compliancesByName[name] }
func (m *Module) Capability(name string) *Capability       { return m.capabilitiesByName[name] }
func (m *Module) Node(name string) *Node                   { return m.nodesByName[name] }

// Lookup returns the Symbol-bound entity registered under name, regardless of
// kind, or nil if no such symbol is bound in this module.
func (m *Module) Lookup(name string) any {
	if v, ok := m.objectsByName[name]; ok {
		return v
	}
	if v, ok := m.typesByName[name]; ok {
		return v
	}
	if v, ok := m.notificationsByName[name]; ok {
		return v
	}
	if v, ok := m.groupsByName[name]; ok {
		return v
	}
	if v, ok := m.compliancesByName[name]; ok {
		return v
	}
	if v, ok := m.capabilitiesByName[name]; ok {
		return v
	}
	if v, ok := m.nodesByName[name]; ok {
		return v
	}
	return nil
}

func (m *Module) String() string {
	if m == nil {
		return "<nil>"
	}
	return m.name
}

// SetLanguage, SetSourcePath, SetOID, SetOrganization, SetContactInfo,
// SetDescription, SetLastUpdated, and AddRevision are exported, unlike
// most of Module's other mutators, because internal/builder populates a
// Module's own MODULE-IDENTITY metadata directly as it streams through a
// module's clauses; everything else a Module holds is reached through the
// Store's Add* methods instead.
func (m *Module) SetLanguage(l Language)   { m.language = l }
func (m *Module) SetSourcePath(p string)   { m.sourcePath = p }
func (m *Module) SetOID(oid OID)           { m.oid = oid }
func (m *Module) SetOrganization(o string) { m.organization = o }
func (m *Module) SetContactInfo(c string)  { m.contactInfo = c }
func (m *Module) SetDescription(d string)  { m.desc = d }
func (m *Module) SetLastUpdated(d string)  { m.lastUpdated = d }
func (m *Module) AddRevision(r Revision)   { m.revisions = append(m.revisions, r) }
func (m *Module) AddImport(i Import)       { m.imports = append(m.imports, i) }

func (m *Module) addObject(obj *ObjectType) {
	m.objects = append(m.objects, obj)
	m.objectsByName[obj.Name()] = obj
}

func (m *Module) addType(t *TypeDescriptor) {
	m.types = append(m.types, t)
	m.typesByName[t.Name()] = t
}

func (m *Module) addNotification(n *Notification) {
	m.notifications = append(m.notifications, n)
	m.notificationsByName[n.Name()] = n
}

func (m *Module) addGroup(g *Group) {
	m.groups = append(m.groups, g)
	m.groupsByName[g.Name()] = g
}

func (m *Module) addCompliance(c *Compliance) {
	m.compliances = append(m.compliances, c)
	m.compliancesByName[c.Name()] = c
}

func (m *Module) addCapability(c *Capability) {
	m.capabilities = append(m.capabilities, c)
	m.capabilitiesByName[c.Name()] = c
}

func (m *Module) addNode(n *Node) {
	m.nodes = append(m.nodes, n)
	if n.Name() != "" {
		m.nodesByName[n.Name()] = n
	}
}
