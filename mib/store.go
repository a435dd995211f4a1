package mib

import (
	"fmt"
	"slices"
	"sort"
	"sync"
)

// Store is the resolved result of compiling one or more MIB modules: a
// symbol table keyed by Symbol, the OID tree rooted at an unnamed root, and
// the per-kind lookup tables needed to answer queries without re-walking
// source text. Store combines the teacher's mib.Mib data holder with an
// incremental Builder API (newModule/addObject/addType/...), grounded in
// the teacher's mib/mib.go (the "one struct, add* methods filling it in as
// the builder listener fires" pattern) rather than the teacher's stale
// mib/builder.go, whose field references (mod.Name, t.Name as bare struct
// fields) don't match the accessor-based shape the rest of the teacher's
// mib package actually uses.
type Store struct {
	// mu guards every field below. A Store is safe for concurrent use by
	// multiple internal/builder.Builders so the root package's multi-module
	// loader can lex/parse/build several files on a bounded worker pool
	// against one shared Store instead of building N separate Stores and
	// zipper-merging them afterward: AddObjectType et al. already fail with
	// ErrDuplicateSymbol on overlap, which is exactly the "merge fails on
	// overlapping Symbols" behavior a post-hoc merge step would need to
	// reimplement.
	mu sync.Mutex

	root    *Node
	modules map[string]*Module

	// These maps index every bound entity by its Symbol (owning module and
	// local name), used to resolve cross-module references during linking.
	objects       map[Symbol]*ObjectType
	types         map[Symbol]*TypeDescriptor
	notifications map[Symbol]*Notification
	groups        map[Symbol]*Group
	compliances   map[Symbol]*Compliance
	capabilities  map[Symbol]*Capability
	oidPaths      map[Symbol]OidPath

	numericCache map[Symbol]OID

	diagnostics []Diagnostic
	unresolved  []UnresolvedRef
	config      DiagnosticConfig
}

// NewStore returns an empty Store seeded with the three SMI root arcs
// (ccitt=0, iso=1, joint-iso-ccitt=2) per spec.md's numeric OID resolution
// base case.
func NewStore(config DiagnosticConfig) *Store {
	s := &Store{
		root:          &Node{kind: KindInternal},
		modules:       make(map[string]*Module),
		objects:       make(map[Symbol]*ObjectType),
		types:         make(map[Symbol]*TypeDescriptor),
		notifications: make(map[Symbol]*Notification),
		groups:        make(map[Symbol]*Group),
		compliances:   make(map[Symbol]*Compliance),
		capabilities:  make(map[Symbol]*Capability),
		oidPaths:      make(map[Symbol]OidPath),
		numericCache:  make(map[Symbol]OID),
		config:        config,
	}
	s.root.children = make(map[uint32]*Node)
	for arc, name := range map[uint32]string{0: "ccitt", 1: "iso", 2: "joint-iso-ccitt"} {
		child := s.root.GetOrCreateChild(arc)
		child.SetName(name)
		child.SetKind(KindNode)
		// Seed the numeric cache so OID assignments rooted at a bare "iso"/
		// "ccitt"/"joint-iso-ccitt" reference (the overwhelmingly common case
		// for a top-level module OID) resolve without needing an oidPaths
		// entry of their own — these three names are never themselves the
		// subject of a value assignment a module could provide one for.
		s.numericCache[NewSymbol("", name)] = OID{arc}
	}
	return s
}

// Root returns the OID tree root. Its children are the process-wide arcs
// (ccitt/iso/joint-iso-ccitt) plus whatever this Store has registered
// beneath them.
func (s *Store) Root() *Node { return s.root }

// Module returns the loaded module by name, or nil.
func (s *Store) Module(name string) *Module {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modules[name]
}

// Modules returns every loaded module, sorted by name.
func (s *Store) Modules() []*Module {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.modules))
	for name := range s.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	mods := make([]*Module, len(names))
	for i, name := range names {
		mods[i] = s.modules[name]
	}
	return mods
}

// Diagnostics returns every diagnostic recorded while building this Store.
func (s *Store) Diagnostics() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.diagnostics)
}

// Report records a diagnostic subject to this Store's DiagnosticConfig.
func (s *Store) Report(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.config.ShouldReport(d.Code, d.Severity) {
		s.diagnostics = append(s.diagnostics, d)
	}
}

// Unresolved returns every symbol reference this Store's modules named but
// never bound, recorded alongside the Diagnostic each miss also produces.
func (s *Store) Unresolved() []UnresolvedRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.unresolved)
}

// ReportUnresolved records an unresolved reference. Called by
// internal/builder next to Report, whenever an INDEX/AUGMENTS/group-member/
// notification-object clause names a symbol resolvePending never bound.
func (s *Store) ReportUnresolved(ref UnresolvedRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unresolved = append(s.unresolved, ref)
}

// NewModule registers a new module under construction. Fails with
// ErrDuplicateModule if a module of that name is already loaded. Exported
// for internal/builder, which drives a Store incrementally as the parser's
// Listener events arrive.
func (s *Store) NewModule(name string) (*Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.modules[name]; exists {
		return nil, newDuplicateModuleErr(name)
	}
	m := newModule(name)
	s.modules[name] = m
	return m, nil
}

// AddType binds a TypeDescriptor to sym. Fails with ErrDuplicateSymbol if
// sym is already bound to a type in this Store.
func (s *Store) AddType(sym Symbol, t *TypeDescriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addTypeLocked(sym, t)
}

func (s *Store) addTypeLocked(sym Symbol, t *TypeDescriptor) error {
	if _, exists := s.types[sym]; exists {
		return newDuplicateSymbolErr(sym)
	}
	s.types[sym] = t
	if mod := s.modules[sym.Module]; mod != nil {
		mod.addType(t)
	}
	return nil
}

// AddTextualConvention binds a TEXTUAL-CONVENTION; represented identically
// to AddType since a TextualConvention is a *TypeDescriptor with isTC set.
func (s *Store) AddTextualConvention(sym Symbol, t *TypeDescriptor) error {
	t.SetIsTC(true)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addTypeLocked(sym, t)
}

// AddObjectType binds an ObjectType to sym and registers its symbolic
// OidPath for later numeric resolution. Fails with ErrDuplicateSymbol if
// sym is already bound.
func (s *Store) AddObjectType(sym Symbol, obj *ObjectType, path OidPath) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objects[sym]; exists {
		return newDuplicateSymbolErr(sym)
	}
	s.objects[sym] = obj
	s.oidPaths[sym] = path
	if mod := s.modules[sym.Module]; mod != nil {
		mod.addObject(obj)
	}
	return nil
}

// AddNotificationType binds a NOTIFICATION-TYPE/TRAP-TYPE to sym.
func (s *Store) AddNotificationType(sym Symbol, n *Notification, path OidPath) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.notifications[sym]; exists {
		return newDuplicateSymbolErr(sym)
	}
	s.notifications[sym] = n
	s.oidPaths[sym] = path
	if mod := s.modules[sym.Module]; mod != nil {
		mod.addNotification(n)
	}
	return nil
}

func (s *Store) AddGroup(sym Symbol, g *Group, path OidPath) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.groups[sym]; exists {
		return newDuplicateSymbolErr(sym)
	}
	s.groups[sym] = g
	s.oidPaths[sym] = path
	if mod := s.modules[sym.Module]; mod != nil {
		mod.addGroup(g)
	}
	return nil
}

func (s *Store) AddCompliance(sym Symbol, c *Compliance, path OidPath) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.compliances[sym]; exists {
		return newDuplicateSymbolErr(sym)
	}
	s.compliances[sym] = c
	s.oidPaths[sym] = path
	if mod := s.modules[sym.Module]; mod != nil {
		mod.addCompliance(c)
	}
	return nil
}

func (s *Store) AddCapability(sym Symbol, c *Capability, path OidPath) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.capabilities[sym]; exists {
		return newDuplicateSymbolErr(sym)
	}
	s.capabilities[sym] = c
	s.oidPaths[sym] = path
	if mod := s.modules[sym.Module]; mod != nil {
		mod.addCapability(c)
	}
	return nil
}

// AddMacroValue binds a bare OBJECT IDENTIFIER value assignment (a plain
// "foo OBJECT IDENTIFIER ::= { bar 1 }" node with no attribute bag) to sym.
func (s *Store) AddMacroValue(sym Symbol, path OidPath) (*Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.oidPaths[sym]; exists {
		return nil, newDuplicateSymbolErr(sym)
	}
	node, err := s.registerNodeLocked(sym, path)
	if err != nil {
		return nil, err
	}
	node.SetKind(KindNode)
	return node, nil
}

// Resolve looks up sym across every kind of entity this Store can bind,
// returning the Kind of whatever was found and the entity itself.
func (s *Store) Resolve(sym Symbol) (Kind, any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obj, ok := s.objects[sym]; ok {
		return obj.Kind(), obj
	}
	if t, ok := s.types[sym]; ok {
		return KindUnknown, t
	}
	if n, ok := s.notifications[sym]; ok {
		return KindNotification, n
	}
	if g, ok := s.groups[sym]; ok {
		return KindGroup, g
	}
	if c, ok := s.compliances[sym]; ok {
		return KindCompliance, c
	}
	if c, ok := s.capabilities[sym]; ok {
		return KindCapabilities, c
	}
	return KindUnknown, nil
}

// Type returns the TypeDescriptor bound to exactly sym. Imports are not
// followed: sym must name the module that defines the type.
func (s *Store) Type(sym Symbol) (*TypeDescriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.types[sym]
	return t, ok
}

// Object resolves sym to its bound ObjectType.
func (s *Store) Object(sym Symbol) (*ObjectType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[sym]
	return obj, ok
}

// NumericOid resolves sym's symbolic OidPath to a concrete OID, recursively
// resolving any symbolic component first. Results are memoized in
// numericCache. Detects cycles via a recursion-stack parameter and raises
// ErrTypeCycle rather than recursing unboundedly.
func (s *Store) NumericOid(sym Symbol) (OID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.numericOidVisiting(sym, make(map[Symbol]bool))
}

func (s *Store) numericOidVisiting(sym Symbol, visiting map[Symbol]bool) (OID, error) {
	if oid, ok := s.numericCache[sym]; ok {
		return oid, nil
	}
	if visiting[sym] {
		return nil, newTypeCycleErr(sym)
	}
	path, ok := s.oidPaths[sym]
	if !ok {
		return nil, newUnresolvedImportErr(sym)
	}
	visiting[sym] = true
	defer delete(visiting, sym)

	oid, err := s.resolvePathVisiting(path, visiting)
	if err != nil {
		return nil, err
	}
	s.numericCache[sym] = oid
	return oid, nil
}

// ResolvePath resolves a standalone symbolic OidPath (one not bound to any
// Symbol of its own, e.g. a DEFVAL OID literal) to a numeric OID, resolving
// any symbolic component against this Store's already-registered paths.
func (s *Store) ResolvePath(path OidPath) (OID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolvePathVisiting(path, make(map[Symbol]bool))
}

func (s *Store) resolvePathVisiting(path OidPath, visiting map[Symbol]bool) (OID, error) {
	var oid OID
	for _, comp := range path {
		switch c := comp.(type) {
		case OidComponentNumber:
			oid = append(oid, c.Value)
		case OidComponentSymbolNumber:
			base, err := s.numericOidVisiting(c.Ref, visiting)
			if err != nil {
				return nil, err
			}
			oid = append(append(OID{}, base...), c.Value)
		case OidComponentSymbol:
			base, err := s.numericOidVisiting(c.Ref, visiting)
			if err != nil {
				return nil, err
			}
			oid = append(OID{}, base...)
		default:
			return nil, fmt.Errorf("mib: unknown OidComponent %T", comp)
		}
	}
	return oid, nil
}

// RegisterNode resolves sym's OidPath to a numeric OID and ensures a Node
// exists at that position in the tree, creating internal nodes along the
// way via GetOrCreateChild.
func (s *Store) RegisterNode(sym Symbol, path OidPath) (*Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registerNodeLocked(sym, path)
}

func (s *Store) registerNodeLocked(sym Symbol, path OidPath) (*Node, error) {
	s.oidPaths[sym] = path
	oid, err := s.numericOidVisiting(sym, make(map[Symbol]bool))
	if err != nil {
		return nil, err
	}
	node := s.root
	for _, arc := range oid {
		node = node.GetOrCreateChild(arc)
	}
	node.SetName(sym.Name)
	if mod := s.modules[sym.Module]; mod != nil {
		node.SetModule(mod)
		mod.addNode(node)
	}
	return node, nil
}

// ResolveTypes walks every bound TypeDescriptor and fills in REFERENCED
// chains' resolved pointer, then computes each ObjectType's effective
// display hint / sizes / ranges / enums / bits by walking the chain once
// and caching the result, mirroring internal/mibimpl.Type's Effective*
// methods but performed eagerly so later Store queries are allocation-free.
// Call once after every module has been loaded.
func (s *Store) ResolveTypes() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sym, t := range s.types {
		if t.Kind() != TypeReferenced || t.Resolved() != nil {
			continue
		}
		resolved, err := s.resolveTypeChain(sym, t, make(map[Symbol]bool))
		if err != nil {
			return err
		}
		t.SetResolved(resolved)
	}
	for _, obj := range s.objects {
		t := obj.Type()
		if t == nil {
			continue
		}
		obj.SetEffectiveHint(t.EffectiveDisplayHint())
		obj.SetEffectiveEnums(t.EffectiveNames())
		obj.SetEffectiveBits(t.EffectiveBits())
		if c := t.EffectiveConstraint(); c != nil {
			if c.IsSize() {
				obj.SetEffectiveSizes(c.Elements())
			} else {
				obj.SetEffectiveRanges(c.Elements())
			}
		}
	}
	return nil
}

func (s *Store) resolveTypeChain(sym Symbol, t *TypeDescriptor, visiting map[Symbol]bool) (*TypeDescriptor, error) {
	if visiting[sym] {
		return nil, newTypeCycleErr(sym)
	}
	visiting[sym] = true
	defer delete(visiting, sym)

	ref := t.ReferenceSymbol()
	target, ok := s.types[ref]
	if !ok {
		return nil, newUnresolvedImportErr(ref)
	}
	if target.Kind() == TypeReferenced && target.Resolved() == nil {
		resolved, err := s.resolveTypeChain(ref, target, visiting)
		if err != nil {
			return nil, err
		}
		target.SetResolved(resolved)
	}
	return target, nil
}
