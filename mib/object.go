package mib

import "slices"

// ObjectType is an OBJECT-TYPE (or OBJECT-IDENTITY / MODULE-IDENTITY value)
// assignment: an attribute bag that must carry SYNTAX, ACCESS, and STATUS,
// plus the numeric OID it was bound to. Grounded in the teacher's
// mib/object.go and internal/mibimpl/object.go struct shape. Index/Augments
// hold the sibling ObjectTypes themselves, which internal/builder links from
// the INDEX/AUGMENTS names once the module's symbols are bound.
type ObjectType struct {
	name     string
	sym      Symbol
	node     *Node
	module   *Module
	typ      *TypeDescriptor
	access   Access
	status   Status
	desc     string
	ref      string
	units    string
	defVal   *DefVal
	augments *ObjectType
	index    []IndexEntry

	hint   string
	sizes  []Range
	ranges []Range
	enums  []NamedValue
	bits   []NamedValue
}

// NewObjectType returns an ObjectType initialized with the given symbol.
func NewObjectType(sym Symbol) *ObjectType {
	return &ObjectType{name: sym.Name, sym: sym}
}

func (o *ObjectType) Name() string    { return o.name }
func (o *ObjectType) Symbol() Symbol  { return o.sym }
func (o *ObjectType) Node() *Node     { return o.node }
func (o *ObjectType) Module() *Module { return o.module }

// OID returns the object's position in the OID tree, or nil if unresolved.
func (o *ObjectType) OID() OID {
	if o == nil || o.node == nil {
		return nil
	}
	return o.node.OID()
}

// Kind reports the structural classification of this object's tree node.
func (o *ObjectType) Kind() Kind {
	if o == nil || o.node == nil {
		return KindUnknown
	}
	return o.node.kind
}

func (o *ObjectType) Type() *TypeDescriptor { return o.typ }
func (o *ObjectType) Access() Access        { return o.access }
func (o *ObjectType) Status() Status        { return o.status }
func (o *ObjectType) Description() string   { return o.desc }
func (o *ObjectType) Reference() string     { return o.ref }
func (o *ObjectType) Units() string         { return o.units }
func (o *ObjectType) Augments() *ObjectType { return o.augments }
func (o *ObjectType) Index() []IndexEntry   { return slices.Clone(o.index) }

// DefaultValue returns the DEFVAL clause, or a zero DefVal if none was declared.
func (o *ObjectType) DefaultValue() DefVal {
	if o == nil || o.defVal == nil {
		return DefVal{}
	}
	return *o.defVal
}

func (o *ObjectType) EffectiveDisplayHint() string  { return o.hint }
func (o *ObjectType) EffectiveSizes() []Range       { return slices.Clone(o.sizes) }
func (o *ObjectType) EffectiveRanges() []Range      { return slices.Clone(o.ranges) }
func (o *ObjectType) EffectiveEnums() []NamedValue  { return slices.Clone(o.enums) }
func (o *ObjectType) EffectiveBits() []NamedValue   { return slices.Clone(o.bits) }

func (o *ObjectType) Enum(label string) (NamedValue, bool) { return findNamedValue(o.enums, label) }
func (o *ObjectType) Bit(label string) (NamedValue, bool)  { return findNamedValue(o.bits, label) }

// Table returns the table object containing this row or column, or nil.
func (o *ObjectType) Table() *ObjectType {
	if o == nil || o.node == nil {
		return nil
	}
	switch o.node.kind {
	case KindRow:
		if o.node.parent != nil && o.node.parent.obj != nil {
			return o.node.parent.obj
		}
	case KindColumn:
		if o.node.parent != nil && o.node.parent.parent != nil {
			if tbl := o.node.parent.parent.obj; tbl != nil {
				return tbl
			}
		}
	}
	return nil
}

// Row returns the parent row object for a column, or nil.
func (o *ObjectType) Row() *ObjectType {
	if o == nil || o.node == nil || o.node.kind != KindColumn {
		return nil
	}
	if o.node.parent != nil && o.node.parent.obj != nil {
		return o.node.parent.obj
	}
	return nil
}

// Entry returns the row entry for a table, or nil.
func (o *ObjectType) Entry() *ObjectType {
	if o == nil || o.node == nil || o.node.kind != KindTable {
		return nil
	}
	for _, child := range o.node.sortedChildren() {
		if child.kind == KindRow && child.obj != nil {
			return child.obj
		}
	}
	return nil
}

// Columns returns the column objects for a table or row.
func (o *ObjectType) Columns() []*ObjectType {
	if o == nil || o.node == nil {
		return nil
	}
	var rowNode *Node
	switch o.node.kind {
	case KindTable:
		for _, child := range o.node.sortedChildren() {
			if child.kind == KindRow {
				rowNode = child
				break
			}
		}
	case KindRow:
		rowNode = o.node
	default:
		return nil
	}
	if rowNode == nil {
		return nil
	}
	var cols []*ObjectType
	for _, child := range rowNode.sortedChildren() {
		if child.kind == KindColumn && child.obj != nil {
			cols = append(cols, child.obj)
		}
	}
	return cols
}

// EffectiveIndexes returns INDEX entries for a row, following the AUGMENTS
// chain if the row declares no index of its own.
func (o *ObjectType) EffectiveIndexes() []IndexEntry {
	if o == nil {
		return nil
	}
	return o.effectiveIndexes(make(map[*ObjectType]struct{}))
}

func (o *ObjectType) effectiveIndexes(visited map[*ObjectType]struct{}) []IndexEntry {
	if o == nil || o.node == nil || o.node.kind != KindRow {
		return nil
	}
	if len(o.index) > 0 {
		return slices.Clone(o.index)
	}
	if o.augments != nil {
		if _, seen := visited[o]; seen {
			return nil
		}
		visited[o] = struct{}{}
		return o.augments.effectiveIndexes(visited)
	}
	return nil
}

func (o *ObjectType) IsTable() bool  { return o != nil && o.node != nil && o.node.kind == KindTable }
func (o *ObjectType) IsRow() bool    { return o != nil && o.node != nil && o.node.kind == KindRow }
func (o *ObjectType) IsColumn() bool { return o != nil && o.node != nil && o.node.kind == KindColumn }
func (o *ObjectType) IsScalar() bool { return o != nil && o.node != nil && o.node.kind == KindScalar }

// String returns a brief summary: "name (oid)".
func (o *ObjectType) String() string {
	if o == nil {
		return "<nil>"
	}
	return o.name + " (" + o.OID().String() + ")"
}

func (o *ObjectType) SetNode(n *Node)                  { o.node = n }
func (o *ObjectType) SetModule(m *Module)              { o.module = m }
func (o *ObjectType) SetType(t *TypeDescriptor)        { o.typ = t }
func (o *ObjectType) SetAccess(a Access)               { o.access = a }
func (o *ObjectType) SetStatus(s Status)               { o.status = s }
func (o *ObjectType) SetDescription(d string)          { o.desc = d }
func (o *ObjectType) SetReference(r string)            { o.ref = r }
func (o *ObjectType) SetUnits(u string)                { o.units = u }
func (o *ObjectType) SetDefaultValue(d DefVal)         { o.defVal = &d }
func (o *ObjectType) SetAugments(a *ObjectType)        { o.augments = a }
func (o *ObjectType) SetIndex(idx []IndexEntry)        { o.index = idx }
func (o *ObjectType) SetEffectiveHint(h string)        { o.hint = h }
func (o *ObjectType) SetEffectiveSizes(s []Range)      { o.sizes = s }
func (o *ObjectType) SetEffectiveRanges(r []Range)     { o.ranges = r }
func (o *ObjectType) SetEffectiveEnums(e []NamedValue) { o.enums = e }
func (o *ObjectType) SetEffectiveBits(b []NamedValue)  { o.bits = b }

func objectsByKind(objs []*ObjectType, kind Kind) []*ObjectType {
	var result []*ObjectType
	for _, obj := range objs {
		if obj.node != nil && obj.node.kind == kind {
			result = append(result, obj)
		}
	}
	return result
}
