package mib

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Node is a point in the process-wide OID tree. Each node has a numeric arc
// relative to its parent and an optional name; nodes form a trie rooted at
// an unnamed root, and the path from root to a node determines its OID.
// Entity definitions (ObjectType, Notification, Group, Compliance,
// Capability) are attached to the node at their registered OID. Grounded
// directly in the teacher's mib/node.go.
type Node struct {
	arc         uint32
	name        string
	kind        Kind
	module      *Module
	obj         *ObjectType
	notif       *Notification
	group       *Group
	compliance  *Compliance
	capability  *Capability
	parent      *Node
	children    map[uint32]*Node
	sortedCache []*Node
}

func (n *Node) Arc() uint32  { return n.arc }
func (n *Node) Name() string { return n.name }
func (n *Node) Kind() Kind   { return n.kind }
func (n *Node) IsRoot() bool { return n.parent == nil }

// Module returns the module that defines this node's primary entity.
func (n *Node) Module() *Module {
	switch {
	case n.obj != nil:
		return n.obj.module
	case n.notif != nil:
		return n.notif.module
	case n.group != nil:
		return n.group.module
	case n.compliance != nil:
		return n.compliance.module
	case n.capability != nil:
		return n.capability.module
	default:
		return n.module
	}
}

// OID returns the full numeric OID from the root to this node, or nil for
// the root.
func (n *Node) OID() OID {
	if n == nil || n.parent == nil {
		return nil
	}
	var arcs OID
	for nd := n; nd.parent != nil; nd = nd.parent {
		arcs = append(arcs, nd.arc)
	}
	slices.Reverse(arcs)
	return arcs
}

func (n *Node) Object() *ObjectType        { return n.obj }
func (n *Node) Notification() *Notification { return n.notif }
func (n *Node) Group() *Group              { return n.group }
func (n *Node) Compliance() *Compliance    { return n.compliance }
func (n *Node) Capability() *Capability    { return n.capability }
func (n *Node) Parent() *Node              { return n.parent }

// Child returns the child at the given arc, or nil.
func (n *Node) Child(arc uint32) *Node {
	if n.children == nil {
		return nil
	}
	return n.children[arc]
}

// Children returns the direct children of this node, sorted by arc.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	return slices.Clone(n.sortedChildren())
}

func (n *Node) sortedChildren() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	if n.sortedCache != nil {
		return n.sortedCache
	}
	n.sortedCache = slices.SortedFunc(maps.Values(n.children), func(a, b *Node) int {
		return cmp.Compare(a.arc, b.arc)
	})
	return n.sortedCache
}

// Descendants returns an iterator over this node and all its descendants,
// depth-first in arc order.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.yieldAll(yield)
	}
}

func (n *Node) yieldAll(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, child := range n.sortedChildren() {
		if !child.yieldAll(yield) {
			return false
		}
	}
	return true
}

// LongestPrefix returns the deepest descendant of n matching a prefix of oid.
func (n *Node) LongestPrefix(oid OID) *Node {
	current := n
	for _, arc := range oid {
		child := current.children[arc]
		if child == nil {
			return current
		}
		current = child
	}
	return current
}

// String returns a brief summary: "name (oid)" or "(oid)" for unnamed nodes.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.parent == nil {
		return "(root)"
	}
	if n.name == "" {
		return "(" + n.OID().String() + ")"
	}
	return n.name + " (" + n.OID().String() + ")"
}

// GetOrCreateChild returns the child at arc, creating an internal node if absent.
func (n *Node) GetOrCreateChild(arc uint32) *Node {
	if n.children == nil {
		n.children = make(map[uint32]*Node)
	}
	if child, ok := n.children[arc]; ok {
		return child
	}
	child := &Node{arc: arc, parent: n, kind: KindInternal}
	n.children[arc] = child
	n.sortedCache = nil
	return child
}

func (n *Node) SetName(name string)                 { n.name = name }
func (n *Node) SetKind(k Kind)                       { n.kind = k }
func (n *Node) SetModule(m *Module)                  { n.module = m }
func (n *Node) SetObject(obj *ObjectType)             { n.obj = obj }
func (n *Node) SetNotification(notif *Notification)  { n.notif = notif }
func (n *Node) SetGroup(g *Group)                     { n.group = g }
func (n *Node) SetCompliance(c *Compliance)           { n.compliance = c }
func (n *Node) SetCapability(c *Capability)           { n.capability = c }
