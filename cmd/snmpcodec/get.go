package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BabisK/snmpcodec/mib"
)

var (
	getModules  []string
	getAll      bool
	getTree     bool
	getMaxDepth int
	getFull     bool
	getFormat   string
)

var getCmd = &cobra.Command{
	Use:   "get QUERY",
	Short: "Look up a symbol, MODULE::name, or OID",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringArrayVarP(&getModules, "module", "m", nil, "module to load (repeatable)")
	getCmd.Flags().BoolVar(&getAll, "all", false, "load every module found on the search path")
	getCmd.Flags().BoolVarP(&getTree, "tree", "t", false, "print the subtree rooted at the match")
	getCmd.Flags().IntVar(&getMaxDepth, "max-depth", -1, "limit subtree depth (with --tree)")
	getCmd.Flags().BoolVar(&getFull, "full", false, "don't truncate descriptions")
	getCmd.Flags().StringVar(&getFormat, "format", "text", "output format: text|json")
}

func runGet(cmd *cobra.Command, args []string) error {
	if !getAll && len(getModules) == 0 {
		return fmt.Errorf("specify -m MODULE or --all")
	}
	store, err := loadStore(getModules, getAll)
	if err != nil {
		return fmt.Errorf("failed to load: %w", err)
	}

	node, typ, mod, err := resolveQuery(store, args[0])
	if err != nil {
		return err
	}
	if node == nil && typ == nil {
		return fmt.Errorf("no match for %q", args[0])
	}

	if typ != nil && node == nil {
		if getFormat == "json" {
			return printTypeJSON(typ)
		}
		modName := "(no module)"
		if mod != nil {
			modName = mod.Name()
		}
		fmt.Printf("%s::%s (type)\n", modName, typ.Name())
		printTypeDetails(typ)
		return nil
	}

	if getFormat == "json" {
		return printNodeJSON(node)
	}

	modName := "(no module)"
	if mod != nil {
		modName = mod.Name()
	}
	fmt.Printf("%s::%s\n", modName, nodeDisplayName(node))
	printNode(node)

	if getTree {
		fmt.Println()
		printNodeTree(node, 0)
	}
	return nil
}

// resolveQuery parses query as MODULE::name, a dotted numeric OID (with an
// optional leading dot), or a bare name, in that priority order, mirroring
// the teacher's get.go resolveQuery. A plain type name (no OID node of its
// own) resolves to typ with node left nil.
func resolveQuery(store *mib.Store, query string) (node *mib.Node, typ *mib.TypeDescriptor, mod *mib.Module, err error) {
	if modName, name, ok := strings.Cut(query, "::"); ok {
		m := store.Module(modName)
		if m == nil {
			return nil, nil, nil, fmt.Errorf("module %s not loaded", modName)
		}
		if n := m.Node(name); n != nil {
			return n, nil, m, nil
		}
		if t := m.Type(name); t != nil {
			return nil, t, m, nil
		}
		return nil, nil, m, nil
	}

	if isOIDString(query) {
		oid, perr := mib.ParseOID(strings.TrimPrefix(query, "."))
		if perr != nil {
			return nil, nil, nil, fmt.Errorf("invalid OID %q: %w", query, perr)
		}
		n := walkExact(store.Root(), oid)
		if n == nil {
			return nil, nil, nil, nil
		}
		return n, nil, n.Module(), nil
	}

	obj, t, n, m := findByName(store, query)
	if obj != nil {
		return obj.Node(), nil, m, nil
	}
	if n != nil {
		return n, nil, m, nil
	}
	return nil, t, m, nil
}

func isOIDString(s string) bool {
	s = strings.TrimPrefix(s, ".")
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

func walkExact(root *mib.Node, oid mib.OID) *mib.Node {
	n := root
	for _, arc := range oid {
		n = n.Child(arc)
		if n == nil {
			return nil
		}
	}
	return n
}

func nodeDisplayName(n *mib.Node) string {
	if n.Name() != "" {
		return n.Name()
	}
	return n.OID().String()
}

func printNode(n *mib.Node) {
	fmt.Printf("OID:    %s\n", n.OID())
	fmt.Printf("Kind:   %s\n", n.Kind())
	switch {
	case n.Object() != nil:
		printObjectDetails(n.Object())
	case n.Notification() != nil:
		printNotificationDetails(n.Notification())
	case n.Group() != nil:
		printGroupDetails(n.Group())
	case n.Compliance() != nil:
		c := n.Compliance()
		fmt.Printf("Status: %s\n", c.Status())
		fmt.Printf("Desc:   %s\n", truncateDesc(c.Description(), getFull))
	case n.Capability() != nil:
		c := n.Capability()
		fmt.Printf("Status: %s\n", c.Status())
		fmt.Printf("Desc:   %s\n", truncateDesc(c.Description(), getFull))
	}
}

func printObjectDetails(o *mib.ObjectType) {
	fmt.Printf("Access: %s\n", o.Access())
	fmt.Printf("Status: %s\n", o.Status())
	if o.Type() != nil {
		fmt.Printf("Type:   %s (base %s)\n", o.Type().Name(), o.Type().EffectiveBase())
	}
	if o.Units() != "" {
		fmt.Printf("Units:  %s\n", o.Units())
	}
	if o.Description() != "" {
		fmt.Printf("Desc:   %s\n", truncateDesc(o.Description(), getFull))
	}
	if o.Augments() != nil {
		fmt.Printf("Augments: %s\n", o.Augments().Name())
	}
	if idx := o.EffectiveIndexes(); len(idx) > 0 {
		fmt.Println("Index:")
		for _, e := range idx {
			implied := ""
			if e.Implied {
				implied = " (IMPLIED)"
			}
			name := "(unresolved)"
			if e.Object != nil {
				name = e.Object.Name()
			}
			fmt.Printf("  %s%s\n", name, implied)
		}
	}
	if enums := o.EffectiveEnums(); len(enums) > 0 {
		fmt.Println("Enum values:")
		for _, nv := range enums {
			fmt.Printf("  %s(%d)\n", nv.Label, nv.Value)
		}
	}
	if bits := o.EffectiveBits(); len(bits) > 0 {
		fmt.Println("Bits:")
		for _, nv := range bits {
			fmt.Printf("  %s(%d)\n", nv.Label, nv.Value)
		}
	}
}

func printTypeDetails(t *mib.TypeDescriptor) {
	fmt.Printf("Base:   %s\n", t.EffectiveBase())
	fmt.Printf("Status: %s\n", t.Status())
	if t.Description() != "" {
		fmt.Printf("Desc:   %s\n", truncateDesc(t.Description(), getFull))
	}
	if hint := t.EffectiveDisplayHint(); hint != "" {
		fmt.Printf("Hint:   %s\n", hint)
	}
	if c := t.EffectiveConstraint(); c != nil {
		fmt.Printf("Constraint: %s\n", formatConstraint(c))
	}
	if names := t.EffectiveNames(); len(names) > 0 {
		fmt.Println("Enum values:")
		for _, nv := range names {
			fmt.Printf("  %s(%d)\n", nv.Label, nv.Value)
		}
	}
}

func printTypeJSON(t *mib.TypeDescriptor) error {
	tj := buildTypeJSON(t)
	data, err := marshalJSON(tj, true)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printNotificationDetails(n *mib.Notification) {
	fmt.Printf("Status: %s\n", n.Status())
	if n.Description() != "" {
		fmt.Printf("Desc:   %s\n", truncateDesc(n.Description(), getFull))
	}
	if objs := n.Objects(); len(objs) > 0 {
		fmt.Println("Objects:")
		for _, o := range objs {
			fmt.Printf("  %s\n", o.Name())
		}
	}
}

func printGroupDetails(g *mib.Group) {
	fmt.Printf("Status: %s\n", g.Status())
	if g.Description() != "" {
		fmt.Printf("Desc:   %s\n", truncateDesc(g.Description(), getFull))
	}
	if members := g.Members(); len(members) > 0 {
		fmt.Println("Members:")
		for _, m := range members {
			fmt.Printf("  %s\n", nodeDisplayName(m))
		}
	}
}

func printNodeTree(n *mib.Node, depth int) {
	if getMaxDepth >= 0 && depth > getMaxDepth {
		return
	}
	fmt.Printf("%s%s  %s  %s\n", strings.Repeat("  ", depth), nodeDisplayName(n), n.OID(), n.Kind())
	for _, child := range n.Children() {
		printNodeTree(child, depth+1)
	}
}

func printNodeJSON(n *mib.Node) error {
	nj := buildNodeJSON(n, getTree)
	data, err := marshalJSON(nj, true)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func buildNodeJSON(n *mib.Node, withChildren bool) NodeJSON {
	nj := NodeJSON{
		Name: nodeDisplayName(n),
		OID:  n.OID().String(),
		Kind: n.Kind().String(),
	}
	if n.Module() != nil {
		nj.Module = n.Module().Name()
	}
	if o := n.Object(); o != nil {
		if o.Type() != nil {
			nj.Type = o.Type().Name()
			nj.BaseType = o.Type().EffectiveBase().String()
		}
		nj.Access = o.Access().String()
		nj.Status = o.Status().String()
		nj.Description = truncateDesc(o.Description(), getFull)
		nj.Units = o.Units()
		if o.Augments() != nil {
			nj.Augments = o.Augments().Name()
		}
		for _, e := range o.EffectiveIndexes() {
			name := ""
			if e.Object != nil {
				name = e.Object.Name()
			}
			nj.Index = append(nj.Index, IndexJSON{Object: name, Implied: e.Implied})
		}
		for _, nv := range o.EffectiveEnums() {
			nj.Enums = append(nj.Enums, EnumJSON{Label: nv.Label, Value: nv.Value})
		}
		for _, nv := range o.EffectiveBits() {
			nj.Bits = append(nj.Bits, BitJSON{Label: nv.Label, Position: nv.Value})
		}
	}
	if withChildren {
		for _, child := range n.Children() {
			nj.Children = append(nj.Children, nodeDisplayName(child))
		}
	}
	return nj
}
