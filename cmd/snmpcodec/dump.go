package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BabisK/snmpcodec/mib"
)

var (
	dumpModules         []string
	dumpAll             bool
	dumpOID             string
	dumpCompact         bool
	dumpNoTree          bool
	dumpNoDescriptions  bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump a loaded Store as JSON",
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringArrayVarP(&dumpModules, "module", "m", nil, "module to load (repeatable)")
	dumpCmd.Flags().BoolVar(&dumpAll, "all", false, "load every module found on the search path")
	dumpCmd.Flags().StringVarP(&dumpOID, "oid", "o", "", "only dump objects and the OID tree under this OID (other entities are not filtered)")
	dumpCmd.Flags().BoolVar(&dumpCompact, "compact", false, "minify JSON output")
	dumpCmd.Flags().BoolVar(&dumpNoTree, "no-tree", false, "omit the OID tree")
	dumpCmd.Flags().BoolVar(&dumpNoDescriptions, "no-descriptions", false, "omit description text")
}

func runDump(cmd *cobra.Command, args []string) error {
	if !dumpAll && len(dumpModules) == 0 {
		return fmt.Errorf("specify -m MODULE or --all")
	}
	store, err := loadStore(dumpModules, dumpAll)
	if err != nil {
		return fmt.Errorf("failed to load: %w", err)
	}

	var oidFilter mib.OID
	if dumpOID != "" {
		oidFilter, err = mib.ParseOID(strings.TrimPrefix(dumpOID, "."))
		if err != nil {
			return fmt.Errorf("invalid --oid: %w", err)
		}
	}

	out := buildDumpOutput(store, oidFilter)
	data, err := marshalJSON(out, !dumpCompact)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func buildDumpOutput(store *mib.Store, oidFilter mib.OID) DumpOutput {
	var out DumpOutput
	for _, m := range store.Modules() {
		out.Modules = append(out.Modules, buildModuleJSON(m))
		for _, t := range m.Types() {
			out.Types = append(out.Types, buildTypeJSON(t))
		}
		for _, o := range m.Objects() {
			if len(oidFilter) > 0 && !o.OID().HasPrefix(oidFilter) {
				continue
			}
			out.Objects = append(out.Objects, buildObjectJSON(o))
		}
		for _, n := range m.Notifications() {
			out.Notifications = append(out.Notifications, buildNotificationJSON(n))
		}
		for _, g := range m.Groups() {
			out.Groups = append(out.Groups, buildGroupJSON(g))
		}
		for _, c := range m.Compliances() {
			out.Compliances = append(out.Compliances, buildComplianceJSON(c))
		}
		for _, c := range m.Capabilities() {
			out.Capabilities = append(out.Capabilities, buildCapabilityJSON(c))
		}
	}

	if !dumpNoTree {
		root := store.Root()
		if len(oidFilter) > 0 {
			if n := walkExact(root, oidFilter); n != nil {
				root = n
			}
		}
		out.Tree = buildTreeJSON(root)
	}

	for _, d := range store.Diagnostics() {
		out.Diagnostics = append(out.Diagnostics, buildDiagnosticJSON(d))
	}
	return out
}

func buildModuleJSON(m *mib.Module) ModuleJSON {
	mj := ModuleJSON{
		Name:         m.Name(),
		Language:     m.Language().String(),
		SourcePath:   m.SourcePath(),
		Organization: m.Organization(),
		ContactInfo:  m.ContactInfo(),
		Description:  descOrEmpty(m.Description()),
	}
	if oid := m.OID(); len(oid) > 0 {
		mj.OID = oid.String()
	}
	for _, r := range m.Revisions() {
		mj.Revisions = append(mj.Revisions, RevisionJSON{Date: r.Date, Description: r.Description})
	}
	return mj
}

func buildTypeJSON(t *mib.TypeDescriptor) TypeJSON {
	tj := TypeJSON{
		Name:        t.Name(),
		Base:        t.EffectiveBase().String(),
		Status:      t.Status().String(),
		Description: descOrEmpty(t.Description()),
		Hint:        t.EffectiveDisplayHint(),
		IsTC:        t.IsTextualConvention(),
	}
	if t.Module() != nil {
		tj.Module = t.Module().Name()
	}
	if c := t.EffectiveConstraint(); c != nil {
		for _, r := range c.Elements() {
			rj := RangeJSON{Min: r.Min, Max: r.Max}
			if c.IsSize() {
				tj.Size = append(tj.Size, rj)
			} else {
				tj.Range = append(tj.Range, rj)
			}
		}
	}
	for _, nv := range t.EffectiveNames() {
		tj.Enums = append(tj.Enums, EnumJSON{Label: nv.Label, Value: nv.Value})
	}
	for _, nv := range t.EffectiveBits() {
		tj.Bits = append(tj.Bits, BitJSON{Label: nv.Label, Position: nv.Value})
	}
	return tj
}

func buildObjectJSON(o *mib.ObjectType) ObjectJSON {
	oj := ObjectJSON{
		Name:        o.Name(),
		OID:         o.OID().String(),
		Kind:        o.Kind().String(),
		Access:      o.Access().String(),
		Status:      o.Status().String(),
		Description: descOrEmpty(o.Description()),
		Units:       o.Units(),
	}
	if o.Module() != nil {
		oj.Module = o.Module().Name()
	}
	if o.Type() != nil {
		oj.Type = o.Type().Name()
		oj.BaseType = o.Type().EffectiveBase().String()
	}
	if o.Augments() != nil {
		oj.Augments = o.Augments().Name()
	}
	for _, e := range o.EffectiveIndexes() {
		name := ""
		if e.Object != nil {
			name = e.Object.Name()
		}
		oj.Index = append(oj.Index, IndexJSON{Object: name, Implied: e.Implied})
	}
	for _, nv := range o.EffectiveEnums() {
		oj.Enums = append(oj.Enums, EnumJSON{Label: nv.Label, Value: nv.Value})
	}
	for _, nv := range o.EffectiveBits() {
		oj.Bits = append(oj.Bits, BitJSON{Label: nv.Label, Position: nv.Value})
	}
	return oj
}

func buildNotificationJSON(n *mib.Notification) NotificationJSON {
	nj := NotificationJSON{
		Name:        n.Name(),
		OID:         n.OID().String(),
		Status:      n.Status().String(),
		Description: descOrEmpty(n.Description()),
	}
	if n.Module() != nil {
		nj.Module = n.Module().Name()
	}
	for _, o := range n.Objects() {
		nj.Objects = append(nj.Objects, o.Name())
	}
	return nj
}

func buildGroupJSON(g *mib.Group) GroupJSON {
	gj := GroupJSON{
		Name:        g.Name(),
		OID:         g.OID().String(),
		Status:      g.Status().String(),
		Description: descOrEmpty(g.Description()),
	}
	if g.Module() != nil {
		gj.Module = g.Module().Name()
	}
	for _, m := range g.Members() {
		gj.Members = append(gj.Members, nodeDisplayName(m))
	}
	return gj
}

func buildComplianceJSON(c *mib.Compliance) ComplianceJSON {
	cj := ComplianceJSON{
		Name:        c.Name(),
		OID:         c.OID().String(),
		Status:      c.Status().String(),
		Description: descOrEmpty(c.Description()),
	}
	if c.Module() != nil {
		cj.Module = c.Module().Name()
	}
	for _, m := range c.Modules() {
		for _, g := range m.MandatoryGroups {
			cj.Groups = append(cj.Groups, g)
		}
	}
	return cj
}

func buildCapabilityJSON(c *mib.Capability) CapabilityJSON {
	cj := CapabilityJSON{
		Name:           c.Name(),
		OID:            c.OID().String(),
		Status:         c.Status().String(),
		ProductRelease: c.ProductRelease(),
		Description:    descOrEmpty(c.Description()),
	}
	if c.Module() != nil {
		cj.Module = c.Module().Name()
	}
	for _, s := range c.Supports() {
		cj.Supports = append(cj.Supports, s.ModuleName)
	}
	return cj
}

func buildTreeJSON(n *mib.Node) *TreeNodeJSON {
	tj := &TreeNodeJSON{
		Arc:   n.Arc(),
		Label: n.Name(),
		OID:   n.OID().String(),
		Kind:  n.Kind().String(),
	}
	if n.Module() != nil {
		tj.Module = n.Module().Name()
	}
	for _, child := range n.Children() {
		tj.Children = append(tj.Children, buildTreeJSON(child))
	}
	return tj
}

func buildDiagnosticJSON(d mib.Diagnostic) DiagnosticJSON {
	return DiagnosticJSON{
		Severity: d.Severity.String(),
		Module:   d.Module,
		Line:     d.Line,
		Message:  d.Message,
	}
}

func descOrEmpty(s string) string {
	if dumpNoDescriptions {
		return ""
	}
	return s
}
