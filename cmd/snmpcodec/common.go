package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"

	snmpcodec "github.com/BabisK/snmpcodec"
	"github.com/BabisK/snmpcodec/mib"
)

// moduleNameFromFile mirrors the root package's own moduleNameFromPath: a
// source's ListFiles already embeds the module name in the file's base
// name minus its extension, and list needs that name without constructing
// a Source's private index to get at it.
func moduleNameFromFile(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fileConfig is the shape of an optional .snmpcodec.toml: default search
// paths and the system-path switch, so a repository of vendor MIBs can check
// in one config file instead of repeating -p flags on every invocation,
// grounded in the teacher's mods.tomlModule approach to a checked-in TOML
// config. A strictness key is parsed into Strictness, but no subcommand reads
// it; strictness comes only from the --strict/--permissive/--level flags.
type fileConfig struct {
	Paths      []string `toml:"paths"`
	System     bool     `toml:"system"`
	Strictness string   `toml:"strictness"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// effectivePaths merges the config file's paths under the CLI's explicit
// -p flags, -p taking precedence since it was given at the call site.
func effectivePaths() ([]string, bool, error) {
	cfg, err := loadFileConfig(flagConfig)
	if err != nil {
		return nil, false, err
	}
	paths := append(append([]string{}, flagPaths...), cfg.Paths...)
	return paths, flagSystem || cfg.System, nil
}

// buildSource turns the effective -p/--path directories into a single
// Source, trying each as a recursive tree (vendor MIB dumps are rarely
// flat). Returns nil if no explicit directories were given, leaving
// WithSystemPaths (or an error) to the caller.
func buildSource(paths []string) (snmpcodec.Source, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	sources := make([]snmpcodec.Source, 0, len(paths))
	for _, p := range paths {
		src, err := snmpcodec.DirTree(p)
		if err != nil {
			return nil, fmt.Errorf("path %s: %w", p, err)
		}
		sources = append(sources, src)
	}
	if len(sources) == 1 {
		return sources[0], nil
	}
	return snmpcodec.Multi(sources...), nil
}

// diagConfigFor maps the load/lint subcommands' --strict/--permissive/--level
// flags onto a mib.DiagnosticConfig, the way the teacher's cmd/gomib/load.go
// maps its own flags onto mib.StrictnessStrict/Permissive/StrictnessLevel(n).
func diagConfigFor(strict, permissive bool, level int) mib.DiagnosticConfig {
	switch {
	case level >= 0:
		cfg := mib.DefaultConfig()
		cfg.Level = mib.StrictnessLevel(level)
		return cfg
	case strict:
		return mib.StrictConfig()
	case permissive:
		return mib.PermissiveConfig()
	default:
		return mib.DefaultConfig()
	}
}

// severityStyle returns the pterm style a diagnostic's severity renders
// with, grounded in the teacher's (ComedicChimera/chai) error/warning/info
// color scheme: fatal/severe/error in red, minor/style/warning in yellow,
// info left uncolored.
func severityStyle(sev mib.Severity) *pterm.Style {
	switch {
	case sev <= mib.SeverityError:
		return pterm.NewStyle(pterm.FgRed)
	case sev <= mib.SeverityWarning:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}

// formatConstraint renders a Constraint's elements as SMI range syntax,
// e.g. "0..255" or "1 | 3..5".
func formatConstraint(c *mib.Constraint) string {
	elems := c.Elements()
	parts := make([]string, len(elems))
	for i, r := range elems {
		parts[i] = r.String()
	}
	return strings.Join(parts, " | ")
}

func printDiagnostic(d mib.Diagnostic) {
	style := severityStyle(d.Severity)
	loc := d.Module
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", d.Module, d.Line, d.Column)
	}
	style.Printf("[%s] ", d.Severity)
	fmt.Printf("%s %s: %s\n", loc, d.Code, d.Message)
}

const defaultDescLimit = 200

func truncateDesc(s string, full bool) string {
	if full || len(s) <= defaultDescLimit {
		return s
	}
	return s[:defaultDescLimit] + "..."
}

// collectAllObjects/collectAllTypes/collectAllNotifications aggregate across
// every module in store, bridging the teacher's *gomib.Mib-level
// Objects()/Types()/Notifications() convenience methods onto this package's
// per-Module query API (mib.Store has no single cross-module aggregate).
func collectAllObjects(store *mib.Store) []*mib.ObjectType {
	var all []*mib.ObjectType
	for _, mod := range store.Modules() {
		all = append(all, mod.Objects()...)
	}
	return all
}

func collectAllTypes(store *mib.Store) []*mib.TypeDescriptor {
	var all []*mib.TypeDescriptor
	for _, mod := range store.Modules() {
		all = append(all, mod.Types()...)
	}
	return all
}

func collectAllNotifications(store *mib.Store) []*mib.Notification {
	var all []*mib.Notification
	for _, mod := range store.Modules() {
		all = append(all, mod.Notifications()...)
	}
	return all
}

func collectAllGroups(store *mib.Store) []*mib.Group {
	var all []*mib.Group
	for _, mod := range store.Modules() {
		all = append(all, mod.Groups()...)
	}
	return all
}

func collectAllCompliances(store *mib.Store) []*mib.Compliance {
	var all []*mib.Compliance
	for _, mod := range store.Modules() {
		all = append(all, mod.Compliances()...)
	}
	return all
}

func collectAllCapabilities(store *mib.Store) []*mib.Capability {
	var all []*mib.Capability
	for _, mod := range store.Modules() {
		all = append(all, mod.Capabilities()...)
	}
	return all
}

// findByName resolves a bare (unqualified) name against every module in
// store, returning the first module that binds it. The teacher's *gomib.Mib
// exposes a single Node(name)/Object(name)/Type(name) that searches across
// all loaded modules directly; Store only searches one Module at a time, so
// every bare-name query in this CLI goes through this helper instead.
func findByName(store *mib.Store, name string) (obj *mib.ObjectType, typ *mib.TypeDescriptor, node *mib.Node, mod *mib.Module) {
	for _, m := range store.Modules() {
		if o := m.Object(name); o != nil {
			return o, nil, nil, m
		}
		if t := m.Type(name); t != nil {
			return nil, t, nil, m
		}
		if n := m.Node(name); n != nil {
			return nil, nil, n, m
		}
	}
	return nil, nil, nil, nil
}
