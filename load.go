// Package snmpcodec wires the lexer, parser, and builder into a single
// Load/LoadModules entry point and re-exports the handful of mib types a
// caller needs to query the resulting Store, following the teacher's
// root-package facade (gomib.go/exports.go/load.go) over the same L/P/B/S
// pipeline.
package snmpcodec

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/BabisK/snmpcodec/internal/builder"
	"github.com/BabisK/snmpcodec/internal/parser"
	"github.com/BabisK/snmpcodec/internal/types"
	"github.com/BabisK/snmpcodec/mib"
)

// ErrNoSources is returned when Load or LoadModules is called with no
// explicit source and WithSystemPaths was not requested.
var ErrNoSources = errors.New("snmpcodec: no MIB sources provided")

// LoadOption configures Load and LoadModules.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger      *slog.Logger
	diagConfig  mib.DiagnosticConfig
	systemPaths bool
	noHeuristic bool
	workers     int
}

func defaultLoadConfig() loadConfig {
	return loadConfig{diagConfig: mib.DefaultConfig(), workers: runtime.GOMAXPROCS(0)}
}

// WithLogger sets the logger the lexer/parser/builder report their debug
// and trace output to. A nil logger (the default) disables logging.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) { c.logger = logger }
}

// WithDiagnostics sets the strictness/reporting configuration every loaded
// module is parsed and built under. Defaults to mib.DefaultConfig().
func WithDiagnostics(cfg mib.DiagnosticConfig) LoadOption {
	return func(c *loadConfig) { c.diagConfig = cfg }
}

// WithNoContentHeuristic disables the cheap "does this look like MIB text"
// probe Load applies before handing a file to the parser when scanning a
// whole source tree. Use this if a source's files are known-good but don't
// contain the literal tokens the heuristic looks for.
func WithNoContentHeuristic() LoadOption {
	return func(c *loadConfig) { c.noHeuristic = true }
}

// WithWorkers overrides the bounded worker pool size Load uses to compile
// independent files concurrently. Defaults to runtime.GOMAXPROCS(0). Pass 1
// to compile one file at a time; the order files are compiled in is still
// not fixed, so a single worker does not by itself remove the
// ordering-dependent diagnostics noted on Load.
func WithWorkers(n int) LoadOption {
	return func(c *loadConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// Load compiles every MIB file source can enumerate into one *mib.Store,
// using a bounded worker pool sized by WithWorkers (default
// runtime.GOMAXPROCS(0)) since independent files have no ordering
// dependency among themselves beyond the forward/cross-module references
// internal/builder already defers (see internal/builder.Builder). A file
// whose module name collides with one already loaded is skipped with a
// Diagnostic rather than aborting the whole load; source may be nil if
// WithSystemPaths is given, to load purely from discovered system
// directories.
//
// Cross-module forward references (an IMPORTS symbol defined by a module
// whose own file hasn't finished compiling yet on another worker) may
// surface as non-fatal diagnostics that a load compiling the defining
// module first would not have reported; they never abort
// the load, since this is exactly the situation internal/builder's pending
// reference lists are built to tolerate.
func Load(source Source, opts ...LoadOption) (*mib.Store, error) {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sources := collectSources(source, cfg)
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	var allFiles []string
	for _, src := range sources {
		files, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		allFiles = append(allFiles, files...)
	}

	store := mib.NewStore(cfg.diagConfig)
	if len(allFiles) == 0 {
		return store, nil
	}

	heuristic := defaultHeuristic()
	if cfg.noHeuristic {
		heuristic.enabled = false
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.workers)
	for _, path := range allFiles {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			loadFile(path, sources, store, heuristic, cfg)
		}(path)
	}
	wg.Wait()

	if err := store.ResolveTypes(); err != nil {
		return store, err
	}
	return store, nil
}

// LoadModules compiles only names and their transitive IMPORTS closure,
// skipping any file source cannot resolve to a name it was asked for.
// Dependency discovery is inherently sequential (a module's imports aren't
// known until it's been parsed), so unlike Load this walks one module at a
// time, grounded in the teacher's loadModulesByName recursive-closure walk.
func LoadModules(names []string, source Source, opts ...LoadOption) (*mib.Store, error) {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sources := collectSources(source, cfg)
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	store := mib.NewStore(cfg.diagConfig)
	heuristic := defaultHeuristic()
	if cfg.noHeuristic {
		heuristic.enabled = false
	}

	loading := make(map[string]bool)
	var loadOne func(name string) error
	loadOne = func(name string) error {
		if store.Module(name) != nil || loading[name] {
			return nil
		}
		loading[name] = true
		defer delete(loading, name)

		content, path, err := findModuleContent(sources, name)
		if err != nil {
			return nil // caller asked for a name this source set doesn't have; skip it
		}
		if !heuristic.looksLikeMIBContent(content) {
			return nil
		}

		mod, imports, err := compileModule(content, path, store, cfg)
		if err != nil {
			store.Report(diagnosticFromErr(name, path, err))
			return nil
		}
		if mod == nil {
			return nil
		}
		for _, imp := range imports {
			if err := loadOne(imp); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range names {
		if err := loadOne(name); err != nil {
			return nil, err
		}
	}

	if err := store.ResolveTypes(); err != nil {
		return store, err
	}
	return store, nil
}

// toInternalDiagConfig lowers a public mib.DiagnosticConfig to the
// internal/types.DiagnosticConfig internal/parser actually takes. The two
// are structurally identical (mib's duplicates types' at the public
// boundary, the way the teacher's own mib package mirrors its internal
// diagnostic machinery) but are distinct named types, not aliases, so a
// field-by-field copy is required at this one crossing point.
func toInternalDiagConfig(c mib.DiagnosticConfig) types.DiagnosticConfig {
	return types.DiagnosticConfig{
		Level:     c.Level,
		FailAt:    c.FailAt,
		Overrides: c.Overrides,
		Ignore:    c.Ignore,
	}
}

func collectSources(source Source, cfg loadConfig) []Source {
	var sources []Source
	if source != nil {
		sources = append(sources, source)
	}
	if cfg.systemPaths {
		sources = append(sources, discoverSystemSources(cfg.logger)...)
	}
	return sources
}

// loadFile compiles one path from a Source's ListFiles. Dir/DirTree list OS
// paths; an FS source lists "name:relative/path", which is read back through
// sources by the module name its file name implies.
func loadFile(path string, sources []Source, store *mib.Store, heuristic heuristicConfig, cfg loadConfig) {
	content, err := os.ReadFile(path)
	if err != nil {
		_, rel, ok := strings.Cut(path, ":")
		if !ok {
			return
		}
		content, _, err = findModuleContent(sources, moduleNameFromPath(rel))
		if err != nil {
			return
		}
	}
	if !heuristic.looksLikeMIBContent(content) {
		return
	}
	_, _, err = compileModule(content, path, store, cfg)
	if err != nil {
		store.Report(diagnosticFromErr("", path, err))
	}
}

// compileModule drives one file's lexer/parser/builder pipeline against the
// shared store, returning the module name's own IMPORTS (by source module)
// so LoadModules can walk its dependency closure.
func compileModule(content []byte, path string, store *mib.Store, cfg loadConfig) (*mib.Module, []string, error) {
	b := builder.New(store)
	var plog *slog.Logger
	if cfg.logger != nil {
		plog = cfg.logger.With(slog.String("file", path))
	}
	p := parser.New(content, b, plog, toInternalDiagConfig(cfg.diagConfig))
	if !p.ParseModule() {
		return nil, nil, nil
	}
	mod, err := b.Finish()
	if err != nil || mod == nil {
		return mod, nil, err
	}
	imports := make([]string, 0, len(mod.Imports()))
	for _, imp := range mod.Imports() {
		imports = append(imports, imp.Module)
	}
	return mod, imports, nil
}

func findModuleContent(sources []Source, name string) ([]byte, string, error) {
	for _, src := range sources {
		rc, path, err := src.Find(name)
		if err != nil {
			continue
		}
		content, readErr := io.ReadAll(rc)
		_ = rc.Close()
		if readErr == nil {
			return content, path, nil
		}
	}
	return nil, "", fs.ErrNotExist
}

func diagnosticFromErr(module, path string, err error) mib.Diagnostic {
	mod := module
	var merr *mib.Error
	if errors.As(err, &merr) {
		if mod == "" {
			mod = merr.Module
		}
		return mib.Diagnostic{
			Severity: mib.SeverityError,
			Code:     "load-" + merr.Kind.String(),
			Module:   mod,
			Message:  path + ": " + merr.Error(),
		}
	}
	return mib.Diagnostic{
		Severity: mib.SeverityError,
		Code:     "load-error",
		Module:   mod,
		Message:  path + ": " + err.Error(),
	}
}

var (
	sigDefinitions = []byte("DEFINITIONS")
	sigAssign      = []byte("::=")
)

// heuristicConfig implements the teacher's cheap "is this even a MIB file"
// probe: reject embedded NULs (binary content) within the first KB, then
// check for the two byte strings every MIB module's header and every
// assignment statement contain. Cheap enough to run before every file in a
// large, loosely-curated MIB directory tree (vendor dumps routinely mix in
// READMEs, .tar.gz archives, and stray binaries).
type heuristicConfig struct {
	enabled         bool
	binaryCheckSize int
	maxProbeSize    int
}

func defaultHeuristic() heuristicConfig {
	return heuristicConfig{enabled: true, binaryCheckSize: 1024, maxProbeSize: 128 * 1024}
}

func (h *heuristicConfig) looksLikeMIBContent(content []byte) bool {
	if !h.enabled {
		return true
	}
	if len(content) == 0 {
		return false
	}
	checkLen := min(h.binaryCheckSize, len(content))
	for _, b := range content[:checkLen] {
		if b == 0 {
			return false
		}
	}
	probeLen := min(h.maxProbeSize, len(content))
	probe := content[:probeLen]
	return bytes.Contains(probe, sigDefinitions) && bytes.Contains(probe, sigAssign)
}
