package snmpcodec

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultExtensions are the file extensions recognized as MIB files. An
// empty string matches files with no extension at all (most IETF/IANA MIBs
// ship as "IF-MIB" with no suffix).
var DefaultExtensions = []string{"", ".mib", ".smi", ".txt", ".my"}

// Source locates MIB module text by module name, and can enumerate every
// file it knows about so a caller can compile a whole tree without naming
// each module up front. Grounded in the teacher's gomib.Source, adapted to
// this package's Load/LoadModules entry points.
type Source interface {
	// Find locates a module by name, returning its content, a path for
	// diagnostics, and fs.ErrNotExist if no such module exists here.
	Find(name string) (io.ReadCloser, string, error)
	// ListFiles returns every MIB file path this source knows about.
	ListFiles() ([]string, error)
}

// SourceOption configures a Source constructed by Dir, DirTree, or FS.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	extensions []string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{extensions: DefaultExtensions}
}

// WithExtensions overrides the file extensions a Source recognizes.
func WithExtensions(exts ...string) SourceOption {
	return func(c *sourceConfig) { c.extensions = exts }
}

// dirSource searches a single directory, looking files up lazily on each
// Find call rather than pre-indexing it.
type dirSource struct {
	path   string
	config sourceConfig
}

// Dir returns a Source over a single, non-recursive directory.
func Dir(path string, opts ...SourceOption) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &dirSource{path: path, config: cfg}, nil
}

func (s *dirSource) Find(name string) (io.ReadCloser, string, error) {
	for _, ext := range s.config.extensions {
		full := filepath.Join(s.path, name+ext)
		f, err := os.Open(full)
		if err == nil {
			return f, full, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, full, err
		}
	}
	return nil, "", fs.ErrNotExist
}

func (s *dirSource) ListFiles() ([]string, error) {
	extSet := makeExtensionSet(s.config.extensions)
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.path, entry.Name())
		if hasValidExtension(path, extSet) {
			files = append(files, path)
		}
	}
	return files, nil
}

// treeSource recursively indexes a directory tree once, at construction
// time, trading startup latency for O(1) Find calls on a large MIB
// repository (net-snmp/libsmi trees run into the thousands of files).
type treeSource struct {
	index  map[string]string // module name -> file path
	config sourceConfig
}

// DirTree returns a Source that walks root recursively and indexes every
// recognized file by the module name its filename implies. The first file
// seen for a given name wins if the tree has duplicates.
func DirTree(root string, opts ...SourceOption) (Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: root, Err: os.ErrInvalid}
	}
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	extSet := makeExtensionSet(cfg.extensions)
	index := make(map[string]string)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasValidExtension(path, extSet) {
			return nil
		}
		name := moduleNameFromPath(path)
		if _, exists := index[name]; !exists {
			index[name] = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &treeSource{index: index, config: cfg}, nil
}

func (s *treeSource) Find(name string) (io.ReadCloser, string, error) {
	path, ok := s.index[name]
	if !ok {
		return nil, "", fs.ErrNotExist
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	return f, path, nil
}

func (s *treeSource) ListFiles() ([]string, error) {
	files := make([]string, 0, len(s.index))
	for _, path := range s.index {
		files = append(files, path)
	}
	return files, nil
}

// fsSource adapts any fs.FS (embed.FS, testing fstest.MapFS, an http.Dir
// wrapper) into a Source, indexing it lazily on first use.
type fsSource struct {
	name   string
	fsys   fs.FS
	config sourceConfig

	once  sync.Once
	index map[string]string
	err   error
}

// FS returns a Source backed by fsys. name is used only to annotate the
// paths this Source reports, for diagnostics.
func FS(name string, fsys fs.FS, opts ...SourceOption) Source {
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &fsSource{name: name, fsys: fsys, config: cfg}
}

func (s *fsSource) Find(name string) (io.ReadCloser, string, error) {
	s.once.Do(func() { s.index, s.err = s.buildIndex() })
	if s.err != nil {
		return nil, "", s.err
	}
	path, ok := s.index[name]
	if !ok {
		return nil, "", fs.ErrNotExist
	}
	f, err := s.fsys.Open(path)
	if err != nil {
		return nil, s.name + ":" + path, err
	}
	return f, s.name + ":" + path, nil
}

func (s *fsSource) ListFiles() ([]string, error) {
	s.once.Do(func() { s.index, s.err = s.buildIndex() })
	if s.err != nil {
		return nil, s.err
	}
	files := make([]string, 0, len(s.index))
	for _, path := range s.index {
		files = append(files, s.name+":"+path)
	}
	return files, nil
}

func (s *fsSource) buildIndex() (map[string]string, error) {
	extSet := makeExtensionSet(s.config.extensions)
	index := make(map[string]string)
	err := fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasValidExtension(path, extSet) {
			return nil
		}
		name := moduleNameFromPath(path)
		if _, exists := index[name]; !exists {
			index[name] = path
		}
		return nil
	})
	return index, err
}

// multiSource tries several Sources in order, returning the first match.
type multiSource struct {
	sources []Source
}

// Multi combines several Sources into one, trying each in order on Find.
func Multi(sources ...Source) Source {
	return &multiSource{sources: sources}
}

func (s *multiSource) Find(name string) (io.ReadCloser, string, error) {
	for _, src := range s.sources {
		r, path, err := src.Find(name)
		if err == nil {
			return r, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, path, err
		}
	}
	return nil, "", fs.ErrNotExist
}

func (s *multiSource) ListFiles() ([]string, error) {
	var files []string
	for _, src := range s.sources {
		f, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		files = append(files, f...)
	}
	return files, nil
}

func makeExtensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

func hasValidExtension(path string, extSet map[string]struct{}) bool {
	_, ok := extSet[strings.ToLower(filepath.Ext(path))]
	return ok
}

func moduleNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
