package snmpcodec

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// WithSystemPaths appends Sources discovered from net-snmp's and libsmi's
// own configuration (snmp.conf/smi.conf mibdirs directives, MIBDIRS/SMIPATH
// environment variables, and their compiled-in defaults) after any explicit
// source given to Load/LoadModules. A host with no MIB directory of its own
// configured can pass a nil Source and rely on WithSystemPaths alone.
func WithSystemPaths() LoadOption {
	return func(c *loadConfig) { c.systemPaths = true }
}

type pathOp int

const (
	pathReplace pathOp = iota
	pathAppend
	pathPrepend
)

// discoverSystemSources turns every discovered system MIB directory into a
// dirSource, skipping any that fail os.Stat (e.g. a libsmi default that
// isn't installed on this host).
func discoverSystemSources(logger *slog.Logger) []Source {
	var sources []Source
	for _, d := range discoverSystemPaths(logger) {
		if src, err := Dir(d); err == nil {
			sources = append(sources, src)
		}
	}
	return sources
}

// DiscoverSystemPaths reports every net-snmp/libsmi MIB directory this host
// is configured for, without constructing Sources or loading anything. A
// caller that only wants to show an operator where snmpcodec would look
// (e.g. a `paths` CLI command) can use this directly instead of going
// through Load's WithSystemPaths option.
func DiscoverSystemPaths(logger *slog.Logger) []string {
	return discoverSystemPaths(logger)
}

// DiscoverSystemSources is DiscoverSystemPaths, pre-wrapped into Sources the
// way WithSystemPaths applies them to Load/LoadModules.
func DiscoverSystemSources(logger *slog.Logger) []Source {
	return discoverSystemSources(logger)
}

func discoverSystemPaths(logger *slog.Logger) []string {
	var all []string
	all = append(all, discoverNetSNMPPaths(logger)...)
	all = append(all, discoverLibSMIPaths(logger)...)
	return filterExistingDirs(dedupStrings(all))
}

func discoverNetSNMPPaths(logger *slog.Logger) []string {
	paths := netsnmpDefaults()
	for _, cf := range netsnmpConfigFiles() {
		paths = applyConfigFile(cf, paths, parseNetSNMPLine, logger)
	}
	if v := os.Getenv("MIBDIRS"); v != "" {
		paths = applyNetSNMPEnv(v, paths)
	}
	return paths
}

func discoverLibSMIPaths(logger *slog.Logger) []string {
	paths := libsmiDefaults()
	for _, cf := range libsmiConfigFiles() {
		paths = applyConfigFile(cf, paths, parseLibSMILine, logger)
	}
	if v := os.Getenv("SMIPATH"); v != "" {
		paths = applyLibSMIEnv(v, paths)
	}
	return paths
}

func netsnmpDefaults() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".snmp", "mibs"))
	}
	return append(paths,
		"/usr/share/snmp/mibs",
		"/usr/share/snmp/mibs/iana",
		"/usr/share/snmp/mibs/ietf",
		"/usr/local/share/snmp/mibs",
	)
}

func libsmiDefaults() []string {
	return []string{
		"/usr/share/mibs/ietf",
		"/usr/share/mibs/iana",
		"/usr/share/mibs/irtf",
		"/usr/share/mibs/site",
		"/usr/local/share/mibs/ietf",
		"/usr/local/share/mibs/iana",
		"/usr/local/share/mibs/irtf",
		"/usr/local/share/mibs/site",
	}
}

func netsnmpConfigFiles() []string {
	files := []string{"/etc/snmp/snmp.conf"}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".snmp", "snmp.conf"))
	}
	return files
}

func libsmiConfigFiles() []string {
	files := []string{"/etc/smi.conf"}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".smirc"))
	}
	return files
}

// parseNetSNMPLine parses one snmp.conf line, recognizing both the
// "mibdirs +/path" and "+mibdirs /path" spellings of append/prepend.
func parseNetSNMPLine(line string) (pathOp, []string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return 0, nil, false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, nil, false
	}
	directive, value := fields[0], fields[1]
	switch directive {
	case "mibdirs":
		if strings.HasPrefix(value, "+") {
			return pathAppend, splitPaths(value[1:]), true
		}
		if strings.HasPrefix(value, "-") {
			return pathPrepend, splitPaths(value[1:]), true
		}
		return pathReplace, splitPaths(value), true
	case "+mibdirs":
		return pathAppend, splitPaths(value), true
	case "-mibdirs":
		return pathPrepend, splitPaths(value), true
	default:
		return 0, nil, false
	}
}

// parseLibSMILine parses one smi.conf line. Tag-prefixed lines (e.g.
// "smilint: path ...") apply to a specific tool and are skipped.
func parseLibSMILine(line string) (pathOp, []string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return 0, nil, false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 || strings.HasSuffix(fields[0], ":") || fields[0] != "path" {
		return 0, nil, false
	}
	op, dirs := parseColonSemantic(fields[1])
	return op, dirs, true
}

// parseColonSemantic applies libsmi's leading/trailing-colon convention: a
// leading colon appends to the default path, a trailing colon prepends,
// neither replaces it outright.
func parseColonSemantic(value string) (pathOp, []string) {
	if strings.HasPrefix(value, ":") {
		return pathAppend, splitPaths(strings.TrimPrefix(value, ":"))
	}
	if strings.HasSuffix(value, ":") {
		return pathPrepend, splitPaths(strings.TrimSuffix(value, ":"))
	}
	return pathReplace, splitPaths(value)
}

func applyNetSNMPEnv(value string, current []string) []string {
	if strings.HasPrefix(value, "+") {
		return applyOp(pathAppend, splitPaths(value[1:]), current)
	}
	if strings.HasPrefix(value, "-") {
		return applyOp(pathPrepend, splitPaths(value[1:]), current)
	}
	return splitPaths(value)
}

func applyLibSMIEnv(value string, current []string) []string {
	op, dirs := parseColonSemantic(value)
	return applyOp(op, dirs, current)
}

func applyOp(op pathOp, dirs, current []string) []string {
	switch op {
	case pathAppend:
		return append(current, dirs...)
	case pathPrepend:
		return append(dirs, current...)
	default:
		return dirs
	}
}

func applyConfigFile(path string, current []string, parseLine func(string) (pathOp, []string, bool), logger *slog.Logger) []string {
	f, err := os.Open(path)
	if err != nil {
		return current
	}
	defer f.Close() //nolint:errcheck // best-effort config file read

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		op, dirs, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		current = applyOp(op, dirs, current)
	}
	if err := scanner.Err(); err != nil && logger != nil {
		logger.Debug("error reading MIB path config file", slog.String("path", path), slog.Any("error", err))
	}
	return current
}

func splitPaths(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(s, ":") {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func dedupStrings(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var result []string
	for _, p := range paths {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			result = append(result, p)
		}
	}
	return result
}

func filterExistingDirs(paths []string) []string {
	var result []string
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			result = append(result, p)
		}
	}
	return result
}
