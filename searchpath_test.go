package snmpcodec

import (
	"testing"

	"github.com/BabisK/snmpcodec/internal/testutil"
)

func TestParseNetSNMPLine(t *testing.T) {
	op, dirs, ok := parseNetSNMPLine("mibdirs +/opt/mibs:/opt/more")
	testutil.True(t, ok)
	testutil.Equal(t, pathAppend, op)
	testutil.SliceEqual(t, []string{"/opt/mibs", "/opt/more"}, dirs)

	op, dirs, ok = parseNetSNMPLine("mibdirs -/opt/mibs")
	testutil.True(t, ok)
	testutil.Equal(t, pathPrepend, op)
	testutil.SliceEqual(t, []string{"/opt/mibs"}, dirs)

	op, dirs, ok = parseNetSNMPLine("mibdirs /only/these")
	testutil.True(t, ok)
	testutil.Equal(t, pathReplace, op)
	testutil.SliceEqual(t, []string{"/only/these"}, dirs)

	op, dirs, ok = parseNetSNMPLine("+mibdirs /appended")
	testutil.True(t, ok)
	testutil.Equal(t, pathAppend, op)
	testutil.SliceEqual(t, []string{"/appended"}, dirs)

	_, _, ok = parseNetSNMPLine("# a comment")
	testutil.False(t, ok)

	_, _, ok = parseNetSNMPLine("")
	testutil.False(t, ok)

	_, _, ok = parseNetSNMPLine("unrelated directive value")
	testutil.False(t, ok)
}

func TestParseLibSMILine(t *testing.T) {
	op, dirs, ok := parseLibSMILine("path :/opt/mibs")
	testutil.True(t, ok)
	testutil.Equal(t, pathAppend, op)
	testutil.SliceEqual(t, []string{"/opt/mibs"}, dirs)

	op, dirs, ok = parseLibSMILine("path /opt/mibs:")
	testutil.True(t, ok)
	testutil.Equal(t, pathPrepend, op)
	testutil.SliceEqual(t, []string{"/opt/mibs"}, dirs)

	op, dirs, ok = parseLibSMILine("path /only/these")
	testutil.True(t, ok)
	testutil.Equal(t, pathReplace, op)
	testutil.SliceEqual(t, []string{"/only/these"}, dirs)

	_, _, ok = parseLibSMILine("smilint: path /tool/specific")
	testutil.False(t, ok, "a tool-tagged line should be skipped")

	_, _, ok = parseLibSMILine("# a comment")
	testutil.False(t, ok)
}

func TestParseColonSemantic(t *testing.T) {
	op, dirs := parseColonSemantic(":/a:/b")
	testutil.Equal(t, pathAppend, op)
	testutil.SliceEqual(t, []string{"/a", "/b"}, dirs)

	op, dirs = parseColonSemantic("/a:/b:")
	testutil.Equal(t, pathPrepend, op)
	testutil.SliceEqual(t, []string{"/a", "/b"}, dirs)

	op, dirs = parseColonSemantic("/a:/b")
	testutil.Equal(t, pathReplace, op)
	testutil.SliceEqual(t, []string{"/a", "/b"}, dirs)
}

func TestSplitPaths(t *testing.T) {
	testutil.SliceEqual(t, []string{"/a", "/b"}, splitPaths("/a:/b"))
	testutil.SliceEqual(t, []string{"/a"}, splitPaths("/a::"))
	testutil.Len(t, splitPaths(""), 0)
}

func TestDedupStrings(t *testing.T) {
	got := dedupStrings([]string{"/a", "/b", "/a", "/c", "/b"})
	testutil.SliceEqual(t, []string{"/a", "/b", "/c"}, got)
}

func TestFilterExistingDirs(t *testing.T) {
	dir := t.TempDir()
	got := filterExistingDirs([]string{dir, dir + "/does-not-exist"})
	testutil.SliceEqual(t, []string{dir}, got)
}

func TestApplyOp(t *testing.T) {
	current := []string{"/base"}
	testutil.SliceEqual(t, []string{"/base", "/new"}, applyOp(pathAppend, []string{"/new"}, current))
	testutil.SliceEqual(t, []string{"/new", "/base"}, applyOp(pathPrepend, []string{"/new"}, current))
	testutil.SliceEqual(t, []string{"/new"}, applyOp(pathReplace, []string{"/new"}, current))
}
