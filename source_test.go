package snmpcodec

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/BabisK/snmpcodec/internal/testutil"
)

func TestDirFindsExtensionlessAndSuffixedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/IF-MIB", "content-a")
	writeFile(t, dir+"/SNMPv2-TC.txt", "content-b")

	src, err := Dir(dir)
	testutil.NoError(t, err)

	rc, path, err := src.Find("IF-MIB")
	testutil.NoError(t, err)
	testutil.Contains(t, path, "IF-MIB")
	closeAndCheck(t, rc, "content-a")

	rc, path, err = src.Find("SNMPv2-TC")
	testutil.NoError(t, err)
	testutil.Contains(t, path, "SNMPv2-TC.txt")
	closeAndCheck(t, rc, "content-b")

	_, _, err = src.Find("NO-SUCH-MIB")
	testutil.Error(t, err)
	testutil.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDirListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/IF-MIB", "a")
	writeFile(t, dir+"/IP-MIB.mib", "b")
	writeFile(t, dir+"/README.md", "not a mib")

	src, err := Dir(dir)
	testutil.NoError(t, err)
	files, err := src.ListFiles()
	testutil.NoError(t, err)
	testutil.Len(t, files, 2)
}

func TestDirRejectsNonDirectory(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/a-file"
	writeFile(t, path, "x")
	_, err := Dir(path)
	testutil.Error(t, err)
}

func TestDirWithExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/IF-MIB.smi", "x")

	src, err := Dir(dir, WithExtensions(".smi"))
	testutil.NoError(t, err)
	_, _, err = src.Find("IF-MIB")
	testutil.NoError(t, err)

	src, err = Dir(dir, WithExtensions(".mib"))
	testutil.NoError(t, err)
	_, _, err = src.Find("IF-MIB")
	testutil.Error(t, err)
}

func TestDirTreeIndexesRecursively(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/ietf/IF-MIB", "a")
	writeFile(t, dir+"/iana/IANAifType-MIB.mib", "b")

	src, err := DirTree(dir)
	testutil.NoError(t, err)
	files, err := src.ListFiles()
	testutil.NoError(t, err)
	testutil.Len(t, files, 2)

	rc, _, err := src.Find("IF-MIB")
	testutil.NoError(t, err)
	closeAndCheck(t, rc, "a")

	_, _, err = src.Find("MISSING-MIB")
	testutil.Error(t, err)
}

func TestFSSourceOverMapFS(t *testing.T) {
	mapFS := fstest.MapFS{
		"mibs/IF-MIB":  &fstest.MapFile{Data: []byte("if-mib content")},
		"mibs/IP-MIB":  &fstest.MapFile{Data: []byte("ip-mib content")},
		"mibs/SKIP.md": &fstest.MapFile{Data: []byte("not a mib")},
	}
	src := FS("embedded", mapFS)

	files, err := src.ListFiles()
	testutil.NoError(t, err)
	testutil.Len(t, files, 2)

	rc, path, err := src.Find("IF-MIB")
	testutil.NoError(t, err)
	testutil.Contains(t, path, "embedded:")
	closeAndCheck(t, rc, "if-mib content")

	_, _, err = src.Find("NO-MIB")
	testutil.Error(t, err)
}

func TestMultiSourceTriesEachInOrder(t *testing.T) {
	dirA := t.TempDir()
	writeFile(t, dirA+"/IF-MIB", "from-a")
	dirB := t.TempDir()
	writeFile(t, dirB+"/IP-MIB", "from-b")

	srcA, err := Dir(dirA)
	testutil.NoError(t, err)
	srcB, err := Dir(dirB)
	testutil.NoError(t, err)

	combined := Multi(srcA, srcB)
	rc, _, err := combined.Find("IF-MIB")
	testutil.NoError(t, err)
	closeAndCheck(t, rc, "from-a")

	rc, _, err = combined.Find("IP-MIB")
	testutil.NoError(t, err)
	closeAndCheck(t, rc, "from-b")

	_, _, err = combined.Find("NOWHERE-MIB")
	testutil.Error(t, err)

	files, err := combined.ListFiles()
	testutil.NoError(t, err)
	testutil.Len(t, files, 2)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating fixture dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture file %s: %v", path, err)
	}
}

func closeAndCheck(t *testing.T, rc io.ReadCloser, want string) {
	t.Helper()
	defer rc.Close()
	got, err := io.ReadAll(rc)
	testutil.NoError(t, err)
	testutil.Equal(t, want, string(got))
}

