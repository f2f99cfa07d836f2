package cargostage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"

	"git.fractalqb.de/fractalqb/cargostage/cargo"
	"git.fractalqb.de/fractalqb/cargostage/stagefs"
)

func artifactLine(pkgID, target, exe string, test bool) string {
	return fmt.Sprintf(
		`{"reason":"compiler-artifact","package_id":"%s","target":{"name":"%s"},"profile":{"test":%t},"executable":"%s"}`,
		pkgID, target, test, exe,
	)
}

func TestCollector_Collect(t *testing.T) {
	dir := t.TempDir()
	binExe := filepath.Join(dir, "out", "foo_bin")
	testExe := filepath.Join(dir, "out", "foo-abc123")
	testerr.Shall(os.MkdirAll(filepath.Dir(binExe), 0777)).BeNil(t)
	testerr.Shall(os.WriteFile(binExe, []byte("bin"), 0755)).BeNil(t)
	testerr.Shall(os.WriteFile(testExe, []byte("test"), 0755)).BeNil(t)

	root := filepath.Join(dir, "workspace")
	input := strings.Join([]string{
		artifactLine("foo 1.0.0 (path+file:///src/foo)", "foo_bin", binExe, false),
		"",
		`{"reason":"build-script-executed","package_id":"foo 1.0.0"}`,
		`{"reason":"compiler-artifact","package_id":"foo 1.0.0","target":{"name":"foo"},"profile":{"test":false},"executable":null}`,
		artifactLine("foo 1.0.0 (path+file:///src/foo)", "foo", testExe, true),
	}, "\n") + "\n"

	coll := NewCollector(root)
	testerr.Shall(coll.Collect(strings.NewReader(input), TestTracer{t})).BeNil(t)

	data := testerr.Shall1(os.ReadFile(
		filepath.Join(root, "bins", "foo", "foo_bin"),
	)).BeNil(t)
	if string(data) != "bin" {
		t.Errorf("bad staged bin content '%s'", data)
	}
	data = testerr.Shall1(os.ReadFile(
		filepath.Join(root, "tests", "foo", "foo"),
	)).BeNil(t)
	if string(data) != "test" {
		t.Errorf("bad staged test content '%s'", data)
	}
	// the library-only artifact and the build script event stage nothing
	if _, err := os.Stat(filepath.Join(root, "bins", "foo", "foo")); err == nil {
		t.Error("library-only artifact was staged")
	}
	if _, err := os.Stat(filepath.Join(root, ManifestName)); err == nil {
		t.Error("manifest written without being asked for")
	}
}

func TestCollector_manifest(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "foo_bin")
	testerr.Shall(os.WriteFile(exe, []byte("bin"), 0755)).BeNil(t)

	root := filepath.Join(dir, "workspace")
	coll := NewCollector(root)
	coll.WriteManifest = true
	input := artifactLine("foo 1.0.0", "foo_bin", exe, false) + "\n"
	testerr.Shall(coll.Collect(strings.NewReader(input), TestTracer{t})).BeNil(t)

	mf := testerr.Shall1(ReadManifest(filepath.Join(root, ManifestName))).BeNil(t)
	if mf.Run == "" {
		t.Error("manifest without run id")
	}
	if len(mf.Artifacts) != 1 {
		t.Fatalf("manifest lists %d artifacts, want 1", len(mf.Artifacts))
	}
	sa := mf.Artifacts[0]
	if sa.Package != "foo" || sa.Target != "foo_bin" || sa.Kind != stagefs.BinsDir {
		t.Errorf("bad manifest entry %+v", sa)
	}
	if sa.Path != "bins/foo/foo_bin" {
		t.Errorf("bad manifest path '%s'", sa.Path)
	}
}

func TestCollector_decodeErrorAborts(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "foo_bin")
	testerr.Shall(os.WriteFile(exe, []byte("bin"), 0755)).BeNil(t)

	root := filepath.Join(dir, "workspace")
	coll := NewCollector(root)
	input := "not a message\n" + artifactLine("foo 1.0.0", "foo_bin", exe, false) + "\n"
	err := coll.Collect(strings.NewReader(input), TestTracer{t})
	var de *cargo.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %T, want *cargo.DecodeError", err)
	}
	if de.Line != 1 {
		t.Errorf("decode error on line %d, want 1", de.Line)
	}
	if _, err := os.Stat(filepath.Join(root, "bins", "foo", "foo_bin")); err == nil {
		t.Error("artifact staged after decode error")
	}
}

func TestCollector_Run(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "foo_bin")
	testerr.Shall(os.WriteFile(exe, []byte("bin"), 0755)).BeNil(t)

	root := filepath.Join(dir, "workspace")
	coll := NewCollector(root)
	coll.Build = &cargo.BuildCommand{
		Exe:  "sh",
		Args: []string{"-c", fmt.Sprintf("echo '%s'", artifactLine("foo 1.0.0", "foo_bin", exe, false))},
	}
	coll.Stderr = os.Stderr
	testerr.Shall(coll.Run(context.Background(), TestTracer{t})).BeNil(t)

	if _, err := os.Stat(filepath.Join(root, "bins", "foo", "foo_bin")); err != nil {
		t.Error("artifact not staged:", err)
	}
}

func TestCollector_Run_buildFails(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "foo_bin")
	testerr.Shall(os.WriteFile(exe, []byte("bin"), 0755)).BeNil(t)

	root := filepath.Join(dir, "workspace")
	coll := NewCollector(root)
	coll.Build = &cargo.BuildCommand{
		Exe:  "sh",
		Args: []string{"-c", fmt.Sprintf("echo '%s'; exit 1", artifactLine("foo 1.0.0", "foo_bin", exe, false))},
	}
	coll.Stderr = os.Stderr
	err := coll.Run(context.Background(), TestTracer{t})
	var pe *cargo.ProcessError
	if !errors.As(err, &pe) {
		t.Fatalf("error %T, want *cargo.ProcessError", err)
	}
	// a failed build stages nothing, not even already reported artifacts
	if _, err := os.Stat(filepath.Join(root, "bins", "foo", "foo_bin")); err == nil {
		t.Error("artifact of failed build was staged")
	}
}
