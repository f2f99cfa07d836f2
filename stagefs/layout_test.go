package stagefs

import (
	"os"
	"path/filepath"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestLayout_Dest(t *testing.T) {
	l := DefaultLayout("/tmp/workspace")
	dst := l.Dest(false, "foo", "foo_bin")
	if want := filepath.Join("/tmp/workspace", "bins", "foo", "foo_bin"); dst != want {
		t.Errorf("dest '%s', want '%s'", dst, want)
	}
	dst = l.Dest(true, "foo", "foo_bin")
	if want := filepath.Join("/tmp/workspace", "tests", "foo", "foo_bin"); dst != want {
		t.Errorf("dest '%s', want '%s'", dst, want)
	}
}

func TestLayout_RelDest(t *testing.T) {
	l := DefaultLayout("/tmp/workspace")
	if rd := l.RelDest(true, "foo", "foo_bin"); rd != "tests/foo/foo_bin" {
		t.Errorf("rel dest '%s'", rd)
	}
}

func TestLayout_Provide(t *testing.T) {
	l := DefaultLayout(t.TempDir())
	dir := filepath.Join(l.Root, "bins", "foo")
	testerr.Shall(l.Provide(dir)).BeNil(t)
	st := testerr.Shall1(os.Stat(dir)).BeNil(t)
	if !st.IsDir() {
		t.Errorf("'%s' is no directory", dir)
	}
	// providing again must not fail
	testerr.Shall(l.Provide(dir)).BeNil(t)
}
