// Package stagefs maps staged artifacts into the workspace directory tree
// and does the actual file transfer.
package stagefs

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

const (
	BinsDir  = "bins"
	TestsDir = "tests"
)

// Layout names the destination of every staged artifact:
//
//	{Root}/{bins|tests}/{package}/{target}
type Layout struct {
	Root      string
	MkDirMode fs.FileMode
}

func DefaultLayout(root string) Layout {
	return Layout{Root: root, MkDirMode: 0777}
}

// Subdir classifies an artifact by its profile test flag. There are no
// other categories.
func (l Layout) Subdir(test bool) string {
	if test {
		return TestsDir
	}
	return BinsDir
}

// Dest returns the OS path an executable of pkg/target is staged at.
func (l Layout) Dest(test bool, pkg, target string) string {
	return filepath.Join(l.Root, l.Subdir(test), pkg, target)
}

// RelDest is Dest relative to Root, with slashes. Used for reporting.
func (l Layout) RelDest(test bool, pkg, target string) string {
	return path.Join(l.Subdir(test), pkg, target)
}

// Provide creates dir with all missing parents. An existing dir is no
// error.
func (l Layout) Provide(dir string) error {
	mode := l.MkDirMode
	if mode == 0 {
		mode = 0777
	}
	return os.MkdirAll(dir, mode)
}
