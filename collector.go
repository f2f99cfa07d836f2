package cargostage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"git.fractalqb.de/fractalqb/cargostage/cargo"
	"git.fractalqb.de/fractalqb/cargostage/stagefs"
)

// Collector runs one cargo build and stages every executable the build
// reports into the workspace described by Layout. One Collector performs
// one strictly sequential pass, there is no state that outlives Run.
type Collector struct {
	Layout stagefs.Layout
	Build  *cargo.BuildCommand

	// Stderr receives cargo's progress output, defaults to os.Stderr.
	Stderr io.Writer

	// WriteManifest makes a successful run record what it staged in
	// {Root}/manifest.yaml.
	WriteManifest bool
}

func NewCollector(root string) *Collector {
	return &Collector{
		Layout: stagefs.DefaultLayout(root),
		Build:  cargo.DefaultBuildCommand(),
	}
}

// Run executes the build command and collects its artifacts. When the
// build fails nothing is staged: the *cargo.ProcessError propagates before
// any output line is looked at.
func (c *Collector) Run(ctx context.Context, tr Tracer) error {
	start := time.Now()
	cmd := c.Build.Describe()
	tr.StartRun(cmd)
	stderr := c.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	out, err := c.Build.Run(ctx, stderr)
	if err != nil {
		return err
	}
	if err := c.Collect(bytes.NewReader(out), tr); err != nil {
		return err
	}
	tr.DoneRun(cmd, time.Since(start))
	return nil
}

// Collect decodes the message stream and copies each compiler artifact
// with an executable to its staging destination. Messages with other
// reasons and artifacts without executable are skipped. The first decode
// or filesystem error aborts the pass.
func (c *Collector) Collect(r io.Reader, tr Tracer) error {
	mf := NewManifest()
	scn := cargo.NewEventScanner(r)
	for scn.Scan() {
		evt := scn.Event()
		if evt.Reason != cargo.CompilerArtifact {
			tr.Debug("skip `reason` message", `reason`, evt.Reason)
			continue
		}
		exe, ok := evt.ExecutablePath()
		if !ok {
			tr.Debug("skip `target` of `package`, no executable",
				`target`, evt.Target.Name,
				`package`, evt.PackageName(),
			)
			continue
		}
		dst := c.Layout.Dest(evt.Profile.Test, evt.PackageName(), evt.Target.Name)
		if err := c.Layout.Provide(filepath.Dir(dst)); err != nil {
			return err
		}
		if err := stagefs.CopyFile(dst, exe); err != nil {
			return err
		}
		tr.Info("staged `src` -> `dst`", `src`, exe, `dst`, dst)
		mf.Add(evt, c.Layout)
	}
	if err := scn.Err(); err != nil {
		return err
	}
	if c.WriteManifest {
		path := filepath.Join(c.Layout.Root, ManifestName)
		tr.Debug("write `manifest`", `manifest`, path)
		if err := c.Layout.Provide(c.Layout.Root); err != nil {
			return err
		}
		return mf.WriteFile(path)
	}
	return nil
}
