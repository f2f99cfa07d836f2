package cargostage

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"git.fractalqb.de/fractalqb/cargostage/cargo"
	"git.fractalqb.de/fractalqb/cargostage/stagefs"
)

const ManifestName = "manifest.yaml"

// Manifest records what one successful run staged, in encounter order. It
// is a convenience for CI consumers of the workspace, not a cache: nothing
// ever reads it back during collection.
type Manifest struct {
	Run       string           `yaml:"run"`
	Created   time.Time        `yaml:"created"`
	Artifacts []StagedArtifact `yaml:"artifacts,omitempty"`
}

type StagedArtifact struct {
	Package string `yaml:"package"`
	Target  string `yaml:"target"`
	Kind    string `yaml:"kind"`
	Path    string `yaml:"path"`
}

func NewManifest() *Manifest {
	return &Manifest{
		Run:     uuid.NewString(),
		Created: time.Now().UTC(),
	}
}

func (m *Manifest) Add(evt *cargo.Event, l stagefs.Layout) {
	m.Artifacts = append(m.Artifacts, StagedArtifact{
		Package: evt.PackageName(),
		Target:  evt.Target.Name,
		Kind:    l.Subdir(evt.Profile.Test),
		Path:    l.RelDest(evt.Profile.Test, evt.PackageName(), evt.Target.Name),
	})
}

func (m *Manifest) WriteFile(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}
	return nil
}

func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &m, nil
}
