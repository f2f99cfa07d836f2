package cargo

import (
	"fmt"
	"strings"
)

// CompilerArtifact is the reason tag of cargo messages that describe one
// produced output file of one build target. All other reasons are of no
// interest for staging.
const CompilerArtifact = "compiler-artifact"

// Event is one message from 'cargo build --message-format=json', decoded
// from a single output line. Events are transient, they do not outlive the
// processing of their line.
type Event struct {
	Reason     string  `json:"reason"`
	PackageID  string  `json:"package_id"`
	Target     Target  `json:"target"`
	Profile    Profile `json:"profile"`
	Executable *string `json:"executable"`
}

type Target struct {
	Name string `json:"name"`
}

type Profile struct {
	Test bool `json:"test"`
}

// Validate checks the fields the staging workflow relies on. Every event
// must carry a reason. A compiler-artifact event with an executable must
// also name its package and target, everything else about it is ignored
// anyway.
func (e *Event) Validate() error {
	if e.Reason == "" {
		return fmt.Errorf("cargo message without reason")
	}
	if e.Reason != CompilerArtifact || e.Executable == nil {
		return nil
	}
	if len(strings.Fields(e.PackageID)) == 0 {
		return fmt.Errorf("compiler-artifact without package_id")
	}
	if e.Target.Name == "" {
		return fmt.Errorf("compiler-artifact without target name")
	}
	return nil
}

// PackageName returns the leading whitespace-delimited token of the package
// id. Cargo appends version and source location, e.g.
// "foo 1.2.3 (path+file:///src/foo)", which are dropped here.
func (e *Event) PackageName() string {
	fields := strings.Fields(e.PackageID)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ExecutablePath returns the path of the produced executable. ok is false
// for events without one, e.g. library-only compiler artifacts.
func (e *Event) ExecutablePath() (path string, ok bool) {
	if e.Executable == nil || *e.Executable == "" {
		return "", false
	}
	return *e.Executable, true
}
