package cargo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

// BuildCommand runs the cargo invocation whose message stream is to be
// staged. The zero value is not usable, see [DefaultBuildCommand].
type BuildCommand struct {
	CWD  string
	Exe  string
	Args []string
	Env  []string
	Desc string
}

// DefaultBuildCommand builds all targets of the workspace in the current
// working directory, with machine-readable messages on stdout.
func DefaultBuildCommand() *BuildCommand {
	return &BuildCommand{
		Exe:  "cargo",
		Args: []string{"build", "--all-targets", "--message-format=json"},
	}
}

func (bc *BuildCommand) Describe() string {
	if bc.Desc == "" {
		path := filepath.Base(bc.Exe)
		bc.Desc = fmt.Sprintf("%s %s", path, strings.Join(bc.Args, " "))
	}
	return bc.Desc
}

// Run executes the command to completion and returns its complete stdout.
// Stderr, i.e. cargo's human-readable progress, passes through to stderr.
// A non-zero exit yields a [ProcessError] and no output: artifacts of a
// failed build must never reach the staging area.
func (bc *BuildCommand) Run(ctx context.Context, stderr io.Writer) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bc.Exe, bc.Args...)
	cmd.Dir = bc.CWD
	cmd.Env = bc.Env
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return nil, &ProcessError{Cmd: bc.Describe(), Err: err}
	}
	return out.Bytes(), nil
}
