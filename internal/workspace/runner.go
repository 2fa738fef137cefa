// Package workspace executes shell commands inside a fixed working
// directory.
package workspace

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// DefaultDir returns the default workspace directory under the user's home.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.TempDir()
	}
	return filepath.Join(home, "mailterm", "workspace")
}

// Runner executes arbitrary shell commands with the workspace directory as
// cwd. Commands are intentionally unguarded: whatever the agent asks for
// runs with the server's privileges.
type Runner struct {
	dir string
}

// NewRunner creates a Runner, creating dir if it does not exist.
func NewRunner(dir string) (*Runner, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll failed: %w", err)
	}

	return &Runner{dir: dir}, nil
}

// Dir returns the workspace directory.
func (r *Runner) Dir() string {
	return r.dir
}

// Run executes command through the platform shell and returns stdout if
// non-empty, otherwise stderr. Failures to launch (and non-zero exits with
// no output) are reported as the returned string itself; Run never fails
// at the protocol level.
func (r *Runner) Run(ctx context.Context, command string) string {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", command)
	}
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stdout.Len() > 0 {
		return stdout.String()
	}
	if stderr.Len() > 0 {
		return stderr.String()
	}
	if err != nil {
		return err.Error()
	}

	return ""
}
