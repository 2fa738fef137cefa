package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RunCommandRequest carries the shell command to execute.
type RunCommandRequest struct {
	Command string `json:"command" jsonschema:"the shell command to run inside the workspace directory"`
}

// RunCommandResponse carries the captured command output.
type RunCommandResponse struct {
	Output string `json:"output" jsonschema:"stdout if non-empty, otherwise stderr or the launch error"`
}

type runner interface {
	Run(ctx context.Context, command string) string
}

// NewRunCommand creates the run_command tool.
func NewRunCommand(run runner) *RunCommand {
	return &RunCommand{run: run}
}

// RunCommand executes arbitrary shell commands in the workspace directory.
// Launch failures come back as the output string, never as a tool error.
type RunCommand struct {
	run runner
}

// RunCommand handles the run_command tool call.
func (t *RunCommand) RunCommand(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RunCommandRequest,
) (*mcp.CallToolResult, RunCommandResponse, error) {
	return nil, RunCommandResponse{Output: t.run.Run(ctx, input.Command)}, nil
}
