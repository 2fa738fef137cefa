package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoval9/mailterm-mcp/internal/tool"
)

func TestRunCommand(t *testing.T) {
	run := &runnerMock{
		RunFunc: func(_ context.Context, command string) string {
			if command == "boom" {
				return "exec: \"boom\": executable file not found in $PATH"
			}
			return "output of " + command
		},
	}

	session := newSession(t, &gmailSvcMock{}, run, tool.Options{})
	ctx := context.Background()

	t.Run("returns captured output", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "run_command",
			Arguments: tool.RunCommandRequest{Command: "ls -la"},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)

		var response tool.RunCommandResponse
		require.NoError(t, json.Unmarshal(
			[]byte(result.Content[0].(*mcp.TextContent).Text),
			&response,
		))
		assert.Equal(t, "output of ls -la", response.Output)
	})

	t.Run("launch failures are successful results", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "run_command",
			Arguments: tool.RunCommandRequest{Command: "boom"},
		})
		require.NoError(t, err)
		require.False(t, result.IsError, "runner errors must not surface as tool errors")

		var response tool.RunCommandResponse
		require.NoError(t, json.Unmarshal(
			[]byte(result.Content[0].(*mcp.TextContent).Text),
			&response,
		))
		assert.Contains(t, response.Output, "executable file not found")
	})
}
