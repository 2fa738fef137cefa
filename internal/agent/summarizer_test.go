package agent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/mkoval9/mailterm-mcp/internal/agent"
)

func TestSummarizeBuildsTranscript(t *testing.T) {
	llm := &llmMock{responses: []*genai.GenerateContentResponse{
		textResponse("user asked about unread mail, none found"),
	}}

	sm := agent.NewGeminiSummarizer(llm, "gemini-2.0-flash")

	summary, err := sm.Summarize(context.Background(), []agent.Message{
		{Role: agent.RoleHuman, Content: "any unread mail?"},
		{Role: agent.RoleAI, Content: "your inbox is empty"},
	})
	require.NoError(t, err)
	assert.Equal(t, "user asked about unread mail, none found", summary)

	require.Len(t, llm.requests, 1)
	require.Len(t, llm.requests[0], 1)
	prompt := llm.requests[0][0].Parts[0].Text
	assert.Contains(t, prompt, "human: any unread mail?")
	assert.Contains(t, prompt, "ai: your inbox is empty")
}

func TestSummarizeEmptyHistory(t *testing.T) {
	llm := &llmMock{}
	sm := agent.NewGeminiSummarizer(llm, "gemini-2.0-flash")

	summary, err := sm.Summarize(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, summary)
	assert.Empty(t, llm.requests, "no model call for empty history")
}
