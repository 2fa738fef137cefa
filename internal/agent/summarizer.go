package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const summarizationPrompt = `Provide a concise summary of the following conversation that preserves key information, decisions made, and any context needed to continue the conversation later. Provide only the summary, relying strictly on the provided text.`

// GeminiSummarizer compresses conversation history with a Gemini call.
type GeminiSummarizer struct {
	llm   llmCaller
	model string
}

// NewGeminiSummarizer creates a summarizer backed by the given model.
func NewGeminiSummarizer(llm llmCaller, model string) *GeminiSummarizer {
	return &GeminiSummarizer{llm: llm, model: model}
}

// Summarize renders the messages as a transcript and asks the model for a
// summary.
func (s *GeminiSummarizer) Summarize(ctx context.Context, msgs []Message) (string, error) {
	if len(msgs) == 0 {
		return "", nil
	}

	var transcript strings.Builder
	for _, m := range msgs {
		transcript.WriteString(fmt.Sprintf("%s: %s\n\n", m.Role, m.Content))
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: fmt.Sprintf("%s\n\nConversation to summarize:\n%s", summarizationPrompt, transcript.String())},
			},
		},
	}

	resp, err := s.llm.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{})
	if err != nil {
		return "", fmt.Errorf("llm.GenerateContent failed: %w", err)
	}

	return responseText(resp), nil
}
