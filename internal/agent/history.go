// Package agent implements the model-driven client loop: conversation
// history with summarization, tool discovery and dispatch over MCP, and
// response rendering.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Role identifies who produced a message.
type Role string

// Message roles.
const (
	RoleSystem Role = "system"
	RoleHuman  Role = "human"
	RoleAI     Role = "ai"
)

// Message is one entry in the conversation history.
type Message struct {
	Role    Role
	Content string
}

// MarshalJSON renders messages as {type, content} records.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Content string `json:"content"`
	}{
		Type:    string(m.Role),
		Content: m.Content,
	})
}

// Summarizer compresses a slice of messages into one summary string.
type Summarizer interface {
	Summarize(ctx context.Context, msgs []Message) (string, error)
}

// DefaultTokenBudget is the history size ceiling before compaction, in
// estimated tokens.
const DefaultTokenBudget = 1000

// keepRecent is how many trailing messages survive compaction verbatim:
// the most recent human/AI turn.
const keepRecent = 2

// History is an ordered conversation log that compacts itself once its
// token estimate exceeds the budget: older messages are replaced in place
// by a single generated summary message. The client loop is sequential,
// the mutex only guards against accidental concurrent use.
type History struct {
	mu          sync.Mutex
	summarizer  Summarizer
	tokenBudget int
	msgs        []Message
}

// NewHistory creates a History seeded with a system message. A tokenBudget
// of zero means DefaultTokenBudget.
func NewHistory(summarizer Summarizer, systemPrompt string, tokenBudget int) *History {
	if tokenBudget <= 0 {
		tokenBudget = DefaultTokenBudget
	}

	h := &History{
		summarizer:  summarizer,
		tokenBudget: tokenBudget,
	}
	if systemPrompt != "" {
		h.msgs = append(h.msgs, Message{Role: RoleSystem, Content: systemPrompt})
	}

	return h
}

// Add appends a message to the history.
func (h *History) Add(role Role, content string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.msgs = append(h.msgs, Message{Role: role, Content: content})
}

// Messages returns the current history, compacting it first if the token
// estimate exceeds the budget. The returned slice is a copy.
func (h *History) Messages(ctx context.Context) ([]Message, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.compactLocked(ctx); err != nil {
		return nil, fmt.Errorf("compactLocked failed: %w", err)
	}

	out := make([]Message, len(h.msgs))
	copy(out, h.msgs)

	return out, nil
}

// Len returns the number of messages currently held.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.msgs)
}

func (h *History) compactLocked(ctx context.Context) error {
	if h.estimateLocked() <= h.tokenBudget {
		return nil
	}

	// Partition: system prefix stays, the most recent turn stays, the
	// middle gets summarized.
	first := 0
	if len(h.msgs) > 0 && h.msgs[0].Role == RoleSystem {
		first = 1
	}

	tail := keepRecent
	if len(h.msgs)-first <= tail {
		return nil
	}

	middle := h.msgs[first : len(h.msgs)-tail]

	summary, err := h.summarizer.Summarize(ctx, middle)
	if err != nil {
		return fmt.Errorf("summarizer.Summarize failed: %w", err)
	}

	compacted := make([]Message, 0, first+1+tail)
	compacted = append(compacted, h.msgs[:first]...)
	compacted = append(compacted, Message{
		Role:    RoleHuman,
		Content: "[Summary of earlier conversation]\n" + summary,
	})
	compacted = append(compacted, h.msgs[len(h.msgs)-tail:]...)
	h.msgs = compacted

	return nil
}

func (h *History) estimateLocked() int {
	total := 0
	for _, m := range h.msgs {
		total += estimateTokens(m.Content)
	}
	return total
}

// estimateTokens approximates the token count of text with the usual
// four-characters-per-token heuristic.
func estimateTokens(text string) int {
	return (len(text) + 3) / 4
}
