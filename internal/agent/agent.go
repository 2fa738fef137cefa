package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/genai"
)

// maxToolRounds caps how many model/tool round-trips a single query may
// take before the loop gives up.
const maxToolRounds = 10

type llmCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type toolCaller interface {
	CallTool(ctx context.Context, params *mcp.CallToolParams) (*mcp.CallToolResult, error)
}

// GeminiCaller adapts a genai client to the llmCaller interface.
type GeminiCaller struct {
	c *genai.Client
}

// NewGeminiCaller wraps a genai client.
func NewGeminiCaller(c *genai.Client) *GeminiCaller {
	return &GeminiCaller{c: c}
}

// GenerateContent forwards to the Models API.
func (g *GeminiCaller) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.c.Models.GenerateContent(ctx, model, contents, cfg)
}

// Agent runs the read-eval loop: ask the model, dispatch any requested
// tool calls to the MCP session, feed results back, repeat until the model
// answers without further calls. The tool set is discovered once and
// treated as static for the session.
type Agent struct {
	llm     llmCaller
	model   string
	session toolCaller
	decls   []*genai.FunctionDeclaration
}

// NewAgent creates an Agent for the given model and MCP session.
func NewAgent(llm llmCaller, model string, session toolCaller, tools []*mcp.Tool) (*Agent, error) {
	decls, err := toFunctionDeclarations(tools)
	if err != nil {
		return nil, fmt.Errorf("toFunctionDeclarations failed: %w", err)
	}

	return &Agent{
		llm:     llm,
		model:   model,
		session: session,
		decls:   decls,
	}, nil
}

// Run submits the history plus query to the model and drives tool calls
// until a final answer arrives.
func (a *Agent) Run(ctx context.Context, history []Message, query string) (string, error) {
	contents, cfg := a.buildRequest(history, query)

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.llm.GenerateContent(ctx, a.model, contents, cfg)
		if err != nil {
			return "", fmt.Errorf("llm.GenerateContent failed: %w", err)
		}

		modelContent, calls := extractCandidate(resp)
		if len(calls) == 0 {
			return responseText(resp), nil
		}

		contents = append(contents, modelContent)

		responseParts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			result := a.dispatch(ctx, call)
			responseParts = append(responseParts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: result,
				},
			})
		}

		contents = append(contents, &genai.Content{
			Role:  "user",
			Parts: responseParts,
		})
	}

	return "", fmt.Errorf("no final answer after %d tool rounds", maxToolRounds)
}

func (a *Agent) buildRequest(history []Message, query string) ([]*genai.Content, *genai.GenerateContentConfig) {
	cfg := &genai.GenerateContentConfig{}

	temp := float32(0)
	cfg.Temperature = &temp

	if len(a.decls) > 0 {
		cfg.Tools = []*genai.Tool{{FunctionDeclarations: a.decls}}
	}

	var contents []*genai.Content
	for _, m := range history {
		switch m.Role {
		case RoleSystem:
			cfg.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: m.Content}},
			}
		case RoleHuman:
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: m.Content}},
			})
		case RoleAI:
			contents = append(contents, &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: m.Content}},
			})
		}
	}

	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: query}},
	})

	return contents, cfg
}

// dispatch forwards one function call to the server and shapes the result
// for the model. Tool failures come back as an error entry rather than
// aborting the loop; the model decides whether to retry.
func (a *Agent) dispatch(ctx context.Context, call *genai.FunctionCall) map[string]any {
	result, err := a.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      call.Name,
		Arguments: call.Args,
	})
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	text := resultText(result)
	if result.IsError {
		return map[string]any{"error": text}
	}

	return map[string]any{"output": text}
}

func resultText(result *mcp.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func extractCandidate(resp *genai.GenerateContentResponse) (*genai.Content, []*genai.FunctionCall) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return &genai.Content{Role: "model"}, nil
	}

	content := resp.Candidates[0].Content

	var calls []*genai.FunctionCall
	for _, part := range content.Parts {
		if part.FunctionCall != nil {
			calls = append(calls, part.FunctionCall)
		}
	}

	return content, calls
}

func responseText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			text.WriteString(part.Text)
		}
	}
	return text.String()
}
