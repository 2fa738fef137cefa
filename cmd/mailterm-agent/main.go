// Mailterm agent is an interactive MCP client: it discovers the server's
// tools and drives them from a Gemini agent loop.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/genai"

	"github.com/mkoval9/mailterm-mcp/internal/agent"
)

const systemPrompt = "You are a helpful assistant connected to MCP tools."

func main() {
	serverURL := flag.String("server-url", "http://127.0.0.1:8000/sse", "SSE endpoint of the MCP server")
	serverCmd := flag.String("server-cmd", "", "Command to spawn a stdio MCP server instead of connecting over HTTP")
	model := flag.String("model", "gemini-2.0-flash", "Gemini model name")
	envFileParam := flag.String("env-file", "", "Path to env file")
	tokenBudget := flag.Int("token-budget", agent.DefaultTokenBudget, "History token estimate ceiling before summarization")

	flag.Parse()

	if *envFileParam != "" {
		if err := godotenv.Load(*envFileParam); err != nil {
			panic(fmt.Errorf("godotenv.Load failed: %w", err))
		}
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		panic("Env variable GEMINI_API_KEY (or GOOGLE_API_KEY) must be set")
	}

	ctx := context.Background()

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		panic(fmt.Errorf("genai.NewClient failed: %w", err))
	}

	session, err := connect(ctx, *serverURL, *serverCmd)
	if err != nil {
		panic(fmt.Errorf("connect failed: %w", err))
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Println(fmt.Errorf("session.Close failed: %w", err))
		}
	}()

	toolList, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		panic(fmt.Errorf("session.ListTools failed: %w", err))
	}

	llm := agent.NewGeminiCaller(genaiClient)

	ag, err := agent.NewAgent(llm, *model, session, toolList.Tools)
	if err != nil {
		panic(fmt.Errorf("agent.NewAgent failed: %w", err))
	}

	history := agent.NewHistory(agent.NewGeminiSummarizer(llm, *model), systemPrompt, *tokenBudget)

	fmt.Printf("MCP client started with %d tools. Type 'quit' to exit.\n", len(toolList.Tools))

	runLoop(ctx, ag, history)
}

func runLoop(ctx context.Context, ag *agent.Agent, history *agent.History) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\nQuery: ")
		if !scanner.Scan() {
			return
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if strings.EqualFold(query, "quit") {
			return
		}

		msgs, err := history.Messages(ctx)
		if err != nil {
			log.Println(fmt.Errorf("history.Messages failed: %w", err))
			continue
		}

		answer, err := ag.Run(ctx, msgs, query)
		if err != nil {
			log.Println(fmt.Errorf("ag.Run failed: %w", err))
			continue
		}

		history.Add(agent.RoleHuman, query)
		history.Add(agent.RoleAI, answer)

		fmt.Println("\nResponse:")
		fmt.Println(agent.RenderJSON(agent.Turn{
			Query:  query,
			Answer: agent.Message{Role: agent.RoleAI, Content: answer},
		}))
	}
}

func connect(ctx context.Context, serverURL, serverCmd string) (*mcp.ClientSession, error) {
	client := mcp.NewClient(&mcp.Implementation{Name: "mailterm-agent"}, nil)

	var transport mcp.Transport
	if serverCmd != "" {
		parts := strings.Fields(serverCmd)
		transport = &mcp.CommandTransport{Command: exec.Command(parts[0], parts[1:]...)}
	} else {
		transport = &mcp.SSEClientTransport{Endpoint: serverURL}
	}

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("client.Connect failed: %w", err)
	}

	return session, nil
}
