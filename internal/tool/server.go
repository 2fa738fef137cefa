// Package tool registers the terminal and Gmail capabilities as MCP tools.
package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type gmailSvc interface {
	listEmailsSvc
	getEmailSvc
	sendEmailSvc
	deleteEmailSvc
	labelsSvc
	draftsSvc
}

// Options adjust tool behavior.
type Options struct {
	// PermanentDelete makes delete_email remove messages for good instead
	// of moving them to trash.
	PermanentDelete bool
}

// NewServer creates an MCP server exposing the terminal and Gmail tools.
func NewServer(svc gmailSvc, run runner, opts Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "mailterm", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_command",
		Description: "Run a terminal command inside the workspace directory",
	}, NewRunCommand(run).RunCommand)

	listT := NewListEmails(svc)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_emails",
		Description: "List Gmail emails with optional search query",
	}, listT.ListEmails)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_unread_emails",
		Description: "Get unread Gmail emails",
	}, listT.UnreadEmails)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_email",
		Description: "Get full Gmail email content by ID",
	}, NewGetEmail(svc).GetEmail)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "send_email",
		Description: "Send a Gmail email",
	}, NewSendEmail(svc).SendEmail)

	deleteT := NewDeleteEmail(svc, opts.PermanentDelete)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_email",
		Description: "Delete a Gmail email by ID",
	}, deleteT.DeleteEmail)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_emails_in_label",
		Description: "Delete all emails under a specific Gmail label",
	}, deleteT.DeleteInLabel)

	labelsT := NewLabels(svc)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail.list_labels",
		Description: "List all Gmail labels",
	}, labelsT.ListLabels)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail.create_label",
		Description: "Create a Gmail label",
	}, labelsT.CreateLabel)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail.update_label",
		Description: "Rename a Gmail label",
	}, labelsT.UpdateLabel)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail.delete_label",
		Description: "Delete a Gmail label",
	}, labelsT.DeleteLabel)

	draftsT := NewDrafts(svc)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail.list_drafts",
		Description: "List Gmail drafts",
	}, draftsT.ListDrafts)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail.get_draft",
		Description: "Get a Gmail draft by ID",
	}, draftsT.GetDraft)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail.create_draft",
		Description: "Create a Gmail draft",
	}, draftsT.CreateDraft)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail.update_draft",
		Description: "Replace the content of a Gmail draft",
	}, draftsT.UpdateDraft)

	return server
}
