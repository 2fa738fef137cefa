package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	gm "google.golang.org/api/gmail/v1"
)

const (
	defaultMaxResults = 10
	unreadQuery       = "is:unread"
	unreadMaxResults  = 20
)

// ListEmailsRequest selects which messages to list.
type ListEmailsRequest struct {
	Query      string `json:"query,omitempty" jsonschema:"Gmail search query, empty for all mail"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"maximum number of messages to return"`
}

// ListEmailsResponse carries the matched message summaries.
type ListEmailsResponse struct {
	Emails []EmailSummary `json:"emails" jsonschema:"array of email summaries"`
}

type listEmailsSvc interface {
	ListMessages(ctx context.Context, query string, labelIDs []string, maxResults int64) (*gm.ListMessagesResponse, error)
	GetMessageMetadata(ctx context.Context, msgID string) (*gm.Message, error)
}

// NewListEmails creates the list_emails / get_unread_emails tool.
func NewListEmails(svc listEmailsSvc) *ListEmails {
	return &ListEmails{svc: svc}
}

// ListEmails lists messages, fetching metadata per id to assemble summaries.
type ListEmails struct {
	svc listEmailsSvc
}

// ListEmails handles the list_emails tool call.
func (t *ListEmails) ListEmails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListEmailsRequest,
) (*mcp.CallToolResult, ListEmailsResponse, error) {
	if input.MaxResults <= 0 {
		input.MaxResults = defaultMaxResults
	}

	resp, err := t.list(ctx, input.Query, input.MaxResults)
	if err != nil {
		return nil, ListEmailsResponse{}, err
	}

	return nil, resp, nil
}

// UnreadEmails handles the get_unread_emails tool call: the query is pinned
// to unread mail with a fixed cap.
func (t *ListEmails) UnreadEmails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListEmailsResponse, error) {
	resp, err := t.list(ctx, unreadQuery, unreadMaxResults)
	if err != nil {
		return nil, ListEmailsResponse{}, err
	}

	return nil, resp, nil
}

func (t *ListEmails) list(ctx context.Context, query string, maxResults int64) (ListEmailsResponse, error) {
	result, err := t.svc.ListMessages(ctx, query, nil, maxResults)
	if err != nil {
		return ListEmailsResponse{}, fmt.Errorf("svc.ListMessages failed: %w", err)
	}

	emails := make([]EmailSummary, 0, len(result.Messages))

	for _, m := range result.Messages {
		msg, err := t.svc.GetMessageMetadata(ctx, m.Id)
		if err != nil {
			return ListEmailsResponse{}, fmt.Errorf("get message %s failed: %w", m.Id, err)
		}

		emails = append(emails, extractSummary(msg))
	}

	return ListEmailsResponse{Emails: emails}, nil
}
