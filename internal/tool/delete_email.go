package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	gm "google.golang.org/api/gmail/v1"
)

// DeleteEmailRequest identifies the message to delete.
type DeleteEmailRequest struct {
	MessageID string `json:"message_id" jsonschema:"the message ID to delete"`
}

// DeleteEmailResponse reports which delete semantic was applied.
type DeleteEmailResponse struct {
	Status string `json:"status" jsonschema:"trashed for a reversible move to trash, deleted for permanent removal"`
	ID     string `json:"id" jsonschema:"the affected message ID"`
}

// DeleteInLabelRequest names the label to purge.
type DeleteInLabelRequest struct {
	LabelName string `json:"label_name" jsonschema:"the label whose messages should be trashed"`
}

// DeleteInLabelResponse reports the outcome of a label purge. Exactly one
// of Error or Status is set.
type DeleteInLabelResponse struct {
	Status string `json:"status,omitempty" jsonschema:"outcome description"`
	Count  int    `json:"count,omitempty" jsonschema:"number of messages trashed"`
	Label  string `json:"label,omitempty" jsonschema:"the label that was purged"`
	Error  string `json:"error,omitempty" jsonschema:"set when the label does not exist"`
}

type deleteEmailSvc interface {
	Trash(ctx context.Context, msgID string) error
	Delete(ctx context.Context, msgID string) error
	ListLabels(ctx context.Context) ([]*gm.Label, error)
	ListMessages(ctx context.Context, query string, labelIDs []string, maxResults int64) (*gm.ListMessagesResponse, error)
	BatchTrash(ctx context.Context, msgIDs []string) error
}

// NewDeleteEmail creates the delete_email and delete_emails_in_label tools.
// When permanent is true delete_email removes messages for good instead of
// moving them to trash.
func NewDeleteEmail(svc deleteEmailSvc, permanent bool) *DeleteEmail {
	return &DeleteEmail{svc: svc, permanent: permanent}
}

// DeleteEmail removes single messages and purges labels in batch.
type DeleteEmail struct {
	svc       deleteEmailSvc
	permanent bool
}

// DeleteEmail handles the delete_email tool call.
func (t *DeleteEmail) DeleteEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteEmailRequest,
) (*mcp.CallToolResult, DeleteEmailResponse, error) {
	if t.permanent {
		if err := t.svc.Delete(ctx, input.MessageID); err != nil {
			return nil, DeleteEmailResponse{}, fmt.Errorf("svc.Delete failed: %w", err)
		}

		return nil, DeleteEmailResponse{Status: "deleted", ID: input.MessageID}, nil
	}

	if err := t.svc.Trash(ctx, input.MessageID); err != nil {
		return nil, DeleteEmailResponse{}, fmt.Errorf("svc.Trash failed: %w", err)
	}

	return nil, DeleteEmailResponse{Status: "trashed", ID: input.MessageID}, nil
}

// DeleteInLabel handles the delete_emails_in_label tool call. Label
// resolution is a case-insensitive scan of the full label listing; an
// unknown label short-circuits before any modify call is issued.
func (t *DeleteEmail) DeleteInLabel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteInLabelRequest,
) (*mcp.CallToolResult, DeleteInLabelResponse, error) {
	labels, err := t.svc.ListLabels(ctx)
	if err != nil {
		return nil, DeleteInLabelResponse{}, fmt.Errorf("svc.ListLabels failed: %w", err)
	}

	var labelID string
	for _, l := range labels {
		if strings.EqualFold(l.Name, input.LabelName) {
			labelID = l.Id
			break
		}
	}
	if labelID == "" {
		return nil, DeleteInLabelResponse{
			Error: fmt.Sprintf("Label '%s' not found", input.LabelName),
		}, nil
	}

	result, err := t.svc.ListMessages(ctx, "", []string{labelID}, 0)
	if err != nil {
		return nil, DeleteInLabelResponse{}, fmt.Errorf("svc.ListMessages failed: %w", err)
	}

	if len(result.Messages) == 0 {
		return nil, DeleteInLabelResponse{Status: "no emails found under this label"}, nil
	}

	msgIDs := make([]string, 0, len(result.Messages))
	for _, m := range result.Messages {
		msgIDs = append(msgIDs, m.Id)
	}

	if err := t.svc.BatchTrash(ctx, msgIDs); err != nil {
		return nil, DeleteInLabelResponse{}, fmt.Errorf("svc.BatchTrash failed: %w", err)
	}

	return nil, DeleteInLabelResponse{
		Status: "deleted",
		Count:  len(msgIDs),
		Label:  input.LabelName,
	}, nil
}
