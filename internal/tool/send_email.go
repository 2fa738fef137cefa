package tool

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	gm "google.golang.org/api/gmail/v1"
)

// SendEmailRequest describes the message to send.
type SendEmailRequest struct {
	To      string `json:"to" jsonschema:"recipient address"`
	Subject string `json:"subject" jsonschema:"email subject"`
	Body    string `json:"body" jsonschema:"plain text body"`
}

// SendEmailResponse carries the API's send result.
type SendEmailResponse struct {
	ID       string   `json:"id" jsonschema:"ID of the sent message"`
	ThreadID string   `json:"thread_id,omitempty" jsonschema:"thread ID"`
	LabelIDs []string `json:"label_ids,omitempty" jsonschema:"labels applied to the sent message"`
}

type sendEmailSvc interface {
	Send(ctx context.Context, raw string) (*gm.Message, error)
}

// NewSendEmail creates the send_email tool.
func NewSendEmail(svc sendEmailSvc) *SendEmail {
	return &SendEmail{svc: svc}
}

// SendEmail composes a MIME text message and submits it as a raw payload.
type SendEmail struct {
	svc sendEmailSvc
}

// SendEmail handles the send_email tool call.
func (t *SendEmail) SendEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendEmailRequest,
) (*mcp.CallToolResult, SendEmailResponse, error) {
	raw := composeRaw(input.To, input.Subject, input.Body)

	msg, err := t.svc.Send(ctx, raw)
	if err != nil {
		return nil, SendEmailResponse{}, fmt.Errorf("svc.Send failed: %w", err)
	}

	return nil, SendEmailResponse{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		LabelIDs: msg.LabelIds,
	}, nil
}

// composeRaw builds a minimal RFC 2822 text message and base64url-encodes
// it the way the Gmail raw payload field expects.
func composeRaw(to, subject, body string) string {
	msg := fmt.Sprintf(
		"To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		to, subject, body,
	)

	return base64.URLEncoding.EncodeToString([]byte(msg))
}
