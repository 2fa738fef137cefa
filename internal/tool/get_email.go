package tool

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	gm "google.golang.org/api/gmail/v1"
)

// GetEmailRequest identifies the message to fetch.
type GetEmailRequest struct {
	MessageID string `json:"message_id" jsonschema:"the message ID to retrieve"`
}

type getEmailSvc interface {
	GetMessage(ctx context.Context, msgID string) (*gm.Message, error)
}

// NewGetEmail creates the get_email tool.
func NewGetEmail(svc getEmailSvc) *GetEmail {
	return &GetEmail{svc: svc}
}

// GetEmail retrieves a full message and extracts its plain text body.
type GetEmail struct {
	svc getEmailSvc
}

// GetEmail handles the get_email tool call.
func (t *GetEmail) GetEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetEmailRequest,
) (*mcp.CallToolResult, EmailDetail, error) {
	msg, err := t.svc.GetMessage(ctx, input.MessageID)
	if err != nil {
		return nil, EmailDetail{}, fmt.Errorf("svc.GetMessage failed: %w", err)
	}

	headers := headerMap(msg.Payload)

	return nil, EmailDetail{
		ID:      input.MessageID,
		Subject: headers["Subject"],
		From:    headers["From"],
		To:      headers["To"],
		Date:    headers["Date"],
		Body:    extractPlainBody(msg.Payload),
	}, nil
}

// extractPlainBody walks the immediate children of a multipart payload and
// takes the first text/plain leaf. Multipart messages carrying only HTML
// yield an empty body.
func extractPlainBody(payload *gm.MessagePart) string {
	if payload == nil {
		return ""
	}

	if len(payload.Parts) > 0 {
		for _, part := range payload.Parts {
			if part.MimeType != "text/plain" {
				continue
			}
			if part.Body == nil || part.Body.Data == "" {
				continue
			}
			return decodeBase64URL(part.Body.Data)
		}
		return ""
	}

	if payload.MimeType == "text/plain" && payload.Body != nil && payload.Body.Data != "" {
		return decodeBase64URL(payload.Body.Data)
	}

	return ""
}

func decodeBase64URL(data string) string {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return data
		}
	}
	return string(decoded)
}
