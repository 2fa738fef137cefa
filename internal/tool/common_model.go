package tool

import (
	gm "google.golang.org/api/gmail/v1"
)

// EmailSummary contains the message metadata surfaced by listing tools.
type EmailSummary struct {
	ID      string `json:"id" jsonschema:"message ID"`
	Subject string `json:"subject" jsonschema:"email subject"`
	From    string `json:"from" jsonschema:"sender"`
	Date    string `json:"date" jsonschema:"date header"`
	Snippet string `json:"snippet" jsonschema:"message preview"`
}

// EmailDetail contains the full content of a single message.
type EmailDetail struct {
	ID      string `json:"id" jsonschema:"message ID"`
	Subject string `json:"subject" jsonschema:"email subject"`
	From    string `json:"from" jsonschema:"sender"`
	To      string `json:"to" jsonschema:"recipients"`
	Date    string `json:"date" jsonschema:"date header"`
	Body    string `json:"body" jsonschema:"plain text body"`
}

func headerMap(payload *gm.MessagePart) map[string]string {
	headers := map[string]string{}
	if payload == nil {
		return headers
	}
	for _, h := range payload.Headers {
		headers[h.Name] = h.Value
	}
	return headers
}

func extractSummary(msg *gm.Message) EmailSummary {
	headers := headerMap(msg.Payload)

	return EmailSummary{
		ID:      msg.Id,
		Subject: headers["Subject"],
		From:    headers["From"],
		Date:    headers["Date"],
		Snippet: msg.Snippet,
	}
}
