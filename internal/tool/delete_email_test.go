package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gm "google.golang.org/api/gmail/v1"

	"github.com/mkoval9/mailterm-mcp/internal/tool"
)

func TestDeleteEmailTrashesByDefault(t *testing.T) {
	var trashed, deleted []string
	svc := &gmailSvcMock{
		TrashFunc: func(_ context.Context, msgID string) error {
			trashed = append(trashed, msgID)
			return nil
		},
		DeleteFunc: func(_ context.Context, msgID string) error {
			deleted = append(deleted, msgID)
			return nil
		},
	}

	session := newSession(t, svc, nil, tool.Options{})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "delete_email",
		Arguments: tool.DeleteEmailRequest{MessageID: "m-042"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "delete_email failed: %v", result.Content)

	var response tool.DeleteEmailResponse
	require.NoError(t, json.Unmarshal(
		[]byte(result.Content[0].(*mcp.TextContent).Text),
		&response,
	))

	assert.Equal(t, tool.DeleteEmailResponse{Status: "trashed", ID: "m-042"}, response)
	assert.Equal(t, []string{"m-042"}, trashed)
	assert.Empty(t, deleted)
}

func TestDeleteEmailPermanent(t *testing.T) {
	var deleted []string
	svc := &gmailSvcMock{
		DeleteFunc: func(_ context.Context, msgID string) error {
			deleted = append(deleted, msgID)
			return nil
		},
	}

	session := newSession(t, svc, nil, tool.Options{PermanentDelete: true})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "delete_email",
		Arguments: tool.DeleteEmailRequest{MessageID: "m-042"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var response tool.DeleteEmailResponse
	require.NoError(t, json.Unmarshal(
		[]byte(result.Content[0].(*mcp.TextContent).Text),
		&response,
	))

	assert.Equal(t, tool.DeleteEmailResponse{Status: "deleted", ID: "m-042"}, response)
	assert.Equal(t, []string{"m-042"}, deleted)
}

func newDeleteInLabelSvc(labels []*gm.Label, messages []*gm.Message, batched *[][]string) *gmailSvcMock {
	return &gmailSvcMock{
		ListLabelsFunc: func(_ context.Context) ([]*gm.Label, error) {
			return labels, nil
		},
		ListMessagesFunc: func(_ context.Context, _ string, labelIDs []string, _ int64) (*gm.ListMessagesResponse, error) {
			return &gm.ListMessagesResponse{Messages: messages}, nil
		},
		BatchTrashFunc: func(_ context.Context, msgIDs []string) error {
			*batched = append(*batched, msgIDs)
			return nil
		},
	}
}

func TestDeleteInLabel(t *testing.T) {
	labels := []*gm.Label{
		{Id: "Label_1", Name: "Newsletters"},
		{Id: "Label_2", Name: "Receipts"},
	}

	t.Run("unknown label short-circuits", func(t *testing.T) {
		var batched [][]string
		session := newSession(t, newDeleteInLabelSvc(labels, nil, &batched), nil, tool.Options{})

		result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      "delete_emails_in_label",
			Arguments: tool.DeleteInLabelRequest{LabelName: "NoSuchLabel"},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)

		var response tool.DeleteInLabelResponse
		require.NoError(t, json.Unmarshal(
			[]byte(result.Content[0].(*mcp.TextContent).Text),
			&response,
		))

		assert.Equal(t, "Label 'NoSuchLabel' not found", response.Error)
		assert.Empty(t, batched, "no batch modify may be issued for an unknown label")
	})

	t.Run("empty label reports status", func(t *testing.T) {
		var batched [][]string
		session := newSession(t, newDeleteInLabelSvc(labels, nil, &batched), nil, tool.Options{})

		result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      "delete_emails_in_label",
			Arguments: tool.DeleteInLabelRequest{LabelName: "Receipts"},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)

		var response tool.DeleteInLabelResponse
		require.NoError(t, json.Unmarshal(
			[]byte(result.Content[0].(*mcp.TextContent).Text),
			&response,
		))

		assert.Equal(t, "no emails found under this label", response.Status)
		assert.Empty(t, batched)
	})

	t.Run("purges case-insensitively in one batch", func(t *testing.T) {
		messages := []*gm.Message{{Id: "m-1"}, {Id: "m-2"}, {Id: "m-3"}}
		var batched [][]string
		session := newSession(t, newDeleteInLabelSvc(labels, messages, &batched), nil, tool.Options{})

		result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      "delete_emails_in_label",
			Arguments: tool.DeleteInLabelRequest{LabelName: "newsletters"},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)

		var response tool.DeleteInLabelResponse
		require.NoError(t, json.Unmarshal(
			[]byte(result.Content[0].(*mcp.TextContent).Text),
			&response,
		))

		assert.Equal(t, "deleted", response.Status)
		assert.Equal(t, 3, response.Count)
		assert.Equal(t, "newsletters", response.Label)

		require.Len(t, batched, 1)
		assert.Equal(t, []string{"m-1", "m-2", "m-3"}, batched[0])
	})
}
