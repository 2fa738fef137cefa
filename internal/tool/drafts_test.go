package tool_test

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gm "google.golang.org/api/gmail/v1"

	"github.com/mkoval9/mailterm-mcp/internal/tool"
)

func TestDraftTools(t *testing.T) {
	var createdRaw string
	var updatedDraftID, updatedRaw string

	svc := &gmailSvcMock{
		ListDraftsFunc: func(_ context.Context) ([]*gm.Draft, error) {
			return []*gm.Draft{{Id: "d-1"}, {Id: "d-2"}}, nil
		},
		GetDraftFunc: func(_ context.Context, draftID string) (*gm.Draft, error) {
			return &gm.Draft{Id: draftID, Message: &gm.Message{Id: "m-" + draftID}}, nil
		},
		CreateDraftFunc: func(_ context.Context, raw string) (*gm.Draft, error) {
			createdRaw = raw
			return &gm.Draft{Id: "d-new"}, nil
		},
		UpdateDraftFunc: func(_ context.Context, draftID, raw string) (*gm.Draft, error) {
			updatedDraftID = draftID
			updatedRaw = raw
			return &gm.Draft{Id: draftID}, nil
		},
	}

	session := newSession(t, svc, nil, tool.Options{})
	ctx := context.Background()

	t.Run("list and get", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "gmail.list_drafts",
			Arguments: struct{}{},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)

		result, err = session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "gmail.get_draft",
			Arguments: tool.GetDraftRequest{DraftID: "d-2"},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)
	})

	t.Run("create composes raw payload", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "gmail.create_draft",
			Arguments: tool.CreateDraftRequest{
				To:      "receiver@example.com",
				Subject: "Draft subject",
				Body:    "draft body",
			},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)

		decoded, err := base64.URLEncoding.DecodeString(createdRaw)
		require.NoError(t, err)
		assert.Contains(t, string(decoded), "Subject: Draft subject\r\n")
	})

	t.Run("update replaces the draft message", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "gmail.update_draft",
			Arguments: tool.UpdateDraftRequest{
				DraftID: "d-2",
				To:      "other@example.com",
				Subject: "Updated",
				Body:    "updated body",
			},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)

		assert.Equal(t, "d-2", updatedDraftID)

		decoded, err := base64.URLEncoding.DecodeString(updatedRaw)
		require.NoError(t, err)
		assert.Contains(t, string(decoded), "To: other@example.com\r\n")
	})
}
