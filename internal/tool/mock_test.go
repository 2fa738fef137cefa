package tool_test

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	gm "google.golang.org/api/gmail/v1"

	"github.com/mkoval9/mailterm-mcp/internal/tool"
)

// gmailSvcMock implements the tool package's adapter interfaces with
// configurable func fields; unset funcs fail the calling test through a
// panic.
type gmailSvcMock struct {
	ListMessagesFunc       func(ctx context.Context, query string, labelIDs []string, maxResults int64) (*gm.ListMessagesResponse, error)
	GetMessageMetadataFunc func(ctx context.Context, msgID string) (*gm.Message, error)
	GetMessageFunc         func(ctx context.Context, msgID string) (*gm.Message, error)
	SendFunc               func(ctx context.Context, raw string) (*gm.Message, error)
	TrashFunc              func(ctx context.Context, msgID string) error
	DeleteFunc             func(ctx context.Context, msgID string) error
	BatchTrashFunc         func(ctx context.Context, msgIDs []string) error
	ListLabelsFunc         func(ctx context.Context) ([]*gm.Label, error)
	CreateLabelFunc        func(ctx context.Context, label *gm.Label) (*gm.Label, error)
	UpdateLabelFunc        func(ctx context.Context, labelID string, label *gm.Label) (*gm.Label, error)
	DeleteLabelFunc        func(ctx context.Context, labelID string) error
	ListDraftsFunc         func(ctx context.Context) ([]*gm.Draft, error)
	GetDraftFunc           func(ctx context.Context, draftID string) (*gm.Draft, error)
	CreateDraftFunc        func(ctx context.Context, raw string) (*gm.Draft, error)
	UpdateDraftFunc        func(ctx context.Context, draftID, raw string) (*gm.Draft, error)
}

func (m *gmailSvcMock) ListMessages(ctx context.Context, query string, labelIDs []string, maxResults int64) (*gm.ListMessagesResponse, error) {
	return m.ListMessagesFunc(ctx, query, labelIDs, maxResults)
}

func (m *gmailSvcMock) GetMessageMetadata(ctx context.Context, msgID string) (*gm.Message, error) {
	return m.GetMessageMetadataFunc(ctx, msgID)
}

func (m *gmailSvcMock) GetMessage(ctx context.Context, msgID string) (*gm.Message, error) {
	return m.GetMessageFunc(ctx, msgID)
}

func (m *gmailSvcMock) Send(ctx context.Context, raw string) (*gm.Message, error) {
	return m.SendFunc(ctx, raw)
}

func (m *gmailSvcMock) Trash(ctx context.Context, msgID string) error {
	return m.TrashFunc(ctx, msgID)
}

func (m *gmailSvcMock) Delete(ctx context.Context, msgID string) error {
	return m.DeleteFunc(ctx, msgID)
}

func (m *gmailSvcMock) BatchTrash(ctx context.Context, msgIDs []string) error {
	return m.BatchTrashFunc(ctx, msgIDs)
}

func (m *gmailSvcMock) ListLabels(ctx context.Context) ([]*gm.Label, error) {
	return m.ListLabelsFunc(ctx)
}

func (m *gmailSvcMock) CreateLabel(ctx context.Context, label *gm.Label) (*gm.Label, error) {
	return m.CreateLabelFunc(ctx, label)
}

func (m *gmailSvcMock) UpdateLabel(ctx context.Context, labelID string, label *gm.Label) (*gm.Label, error) {
	return m.UpdateLabelFunc(ctx, labelID, label)
}

func (m *gmailSvcMock) DeleteLabel(ctx context.Context, labelID string) error {
	return m.DeleteLabelFunc(ctx, labelID)
}

func (m *gmailSvcMock) ListDrafts(ctx context.Context) ([]*gm.Draft, error) {
	return m.ListDraftsFunc(ctx)
}

func (m *gmailSvcMock) GetDraft(ctx context.Context, draftID string) (*gm.Draft, error) {
	return m.GetDraftFunc(ctx, draftID)
}

func (m *gmailSvcMock) CreateDraft(ctx context.Context, raw string) (*gm.Draft, error) {
	return m.CreateDraftFunc(ctx, raw)
}

func (m *gmailSvcMock) UpdateDraft(ctx context.Context, draftID, raw string) (*gm.Draft, error) {
	return m.UpdateDraftFunc(ctx, draftID, raw)
}

type runnerMock struct {
	RunFunc func(ctx context.Context, command string) string
}

func (m *runnerMock) Run(ctx context.Context, command string) string {
	return m.RunFunc(ctx, command)
}

// newSession wires the tool server and a client over in-memory transports
// and returns the connected client session.
func newSession(t *testing.T, svc *gmailSvcMock, run *runnerMock, opts tool.Options) *mcp.ClientSession {
	t.Helper()

	if run == nil {
		run = &runnerMock{RunFunc: func(_ context.Context, _ string) string { return "" }}
	}

	server := tool.NewServer(svc, run, opts)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}
