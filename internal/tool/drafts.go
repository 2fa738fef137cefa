package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	gm "google.golang.org/api/gmail/v1"
)

// ListDraftsResponse carries the raw draft listing.
type ListDraftsResponse struct {
	Drafts []*gm.Draft `json:"drafts" jsonschema:"raw Gmail draft records"`
}

// GetDraftRequest identifies the draft to fetch.
type GetDraftRequest struct {
	DraftID string `json:"draft_id" jsonschema:"the draft ID to retrieve"`
}

// CreateDraftRequest describes the draft to create.
type CreateDraftRequest struct {
	To      string `json:"to" jsonschema:"recipient address"`
	Subject string `json:"subject" jsonschema:"email subject"`
	Body    string `json:"body" jsonschema:"plain text body"`
}

// UpdateDraftRequest replaces a draft's message. Fields left empty stay
// empty in the replacement; drafts are replaced wholesale, not merged.
type UpdateDraftRequest struct {
	DraftID string `json:"draft_id" jsonschema:"the draft ID to update"`
	To      string `json:"to,omitempty" jsonschema:"recipient address"`
	Subject string `json:"subject,omitempty" jsonschema:"email subject"`
	Body    string `json:"body,omitempty" jsonschema:"plain text body"`
}

type draftsSvc interface {
	ListDrafts(ctx context.Context) ([]*gm.Draft, error)
	GetDraft(ctx context.Context, draftID string) (*gm.Draft, error)
	CreateDraft(ctx context.Context, raw string) (*gm.Draft, error)
	UpdateDraft(ctx context.Context, draftID, raw string) (*gm.Draft, error)
}

// NewDrafts creates the gmail.*_draft tool set.
func NewDrafts(svc draftsSvc) *Drafts {
	return &Drafts{svc: svc}
}

// Drafts exposes draft CRUD as direct API pass-throughs.
type Drafts struct {
	svc draftsSvc
}

// ListDrafts handles the gmail.list_drafts tool call.
func (t *Drafts) ListDrafts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListDraftsResponse, error) {
	drafts, err := t.svc.ListDrafts(ctx)
	if err != nil {
		return nil, ListDraftsResponse{}, fmt.Errorf("svc.ListDrafts failed: %w", err)
	}

	return nil, ListDraftsResponse{Drafts: drafts}, nil
}

// GetDraft handles the gmail.get_draft tool call.
func (t *Drafts) GetDraft(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDraftRequest,
) (*mcp.CallToolResult, *gm.Draft, error) {
	draft, err := t.svc.GetDraft(ctx, input.DraftID)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.GetDraft failed: %w", err)
	}

	return nil, draft, nil
}

// CreateDraft handles the gmail.create_draft tool call.
func (t *Drafts) CreateDraft(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateDraftRequest,
) (*mcp.CallToolResult, *gm.Draft, error) {
	draft, err := t.svc.CreateDraft(ctx, composeRaw(input.To, input.Subject, input.Body))
	if err != nil {
		return nil, nil, fmt.Errorf("svc.CreateDraft failed: %w", err)
	}

	return nil, draft, nil
}

// UpdateDraft handles the gmail.update_draft tool call.
func (t *Drafts) UpdateDraft(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateDraftRequest,
) (*mcp.CallToolResult, *gm.Draft, error) {
	draft, err := t.svc.UpdateDraft(ctx, input.DraftID, composeRaw(input.To, input.Subject, input.Body))
	if err != nil {
		return nil, nil, fmt.Errorf("svc.UpdateDraft failed: %w", err)
	}

	return nil, draft, nil
}
