package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	gm "google.golang.org/api/gmail/v1"
)

// ListLabelsResponse carries the raw label listing.
type ListLabelsResponse struct {
	Labels []*gm.Label `json:"labels" jsonschema:"raw Gmail label records"`
}

// CreateLabelRequest names the label to create.
type CreateLabelRequest struct {
	Name string `json:"name" jsonschema:"label name"`
}

// UpdateLabelRequest renames an existing label.
type UpdateLabelRequest struct {
	LabelID string `json:"label_id" jsonschema:"the label ID to update"`
	NewName string `json:"new_name,omitempty" jsonschema:"new label name"`
}

// DeleteLabelRequest identifies the label to delete.
type DeleteLabelRequest struct {
	LabelID string `json:"label_id" jsonschema:"the label ID to delete"`
}

// DeleteLabelResponse confirms label deletion.
type DeleteLabelResponse struct {
	Status string `json:"status" jsonschema:"always deleted"`
	ID     string `json:"id" jsonschema:"the removed label ID"`
}

type labelsSvc interface {
	ListLabels(ctx context.Context) ([]*gm.Label, error)
	CreateLabel(ctx context.Context, label *gm.Label) (*gm.Label, error)
	UpdateLabel(ctx context.Context, labelID string, label *gm.Label) (*gm.Label, error)
	DeleteLabel(ctx context.Context, labelID string) error
}

// NewLabels creates the gmail.*_label tool set.
func NewLabels(svc labelsSvc) *Labels {
	return &Labels{svc: svc}
}

// Labels exposes label CRUD as direct API pass-throughs.
type Labels struct {
	svc labelsSvc
}

// ListLabels handles the gmail.list_labels tool call.
func (t *Labels) ListLabels(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListLabelsResponse, error) {
	labels, err := t.svc.ListLabels(ctx)
	if err != nil {
		return nil, ListLabelsResponse{}, fmt.Errorf("svc.ListLabels failed: %w", err)
	}

	return nil, ListLabelsResponse{Labels: labels}, nil
}

// CreateLabel handles the gmail.create_label tool call.
func (t *Labels) CreateLabel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateLabelRequest,
) (*mcp.CallToolResult, *gm.Label, error) {
	label, err := t.svc.CreateLabel(ctx, &gm.Label{
		Name:                  input.Name,
		LabelListVisibility:   "labelShow",
		MessageListVisibility: "show",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("svc.CreateLabel failed: %w", err)
	}

	return nil, label, nil
}

// UpdateLabel handles the gmail.update_label tool call.
func (t *Labels) UpdateLabel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateLabelRequest,
) (*mcp.CallToolResult, *gm.Label, error) {
	patch := &gm.Label{}
	if input.NewName != "" {
		patch.Name = input.NewName
	}

	label, err := t.svc.UpdateLabel(ctx, input.LabelID, patch)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.UpdateLabel failed: %w", err)
	}

	return nil, label, nil
}

// DeleteLabel handles the gmail.delete_label tool call.
func (t *Labels) DeleteLabel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteLabelRequest,
) (*mcp.CallToolResult, DeleteLabelResponse, error) {
	if err := t.svc.DeleteLabel(ctx, input.LabelID); err != nil {
		return nil, DeleteLabelResponse{}, fmt.Errorf("svc.DeleteLabel failed: %w", err)
	}

	return nil, DeleteLabelResponse{Status: "deleted", ID: input.LabelID}, nil
}
