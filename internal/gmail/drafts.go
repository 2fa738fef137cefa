package gmail

import (
	"context"
	"fmt"

	gm "google.golang.org/api/gmail/v1"
)

// ListDrafts returns the draft listing for the account.
func (s *Service) ListDrafts(ctx context.Context) ([]*gm.Draft, error) {
	svc, err := s.api(ctx)
	if err != nil {
		return nil, fmt.Errorf("api failed: %w", err)
	}

	result, err := svc.Users.Drafts.List(userID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("drafts.List failed: %w", err)
	}

	return result.Drafts, nil
}

// GetDraft fetches a single draft including its message.
func (s *Service) GetDraft(ctx context.Context, draftID string) (*gm.Draft, error) {
	svc, err := s.api(ctx)
	if err != nil {
		return nil, fmt.Errorf("api failed: %w", err)
	}

	draft, err := svc.Users.Drafts.Get(userID, draftID).Format("FULL").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("drafts.Get failed: %w", err)
	}

	return draft, nil
}

// CreateDraft creates a draft from a base64url-encoded RFC 2822 payload.
func (s *Service) CreateDraft(ctx context.Context, raw string) (*gm.Draft, error) {
	svc, err := s.api(ctx)
	if err != nil {
		return nil, fmt.Errorf("api failed: %w", err)
	}

	draft, err := svc.Users.Drafts.Create(userID, &gm.Draft{
		Message: &gm.Message{Raw: raw},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("drafts.Create failed: %w", err)
	}

	return draft, nil
}

// UpdateDraft replaces the message of an existing draft.
func (s *Service) UpdateDraft(ctx context.Context, draftID, raw string) (*gm.Draft, error) {
	svc, err := s.api(ctx)
	if err != nil {
		return nil, fmt.Errorf("api failed: %w", err)
	}

	draft, err := svc.Users.Drafts.Update(userID, draftID, &gm.Draft{
		Message: &gm.Message{Raw: raw},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("drafts.Update failed: %w", err)
	}

	return draft, nil
}
