package gmail

import (
	"context"
	"fmt"

	gm "google.golang.org/api/gmail/v1"
)

// ListLabels returns every label on the account.
func (s *Service) ListLabels(ctx context.Context) ([]*gm.Label, error) {
	svc, err := s.api(ctx)
	if err != nil {
		return nil, fmt.Errorf("api failed: %w", err)
	}

	result, err := svc.Users.Labels.List(userID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("labels.List failed: %w", err)
	}

	return result.Labels, nil
}

// CreateLabel creates a user label with the given visibility settings.
func (s *Service) CreateLabel(ctx context.Context, label *gm.Label) (*gm.Label, error) {
	svc, err := s.api(ctx)
	if err != nil {
		return nil, fmt.Errorf("api failed: %w", err)
	}

	created, err := svc.Users.Labels.Create(userID, label).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("labels.Create failed: %w", err)
	}

	return created, nil
}

// UpdateLabel applies the non-empty fields of label to an existing label.
func (s *Service) UpdateLabel(ctx context.Context, labelID string, label *gm.Label) (*gm.Label, error) {
	svc, err := s.api(ctx)
	if err != nil {
		return nil, fmt.Errorf("api failed: %w", err)
	}

	updated, err := svc.Users.Labels.Update(userID, labelID, label).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("labels.Update failed: %w", err)
	}

	return updated, nil
}

// DeleteLabel removes a user label.
func (s *Service) DeleteLabel(ctx context.Context, labelID string) error {
	svc, err := s.api(ctx)
	if err != nil {
		return fmt.Errorf("api failed: %w", err)
	}

	if err := svc.Users.Labels.Delete(userID, labelID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("labels.Delete failed: %w", err)
	}

	return nil
}
