// Package gmail wraps the Gmail REST API behind a stateful adapter that
// authenticates lazily on first use and caches the API handle for the
// lifetime of the process.
package gmail

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
	gm "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mkoval9/mailterm-mcp/internal/auth"
)

const userID = "me"

// Service is the Gmail adapter. The underlying API handle is constructed
// on the first operation and reused afterwards; the lazy write is guarded
// so concurrent first calls build it exactly once.
type Service struct {
	cfg *oauth2.Config
	tok *auth.Token

	mu  sync.Mutex
	svc *gm.Service
}

// NewService creates an unauthenticated adapter. No network traffic happens
// until the first operation.
func NewService(cfg *oauth2.Config, tok *auth.Token) *Service {
	return &Service{
		cfg: cfg,
		tok: tok,
	}
}

func (s *Service) api(ctx context.Context) (*gm.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.svc != nil {
		return s.svc, nil
	}

	t, err := s.tok.OAuthToken()
	if err != nil {
		return nil, fmt.Errorf("tok.OAuthToken failed: %w", err)
	}

	clt := s.cfg.Client(ctx, t)

	svc, err := gm.NewService(ctx, option.WithHTTPClient(clt))
	if err != nil {
		return nil, fmt.Errorf("gmail.NewService failed: %w", err)
	}
	s.svc = svc

	return svc, nil
}

// ListMessages lists message ids matching the query and/or label ids.
func (s *Service) ListMessages(ctx context.Context, query string, labelIDs []string, maxResults int64) (*gm.ListMessagesResponse, error) {
	svc, err := s.api(ctx)
	if err != nil {
		return nil, fmt.Errorf("api failed: %w", err)
	}

	call := svc.Users.Messages.List(userID).Context(ctx)
	if query != "" {
		call = call.Q(query)
	}
	if len(labelIDs) > 0 {
		call = call.LabelIds(labelIDs...)
	}
	if maxResults > 0 {
		call = call.MaxResults(maxResults)
	}

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("messages.List failed: %w", err)
	}

	return result, nil
}

// GetMessageMetadata fetches headers and snippet for a single message.
func (s *Service) GetMessageMetadata(ctx context.Context, msgID string) (*gm.Message, error) {
	svc, err := s.api(ctx)
	if err != nil {
		return nil, fmt.Errorf("api failed: %w", err)
	}

	msg, err := svc.Users.Messages.Get(userID, msgID).
		Format("METADATA").
		MetadataHeaders("From", "To", "Subject", "Date").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("messages.Get failed: %w", err)
	}

	return msg, nil
}

// GetMessage fetches the full message including the MIME part tree.
func (s *Service) GetMessage(ctx context.Context, msgID string) (*gm.Message, error) {
	svc, err := s.api(ctx)
	if err != nil {
		return nil, fmt.Errorf("api failed: %w", err)
	}

	msg, err := svc.Users.Messages.Get(userID, msgID).Format("FULL").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("messages.Get failed: %w", err)
	}

	return msg, nil
}

// Send submits a base64url-encoded RFC 2822 payload.
func (s *Service) Send(ctx context.Context, raw string) (*gm.Message, error) {
	svc, err := s.api(ctx)
	if err != nil {
		return nil, fmt.Errorf("api failed: %w", err)
	}

	msg, err := svc.Users.Messages.Send(userID, &gm.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("messages.Send failed: %w", err)
	}

	return msg, nil
}

// Trash moves a message to the trash, which is reversible.
func (s *Service) Trash(ctx context.Context, msgID string) error {
	svc, err := s.api(ctx)
	if err != nil {
		return fmt.Errorf("api failed: %w", err)
	}

	if _, err := svc.Users.Messages.Trash(userID, msgID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("messages.Trash failed: %w", err)
	}

	return nil
}

// Delete permanently removes a message, bypassing the trash.
func (s *Service) Delete(ctx context.Context, msgID string) error {
	svc, err := s.api(ctx)
	if err != nil {
		return fmt.Errorf("api failed: %w", err)
	}

	if err := svc.Users.Messages.Delete(userID, msgID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("messages.Delete failed: %w", err)
	}

	return nil
}

// BatchTrash adds the TRASH label to every given message id in one call.
func (s *Service) BatchTrash(ctx context.Context, msgIDs []string) error {
	svc, err := s.api(ctx)
	if err != nil {
		return fmt.Errorf("api failed: %w", err)
	}

	req := &gm.BatchModifyMessagesRequest{
		Ids:            msgIDs,
		AddLabelIds:    []string{"TRASH"},
		RemoveLabelIds: []string{},
	}
	if err := svc.Users.Messages.BatchModify(userID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("messages.BatchModify failed: %w", err)
	}

	return nil
}
