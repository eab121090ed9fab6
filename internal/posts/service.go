package posts

import (
	"context"
	"fmt"
	"strings"

	"github.com/venturehub/venturehub/internal/accounts"
	"github.com/venturehub/venturehub/internal/platform/httpx"
	"github.com/venturehub/venturehub/internal/shared"
)

// Service handles post business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Feed returns the post feed for a viewer. Admins also see hidden posts.
func (s *Service) Feed(ctx context.Context, viewer *accounts.User) ([]Post, error) {
	includeHidden := viewer.Role == shared.RoleAdmin
	return s.repo.ListFeed(ctx, viewer.ID, includeHidden)
}

// Mine returns the author's own posts, hidden ones included.
func (s *Service) Mine(ctx context.Context, authorID int64) ([]Post, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

// Create publishes a new pitch.
func (s *Service) Create(ctx context.Context, authorID int64, req CreatePostRequest) (*Post, error) {
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)
	if title == "" || body == "" {
		return nil, fmt.Errorf("%w: title and body required", httpx.ErrValidation)
	}
	return s.repo.Create(ctx, authorID, title, body)
}

// SetHidden hides or unhides a post (moderation).
func (s *Service) SetHidden(ctx context.Context, id int64, hidden bool) (*Post, error) {
	return s.repo.SetHidden(ctx, id, hidden)
}

// Delete removes a post (moderation).
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Save bookmarks a post for an investor; idempotent.
func (s *Service) Save(ctx context.Context, userID, postID int64) error {
	return s.repo.Save(ctx, userID, postID)
}

// Unsave removes a bookmark; idempotent.
func (s *Service) Unsave(ctx context.Context, userID, postID int64) error {
	return s.repo.Unsave(ctx, userID, postID)
}

// Saved lists an investor's bookmarks.
func (s *Service) Saved(ctx context.Context, userID int64) ([]Post, error) {
	return s.repo.ListSaved(ctx, userID)
}

// ToggleInterest flips the investor's interest in a post and reports the
// resulting state.
func (s *Service) ToggleInterest(ctx context.Context, postID, investorID int64) (bool, error) {
	liked, err := s.repo.HasInterest(ctx, postID, investorID)
	if err != nil {
		return false, err
	}
	if liked {
		if err := s.repo.RemoveInterest(ctx, postID, investorID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.repo.AddInterest(ctx, postID, investorID); err != nil {
		return false, err
	}
	return true, nil
}

// WithdrawInterest removes the investor's interest; idempotent.
func (s *Service) WithdrawInterest(ctx context.Context, postID, investorID int64) error {
	return s.repo.RemoveInterest(ctx, postID, investorID)
}

// InterestsForAuthor lists interests across the author's posts.
func (s *Service) InterestsForAuthor(ctx context.Context, authorID int64) ([]Interest, error) {
	return s.repo.ListInterestsByAuthor(ctx, authorID)
}

// InterestsForPost lists investors interested in one post.
func (s *Service) InterestsForPost(ctx context.Context, postID int64) ([]Interest, error) {
	return s.repo.ListInterestsByPost(ctx, postID)
}
