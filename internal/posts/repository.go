package posts

import "context"

// RepositoryPort defines data access methods for posts, saves and
// interests.
type RepositoryPort interface {
	ListFeed(ctx context.Context, viewerID int64, includeHidden bool) ([]Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]Post, error)
	Create(ctx context.Context, authorID int64, title, body string) (*Post, error)
	SetHidden(ctx context.Context, id int64, hidden bool) (*Post, error)
	Delete(ctx context.Context, id int64) error

	Save(ctx context.Context, userID, postID int64) error
	Unsave(ctx context.Context, userID, postID int64) error
	ListSaved(ctx context.Context, userID int64) ([]Post, error)

	HasInterest(ctx context.Context, postID, investorID int64) (bool, error)
	AddInterest(ctx context.Context, postID, investorID int64) error
	RemoveInterest(ctx context.Context, postID, investorID int64) error
	ListInterestsByAuthor(ctx context.Context, authorID int64) ([]Interest, error)
	ListInterestsByPost(ctx context.Context, postID int64) ([]Interest, error)
}
