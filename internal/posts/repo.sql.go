package posts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/venturehub/venturehub/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence for posts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ RepositoryPort = (*Repository)(nil)

const feedQuery = `
	SELECT p.id, p.author_id, p.title, p.body, p.is_hidden, p.created_at, p.updated_at,
		u.full_name, u.email,
		(SELECT COUNT(*) FROM post_interests i WHERE i.post_id = p.id) AS interest_count,
		EXISTS (SELECT 1 FROM post_interests i WHERE i.post_id = p.id AND i.investor_id = $1) AS liked_by_me
	FROM posts p
	JOIN users u ON u.id = p.author_id
	%s
	ORDER BY p.created_at DESC`

// ListFeed returns the post feed with author fields and viewer-scoped
// interest aggregates. Hidden posts are filtered unless includeHidden.
func (r *Repository) ListFeed(ctx context.Context, viewerID int64, includeHidden bool) ([]Post, error) {
	where := "WHERE p.is_hidden = FALSE"
	if includeHidden {
		where = ""
	}
	rows, err := r.pool.Query(ctx, fmt.Sprintf(feedQuery, where), viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFeed(rows)
}

// ListByAuthor returns the author's own posts, hidden ones included.
func (r *Repository) ListByAuthor(ctx context.Context, authorID int64) ([]Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, author_id, title, body, is_hidden, created_at, updated_at
		FROM posts WHERE author_id = $1 ORDER BY created_at DESC`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

// Create inserts a new post.
func (r *Repository) Create(ctx context.Context, authorID int64, title, body string) (*Post, error) {
	var post Post
	err := r.pool.QueryRow(ctx, `
		INSERT INTO posts (author_id, title, body)
		VALUES ($1, $2, $3)
		RETURNING id, author_id, title, body, is_hidden, created_at, updated_at`,
		authorID, title, body).
		Scan(&post.ID, &post.AuthorID, &post.Title, &post.Body, &post.IsHidden, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SetHidden hides or unhides a post.
func (r *Repository) SetHidden(ctx context.Context, id int64, hidden bool) (*Post, error) {
	var post Post
	err := r.pool.QueryRow(ctx, `
		UPDATE posts SET is_hidden = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, author_id, title, body, is_hidden, created_at, updated_at`,
		id, hidden).
		Scan(&post.ID, &post.AuthorID, &post.Title, &post.Body, &post.IsHidden, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Delete removes a post.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// Save bookmarks a post; saving twice is a no-op.
func (r *Repository) Save(ctx context.Context, userID, postID int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO saved_posts (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING`, userID, postID)
	return err
}

// Unsave removes a bookmark.
func (r *Repository) Unsave(ctx context.Context, userID, postID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM saved_posts WHERE user_id = $1 AND post_id = $2`, userID, postID)
	return err
}

// ListSaved returns the user's bookmarked posts, most recently saved first.
func (r *Repository) ListSaved(ctx context.Context, userID int64) ([]Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.author_id, p.title, p.body, p.is_hidden, p.created_at, p.updated_at,
			u.full_name, u.email
		FROM saved_posts s
		JOIN posts p ON p.id = s.post_id
		JOIN users u ON u.id = p.author_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Post
	for rows.Next() {
		var post Post
		var name *string
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Title, &post.Body, &post.IsHidden,
			&post.CreatedAt, &post.UpdatedAt, &name, &post.AuthorEmail); err != nil {
			return nil, err
		}
		if name != nil {
			post.AuthorName = *name
		}
		result = append(result, post)
	}
	return result, rows.Err()
}

// HasInterest reports whether the investor already expressed interest.
func (r *Repository) HasInterest(ctx context.Context, postID, investorID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM post_interests WHERE post_id = $1 AND investor_id = $2)`,
		postID, investorID).Scan(&exists)
	return exists, err
}

// AddInterest records an investor's interest.
func (r *Repository) AddInterest(ctx context.Context, postID, investorID int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO post_interests (post_id, investor_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, investor_id) DO NOTHING`, postID, investorID)
	return err
}

// RemoveInterest withdraws an investor's interest.
func (r *Repository) RemoveInterest(ctx context.Context, postID, investorID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM post_interests WHERE post_id = $1 AND investor_id = $2`, postID, investorID)
	return err
}

// ListInterestsByAuthor returns interests across all of the author's posts.
func (r *Repository) ListInterestsByAuthor(ctx context.Context, authorID int64) ([]Interest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.post_id, u.id, u.full_name, u.email, i.created_at
		FROM post_interests i
		JOIN posts p ON p.id = i.post_id
		JOIN users u ON u.id = i.investor_id
		WHERE p.author_id = $1
		ORDER BY i.created_at DESC`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInterests(rows)
}

// ListInterestsByPost returns the investors interested in one post.
func (r *Repository) ListInterestsByPost(ctx context.Context, postID int64) ([]Interest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.post_id, u.id, u.full_name, u.email, i.created_at
		FROM post_interests i
		JOIN users u ON u.id = i.investor_id
		WHERE i.post_id = $1
		ORDER BY i.created_at DESC`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInterests(rows)
}

func scanFeed(rows pgx.Rows) ([]Post, error) {
	var result []Post
	for rows.Next() {
		var post Post
		var name *string
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Title, &post.Body, &post.IsHidden,
			&post.CreatedAt, &post.UpdatedAt, &name, &post.AuthorEmail,
			&post.InterestCount, &post.LikedByMe); err != nil {
			return nil, err
		}
		if name != nil {
			post.AuthorName = *name
		}
		result = append(result, post)
	}
	return result, rows.Err()
}

func scanPosts(rows pgx.Rows) ([]Post, error) {
	var result []Post
	for rows.Next() {
		var post Post
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Title, &post.Body, &post.IsHidden,
			&post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	return result, rows.Err()
}

func scanInterests(rows pgx.Rows) ([]Interest, error) {
	var result []Interest
	for rows.Next() {
		var entry Interest
		var name *string
		if err := rows.Scan(&entry.PostID, &entry.InvestorID, &name, &entry.InvestorEmail, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if name != nil {
			entry.InvestorName = *name
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
