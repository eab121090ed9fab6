package posts

import "time"

// Post is a startup pitch visible to authenticated users. Hidden posts are
// only visible to admins and the author's own listing.
type Post struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsHidden  bool      `json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined author fields and viewer-scoped aggregates, populated on reads.
	AuthorName    string `json:"full_name,omitempty"`
	AuthorEmail   string `json:"email,omitempty"`
	InterestCount int64  `json:"interest_count"`
	LikedByMe     bool   `json:"liked_by_me"`
}

// Interest records an investor's interest in a post.
type Interest struct {
	PostID        int64     `json:"post_id"`
	InvestorID    int64     `json:"investor_id"`
	InvestorName  string    `json:"full_name,omitempty"`
	InvestorEmail string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreatePostRequest is the pitch creation payload.
type CreatePostRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required"`
}
