package models

import "time"

// AnonymousAuthor is the display name for comments left without logging in.
const AnonymousAuthor = "Anonymous"

type Comment struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	Body   string `gorm:"not null" json:"body"`
	PostID int    `gorm:"not null;index" json:"post_id"`

	// AuthorID is nil for anonymous comments.
	AuthorID *int  `json:"author_id,omitempty"`
	Author   *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AuthorName returns the display label for the comment's author.
func (c *Comment) AuthorName() string {
	if c.Author != nil {
		return c.Author.Username
	}
	return AnonymousAuthor
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// CommentRow is one row of the per-user comments report: a comment joined
// onto the authored post it was left on.
type CommentRow struct {
	PostID    int    `json:"post_id"`
	PostTitle string `json:"post_title"`
	CommentID int    `json:"comment_id"`
	Body      string `json:"body"`
}
