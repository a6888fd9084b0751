package models

import "time"

// PostLike is the like edge between a user and a post. Presence means liked;
// unliking deletes the row. The composite unique index keeps double-clicks
// from recording the same edge twice.
type PostLike struct {
	ID     int `gorm:"primaryKey" json:"id"`
	UserID int `gorm:"not null;uniqueIndex:idx_post_likes_user_post" json:"user_id"`
	PostID int `gorm:"not null;uniqueIndex:idx_post_likes_user_post" json:"post_id"`

	// PostTitle is denormalized so the most-liked aggregate groups without a join.
	PostTitle string `json:"post_title"`

	CreatedAt time.Time `json:"created_at"`
}
