package models

import "time"

type Post struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `json:"content"`
	Published bool   `gorm:"default:false" json:"published"`
	Theme     int    `gorm:"default:1" json:"theme"` // render variant: 1, 2 or 3
	UserTag   string `gorm:"index" json:"user_tag"`

	UserID int  `gorm:"not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Tag     string `json:"tag"`
	Theme   int    `json:"theme"`
	Publish bool   `json:"publish"`
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tag     string `json:"tag"`
	Theme   int    `json:"theme"`
}

// PostLikeCount is one row of the most-liked aggregate.
type PostLikeCount struct {
	PostID int    `json:"post_id"`
	Title  string `json:"title"`
	Count  int64  `json:"count"`
}
