package blog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ankitmishra16/Blogger/internal/models"
)

// AddComment appends a comment to a post. authorID is nil for anonymous
// commenters; the display name is then "Anonymous" and no user linkage is
// stored. Comments are immutable once created.
func (s *Service) AddComment(ctx context.Context, postID int, body string, authorID *int) (*models.Comment, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: comment body is required", ErrInvalidInput)
	}

	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("add comment: %w", err)
	}

	comment := models.Comment{
		Body:     body,
		PostID:   post.ID,
		AuthorID: authorID,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	if authorID != nil {
		s.db.WithContext(ctx).Preload("Author").First(&comment, comment.ID)
	}
	return &comment, nil
}

// PostComments lists a post's comments, oldest first.
func (s *Service) PostComments(ctx context.Context, postID int) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
