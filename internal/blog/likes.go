package blog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ankitmishra16/Blogger/internal/models"
)

// Like records the (user, post) like edge. The insert rides on the composite
// unique index with ON CONFLICT DO NOTHING, so a second like — including two
// racing ones — leaves exactly one row and still succeeds.
func (s *Service) Like(ctx context.Context, userID, postID int) error {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("like: %w", err)
	}

	like := models.PostLike{
		UserID:    userID,
		PostID:    post.ID,
		PostTitle: post.Title,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
	if err != nil {
		return fmt.Errorf("like: %w", err)
	}

	s.cache.Invalidate(ctx, topLikedKey)
	return nil
}

// Unlike removes the like edge if present. A missing edge is a no-op, not an
// error.
func (s *Service) Unlike(ctx context.Context, userID, postID int) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.PostLike{}).Error
	if err != nil {
		return fmt.Errorf("unlike: %w", err)
	}

	s.cache.Invalidate(ctx, topLikedKey)
	return nil
}

// LikeCount returns the number of like edges on a post.
func (s *Service) LikeCount(ctx context.Context, postID int) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("like count: %w", err)
	}
	return count, nil
}

// Liked reports whether userID has liked postID.
func (s *Service) Liked(ctx context.Context, userID, postID int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("liked: %w", err)
	}
	return count > 0, nil
}
