package blog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ankitmishra16/Blogger/internal/models"
)

type CreatePostInput struct {
	Title   string
	Content string
	Tag     string
	Theme   int
	Publish bool
}

type UpdatePostInput struct {
	Title   string
	Content string
	Tag     string
	Theme   int
}

// CreatePost persists a new post for authorID. The published flag is set at
// creation time; there is no separate draft-commit step.
func (s *Service) CreatePost(ctx context.Context, authorID int, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Tag != "" && !models.ValidTag(in.Tag) {
		return nil, fmt.Errorf("%w: unknown tag %q", ErrInvalidInput, in.Tag)
	}
	if in.Theme == 0 {
		in.Theme = 1
	}
	if !models.ValidTheme(in.Theme) {
		return nil, fmt.Errorf("%w: theme must be 1, 2 or 3", ErrInvalidInput)
	}

	post := models.Post{
		Title:     in.Title,
		Content:   in.Content,
		UserTag:   in.Tag,
		Theme:     in.Theme,
		Published: in.Publish,
		UserID:    authorID,
	}

	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.db.WithContext(ctx).Preload("User").First(&post, post.ID)
	return &post, nil
}

// GetPost returns a post by id. Unpublished drafts are visible only to their
// owner; everyone else, including anonymous viewers, gets ErrForbidden.
func (s *Service) GetPost(ctx context.Context, postID, viewerID int) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("User").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	if !post.Published && post.UserID != viewerID {
		return nil, ErrForbidden
	}
	return &post, nil
}

// UpdatePost edits title/content/tag/theme in place. Only the owner may
// update, and the published flag is never touched here.
func (s *Service) UpdatePost(ctx context.Context, postID, actorID int, in UpdatePostInput) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if post.UserID != actorID {
			return ErrForbidden
		}

		if in.Title != "" {
			post.Title = in.Title
		}
		if in.Content != "" {
			post.Content = in.Content
		}
		if in.Tag != "" {
			if !models.ValidTag(in.Tag) {
				return fmt.Errorf("%w: unknown tag %q", ErrInvalidInput, in.Tag)
			}
			post.UserTag = in.Tag
		}
		if in.Theme != 0 {
			if !models.ValidTheme(in.Theme) {
				return fmt.Errorf("%w: theme must be 1, 2 or 3", ErrInvalidInput)
			}
			post.Theme = in.Theme
		}

		if err := tx.Save(&post).Error; err != nil {
			return err
		}
		// Keep the denormalized title on the like edges in step.
		if in.Title != "" {
			if err := tx.Model(&models.PostLike{}).Where("post_id = ?", post.ID).
				Update("post_title", post.Title).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.WithContext(ctx).Preload("User").First(&post, post.ID)
	return &post, nil
}

// PublishPost flips a draft to published. Owner only. Re-publishing an
// already published post is a no-op that still reports success; unpublishing
// is not a supported transition.
func (s *Service) PublishPost(ctx context.Context, postID, actorID int) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("publish post: %w", err)
	}
	if post.UserID != actorID {
		return nil, ErrForbidden
	}
	if post.Published {
		return &post, nil
	}

	post.Published = true
	if err := s.db.WithContext(ctx).Save(&post).Error; err != nil {
		return nil, fmt.Errorf("publish post: %w", err)
	}
	return &post, nil
}

// DeletePost removes a post together with its comments and like edges in one
// transaction. Owner only.
func (s *Service) DeletePost(ctx context.Context, postID, actorID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if post.UserID != actorID {
			return ErrForbidden
		}

		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&post).Error; err != nil {
			return err
		}

		s.cache.Invalidate(ctx, topLikedKey)
		return nil
	})
}
