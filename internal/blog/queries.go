package blog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ankitmishra16/Blogger/internal/models"
)

const topLikedKey = "blog:top_liked"

// DefaultTopLimit matches the home page's most-liked sidebar.
const DefaultTopLimit = 5

// Visibility filters a post listing by publish state.
type Visibility string

const (
	VisibilityAll         Visibility = "all"
	VisibilityPublished   Visibility = "published"
	VisibilityUnpublished Visibility = "unpublished"
)

type ListFilter struct {
	Visibility Visibility
	AuthorID   int // 0 = any author
	Page       int
	PageSize   int
}

type PostPage struct {
	Items    []models.Post `json:"items"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Total    int64         `json:"total"`
}

// TopLikedPosts returns up to limit posts with at least one like, most liked
// first. Ties break on ascending post id. The result is served from the
// cache when one is configured; likes and unlikes invalidate it.
func (s *Service) TopLikedPosts(ctx context.Context, limit int) ([]models.PostLikeCount, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	var rows []models.PostLikeCount
	if limit == DefaultTopLimit && s.cache.Get(ctx, topLikedKey, &rows) {
		return rows, nil
	}

	err := s.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Select("post_id, post_title as title, count(post_id) as count").
		Group("post_id, post_title").
		Having("count(post_id) > 0").
		Order("count desc, post_id asc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("top liked posts: %w", err)
	}
	if rows == nil {
		rows = []models.PostLikeCount{}
	}

	if limit == DefaultTopLimit {
		s.cache.Set(ctx, topLikedKey, rows)
	}
	return rows, nil
}

// ListPosts returns one offset-based page of posts, newest first.
func (s *Service) ListPosts(ctx context.Context, f ListFilter) (*PostPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 6
	}

	q := s.db.WithContext(ctx).Model(&models.Post{})
	switch f.Visibility {
	case VisibilityPublished:
		q = q.Where("published = ?", true)
	case VisibilityUnpublished:
		q = q.Where("published = ?", false)
	case VisibilityAll, "":
	default:
		return nil, fmt.Errorf("%w: unknown visibility %q", ErrInvalidInput, f.Visibility)
	}
	if f.AuthorID != 0 {
		q = q.Where("user_id = ?", f.AuthorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	var posts []models.Post
	err := q.Preload("User").
		Order("created_at desc").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}

	return &PostPage{Items: posts, Page: f.Page, PageSize: f.PageSize, Total: total}, nil
}

// SearchByTag returns all posts carrying the exact tag, ordered by id so the
// result is deterministic.
func (s *Service) SearchByTag(ctx context.Context, tag string) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("user_tag = ?", tag).
		Order("id asc").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("search by tag: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// CommentsReport joins comments onto the named user's authored posts.
// Anonymous comments carry no author linkage and are left out of the report.
func (s *Service) CommentsReport(ctx context.Context, username string) ([]models.CommentRow, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("comments report: %w", err)
	}

	var rows []models.CommentRow
	err := s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("posts.id as post_id, posts.title as post_title, comments.id as comment_id, comments.body").
		Joins("INNER JOIN posts ON posts.id = comments.post_id").
		Where("posts.user_id = ? AND comments.author_id IS NOT NULL", user.ID).
		Order("posts.id asc, comments.id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("comments report: %w", err)
	}
	if rows == nil {
		rows = []models.CommentRow{}
	}
	return rows, nil
}
