package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ankitmishra16/Blogger/internal/blog"
	"github.com/ankitmishra16/Blogger/internal/middleware"
	"github.com/ankitmishra16/Blogger/internal/models"
)

type PostHandler struct {
	svc *blog.Service
}

func NewPostHandler(svc *blog.Service) *PostHandler {
	return &PostHandler{svc: svc}
}

// Home returns the published feed page plus the most-liked sidebar.
func (h *PostHandler) Home(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	posts, err := h.svc.ListPosts(c.Request.Context(), blog.ListFilter{
		Visibility: blog.VisibilityPublished,
		Page:       page,
		PageSize:   6,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	top, err := h.svc.TopLikedPosts(c.Request.Context(), blog.DefaultTopLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":     posts,
		"top_liked": top,
	})
}

// GetPost returns a single post with its comments and like count. Drafts are
// only visible to their owner.
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	viewerID, _ := middleware.UserID(c)

	post, err := h.svc.GetPost(c.Request.Context(), postID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.svc.PostComments(c.Request.Context(), post.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	likeCount, err := h.svc.LikeCount(c.Request.Context(), post.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	liked := false
	if viewerID != blog.Anonymous {
		liked, _ = h.svc.Liked(c.Request.Context(), viewerID, post.ID)
	}

	commentViews := make([]gin.H, 0, len(comments))
	for i := range comments {
		commentViews = append(commentViews, gin.H{
			"id":         comments[i].ID,
			"body":       comments[i].Body,
			"author":     comments[i].AuthorName(),
			"created_at": comments[i].CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"post":       post,
		"theme":      post.Theme,
		"comments":   commentViews,
		"like_count": likeCount,
		"liked":      liked,
	})
}

// CreatePost creates a new post, as draft or published depending on input.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	post, err := h.svc.CreatePost(c.Request.Context(), userID, blog.CreatePostInput{
		Title:   input.Title,
		Content: input.Content,
		Tag:     input.Tag,
		Theme:   input.Theme,
		Publish: input.Publish,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost edits a post in place (owner only).
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var input models.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.svc.UpdatePost(c.Request.Context(), postID, userID, blog.UpdatePostInput{
		Title:   input.Title,
		Content: input.Content,
		Tag:     input.Tag,
		Theme:   input.Theme,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// PublishPost flips a draft to published (owner only, idempotent).
func (h *PostHandler) PublishPost(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := h.svc.PublishPost(c.Request.Context(), postID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your post has been published!", "post": post})
}

// DeletePost deletes a post along with its comments and likes (owner only).
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := h.svc.DeletePost(c.Request.Context(), postID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your post has been deleted!"})
}

// LikePost records the caller's like on a post. Liking twice is a no-op.
func (h *PostHandler) LikePost(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := h.svc.Like(c.Request.Context(), userID, postID); err != nil {
		respondError(c, err)
		return
	}

	count, _ := h.svc.LikeCount(c.Request.Context(), postID)
	c.JSON(http.StatusOK, gin.H{"message": "Liked", "like_count": count})
}

// UnlikePost removes the caller's like. Unliking a post that was never liked
// is still a success.
func (h *PostHandler) UnlikePost(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := h.svc.Unlike(c.Request.Context(), userID, postID); err != nil {
		respondError(c, err)
		return
	}

	count, _ := h.svc.LikeCount(c.Request.Context(), postID)
	c.JSON(http.StatusOK, gin.H{"message": "Unliked", "like_count": count})
}

// Search returns posts carrying the exact tag from the query string.
func (h *PostHandler) Search(c *gin.Context) {
	tag := c.Query("tag")
	if tag == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag is required"})
		return
	}

	posts, err := h.svc.SearchByTag(c.Request.Context(), tag)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tag": tag, "posts": posts})
}
