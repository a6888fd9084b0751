package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ankitmishra16/Blogger/internal/blog"
	"github.com/ankitmishra16/Blogger/internal/middleware"
	"github.com/ankitmishra16/Blogger/internal/models"
)

type CommentHandler struct {
	svc *blog.Service
}

func NewCommentHandler(svc *blog.Service) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// GetComments returns all comments for a post, oldest first.
func (h *CommentHandler) GetComments(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comments, err := h.svc.PostComments(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]gin.H, 0, len(comments))
	for i := range comments {
		responses = append(responses, gin.H{
			"id":         comments[i].ID,
			"body":       comments[i].Body,
			"post_id":    comments[i].PostID,
			"author":     comments[i].AuthorName(),
			"created_at": comments[i].CreatedAt,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// CreateComment adds a comment to a post. Works for both logged-in users and
// anonymous visitors; anonymous comments are labeled "Anonymous".
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var authorID *int
	if userID, ok := middleware.UserID(c); ok {
		authorID = &userID
	}

	comment, err := h.svc.AddComment(c.Request.Context(), postID, input.Body, authorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         comment.ID,
		"body":       comment.Body,
		"post_id":    comment.PostID,
		"author":     comment.AuthorName(),
		"created_at": comment.CreatedAt,
		"message":    "Your comment has been added to the post",
	})
}
