package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitmishra16/Blogger/internal/auth"
	"github.com/ankitmishra16/Blogger/internal/blog"
	"github.com/ankitmishra16/Blogger/internal/notify"
	"github.com/ankitmishra16/Blogger/internal/storage"
)

// Handler combines all handler types
type Handler struct {
	Auth    *AuthHandler
	Post    *PostHandler
	Comment *CommentHandler
	User    *UserHandler
	Upload  *UploadHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(svc *blog.Service, tokens *auth.TokenService, sender notify.Sender, images *storage.ImageStore, baseURL string) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc, tokens, sender, baseURL),
		Post:    NewPostHandler(svc),
		Comment: NewCommentHandler(svc),
		User:    NewUserHandler(svc),
		Upload:  NewUploadHandler(images, baseURL),
	}
}

// respondError maps service errors onto HTTP status codes with a JSON body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, blog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, blog.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, blog.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
	case errors.Is(err, blog.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
	case errors.Is(err, storage.ErrInvalidUpload):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
