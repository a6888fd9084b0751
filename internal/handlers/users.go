package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ankitmishra16/Blogger/internal/blog"
	"github.com/ankitmishra16/Blogger/internal/middleware"
)

type UserHandler struct {
	svc *blog.Service
}

func NewUserHandler(svc *blog.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) listUserPosts(c *gin.Context, visibility blog.Visibility) {
	username := c.Param("username")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	user, err := h.svc.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, err := h.svc.ListPosts(c.Request.Context(), blog.ListFilter{
		Visibility: visibility,
		AuthorID:   user.ID,
		Page:       page,
		PageSize:   5,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"bio":        user.Bio,
			"image_file": user.ImageFile,
		},
		"posts": posts,
	})
}

// Posts lists everything a user has authored, drafts included when the
// requester is the user themselves; otherwise published only.
func (h *UserHandler) Posts(c *gin.Context) {
	username := c.Param("username")
	if viewerID, ok := middleware.UserID(c); ok {
		if user, err := h.svc.GetUserByUsername(c.Request.Context(), username); err == nil && user.ID == viewerID {
			h.listUserPosts(c, blog.VisibilityAll)
			return
		}
	}
	h.listUserPosts(c, blog.VisibilityPublished)
}

// PublishedPosts lists only a user's published posts.
func (h *UserHandler) PublishedPosts(c *gin.Context) {
	h.listUserPosts(c, blog.VisibilityPublished)
}

// UnpublishedPosts lists a user's drafts. Only the user may see their own.
func (h *UserHandler) UnpublishedPosts(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.svc.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	if user.ID != viewerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	h.listUserPosts(c, blog.VisibilityUnpublished)
}

// Comments returns the comments report for a user: each authenticated
// comment on the user's authored posts, joined with the post it sits on.
func (h *UserHandler) Comments(c *gin.Context) {
	rows, err := h.svc.CommentsReport(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
