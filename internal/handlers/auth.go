package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitmishra16/Blogger/internal/auth"
	"github.com/ankitmishra16/Blogger/internal/blog"
	"github.com/ankitmishra16/Blogger/internal/middleware"
	"github.com/ankitmishra16/Blogger/internal/models"
	"github.com/ankitmishra16/Blogger/internal/notify"
)

type AuthHandler struct {
	svc     *blog.Service
	tokens  *auth.TokenService
	sender  notify.Sender
	baseURL string
}

func NewAuthHandler(svc *blog.Service, tokens *auth.TokenService, sender notify.Sender, baseURL string) *AuthHandler {
	return &AuthHandler{svc: svc, tokens: tokens, sender: sender, baseURL: baseURL}
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), blog.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	tokenString, err := h.tokens.IssueSessionToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		Token:   tokenString,
		User:    *user,
		Message: "Your account has been created! You are now able to log in",
	})
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	tokenString, err := h.tokens.IssueSessionToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   tokenString,
		User:    *user,
		Message: "Login successful",
	})
}

// GetMe returns the current authenticated user
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.svc.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe updates the authenticated user's own profile.
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.UpdateAccountRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.UpdateAccount(c.Request.Context(), userID, blog.UpdateAccountInput{
		Username:  input.Username,
		Email:     input.Email,
		Bio:       input.Bio,
		ImageFile: input.ImageFile,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// RequestReset issues a reset token for the account behind the given email
// and hands the link to the configured sender. The response is the same
// whether or not the email exists, so the endpoint cannot be used to probe
// for accounts.
func (h *AuthHandler) RequestReset(c *gin.Context) {
	var input models.ResetRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	const message = "If an account exists for that email, reset instructions have been sent."

	user, err := h.svc.GetUserByEmail(c.Request.Context(), input.Email)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": message})
		return
	}

	token, err := h.tokens.IssueResetToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	link := fmt.Sprintf("%s/api/reset_password/%s", h.baseURL, token)
	if err := h.sender.SendResetLink(c.Request.Context(), user, link); err != nil {
		log.Printf("reset link delivery failed for user %d: %v", user.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ResetPassword verifies the token from the emailed link and sets the new
// password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	tokenString := c.Param("token")

	var input models.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := h.tokens.VerifyResetToken(tokenString)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.svc.SetPassword(c.Request.Context(), userID, input.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your password has been updated! You are now able to log in"})
}
