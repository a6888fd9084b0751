package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ankitmishra16/Blogger/internal/models"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const (
	purposeReset   = "password_reset"
	purposeSession = "session"
)

// TokenService issues and verifies the two kinds of signed tokens the app
// uses: login session tokens and self-contained password-reset tokens. Both
// are HS256 JWTs under one process-wide secret; a purpose claim keeps a
// session token from ever passing as a reset token or vice versa.
//
// Reset tokens carry no server-side state, so they cannot be revoked before
// expiry. Keep the reset TTL short.
type TokenService struct {
	secret     []byte
	resetTTL   time.Duration
	sessionTTL time.Duration
}

func NewTokenService(secret string, resetTTL, sessionTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		resetTTL:   resetTTL,
		sessionTTL: sessionTTL,
	}
}

// IssueResetToken produces a signed token binding the user id to an expiry
// resetTTL from now.
func (s *TokenService) IssueResetToken(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"purpose": purposeReset,
		"exp":     time.Now().Add(s.resetTTL).Unix(),
	})
	return token.SignedString(s.secret)
}

// VerifyResetToken returns the embedded user id, or ErrInvalidToken if the
// signature mismatches, the payload is malformed, the purpose is wrong, or
// the expiry has elapsed.
func (s *TokenService) VerifyResetToken(tokenString string) (int, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return 0, err
	}
	if claims["purpose"] != purposeReset {
		return 0, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return int(userID), nil
}

// IssueSessionToken produces the login token handed to the client after a
// successful register or login.
func (s *TokenService) IssueSessionToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"purpose":  purposeSession,
		"exp":      time.Now().Add(s.sessionTTL).Unix(),
	})
	return token.SignedString(s.secret)
}

// VerifySessionToken returns the authenticated user id for a login token.
func (s *TokenService) VerifySessionToken(tokenString string) (int, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return 0, err
	}
	if claims["purpose"] != purposeSession {
		return 0, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return int(userID), nil
}

func (s *TokenService) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
