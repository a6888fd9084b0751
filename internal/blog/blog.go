// Package blog holds the core application logic: account management, the
// post lifecycle, comments, like edges and the reporting queries. Handlers
// stay thin; everything here takes a context and an explicit actor id rather
// than reading any ambient session state.
package blog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ankitmishra16/Blogger/internal/cache"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("username or email already exists")
)

// Anonymous is the actor id used for requests with no authenticated user.
const Anonymous = 0

type Service struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewService wires the core services over a gorm handle. The cache may be
// nil, in which case aggregate queries always hit the database.
func NewService(db *gorm.DB, c *cache.Cache) *Service {
	return &Service{db: db, cache: c}
}
