package blog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ankitmishra16/Blogger/internal/auth"
	"github.com/ankitmishra16/Blogger/internal/models"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Phone    string
}

// Register creates a new account with a bcrypt-hashed password. Username and
// email uniqueness is backed by the database constraints; a duplicate of
// either yields ErrConflict.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", ErrInvalidInput)
	}

	var existing models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", in.Username, in.Email).
		First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
		Phone:    in.Phone,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// The unique constraints catch the race the existence check misses.
		return nil, ErrConflict
	}
	return &user, nil
}

// Login verifies email and password, returning ErrInvalidCredentials on
// either miss so a probe cannot tell which part was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := auth.CheckPassword(user.Password, password); err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser returns a user by id.
func (s *Service) GetUser(ctx context.Context, userID int) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// GetUserByUsername returns a user by username.
func (s *Service) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail returns a user by email, for the reset-request flow.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

type UpdateAccountInput struct {
	Username  string
	Email     string
	Bio       string
	ImageFile string
}

// UpdateAccount edits the user's own profile. Username/email moves re-check
// uniqueness; the zero value leaves a field unchanged, except Bio which may
// be set to empty deliberately via the handler passing the current value.
func (s *Service) UpdateAccount(ctx context.Context, userID int, in UpdateAccountInput) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if in.Username != "" && in.Username != user.Username {
			var taken int64
			tx.Model(&models.User{}).Where("username = ? AND id <> ?", in.Username, userID).Count(&taken)
			if taken > 0 {
				return ErrConflict
			}
			user.Username = in.Username
		}
		if in.Email != "" && in.Email != user.Email {
			var taken int64
			tx.Model(&models.User{}).Where("email = ? AND id <> ?", in.Email, userID).Count(&taken)
			if taken > 0 {
				return ErrConflict
			}
			user.Email = in.Email
		}
		if in.Bio != "" {
			user.Bio = in.Bio
		}
		if in.ImageFile != "" {
			user.ImageFile = in.ImageFile
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetPassword replaces the user's password hash, used by the reset flow after
// token verification.
func (s *Service) SetPassword(ctx context.Context, userID int, newPassword string) error {
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	result := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", hash)
	if result.Error != nil {
		return fmt.Errorf("set password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
