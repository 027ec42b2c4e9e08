package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"movingdata.com/p/apiscaffold/app/schema"
)

// AuthRepository reads and writes rows of the "users" table.
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) findBy(ctx context.Context, column string, value interface{}) (*schema.User, error) {
	var u schema.User
	if err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("AuthRepository.findBy(%s): %w", column, err)
	}
	return &u, nil
}

// FindByUsername returns the user with the given username, or nil.
func (r *AuthRepository) FindByUsername(ctx context.Context, username string) (*schema.User, error) {
	return r.findBy(ctx, "username", username)
}

// FindByEmail returns the user with the given email, or nil.
func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*schema.User, error) {
	return r.findBy(ctx, "email", email)
}

// FindByID returns the user with the given id, or nil.
func (r *AuthRepository) FindByID(ctx context.Context, id int64) (*schema.User, error) {
	return r.findBy(ctx, "id", id)
}

func (r *AuthRepository) Create(ctx context.Context, u *schema.User) (*schema.User, error) {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, fmt.Errorf("AuthRepository.Create: %w", err)
	}
	return u, nil
}

// TouchLastLogin stamps last_login_at of the user with the given id.
func (r *AuthRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&schema.User{}).Where("id = ?", id).Update("last_login_at", at).Error
	if err != nil {
		return fmt.Errorf("AuthRepository.TouchLastLogin: %w", err)
	}
	return nil
}
