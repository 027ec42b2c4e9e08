package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"movingdata.com/p/apiscaffold/app/schema"
	"movingdata.com/p/apiscaffold/modelutil"
)

const (
	// DefaultRole is given to every registered user. Other roles are
	// granted directly in the database.
	DefaultRole = "user"

	tokenTTL   = 24 * time.Hour
	bcryptCost = 10
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactive           = errors.New("account is inactive")
)

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is returned by register and login.
type Session struct {
	User        *schema.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

type AuthService struct {
	repo *AuthRepository
	auth *modelutil.Auth
	now  func() time.Time
}

func NewAuthService(repo *AuthRepository, auth *modelutil.Auth) *AuthService {
	return &AuthService{repo: repo, auth: auth, now: time.Now}
}

// Register creates a user with the default role and signs them in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	existing, err := s.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error encrypting password: %w", err)
	}

	u, err := s.repo.Create(ctx, &schema.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         DefaultRole,
	})
	if err != nil {
		return nil, err
	}

	return s.session(u)
}

// Login checks the credentials and issues a new access token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	u, err := s.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if u.IsActive != nil && !*u.IsActive {
		return nil, ErrInactive
	}

	now := s.now()
	if err := s.repo.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLoginAt = &now

	return s.session(u)
}

// Profile returns the user with the given id, or nil.
func (s *AuthService) Profile(ctx context.Context, id int64) (*schema.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AuthService) session(u *schema.User) (*Session, error) {
	token, err := s.auth.Token(map[string]interface{}{
		"user_id":  strconv.FormatInt(u.ID, 10),
		"username": u.Username,
		"role":     u.Role,
	}, tokenTTL)
	if err != nil {
		return nil, err
	}

	return &Session{User: u, AccessToken: token}, nil
}
