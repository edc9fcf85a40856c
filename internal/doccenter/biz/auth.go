// Package biz provides the business logic for the doc-center service.
package biz

import (
	"context"
	stderrors "errors"

	"github.com/kart-io/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/kart-io/doc-center/internal/doccenter/store"
	"github.com/kart-io/doc-center/internal/model"
	"github.com/kart-io/doc-center/pkg/errors"
	"github.com/kart-io/doc-center/pkg/security/auth/jwt"
)

// TokenSigner issues access tokens for authenticated users.
type TokenSigner interface {
	Sign(ctx context.Context, subject string) (*jwt.Token, error)
}

// AuthService handles user registration and login.
type AuthService struct {
	users  store.UserStore
	signer TokenSigner
}

// NewAuthService creates an AuthService.
func NewAuthService(users store.UserStore, signer TokenSigner) *AuthService {
	return &AuthService{users: users, signer: signer}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserInfo, error) {
	if req.Username == "" || req.Password == "" {
		return nil, errors.ErrBadRequest.WithMessage("username and password are required")
	}

	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err).WithMessage("failed to hash password")
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Infof("User registered: %s", user.Username)
	return &model.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// Login verifies credentials and issues an access token.
// Lookup failures and password mismatches return the same error so the
// response does not reveal whether the username exists.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := s.signer.Sign(ctx, user.Username)
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err).WithMessage("failed to issue token")
	}

	return &model.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   token.ExpiresIn,
	}, nil
}
