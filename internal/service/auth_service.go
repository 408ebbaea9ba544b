// Package service holds the application services sitting between the
// HTTP handlers and the repositories.
package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/openwrench/mechanic-review/internal/config"
	"github.com/openwrench/mechanic-review/internal/model"
	"github.com/openwrench/mechanic-review/internal/repository"
	"github.com/openwrench/mechanic-review/internal/utils"
)

// ErrInvalidUserToken is returned by ValidateToken when the token
// verifies but its subject no longer resolves to a user.
var ErrInvalidUserToken = errors.New("invalid user token")

// AuthService implements registration, login and token validation on
// top of the user repository and the JWT helpers.
type AuthService struct {
	Users *repository.UserRepo
	Cfg   config.Config
}

func NewAuthService(users *repository.UserRepo, cfg config.Config) *AuthService {
	return &AuthService{Users: users, Cfg: cfg}
}

// Register creates a user and returns a token plus the public user
// view. A taken username fails with repository.ErrUsernameExists before
// any row is written.
func (s *AuthService) Register(ctx context.Context, dto model.RegisterUser) (model.AuthResponse, error) {
	_, err := s.Users.GetByUsername(ctx, dto.Username)
	if err == nil {
		return model.AuthResponse{}, repository.ErrUsernameExists
	}
	if err != sql.ErrNoRows {
		return model.AuthResponse{}, err
	}

	user, err := s.Users.Create(ctx, dto, s.Cfg.BcryptCost)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return s.respond(user)
}

// Login verifies credentials and returns a token plus the public user
// view. Unknown username and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, creds model.Credentials) (model.AuthResponse, error) {
	user, err := s.Users.ValidateCredentials(ctx, creds.Username, creds.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return s.respond(user)
}

// ValidateToken verifies the token's signature, issuer, audience and
// expiry, then resolves its subject to a user. A verified token whose
// user is gone fails with ErrInvalidUserToken.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (model.UserResponse, error) {
	claims, err := utils.ParseUserToken(s.Cfg.JWTSecret, s.Cfg.JWTIssuer, s.Cfg.JWTAudience, token)
	if err != nil {
		return model.UserResponse{}, err
	}
	user, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.UserResponse{}, ErrInvalidUserToken
		}
		return model.UserResponse{}, err
	}
	return user, nil
}

func (s *AuthService) respond(user model.UserResponse) (model.AuthResponse, error) {
	token, err := utils.NewUserToken(s.Cfg.JWTSecret, s.Cfg.JWTIssuer, s.Cfg.JWTAudience,
		user.ID, user.Username, s.Cfg.TokenTTLMin)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: token, User: user}, nil
}
