package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openwrench/mechanic-review/internal/model"
	"github.com/openwrench/mechanic-review/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user with a freshly generated UUID and a bcrypt hash
// of the plaintext password. The plaintext is never stored or logged.
// Returns the public view of the created user.
func (r *UserRepo) Create(ctx context.Context, u model.RegisterUser, cost int) (model.UserResponse, error) {
	hash, err := utils.HashPassword(u.Password, cost)
	if err != nil {
		return model.UserResponse{}, err
	}
	id := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)

	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO users (id, username, email, password, full_name, created_at, updated_at) VALUES (?,?,?,?,?,?,?)",
		id, u.Username, u.Email, hash, u.FullName, now, now)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.UserResponse{}, ErrUsernameExists
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:        id,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetByID fetches the public view of a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.UserResponse, error) {
	var u model.UserResponse
	var fullName sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,full_name,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Email, &fullName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.UserResponse{}, err
	}
	u.FullName = strPtr(fullName)
	return u, nil
}

// GetByUsername fetches the full user record including the password
// hash. For internal credential checks only; never serialize the result.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	var fullName sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password,full_name,created_at,updated_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.Email, &u.Password, &fullName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	u.FullName = strPtr(fullName)
	return u, nil
}

// ValidateCredentials verifies a plaintext password against the stored
// hash for the named user. Unknown username and wrong password both
// collapse to ErrInvalidCredentials.
func (r *UserRepo) ValidateCredentials(ctx context.Context, username, password string) (model.UserResponse, error) {
	u, err := r.GetByUsername(ctx, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.UserResponse{}, ErrInvalidCredentials
		}
		return model.UserResponse{}, err
	}
	if !utils.VerifyPassword(u.Password, password) {
		return model.UserResponse{}, ErrInvalidCredentials
	}
	return model.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}, nil
}
