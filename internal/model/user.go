package model

import "time"

// User mirrors the `users` table. The password column holds a bcrypt
// hash and must never be serialized back to a client; UserResponse is
// the public shape returned from every endpoint.
//
// Fields:
//  ID        – UUID string primary key, generated at creation.
//  Username  – unique login name.
//  Email     – unique email address.
//  Password  – bcrypt hash (json:"-" keeps it out of responses).
//  FullName  – optional display name (nullable column).
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update (never mutated in-scope).
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  *string   `json:"fullName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserResponse is the public view of a user, safe to serialize.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  *string   `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterUser is the request body for POST /api/auth/register.
type RegisterUser struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"fullName,omitempty"`
}

// Credentials is the request body for POST /api/auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse pairs a freshly minted JWT with the public user view.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
