package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/openwrench/mechanic-review/internal/config"
	"github.com/openwrench/mechanic-review/internal/repository"
	"github.com/openwrench/mechanic-review/internal/service"
	"github.com/openwrench/mechanic-review/internal/utils"
)

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	cfg := config.Config{
		JWTSecret:   "test-secret",
		JWTIssuer:   "mechanic-review-api",
		JWTAudience: "mechanic-review-users",
		TokenTTLMin: 10,
		BcryptCost:  bcrypt.MinCost,
	}
	return NewAuthHandler(service.NewAuthService(repository.NewUserRepo(db), cfg)), mock
}

func TestRegisterValidationFailures(t *testing.T) {
	h, mock := newAuthHandler(t)

	body := `{"username":"alice","email":"not-an-email","password":"weak"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", body)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	e := decodeError(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, e.StatusCode)
	assert.Contains(t, e.Message, "Invalid email format")
	assert.Contains(t, e.Message, "Password must be at least 8 characters")

	// validation failed, so nothing was asked of the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateHeaderChecks(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Missing Authorization header",
		},
		{
			name:       "not bearer",
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid Authorization header format",
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Token is not valid or has expired",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, mock := newAuthHandler(t)
			c, rec := newTestContext(t, http.MethodGet, "/api/auth/validate", "")
			if tc.authHeader != "" {
				c.Request().Header.Set("Authorization", tc.authHeader)
			}
			require.NoError(t, h.Validate(c))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantMsg, decodeError(t, rec).Message)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestValidateDeletedUser(t *testing.T) {
	h, mock := newAuthHandler(t)

	token, err := utils.NewUserToken("test-secret", "mechanic-review-api", "mechanic-review-users", "u-gone", "ghost", 10)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id,username,email,full_name,created_at,updated_at FROM users WHERE id=\? LIMIT 1`).
		WithArgs("u-gone").
		WillReturnRows(mock.NewRows([]string{"id", "username", "email", "full_name", "created_at", "updated_at"}))

	c, rec := newTestContext(t, http.MethodGet, "/api/auth/validate", "")
	c.Request().Header.Set("Authorization", "Bearer "+token)
	require.NoError(t, h.Validate(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid user token", decodeError(t, rec).Message)
}
