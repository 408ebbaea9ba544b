package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwrench/mechanic-review/internal/model"
	"github.com/openwrench/mechanic-review/internal/repository"
)

func newMechanicHandler(t *testing.T) (*MechanicHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewMechanicHandler(repository.NewMechanicRepo(db)), mock
}

func mechanicRows(mock sqlmock.Sqlmock) *sqlmock.Rows {
	return mock.NewRows([]string{
		"id", "name", "address", "city", "state", "zip_code", "phone",
		"email", "website", "specialties", "operating_hours",
		"created_at", "updated_at",
	})
}

func TestCreateMechanicMissingFields(t *testing.T) {
	h, mock := newMechanicHandler(t)

	body := `{"name":"Joe's Garage","address":"1 Main St","city":"Springfield"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/mechanics", body)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, address, city, state, zip code and phone are required", decodeError(t, rec).Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMechanic(t *testing.T) {
	h, mock := newMechanicHandler(t)

	mock.ExpectExec(`INSERT INTO mechanics`).
		WithArgs(sqlmock.AnyArg(), "Joe's Garage", "1 Main St", "Springfield", "IL",
			"62701", "555-0100", nil, nil, `[]`, nil,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := `{"name":"Joe's Garage","address":"1 Main St","city":"Springfield","state":"IL","zipCode":"62701","phone":"555-0100"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/mechanics", body)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var created model.Mechanic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{}, created.Specialties)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMechanicByIDNotFound(t *testing.T) {
	h, mock := newMechanicHandler(t)

	mock.ExpectQuery(`SELECT .+ FROM mechanics WHERE id=\? LIMIT 1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	c, rec := newTestContext(t, http.MethodGet, "/api/mechanics/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, h.GetByID(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Mechanic not found", decodeError(t, rec).Message)
}

func TestSearchMechanics(t *testing.T) {
	h, mock := newMechanicHandler(t)

	mock.ExpectQuery(`SELECT .+ FROM mechanics WHERE LOWER\(city\) LIKE \?`).
		WithArgs("%springfield%").
		WillReturnRows(mechanicRows(mock).
			AddRow("m-1", "Joe's Garage", "1 Main St", "Springfield", "IL", "62701", "555-0100",
				nil, nil, `["Oil Change"]`, nil, testTime(t), testTime(t)))
	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\), COUNT\(\*\) FROM reviews`).
		WithArgs("m-1").
		WillReturnRows(mock.NewRows([]string{"avg", "count"}).AddRow(4.5, 2))

	c, rec := newTestContext(t, http.MethodGet, "/api/mechanics?city=Springfield", "")
	require.NoError(t, h.Search(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out []model.MechanicWithRating
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, 4.5, out[0].AverageRating)
	assert.Equal(t, 2, out[0].TotalReviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}
