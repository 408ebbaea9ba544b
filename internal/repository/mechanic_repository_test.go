package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwrench/mechanic-review/internal/model"
)

var mechanicCols = []string{
	"id", "name", "address", "city", "state", "zip_code", "phone",
	"email", "website", "specialties", "operating_hours", "created_at", "updated_at",
}

func mechanicRow(rows *sqlmock.Rows, id, name, city, state, specialties string) *sqlmock.Rows {
	now := time.Now().UTC().Truncate(time.Second)
	return rows.AddRow(id, name, "12 Main St", city, state, "62704", "555-010-0000",
		nil, nil, specialties, nil, now, now)
}

func expectRatingStats(mock sqlmock.Sqlmock, mechanicID string, avg float64, total int) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE mechanic_id=?")).
		WithArgs(mechanicID).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "total"}).AddRow(avg, total))
}

func TestMechanicRepoCreateEchoesInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mechanics ("+mechanicColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)")).
		WithArgs(sqlmock.AnyArg(), "Springfield Auto", "12 Main St", "Springfield", "IL",
			"62704", "555-010-0000", nil, nil, `["Oil Change","Brake Repair"]`, nil,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewMechanicRepo(db)
	in := model.Mechanic{
		Name:        "Springfield Auto",
		Address:     "12 Main St",
		City:        "Springfield",
		State:       "IL",
		ZipCode:     "62704",
		Phone:       "555-010-0000",
		Specialties: []string{"Oil Change", "Brake Repair"},
	}
	created, err := repo.Create(context.Background(), in)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	// everything else echoes the input
	in.ID, in.CreatedAt, in.UpdatedAt = created.ID, created.CreatedAt, created.UpdatedAt
	assert.Equal(t, in, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMechanicRepoGetWithRating(t *testing.T) {
	tests := []struct {
		name      string
		avg       float64
		total     int
		wantAvg   float64
		wantTotal int
	}{
		{name: "no reviews yields zero values", avg: 0, total: 0, wantAvg: 0.0, wantTotal: 0},
		{name: "ratings 3 4 5 average to 4", avg: 4.0, total: 3, wantAvg: 4.0, wantTotal: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta("SELECT "+mechanicColumns+" FROM mechanics WHERE id=? LIMIT 1")).
				WithArgs("m-1").
				WillReturnRows(mechanicRow(sqlmock.NewRows(mechanicCols), "m-1", "Springfield Auto", "Springfield", "IL", `["Oil Change"]`))
			expectRatingStats(mock, "m-1", tt.avg, tt.total)

			repo := NewMechanicRepo(db)
			got, err := repo.GetWithRating(context.Background(), "m-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvg, got.AverageRating)
			assert.Equal(t, tt.wantTotal, got.TotalReviews)
			assert.Equal(t, []string{"Oil Change"}, got.Specialties)
		})
	}
}

func TestMechanicRepoGetWithRatingMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+mechanicColumns+" FROM mechanics WHERE id=? LIMIT 1")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(mechanicCols))

	repo := NewMechanicRepo(db)
	_, err = repo.GetWithRating(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	// no aggregate query should have run
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMechanicRepoSearchCityFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(mechanicCols)
	mechanicRow(rows, "m-1", "Springfield Auto", "Springfield", "IL", `["Oil Change"]`)
	mechanicRow(rows, "m-2", "East Side Garage", "West Springfield", "MA", `["Brake Repair"]`)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+mechanicColumns+" FROM mechanics WHERE LOWER(city) LIKE ?")).
		WithArgs("%springfield%").
		WillReturnRows(rows)
	expectRatingStats(mock, "m-1", 4.5, 2)
	expectRatingStats(mock, "m-2", 0, 0)

	repo := NewMechanicRepo(db)
	got, err := repo.Search(context.Background(), "", "Springfield", "", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 4.5, got[0].AverageRating)
	assert.Equal(t, 2, got[0].TotalReviews)
	assert.Equal(t, 0.0, got[1].AverageRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMechanicRepoSearchQueryAndSpecialty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(mechanicCols)
	mechanicRow(rows, "m-1", "Springfield Auto", "Springfield", "IL", `["Oil Change","Brake Repair"]`)
	mechanicRow(rows, "m-2", "Springfield Tires", "Springfield", "IL", `["Tire Rotation"]`)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+mechanicColumns+" FROM mechanics WHERE (LOWER(name) LIKE ? OR LOWER(address) LIKE ?)")).
		WithArgs("%springfield%", "%springfield%").
		WillReturnRows(rows)
	// the specialty filter runs in memory, so only the survivor gets an aggregate query
	expectRatingStats(mock, "m-1", 5, 1)

	repo := NewMechanicRepo(db)
	got, err := repo.Search(context.Background(), "Springfield", "", "", "brake")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m-1", got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMechanicRepoSearchNoFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(mechanicCols)
	mechanicRow(rows, "m-1", "Springfield Auto", "Springfield", "IL", `["Oil Change"]`)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+mechanicColumns+" FROM mechanics WHERE 1=1")).
		WillReturnRows(rows)
	expectRatingStats(mock, "m-1", 0, 0)

	repo := NewMechanicRepo(db)
	got, err := repo.Search(context.Background(), "", "", "", "")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMechanicRepoCorruptSpecialtiesDecodeToEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+mechanicColumns+" FROM mechanics WHERE id=? LIMIT 1")).
		WithArgs("m-1").
		WillReturnRows(mechanicRow(sqlmock.NewRows(mechanicCols), "m-1", "Springfield Auto", "Springfield", "IL", `{broken`))

	repo := NewMechanicRepo(db)
	got, err := repo.GetByID(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Specialties)
}
