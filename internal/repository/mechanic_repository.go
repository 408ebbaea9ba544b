package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openwrench/mechanic-review/internal/model"
)

type MechanicRepo struct{ DB *sql.DB }

func NewMechanicRepo(db *sql.DB) *MechanicRepo { return &MechanicRepo{DB: db} }

const mechanicColumns = "id,name,address,city,state,zip_code,phone,email,website,specialties,operating_hours,created_at,updated_at"

// Create inserts a mechanic with a generated UUID and current
// timestamps and returns the input echoed back with those filled in.
// Specialties are JSON-encoded into the text column.
func (r *MechanicRepo) Create(ctx context.Context, m model.Mechanic) (model.Mechanic, error) {
	m.ID = uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	m.CreatedAt, m.UpdatedAt = now, now
	if m.Specialties == nil {
		m.Specialties = []string{}
	}

	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO mechanics ("+mechanicColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)",
		m.ID, m.Name, m.Address, m.City, m.State, m.ZipCode, m.Phone,
		m.Email, m.Website, encodeStringList(m.Specialties), m.OperatingHours,
		m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return model.Mechanic{}, err
	}
	return m, nil
}

// GetByID fetches a mechanic by primary key.
func (r *MechanicRepo) GetByID(ctx context.Context, id string) (model.Mechanic, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+mechanicColumns+" FROM mechanics WHERE id=? LIMIT 1", id)
	return scanMechanic(row)
}

// GetWithRating fetches a mechanic together with the average rating and
// review count computed from the reviews table at read time. A mechanic
// with no reviews yields 0.0 and 0, never null.
func (r *MechanicRepo) GetWithRating(ctx context.Context, id string) (model.MechanicWithRating, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return model.MechanicWithRating{}, err
	}
	avg, total, err := r.ratingStats(ctx, id)
	if err != nil {
		return model.MechanicWithRating{}, err
	}
	return model.MechanicWithRating{Mechanic: m, AverageRating: avg, TotalReviews: total}, nil
}

// Search applies the supplied filters conjunctively and returns every
// surviving mechanic with its rating data. query matches name OR
// address, city and state match their columns; all three are
// case-insensitive substring matches pushed to SQL. specialty is
// matched in memory against the decoded specialties list, since the
// column holds an opaque JSON blob.
func (r *MechanicRepo) Search(ctx context.Context, query, city, state, specialty string) ([]model.MechanicWithRating, error) {
	where := []string{}
	args := []any{}

	if query != "" {
		where = append(where, "(LOWER(name) LIKE ? OR LOWER(address) LIKE ?)")
		pat := "%" + strings.ToLower(query) + "%"
		args = append(args, pat, pat)
	}
	if city != "" {
		where = append(where, "LOWER(city) LIKE ?")
		args = append(args, "%"+strings.ToLower(city)+"%")
	}
	if state != "" {
		where = append(where, "LOWER(state) LIKE ?")
		args = append(args, "%"+strings.ToLower(state)+"%")
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+mechanicColumns+" FROM mechanics WHERE "+cond, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mechanics := []model.Mechanic{}
	for rows.Next() {
		m, err := scanMechanic(rows)
		if err != nil {
			return nil, err
		}
		if specialty != "" && !matchesSpecialty(m.Specialties, specialty) {
			continue
		}
		mechanics = append(mechanics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Rating data is computed with one aggregate query per surviving
	// mechanic; the extra round-trips are a known cost of search.
	out := make([]model.MechanicWithRating, 0, len(mechanics))
	for _, m := range mechanics {
		avg, total, err := r.ratingStats(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, model.MechanicWithRating{Mechanic: m, AverageRating: avg, TotalReviews: total})
	}
	return out, nil
}

func matchesSpecialty(specialties []string, specialty string) bool {
	needle := strings.ToLower(specialty)
	for _, s := range specialties {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func (r *MechanicRepo) ratingStats(ctx context.Context, mechanicID string) (float64, int, error) {
	var avg float64
	var total int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE mechanic_id=?",
		mechanicID).Scan(&avg, &total)
	if err != nil {
		return 0, 0, err
	}
	return avg, total, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanMechanic(s scanner) (model.Mechanic, error) {
	var m model.Mechanic
	var email, website, hours sql.NullString
	var specialties string
	err := s.Scan(&m.ID, &m.Name, &m.Address, &m.City, &m.State, &m.ZipCode, &m.Phone,
		&email, &website, &specialties, &hours, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return model.Mechanic{}, err
	}
	m.Email = strPtr(email)
	m.Website = strPtr(website)
	m.OperatingHours = strPtr(hours)
	m.Specialties = decodeStringList(specialties)
	return m, nil
}
