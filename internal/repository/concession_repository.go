package repository

import (
	"context"
	"database/sql"

	"github.com/tcapp/mobile-ticket-api/internal/model"
)

// ConcessionRepo provides read access to mobile-order concessions.
type ConcessionRepo struct {
	db *sql.DB
}

// NewConcessionRepo constructs a ConcessionRepo with the given DB handle.
func NewConcessionRepo(db *sql.DB) *ConcessionRepo {
	return &ConcessionRepo{db: db}
}

// FetchByTheater returns the concessions of a theater in their
// configured display order.  Theaters without mobile ordering simply
// return an empty slice.
func (r *ConcessionRepo) FetchByTheater(ctx context.Context, theaterCode string) ([]model.Concession, error) {
	const q = `SELECT concession_id, concession_name, mobile_order_url, caution_text
	           FROM concessions
	           WHERE theater_code = ?
	           ORDER BY display_order`
	rows, err := r.db.QueryContext(ctx, q, theaterCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Concession
	for rows.Next() {
		var cs model.Concession
		var cautionText sql.NullString
		if err := rows.Scan(&cs.ConcessionID, &cs.ConcessionName, &cs.MobileOrderURL, &cautionText); err != nil {
			return nil, err
		}
		cs.CautionText = cautionText.String
		result = append(result, cs)
	}
	return result, rows.Err()
}
