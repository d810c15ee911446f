package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tcapp/mobile-ticket-api/internal/model"
)

// MovieRepo provides read access to the movie master.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// FetchActiveByCode returns the movie for a code, excluding
// soft-deleted rows.  A ticket may reference a movie that was deleted
// from the lineup, so absence is a normal state here and is reported
// as (nil, nil) rather than an error.
func (r *MovieRepo) FetchActiveByCode(ctx context.Context, movieCode string) (*model.Movie, error) {
	const q = `SELECT movie_code, title, title_ja, thumbnail_url, is_deleted
	           FROM movies
	           WHERE movie_code = ? AND is_deleted = FALSE`
	var m model.Movie
	var thumbnail sql.NullString
	err := r.db.QueryRowContext(ctx, q, movieCode).
		Scan(&m.MovieCode, &m.Title, &m.TitleJA, &thumbnail, &m.IsDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	m.ThumbnailURL = thumbnail.String
	return &m, nil
}
