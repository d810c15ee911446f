package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tcapp/mobile-ticket-api/internal/model"
)

// ScheduleRepo provides read access to theater schedules.
type ScheduleRepo struct {
	db *sql.DB
}

// NewScheduleRepo constructs a ScheduleRepo with the given DB handle.
func NewScheduleRepo(db *sql.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// FetchByMovieCode returns the schedule published for a movie code, or
// (nil, nil) when no theater currently schedules the movie.
func (r *ScheduleRepo) FetchByMovieCode(ctx context.Context, movieCode string) (*model.TheaterSchedule, error) {
	const q = `SELECT movie_code, theater_code, COALESCE(subtitles_dubbing_code, '')
	           FROM theater_schedules
	           WHERE movie_code = ?
	           LIMIT 1`
	var ts model.TheaterSchedule
	err := r.db.QueryRowContext(ctx, q, movieCode).
		Scan(&ts.MovieCode, &ts.TheaterCode, &ts.SubtitlesDubbingCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ts, nil
}
