package repository

import (
	"context"
	"database/sql"

	"github.com/tcapp/mobile-ticket-api/internal/model"
)

// Source bundles the per-entity repositories behind the read interface
// the ticket assembler consumes.  It adds no logic of its own; each
// method delegates to the owning repository.
type Source struct {
	Movies      *MovieRepo
	Schedules   *ScheduleRepo
	Concessions *ConcessionRepo
}

// NewSource constructs a Source over one DB handle.
func NewSource(db *sql.DB) *Source {
	return &Source{
		Movies:      NewMovieRepo(db),
		Schedules:   NewScheduleRepo(db),
		Concessions: NewConcessionRepo(db),
	}
}

// FetchActiveMovie implements ticket.DataSource.
func (s *Source) FetchActiveMovie(ctx context.Context, movieCode string) (*model.Movie, error) {
	return s.Movies.FetchActiveByCode(ctx, movieCode)
}

// FetchTheaterSchedule implements ticket.DataSource.
func (s *Source) FetchTheaterSchedule(ctx context.Context, movieCode string) (*model.TheaterSchedule, error) {
	return s.Schedules.FetchByMovieCode(ctx, movieCode)
}

// FetchConcessions implements ticket.DataSource.
func (s *Source) FetchConcessions(ctx context.Context, theaterCode string) ([]model.Concession, error) {
	return s.Concessions.FetchByTheater(ctx, theaterCode)
}
