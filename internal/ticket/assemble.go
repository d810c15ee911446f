package ticket

import (
	"context"
	"errors"
	"log"

	"github.com/tcapp/mobile-ticket-api/internal/model"
)

// ErrTitleUnresolved is returned when neither title field of a ticket
// can be populated.  Handlers translate it into an internal error on
// the strict paths (before-list, detail).
var ErrTitleUnresolved = errors.New("could not resolve ticket title")

// DataSource is the narrow read interface the assembler needs.  It is
// satisfied by the repository layer; tests provide fakes.
type DataSource interface {
	// FetchActiveMovie returns the movie for a code, or nil when the
	// record is missing or soft-deleted.  Absence is not an error.
	FetchActiveMovie(ctx context.Context, movieCode string) (*model.Movie, error)
	// FetchTheaterSchedule returns the schedule for a movie code, or
	// nil when none exists.
	FetchTheaterSchedule(ctx context.Context, movieCode string) (*model.TheaterSchedule, error)
	// FetchConcessions returns the mobile-order concessions of a
	// theater; an empty slice when the theater has none.
	FetchConcessions(ctx context.Context, theaterCode string) ([]model.Concession, error)
}

// SubtitlesLookup resolves a subtitles/dubbing code into its display
// name.  The second return is false when the code is unknown.
type SubtitlesLookup func(code string) (string, bool)

// listView fills the fields shared by every list entry.
func listView(mt *model.MovieTicket, title, titleJA, thumbnail string, existsMovie bool) TicketView {
	return TicketView{
		TransactionID:       mt.TransactionID,
		ManagementMovieCode: mt.ManagementMovieCode,
		MovieCode:           mt.MovieCode,
		Title:               title,
		TitleJA:             titleJA,
		ShowingDate:         mt.ShowingDate.Format("2006-01-02"),
		ShowingStartTime:    mt.ShowingStartTime,
		ShowingEndTime:      mt.ShowingEndTime,
		TheaterCode:         mt.TheaterCode,
		TheaterName:         mt.TheaterName,
		PurchaseNumber:      mt.PurchaseNumber,
		ThumbnailURL:        thumbnail,
		ExistsMovieData:     existsMovie,
	}
}

// BuildBeforeList assembles the before-show list.  Movie and schedule
// are looked up per ticket through ds, and the theater's concessions
// are attached under mobile_order when any exist.
//
// This path is strict: a single ticket whose titles cannot be resolved
// fails the whole batch with ErrTitleUnresolved.  A before-show ticket
// without a rendered title would be unusable at the theater, so a
// partial list is not returned.
func BuildBeforeList(ctx context.Context, ds DataSource, tickets []model.MovieTicket) ([]TicketView, error) {
	out := make([]TicketView, 0, len(tickets))
	for i := range tickets {
		mt := &tickets[i]

		movie, err := ds.FetchActiveMovie(ctx, mt.MovieCode)
		if err != nil {
			return nil, err
		}
		sched, err := ds.FetchTheaterSchedule(ctx, mt.MovieCode)
		if err != nil {
			return nil, err
		}

		title := ResolveTitle(movie, sched)
		titleJA := ResolveTitleJA(movie, sched)
		if title == "" || titleJA == "" {
			return nil, ErrTitleUnresolved
		}

		concessions, err := ds.FetchConcessions(ctx, mt.TheaterCode)
		if err != nil {
			return nil, err
		}

		view := listView(mt, title, titleJA, ResolveThumbnail(movie), movie != nil)
		for _, cs := range concessions {
			view.MobileOrder.Concession = append(view.MobileOrder.Concession, ConcessionView{
				ConcessionID:   cs.ConcessionID,
				ConcessionName: cs.ConcessionName,
				MobileOrderURL: cs.MobileOrderURL,
				CautionText:    cs.CautionText,
			})
		}
		out = append(out, view)
	}
	return out, nil
}

// BuildAfterList assembles the watched-tickets list from rows whose
// movie and schedule relations were loaded with the tickets.  Tickets
// whose titles cannot be resolved are logged and skipped rather than
// failing the request; the after list stays as populated as the data
// allows.  mobile_order is always empty here, concessions only matter
// before the showing.
func BuildAfterList(tickets []model.MovieTicket) []TicketView {
	out := make([]TicketView, 0, len(tickets))
	for i := range tickets {
		mt := &tickets[i]

		title := ResolveTitle(mt.Movie, mt.Schedule)
		titleJA := ResolveTitleJA(mt.Movie, mt.Schedule)
		if title == "" || titleJA == "" {
			log.Printf("ticket: skipping after-list entry, title unresolved: movie_code=%s transaction_id=%s",
				mt.MovieCode, mt.TransactionID)
			continue
		}

		out = append(out, listView(mt, title, titleJA, ResolveThumbnail(mt.Movie), mt.Movie != nil))
	}
	return out
}

// BuildDetail assembles the full detail view of one ticket.  The
// facility pair is normalized in place on mt before it is read; the
// rewrite is a display correction and is never written back to
// storage.
func BuildDetail(ctx context.Context, ds DataSource, lookup SubtitlesLookup, mt *model.MovieTicket) (*TicketDetailView, error) {
	movie, err := ds.FetchActiveMovie(ctx, mt.MovieCode)
	if err != nil {
		return nil, err
	}
	sched, err := ds.FetchTheaterSchedule(ctx, mt.MovieCode)
	if err != nil {
		return nil, err
	}

	// The subtitles/dubbing code only exists on schedules linked to a
	// movie; without a schedule both subtitle fields stay null.
	var subCode, subName *string
	if sched != nil && sched.SubtitlesDubbingCode != "" {
		code := sched.SubtitlesDubbingCode
		subCode = &code
		if lookup != nil {
			if name, ok := lookup(code); ok {
				subName = &name
			}
		}
	}

	title := ResolveTitle(movie, sched)
	titleJA := ResolveTitleJA(movie, sched)
	if title == "" || titleJA == "" {
		return nil, ErrTitleUnresolved
	}

	mt.FacilityCode, mt.FacilityName = NormalizeFacility(mt.FacilityCode, mt.FacilityName)

	facilityList := []FacilityView{}
	if mt.FacilityCode != "" && mt.FacilityName != "" {
		facilityList = append(facilityList, FacilityView{
			FacilityCode: mt.FacilityCode,
			FacilityName: mt.FacilityName,
		})
	}

	return &TicketDetailView{
		TransactionID:        mt.TransactionID,
		ManagementMovieCode:  mt.ManagementMovieCode,
		MovieCode:            mt.MovieCode,
		Title:                title,
		TitleJA:              titleJA,
		ShowingDate:          mt.ShowingDate.Format("2006-01-02"),
		ShowingStartTime:     mt.ShowingStartTime,
		ShowingEndTime:       mt.ShowingEndTime,
		TheaterCode:          mt.TheaterCode,
		TheaterName:          mt.TheaterName,
		PurchaseNumber:       mt.PurchaseNumber,
		ThumbnailURL:         ResolveThumbnail(movie),
		FacilityList:         facilityList,
		SubtitlesDubbingCode: subCode,
		SubtitlesDubbingName: subName,
		ScreenNameJA:         mt.ScreenName,
		ScreenNameEN:         nil,
		SeatList:             BuildSeatList(mt.Seats),
		PhoneNumber:          mt.PhoneNumber,
		PurchaseQRCode:       mt.PurchaseQRCode,
		ExistsMovieData:      movie != nil,
	}, nil
}
