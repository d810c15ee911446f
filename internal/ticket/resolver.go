package ticket

import "github.com/tcapp/mobile-ticket-api/internal/model"

// ResolveTitle returns the display title for a ticket.  The movie
// record is the only source; a missing or soft-deleted movie yields "".
// The schedule is accepted as a future secondary source for tickets
// whose movie record is gone, but it is not consulted today.
func ResolveTitle(movie *model.Movie, sched *model.TheaterSchedule) string {
	if movie != nil {
		return movie.Title
	}
	return ""
}

// ResolveTitleJA is ResolveTitle for the Japanese title.
func ResolveTitleJA(movie *model.Movie, sched *model.TheaterSchedule) string {
	if movie != nil {
		return movie.TitleJA
	}
	return ""
}

// ResolveThumbnail returns the movie's thumbnail URL.  An absent movie
// or an empty stored URL both yield ""; the API never renders the
// thumbnail as null.
func ResolveThumbnail(movie *model.Movie) string {
	if movie == nil {
		return ""
	}
	return movie.ThumbnailURL
}
