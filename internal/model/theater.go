package model

// Theater is a cinema site of the chain.
//
// Fields:
//  TheaterCode – unique code, matches MovieTicket.TheaterCode.
//  TheaterName – display name shown on tickets.
type Theater struct {
	TheaterCode string // theaters.theater_code
	TheaterName string // theaters.theater_name
}

// TheaterSchedule is the showing schedule row a theater publishes for a
// movie code.  It is an optional secondary source for ticket rendering:
// the subtitles/dubbing code is only available here, and only for
// schedules that are linked to a movie.
//
// Fields:
//  MovieCode           – movie code the schedule belongs to.
//  TheaterCode         – theater publishing the schedule.
//  SubtitlesDubbingCode – code of the subtitled/dubbed variant; empty
//                         when the schedule carries no variant info.
type TheaterSchedule struct {
	MovieCode            string // theater_schedules.movie_code
	TheaterCode          string // theater_schedules.theater_code
	SubtitlesDubbingCode string // theater_schedules.subtitles_dubbing_code
}
