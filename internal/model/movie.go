package model

// Movie is the master record of a movie currently or previously on the
// chain's lineup.  Movies are soft-deleted when they leave the lineup,
// so a ticket may outlive its movie record; lookups that feed ticket
// rendering must exclude deleted rows.
//
// Fields:
//  MovieCode    – primary lookup code, matches MovieTicket.MovieCode.
//  Title        – title in the original language.
//  TitleJA      – Japanese title.
//  ThumbnailURL – poster thumbnail URL; may be empty.
//  IsDeleted    – soft-deletion flag; deleted rows are kept in storage.
type Movie struct {
	MovieCode    string // movies.movie_code
	Title        string // movies.title
	TitleJA      string // movies.title_ja
	ThumbnailURL string // movies.thumbnail_url
	IsDeleted    bool   // movies.is_deleted
}
