// Package ticket builds the externally visible ticket representations
// from raw ticket, movie, schedule and seat records.  It holds the
// rendering rules shared by the list and detail endpoints: title and
// thumbnail fallback, facility normalization and seat ordering.  The
// package is pure apart from database reads through DataSource.
package ticket

// TicketView is one entry of a ticket list response.  Derived, never
// persisted.  A successfully built view always carries non-empty
// Title and TitleJA.
type TicketView struct {
	TransactionID       string      `json:"transaction_id"`
	ManagementMovieCode string      `json:"management_movie_code"`
	MovieCode           string      `json:"movie_code"`
	Title               string      `json:"title"`
	TitleJA             string      `json:"title_ja"`
	ShowingDate         string      `json:"showing_date"`
	ShowingStartTime    string      `json:"showing_start_time"`
	ShowingEndTime      string      `json:"showing_end_time"`
	TheaterCode         string      `json:"theater_code"`
	TheaterName         string      `json:"theater_name"`
	PurchaseNumber      string      `json:"purchase_number"`
	ThumbnailURL        string      `json:"thumbnail_url"`
	ExistsMovieData     bool        `json:"exists_movie_data"`
	MobileOrder         MobileOrder `json:"mobile_order"`
}

// MobileOrder is the concession pre-order payload of a before-show
// ticket.  With no concessions it serializes as an empty object, not
// null; the app distinguishes "no mobile order" from "field missing".
type MobileOrder struct {
	Concession []ConcessionView `json:"concession,omitempty"`
}

// ConcessionView mirrors one concession counter in the wire format.
type ConcessionView struct {
	ConcessionID   string `json:"concession_id"`
	ConcessionName string `json:"concession_name"`
	MobileOrderURL string `json:"mobile_order_url"`
	CautionText    string `json:"caution_text"`
}

// FacilityView is one screen-format entry of facility_list.
type FacilityView struct {
	FacilityCode string `json:"facility_code"`
	FacilityName string `json:"facility_name"`
}

// SeatView is one seat in a detail response.  JSON keys follow the
// column names of the system of record.
type SeatView struct {
	SeatNumber   string `json:"seat_number"`
	KensyuName   string `json:"kensyu_name"`
	WaribikiName string `json:"waribiki_onaori_name"`
	KaiinNo      string `json:"kaiin_no"`
}

// TicketDetailView is the full single-ticket response.
// ScreenNameEN is always null today; the source system only stores the
// Japanese screen name.
type TicketDetailView struct {
	TransactionID        string         `json:"transaction_id"`
	ManagementMovieCode  string         `json:"management_movie_code"`
	MovieCode            string         `json:"movie_code"`
	Title                string         `json:"title"`
	TitleJA              string         `json:"title_ja"`
	ShowingDate          string         `json:"showing_date"`
	ShowingStartTime     string         `json:"showing_start_time"`
	ShowingEndTime       string         `json:"showing_end_time"`
	TheaterCode          string         `json:"theater_code"`
	TheaterName          string         `json:"theater_name"`
	PurchaseNumber       string         `json:"purchase_number"`
	ThumbnailURL         string         `json:"thumbnail_url"`
	FacilityList         []FacilityView `json:"facility_list"`
	SubtitlesDubbingCode *string        `json:"subtitles_dubbing_code"`
	SubtitlesDubbingName *string        `json:"subtitles_dubbing_name"`
	ScreenNameJA         string         `json:"screen_name_ja"`
	ScreenNameEN         *string        `json:"screen_name_en"`
	SeatList             []SeatView     `json:"seat_list"`
	PhoneNumber          string         `json:"phone_number"`
	PurchaseQRCode       string         `json:"purchase_qr_code"`
	ExistsMovieData      bool           `json:"exists_movie_data"`
}

// ListResponse wraps ticket list entries the way the app expects them.
type ListResponse struct {
	TicketList []TicketView `json:"ticket_list"`
}
