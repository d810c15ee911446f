package model

import "time"

// MovieTicket is one purchased mobile-ticket transaction as stored by
// the app server.  A ticket belongs to a user, points at a movie and a
// theater by code, and carries the showing slot plus the purchase
// identifiers needed to render the ticket in the app.
//
// Fields:
//  TransactionID       – unique id of the purchase transaction.
//  UserID              – owner of the ticket.
//  ManagementMovieCode – chain-internal movie management code.
//  MovieCode           – movie code used for movie/schedule lookups.
//  TheaterCode         – code of the theater where the showing happens.
//  TheaterName         – theater display name (joined from theaters).
//  ShowingDate         – date of the showing (jyouei_day).
//  ShowingStartTime    – start time string, e.g. "18:30".
//  ShowingEndTime      – end time string.
//  PurchaseNumber      – purchase number shown to staff (kounyu_cd).
//  FacilityCode        – screen format code, e.g. "IMAX" (detail only).
//  FacilityName        – screen format display name (detail only).
//  ScreenName          – screen name in Japanese (detail only).
//  PhoneNumber         – purchaser phone number (detail only).
//  PurchaseQRCode      – QR payload for ticketing machines (detail only).
//  Seats               – seat assignments of this transaction.
//  Movie               – eager-loaded movie relation; nil when the
//                        movie record is soft-deleted or missing.
//  Schedule            – eager-loaded theater schedule relation; nil
//                        when no schedule exists for the movie code.
type MovieTicket struct {
	TransactionID       string           // movie_tickets.transaction_id
	UserID              string           // movie_tickets.user_id
	ManagementMovieCode string           // movie_tickets.management_movie_code
	MovieCode           string           // movie_tickets.movie_code
	TheaterCode         string           // movie_tickets.theater_code
	TheaterName         string           // theaters.theater_name
	ShowingDate         time.Time        // movie_tickets.jyouei_day
	ShowingStartTime    string           // movie_tickets.jyouei_start_time
	ShowingEndTime      string           // movie_tickets.jyouei_end_time
	PurchaseNumber      string           // movie_tickets.kounyu_cd
	FacilityCode        string           // movie_tickets.facility_code
	FacilityName        string           // movie_tickets.facility_name
	ScreenName          string           // movie_tickets.screen_name
	PhoneNumber         string           // movie_tickets.phone_number
	PurchaseQRCode      string           // movie_tickets.purchase_qr_code
	Seats               []Seat           // rows of movie_ticket_seats
	Movie               *Movie           // eager-loaded relation, nullable
	Schedule            *TheaterSchedule // eager-loaded relation, nullable
}

// Seat is a single seat assignment within a ticket transaction.  The
// seat number is stored as text by the source system ("D-12", "5"),
// so ordering is defined on the stored representation.
//
// Fields:
//  SeatNo       – seat number string; sort key for seat lists.
//  KensyuName   – ticket class name (adult, child, member, ...).
//  WaribikiName – discount / price-adjustment label (waribiki_onaori).
//  KaiinNo      – member number when purchased on a membership.
type Seat struct {
	SeatNo       string // movie_ticket_seats.seat_no
	KensyuName   string // movie_ticket_seats.kensyu_nm
	WaribikiName string // movie_ticket_seats.waribiki_onaori_name
	KaiinNo      string // movie_ticket_seats.kaiin_no
}
