package repository // repository defines data access for mobile tickets

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tcapp/mobile-ticket-api/internal/model"
)

// ErrTicketNotFound is returned when a ticket lookup yields no rows.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketRepo provides methods to work with movie ticket transactions.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the given DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// FetchByUser returns a user's mobile tickets.  With before=true the
// query selects showings from today onward ordered soonest-first; with
// before=false it selects past showings newest-first and additionally
// left-joins the active movie record and the theater schedule so the
// after list can be rendered without per-ticket follow-up queries.
func (r *TicketRepo) FetchByUser(ctx context.Context, userID string, before bool) ([]model.MovieTicket, error) {
	if before {
		const q = `SELECT mt.transaction_id, mt.user_id, mt.management_movie_code, mt.movie_code,
		                  mt.theater_code, t.theater_name, mt.jyouei_day, mt.jyouei_start_time,
		                  mt.jyouei_end_time, mt.kounyu_cd
		           FROM movie_tickets mt
		           JOIN theaters t ON t.theater_code = mt.theater_code
		           WHERE mt.user_id = ? AND mt.jyouei_day >= CURRENT_DATE
		           ORDER BY mt.jyouei_day, mt.jyouei_start_time`
		rows, err := r.db.QueryContext(ctx, q, userID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var result []model.MovieTicket
		for rows.Next() {
			var mt model.MovieTicket
			if err := rows.Scan(
				&mt.TransactionID, &mt.UserID, &mt.ManagementMovieCode, &mt.MovieCode,
				&mt.TheaterCode, &mt.TheaterName, &mt.ShowingDate, &mt.ShowingStartTime,
				&mt.ShowingEndTime, &mt.PurchaseNumber,
			); err != nil {
				return nil, err
			}
			result = append(result, mt)
		}
		return result, rows.Err()
	}

	const q = `SELECT mt.transaction_id, mt.user_id, mt.management_movie_code, mt.movie_code,
	                  mt.theater_code, t.theater_name, mt.jyouei_day, mt.jyouei_start_time,
	                  mt.jyouei_end_time, mt.kounyu_cd,
	                  m.movie_code, m.title, m.title_ja, m.thumbnail_url,
	                  ts.movie_code, ts.theater_code, ts.subtitles_dubbing_code
	           FROM movie_tickets mt
	           JOIN theaters t ON t.theater_code = mt.theater_code
	           LEFT JOIN movies m
	                  ON m.movie_code = mt.movie_code AND m.is_deleted = FALSE
	           LEFT JOIN theater_schedules ts
	                  ON ts.movie_code = mt.movie_code AND ts.theater_code = mt.theater_code
	           WHERE mt.user_id = ? AND mt.jyouei_day < CURRENT_DATE
	           ORDER BY mt.jyouei_day DESC, mt.jyouei_start_time DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MovieTicket
	for rows.Next() {
		var mt model.MovieTicket
		var movieCode, title, titleJA, thumbnail sql.NullString
		var schedMovieCode, schedTheaterCode, subCode sql.NullString
		if err := rows.Scan(
			&mt.TransactionID, &mt.UserID, &mt.ManagementMovieCode, &mt.MovieCode,
			&mt.TheaterCode, &mt.TheaterName, &mt.ShowingDate, &mt.ShowingStartTime,
			&mt.ShowingEndTime, &mt.PurchaseNumber,
			&movieCode, &title, &titleJA, &thumbnail,
			&schedMovieCode, &schedTheaterCode, &subCode,
		); err != nil {
			return nil, err
		}
		if movieCode.Valid {
			mt.Movie = &model.Movie{
				MovieCode:    movieCode.String,
				Title:        title.String,
				TitleJA:      titleJA.String,
				ThumbnailURL: thumbnail.String,
			}
		}
		if schedMovieCode.Valid {
			mt.Schedule = &model.TheaterSchedule{
				MovieCode:            schedMovieCode.String,
				TheaterCode:          schedTheaterCode.String,
				SubtitlesDubbingCode: subCode.String,
			}
		}
		result = append(result, mt)
	}
	return result, rows.Err()
}

// FetchDetail returns one ticket of a user by transaction id, seats
// included.  Returns ErrTicketNotFound when no such ticket exists for
// the user.
func (r *TicketRepo) FetchDetail(ctx context.Context, userID, transactionID string) (*model.MovieTicket, error) {
	const q = `SELECT mt.transaction_id, mt.user_id, mt.management_movie_code, mt.movie_code,
	                  mt.theater_code, t.theater_name, mt.jyouei_day, mt.jyouei_start_time,
	                  mt.jyouei_end_time, mt.kounyu_cd, mt.facility_code, mt.facility_name,
	                  mt.screen_name, mt.phone_number, mt.purchase_qr_code
	           FROM movie_tickets mt
	           JOIN theaters t ON t.theater_code = mt.theater_code
	           WHERE mt.user_id = ? AND mt.transaction_id = ?`
	var mt model.MovieTicket
	var facilityCode, facilityName, screenName, phone, qr sql.NullString
	err := r.db.QueryRowContext(ctx, q, userID, transactionID).Scan(
		&mt.TransactionID, &mt.UserID, &mt.ManagementMovieCode, &mt.MovieCode,
		&mt.TheaterCode, &mt.TheaterName, &mt.ShowingDate, &mt.ShowingStartTime,
		&mt.ShowingEndTime, &mt.PurchaseNumber, &facilityCode, &facilityName,
		&screenName, &phone, &qr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	mt.FacilityCode = facilityCode.String
	mt.FacilityName = facilityName.String
	mt.ScreenName = screenName.String
	mt.PhoneNumber = phone.String
	mt.PurchaseQRCode = qr.String

	seats, err := r.fetchSeats(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	mt.Seats = seats
	return &mt, nil
}

// fetchSeats loads the seat assignments of a transaction.  Ordering is
// left to the view layer, which sorts by seat number.
func (r *TicketRepo) fetchSeats(ctx context.Context, transactionID string) ([]model.Seat, error) {
	const q = `SELECT seat_no, kensyu_nm, waribiki_onaori_name, kaiin_no
	           FROM movie_ticket_seats
	           WHERE transaction_id = ?`
	rows, err := r.db.QueryContext(ctx, q, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []model.Seat
	for rows.Next() {
		var s model.Seat
		var kensyu, waribiki, kaiin sql.NullString
		if err := rows.Scan(&s.SeatNo, &kensyu, &waribiki, &kaiin); err != nil {
			return nil, err
		}
		s.KensyuName = kensyu.String
		s.WaribikiName = waribiki.String
		s.KaiinNo = kaiin.String
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

// MarkIssued sets a purchase to "used" after the ticketing machines
// report the tickets as issued.
func (r *TicketRepo) MarkIssued(ctx context.Context, transactionID string) error {
	const q = `UPDATE movie_tickets
	           SET status = 'USED', ticketing_notified_at = CURRENT_TIMESTAMP
	           WHERE transaction_id = ?`
	_, err := r.db.ExecContext(ctx, q, transactionID)
	return err
}

// MarkShareTicketNotified flags any shared (gifted) ticket of the
// transaction so the recipient is not notified twice.  Transactions
// without a share row are a no-op.
func (r *TicketRepo) MarkShareTicketNotified(ctx context.Context, transactionID string) error {
	const q = `UPDATE share_tickets
	           SET ticketing_notified = TRUE, updated_at = CURRENT_TIMESTAMP
	           WHERE transaction_id = ?`
	_, err := r.db.ExecContext(ctx, q, transactionID)
	return err
}

// MarkRefunded sets a purchase to "refunded" when the app server
// reports a completed refund.
func (r *TicketRepo) MarkRefunded(ctx context.Context, transactionID string) error {
	const q = `UPDATE movie_tickets
	           SET status = 'REFUNDED', refunded_at = CURRENT_TIMESTAMP
	           WHERE transaction_id = ?`
	_, err := r.db.ExecContext(ctx, q, transactionID)
	return err
}
