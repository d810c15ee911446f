package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ErrUserNotFound is returned when a distribution target cannot be
// resolved to a user account.
var ErrUserNotFound = errors.New("user not found")

// DistributionRepo grants promotional (TC) tickets to users.  TC
// tickets are issued by campaigns rather than purchases, so they live
// in their own table keyed by user and ticket type.
type DistributionRepo struct {
	db *sql.DB
}

// NewDistributionRepo constructs a DistributionRepo with the given DB handle.
func NewDistributionRepo(db *sql.DB) *DistributionRepo {
	return &DistributionRepo{db: db}
}

// DistributeTCTicket grants one TC ticket of the given type to a user.
func (r *DistributionRepo) DistributeTCTicket(ctx context.Context, ticketType, userID string) error {
	const q = `INSERT INTO tc_tickets (user_id, ticket_type, distributed_at)
	           VALUES (?, ?, CURRENT_TIMESTAMP)`
	_, err := r.db.ExecContext(ctx, q, userID, ticketType)
	return err
}

// DistributeByReceipt grants a TC ticket by receipt number to the user
// registered under the given email address.  It returns the result
// code the app server reports back to the caller: "1" on success, "0"
// when no matching user exists.
func (r *DistributionRepo) DistributeByReceipt(ctx context.Context, receiptNumber, email string) (string, error) {
	const lookup = `SELECT user_id FROM users WHERE email_address = ?`
	var userID string
	err := r.db.QueryRowContext(ctx, lookup, email).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "0", nil
		}
		return "", err
	}

	const q = `INSERT INTO tc_tickets (user_id, receipt_number, distributed_at)
	           VALUES (?, ?, CURRENT_TIMESTAMP)`
	if _, err := r.db.ExecContext(ctx, q, userID, receiptNumber); err != nil {
		return "", err
	}
	return "1", nil
}
