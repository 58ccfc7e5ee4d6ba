package topups

import (
	"context"

	"github.com/Zorochan404/adv-backend-sub001/internal/infra/dbx"
)

// Ledger is the append-only history of topups applied to bookings.
type Ledger interface {
	Append(ctx context.Context, entry *BookingTopup) error
	ListByBooking(ctx context.Context, bookingID int64) ([]BookingTopup, error)
}

type Repository struct {
	q dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{q: q}
}

func (r *Repository) Append(ctx context.Context, e *BookingTopup) error {
	const query = `
		INSERT INTO booking_topups (
			booking_id, topup_id, original_end_date, new_end_date, amount, payment_reference_id
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, applied_at`

	return r.q.QueryRow(ctx, query,
		e.BookingID,
		e.TopupID,
		e.OriginalEndDate,
		e.NewEndDate,
		e.Amount,
		e.PaymentReference,
	).Scan(&e.ID, &e.AppliedAt)
}

func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]BookingTopup, error) {
	const query = `
		SELECT id, booking_id, topup_id, original_end_date, new_end_date, amount,
		       payment_reference_id, applied_at
		FROM booking_topups
		WHERE booking_id = $1
		ORDER BY applied_at ASC, id ASC`

	rows, err := r.q.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []BookingTopup{}
	for rows.Next() {
		var e BookingTopup
		if err := rows.Scan(
			&e.ID,
			&e.BookingID,
			&e.TopupID,
			&e.OriginalEndDate,
			&e.NewEndDate,
			&e.Amount,
			&e.PaymentReference,
			&e.AppliedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
