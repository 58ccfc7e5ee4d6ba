package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/domain/topups"
	"github.com/Zorochan404/adv-backend-sub001/internal/infra/dbx"
	"github.com/jackc/pgx/v5"
)

type Store interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	// GetForUpdate locks the row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*Booking, error)
	// Update persists b if its version is still current and bumps it.
	Update(ctx context.Context, b *Booking) error
	HasOverlap(ctx context.Context, carID int64, start, end time.Time, excludeID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64, f Filter) ([]Booking, int, error)
	// ListOverdue pages by id: it returns up to limit candidates with id > afterID.
	ListOverdue(ctx context.Context, now time.Time, afterID int64, limit int) ([]Booking, error)
}

// TxStores are the repositories bound to one transaction.
type TxStores struct {
	Bookings Store
	Ledger   topups.Ledger
}

// TxRunner runs fn in a transaction, committing only when fn returns nil.
type TxRunner interface {
	WithBookingTx(ctx context.Context, fn func(tx TxStores) error) error
}

type Repository struct {
	q dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{q: q}
}

const bookingColumns = `
	id, user_id, car_id, pickup_parking_id, dropoff_parking_id,
	start_date, end_date, pickup_date, original_pickup_date, reschedule_count, max_reschedule_count,
	base_price, advance_amount, remaining_amount, total_price, delivery_charges,
	extension_price, extension_time, extension_till,
	late_fees, late_fees_paid, late_fees_payment_reference, late_fees_paid_at,
	status, advance_payment_status, advance_payment_reference, confirmation_status,
	final_payment_status, final_payment_reference,
	otp_code, otp_expires_at, otp_verified, otp_verified_by, otp_verified_at,
	COALESCE(car_condition_images, '{}'), COALESCE(tools, '[]'::jsonb), COALESCE(tool_images, '{}'), user_confirmed,
	pic_approved, pic_approved_by, pic_approved_at, pic_comments,
	actual_pickup_date, actual_dropoff_date, return_condition, COALESCE(return_images, '{}'), return_comments,
	version, created_at, updated_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b     Booking
		tools []byte
	)
	err := row.Scan(
		&b.ID, &b.UserID, &b.CarID, &b.PickupParkingID, &b.DropoffParkingID,
		&b.StartDate, &b.EndDate, &b.PickupDate, &b.OriginalPickupDate, &b.RescheduleCount, &b.MaxRescheduleCount,
		&b.BasePrice, &b.AdvanceAmount, &b.RemainingAmount, &b.TotalPrice, &b.DeliveryCharges,
		&b.ExtensionPrice, &b.ExtensionTime, &b.ExtensionTill,
		&b.LateFees, &b.LateFeesPaid, &b.LateFeesPaymentReference, &b.LateFeesPaidAt,
		&b.Status, &b.AdvancePaymentStatus, &b.AdvancePaymentReference, &b.ConfirmationStatus,
		&b.FinalPaymentStatus, &b.FinalPaymentReference,
		&b.OTPCode, &b.OTPExpiresAt, &b.OTPVerified, &b.OTPVerifiedBy, &b.OTPVerifiedAt,
		&b.CarConditionImages, &tools, &b.ToolImages, &b.UserConfirmed,
		&b.PICApproved, &b.PICApprovedBy, &b.PICApprovedAt, &b.PICComments,
		&b.ActualPickupDate, &b.ActualDropoffDate, &b.ReturnCondition, &b.ReturnImages, &b.ReturnComments,
		&b.Version, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// rows written before the tools column was normalized may hold strings
	b.Tools = SanitizeTools(tools)
	return &b, nil
}

func (r *Repository) Create(ctx context.Context, b *Booking) error {
	const query = `
		INSERT INTO bookings (
			user_id, car_id, pickup_parking_id, dropoff_parking_id,
			start_date, end_date, pickup_date, max_reschedule_count,
			base_price, advance_amount, remaining_amount, total_price, delivery_charges,
			status, advance_payment_status, confirmation_status, final_payment_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, version, created_at, updated_at`

	err := r.q.QueryRow(ctx, query,
		b.UserID, b.CarID, b.PickupParkingID, b.DropoffParkingID,
		b.StartDate, b.EndDate, b.PickupDate, b.MaxRescheduleCount,
		b.BasePrice, b.AdvanceAmount, b.RemainingAmount, b.TotalPrice, b.DeliveryCharges,
		b.Status, b.AdvancePaymentStatus, b.ConfirmationStatus, b.FinalPaymentStatus,
	).Scan(&b.ID, &b.Version, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if dbx.IsConstraintViolation(err) {
			return ErrOverlap
		}
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return scanBooking(r.q.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
}

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*Booking, error) {
	return scanBooking(r.q.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id))
}

func (r *Repository) Update(ctx context.Context, b *Booking) error {
	const query = `
		UPDATE bookings SET
			start_date = $3, end_date = $4, pickup_date = $5, original_pickup_date = $6, reschedule_count = $7,
			extension_price = $8, extension_time = $9, extension_till = $10,
			late_fees = $11, late_fees_paid = $12, late_fees_payment_reference = $13, late_fees_paid_at = $14,
			status = $15, advance_payment_status = $16, advance_payment_reference = $17,
			confirmation_status = $18, final_payment_status = $19, final_payment_reference = $20,
			otp_code = $21, otp_expires_at = $22, otp_verified = $23, otp_verified_by = $24, otp_verified_at = $25,
			car_condition_images = $26, tools = $27, tool_images = $28, user_confirmed = $29,
			pic_approved = $30, pic_approved_by = $31, pic_approved_at = $32, pic_comments = $33,
			actual_pickup_date = $34, actual_dropoff_date = $35,
			return_condition = $36, return_images = $37, return_comments = $38,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at`

	tools, err := json.Marshal(CleanTools(b.Tools))
	if err != nil {
		return fmt.Errorf("encode tools: %w", err)
	}

	err = r.q.QueryRow(ctx, query,
		b.ID, b.Version,
		b.StartDate, b.EndDate, b.PickupDate, b.OriginalPickupDate, b.RescheduleCount,
		b.ExtensionPrice, b.ExtensionTime, b.ExtensionTill,
		b.LateFees, b.LateFeesPaid, b.LateFeesPaymentReference, b.LateFeesPaidAt,
		b.Status, b.AdvancePaymentStatus, b.AdvancePaymentReference,
		b.ConfirmationStatus, b.FinalPaymentStatus, b.FinalPaymentReference,
		b.OTPCode, b.OTPExpiresAt, b.OTPVerified, b.OTPVerifiedBy, b.OTPVerifiedAt,
		nonNil(b.CarConditionImages), tools, nonNil(b.ToolImages), b.UserConfirmed,
		b.PICApproved, b.PICApprovedBy, b.PICApprovedAt, b.PICComments,
		b.ActualPickupDate, b.ActualDropoffDate,
		b.ReturnCondition, nonNil(b.ReturnImages), b.ReturnComments,
	).Scan(&b.Version, &b.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return ErrVersionConflict
		case dbx.IsConstraintViolation(err):
			return ErrOverlap
		default:
			return err
		}
	}
	return nil
}

// HasOverlap checks non-cancelled bookings of the car whose effective window
// intersects [start, end).
func (r *Repository) HasOverlap(ctx context.Context, carID int64, start, end time.Time, excludeID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE car_id = $1
			  AND status <> 'cancelled'
			  AND id <> $4
			  AND start_date < $3
			  AND COALESCE(extension_till, end_date) > $2
		)`

	var exists bool
	err := r.q.QueryRow(ctx, query, carID, start, end, excludeID).Scan(&exists)
	return exists, err
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, f Filter) ([]Booking, int, error) {
	query := `SELECT ` + bookingColumns + `, COUNT(*) OVER() FROM bookings WHERE user_id = $1`
	args := []any{userID}
	if f.Status != nil {
		args = append(args, *f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []Booking{}
	total := 0
	for rows.Next() {
		b, err := scanBooking(countingRow{rows: rows, total: &total})
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *b)
	}
	return list, total, rows.Err()
}

// ListOverdue returns active rentals past their effective end whose late
// fees are still open.
func (r *Repository) ListOverdue(ctx context.Context, now time.Time, afterID int64, limit int) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE status = 'active'
		  AND late_fees_paid = false
		  AND actual_dropoff_date IS NULL
		  AND COALESCE(extension_till, end_date) < $1
		  AND id > $2
		ORDER BY id
		LIMIT $3`

	rows, err := r.q.Query(ctx, query, now, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *b)
	}
	return list, rows.Err()
}

// countingRow appends the window COUNT(*) column to a booking scan.
type countingRow struct {
	rows  pgx.Rows
	total *int
}

func (c countingRow) Scan(dest ...any) error {
	return c.rows.Scan(append(dest, c.total)...)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
