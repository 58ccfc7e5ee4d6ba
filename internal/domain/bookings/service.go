package bookings

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/apperror"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/accesscontrol"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/catalog"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/otp"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/pricing"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/topups"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/users"
	"go.uber.org/zap"
)

type CarReader interface {
	GetCar(ctx context.Context, id int64) (*catalog.Car, error)
}

type ParkingReader interface {
	GetParking(ctx context.Context, id int64) (*catalog.Parking, error)
}

type TopupReader interface {
	GetTopup(ctx context.Context, id int64) (*topups.Topup, error)
}

type RenterReader interface {
	GetByID(ctx context.Context, id int64) (*users.User, error)
}

type Deps struct {
	Store    Store
	Tx       TxRunner
	Ledger   topups.Ledger
	Cars     CarReader
	Parkings ParkingReader
	Topups   TopupReader
	Renters  RenterReader
	Policy   *accesscontrol.Policy
	OTP      *otp.Engine
	Pricing  *pricing.Calculator
	Logger   *zap.SugaredLogger

	MaxRescheduleCount int
	SweepBatchSize     int
	// Now defaults to time.Now.
	Now func() time.Time
}

// Service drives a booking through its lifecycle. Every mutating call locks
// the booking row, checks access, checks state, and writes with a version
// check, all inside one transaction.
type Service struct {
	store    Store
	tx       TxRunner
	ledger   topups.Ledger
	cars     CarReader
	parkings ParkingReader
	topups   TopupReader
	renters  RenterReader
	policy   *accesscontrol.Policy
	otp      *otp.Engine
	pricing  *pricing.Calculator
	logger   *zap.SugaredLogger

	maxReschedule int
	sweepBatch    int
	now           func() time.Time
}

func NewService(d Deps) *Service {
	s := &Service{
		store:         d.Store,
		tx:            d.Tx,
		ledger:        d.Ledger,
		cars:          d.Cars,
		parkings:      d.Parkings,
		topups:        d.Topups,
		renters:       d.Renters,
		policy:        d.Policy,
		otp:           d.OTP,
		pricing:       d.Pricing,
		logger:        d.Logger,
		maxReschedule: d.MaxRescheduleCount,
		sweepBatch:    d.SweepBatchSize,
		now:           d.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = zap.NewNop().Sugar()
	}
	if s.sweepBatch <= 0 {
		s.sweepBatch = 200
	}
	return s
}

type mutation func(tx TxStores, b *Booking, car *catalog.Car, now time.Time) error

func resourceOf(b *Booking, car *catalog.Car) accesscontrol.Resource {
	return accesscontrol.Resource{OwnerID: b.UserID, ParkingID: car.ParkingID}
}

func (s *Service) mutate(ctx context.Context, op string, actor accesscontrol.Actor, id int64, capability accesscontrol.Capability, fn mutation) (*Booking, error) {
	if !s.policy.Allows(actor.Role, capability) {
		return nil, accesscontrol.ErrRoleNotAllowed
	}

	var out *Booking
	err := s.tx.WithBookingTx(ctx, func(tx TxStores) error {
		b, err := tx.Bookings.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		car, err := s.cars.GetCar(ctx, b.CarID)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(actor, capability, resourceOf(b, car)); err != nil {
			return err
		}

		if err := fn(tx, b, car, s.now()); err != nil {
			return err
		}
		if err := tx.Bookings.Update(ctx, b); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, s.fail(op, id, err)
	}

	s.logger.Infow("booking updated", "op", op, "booking_id", out.ID, "status", out.Status, "actor_id", actor.ID)
	return out, nil
}

func (s *Service) load(ctx context.Context, actor accesscontrol.Actor, id int64, capability accesscontrol.Capability) (*Booking, *catalog.Car, error) {
	if !s.policy.Allows(actor.Role, capability) {
		return nil, nil, accesscontrol.ErrRoleNotAllowed
	}
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	car, err := s.cars.GetCar(ctx, b.CarID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.policy.Authorize(actor, capability, resourceOf(b, car)); err != nil {
		return nil, nil, err
	}
	return b, car, nil
}

// fail is the single error boundary of an operation: typed errors pass
// through, anything else is logged and hidden behind a 500.
func (s *Service) fail(op string, bookingID int64, err error) error {
	wrapped := apperror.Wrap(err)
	if apperror.Code(wrapped) >= http.StatusInternalServerError {
		s.logger.Errorw("booking operation failed", "op", op, "booking_id", bookingID, "error", err.Error())
	}
	return wrapped
}

func moveTo(b *Booking, target Status) error {
	if !b.Status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	b.Status = target
	return nil
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *Service) CreateBooking(ctx context.Context, actor accesscontrol.Actor, in CreateInput) (*Booking, error) {
	if err := s.policy.Authorize(actor, accesscontrol.CreateBooking, accesscontrol.Resource{OwnerID: actor.ID}); err != nil {
		return nil, err
	}
	if !in.StartDate.Before(in.EndDate) {
		return nil, ErrInvalidDateRange
	}
	pickup := in.StartDate
	if in.PickupDate != nil {
		pickup = *in.PickupDate
	}
	if pickup.Before(in.StartDate) || !pickup.Before(in.EndDate) {
		return nil, ErrInvalidPickupDate
	}
	if in.DeliveryCharges < 0 {
		return nil, apperror.BadRequest("delivery charges cannot be negative")
	}

	renter, err := s.renters.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, apperror.Unauthorized("account not found")
		}
		return nil, s.fail("create_booking", 0, err)
	}
	if !renter.IsVerified {
		return nil, ErrRenterUnverified
	}

	car, err := s.cars.GetCar(ctx, in.CarID)
	if err != nil {
		return nil, s.fail("create_booking", 0, err)
	}
	if !car.IsAvailable {
		return nil, ErrCarUnavailable
	}

	quote := s.pricing.Quote(car.Price, car.DiscountedPrice, in.StartDate, in.EndDate, in.DeliveryCharges)

	pickupParking := car.ParkingID
	if in.PickupParkingID != nil {
		pickupParking = *in.PickupParkingID
	}
	dropoffParking := pickupParking
	if in.DropoffParkingID != nil {
		dropoffParking = *in.DropoffParkingID
	}
	for _, id := range []int64{pickupParking, dropoffParking} {
		if id == car.ParkingID {
			continue
		}
		if _, err := s.parkings.GetParking(ctx, id); err != nil {
			return nil, s.fail("create_booking", 0, err)
		}
	}

	b := &Booking{
		UserID:               actor.ID,
		CarID:                car.ID,
		PickupParkingID:      pickupParking,
		DropoffParkingID:     dropoffParking,
		StartDate:            in.StartDate,
		EndDate:              in.EndDate,
		PickupDate:           pickup,
		MaxRescheduleCount:   s.maxReschedule,
		BasePrice:            quote.BasePrice,
		AdvanceAmount:        quote.AdvanceAmount,
		RemainingAmount:      quote.RemainingAmount,
		TotalPrice:           quote.TotalPrice,
		DeliveryCharges:      quote.DeliveryCharges,
		Status:               StatusPending,
		AdvancePaymentStatus: PaymentPending,
		ConfirmationStatus:   ConfirmationPending,
		FinalPaymentStatus:   PaymentPending,
		CarConditionImages:   []string{},
		Tools:                []Tool{},
		ToolImages:           []string{},
		ReturnImages:         []string{},
	}

	err = s.tx.WithBookingTx(ctx, func(tx TxStores) error {
		overlap, err := tx.Bookings.HasOverlap(ctx, b.CarID, b.StartDate, b.EndDate, 0)
		if err != nil {
			return err
		}
		if overlap {
			return ErrOverlap
		}
		return tx.Bookings.Create(ctx, b)
	})
	if err != nil {
		return nil, s.fail("create_booking", 0, err)
	}

	s.logger.Infow("booking created", "booking_id", b.ID, "car_id", b.CarID, "user_id", b.UserID, "base_price", b.BasePrice)
	return b, nil
}

func (s *Service) ConfirmAdvancePayment(ctx context.Context, actor accesscontrol.Actor, id int64, paymentRef string) (*Booking, error) {
	return s.mutate(ctx, "confirm_advance_payment", actor, id, accesscontrol.PayAdvance, func(_ TxStores, b *Booking, _ *catalog.Car, now time.Time) error {
		if b.AdvancePaymentStatus == PaymentPaid {
			return ErrAdvanceAlreadyPaid
		}
		if b.Status.IsTerminal() {
			return ErrBookingClosed
		}
		code, err := s.otp.Generate()
		if err != nil {
			return err
		}
		if err := moveTo(b, StatusAdvancePaid); err != nil {
			return err
		}

		expiry := s.otp.ExpirationForPickup(b.PickupDate, now)
		b.AdvancePaymentStatus = PaymentPaid
		b.AdvancePaymentReference = &paymentRef
		b.OTPCode = &code
		b.OTPExpiresAt = &expiry
		b.OTPVerified = false
		b.OTPVerifiedBy = nil
		b.OTPVerifiedAt = nil
		return nil
	})
}

func (s *Service) SubmitConfirmation(ctx context.Context, actor accesscontrol.Actor, id int64, in ConfirmationInput) (*Booking, error) {
	return s.mutate(ctx, "submit_confirmation", actor, id, accesscontrol.SubmitConfirmation, func(_ TxStores, b *Booking, _ *catalog.Car, _ time.Time) error {
		if b.Status.IsTerminal() {
			return ErrBookingClosed
		}
		if b.AdvancePaymentStatus != PaymentPaid {
			return ErrAdvanceNotPaid
		}
		switch b.ConfirmationStatus {
		case ConfirmationApproved:
			return ErrAlreadyApproved
		case ConfirmationRejected:
			return ErrUseResubmit
		}
		images := cleanStrings(in.CarConditionImages)
		if len(images) == 0 {
			return ErrNoImages
		}

		b.CarConditionImages = images
		b.Tools = CleanTools(in.Tools)
		b.ToolImages = cleanStrings(in.ToolImages)
		b.UserConfirmed = true
		b.ConfirmationStatus = ConfirmationPendingApproval
		return nil
	})
}

func (s *Service) ReviewConfirmation(ctx context.Context, actor accesscontrol.Actor, id int64, approved bool, comments *string) (*Booking, error) {
	return s.mutate(ctx, "review_confirmation", actor, id, accesscontrol.ReviewConfirmation, func(_ TxStores, b *Booking, _ *catalog.Car, now time.Time) error {
		if b.Status.IsTerminal() {
			return ErrBookingClosed
		}
		if b.ConfirmationStatus != ConfirmationPendingApproval {
			return ErrNotPendingApproval
		}

		reviewer := actor.ID
		b.PICApproved = approved
		b.PICApprovedBy = &reviewer
		b.PICApprovedAt = &now
		b.PICComments = comments
		if approved {
			b.ConfirmationStatus = ConfirmationApproved
		} else {
			b.ConfirmationStatus = ConfirmationRejected
		}
		return nil
	})
}

func (s *Service) ResubmitConfirmation(ctx context.Context, actor accesscontrol.Actor, id int64, in ConfirmationInput) (*Booking, error) {
	return s.mutate(ctx, "resubmit_confirmation", actor, id, accesscontrol.ResubmitConfirmation, func(_ TxStores, b *Booking, _ *catalog.Car, _ time.Time) error {
		if b.Status.IsTerminal() {
			return ErrBookingClosed
		}
		if b.ConfirmationStatus != ConfirmationRejected {
			return ErrNotRejected
		}
		if b.AdvancePaymentStatus != PaymentPaid {
			return ErrAdvanceNotPaid
		}
		images := cleanStrings(in.CarConditionImages)
		if len(images) == 0 {
			return ErrNoImages
		}

		b.CarConditionImages = images
		b.Tools = CleanTools(in.Tools)
		b.ToolImages = cleanStrings(in.ToolImages)
		b.UserConfirmed = true
		b.PICApproved = false
		b.PICApprovedBy = nil
		b.PICApprovedAt = nil
		b.ConfirmationStatus = ConfirmationPendingApproval
		return nil
	})
}

func (s *Service) ConfirmFinalPayment(ctx context.Context, actor accesscontrol.Actor, id int64, paymentRef string) (*Booking, error) {
	return s.mutate(ctx, "confirm_final_payment", actor, id, accesscontrol.PayFinal, func(_ TxStores, b *Booking, _ *catalog.Car, _ time.Time) error {
		if b.FinalPaymentStatus == PaymentPaid {
			return ErrFinalAlreadyPaid
		}
		if b.Status.IsTerminal() {
			return ErrBookingClosed
		}
		if b.AdvancePaymentStatus != PaymentPaid {
			return ErrAdvanceNotPaid
		}
		if b.ConfirmationStatus != ConfirmationApproved {
			return ErrNotApproved
		}
		if err := moveTo(b, StatusConfirmed); err != nil {
			return err
		}

		b.FinalPaymentStatus = PaymentPaid
		b.FinalPaymentReference = &paymentRef
		return nil
	})
}

func (s *Service) VerifyOTP(ctx context.Context, actor accesscontrol.Actor, id int64, code string) (*Booking, error) {
	return s.mutate(ctx, "verify_otp", actor, id, accesscontrol.VerifyOTP, func(_ TxStores, b *Booking, _ *catalog.Car, now time.Time) error {
		if b.Status.IsTerminal() {
			return ErrBookingClosed
		}
		stored := ""
		if b.OTPCode != nil {
			stored = *b.OTPCode
		}
		if err := s.otp.Verify(strings.TrimSpace(code), stored, b.OTPExpiresAt, b.OTPVerified, now); err != nil {
			return err
		}
		// the code may be checked early; the status only moves once both gates are open
		if b.ConfirmationStatus == ConfirmationApproved && b.FinalPaymentStatus == PaymentPaid {
			if err := moveTo(b, StatusConfirmed); err != nil {
				return err
			}
		}

		verifier := actor.ID
		b.OTPVerified = true
		b.OTPVerifiedBy = &verifier
		b.OTPVerifiedAt = &now
		return nil
	})
}

func (s *Service) ResendOTP(ctx context.Context, actor accesscontrol.Actor, id int64) (*Booking, error) {
	return s.mutate(ctx, "resend_otp", actor, id, accesscontrol.ResendOTP, func(_ TxStores, b *Booking, _ *catalog.Car, now time.Time) error {
		if b.OTPVerified {
			return otp.ErrAlreadyVerified
		}
		if b.Status != StatusAdvancePaid {
			return ErrResendNotAllowed
		}
		code, err := s.otp.Generate()
		if err != nil {
			return err
		}

		expiry := s.otp.ExpirationTime(now)
		b.OTPCode = &code
		b.OTPExpiresAt = &expiry
		b.OTPVerified = false
		b.OTPVerifiedBy = nil
		b.OTPVerifiedAt = nil
		return nil
	})
}

// Reschedule moves the pickup and rental window. Prices stay as quoted.
func (s *Service) Reschedule(ctx context.Context, actor accesscontrol.Actor, id int64, in RescheduleInput) (*Booking, error) {
	return s.mutate(ctx, "reschedule", actor, id, accesscontrol.Reschedule, func(tx TxStores, b *Booking, _ *catalog.Car, now time.Time) error {
		if b.Status.IsTerminal() {
			return ErrBookingClosed
		}
		if b.ActualPickupDate != nil {
			return ErrRescheduleAfterStart
		}
		limit := b.MaxRescheduleCount
		if limit <= 0 {
			limit = s.maxReschedule
		}
		if b.RescheduleCount >= limit {
			return ErrRescheduleLimit
		}
		if !in.NewPickupDate.After(now) {
			return ErrPickupInPast
		}

		start := in.NewPickupDate
		if in.NewStartDate != nil {
			start = *in.NewStartDate
			if start.Before(now) {
				return ErrStartInPast
			}
		}
		end := start.Add(b.EndDate.Sub(b.StartDate))
		if in.NewEndDate != nil {
			end = *in.NewEndDate
		}
		if !start.Before(end) {
			return ErrInvalidDateRange
		}
		if in.NewPickupDate.Before(start) || !in.NewPickupDate.Before(end) {
			return ErrInvalidPickupDate
		}

		overlap, err := tx.Bookings.HasOverlap(ctx, b.CarID, start, end, b.ID)
		if err != nil {
			return err
		}
		if overlap {
			return ErrOverlap
		}

		regenerate := b.OTPCode != nil && s.otp.ShouldRegenerate(b.OTPExpiresAt, in.NewPickupDate)
		var code string
		if regenerate {
			if code, err = s.otp.Generate(); err != nil {
				return err
			}
		}

		if b.OriginalPickupDate == nil {
			original := b.PickupDate
			b.OriginalPickupDate = &original
		}
		b.PickupDate = in.NewPickupDate
		b.StartDate = start
		b.EndDate = end
		b.RescheduleCount++

		if regenerate {
			expiry := s.otp.ExpirationForPickup(in.NewPickupDate, now)
			b.OTPCode = &code
			b.OTPExpiresAt = &expiry
			b.OTPVerified = false
			b.OTPVerifiedBy = nil
			b.OTPVerifiedAt = nil
		}
		return nil
	})
}

func (s *Service) ConfirmPickup(ctx context.Context, actor accesscontrol.Actor, id int64) (*Booking, error) {
	return s.mutate(ctx, "confirm_pickup", actor, id, accesscontrol.ConfirmPickup, func(_ TxStores, b *Booking, _ *catalog.Car, now time.Time) error {
		if b.ActualPickupDate != nil {
			return ErrAlreadyPickedUp
		}
		if b.Status.IsTerminal() {
			return ErrBookingClosed
		}
		if b.AdvancePaymentStatus != PaymentPaid {
			return ErrAdvanceNotPaid
		}
		if b.ConfirmationStatus != ConfirmationApproved {
			return ErrNotApproved
		}
		if b.FinalPaymentStatus != PaymentPaid {
			return ErrFinalNotPaid
		}
		if !b.OTPVerified {
			return ErrOTPNotVerified
		}
		if err := moveTo(b, StatusActive); err != nil {
			return err
		}

		b.ActualPickupDate = &now
		return nil
	})
}

// ApplyTopup extends an active rental and records the purchase in the ledger.
// The same topup may be applied repeatedly; each call compounds.
func (s *Service) ApplyTopup(ctx context.Context, actor accesscontrol.Actor, id, topupID int64, paymentRef string) (*TopupResult, error) {
	var result TopupResult
	b, err := s.mutate(ctx, "apply_topup", actor, id, accesscontrol.ApplyTopup, func(tx TxStores, b *Booking, _ *catalog.Car, _ time.Time) error {
		if b.Status != StatusActive {
			return ErrNotActive
		}
		t, err := s.topups.GetTopup(ctx, topupID)
		if err != nil {
			return err
		}
		ext, err := topups.Plan(b.EffectiveEnd(), *t)
		if err != nil {
			return err
		}

		overlap, err := tx.Bookings.HasOverlap(ctx, b.CarID, ext.OriginalEnd, ext.NewEnd, b.ID)
		if err != nil {
			return err
		}
		if overlap {
			return ErrOverlap
		}

		entry := &topups.BookingTopup{
			BookingID:        b.ID,
			TopupID:          t.ID,
			OriginalEndDate:  ext.OriginalEnd,
			NewEndDate:       ext.NewEnd,
			Amount:           ext.Price,
			PaymentReference: paymentRef,
		}
		if err := tx.Ledger.Append(ctx, entry); err != nil {
			return err
		}

		newEnd := ext.NewEnd
		b.EndDate = newEnd
		b.ExtensionTill = &newEnd
		b.ExtensionPrice = pricing.Round2(b.ExtensionPrice + ext.Price)
		b.ExtensionTime += ext.Hours

		result = TopupResult{
			BookingTopup:  entry,
			Topup:         t,
			NewEndDate:    newEnd,
			ExtensionTime: b.ExtensionTime,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.UpdatedBooking = b
	return &result, nil
}

func (s *Service) PayLateFees(ctx context.Context, actor accesscontrol.Actor, id int64, paymentRef string) (*LateFeePayment, error) {
	b, err := s.mutate(ctx, "pay_late_fees", actor, id, accesscontrol.PayLateFees, func(_ TxStores, b *Booking, car *catalog.Car, now time.Time) error {
		if b.LateFeesPaid {
			return ErrLateFeesAlreadyPaid
		}
		if b.Status != StatusActive {
			return ErrNotActive
		}
		lf := s.pricing.LateFee(b.BasePrice, car.LateFeeRate, b.EffectiveEnd(), now)
		if !lf.IsOverdue {
			return ErrNotOverdue
		}

		b.LateFees = lf.LateFees
		b.LateFeesPaid = true
		b.LateFeesPaymentReference = &paymentRef
		b.LateFeesPaidAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &LateFeePayment{Booking: b, LateFees: b.LateFees, PaymentReferenceID: paymentRef}, nil
}

func (s *Service) ConfirmReturn(ctx context.Context, actor accesscontrol.Actor, id int64, in ReturnInput) (*Booking, error) {
	return s.mutate(ctx, "confirm_return", actor, id, accesscontrol.ConfirmReturn, func(_ TxStores, b *Booking, _ *catalog.Car, now time.Time) error {
		if b.ActualDropoffDate != nil {
			return ErrAlreadyReturned
		}
		if b.Status != StatusActive {
			return ErrNotActive
		}
		if b.ActualPickupDate == nil {
			return ErrNotPickedUp
		}
		if now.After(b.EffectiveEnd()) && !b.LateFeesPaid {
			return ErrLateFeesUnpaid
		}
		if err := moveTo(b, StatusCompleted); err != nil {
			return err
		}

		b.ActualDropoffDate = &now
		b.ReturnCondition = in.ReturnCondition
		b.ReturnImages = cleanStrings(in.ReturnImages)
		b.ReturnComments = in.Comments
		return nil
	})
}

func (s *Service) GetBookingStatus(ctx context.Context, actor accesscontrol.Actor, id int64) (*StatusView, error) {
	b, _, err := s.load(ctx, actor, id, accesscontrol.ViewStatus)
	if err != nil {
		return nil, s.fail("get_booking_status", id, err)
	}
	return &StatusView{Booking: b, StatusInfo: CalculateProgress(b)}, nil
}

// lateFeeAt evaluates late fees only while the car is out; otherwise the
// booking is measured at its own deadline and never reads as overdue.
func (s *Service) lateFeeAt(b *Booking, car *catalog.Car, now time.Time) pricing.LateFee {
	at := now
	if b.Status != StatusActive || b.ActualDropoffDate != nil {
		at = b.EffectiveEnd()
	}
	return s.pricing.LateFee(b.BasePrice, car.LateFeeRate, b.EffectiveEnd(), at)
}

func (s *Service) CalculateLateFees(ctx context.Context, actor accesscontrol.Actor, id int64) (*LateFeeReport, error) {
	b, car, err := s.load(ctx, actor, id, accesscontrol.ViewLateFees)
	if err != nil {
		return nil, s.fail("calculate_late_fees", id, err)
	}

	lf := s.lateFeeAt(b, car, s.now())
	if b.LateFeesPaid {
		lf.LateFees = b.LateFees
	}
	return &LateFeeReport{BookingID: b.ID, LateFee: lf, LateFeesPaid: b.LateFeesPaid}, nil
}

func (s *Service) CheckOverdue(ctx context.Context, actor accesscontrol.Actor, id int64) (*OverdueStatus, error) {
	b, car, err := s.load(ctx, actor, id, accesscontrol.ViewLateFees)
	if err != nil {
		return nil, s.fail("check_overdue", id, err)
	}

	lf := s.lateFeeAt(b, car, s.now())
	return &OverdueStatus{
		BookingID:    b.ID,
		IsOverdue:    lf.IsOverdue,
		EffectiveEnd: lf.EffectiveEnd,
		OverdueHours: lf.OverdueHours,
		LateFeesPaid: b.LateFeesPaid,
		CanReturn:    b.Status == StatusActive && b.ActualPickupDate != nil && (!lf.IsOverdue || b.LateFeesPaid),
	}, nil
}

func (s *Service) ListMyBookings(ctx context.Context, actor accesscontrol.Actor, f Filter) ([]Booking, int, error) {
	if err := s.policy.Authorize(actor, accesscontrol.ListOwnBookings, accesscontrol.Resource{OwnerID: actor.ID}); err != nil {
		return nil, 0, err
	}
	list, total, err := s.store.ListByUser(ctx, actor.ID, f)
	if err != nil {
		return nil, 0, s.fail("list_bookings", 0, err)
	}
	return list, total, nil
}

// GetForCounter is the parking desk lookup; the pickup code is never shown.
func (s *Service) GetForCounter(ctx context.Context, actor accesscontrol.Actor, id int64) (*Booking, error) {
	b, _, err := s.load(ctx, actor, id, accesscontrol.LookupByReference)
	if err != nil {
		return nil, s.fail("lookup_reference", id, err)
	}
	redacted := b.Redacted()
	return &redacted, nil
}

func (s *Service) ListTopupHistory(ctx context.Context, actor accesscontrol.Actor, id int64) ([]topups.BookingTopup, error) {
	if _, _, err := s.load(ctx, actor, id, accesscontrol.ViewTopupHistory); err != nil {
		return nil, s.fail("list_topups", id, err)
	}
	entries, err := s.ledger.ListByBooking(ctx, id)
	if err != nil {
		return nil, s.fail("list_topups", id, err)
	}
	return entries, nil
}

// AuthorizeUpload checks that actor may attach condition images to the booking.
func (s *Service) AuthorizeUpload(ctx context.Context, actor accesscontrol.Actor, id int64) error {
	if _, _, err := s.load(ctx, actor, id, accesscontrol.UploadConditionImages); err != nil {
		return s.fail("authorize_upload", id, err)
	}
	return nil
}

// SweepOverdue refreshes the accrued late fees of overdue active rentals.
// Paid bookings are never touched. It walks every candidate in id order,
// one batch at a time, and returns how many rows changed.
func (s *Service) SweepOverdue(ctx context.Context) (int, error) {
	now := s.now()
	updated := 0
	var lastID int64
	for {
		candidates, err := s.store.ListOverdue(ctx, now, lastID, s.sweepBatch)
		if err != nil {
			return updated, s.fail("sweep_overdue", 0, err)
		}
		if len(candidates) == 0 {
			return updated, nil
		}
		lastID = candidates[len(candidates)-1].ID

		for _, c := range candidates {
			if err := ctx.Err(); err != nil {
				return updated, err
			}
			if s.refreshLateFees(ctx, c.ID, now) {
				updated++
			}
		}
		if len(candidates) < s.sweepBatch {
			return updated, nil
		}
	}
}

// refreshLateFees stores the late fees accrued by now and reports whether
// the row changed. Failures are logged and skipped.
func (s *Service) refreshLateFees(ctx context.Context, id int64, now time.Time) bool {
	changed := false
	err := s.tx.WithBookingTx(ctx, func(tx TxStores) error {
		b, err := tx.Bookings.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if b.Status != StatusActive || b.LateFeesPaid || b.ActualDropoffDate != nil {
			return nil
		}
		car, err := s.cars.GetCar(ctx, b.CarID)
		if err != nil {
			return err
		}

		lf := s.pricing.LateFee(b.BasePrice, car.LateFeeRate, b.EffectiveEnd(), now)
		if !lf.IsOverdue || lf.LateFees == b.LateFees {
			return nil
		}
		b.LateFees = lf.LateFees
		changed = true
		return tx.Bookings.Update(ctx, b)
	})
	if err != nil {
		s.logger.Warnw("overdue sweep skipped booking", "booking_id", id, "error", err.Error())
		return false
	}
	return changed
}
