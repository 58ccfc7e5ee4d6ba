package main

import (
	"context"
	"io"

	"github.com/Zorochan404/adv-backend-sub001/internal/domain/accesscontrol"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/bookings"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/topups"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/users"
	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) booking(args mock.Arguments) (*bookings.Booking, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, actor accesscontrol.Actor, in bookings.CreateInput) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, in))
}
func (m *MockBookingService) ConfirmAdvancePayment(ctx context.Context, actor accesscontrol.Actor, id int64, paymentRef string) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, id, paymentRef))
}
func (m *MockBookingService) SubmitConfirmation(ctx context.Context, actor accesscontrol.Actor, id int64, in bookings.ConfirmationInput) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, id, in))
}
func (m *MockBookingService) ReviewConfirmation(ctx context.Context, actor accesscontrol.Actor, id int64, approved bool, comments *string) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, id, approved, comments))
}
func (m *MockBookingService) ResubmitConfirmation(ctx context.Context, actor accesscontrol.Actor, id int64, in bookings.ConfirmationInput) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, id, in))
}
func (m *MockBookingService) ConfirmFinalPayment(ctx context.Context, actor accesscontrol.Actor, id int64, paymentRef string) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, id, paymentRef))
}
func (m *MockBookingService) VerifyOTP(ctx context.Context, actor accesscontrol.Actor, id int64, code string) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, id, code))
}
func (m *MockBookingService) ResendOTP(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, id))
}
func (m *MockBookingService) Reschedule(ctx context.Context, actor accesscontrol.Actor, id int64, in bookings.RescheduleInput) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, id, in))
}
func (m *MockBookingService) ConfirmPickup(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, id))
}
func (m *MockBookingService) ApplyTopup(ctx context.Context, actor accesscontrol.Actor, id, topupID int64, paymentRef string) (*bookings.TopupResult, error) {
	args := m.Called(ctx, actor, id, topupID, paymentRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.TopupResult), args.Error(1)
}
func (m *MockBookingService) PayLateFees(ctx context.Context, actor accesscontrol.Actor, id int64, paymentRef string) (*bookings.LateFeePayment, error) {
	args := m.Called(ctx, actor, id, paymentRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.LateFeePayment), args.Error(1)
}
func (m *MockBookingService) ConfirmReturn(ctx context.Context, actor accesscontrol.Actor, id int64, in bookings.ReturnInput) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, id, in))
}
func (m *MockBookingService) GetBookingStatus(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.StatusView, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.StatusView), args.Error(1)
}
func (m *MockBookingService) CalculateLateFees(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.LateFeeReport, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.LateFeeReport), args.Error(1)
}
func (m *MockBookingService) CheckOverdue(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.OverdueStatus, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.OverdueStatus), args.Error(1)
}
func (m *MockBookingService) ListMyBookings(ctx context.Context, actor accesscontrol.Actor, f bookings.Filter) ([]bookings.Booking, int, error) {
	args := m.Called(ctx, actor, f)
	return args.Get(0).([]bookings.Booking), args.Int(1), args.Error(2)
}
func (m *MockBookingService) GetForCounter(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.Booking, error) {
	return m.booking(m.Called(ctx, actor, id))
}
func (m *MockBookingService) ListTopupHistory(ctx context.Context, actor accesscontrol.Actor, id int64) ([]topups.BookingTopup, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).([]topups.BookingTopup), args.Error(1)
}
func (m *MockBookingService) AuthorizeUpload(ctx context.Context, actor accesscontrol.Actor, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByID(ctx context.Context, userID int64) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}
func (m *MockUserStore) SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	return m.Called(ctx, userID, refreshToken).Error(0)
}
func (m *MockUserStore) GetRefreshToken(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type MockTopupCatalog struct {
	mock.Mock
}

func (m *MockTopupCatalog) ListActiveTopups(ctx context.Context) ([]topups.Topup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]topups.Topup), args.Error(1)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	args := m.Called(ctx, file, folder)
	return args.String(0), args.Error(1)
}
