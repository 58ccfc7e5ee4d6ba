package bookings

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/domain/accesscontrol"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/catalog"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/otp"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/pricing"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/topups"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/users"
	"go.uber.org/zap"
)

// memDB is an in-memory stand-in for the bookings and booking_topups tables.
// Rows are stored by value so callers never share state with the table.
type memDB struct {
	bookings  map[int64]Booking
	ledger    []topups.BookingTopup
	seq       int64
	ledgerSeq int64
}

func newMemDB() *memDB {
	return &memDB{bookings: map[int64]Booking{}}
}

type memStore struct{ db *memDB }

func (s memStore) Create(_ context.Context, b *Booking) error {
	s.db.seq++
	b.ID = s.db.seq
	b.Version = 1
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	s.db.bookings[b.ID] = *b
	return nil
}

func (s memStore) GetByID(_ context.Context, id int64) (*Booking, error) {
	b, ok := s.db.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (s memStore) GetForUpdate(ctx context.Context, id int64) (*Booking, error) {
	return s.GetByID(ctx, id)
}

func (s memStore) Update(_ context.Context, b *Booking) error {
	cur, ok := s.db.bookings[b.ID]
	if !ok || cur.Version != b.Version {
		return ErrVersionConflict
	}
	b.Version++
	b.UpdatedAt = time.Now()
	s.db.bookings[b.ID] = *b
	return nil
}

func (s memStore) HasOverlap(_ context.Context, carID int64, start, end time.Time, excludeID int64) (bool, error) {
	for _, b := range s.db.bookings {
		if b.CarID != carID || b.ID == excludeID || b.Status == StatusCancelled {
			continue
		}
		if b.StartDate.Before(end) && b.EffectiveEnd().After(start) {
			return true, nil
		}
	}
	return false, nil
}

func (s memStore) ListByUser(_ context.Context, userID int64, f Filter) ([]Booking, int, error) {
	matched := []Booking{}
	for _, b := range s.db.bookings {
		if b.UserID != userID {
			continue
		}
		if f.Status != nil && b.Status != *f.Status {
			continue
		}
		matched = append(matched, b)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := len(matched)
	if f.Offset >= total {
		return []Booking{}, total, nil
	}
	end := total
	if f.Limit > 0 && f.Offset+f.Limit < total {
		end = f.Offset + f.Limit
	}
	return matched[f.Offset:end], total, nil
}

func (s memStore) ListOverdue(_ context.Context, now time.Time, afterID int64, limit int) ([]Booking, error) {
	list := []Booking{}
	for _, b := range s.db.bookings {
		if b.ID > afterID && b.Status == StatusActive && !b.LateFeesPaid && b.ActualDropoffDate == nil && b.EffectiveEnd().Before(now) {
			list = append(list, b)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

type memLedger struct{ db *memDB }

func (l memLedger) Append(_ context.Context, e *topups.BookingTopup) error {
	l.db.ledgerSeq++
	e.ID = l.db.ledgerSeq
	e.AppliedAt = time.Now()
	l.db.ledger = append(l.db.ledger, *e)
	return nil
}

func (l memLedger) ListByBooking(_ context.Context, bookingID int64) ([]topups.BookingTopup, error) {
	out := []topups.BookingTopup{}
	for _, e := range l.db.ledger {
		if e.BookingID == bookingID {
			out = append(out, e)
		}
	}
	return out, nil
}

// memRunner restores the snapshot taken at begin when fn fails.
type memRunner struct{ db *memDB }

func (r memRunner) WithBookingTx(_ context.Context, fn func(tx TxStores) error) error {
	snapshot := make(map[int64]Booking, len(r.db.bookings))
	for id, b := range r.db.bookings {
		snapshot[id] = b
	}
	ledger := append([]topups.BookingTopup(nil), r.db.ledger...)
	seq, ledgerSeq := r.db.seq, r.db.ledgerSeq

	if err := fn(TxStores{Bookings: memStore{r.db}, Ledger: memLedger{r.db}}); err != nil {
		r.db.bookings = snapshot
		r.db.ledger = ledger
		r.db.seq, r.db.ledgerSeq = seq, ledgerSeq
		return err
	}
	return nil
}

type fakeCars map[int64]catalog.Car

func (f fakeCars) GetCar(_ context.Context, id int64) (*catalog.Car, error) {
	c, ok := f[id]
	if !ok {
		return nil, catalog.ErrCarNotFound
	}
	return &c, nil
}

type fakeParkings map[int64]catalog.Parking

func (f fakeParkings) GetParking(_ context.Context, id int64) (*catalog.Parking, error) {
	p, ok := f[id]
	if !ok {
		return nil, catalog.ErrParkingNotFound
	}
	return &p, nil
}

type fakeTopups map[int64]topups.Topup

func (f fakeTopups) GetTopup(_ context.Context, id int64) (*topups.Topup, error) {
	t, ok := f[id]
	if !ok {
		return nil, topups.ErrNotFound
	}
	return &t, nil
}

type fakeRenters map[int64]users.User

func (f fakeRenters) GetByID(_ context.Context, id int64) (*users.User, error) {
	u, ok := f[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	return &u, nil
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) Set(t time.Time)         { c.now = t }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func int64Ptr(v int64) *int64 { return &v }

var (
	parkingA int64 = 5
	parkingB int64 = 6

	renter      = accesscontrol.Actor{ID: 10, Role: accesscontrol.RoleUser}
	otherRenter = accesscontrol.Actor{ID: 11, Role: accesscontrol.RoleUser}
	unverified  = accesscontrol.Actor{ID: 12, Role: accesscontrol.RoleUser}
	pic         = accesscontrol.Actor{ID: 20, Role: accesscontrol.RoleParkingIncharge, ParkingID: &parkingA}
	otherPIC    = accesscontrol.Actor{ID: 21, Role: accesscontrol.RoleParkingIncharge, ParkingID: &parkingB}
	admin       = accesscontrol.Actor{ID: 30, Role: accesscontrol.RoleAdmin}

	// All fixtures start the day before the default rental window.
	t0        = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	rentStart = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	rentEnd   = time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)
)

const (
	carID        int64 = 1
	closedCarID  int64 = 2
	spareCarID   int64 = 3
	dayTopupID   int64 = 7
	retiredTopup int64 = 8
)

type fixture struct {
	svc   *Service
	db    *memDB
	clock *clock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newMemDB()
	clk := &clock{now: t0}
	cars := fakeCars{
		carID:       {ID: carID, Name: "Swift", ParkingID: parkingA, Price: 1000, IsAvailable: true},
		closedCarID: {ID: closedCarID, Name: "Creta", ParkingID: parkingA, Price: 1500, IsAvailable: false},
		spareCarID:  {ID: spareCarID, Name: "Baleno", ParkingID: parkingA, Price: 1200, IsAvailable: true},
	}
	products := fakeTopups{
		dayTopupID:   {ID: dayTopupID, Name: "Extra day", DurationHours: 24, Price: 200, IsActive: true},
		retiredTopup: {ID: retiredTopup, Name: "Old plan", DurationHours: 12, Price: 90, IsActive: false},
	}
	renters := fakeRenters{
		renter.ID:      {ID: renter.ID, Role: accesscontrol.RoleUser, IsVerified: true, IsActive: true},
		otherRenter.ID: {ID: otherRenter.ID, Role: accesscontrol.RoleUser, IsVerified: true, IsActive: true},
		unverified.ID:  {ID: unverified.ID, Role: accesscontrol.RoleUser, IsActive: true},
	}

	parkings := fakeParkings{
		parkingA: {ID: parkingA, Name: "Central"},
		parkingB: {ID: parkingB, Name: "Airport"},
	}

	svc := NewService(Deps{
		Store:    memStore{db},
		Tx:       memRunner{db},
		Ledger:   memLedger{db},
		Cars:     cars,
		Parkings: parkings,
		Topups:   products,
		Renters:  renters,
		Policy:   accesscontrol.NewPolicy(accesscontrol.DefaultRules()),
		OTP: otp.NewEngine(otp.Config{
			Digits:       6,
			ResendWindow: 10 * time.Minute,
			PickupGrace:  24 * time.Hour,
		}),
		Pricing:            pricing.NewCalculator(0.30, 0.10),
		Logger:             zap.NewNop().Sugar(),
		MaxRescheduleCount: 3,
		Now:                clk.Now,
	})

	return &fixture{svc: svc, db: db, clock: clk}
}

func (f *fixture) create(t *testing.T) *Booking {
	t.Helper()
	return f.createFor(t, renter, carID)
}

func (f *fixture) createFor(t *testing.T, owner accesscontrol.Actor, car int64) *Booking {
	t.Helper()
	b, err := f.svc.CreateBooking(context.Background(), owner, CreateInput{
		CarID:     car,
		StartDate: rentStart,
		EndDate:   rentEnd,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}

// approved drives a new booking through advance payment and an approved
// condition check.
func (f *fixture) approved(t *testing.T) *Booking {
	t.Helper()
	return f.approvedFor(t, renter, carID)
}

func (f *fixture) approvedFor(t *testing.T, owner accesscontrol.Actor, car int64) *Booking {
	t.Helper()
	ctx := context.Background()
	b := f.createFor(t, owner, car)

	steps := []func() (*Booking, error){
		func() (*Booking, error) { return f.svc.ConfirmAdvancePayment(ctx, owner, b.ID, "adv_ref") },
		func() (*Booking, error) {
			return f.svc.SubmitConfirmation(ctx, owner, b.ID, ConfirmationInput{CarConditionImages: []string{"front.jpg"}})
		},
		func() (*Booking, error) { return f.svc.ReviewConfirmation(ctx, pic, b.ID, true, nil) },
	}
	for i, step := range steps {
		var err error
		if b, err = step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	return b
}

// active drives a new booking all the way to a picked up rental.
func (f *fixture) active(t *testing.T) *Booking {
	t.Helper()
	return f.activeFor(t, renter, carID)
}

func (f *fixture) activeFor(t *testing.T, owner accesscontrol.Actor, car int64) *Booking {
	t.Helper()
	ctx := context.Background()
	b := f.approvedFor(t, owner, car)

	steps := []func() (*Booking, error){
		func() (*Booking, error) { return f.svc.ConfirmFinalPayment(ctx, owner, b.ID, "final_ref") },
		func() (*Booking, error) { return f.svc.VerifyOTP(ctx, pic, b.ID, *b.OTPCode) },
		func() (*Booking, error) { return f.svc.ConfirmPickup(ctx, pic, b.ID) },
	}
	for i, step := range steps {
		var err error
		if b, err = step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	return b
}
