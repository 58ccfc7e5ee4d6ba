package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/apperror"
	"github.com/Zorochan404/adv-backend-sub001/internal/auth"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/accesscontrol"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/bookings"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/otp"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/topups"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/users"
	"github.com/Zorochan404/adv-backend-sub001/internal/ratelimiter"
	"github.com/Zorochan404/adv-backend-sub001/internal/refcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	picParking  = int64(5)
	renterUser  = &users.User{ID: 10, Name: "Renter", Email: "renter@example.com", Role: accesscontrol.RoleUser, IsVerified: true, IsActive: true}
	picUser     = &users.User{ID: 20, Name: "Desk", Email: "desk@example.com", Role: accesscontrol.RoleParkingIncharge, ParkingID: &picParking, IsVerified: true, IsActive: true}
	blockedUser = &users.User{ID: 13, Name: "Blocked", Email: "blocked@example.com", Role: accesscontrol.RoleUser, IsActive: false}
)

type testEnv struct {
	app      *application
	svc      *MockBookingService
	users    *MockUserStore
	topups   *MockTopupCatalog
	uploader *MockUploader
	auth     *auth.JWTAuthenticator
	mux      http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	refs, err := refcode.New("test-salt")
	require.NoError(t, err)

	env := &testEnv{
		svc:      new(MockBookingService),
		users:    new(MockUserStore),
		topups:   new(MockTopupCatalog),
		uploader: new(MockUploader),
		auth:     auth.NewJWTAuthenticator("access-secret", "refresh-secret", "carrental", "carrental", time.Hour, 24*time.Hour),
	}
	env.app = &application{
		config: config{
			env:    "test",
			apiURL: "localhost:8080",
			auth: authConfig{
				basic: basicConfig{user: "ops", pass: "secret"},
			},
		},
		logger:        zap.NewNop().Sugar(),
		users:         env.users,
		bookings:      env.svc,
		topups:        env.topups,
		refs:          refs,
		uploader:      env.uploader,
		authenticator: env.auth,
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(1000, time.Minute),
		otpLimiter:    ratelimiter.NewFixedWindowLimiter(otpAttemptsPerWindow, otpAttemptWindow),
	}

	for _, u := range []*users.User{renterUser, picUser, blockedUser} {
		env.users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
	}

	env.mux = env.app.mount()
	return env
}

func (e *testEnv) token(t *testing.T, u *users.User) string {
	t.Helper()
	access, _, err := e.auth.GenerateTokens(u.ID, string(u.Role), u.ParkingID)
	require.NoError(t, err)
	return access
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.mux.ServeHTTP(rr, req)
	return rr
}

type testEnvelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var data map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &data))
	return data
}

func sampleBooking(id int64) *bookings.Booking {
	code := "123456"
	return &bookings.Booking{
		ID:                 id,
		UserID:             renterUser.ID,
		CarID:              1,
		PickupParkingID:    picParking,
		DropoffParkingID:   picParking,
		Status:             bookings.StatusConfirmed,
		ConfirmationStatus: bookings.ConfirmationApproved,
		OTPCode:            &code,
		BasePrice:          2000,
		TotalPrice:         2150,
	}
}

func TestAuthTokenMiddleware(t *testing.T) {
	env := newTestEnv(t)
	env.svc.On("GetBookingStatus", mock.Anything, renterUser.Actor(), int64(5)).
		Return(&bookings.StatusView{Booking: sampleBooking(5), StatusInfo: bookings.CalculateProgress(sampleBooking(5))}, nil)

	t.Run("missing header", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/v1/bookings/5/status", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/5/status", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()
		env.mux.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/v1/bookings/5/status", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, refresh, err := env.auth.GenerateTokens(renterUser.ID, string(renterUser.Role), nil)
		require.NoError(t, err)
		rr := env.do(t, http.MethodGet, "/v1/bookings/5/status", refresh, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("deactivated user", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/v1/bookings/5/status", env.token(t, blockedUser), nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/v1/bookings/5/status", env.token(t, renterUser), nil)
		require.Equal(t, http.StatusOK, rr.Code)

		data := decodeData(t, rr)
		booking := data["booking"].(map[string]any)
		assert.Equal(t, "123456", booking["otp_code"])
		assert.NotNil(t, data["status_info"])
	})
}

func TestCreateBookingHandler(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	valid := map[string]any{
		"car_id":           1,
		"start_date":       start.Format(time.RFC3339),
		"end_date":         end.Format(time.RFC3339),
		"delivery_charges": 150,
	}

	t.Run("validation failure", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.do(t, http.MethodPost, "/v1/bookings", env.token(t, renterUser), map[string]any{
			"start_date": start.Format(time.RFC3339),
			"end_date":   end.Format(time.RFC3339),
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env.svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative delivery charges", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.do(t, http.MethodPost, "/v1/bookings", env.token(t, renterUser), map[string]any{
			"car_id":           1,
			"start_date":       start.Format(time.RFC3339),
			"end_date":         end.Format(time.RFC3339),
			"delivery_charges": -1,
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.do(t, http.MethodPost, "/v1/bookings", env.token(t, renterUser), `{"car_id":1,"price":1}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("created", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.On("CreateBooking", mock.Anything, renterUser.Actor(), mock.MatchedBy(func(in bookings.CreateInput) bool {
			return in.CarID == 1 && in.StartDate.Equal(start) && in.EndDate.Equal(end) && in.DeliveryCharges == 150
		})).Return(sampleBooking(42), nil)

		rr := env.do(t, http.MethodPost, "/v1/bookings", env.token(t, renterUser), valid)
		require.Equal(t, http.StatusCreated, rr.Code)

		body := decode(t, rr)
		assert.True(t, body.Success)
		assert.Equal(t, http.StatusCreated, body.StatusCode)
		assert.Equal(t, "Booking created successfully", body.Message)

		data := decodeData(t, rr)
		assert.Equal(t, float64(42), data["id"])
		assert.Equal(t, "123456", data["otp_code"])

		ref, ok := data["reference"].(string)
		require.True(t, ok)
		id, err := env.app.refs.Decode(ref)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("typed service error keeps its status", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperror.Conflict("car is already booked for the selected dates"))

		rr := env.do(t, http.MethodPost, "/v1/bookings", env.token(t, renterUser), valid)
		assert.Equal(t, http.StatusConflict, rr.Code)

		body := decode(t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, "car is already booked for the selected dates", body.Message)
	})

	t.Run("unavailable car is a bad request", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, bookings.ErrCarUnavailable)

		rr := env.do(t, http.MethodPost, "/v1/bookings", env.token(t, renterUser), valid)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "car is not available for booking", decode(t, rr).Message)
	})

	t.Run("untyped error is hidden", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset by peer"))

		rr := env.do(t, http.MethodPost, "/v1/bookings", env.token(t, renterUser), valid)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection reset")
	})
}

func TestInvalidBookingID(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/v1/bookings/abc/pickup", "/v1/bookings/0/pickup", "/v1/bookings/-3/pickup"} {
		t.Run(path, func(t *testing.T) {
			rr := env.do(t, http.MethodPost, path, env.token(t, picUser), nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
	env.svc.AssertNotCalled(t, "ConfirmPickup", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyOTPHandler(t *testing.T) {
	t.Run("pickup code is hidden from the parking in-charge", func(t *testing.T) {
		env := newTestEnv(t)
		verified := sampleBooking(7)
		verified.OTPVerified = true
		env.svc.On("VerifyOTP", mock.Anything, picUser.Actor(), int64(7), "123456").Return(verified, nil)

		rr := env.do(t, http.MethodPost, "/v1/bookings/7/otp/verify", env.token(t, picUser), VerifyOTPPayload{OTP: "123456"})
		require.Equal(t, http.StatusOK, rr.Code)

		data := decodeData(t, rr)
		_, present := data["otp_code"]
		assert.False(t, present)
		assert.Equal(t, true, data["otp_verified"])
	})

	t.Run("malformed code", func(t *testing.T) {
		env := newTestEnv(t)
		for _, code := range []string{"12ab", "123", "1234567", ""} {
			rr := env.do(t, http.MethodPost, "/v1/bookings/7/otp/verify", env.token(t, picUser), VerifyOTPPayload{OTP: code})
			assert.Equal(t, http.StatusBadRequest, rr.Code, code)
		}
	})

	t.Run("wrong code maps to unauthorized", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.On("VerifyOTP", mock.Anything, picUser.Actor(), int64(7), "000000").Return(nil, otp.ErrInvalid)

		rr := env.do(t, http.MethodPost, "/v1/bookings/7/otp/verify", env.token(t, picUser), VerifyOTPPayload{OTP: "000000"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "invalid otp", decode(t, rr).Message)
	})

	t.Run("attempts are limited per booking", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.On("VerifyOTP", mock.Anything, picUser.Actor(), mock.Anything, "000000").Return(nil, otp.ErrInvalid)
		token := env.token(t, picUser)

		for i := 0; i < otpAttemptsPerWindow; i++ {
			rr := env.do(t, http.MethodPost, "/v1/bookings/7/otp/verify", token, VerifyOTPPayload{OTP: "000000"})
			require.Equal(t, http.StatusUnauthorized, rr.Code)
		}

		rr := env.do(t, http.MethodPost, "/v1/bookings/7/otp/verify", token, VerifyOTPPayload{OTP: "000000"})
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("Retry-After"))

		// another booking has its own window
		rr = env.do(t, http.MethodPost, "/v1/bookings/8/otp/verify", token, VerifyOTPPayload{OTP: "000000"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestReviewConfirmationHandler(t *testing.T) {
	t.Run("decision is required", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.do(t, http.MethodPost, "/v1/bookings/7/confirmation/review", env.token(t, picUser), `{"comments":"ok"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejection", func(t *testing.T) {
		env := newTestEnv(t)
		rejected := sampleBooking(7)
		rejected.ConfirmationStatus = bookings.ConfirmationRejected
		env.svc.On("ReviewConfirmation", mock.Anything, picUser.Actor(), int64(7), false, mock.MatchedBy(func(c *string) bool {
			return c != nil && *c == "scratches not shown"
		})).Return(rejected, nil)

		rr := env.do(t, http.MethodPost, "/v1/bookings/7/confirmation/review", env.token(t, picUser),
			`{"approved":false,"comments":"scratches not shown"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Confirmation rejected", decode(t, rr).Message)
	})
}

func TestSubmitConfirmationSanitizesTools(t *testing.T) {
	env := newTestEnv(t)
	want := []bookings.Tool{{Name: "Jack", Quantity: 1}, {Name: "Spare tyre"}}
	env.svc.On("SubmitConfirmation", mock.Anything, renterUser.Actor(), int64(7), mock.MatchedBy(func(in bookings.ConfirmationInput) bool {
		return assert.ObjectsAreEqual(want, in.Tools) && len(in.CarConditionImages) == 2
	})).Return(sampleBooking(7), nil)

	body := `{
		"car_condition_images": ["https://img/1.jpg", "https://img/2.jpg"],
		"tools": [{"name": "Jack", "quantity": 1}, "{\"name\":\"Spare tyre\"}", 42, {"name": ""}]
	}`
	rr := env.do(t, http.MethodPost, "/v1/bookings/7/confirmation", env.token(t, renterUser), body)
	require.Equal(t, http.StatusOK, rr.Code)
	env.svc.AssertExpectations(t)

	t.Run("at least one condition image", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/v1/bookings/7/confirmation", env.token(t, renterUser), `{"car_condition_images": []}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListMyBookingsHandler(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.do(t, http.MethodGet, "/v1/bookings?status=lost", env.token(t, renterUser), nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("filter and pagination", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.On("ListMyBookings", mock.Anything, renterUser.Actor(), mock.MatchedBy(func(f bookings.Filter) bool {
			return f.Status != nil && *f.Status == bookings.StatusActive && f.Limit == 1 && f.Offset == 1
		})).Return([]bookings.Booking{*sampleBooking(9)}, 3, nil)

		rr := env.do(t, http.MethodGet, "/v1/bookings?status=active&page=2&limit=1", env.token(t, renterUser), nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var out struct {
			Bookings   []map[string]any `json:"bookings"`
			Pagination struct {
				Total      int  `json:"total"`
				TotalPages int  `json:"total_pages"`
				HasNext    bool `json:"has_next"`
				HasPrev    bool `json:"has_prev"`
			} `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rr).Data, &out))
		require.Len(t, out.Bookings, 1)
		assert.NotEmpty(t, out.Bookings[0]["reference"])
		assert.Equal(t, 3, out.Pagination.Total)
		assert.Equal(t, 3, out.Pagination.TotalPages)
		assert.True(t, out.Pagination.HasNext)
		assert.True(t, out.Pagination.HasPrev)
	})
}

func TestLookupBookingByReferenceHandler(t *testing.T) {
	env := newTestEnv(t)
	redacted := sampleBooking(42).Redacted()
	env.svc.On("GetForCounter", mock.Anything, picUser.Actor(), int64(42)).Return(&redacted, nil)

	ref, err := env.app.refs.Encode(42)
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/v1/pic/bookings/ref/"+strings.ToLower(ref), env.token(t, picUser), nil)
		require.Equal(t, http.StatusOK, rr.Code)

		data := decodeData(t, rr)
		assert.Equal(t, ref, data["reference"])
		_, present := data["otp_code"]
		assert.False(t, present)
	})

	t.Run("unknown reference", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/v1/pic/bookings/ref/BK-0OI1", env.token(t, picUser), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestApplyTopupHandler(t *testing.T) {
	env := newTestEnv(t)
	newEnd := time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)
	updated := sampleBooking(7)
	updated.Status = bookings.StatusActive
	updated.ExtensionTill = &newEnd
	updated.ExtensionTime = 24

	env.svc.On("ApplyTopup", mock.Anything, renterUser.Actor(), int64(7), int64(3), "pay_123").Return(&bookings.TopupResult{
		BookingTopup:   &topups.BookingTopup{ID: 1, BookingID: 7, TopupID: 3, NewEndDate: newEnd, Amount: 200, PaymentReference: "pay_123"},
		UpdatedBooking: updated,
		Topup:          &topups.Topup{ID: 3, Name: "One day", DurationHours: 24, Price: 200, IsActive: true},
		NewEndDate:     newEnd,
		ExtensionTime:  24,
	}, nil)

	rr := env.do(t, http.MethodPost, "/v1/bookings/7/topups", env.token(t, renterUser), ApplyTopupPayload{TopupID: 3, PaymentReferenceID: "pay_123"})
	require.Equal(t, http.StatusOK, rr.Code)

	data := decodeData(t, rr)
	assert.Equal(t, newEnd.Format(time.RFC3339), data["new_end_date"])
	assert.Equal(t, float64(24), data["extension_time"])
	assert.NotEmpty(t, data["updated_booking"].(map[string]any)["reference"])

	t.Run("payment reference is required", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/v1/bookings/7/topups", env.token(t, renterUser), `{"topup_id":3}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListTopupsHandler(t *testing.T) {
	env := newTestEnv(t)
	env.topups.On("ListActiveTopups", mock.Anything).Return([]topups.Topup{{ID: 3, Name: "One day", DurationHours: 24, Price: 200, IsActive: true}}, nil)

	rr := env.do(t, http.MethodGet, "/v1/topups", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list []topups.Topup
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, 24, list[0].DurationHours)
}

func multipartImages(t *testing.T, n int) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for i := 0; i < n; i++ {
		part, err := w.CreateFormFile("images", fmt.Sprintf("img%d.jpg", i))
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestUploadConditionImagesHandler(t *testing.T) {
	upload := func(env *testEnv, token string, n int) *httptest.ResponseRecorder {
		body, contentType := multipartImages(t, n)
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/7/images", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		env.mux.ServeHTTP(rr, req)
		return rr
	}

	t.Run("uploaded", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.On("AuthorizeUpload", mock.Anything, renterUser.Actor(), int64(7)).Return(nil)
		env.uploader.On("Upload", mock.Anything, mock.Anything, "bookings/7").Return("https://cdn/img.jpg", nil)

		rr := upload(env, env.token(t, renterUser), 2)
		require.Equal(t, http.StatusCreated, rr.Code)

		var out UploadImagesResponse
		require.NoError(t, json.Unmarshal(decode(t, rr).Data, &out))
		assert.Equal(t, []string{"https://cdn/img.jpg", "https://cdn/img.jpg"}, out.URLs)
		env.uploader.AssertNumberOfCalls(t, "Upload", 2)
	})

	t.Run("too many images", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.On("AuthorizeUpload", mock.Anything, renterUser.Actor(), int64(7)).Return(nil)

		rr := upload(env, env.token(t, renterUser), maxUploadImages+1)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env.uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("access is checked first", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.On("AuthorizeUpload", mock.Anything, picUser.Actor(), int64(7)).Return(apperror.Forbidden("not allowed"))

		rr := upload(env, env.token(t, picUser), 1)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		env.uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthenticationHandlers(t *testing.T) {
	withPassword := func(t *testing.T, u users.User, pw string) *users.User {
		require.NoError(t, u.Password.Set(pw))
		return &u
	}

	t.Run("login", func(t *testing.T) {
		env := newTestEnv(t)
		pic := withPassword(t, *picUser, "hunter22")
		env.users.On("GetByEmail", mock.Anything, pic.Email).Return(pic, nil)
		env.users.On("SaveRefreshToken", mock.Anything, pic.ID, mock.AnythingOfType("string")).Return(nil)

		rr := env.do(t, http.MethodPost, "/v1/authentication/token", "", CreateUserTokenPayload{Email: pic.Email, Password: "hunter22"})
		require.Equal(t, http.StatusOK, rr.Code)

		var out TokenResponse
		require.NoError(t, json.Unmarshal(decode(t, rr).Data, &out))
		assert.Equal(t, "20", out.UserID)
		assert.Equal(t, string(accesscontrol.RoleParkingIncharge), out.Role)
		require.NotNil(t, out.ParkingID)
		assert.Equal(t, picParking, *out.ParkingID)

		tok, err := env.auth.ValidateAccessToken(out.AccessToken)
		require.NoError(t, err)
		id, err := auth.SubjectID(tok)
		require.NoError(t, err)
		assert.Equal(t, pic.ID, id)
	})

	t.Run("wrong password", func(t *testing.T) {
		env := newTestEnv(t)
		renter := withPassword(t, *renterUser, "correct-horse")
		env.users.On("GetByEmail", mock.Anything, renter.Email).Return(renter, nil)

		rr := env.do(t, http.MethodPost, "/v1/authentication/token", "", CreateUserTokenPayload{Email: renter.Email, Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		env.users.AssertNotCalled(t, "SaveRefreshToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, users.ErrNotFound)

		rr := env.do(t, http.MethodPost, "/v1/authentication/token", "", CreateUserTokenPayload{Email: "nobody@example.com", Password: "whatever"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("refresh", func(t *testing.T) {
		env := newTestEnv(t)
		_, refresh, err := env.auth.GenerateTokens(renterUser.ID, string(renterUser.Role), nil)
		require.NoError(t, err)
		env.users.On("GetRefreshToken", mock.Anything, renterUser.ID).Return(refresh, nil)
		env.users.On("SaveRefreshToken", mock.Anything, renterUser.ID, mock.AnythingOfType("string")).Return(nil)

		rr := env.do(t, http.MethodPost, "/v1/authentication/refresh", "", RefreshPayload{RefreshToken: refresh})
		require.Equal(t, http.StatusOK, rr.Code)
		env.users.AssertCalled(t, "SaveRefreshToken", mock.Anything, renterUser.ID, mock.AnythingOfType("string"))
	})

	t.Run("refresh with a superseded token", func(t *testing.T) {
		env := newTestEnv(t)
		_, refresh, err := env.auth.GenerateTokens(renterUser.ID, string(renterUser.Role), nil)
		require.NoError(t, err)
		env.users.On("GetRefreshToken", mock.Anything, renterUser.ID).Return("a-newer-token", nil)

		rr := env.do(t, http.MethodPost, "/v1/authentication/refresh", "", RefreshPayload{RefreshToken: refresh})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestHealthCheckRequiresBasicAuth(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/v1/health", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("ops:secret")))
	rr = httptest.NewRecorder()
	env.mux.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var out HealthResponse
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &out))
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, version, out.Version)
}
