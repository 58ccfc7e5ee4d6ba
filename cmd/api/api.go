package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zorochan404/adv-backend-sub001/docs"
	"github.com/Zorochan404/adv-backend-sub001/internal/auth"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/accesscontrol"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/bookings"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/topups"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/users"
	"github.com/Zorochan404/adv-backend-sub001/internal/ratelimiter"
	"github.com/Zorochan404/adv-backend-sub001/internal/refcode"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// bookingService is the lifecycle surface the handlers drive.
type bookingService interface {
	CreateBooking(ctx context.Context, actor accesscontrol.Actor, in bookings.CreateInput) (*bookings.Booking, error)
	ConfirmAdvancePayment(ctx context.Context, actor accesscontrol.Actor, id int64, paymentRef string) (*bookings.Booking, error)
	SubmitConfirmation(ctx context.Context, actor accesscontrol.Actor, id int64, in bookings.ConfirmationInput) (*bookings.Booking, error)
	ReviewConfirmation(ctx context.Context, actor accesscontrol.Actor, id int64, approved bool, comments *string) (*bookings.Booking, error)
	ResubmitConfirmation(ctx context.Context, actor accesscontrol.Actor, id int64, in bookings.ConfirmationInput) (*bookings.Booking, error)
	ConfirmFinalPayment(ctx context.Context, actor accesscontrol.Actor, id int64, paymentRef string) (*bookings.Booking, error)
	VerifyOTP(ctx context.Context, actor accesscontrol.Actor, id int64, code string) (*bookings.Booking, error)
	ResendOTP(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.Booking, error)
	Reschedule(ctx context.Context, actor accesscontrol.Actor, id int64, in bookings.RescheduleInput) (*bookings.Booking, error)
	ConfirmPickup(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.Booking, error)
	ApplyTopup(ctx context.Context, actor accesscontrol.Actor, id, topupID int64, paymentRef string) (*bookings.TopupResult, error)
	PayLateFees(ctx context.Context, actor accesscontrol.Actor, id int64, paymentRef string) (*bookings.LateFeePayment, error)
	ConfirmReturn(ctx context.Context, actor accesscontrol.Actor, id int64, in bookings.ReturnInput) (*bookings.Booking, error)
	GetBookingStatus(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.StatusView, error)
	CalculateLateFees(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.LateFeeReport, error)
	CheckOverdue(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.OverdueStatus, error)
	ListMyBookings(ctx context.Context, actor accesscontrol.Actor, f bookings.Filter) ([]bookings.Booking, int, error)
	GetForCounter(ctx context.Context, actor accesscontrol.Actor, id int64) (*bookings.Booking, error)
	ListTopupHistory(ctx context.Context, actor accesscontrol.Actor, id int64) ([]topups.BookingTopup, error)
	AuthorizeUpload(ctx context.Context, actor accesscontrol.Actor, id int64) error
}

type topupCatalog interface {
	ListActiveTopups(ctx context.Context) ([]topups.Topup, error)
}

type application struct {
	config        config
	logger        *zap.SugaredLogger
	users         users.Store
	bookings      bookingService
	topups        topupCatalog
	refs          *refcode.Codec
	uploader      imageUploader
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
	otpLimiter    ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	apiURL      string
	logLevel    string
	policyFile  string
	hashidsSalt string
	cloudinary  string
	sweepSpec   string
	db          dbConfig
	catalogDB   dbConfig
	redis       redisConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	refreshSecret   string
	secret          string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	iss             string
}

type basicConfig struct {
	user string
	pass string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleTime  string
}

type redisConfig struct {
	url string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if app.config.rateLimiter.Enabled {
		r.Use(app.RateLimiterMiddleware)
	}

	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		docsURL := fmt.Sprintf("%s/v1/swagger/doc.json", app.config.apiURL)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.Route("/authentication", func(r chi.Router) {
			r.Post("/token", app.createTokenHandler)
			r.Post("/refresh", app.refreshTokenHandler)
		})

		r.Get("/topups", app.listTopupsHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", app.createBookingHandler)
				r.Get("/", app.listMyBookingsHandler)

				r.Route("/{bookingID}", func(r chi.Router) {
					r.Get("/status", app.getBookingStatusHandler)
					r.Post("/advance-payment", app.confirmAdvancePaymentHandler)
					r.Post("/confirmation", app.submitConfirmationHandler)
					r.Post("/confirmation/resubmit", app.resubmitConfirmationHandler)
					r.Post("/confirmation/review", app.reviewConfirmationHandler)
					r.Post("/final-payment", app.confirmFinalPaymentHandler)
					r.With(app.OTPRateLimiterMiddleware).Post("/otp/verify", app.verifyOTPHandler)
					r.Post("/otp/resend", app.resendOTPHandler)
					r.Post("/reschedule", app.rescheduleHandler)
					r.Post("/pickup", app.confirmPickupHandler)
					r.Post("/return", app.confirmReturnHandler)
					r.Post("/images", app.uploadConditionImagesHandler)

					r.Get("/topups", app.listBookingTopupsHandler)
					r.Post("/topups", app.applyTopupHandler)

					r.Get("/late-fees", app.calculateLateFeesHandler)
					r.Post("/late-fees/pay", app.payLateFeesHandler)
					r.Get("/overdue", app.checkOverdueHandler)
				})
			})

			r.Get("/pic/bookings/ref/{ref}", app.lookupBookingByReferenceHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
