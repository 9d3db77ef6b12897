// Package web is the HTML surface of the ordering app: the table menu, the
// order submission, and the kitchen view.
package web

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"tableside/order"
)

// OrderStore is the persistence the handlers need.
type OrderStore interface {
	Create(ctx context.Context, customerName string, tableNumber int, orders string) (order.Order, error)
	List(ctx context.Context) ([]order.Order, error)
	Delete(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}

// Options tunes the routes built by New.
type Options struct {
	// OrderRateLimit caps order submissions per second per client IP. Zero disables it.
	OrderRateLimit float64
}

const kitchenRoute = "kitchen"

// New wires the routes over store.
func New(store OrderStore, log zerolog.Logger, opts Options) *echo.Echo {
	h := &Handler{store: store, log: log.With().Str("component", "web").Logger()}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer{t: templates}
	e.Validator = requestValidator{}
	e.HTTPErrorHandler = h.handleError

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(h.log))
	e.Use(middleware.Recover())

	var submit []echo.MiddlewareFunc
	if opts.OrderRateLimit > 0 {
		submit = append(submit, rateLimiter(opts.OrderRateLimit))
	}

	e.GET("/:table_number", h.Menu)
	e.POST("/order/:table_number", h.PlaceOrder, submit...)
	e.GET("/kitchen/", h.Kitchen).Name = kitchenRoute
	e.GET("/kitchen", func(c echo.Context) error {
		return c.Redirect(http.StatusPermanentRedirect, c.Echo().Reverse(kitchenRoute))
	})
	e.GET("/delete/:id", h.DeleteOrder)
	e.GET("/healthz", h.Health)
	return e
}

// Run serves e on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, e *echo.Echo, addr string, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		HandleError:  true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func rateLimiter(perSecond float64) echo.MiddlewareFunc {
	tooMany := echo.NewHTTPError(http.StatusTooManyRequests, "Too many orders, please wait a moment")
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     max(1, int(math.Ceil(perSecond))),
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden).SetInternal(err)
		},
		DenyHandler: func(echo.Context, string, error) error {
			return tooMany
		},
	})
}

type requestValidator struct{}

func (requestValidator) Validate(i any) error { return order.Validate(i) }
