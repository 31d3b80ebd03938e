package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/smartrestaurant/restaurant-api/docs"
	"github.com/smartrestaurant/restaurant-api/internal/api/handler"
	"github.com/smartrestaurant/restaurant-api/internal/api/middleware"
	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Auth         ports.AuthService
	Tokens       ports.TokenVerifier
	Menu         ports.MenuService
	Orders       ports.OrderService
	Reservations ports.ReservationService
	Events       ports.EventService
	Chat         ports.ChatService
	Signals      ports.SignalRecorder

	// Readiness lists the dependencies pinged by /health/ready.
	Readiness map[string]handler.PingFunc

	Logger      zerolog.Logger
	AllowOrigin string

	// ChatRateLimit is requests per second per client IP on /api/ai.
	// Zero disables limiting.
	ChatRateLimit float64
	ChatRateBurst int

	// MetricsRegisterer and MetricsGatherer default to the Prometheus
	// default registry.
	MetricsRegisterer prometheus.Registerer
	MetricsGatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	if d.MetricsRegisterer == nil {
		d.MetricsRegisterer = prometheus.DefaultRegisterer
	}
	if d.MetricsGatherer == nil {
		d.MetricsGatherer = prometheus.DefaultGatherer
	}
	origin := d.AllowOrigin
	if origin == "" {
		origin = "*"
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{origin},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Idempotency-Key"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "restaurant",
		Registerer: d.MetricsRegisterer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	menuHandler := handler.NewMenuHandler(d.Menu)
	orderHandler := handler.NewOrderHandler(d.Orders)
	reservationHandler := handler.NewReservationHandler(d.Reservations)
	eventHandler := handler.NewEventHandler(d.Events)
	aiHandler := handler.NewAIHandler(d.Menu, d.Chat, d.Signals, d.Logger)
	healthHandler := handler.NewHealthHandler(d.Readiness)

	authed := middleware.Authenticate(d.Tokens, d.Logger)
	admin := middleware.RequireRole(domain.RoleAdmin)

	// --- Operations (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.MetricsGatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	apiGroup := e.Group("/api")

	// --- Accounts ---
	apiGroup.POST("/users/register", authHandler.Register)
	apiGroup.POST("/users/login", authHandler.Login)
	apiGroup.GET("/users/me", authHandler.Me, authed)

	// --- Menu ---
	apiGroup.GET("/menu", menuHandler.List)
	apiGroup.POST("/menu", menuHandler.Create, authed, admin)
	apiGroup.PUT("/menu/:id", menuHandler.Update, authed, admin)
	apiGroup.DELETE("/menu/:id", menuHandler.Delete, authed, admin)

	// --- Orders ---
	apiGroup.POST("/orders", orderHandler.Create, authed)
	apiGroup.GET("/orders", orderHandler.List, authed, admin)
	apiGroup.PUT("/orders/:id", orderHandler.Update, authed, admin)
	apiGroup.DELETE("/orders/:id", orderHandler.Delete, authed, admin)

	// --- Reservations ---
	apiGroup.POST("/reservations", reservationHandler.Create, authed)
	apiGroup.GET("/reservations", reservationHandler.List, authed, admin)
	apiGroup.PUT("/reservations/:id", reservationHandler.Update, authed, admin)
	apiGroup.DELETE("/reservations/:id", reservationHandler.Delete, authed, admin)

	// --- Events ---
	apiGroup.GET("/events", eventHandler.List)
	apiGroup.POST("/events", eventHandler.Create, authed, admin)
	apiGroup.PUT("/events/:id", eventHandler.Update, authed, admin)
	apiGroup.DELETE("/events/:id", eventHandler.Delete, authed, admin)

	// --- Assistant ---
	ai := apiGroup.Group("/ai", authed)
	if d.ChatRateLimit > 0 {
		ai.Use(chatRateLimiter(d.ChatRateLimit, d.ChatRateBurst))
	}
	ai.GET("/recommend", aiHandler.Recommend)
	ai.POST("/learn", aiHandler.Learn)
	ai.POST("/chat", aiHandler.Chat)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

// chatRateLimiter bounds assistant traffic per client IP, protecting the
// generation budget.
func chatRateLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	if burst <= 0 {
		burst = 1
	}
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Unable to identify client").SetInternal(err)
		},
		DenyHandler: func(_ echo.Context, _ string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please slow down").SetInternal(err)
		},
	})
}
