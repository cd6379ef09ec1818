package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tripdeck/itinerary-timeline/docs"
	"github.com/tripdeck/itinerary-timeline/internal/api/handler"
	"github.com/tripdeck/itinerary-timeline/internal/api/middleware"
	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
	"github.com/tripdeck/itinerary-timeline/internal/core/ports"
)

// Deps bundles everything the router needs to build its handlers.
type Deps struct {
	Service   ports.ItineraryService
	Warmer    handler.TimelineWarmer    // optional
	Readiness map[string]handler.Pinger // dependencies probed by /health/ready
	JWTSecret string
	Logger    zerolog.Logger
	// Registry receives the HTTP metrics; nil selects the default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "timeline",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Dependencies ---
	itineraryHandler := handler.NewItineraryHandler(d.Service, d.Warmer)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Readiness)

	// --- Itineraries ---
	v1 := e.Group("/v1")
	v1.GET("/itineraries", itineraryHandler.List)
	v1.GET("/itineraries/:id", itineraryHandler.Get)
	v1.GET("/itineraries/:id/timeline", itineraryHandler.Timeline)
	v1.GET("/itineraries/:id/timeline.html", itineraryHandler.TimelineHTML)
	v1.POST("/itineraries", itineraryHandler.Create,
		middleware.Auth(d.JWTSecret),
		middleware.RBAC(domain.RoleAdmin, domain.RoleEditor),
	)

	// --- Previews (nothing is stored) ---
	v1.POST("/timeline/preview", itineraryHandler.Preview)
	v1.POST("/timeline/preview.html", itineraryHandler.PreviewHTML)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
