package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	authmw "github.com/marqspnosa/shopwise/internal/middleware/auth"
	loggingmw "github.com/marqspnosa/shopwise/internal/middleware/logging"
	"github.com/marqspnosa/shopwise/internal/metrics"
)

type Deps struct {
	DB             *gorm.DB
	Logger         *slog.Logger
	FrontendOrigin string
	Auth           *authmw.Middleware
	AuthHandler    *AuthHTTP
	ProductHandler *ProductHTTP
}

// NewServer returns an echo instance with the global middleware and every
// route installed.
func NewServer(d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.HTTPErrorHandler = ErrorHandler
	e.Validator = NewValidator()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(metrics.Middleware)
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{d.FrontendOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}))
	e.Use(echomw.Secure())
	e.Use(echomw.BodyLimit("1M"))

	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	health := &HealthHTTP{DB: d.DB}
	e.GET("/health/live", health.Live)
	e.GET("/health/ready", health.Ready)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/me", d.AuthHandler.Me, d.Auth.RequireAuth)

	products := api.Group("/products")
	products.GET("", d.ProductHandler.List)
	products.GET("/:id", d.ProductHandler.Get)
	products.POST("", d.ProductHandler.Create, d.Auth.RequireAdmin)
	products.PUT("/:id", d.ProductHandler.Update, d.Auth.RequireAuth)
	products.PATCH("/:id", d.ProductHandler.Update, d.Auth.RequireAuth)
	products.DELETE("/:id", d.ProductHandler.Delete, d.Auth.RequireAuth)
}
