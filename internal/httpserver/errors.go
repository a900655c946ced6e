package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marqspnosa/shopwise/internal/domain"
	"github.com/marqspnosa/shopwise/internal/logging"
	"github.com/marqspnosa/shopwise/internal/transport"
)

// ErrorHandler renders every error as {"detail": reason}. Causes of
// unexpected errors are logged and never returned.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, detail := resolveError(err, c)
	if code == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, transport.ErrorResponse{Detail: detail})
}

func resolveError(err error, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}

	reason := domain.Reason(err)
	switch {
	case errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest, reason
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, reason
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, reason
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, reason
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, reason
	}

	logging.FromContext(c.Request().Context()).Error("unhandled_error",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return http.StatusInternalServerError, "internal server error"
}
