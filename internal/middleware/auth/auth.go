package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/marqspnosa/shopwise/internal/access"
	"github.com/marqspnosa/shopwise/internal/domain"
	"github.com/marqspnosa/shopwise/internal/logging"
	"github.com/marqspnosa/shopwise/internal/metrics"
	"github.com/marqspnosa/shopwise/internal/models"
)

const userKey = "user"

type Middleware struct {
	Guard *access.Guard
}

func New(g *access.Guard) *Middleware {
	return &Middleware{Guard: g}
}

// RequireAuth resolves the bearer token to a user and stores it on the context.
func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, nil)
}

func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, access.AuthorizeAdmin)
}

type checkFunc func(*models.User) (*models.User, error)

func (m *Middleware) require(next echo.HandlerFunc, check checkFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		user, err := m.Guard.Authenticate(ctx, c.Request().Header)
		if err != nil {
			outcome := "unauthenticated"
			if domain.Reason(err) == "" {
				outcome = "error"
			}
			metrics.AuthAttempts.WithLabelValues("authenticate", outcome).Inc()
			logging.FromContext(ctx).Warn("authenticate_failed", "reason", domain.Reason(err), "error", err)
			return err
		}
		metrics.AuthAttempts.WithLabelValues("authenticate", "success").Inc()

		if check != nil {
			if user, err = check(user); err != nil {
				return err
			}
		}

		SetUser(c, user)
		return next(c)
	}
}

func SetUser(c echo.Context, u *models.User) {
	c.Set(userKey, u)
	ctx := logging.IntoContext(c.Request().Context(),
		logging.FromContext(c.Request().Context()).With("user_id", u.ID.String()))
	c.SetRequest(c.Request().WithContext(ctx))
}

// CurrentUser returns the user stored by RequireAuth, or nil on public routes.
func CurrentUser(c echo.Context) *models.User {
	u, _ := c.Get(userKey).(*models.User)
	return u
}
