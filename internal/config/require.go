package config

import (
	"errors"
	"fmt"
)

// Validate reports every setting the server cannot start without.
func (c Config) Validate() error {
	var errs []error
	if len(c.JWTSecret) == 0 {
		errs = append(errs, missing("JWT_SECRET"))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, missing("DATABASE_URL"))
	}
	if c.FrontendOrigin == "" {
		errs = append(errs, missing("FRONTEND_ORIGIN"))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("ACCESS_TOKEN_TTL must be positive, got %s", c.AccessTokenTTL))
	}
	return errors.Join(errs...)
}

func missing(env string) error {
	return fmt.Errorf("missing required env %s", env)
}
