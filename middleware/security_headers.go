package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// SecurityConfig controls the security headers applied to responses
type SecurityConfig struct {
	AllowedDomains []string
	AllowInlineJS  bool
	AllowEval      bool
}

// SecurityHeadersWithConfig applies standard security headers plus a content
// security policy built from the config
func SecurityHeadersWithConfig(config SecurityConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-XSS-Protection", "1; mode=block")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

			scriptSrc := []string{"'self'"}
			if config.AllowInlineJS {
				scriptSrc = append(scriptSrc, "'unsafe-inline'")
			}
			if config.AllowEval {
				scriptSrc = append(scriptSrc, "'unsafe-eval'")
			}
			domains := strings.Join(config.AllowedDomains, " ")

			csp := "default-src 'self' " + domains +
				"; script-src " + strings.Join(scriptSrc, " ") +
				"; img-src 'self' data: " + domains +
				"; style-src 'self' 'unsafe-inline'"
			h.Set("Content-Security-Policy", csp)

			return next(c)
		}
	}
}
