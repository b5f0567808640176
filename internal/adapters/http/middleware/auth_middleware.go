package middleware

import (
	"strings"
	"time"

	"lablend/internal/config"
	"lablend/internal/pkg/jwt"
	"lablend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the fixed storage key of the persisted credential.
const SessionCookie = "access_token"

// AuthMiddleware is the access gate for protected routes. It resolves
// the bearer credential (cookie first, then Authorization header) and
// decides between authenticated and unauthenticated:
//   - no credential            -> 401
//   - expired credential       -> 401, persisted cookie cleared
//   - malformed credential     -> 401 (a decode failure, never a crash)
//
// Expiry is re-checked on every request against the token's embedded
// expiry claim; there is no server-side session state to revalidate.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies(SessionCookie)

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				ClearSessionCookie(c, cfg)
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set admin info in context
		c.Locals("adminID", claims.AdminID)
		c.Locals("adminEmail", claims.Email)
		c.Locals("adminName", claims.Name)

		return c.Next()
	}
}

// SetSessionCookie persists the credential under the fixed storage key
func SetSessionCookie(c *fiber.Ctx, cfg *config.Config, accessToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   cfg.JWT.AccessTokenMins * 60,
		Secure:   cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: cfg.Cookie.SameSite,
		Domain:   cfg.Cookie.Domain,
	})
}

// ClearSessionCookie destroys the persisted credential
func ClearSessionCookie(c *fiber.Ctx, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: cfg.Cookie.SameSite,
		Domain:   cfg.Cookie.Domain,
	})
}
