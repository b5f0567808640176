package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lablend/internal/config"
	"lablend/internal/pkg/jwt"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/gofiber/fiber/v2"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT:    config.JWTConfig{Secret: "test-secret", AccessTokenMins: 60},
		Cookie: config.CookieConfig{SameSite: "Lax"},
	}
}

func newGatedApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(cfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"admin_id": c.Locals("adminID"),
			"email":    c.Locals("adminEmail"),
		})
	})
	return app
}

func expiredToken(t *testing.T, secret string) string {
	t.Helper()
	claims := jwt.Claims{
		AdminID: 1,
		Email:   "admin@example.com",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	return token
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	cfg := testAuthConfig()
	app := newGatedApp(cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	cfg := testAuthConfig()
	app := newGatedApp(cfg)

	token, err := jwt.GenerateAccessToken(1, "admin@example.com", "Admin", cfg.JWT.Secret, 60)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}
}

func TestAuthMiddleware_ValidBearerHeader(t *testing.T) {
	cfg := testAuthConfig()
	app := newGatedApp(cfg)

	token, err := jwt.GenerateAccessToken(1, "admin@example.com", "Admin", cfg.JWT.Secret, 60)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}
}

func TestAuthMiddleware_ExpiredTokenClearsCookie(t *testing.T) {
	cfg := testAuthConfig()
	app := newGatedApp(cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: expiredToken(t, cfg.JWT.Secret)})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", resp.StatusCode)
	}

	// The stale credential must be evicted from the browser.
	var cleared bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookie && cookie.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Errorf("expected %s cookie to be cleared", SessionCookie)
	}
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	cfg := testAuthConfig()
	app := newGatedApp(cfg)

	cases := []string{
		"garbage",
		"eyJhbGciOiJIUzI1NiJ9.tampered.signature",
		strings.Repeat("A", 512),
	}
	for _, raw := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: raw})
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("token %q: got status %d, want 401", raw, resp.StatusCode)
		}
	}
}
