package handlers

import (
	"errors"

	"lablend/internal/adapters/http/middleware"
	"lablend/internal/config"
	"lablend/internal/core/domain"
	"lablend/internal/core/services"
	"lablend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// Login handles admin login
// @Summary Login
// @Description Authenticate an admin and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.Context(), &input)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve.Fields)
		case errors.Is(err, domain.ErrInvalidCredentials):
			// A failed login never mutates the session
			return response.Forbidden(c, "Correo o contraseña incorrectos")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	// Persist the credential under the fixed storage key
	middleware.SetSessionCookie(c, h.cfg, result.AccessToken)

	return response.Success(c, "Inicio de sesión exitoso", fiber.Map{
		"access_token": result.AccessToken,
		"admin":        result.Admin,
	})
}

// Logout clears the persisted credential
// @Summary Logout
// @Description Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c, h.cfg)
	return response.Success(c, "Sesión cerrada", nil)
}

// UpdateAdmin updates the authenticated admin's profile
// @Summary Update admin profile
// @Description Update the authenticated admin's name and email
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UpdateProfileInput true "Profile data"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /auth/admin [put]
func (h *AuthHandler) UpdateAdmin(c *fiber.Ctx) error {
	adminID, ok := c.Locals("adminID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	admin, err := h.authService.UpdateProfile(c.Context(), adminID, &input)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve.Fields)
		case errors.Is(err, domain.ErrAdminNotFound):
			return response.NotFound(c, "Administrador no encontrado")
		default:
			return response.InternalServerError(c, "Failed to update profile")
		}
	}

	return response.Success(c, "Perfil actualizado con éxito", fiber.Map{
		"admin": admin,
	})
}
