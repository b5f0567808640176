package handlers

import (
	"errors"

	"lablend/internal/core/domain"
	"lablend/internal/core/services"
	"lablend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List lists users
// @Summary List users
// @Description Get the full user collection, optionally filtered by status.
// @Description The loan form fetches /users?status=Active to populate its dropdown.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Response
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context(), c.Query("status"))
	if err != nil {
		return response.InternalServerError(c, "Error al cargar los usuarios")
	}
	return response.Success(c, "Usuarios obtenidos", fiber.Map{
		"users": users,
	})
}

// Get gets a user by ID
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.userService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "Usuario no encontrado")
		}
		return response.InternalServerError(c, "Error al cargar los datos del usuario")
	}
	return response.Success(c, "Usuario obtenido", fiber.Map{
		"user": user,
	})
}

// Create creates a new user
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UserInput true "User data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.Create(c.Context(), &input)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve.Fields)
		case errors.Is(err, services.ErrUsernameTaken):
			return response.Conflict(c, "El nombre de usuario ya existe")
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "El correo ya está registrado")
		default:
			return response.InternalServerError(c, "Error al registrar el usuario")
		}
	}

	return response.Created(c, "Usuario registrado con éxito!", fiber.Map{
		"user": user,
	})
}

// Update updates a user
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.Update(c.Context(), c.Params("id"), &input)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve.Fields)
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "Usuario no encontrado")
		case errors.Is(err, services.ErrUsernameTaken):
			return response.Conflict(c, "El nombre de usuario ya existe")
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "El correo ya está registrado")
		default:
			return response.InternalServerError(c, "Error al actualizar los datos del usuario")
		}
	}

	return response.Success(c, "Datos del usuario actualizados con éxito!", fiber.Map{
		"user": user,
	})
}

// Delete deletes a user. The route keeps its legacy /user-edit/:id
// path so existing clients keep working.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "Usuario no encontrado")
		}
		return response.InternalServerError(c, "Error al eliminar el usuario")
	}
	return response.Success(c, "Usuario eliminado con éxito!", nil)
}
