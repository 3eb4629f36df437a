package handlers

import (
	"net/http"

	"careerpilot_backend/internal/dto"
	"careerpilot_backend/internal/middleware"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService *services.UserService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Registration is driven by the auth provider's user-created event
	// and carries its own identity payload.
	r.POST("/users/register", h.Register)

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", h.Me)
		users.PUT("/me/onboard", h.Onboard)
		users.DELETE("/me", h.Delete)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Register(req.ClerkUserID, req.Email, req.Name, req.ImageURL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, h.toResponse(user))
}

func (h *UserHandler) Me(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	h.OK(c, h.toResponse(user))
}

func (h *UserHandler) Onboard(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.OnboardUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.userService.Onboard(user.ID, req.Industry, req.Bio, req.Experience, req.Skills)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, h.toResponse(updated))
}

func (h *UserHandler) Delete(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(user.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) toResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		ImageURL:   user.ImageURL,
		Industry:   user.Industry,
		Bio:        user.Bio,
		Experience: user.Experience,
		Skills:     h.userService.Skills(user),
		Tokens:     user.Tokens,
	}
}
