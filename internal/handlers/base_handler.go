package handlers

import (
	"net/http"
	"strconv"

	"careerpilot_backend/internal/logger"
	"careerpilot_backend/internal/middleware"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/services"
	"careerpilot_backend/internal/validator"
	"careerpilot_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator   *validator.Validator
	userService *services.UserService
}

func NewBaseHandler(v *validator.Validator, userService *services.UserService) *BaseHandler {
	return &BaseHandler{
		validator:   v,
		userService: userService,
	}
}

func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// CurrentUser resolves the authenticated identity to the local user row.
// Writes the error response itself when resolution fails.
func (h *BaseHandler) CurrentUser(c *gin.Context) (*models.User, bool) {
	clerkUserID := middleware.GetClerkUserID(c)
	if clerkUserID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return nil, false
	}

	user, err := h.userService.GetByClerkID(clerkUserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}
	return user, true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// Pagination reads limit/offset query params with sane bounds.
func (h *BaseHandler) Pagination(c *gin.Context) (limit, offset int) {
	limit = 20
	offset = 0
	if v, err := intQuery(c, "limit"); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := intQuery(c, "offset"); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}

func (h *BaseHandler) OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func (h *BaseHandler) Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

func intQuery(c *gin.Context, key string) (int, error) {
	return strconv.Atoi(c.Query(key))
}
