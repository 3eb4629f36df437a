package handlers

import (
	"careerpilot_backend/internal/dto"
	"careerpilot_backend/internal/middleware"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CoverLetterHandler struct {
	*BaseHandler
	letterService *services.CoverLetterService
}

func NewCoverLetterHandler(base *BaseHandler, letterService *services.CoverLetterService) *CoverLetterHandler {
	return &CoverLetterHandler{
		BaseHandler:   base,
		letterService: letterService,
	}
}

func (h *CoverLetterHandler) RegisterRoutes(r *gin.RouterGroup) {
	letters := r.Group("/cover-letters")
	letters.Use(middleware.AuthMiddleware())
	{
		letters.POST("", h.Create)
		letters.GET("", h.List)
		letters.GET("/:id", h.Get)
		letters.PUT("/:id", h.Update)
		letters.DELETE("/:id", h.Delete)
	}
}

func (h *CoverLetterHandler) Create(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateCoverLetterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	letter, err := h.letterService.Create(user.ID, req.Content, req.JobDescription, req.CompanyName, req.JobTitle)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, toCoverLetterResponse(letter))
}

func (h *CoverLetterHandler) List(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	limit, offset := h.Pagination(c)
	letters, total, err := h.letterService.ListByUser(user.ID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := dto.CoverLetterListResponse{
		CoverLetters: make([]dto.CoverLetterResponse, 0, len(letters)),
		Total:        total,
	}
	for _, l := range letters {
		resp.CoverLetters = append(resp.CoverLetters, toCoverLetterResponse(&l))
	}
	h.OK(c, resp)
}

func (h *CoverLetterHandler) Get(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	letter, err := h.letterService.Get(c.Param("id"), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toCoverLetterResponse(letter))
}

func (h *CoverLetterHandler) Update(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateCoverLetterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	letter, err := h.letterService.Update(c.Param("id"), user.ID, req.Content, req.JobDescription, req.CompanyName, req.JobTitle)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toCoverLetterResponse(letter))
}

func (h *CoverLetterHandler) Delete(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.letterService.Delete(c.Param("id"), user.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Cover letter deleted"})
}

func toCoverLetterResponse(l *models.CoverLetter) dto.CoverLetterResponse {
	return dto.CoverLetterResponse{
		ID:             l.ID,
		Content:        l.Content,
		JobDescription: l.JobDescription,
		CompanyName:    l.CompanyName,
		JobTitle:       l.JobTitle,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
