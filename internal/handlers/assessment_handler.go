package handlers

import (
	"encoding/json"

	"careerpilot_backend/internal/dto"
	"careerpilot_backend/internal/middleware"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	*BaseHandler
	assessmentService *services.AssessmentService
}

func NewAssessmentHandler(base *BaseHandler, assessmentService *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		BaseHandler:       base,
		assessmentService: assessmentService,
	}
}

func (h *AssessmentHandler) RegisterRoutes(r *gin.RouterGroup) {
	assessments := r.Group("/assessments")
	assessments.Use(middleware.AuthMiddleware())
	{
		assessments.POST("", h.Save)
		assessments.GET("", h.List)
		assessments.GET("/:id", h.Get)
	}
}

func (h *AssessmentHandler) Save(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.SaveAssessmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	assessment, err := h.assessmentService.Save(user.ID, req.QuizScore, req.Questions, req.Category, req.ImprovementTip)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, toAssessmentResponse(assessment))
}

func (h *AssessmentHandler) List(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	limit, offset := h.Pagination(c)
	assessments, total, err := h.assessmentService.ListByUser(user.ID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	avg, err := h.assessmentService.AverageScore(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := dto.AssessmentListResponse{
		Assessments:  make([]dto.AssessmentResponse, 0, len(assessments)),
		Total:        total,
		AverageScore: avg,
	}
	for _, a := range assessments {
		resp.Assessments = append(resp.Assessments, toAssessmentResponse(&a))
	}
	h.OK(c, resp)
}

func (h *AssessmentHandler) Get(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	assessment, err := h.assessmentService.Get(c.Param("id"), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toAssessmentResponse(assessment))
}

func toAssessmentResponse(a *models.Assessment) dto.AssessmentResponse {
	var questions []json.RawMessage
	if len(a.Questions) > 0 {
		_ = json.Unmarshal(a.Questions, &questions)
	}
	return dto.AssessmentResponse{
		ID:             a.ID,
		QuizScore:      a.QuizScore,
		Questions:      questions,
		Category:       a.Category,
		ImprovementTip: a.ImprovementTip,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
