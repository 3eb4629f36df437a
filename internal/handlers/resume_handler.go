package handlers

import (
	"careerpilot_backend/internal/dto"
	"careerpilot_backend/internal/middleware"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	*BaseHandler
	resumeService *services.ResumeService
}

func NewResumeHandler(base *BaseHandler, resumeService *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   base,
		resumeService: resumeService,
	}
}

func (h *ResumeHandler) RegisterRoutes(r *gin.RouterGroup) {
	resume := r.Group("/resume")
	resume.Use(middleware.AuthMiddleware())
	{
		resume.GET("", h.Get)
		resume.PUT("", h.Save)
		resume.POST("/score", h.Score)
		resume.GET("/export", h.Export)
	}
}

func (h *ResumeHandler) Get(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	resume, err := h.resumeService.Get(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toResumeResponse(resume))
}

// Save creates the resume on first call and replaces its content afterwards.
func (h *ResumeHandler) Save(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.SaveResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resume, err := h.resumeService.Save(user.ID, req.Content)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toResumeResponse(resume))
}

func (h *ResumeHandler) Score(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.ScoreResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resume, err := h.resumeService.Score(user.ID, req.ATSScore, req.Feedback)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toResumeResponse(resume))
}

// Export returns the PDF generation request the client feeds to its
// renderer. The server does not rasterize anything itself.
func (h *ResumeHandler) Export(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	req, err := h.resumeService.ExportRequest(user.ID, user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, req)
}

func toResumeResponse(r *models.Resume) dto.ResumeResponse {
	return dto.ResumeResponse{
		ID:        r.ID,
		Content:   r.Content,
		ATSScore:  r.ATSScore,
		Feedback:  r.Feedback,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
