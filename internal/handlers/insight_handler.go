package handlers

import (
	"encoding/json"

	"careerpilot_backend/internal/dto"
	"careerpilot_backend/internal/middleware"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/services"
	"careerpilot_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	*BaseHandler
	insightService *services.InsightService
}

func NewInsightHandler(base *BaseHandler, insightService *services.InsightService) *InsightHandler {
	return &InsightHandler{
		BaseHandler:    base,
		insightService: insightService,
	}
}

func (h *InsightHandler) RegisterRoutes(r *gin.RouterGroup) {
	insights := r.Group("/insights")
	insights.Use(middleware.AuthMiddleware())
	{
		insights.GET("", h.List)
		insights.GET("/me", h.Mine)
		insights.GET("/:industry", h.Get)
		insights.PUT("/:industry", h.Upsert)
	}
}

func (h *InsightHandler) List(c *gin.Context) {
	limit, offset := h.Pagination(c)
	insights, err := h.insightService.List(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := make([]dto.InsightResponse, 0, len(insights))
	for _, ins := range insights {
		resp = append(resp, toInsightResponse(&ins))
	}
	h.OK(c, gin.H{"insights": resp})
}

// Mine resolves the insight for the caller's own industry.
func (h *InsightHandler) Mine(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	if user.Industry == nil || *user.Industry == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("User has not completed onboarding"))
		return
	}

	insight, err := h.insightService.GetByIndustry(*user.Industry)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toInsightResponse(insight))
}

func (h *InsightHandler) Get(c *gin.Context) {
	insight, err := h.insightService.GetByIndustry(c.Param("industry"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toInsightResponse(insight))
}

func (h *InsightHandler) Upsert(c *gin.Context) {
	var req dto.UpsertInsightRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	data := services.InsightData{
		GrowthRate:        req.GrowthRate,
		DemandLevel:       models.DemandLevel(req.DemandLevel),
		MarketOutlook:     models.MarketOutlook(req.MarketOutlook),
		TopSkills:         req.TopSkills,
		KeyTrends:         req.KeyTrends,
		RecommendedSkills: req.RecommendedSkills,
	}
	for _, sr := range req.SalaryRanges {
		data.SalaryRanges = append(data.SalaryRanges, models.SalaryRange{
			Role:     sr.Role,
			Min:      sr.Min,
			Max:      sr.Max,
			Median:   sr.Median,
			Location: sr.Location,
		})
	}

	insight, err := h.insightService.Upsert(c.Param("industry"), data)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toInsightResponse(insight))
}

func toInsightResponse(ins *models.IndustryInsight) dto.InsightResponse {
	resp := dto.InsightResponse{
		Industry:      ins.Industry,
		GrowthRate:    ins.GrowthRate,
		DemandLevel:   string(ins.DemandLevel),
		MarketOutlook: string(ins.MarketOutlook),
		LastUpdated:   ins.LastUpdated,
		NextUpdate:    ins.NextUpdate,
	}
	if len(ins.SalaryRanges) > 0 {
		_ = json.Unmarshal(ins.SalaryRanges, &resp.SalaryRanges)
	}
	if len(ins.TopSkills) > 0 {
		_ = json.Unmarshal(ins.TopSkills, &resp.TopSkills)
	}
	if len(ins.KeyTrends) > 0 {
		_ = json.Unmarshal(ins.KeyTrends, &resp.KeyTrends)
	}
	if len(ins.RecommendedSkills) > 0 {
		_ = json.Unmarshal(ins.RecommendedSkills, &resp.RecommendedSkills)
	}
	return resp
}
