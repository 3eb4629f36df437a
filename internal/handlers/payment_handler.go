package handlers

import (
	"net/http"

	"careerpilot_backend/internal/dto"
	"careerpilot_backend/internal/middleware"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/services"
	"careerpilot_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService *services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("", h.Record)
		payments.GET("/history", h.History)
		payments.GET("/:gatewayId", h.Status)
	}

	// External gateway callback, authenticated by signature instead of a
	// bearer token.
	r.POST("/payments/webhook", h.Webhook)
}

func (h *PaymentHandler) Record(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Record(user.ID, req.GatewayID, req.Amount, req.Currency, req.TokensAdded)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, toPaymentResponse(payment))
}

func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req dto.PaymentWebhookRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.HandleWebhook(req.GatewayID, models.PaymentStatus(req.Status), req.Amount, req.Signature)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toPaymentResponse(payment))
}

func (h *PaymentHandler) History(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	limit, offset := h.Pagination(c)
	payments, err := h.paymentService.History(user.ID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, toPaymentResponse(&p))
	}
	h.OK(c, gin.H{"payments": resp})
}

func (h *PaymentHandler) Status(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetByGatewayID(c.Param("gatewayId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if payment.UserID != user.ID {
		h.HandleServiceError(c, apperrors.New(apperrors.CodeForbidden, "payment", "Payment belongs to another user", http.StatusForbidden))
		return
	}
	h.OK(c, toPaymentResponse(payment))
}

func toPaymentResponse(p *models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:          p.ID,
		GatewayID:   p.GatewayID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Status:      string(p.Status),
		TokensAdded: p.TokensAdded,
		SettledAt:   p.SettledAt,
		CreatedAt:   p.CreatedAt,
	}
}
