package handlers

import (
	"careerpilot_backend/internal/dto"
	"careerpilot_backend/internal/middleware"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	*BaseHandler
	tokenService *services.TokenService
}

func NewTokenHandler(base *BaseHandler, tokenService *services.TokenService) *TokenHandler {
	return &TokenHandler{
		BaseHandler:  base,
		tokenService: tokenService,
	}
}

func (h *TokenHandler) RegisterRoutes(r *gin.RouterGroup) {
	tokens := r.Group("/tokens")
	tokens.Use(middleware.AuthMiddleware())
	{
		tokens.GET("/balance", h.Balance)
		tokens.GET("/ledger", h.Ledger)
		tokens.POST("/debit", h.Debit)
		tokens.POST("/credit", h.Credit)
	}
}

func (h *TokenHandler) Balance(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	balance, err := h.tokenService.Balance(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	reconciled, err := h.tokenService.Reconciled(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, dto.BalanceResponse{Tokens: balance, Reconciled: reconciled})
}

func (h *TokenHandler) Ledger(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	limit, offset := h.Pagination(c)
	txns, total, err := h.tokenService.History(user.ID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := dto.LedgerResponse{Total: total, Transactions: make([]dto.TokenTransactionResponse, 0, len(txns))}
	for _, txn := range txns {
		resp.Transactions = append(resp.Transactions, toTransactionResponse(&txn))
	}
	h.OK(c, resp)
}

func (h *TokenHandler) Debit(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.DebitTokensRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	txn, err := h.tokenService.Debit(user.ID, req.Amount, req.Description, req.FeatureType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, toTransactionResponse(txn))
}

func (h *TokenHandler) Credit(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreditTokensRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	txn, err := h.tokenService.Credit(user.ID, req.Amount, req.Description, "")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, toTransactionResponse(txn))
}

func toTransactionResponse(txn *models.TokenTransaction) dto.TokenTransactionResponse {
	return dto.TokenTransactionResponse{
		ID:          txn.ID,
		Amount:      txn.Amount,
		Description: txn.Description,
		FeatureType: txn.FeatureType,
		CreatedAt:   txn.CreatedAt,
	}
}
