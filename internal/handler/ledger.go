package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hisaab/hisaab/internal/middleware"
	"github.com/hisaab/hisaab/internal/models"
	"github.com/hisaab/hisaab/internal/service"
)

// LedgerHandler serves the reconciliation endpoints: activity feed, net
// summary, and the two ledger writes.
type LedgerHandler struct {
	ledger *service.LedgerService
}

func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledgerService}
}

type recordTransactionRequest struct {
	Name           string   `json:"name" binding:"required,max=128"`
	Amount         int64    `json:"amount" binding:"required"`
	PayerID        string   `json:"payer_id" binding:"required"`
	SplitEqually   bool     `json:"split_equally"`
	ParticipantIDs []string `json:"participant_ids" binding:"required"`
}

type recordSettlementRequest struct {
	Amount       int64  `json:"amount" binding:"required"`
	PaidFromID   string `json:"paid_from_id" binding:"required"`
	ReceivedByID string `json:"received_by_id" binding:"required"`
}

type netBalanceResponse struct {
	CounterpartyID string `json:"counterparty_id"`
	Amount         int64  `json:"amount"`
}

type netSummaryResponse struct {
	NetBalances      []netBalanceResponse `json:"net_balances"`
	TotalExpenditure int64                `json:"my_total_expenditure"`
}

// Activity handles GET /api/groups/:id/activity.
func (h *LedgerHandler) Activity(c *gin.Context) {
	feed, err := h.ledger.GetActivityFeed(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp := make([]activityResponse, 0, len(feed))
	for _, entry := range feed {
		resp = append(resp, toActivityResponse(entry))
	}
	c.JSON(http.StatusOK, resp)
}

// Summary handles GET /api/groups/:id/summary.
func (h *LedgerHandler) Summary(c *gin.Context) {
	summary, err := h.ledger.GetNetSummary(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toNetSummaryResponse(summary))
}

// RecordTransaction handles POST /api/groups/:id/transactions.
func (h *LedgerHandler) RecordTransaction(c *gin.Context) {
	var req recordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, err := h.ledger.RecordTransaction(
		c.Request.Context(),
		c.Param("id"),
		middleware.GetUserID(c),
		req.Name,
		req.Amount,
		req.PayerID,
		req.SplitEqually,
		req.ParticipantIDs,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTransactionResponse(txn))
}

// RecordSettlement handles POST /api/groups/:id/settlements.
func (h *LedgerHandler) RecordSettlement(c *gin.Context) {
	var req recordSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settlement, err := h.ledger.RecordSettlement(
		c.Request.Context(),
		c.Param("id"),
		middleware.GetUserID(c),
		req.Amount,
		req.PaidFromID,
		req.ReceivedByID,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSettlementResponse(settlement))
}

func toNetSummaryResponse(summary models.NetSummary) netSummaryResponse {
	balances := make([]netBalanceResponse, 0, len(summary.Balances))
	for _, b := range summary.Balances {
		balances = append(balances, netBalanceResponse{
			CounterpartyID: b.CounterpartyID,
			Amount:         b.Amount,
		})
	}
	return netSummaryResponse{
		NetBalances:      balances,
		TotalExpenditure: summary.TotalExpenditure,
	}
}
