// Package handler exposes the services over HTTP with gin.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hisaab/hisaab/internal/models"
	"github.com/hisaab/hisaab/internal/service"
)

// userResponse is the public view of a user. The password hash never leaves
// the server.
type userResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
	}
}

type groupResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	CreatorID     string   `json:"creator_id"`
	TotalExpenses int64    `json:"total_expenses"`
	MemberIDs     []string `json:"member_ids"`
	CreatedAt     int64    `json:"created_at"`
}

func toGroupResponse(g *models.Group) groupResponse {
	return groupResponse{
		ID:            g.ID,
		Name:          g.Name,
		CreatorID:     g.CreatorID,
		TotalExpenses: g.TotalExpenses,
		MemberIDs:     g.MemberIDs,
		CreatedAt:     g.CreatedAt,
	}
}

type transactionResponse struct {
	ID             string   `json:"id"`
	GroupID        string   `json:"group_id"`
	Name           string   `json:"name"`
	Amount         int64    `json:"amount"`
	CreatorID      string   `json:"creator_id"`
	PayerID        string   `json:"payer_id"`
	SplitEqually   bool     `json:"split_equally"`
	ParticipantIDs []string `json:"participant_ids"`
	CreatedAt      int64    `json:"created_at"`
}

func toTransactionResponse(t *models.Transaction) transactionResponse {
	return transactionResponse{
		ID:             t.ID,
		GroupID:        t.GroupID,
		Name:           t.Name,
		Amount:         t.Amount,
		CreatorID:      t.CreatorID,
		PayerID:        t.PayerID,
		SplitEqually:   t.SplitEqually,
		ParticipantIDs: t.ParticipantIDs,
		CreatedAt:      t.CreatedAt,
	}
}

type settlementResponse struct {
	ID           string `json:"id"`
	GroupID      string `json:"group_id"`
	PaidFromID   string `json:"paid_from_id"`
	ReceivedByID string `json:"received_by_id"`
	Amount       int64  `json:"amount"`
	CreatedAt    int64  `json:"created_at"`
}

func toSettlementResponse(s *models.Settlement) settlementResponse {
	return settlementResponse{
		ID:           s.ID,
		GroupID:      s.GroupID,
		PaidFromID:   s.PaidFromID,
		ReceivedByID: s.ReceivedByID,
		Amount:       s.Amount,
		CreatedAt:    s.CreatedAt,
	}
}

// activityResponse is the wire form of the activity tagged union.
type activityResponse struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func toActivityResponse(e models.ActivityEntry) activityResponse {
	switch e.Kind {
	case models.ActivityTransaction:
		return activityResponse{Type: string(e.Kind), Data: toTransactionResponse(e.Transaction)}
	case models.ActivitySettlement:
		return activityResponse{Type: string(e.Kind), Data: toSettlementResponse(e.Settlement)}
	}
	return activityResponse{Type: string(e.Kind)}
}

// writeServiceError maps service errors onto HTTP statuses. Membership
// failures deliberately share the not-found status so group existence never
// leaks to non-members.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotAMember), errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInsufficientSplitParticipants):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
