package response

import (
	"time"

	"construction_estimation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type EstimateResponse struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	EstimateNumber string          `json:"estimate_number"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         string          `json:"status"`
	ValidUntil     *time.Time      `json:"valid_until"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:             e.ID,
		ClientID:       e.ClientID,
		EstimateNumber: e.EstimateNumber,
		Title:          e.Title,
		Description:    e.Description,
		TotalAmount:    e.TotalAmount,
		Status:         string(e.Status),
		ValidUntil:     e.ValidUntil,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}
