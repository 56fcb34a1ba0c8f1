package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of a construction estimate.
//
// Domain notes:
//   - An estimate starts as Draft, is sent to the client, and ends up
//     Approved or Rejected.
//   - Invoices may be issued from an Approved estimate, but the link is
//     optional: standalone invoices are allowed.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "Draft"
	EstimateStatusSent     EstimateStatus = "Sent"
	EstimateStatusApproved EstimateStatus = "Approved"
	EstimateStatusRejected EstimateStatus = "Rejected"
)

// EstimateStatusValues lists all valid statuses in declaration order.
func EstimateStatusValues() []EstimateStatus {
	return []EstimateStatus{
		EstimateStatusDraft,
		EstimateStatusSent,
		EstimateStatusApproved,
		EstimateStatusRejected,
	}
}

// ParseEstimateStatus matches s against the enumeration, case-insensitively.
func ParseEstimateStatus(s string) (EstimateStatus, bool) {
	for _, v := range EstimateStatusValues() {
		if strings.EqualFold(s, string(v)) {
			return v, true
		}
	}
	return "", false
}

// Estimate is a construction project estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - EstimateNumber is unique per year (EST-YYYY-###), assigned once at
//     creation and never changed.
type Estimate struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	EstimateNumber string          `json:"estimate_number"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         EstimateStatus  `json:"status"`
	ValidUntil     *time.Time      `json:"valid_until,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
