package request

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest is the payload for creating an invoice. EstimateID
// is optional; when set, the referenced estimate must exist.
type CreateInvoiceRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	EstimateID  string `json:"estimate_id"`
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
}

func (r CreateInvoiceRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

func (r CreateInvoiceRequest) ResolveAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

func (r CreateInvoiceRequest) ResolveDueDate() (*time.Time, error) {
	return resolveOptionalDate(r.DueDate)
}

// UpdateInvoiceRequest is a partial update with the same empty-means-
// unchanged contract as estimates.
type UpdateInvoiceRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
	PaidDate    string `json:"paid_date"`
}

func (r UpdateInvoiceRequest) ResolveAmount() (*decimal.Decimal, error) {
	s := strings.TrimSpace(r.Amount)
	if s == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	return &amount, nil
}

func (r UpdateInvoiceRequest) ResolveDueDate() (*time.Time, error) {
	return resolveOptionalDate(r.DueDate)
}

func (r UpdateInvoiceRequest) ResolvePaidDate() (*time.Time, error) {
	return resolveOptionalDate(r.PaidDate)
}
