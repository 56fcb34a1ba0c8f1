package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount value")
	ErrInvalidDate   = errors.New("invalid date value")
)

// CreateEstimateRequest is the payload for creating an estimate. The
// amount travels as a string so the API never sees binary floats.
type CreateEstimateRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	TotalAmount string `json:"total_amount" binding:"required"`
	Status      string `json:"status"`
}

func (r CreateEstimateRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

func (r CreateEstimateRequest) ResolveAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.TotalAmount))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// UpdateEstimateRequest is a partial update. Empty fields are left
// unchanged on the stored estimate.
type UpdateEstimateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TotalAmount string `json:"total_amount"`
	Status      string `json:"status"`
	ValidUntil  string `json:"valid_until"`
}

func (r UpdateEstimateRequest) ResolveAmount() (*decimal.Decimal, error) {
	s := strings.TrimSpace(r.TotalAmount)
	if s == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	return &amount, nil
}

func (r UpdateEstimateRequest) ResolveValidUntil() (*time.Time, error) {
	return resolveOptionalDate(r.ValidUntil)
}

// resolveOptionalDate accepts RFC 3339 timestamps and bare dates, and
// maps the empty string to nil.
func resolveOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		ts = ts.UTC()
		return &ts, nil
	}
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	ts = ts.UTC()
	return &ts, nil
}
