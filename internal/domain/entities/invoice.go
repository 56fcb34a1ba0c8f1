package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "Draft"
	InvoiceStatusSent    InvoiceStatus = "Sent"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusOverdue InvoiceStatus = "Overdue"
)

// InvoiceStatusValues lists all valid statuses in declaration order.
func InvoiceStatusValues() []InvoiceStatus {
	return []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusPaid,
		InvoiceStatusOverdue,
	}
}

// ParseInvoiceStatus matches s against the enumeration, case-insensitively.
func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	for _, v := range InvoiceStatusValues() {
		if strings.EqualFold(s, string(v)) {
			return v, true
		}
	}
	return "", false
}

// Invoice bills a client for construction work, optionally originating
// from an estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - InvoiceNumber is unique per year (INV-YYYY-###), assigned once at
//     creation and never changed.
type Invoice struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	EstimateID    string          `json:"estimate_id,omitempty"`
	InvoiceNumber string          `json:"invoice_number"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Status        InvoiceStatus   `json:"status"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	PaidDate      *time.Time      `json:"paid_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
