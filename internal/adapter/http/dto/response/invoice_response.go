package response

import (
	"time"

	"construction_estimation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type InvoiceResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	EstimateID    string          `json:"estimate_id,omitempty"`
	InvoiceNumber string          `json:"invoice_number"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	DueDate       *time.Time      `json:"due_date"`
	PaidDate      *time.Time      `json:"paid_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            i.ID,
		ClientID:      i.ClientID,
		EstimateID:    i.EstimateID,
		InvoiceNumber: i.InvoiceNumber,
		Description:   i.Description,
		Amount:        i.Amount,
		Status:        string(i.Status),
		DueDate:       i.DueDate,
		PaidDate:      i.PaidDate,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, FromInvoice(i))
	}
	return out
}
