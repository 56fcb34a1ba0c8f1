package interfaces

import (
	"context"

	"construction_estimation/internal/domain/entities"
)

// InvoiceFilter narrows List results. Zero-value fields are ignored.
type InvoiceFilter struct {
	ClientID   string
	EstimateID string
}

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
type IInvoiceRepository interface {
	Create(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]entities.Invoice, error)
	Update(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}
