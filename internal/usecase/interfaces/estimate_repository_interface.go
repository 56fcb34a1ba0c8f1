package interfaces

import (
	"context"

	"construction_estimation/internal/domain/entities"
)

// EstimateFilter narrows List results. Zero-value fields are ignored.
type EstimateFilter struct {
	ClientID string
}

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// List returns items in storage order; callers are responsible for
// sorting (Scan has no ordering guarantee).
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context, filter EstimateFilter) ([]entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
