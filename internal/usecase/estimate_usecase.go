package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"construction_estimation/internal/domain/entities"
	"construction_estimation/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

const estimateValidityDays = 30

// CreateEstimateInput carries the fields needed to create an estimate.
// Status is optional and defaults to Draft.
type CreateEstimateInput struct {
	ClientID    string
	Title       string
	Description string
	TotalAmount decimal.Decimal
	Status      entities.EstimateStatus
}

// UpdateEstimateInput carries a partial update. Empty strings and nil
// pointers leave the corresponding field unchanged; there is no way to
// blank a field through this path.
type UpdateEstimateInput struct {
	ID          string
	Title       string
	Description string
	TotalAmount *decimal.Decimal
	Status      *entities.EstimateStatus
	ValidUntil  *time.Time
}

// IEstimateUseCase exposes estimate operations shared by the REST API and
// the tool server.
type IEstimateUseCase interface {
	List(ctx context.Context, clientID string) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	Update(ctx context.Context, in UpdateEstimateInput) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
}

type EstimateUseCase struct {
	repo       interfaces.IEstimateRepository
	clientRepo interfaces.IClientRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, clientRepo interfaces.IClientRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, clientRepo: clientRepo}
}

// List returns estimates ordered by creation time descending, optionally
// restricted to one client.
func (u *EstimateUseCase) List(ctx context.Context, clientID string) ([]entities.Estimate, error) {
	estimates, err := u.repo.List(ctx, interfaces.EstimateFilter{ClientID: strings.TrimSpace(clientID)})
	if err != nil {
		return nil, err
	}
	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt.After(estimates[j].CreatedAt)
	})
	return estimates, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// Create validates the owning client, assigns the next EST-YYYY-###
// number for the current UTC year, and persists the estimate. The
// validity deadline is 30 days from creation.
func (u *EstimateUseCase) Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	if in.ClientID == "" {
		return entities.Estimate{}, ErrInvalidClientID
	}

	exists, err := u.clientRepo.Exists(ctx, in.ClientID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !exists {
		return entities.Estimate{}, ErrClientNotFound
	}

	status := in.Status
	if status == "" {
		status = entities.EstimateStatusDraft
	}

	number, err := u.nextEstimateNumber(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	validUntil := now.AddDate(0, 0, estimateValidityDays)
	e := entities.Estimate{
		ID:             uuid.NewString(),
		ClientID:       in.ClientID,
		EstimateNumber: number,
		Title:          in.Title,
		Description:    in.Description,
		TotalAmount:    in.TotalAmount,
		Status:         status,
		ValidUntil:     &validUntil,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, e)
}

// Update applies the provided fields and refreshes UpdatedAt. Absent
// fields are left untouched.
func (u *EstimateUseCase) Update(ctx context.Context, in UpdateEstimateInput) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, in.ID)
	if err != nil {
		return entities.Estimate{}, err
	}

	if in.Title != "" {
		e.Title = in.Title
	}
	if in.Description != "" {
		e.Description = in.Description
	}
	if in.TotalAmount != nil {
		e.TotalAmount = *in.TotalAmount
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.ValidUntil != nil {
		e.ValidUntil = in.ValidUntil
	}

	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

// nextEstimateNumber scans existing estimate numbers for the current UTC
// year. Fine at this data scale; a concurrent-safe counter item would be
// needed if creators ever ran in parallel.
func (u *EstimateUseCase) nextEstimateNumber(ctx context.Context) (string, error) {
	estimates, err := u.repo.List(ctx, interfaces.EstimateFilter{})
	if err != nil {
		return "", err
	}
	year := time.Now().UTC().Year()
	numbers := make([]string, 0, len(estimates))
	for _, e := range estimates {
		numbers = append(numbers, e.EstimateNumber)
	}
	seq := nextSequence(numbers, fmt.Sprintf("EST-%d-", year))
	return formatSequenceNumber("EST", year, seq), nil
}
