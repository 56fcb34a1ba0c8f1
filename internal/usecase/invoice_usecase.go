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
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
)

// CreateInvoiceInput carries the fields needed to create an invoice.
// EstimateID is optional; when set, the estimate must exist.
type CreateInvoiceInput struct {
	ClientID    string
	EstimateID  string
	Description string
	Amount      decimal.Decimal
	Status      entities.InvoiceStatus
	DueDate     *time.Time
}

// UpdateInvoiceInput carries a partial update, with the same "empty means
// unchanged" contract as estimates.
type UpdateInvoiceInput struct {
	ID          string
	Description string
	Amount      *decimal.Decimal
	Status      *entities.InvoiceStatus
	DueDate     *time.Time
	PaidDate    *time.Time
}

// IInvoiceUseCase exposes invoice operations shared by the REST API and
// the tool server.
type IInvoiceUseCase interface {
	List(ctx context.Context, clientID, estimateID string) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Create(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error)
	Update(ctx context.Context, in UpdateInvoiceInput) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}

type InvoiceUseCase struct {
	repo         interfaces.IInvoiceRepository
	clientRepo   interfaces.IClientRepository
	estimateRepo interfaces.IEstimateRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, clientRepo interfaces.IClientRepository, estimateRepo interfaces.IEstimateRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, clientRepo: clientRepo, estimateRepo: estimateRepo}
}

// List returns invoices ordered by creation time descending, optionally
// restricted to one client and/or one originating estimate.
func (u *InvoiceUseCase) List(ctx context.Context, clientID, estimateID string) ([]entities.Invoice, error) {
	invoices, err := u.repo.List(ctx, interfaces.InvoiceFilter{
		ClientID:   strings.TrimSpace(clientID),
		EstimateID: strings.TrimSpace(estimateID),
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	return invoices, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if i.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return i, nil
}

// Create validates the owning client (and estimate, when linked), assigns
// the next INV-YYYY-### number for the current UTC year, and persists.
func (u *InvoiceUseCase) Create(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.EstimateID = strings.TrimSpace(in.EstimateID)
	if in.ClientID == "" {
		return entities.Invoice{}, ErrInvalidClientID
	}

	exists, err := u.clientRepo.Exists(ctx, in.ClientID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !exists {
		return entities.Invoice{}, ErrClientNotFound
	}

	if in.EstimateID != "" {
		exists, err := u.estimateRepo.Exists(ctx, in.EstimateID)
		if err != nil {
			return entities.Invoice{}, err
		}
		if !exists {
			return entities.Invoice{}, ErrEstimateNotFound
		}
	}

	status := in.Status
	if status == "" {
		status = entities.InvoiceStatusDraft
	}

	number, err := u.nextInvoiceNumber(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	i := entities.Invoice{
		ID:            uuid.NewString(),
		ClientID:      in.ClientID,
		EstimateID:    in.EstimateID,
		InvoiceNumber: number,
		Description:   in.Description,
		Amount:        in.Amount,
		Status:        status,
		DueDate:       in.DueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, i)
}

// Update applies the provided fields and refreshes UpdatedAt.
func (u *InvoiceUseCase) Update(ctx context.Context, in UpdateInvoiceInput) (entities.Invoice, error) {
	i, err := u.GetByID(ctx, in.ID)
	if err != nil {
		return entities.Invoice{}, err
	}

	if in.Description != "" {
		i.Description = in.Description
	}
	if in.Amount != nil {
		i.Amount = *in.Amount
	}
	if in.Status != nil {
		i.Status = *in.Status
	}
	if in.DueDate != nil {
		i.DueDate = in.DueDate
	}
	if in.PaidDate != nil {
		i.PaidDate = in.PaidDate
	}

	i.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, i)
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *InvoiceUseCase) nextInvoiceNumber(ctx context.Context) (string, error) {
	invoices, err := u.repo.List(ctx, interfaces.InvoiceFilter{})
	if err != nil {
		return "", err
	}
	year := time.Now().UTC().Year()
	numbers := make([]string, 0, len(invoices))
	for _, i := range invoices {
		numbers = append(numbers, i.InvoiceNumber)
	}
	seq := nextSequence(numbers, fmt.Sprintf("INV-%d-", year))
	return formatSequenceNumber("INV", year, seq), nil
}
