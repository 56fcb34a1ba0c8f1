package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"construction_estimation/internal/domain/entities"
	"construction_estimation/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type createEstimateArgs struct {
	ClientID    string
	Title       string
	Description string
	TotalAmount string
	Status      string
}

type updateEstimateArgs struct {
	EstimateID  string
	Title       string
	Description string
	TotalAmount string
	Status      string
	ValidUntil  string
}

type estimateRow struct {
	ID             string          `json:"Id"`
	ClientID       string          `json:"ClientId"`
	EstimateNumber string          `json:"EstimateNumber"`
	Title          string          `json:"Title"`
	Description    string          `json:"Description"`
	TotalAmount    decimal.Decimal `json:"TotalAmount"`
	Status         string          `json:"Status"`
	ValidUntil     *time.Time      `json:"ValidUntil"`
	CreatedAt      time.Time       `json:"CreatedAt"`
}

type relatedInvoice struct {
	ID            string          `json:"Id"`
	InvoiceNumber string          `json:"InvoiceNumber"`
	Amount        decimal.Decimal `json:"Amount"`
	Status        string          `json:"Status"`
}

type estimateDetails struct {
	ID              string           `json:"Id"`
	ClientID        string           `json:"ClientId"`
	ClientName      string           `json:"ClientName"`
	EstimateNumber  string           `json:"EstimateNumber"`
	Title           string           `json:"Title"`
	Description     string           `json:"Description"`
	TotalAmount     decimal.Decimal  `json:"TotalAmount"`
	Status          string           `json:"Status"`
	ValidUntil      *time.Time       `json:"ValidUntil"`
	CreatedAt       time.Time        `json:"CreatedAt"`
	UpdatedAt       time.Time        `json:"UpdatedAt"`
	RelatedInvoices []relatedInvoice `json:"RelatedInvoices"`
}

type estimateMutationResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Estimate any    `json:"estimate"`
}

type createdEstimate struct {
	ID             string          `json:"Id"`
	EstimateNumber string          `json:"EstimateNumber"`
	Title          string          `json:"Title"`
	Description    string          `json:"Description"`
	TotalAmount    decimal.Decimal `json:"TotalAmount"`
	Status         string          `json:"Status"`
	ValidUntil     *time.Time      `json:"ValidUntil"`
	CreatedAt      time.Time       `json:"CreatedAt"`
}

type updatedEstimate struct {
	ID             string          `json:"Id"`
	EstimateNumber string          `json:"EstimateNumber"`
	Title          string          `json:"Title"`
	Description    string          `json:"Description"`
	TotalAmount    decimal.Decimal `json:"TotalAmount"`
	Status         string          `json:"Status"`
	ValidUntil     *time.Time      `json:"ValidUntil"`
	CreatedAt      time.Time       `json:"CreatedAt"`
	UpdatedAt      time.Time       `json:"UpdatedAt"`
}

type statusGroup struct {
	Status     string          `json:"Status"`
	Count      int             `json:"Count"`
	TotalValue decimal.Decimal `json:"TotalValue"`
}

type recentEstimate struct {
	EstimateNumber string          `json:"EstimateNumber"`
	Title          string          `json:"Title"`
	TotalAmount    decimal.Decimal `json:"TotalAmount"`
	Status         string          `json:"Status"`
	CreatedAt      time.Time       `json:"CreatedAt"`
}

type estimateStatistics struct {
	TotalEstimates  int              `json:"TotalEstimates"`
	TotalValue      decimal.Decimal  `json:"TotalValue"`
	AverageValue    decimal.Decimal  `json:"AverageValue"`
	StatusBreakdown []statusGroup    `json:"StatusBreakdown"`
	RecentEstimates []recentEstimate `json:"RecentEstimates"`
}

// listEstimates ignores a malformed client_id filter instead of failing,
// returning the unfiltered list.
func (t *Toolset) listEstimates(ctx context.Context, clientID string) string {
	clientID = strings.TrimSpace(clientID)
	if clientID != "" {
		if _, err := uuid.Parse(clientID); err != nil {
			clientID = ""
		}
	}

	estimates, err := t.estimates.List(ctx, clientID)
	if err != nil {
		return failurePayload("Failed to retrieve estimates", err)
	}

	out := make([]estimateRow, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, estimateRow{
			ID:             e.ID,
			ClientID:       e.ClientID,
			EstimateNumber: e.EstimateNumber,
			Title:          e.Title,
			Description:    e.Description,
			TotalAmount:    e.TotalAmount,
			Status:         string(e.Status),
			ValidUntil:     e.ValidUntil,
			CreatedAt:      e.CreatedAt,
		})
	}
	return renderJSON(out)
}

func (t *Toolset) getEstimateDetails(ctx context.Context, estimateID string) string {
	if _, err := uuid.Parse(estimateID); err != nil {
		return errorPayload("Invalid estimate ID format")
	}

	e, err := t.estimates.GetByID(ctx, estimateID)
	if err != nil {
		if errors.Is(err, usecase.ErrEstimateNotFound) {
			return errorPayload("Estimate not found")
		}
		return failurePayload("Failed to retrieve estimate details", err)
	}

	clientName := ""
	if client, cerr := t.clients.GetByID(ctx, e.ClientID); cerr == nil {
		clientName = client.Name
	}

	invoices, err := t.invoices.List(ctx, "", estimateID)
	if err != nil {
		return failurePayload("Failed to retrieve estimate details", err)
	}

	details := estimateDetails{
		ID:              e.ID,
		ClientID:        e.ClientID,
		ClientName:      clientName,
		EstimateNumber:  e.EstimateNumber,
		Title:           e.Title,
		Description:     e.Description,
		TotalAmount:     e.TotalAmount,
		Status:          string(e.Status),
		ValidUntil:      e.ValidUntil,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		RelatedInvoices: make([]relatedInvoice, 0, len(invoices)),
	}
	for _, i := range invoices {
		details.RelatedInvoices = append(details.RelatedInvoices, relatedInvoice{
			ID:            i.ID,
			InvoiceNumber: i.InvoiceNumber,
			Amount:        i.Amount,
			Status:        string(i.Status),
		})
	}
	return renderJSON(details)
}

func (t *Toolset) createEstimate(ctx context.Context, args createEstimateArgs) string {
	if _, err := uuid.Parse(args.ClientID); err != nil {
		return errorPayload("Invalid client ID format")
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(args.TotalAmount))
	if err != nil {
		return errorPayload("Invalid total amount format")
	}

	// An unrecognized status silently falls back to Draft on create.
	status, ok := entities.ParseEstimateStatus(args.Status)
	if !ok {
		status = entities.EstimateStatusDraft
	}

	e, err := t.estimates.Create(ctx, usecase.CreateEstimateInput{
		ClientID:    args.ClientID,
		Title:       args.Title,
		Description: args.Description,
		TotalAmount: amount,
		Status:      status,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrClientNotFound) {
			return errorPayload("Client not found")
		}
		return failurePayload("Failed to create estimate", err)
	}

	return renderJSON(estimateMutationResult{
		Success: true,
		Message: "Estimate created successfully",
		Estimate: createdEstimate{
			ID:             e.ID,
			EstimateNumber: e.EstimateNumber,
			Title:          e.Title,
			Description:    e.Description,
			TotalAmount:    e.TotalAmount,
			Status:         string(e.Status),
			ValidUntil:     e.ValidUntil,
			CreatedAt:      e.CreatedAt,
		},
	})
}

func (t *Toolset) updateEstimate(ctx context.Context, args updateEstimateArgs) string {
	if _, err := uuid.Parse(args.EstimateID); err != nil {
		return errorPayload("Invalid estimate ID format")
	}

	// Existence is checked before field validation so a bad amount on a
	// missing estimate still reports the missing estimate.
	if _, err := t.estimates.GetByID(ctx, args.EstimateID); err != nil {
		if errors.Is(err, usecase.ErrEstimateNotFound) {
			return errorPayload("Estimate not found")
		}
		return failurePayload("Failed to update estimate", err)
	}

	in := usecase.UpdateEstimateInput{
		ID:          args.EstimateID,
		Title:       args.Title,
		Description: args.Description,
	}

	if args.TotalAmount != "" {
		amount, err := decimal.NewFromString(strings.TrimSpace(args.TotalAmount))
		if err != nil {
			return errorPayload("Invalid total amount format")
		}
		in.TotalAmount = &amount
	}

	if args.Status != "" {
		status, ok := entities.ParseEstimateStatus(args.Status)
		if !ok {
			values := entities.EstimateStatusValues()
			names := make([]string, len(values))
			for i, v := range values {
				names[i] = string(v)
			}
			return errorPayload(fmt.Sprintf("Invalid status. Valid values are: %s", strings.Join(names, ", ")))
		}
		in.Status = &status
	}

	if args.ValidUntil != "" {
		validUntil, err := parseToolDate(args.ValidUntil)
		if err != nil {
			return errorPayload("Invalid validUntil date format")
		}
		in.ValidUntil = &validUntil
	}

	e, err := t.estimates.Update(ctx, in)
	if err != nil {
		if errors.Is(err, usecase.ErrEstimateNotFound) {
			return errorPayload("Estimate not found")
		}
		return failurePayload("Failed to update estimate", err)
	}

	return renderJSON(estimateMutationResult{
		Success: true,
		Message: "Estimate updated successfully",
		Estimate: updatedEstimate{
			ID:             e.ID,
			EstimateNumber: e.EstimateNumber,
			Title:          e.Title,
			Description:    e.Description,
			TotalAmount:    e.TotalAmount,
			Status:         string(e.Status),
			ValidUntil:     e.ValidUntil,
			CreatedAt:      e.CreatedAt,
			UpdatedAt:      e.UpdatedAt,
		},
	})
}

func (t *Toolset) getEstimateStatistics(ctx context.Context) string {
	estimates, err := t.estimates.List(ctx, "")
	if err != nil {
		return failurePayload("Failed to retrieve estimate statistics", err)
	}

	if len(estimates) == 0 {
		return renderJSON(map[string]string{"message": "No estimates found"})
	}

	total := decimal.Zero
	for _, e := range estimates {
		total = total.Add(e.TotalAmount)
	}
	average := total.Div(decimal.NewFromInt(int64(len(estimates))))

	// Groups keep first-seen order, then sort by count descending so ties
	// stay deterministic.
	groupIndex := map[entities.EstimateStatus]int{}
	groups := []statusGroup{}
	for _, e := range estimates {
		idx, ok := groupIndex[e.Status]
		if !ok {
			idx = len(groups)
			groupIndex[e.Status] = idx
			groups = append(groups, statusGroup{Status: string(e.Status), TotalValue: decimal.Zero})
		}
		groups[idx].Count++
		groups[idx].TotalValue = groups[idx].TotalValue.Add(e.TotalAmount)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})

	recent := make([]recentEstimate, 0, 5)
	for _, e := range estimates {
		if len(recent) == 5 {
			break
		}
		recent = append(recent, recentEstimate{
			EstimateNumber: e.EstimateNumber,
			Title:          e.Title,
			TotalAmount:    e.TotalAmount,
			Status:         string(e.Status),
			CreatedAt:      e.CreatedAt,
		})
	}

	return renderJSON(estimateStatistics{
		TotalEstimates:  len(estimates),
		TotalValue:      total,
		AverageValue:    average,
		StatusBreakdown: groups,
		RecentEstimates: recent,
	})
}

// parseToolDate accepts full RFC 3339 timestamps and bare dates.
func parseToolDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), nil
	}
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}
