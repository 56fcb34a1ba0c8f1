package mcp

import (
	"context"
	"errors"
	"strings"
	"time"

	"construction_estimation/internal/domain/entities"
	"construction_estimation/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type invoiceRow struct {
	ID            string          `json:"Id"`
	ClientID      string          `json:"ClientId"`
	EstimateID    *string         `json:"EstimateId"`
	InvoiceNumber string          `json:"InvoiceNumber"`
	Description   string          `json:"Description"`
	Amount        decimal.Decimal `json:"Amount"`
	Status        string          `json:"Status"`
	DueDate       *time.Time      `json:"DueDate"`
	PaidDate      *time.Time      `json:"PaidDate"`
	CreatedAt     time.Time       `json:"CreatedAt"`
}

type invoiceStatusGroup struct {
	Status      string          `json:"Status"`
	Count       int             `json:"Count"`
	TotalAmount decimal.Decimal `json:"TotalAmount"`
}

type overdueInvoice struct {
	InvoiceNumber string          `json:"InvoiceNumber"`
	Amount        decimal.Decimal `json:"Amount"`
	DueDate       *time.Time      `json:"DueDate"`
	DaysOverdue   int             `json:"DaysOverdue"`
}

type recentInvoice struct {
	InvoiceNumber string          `json:"InvoiceNumber"`
	Amount        decimal.Decimal `json:"Amount"`
	Status        string          `json:"Status"`
	DueDate       *time.Time      `json:"DueDate"`
	CreatedAt     time.Time       `json:"CreatedAt"`
}

type estimatesSummary struct {
	Total      int             `json:"Total"`
	TotalValue decimal.Decimal `json:"TotalValue"`
	ByStatus   []statusGroup   `json:"ByStatus"`
}

type invoicesSummary struct {
	Total            int                  `json:"Total"`
	TotalBilled      decimal.Decimal      `json:"TotalBilled"`
	TotalPaid        decimal.Decimal      `json:"TotalPaid"`
	TotalOutstanding decimal.Decimal      `json:"TotalOutstanding"`
	ByStatus         []invoiceStatusGroup `json:"ByStatus"`
	OverdueInvoices  []overdueInvoice     `json:"OverdueInvoices"`
}

type recentActivity struct {
	RecentEstimates []recentEstimate `json:"RecentEstimates"`
	RecentInvoices  []recentInvoice  `json:"RecentInvoices"`
}

type financialSummary struct {
	ClientID       string           `json:"ClientId"`
	ClientName     string           `json:"ClientName"`
	Estimates      estimatesSummary `json:"Estimates"`
	Invoices       invoicesSummary  `json:"Invoices"`
	RecentActivity recentActivity   `json:"RecentActivity"`
}

// listInvoices drops malformed filters silently, same as listEstimates.
func (t *Toolset) listInvoices(ctx context.Context, clientID, estimateID string) string {
	clientID = strings.TrimSpace(clientID)
	estimateID = strings.TrimSpace(estimateID)
	if clientID != "" {
		if _, err := uuid.Parse(clientID); err != nil {
			clientID = ""
		}
	}
	if estimateID != "" {
		if _, err := uuid.Parse(estimateID); err != nil {
			estimateID = ""
		}
	}

	invoices, err := t.invoices.List(ctx, clientID, estimateID)
	if err != nil {
		return failurePayload("Failed to retrieve invoices", err)
	}

	out := make([]invoiceRow, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, invoiceRow{
			ID:            i.ID,
			ClientID:      i.ClientID,
			EstimateID:    optionalID(i.EstimateID),
			InvoiceNumber: i.InvoiceNumber,
			Description:   i.Description,
			Amount:        i.Amount,
			Status:        string(i.Status),
			DueDate:       i.DueDate,
			PaidDate:      i.PaidDate,
			CreatedAt:     i.CreatedAt,
		})
	}
	return renderJSON(out)
}

func (t *Toolset) getClientFinancialSummary(ctx context.Context, clientID string) string {
	if _, err := uuid.Parse(clientID); err != nil {
		return errorPayload("Invalid client ID format")
	}

	client, err := t.clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, usecase.ErrClientNotFound) {
			return errorPayload("Client not found")
		}
		return failurePayload("Failed to retrieve financial summary", err)
	}

	estimates, err := t.estimates.List(ctx, clientID)
	if err != nil {
		return failurePayload("Failed to retrieve financial summary", err)
	}
	invoices, err := t.invoices.List(ctx, clientID, "")
	if err != nil {
		return failurePayload("Failed to retrieve financial summary", err)
	}

	summary := financialSummary{
		ClientID:   client.ID,
		ClientName: client.Name,
		Estimates: estimatesSummary{
			Total:      len(estimates),
			TotalValue: decimal.Zero,
			ByStatus:   []statusGroup{},
		},
		Invoices: invoicesSummary{
			Total:            len(invoices),
			TotalBilled:      decimal.Zero,
			TotalPaid:        decimal.Zero,
			TotalOutstanding: decimal.Zero,
			ByStatus:         []invoiceStatusGroup{},
			OverdueInvoices:  []overdueInvoice{},
		},
		RecentActivity: recentActivity{
			RecentEstimates: []recentEstimate{},
			RecentInvoices:  []recentInvoice{},
		},
	}

	estimateGroups := map[entities.EstimateStatus]int{}
	for _, e := range estimates {
		summary.Estimates.TotalValue = summary.Estimates.TotalValue.Add(e.TotalAmount)
		idx, ok := estimateGroups[e.Status]
		if !ok {
			idx = len(summary.Estimates.ByStatus)
			estimateGroups[e.Status] = idx
			summary.Estimates.ByStatus = append(summary.Estimates.ByStatus, statusGroup{
				Status:     string(e.Status),
				TotalValue: decimal.Zero,
			})
		}
		summary.Estimates.ByStatus[idx].Count++
		summary.Estimates.ByStatus[idx].TotalValue = summary.Estimates.ByStatus[idx].TotalValue.Add(e.TotalAmount)
	}

	now := time.Now().UTC()
	invoiceGroups := map[entities.InvoiceStatus]int{}
	for _, i := range invoices {
		summary.Invoices.TotalBilled = summary.Invoices.TotalBilled.Add(i.Amount)
		if i.Status == entities.InvoiceStatusPaid {
			summary.Invoices.TotalPaid = summary.Invoices.TotalPaid.Add(i.Amount)
		} else {
			summary.Invoices.TotalOutstanding = summary.Invoices.TotalOutstanding.Add(i.Amount)
		}

		idx, ok := invoiceGroups[i.Status]
		if !ok {
			idx = len(summary.Invoices.ByStatus)
			invoiceGroups[i.Status] = idx
			summary.Invoices.ByStatus = append(summary.Invoices.ByStatus, invoiceStatusGroup{
				Status:      string(i.Status),
				TotalAmount: decimal.Zero,
			})
		}
		summary.Invoices.ByStatus[idx].Count++
		summary.Invoices.ByStatus[idx].TotalAmount = summary.Invoices.ByStatus[idx].TotalAmount.Add(i.Amount)

		if i.Status == entities.InvoiceStatusOverdue {
			days := 0
			if i.DueDate != nil {
				days = int(now.Sub(*i.DueDate).Hours() / 24)
			}
			summary.Invoices.OverdueInvoices = append(summary.Invoices.OverdueInvoices, overdueInvoice{
				InvoiceNumber: i.InvoiceNumber,
				Amount:        i.Amount,
				DueDate:       i.DueDate,
				DaysOverdue:   days,
			})
		}
	}

	// Both lists arrive sorted by creation time descending.
	for _, e := range estimates {
		if len(summary.RecentActivity.RecentEstimates) == 3 {
			break
		}
		summary.RecentActivity.RecentEstimates = append(summary.RecentActivity.RecentEstimates, recentEstimate{
			EstimateNumber: e.EstimateNumber,
			Title:          e.Title,
			TotalAmount:    e.TotalAmount,
			Status:         string(e.Status),
			CreatedAt:      e.CreatedAt,
		})
	}
	for _, i := range invoices {
		if len(summary.RecentActivity.RecentInvoices) == 3 {
			break
		}
		summary.RecentActivity.RecentInvoices = append(summary.RecentActivity.RecentInvoices, recentInvoice{
			InvoiceNumber: i.InvoiceNumber,
			Amount:        i.Amount,
			Status:        string(i.Status),
			DueDate:       i.DueDate,
			CreatedAt:     i.CreatedAt,
		})
	}

	return renderJSON(summary)
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
