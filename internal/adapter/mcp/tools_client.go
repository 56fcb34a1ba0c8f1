package mcp

import (
	"context"
	"errors"
	"time"

	"construction_estimation/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client tool payloads use the PascalCase field names the REST consumers
// of this data already know.

type clientSummary struct {
	ID    string `json:"Id"`
	Name  string `json:"Name"`
	Email string `json:"Email"`
	Phone string `json:"Phone"`
	City  string `json:"City"`
	State string `json:"State"`
}

type clientEstimateSummary struct {
	ID             string          `json:"Id"`
	EstimateNumber string          `json:"EstimateNumber"`
	Title          string          `json:"Title"`
	TotalAmount    decimal.Decimal `json:"TotalAmount"`
	Status         string          `json:"Status"`
	CreatedAt      time.Time       `json:"CreatedAt"`
}

type clientInvoiceSummary struct {
	ID            string          `json:"Id"`
	InvoiceNumber string          `json:"InvoiceNumber"`
	Description   string          `json:"Description"`
	Amount        decimal.Decimal `json:"Amount"`
	Status        string          `json:"Status"`
	DueDate       *time.Time      `json:"DueDate"`
	PaidDate      *time.Time      `json:"PaidDate"`
}

type clientDetails struct {
	ID        string                  `json:"Id"`
	Name      string                  `json:"Name"`
	Email     string                  `json:"Email"`
	Phone     string                  `json:"Phone"`
	Address   string                  `json:"Address"`
	City      string                  `json:"City"`
	State     string                  `json:"State"`
	ZipCode   string                  `json:"ZipCode"`
	CreatedAt time.Time               `json:"CreatedAt"`
	UpdatedAt time.Time               `json:"UpdatedAt"`
	Estimates []clientEstimateSummary `json:"Estimates"`
	Invoices  []clientInvoiceSummary  `json:"Invoices"`
}

func (t *Toolset) listClients(ctx context.Context) string {
	clients, err := t.clients.List(ctx)
	if err != nil {
		return failurePayload("Failed to retrieve clients", err)
	}

	out := make([]clientSummary, 0, len(clients))
	for _, c := range clients {
		out = append(out, clientSummary{
			ID:    c.ID,
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
			City:  c.City,
			State: c.State,
		})
	}
	return renderJSON(out)
}

func (t *Toolset) getClientDetails(ctx context.Context, clientID string) string {
	if _, err := uuid.Parse(clientID); err != nil {
		return errorPayload("Invalid client ID format")
	}

	client, err := t.clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, usecase.ErrClientNotFound) {
			return errorPayload("Client not found")
		}
		return failurePayload("Failed to retrieve client details", err)
	}

	estimates, err := t.estimates.List(ctx, clientID)
	if err != nil {
		return failurePayload("Failed to retrieve client details", err)
	}
	invoices, err := t.invoices.List(ctx, clientID, "")
	if err != nil {
		return failurePayload("Failed to retrieve client details", err)
	}

	details := clientDetails{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Address:   client.Address,
		City:      client.City,
		State:     client.State,
		ZipCode:   client.ZipCode,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
		Estimates: make([]clientEstimateSummary, 0, len(estimates)),
		Invoices:  make([]clientInvoiceSummary, 0, len(invoices)),
	}
	for _, e := range estimates {
		details.Estimates = append(details.Estimates, clientEstimateSummary{
			ID:             e.ID,
			EstimateNumber: e.EstimateNumber,
			Title:          e.Title,
			TotalAmount:    e.TotalAmount,
			Status:         string(e.Status),
			CreatedAt:      e.CreatedAt,
		})
	}
	for _, i := range invoices {
		details.Invoices = append(details.Invoices, clientInvoiceSummary{
			ID:            i.ID,
			InvoiceNumber: i.InvoiceNumber,
			Description:   i.Description,
			Amount:        i.Amount,
			Status:        string(i.Status),
			DueDate:       i.DueDate,
			PaidDate:      i.PaidDate,
		})
	}
	return renderJSON(details)
}
