// Package seed loads sample clients, estimates, and invoices into an
// empty store so the tool server and the API have data to work with out
// of the box.
package seed

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"construction_estimation/internal/domain/entities"
	"construction_estimation/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Run seeds sample data. SEED_DATA=false disables it entirely; otherwise
// it is a no-op when any client already exists, so repeated startups
// never duplicate records.
func Run(
	ctx context.Context,
	clients interfaces.IClientRepository,
	estimates interfaces.IEstimateRepository,
	invoices interfaces.IInvoiceRepository,
) error {
	if strings.EqualFold(getenvDefault("SEED_DATA", "true"), "false") {
		return nil
	}

	existing, err := clients.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }
	daysFromNow := func(d int) *time.Time {
		ts := now.AddDate(0, 0, d)
		return &ts
	}
	amount := decimal.RequireFromString

	sampleClients := []entities.Client{
		{
			ID: uuid.NewString(), Name: "Smith Residence", Email: "john.smith@email.com",
			Phone: "(555) 123-4567", Address: "123 Oak Street", City: "Springfield", State: "IL", ZipCode: "62701",
			CreatedAt: daysAgo(30), UpdatedAt: daysAgo(30),
		},
		{
			ID: uuid.NewString(), Name: "Johnson Commercial Properties", Email: "contact@johnsonproperties.com",
			Phone: "(555) 234-5678", Address: "456 Business Park Dr", City: "Chicago", State: "IL", ZipCode: "60601",
			CreatedAt: daysAgo(45), UpdatedAt: daysAgo(45),
		},
		{
			ID: uuid.NewString(), Name: "Martinez Family Home", Email: "maria.martinez@email.com",
			Phone: "(555) 345-6789", Address: "789 Maple Avenue", City: "Naperville", State: "IL", ZipCode: "60540",
			CreatedAt: daysAgo(15), UpdatedAt: daysAgo(15),
		},
		{
			ID: uuid.NewString(), Name: "Riverside Restaurant Group", Email: "info@riversidegroup.com",
			Phone: "(555) 456-7890", Address: "321 River Road", City: "Peoria", State: "IL", ZipCode: "61602",
			CreatedAt: daysAgo(60), UpdatedAt: daysAgo(60),
		},
	}
	for _, c := range sampleClients {
		if _, err := clients.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to seed client %q: %w", c.Name, err)
		}
	}

	year := now.Year()
	number := func(kind string, n int) string { return fmt.Sprintf("%s-%d-%03d", kind, year, n) }

	sampleEstimates := []entities.Estimate{
		{
			ID: uuid.NewString(), ClientID: sampleClients[0].ID, EstimateNumber: number("EST", 1),
			Title:       "Kitchen Remodel",
			Description: "Complete kitchen renovation including new cabinets, countertops, appliances, and flooring. Includes electrical and plumbing updates.",
			TotalAmount: amount("45000.00"), Status: entities.EstimateStatusApproved,
			ValidUntil: daysFromNow(30), CreatedAt: daysAgo(25), UpdatedAt: daysAgo(20),
		},
		{
			ID: uuid.NewString(), ClientID: sampleClients[0].ID, EstimateNumber: number("EST", 2),
			Title:       "Master Bathroom Addition",
			Description: "Add new master bathroom with walk-in shower, double vanity, and heated flooring.",
			TotalAmount: amount("32000.00"), Status: entities.EstimateStatusSent,
			ValidUntil: daysFromNow(45), CreatedAt: daysAgo(10), UpdatedAt: daysAgo(10),
		},
		{
			ID: uuid.NewString(), ClientID: sampleClients[1].ID, EstimateNumber: number("EST", 3),
			Title:       "Office Building Renovation",
			Description: "Complete renovation of 3,000 sq ft office space including new flooring, lighting, HVAC updates, and conference room build-out.",
			TotalAmount: amount("125000.00"), Status: entities.EstimateStatusApproved,
			ValidUntil: daysFromNow(60), CreatedAt: daysAgo(40), UpdatedAt: daysAgo(35),
		},
		{
			ID: uuid.NewString(), ClientID: sampleClients[2].ID, EstimateNumber: number("EST", 4),
			Title:       "Deck Construction",
			Description: "Build new 400 sq ft composite deck with integrated lighting and railings.",
			TotalAmount: amount("18500.00"), Status: entities.EstimateStatusDraft,
			ValidUntil: daysFromNow(30), CreatedAt: daysAgo(5), UpdatedAt: daysAgo(5),
		},
		{
			ID: uuid.NewString(), ClientID: sampleClients[3].ID, EstimateNumber: number("EST", 5),
			Title:       "Restaurant Kitchen Upgrade",
			Description: "Commercial kitchen upgrade including new exhaust system, stainless steel prep tables, and electrical upgrades.",
			TotalAmount: amount("85000.00"), Status: entities.EstimateStatusSent,
			ValidUntil: daysFromNow(20), CreatedAt: daysAgo(55), UpdatedAt: daysAgo(50),
		},
		{
			ID: uuid.NewString(), ClientID: sampleClients[2].ID, EstimateNumber: number("EST", 6),
			Title:       "Basement Finishing",
			Description: "Finish 800 sq ft basement with new drywall, flooring, lighting, and bathroom addition.",
			TotalAmount: amount("42000.00"), Status: entities.EstimateStatusRejected,
			ValidUntil: daysFromNow(-5), CreatedAt: daysAgo(20), UpdatedAt: daysAgo(12),
		},
	}
	for _, e := range sampleEstimates {
		if _, err := estimates.Create(ctx, e); err != nil {
			return fmt.Errorf("failed to seed estimate %s: %w", e.EstimateNumber, err)
		}
	}

	sampleInvoices := []entities.Invoice{
		{
			ID: uuid.NewString(), ClientID: sampleClients[0].ID, EstimateID: sampleEstimates[0].ID,
			InvoiceNumber: number("INV", 1), Description: "Kitchen Remodel - Initial Payment (50%)",
			Amount: amount("22500.00"), Status: entities.InvoiceStatusPaid,
			DueDate: daysFromNow(-15), PaidDate: daysFromNow(-18),
			CreatedAt: daysAgo(20), UpdatedAt: daysAgo(18),
		},
		{
			ID: uuid.NewString(), ClientID: sampleClients[0].ID, EstimateID: sampleEstimates[0].ID,
			InvoiceNumber: number("INV", 2), Description: "Kitchen Remodel - Progress Payment (25%)",
			Amount: amount("11250.00"), Status: entities.InvoiceStatusSent,
			DueDate:   daysFromNow(10),
			CreatedAt: daysAgo(5), UpdatedAt: daysAgo(5),
		},
		{
			ID: uuid.NewString(), ClientID: sampleClients[1].ID, EstimateID: sampleEstimates[2].ID,
			InvoiceNumber: number("INV", 3), Description: "Office Building Renovation - Deposit",
			Amount: amount("37500.00"), Status: entities.InvoiceStatusPaid,
			DueDate: daysFromNow(-30), PaidDate: daysFromNow(-32),
			CreatedAt: daysAgo(35), UpdatedAt: daysAgo(32),
		},
		{
			ID: uuid.NewString(), ClientID: sampleClients[1].ID, EstimateID: sampleEstimates[2].ID,
			InvoiceNumber: number("INV", 4), Description: "Office Building Renovation - Progress Payment #1",
			Amount: amount("43750.00"), Status: entities.InvoiceStatusPaid,
			DueDate: daysFromNow(-10), PaidDate: daysFromNow(-8),
			CreatedAt: daysAgo(15), UpdatedAt: daysAgo(8),
		},
		{
			ID: uuid.NewString(), ClientID: sampleClients[1].ID, EstimateID: sampleEstimates[2].ID,
			InvoiceNumber: number("INV", 5), Description: "Office Building Renovation - Final Payment",
			Amount: amount("43750.00"), Status: entities.InvoiceStatusSent,
			DueDate:   daysFromNow(15),
			CreatedAt: daysAgo(2), UpdatedAt: daysAgo(2),
		},
		{
			ID: uuid.NewString(), ClientID: sampleClients[3].ID,
			InvoiceNumber: number("INV", 6), Description: "Emergency Plumbing Repair - Kitchen Line",
			Amount: amount("1850.00"), Status: entities.InvoiceStatusOverdue,
			DueDate:   daysFromNow(-5),
			CreatedAt: daysAgo(25), UpdatedAt: daysAgo(25),
		},
		{
			ID: uuid.NewString(), ClientID: sampleClients[2].ID,
			InvoiceNumber: number("INV", 7), Description: "Consultation and Site Assessment",
			Amount: amount("500.00"), Status: entities.InvoiceStatusDraft,
			DueDate:   daysFromNow(30),
			CreatedAt: daysAgo(3), UpdatedAt: daysAgo(3),
		},
	}
	for _, i := range sampleInvoices {
		if _, err := invoices.Create(ctx, i); err != nil {
			return fmt.Errorf("failed to seed invoice %s: %w", i.InvoiceNumber, err)
		}
	}

	log.Printf("seeded sample data: %d clients, %d estimates, %d invoices",
		len(sampleClients), len(sampleEstimates), len(sampleInvoices))
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
