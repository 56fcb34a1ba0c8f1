package repository

import (
	"testing"
	"time"

	"construction_estimation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestClientItemConversion(t *testing.T) {
	created := time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC)
	c := entities.Client{
		ID:        "c-1",
		Name:      "Smith Residence",
		Email:     "john.smith@email.com",
		Phone:     "(555) 123-4567",
		Address:   "123 Oak Street",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62701",
		CreatedAt: created,
		UpdatedAt: created,
	}

	got := fromClientItem(toClientItem(c))
	if got.ID != c.ID || got.Name != c.Name || got.Email != c.Email || got.ZipCode != c.ZipCode {
		t.Fatalf("unexpected client: %+v", got)
	}
	if !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(created) {
		t.Fatalf("timestamps did not survive: %+v", got)
	}
}

func TestEstimateItemConversion(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		validUntil := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
		e := entities.Estimate{
			ID:             "e-1",
			ClientID:       "c-1",
			EstimateNumber: "EST-2025-001",
			Title:          "Kitchen Remodel",
			Description:    "Complete kitchen renovation",
			TotalAmount:    decimal.RequireFromString("45000.00"),
			Status:         entities.EstimateStatusApproved,
			ValidUntil:     &validUntil,
			CreatedAt:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
		}

		got := fromEstimateItem(toEstimateItem(e))
		if got.EstimateNumber != e.EstimateNumber || got.Status != entities.EstimateStatusApproved {
			t.Fatalf("unexpected estimate: %+v", got)
		}
		if !got.TotalAmount.Equal(e.TotalAmount) {
			t.Fatalf("amount did not survive: %s", got.TotalAmount)
		}
		if got.ValidUntil == nil || !got.ValidUntil.Equal(validUntil) {
			t.Fatalf("validity did not survive: %+v", got.ValidUntil)
		}
	})

	t.Run("amount survives as decimal string", func(t *testing.T) {
		e := entities.Estimate{ID: "e-1", TotalAmount: decimal.RequireFromString("18500.00")}
		it := toEstimateItem(e)
		if it.TotalAmount != "18500" && it.TotalAmount != "18500.00" {
			t.Fatalf("unexpected stored amount: %s", it.TotalAmount)
		}
		if !fromEstimateItem(it).TotalAmount.Equal(e.TotalAmount) {
			t.Fatalf("amount changed value across conversion")
		}
	})

	t.Run("nil validity", func(t *testing.T) {
		got := fromEstimateItem(toEstimateItem(entities.Estimate{ID: "e-1"}))
		if got.ValidUntil != nil {
			t.Fatalf("expected nil validity, got %+v", got.ValidUntil)
		}
	})
}

func TestInvoiceItemConversion(t *testing.T) {
	t.Run("paid invoice", func(t *testing.T) {
		due := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		paid := time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC)
		i := entities.Invoice{
			ID:            "i-1",
			ClientID:      "c-1",
			EstimateID:    "e-1",
			InvoiceNumber: "INV-2025-001",
			Description:   "Kitchen Remodel - Initial Payment (50%)",
			Amount:        decimal.RequireFromString("22500.00"),
			Status:        entities.InvoiceStatusPaid,
			DueDate:       &due,
			PaidDate:      &paid,
			CreatedAt:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC),
		}

		got := fromInvoiceItem(toInvoiceItem(i))
		if got.InvoiceNumber != i.InvoiceNumber || got.EstimateID != "e-1" {
			t.Fatalf("unexpected invoice: %+v", got)
		}
		if got.PaidDate == nil || !got.PaidDate.Equal(paid) {
			t.Fatalf("paid date did not survive: %+v", got.PaidDate)
		}
		if !got.Amount.Equal(i.Amount) {
			t.Fatalf("amount did not survive: %s", got.Amount)
		}
	})

	t.Run("standalone invoice", func(t *testing.T) {
		got := fromInvoiceItem(toInvoiceItem(entities.Invoice{ID: "i-1", ClientID: "c-1"}))
		if got.EstimateID != "" || got.DueDate != nil || got.PaidDate != nil {
			t.Fatalf("unexpected invoice: %+v", got)
		}
	})
}

func TestTimeHelpers(t *testing.T) {
	t.Run("round trip keeps instant", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*3600)
		local := time.Date(2025, 7, 1, 9, 0, 0, 0, loc)
		got := parseTime(formatTime(local))
		if !got.Equal(local) {
			t.Fatalf("expected %v, got %v", local, got)
		}
	})

	t.Run("empty string is nil pointer", func(t *testing.T) {
		if parseTimePtr("") != nil {
			t.Fatal("expected nil")
		}
		if formatTimePtr(nil) != "" {
			t.Fatal("expected empty string")
		}
	})
}

func TestGetenvDefault(t *testing.T) {
	t.Setenv("CONVERSION_TEST_TABLE", "override")
	if got := getenvDefault("CONVERSION_TEST_TABLE", "fallback"); got != "override" {
		t.Fatalf("expected override, got %s", got)
	}
	if got := getenvDefault("CONVERSION_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}
