package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"construction_estimation/internal/adapter/http/handlers/mocks"
	"construction_estimation/internal/domain/entities"
	"construction_estimation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(
			`{"client_id":"c1","description":"D","amount":"100","due_date":"whenever"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown estimate maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrEstimateNotFound)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(
			`{"client_id":"c1","estimate_id":"missing","description":"D","amount":"100"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateInvoiceInput) (entities.Invoice, error) {
				if !in.Amount.Equal(decimal.RequireFromString("12500.00")) {
					t.Errorf("unexpected amount %v", in.Amount)
				}
				return entities.Invoice{
					ID:            "i1",
					ClientID:      in.ClientID,
					InvoiceNumber: "INV-2026-001",
					Amount:        in.Amount,
					Status:        in.Status,
				}, nil
			})

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(
			`{"client_id":"c1","description":"First payment","amount":"12500.00","status":"Sent"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["invoice_number"] != "INV-2026-001" {
			t.Errorf("unexpected body: %v", body)
		}
	})
}

func TestInvoiceHandler_UpdateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invoices/:id", h.UpdateInvoice)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/i1", bytes.NewBufferString(`{"status":"Approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("marks invoice paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.UpdateInvoiceInput) (entities.Invoice, error) {
				if in.Status == nil || *in.Status != entities.InvoiceStatusPaid {
					t.Errorf("expected Paid status, got %v", in.Status)
				}
				if in.PaidDate == nil {
					t.Error("expected a paid date")
				}
				return entities.Invoice{ID: "i1", Status: *in.Status, PaidDate: in.PaidDate}, nil
			})

		r := gin.New()
		r.PATCH("/v1/invoices/:id", h.UpdateInvoice)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/i1", bytes.NewBufferString(
			`{"status":"paid","paid_date":"2026-08-15"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	uc.EXPECT().List(gomock.Any(), "c1", "e1").Return([]entities.Invoice{}, nil)

	r := gin.New()
	r.GET("/v1/invoices", h.ListInvoices)

	req := httptest.NewRequest(http.MethodGet, "/v1/invoices?client_id=c1&estimate_id=e1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := bytes.TrimSpace(w.Body.Bytes()); string(body) != "[]" {
		t.Errorf("expected empty array, got %s", body)
	}
}
