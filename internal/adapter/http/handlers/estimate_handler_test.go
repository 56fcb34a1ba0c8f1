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

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(
			`{"client_id":"c1","title":"T","description":"D","total_amount":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown client maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrClientNotFound)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(
			`{"client_id":"c1","title":"T","description":"D","total_amount":"100"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created with draft fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateEstimateInput) (entities.Estimate, error) {
				if in.Status != entities.EstimateStatusDraft {
					t.Errorf("expected Draft fallback, got %s", in.Status)
				}
				return entities.Estimate{
					ID:             "e1",
					EstimateNumber: "EST-2026-001",
					Title:          in.Title,
					TotalAmount:    in.TotalAmount,
					Status:         in.Status,
				}, nil
			})

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(
			`{"client_id":"c1","title":"T","description":"D","total_amount":"100.50","status":"Bogus"}`))
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
		if body["estimate_number"] != "EST-2026-001" {
			t.Errorf("unexpected body: %v", body)
		}
		if body["total_amount"] != 100.50 {
			t.Errorf("expected numeric amount 100.50, got %v", body["total_amount"])
		}
	})
}

func TestEstimateHandler_UpdateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:id", h.UpdateEstimate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/e1", bytes.NewBufferString(`{"status":"Cancelled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial update passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.UpdateEstimateInput) (entities.Estimate, error) {
				if in.ID != "e1" {
					t.Errorf("unexpected id %q", in.ID)
				}
				if in.Title != "" {
					t.Errorf("title must stay empty, got %q", in.Title)
				}
				if in.TotalAmount == nil || !in.TotalAmount.Equal(decimal.NewFromInt(2000)) {
					t.Errorf("unexpected amount %v", in.TotalAmount)
				}
				return entities.Estimate{ID: "e1", TotalAmount: *in.TotalAmount, Status: entities.EstimateStatusDraft}, nil
			})

		r := gin.New()
		r.PATCH("/v1/estimates/:id", h.UpdateEstimate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/e1", bytes.NewBufferString(`{"total_amount":"2000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing estimate maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		r := gin.New()
		r.PATCH("/v1/estimates/:id", h.UpdateEstimate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/missing", bytes.NewBufferString(`{"title":"New"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_ListEstimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	uc.EXPECT().List(gomock.Any(), "c1").Return([]entities.Estimate{
		{ID: "e1", ClientID: "c1", EstimateNumber: "EST-2026-001", TotalAmount: decimal.NewFromInt(100)},
	}, nil)

	r := gin.New()
	r.GET("/v1/estimates", h.ListEstimates)

	req := httptest.NewRequest(http.MethodGet, "/v1/estimates?client_id=c1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 1 || body[0]["estimate_number"] != "EST-2026-001" {
		t.Errorf("unexpected body: %v", body)
	}
}
