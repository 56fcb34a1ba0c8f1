package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	request "construction_estimation/internal/adapter/http/dto/request"
	response "construction_estimation/internal/adapter/http/dto/response"
	"construction_estimation/internal/domain/entities"
	"construction_estimation/internal/usecase"
	"construction_estimation/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ListEstimates supports an optional client_id query filter.
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.List(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	// Same contract as the tool server: unknown statuses become Draft.
	status, ok := entities.ParseEstimateStatus(payload.Status)
	if !ok {
		status = entities.EstimateStatusDraft
	}

	estimate, err := h.usecase.Create(c.Request.Context(), usecase.CreateEstimateInput{
		ClientID:    payload.ResolveClientID(),
		Title:       payload.Title,
		Description: payload.Description,
		TotalAmount: amount,
		Status:      status,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	in := usecase.UpdateEstimateInput{
		ID:          c.Param("id"),
		Title:       payload.Title,
		Description: payload.Description,
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	in.TotalAmount = amount

	if strings.TrimSpace(payload.Status) != "" {
		status, ok := entities.ParseEstimateStatus(payload.Status)
		if !ok {
			appErr := invalidEstimateStatusError()
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		in.Status = &status
	}

	validUntil, err := payload.ResolveValidUntil()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid valid_until date", http.StatusBadRequest).ToHTTPError())
		return
	}
	in.ValidUntil = validUntil

	estimate, err := h.usecase.Update(c.Request.Context(), in)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func invalidEstimateStatusError() *pkg.AppError {
	values := entities.EstimateStatusValues()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return pkg.NewDomainErrorSimple(
		"INVALID_STATUS",
		fmt.Sprintf("Invalid status. Valid values are: %s", strings.Join(names, ", ")),
		http.StatusBadRequest,
	)
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
