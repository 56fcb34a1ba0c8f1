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

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// ListInvoices supports optional client_id and estimate_id query filters.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context(), c.Query("client_id"), c.Query("estimate_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	status, ok := entities.ParseInvoiceStatus(payload.Status)
	if !ok {
		status = entities.InvoiceStatusDraft
	}

	dueDate, err := payload.ResolveDueDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid due_date date", http.StatusBadRequest).ToHTTPError())
		return
	}

	invoice, err := h.usecase.Create(c.Request.Context(), usecase.CreateInvoiceInput{
		ClientID:    payload.ResolveClientID(),
		EstimateID:  payload.EstimateID,
		Description: payload.Description,
		Amount:      amount,
		Status:      status,
		DueDate:     dueDate,
	})
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	in := usecase.UpdateInvoiceInput{
		ID:          c.Param("id"),
		Description: payload.Description,
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}
	in.Amount = amount

	if strings.TrimSpace(payload.Status) != "" {
		status, ok := entities.ParseInvoiceStatus(payload.Status)
		if !ok {
			appErr := invalidInvoiceStatusError()
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		in.Status = &status
	}

	dueDate, err := payload.ResolveDueDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid due_date date", http.StatusBadRequest).ToHTTPError())
		return
	}
	in.DueDate = dueDate

	paidDate, err := payload.ResolvePaidDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid paid_date date", http.StatusBadRequest).ToHTTPError())
		return
	}
	in.PaidDate = paidDate

	invoice, err := h.usecase.Update(c.Request.Context(), in)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func invalidInvoiceStatusError() *pkg.AppError {
	values := entities.InvoiceStatusValues()
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

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
