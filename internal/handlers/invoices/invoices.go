package invoices

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/restoreassist/billing/internal/domain"
	"github.com/restoreassist/billing/internal/dto"
	invoiceservice "github.com/restoreassist/billing/internal/service/invoiceservice"
	"github.com/restoreassist/billing/pkg/auth"
	"github.com/restoreassist/billing/pkg/money"
	"github.com/restoreassist/billing/pkg/utils"
)

type Service interface {
	CreateInvoice(ctx context.Context, userID int, number string, issueDate, dueDate time.Time, items []domain.LineItem, discount *money.Discount, shippingCents int64) (*domain.Invoice, error)
	GetInvoices(ctx context.Context, userID int) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, userID int, id string) (*domain.Invoice, []domain.LineItem, error)
	RecordPayment(ctx context.Context, userID int, id string, amountCents int64) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, userID int, id string, status domain.DocumentStatus) (*domain.Invoice, error)
	BulkDelete(ctx context.Context, userID int, ids []string) (*domain.BulkDeleteResult, error)
}

type InvoiceHandler struct {
	invoiceService Service
}

func New(invoiceService Service) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// CreateInvoice godoc
//
//	@Summary		Create an invoice
//	@Description	Create a draft invoice with line items; totals are computed server-side in cents.
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateInvoiceRequestDTO	true	"Invoice payload"
//	@Success		201		{object}	dto.InvoiceResponseDTO		"Created invoice"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Invalid line item"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/invoices [post]
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateInvoiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Number == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invoice number is required")
		return
	}

	items := make([]domain.LineItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.LineItem{
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			TaxRatePercent: it.TaxRatePercent,
		}
	}

	var discount *money.Discount
	if req.Discount != nil {
		discount = &money.Discount{
			Type:         money.DiscountType(req.Discount.Type),
			ValueCents:   req.Discount.ValueCents,
			ValuePercent: req.Discount.ValuePercent,
		}
	}

	invoice, err := h.invoiceService.CreateInvoice(r.Context(), userID, req.Number, req.IssueDate, req.DueDate, items, discount, req.ShippingCents)
	if err != nil {
		switch {
		case errors.Is(err, invoiceservice.ErrInvalidLineItem):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toInvoiceDTO(invoice, req.Items))
}

// GetInvoices godoc
//
//	@Summary		List invoices
//	@Description	List all invoices for the authenticated user with their effective status resolved.
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InvoiceResponseDTO	"Invoices"
//	@Success		204	{object}	utils.Response			"No invoices found"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/invoices [get]
func (h *InvoiceHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	invoices, err := h.invoiceService.GetInvoices(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch invoices")
		return
	}

	if len(invoices) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Invoices not found")
		return
	}

	response := make([]dto.InvoiceResponseDTO, len(invoices))
	for i := range invoices {
		response[i] = toInvoiceDTO(&invoices[i], nil)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetInvoice godoc
//
//	@Summary		Get a single invoice
//	@Description	Fetch one invoice with its line items. The returned status is the effective status.
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Invoice ID"
//	@Success		200	{object}	dto.InvoiceResponseDTO	"Invoice with line items"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Invoice not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	id := chi.URLParam(r, "id")

	invoice, items, err := h.invoiceService.GetInvoice(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, invoiceservice.ErrInvoiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Invoice not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	itemDTOs := make([]dto.LineItemDTO, len(items))
	for i, it := range items {
		itemDTOs[i] = dto.LineItemDTO{
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			TaxRatePercent: it.TaxRatePercent,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, toInvoiceDTO(invoice, itemDTOs))
}

// RecordPayment godoc
//
//	@Summary		Record a payment
//	@Description	Apply a payment against the invoice. Full payment transitions the invoice to PAID, a partial one to PARTIALLY_PAID.
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Invoice ID"
//	@Param			request	body		dto.RecordPaymentRequestDTO	true	"Payment payload"
//	@Success		200		{object}	dto.InvoiceResponseDTO		"Updated invoice"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Invoice not found"
//	@Failure		422		{object}	utils.Response				"Invalid payment amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/invoices/{id}/payments [post]
func (h *InvoiceHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	id := chi.URLParam(r, "id")

	var req dto.RecordPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	invoice, err := h.invoiceService.RecordPayment(r.Context(), userID, id, req.AmountCents)
	if err != nil {
		switch {
		case errors.Is(err, invoiceservice.ErrInvoiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Invoice not found")
		case errors.Is(err, invoiceservice.ErrInvalidPayment):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toInvoiceDTO(invoice, nil))
}

// UpdateStatus godoc
//
//	@Summary		Update invoice status
//	@Description	Move an invoice to SENT, VIEWED or CANCELLED. Terminal states cannot be left.
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Invoice ID"
//	@Param			request	body		dto.UpdateStatusRequestDTO	true	"Status payload"
//	@Success		200		{object}	dto.InvoiceResponseDTO		"Updated invoice"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Invoice not found"
//	@Failure		409		{object}	utils.Response				"Invalid status transition"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/invoices/{id}/status [post]
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	id := chi.URLParam(r, "id")

	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(r.Context(), userID, id, domain.DocumentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, invoiceservice.ErrInvoiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Invoice not found")
		case errors.Is(err, invoiceservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toInvoiceDTO(invoice, nil))
}

// BulkDelete godoc
//
//	@Summary		Bulk delete invoices
//	@Description	Delete a batch of invoices. Only DRAFT and CANCELLED invoices are deletable; failures are reported per item and never abort the batch.
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BulkDeleteRequestDTO	true	"Invoice IDs"
//	@Success		200		{object}	dto.BulkDeleteResponseDTO	"Per-item outcome"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/invoices [delete]
func (h *InvoiceHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BulkDeleteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.invoiceService.BulkDelete(r.Context(), userID, req.IDs)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BulkDeleteResponseDTO{
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		FailedIDs: result.FailedIDs,
	})
}

func toInvoiceDTO(invoice *domain.Invoice, items []dto.LineItemDTO) dto.InvoiceResponseDTO {
	return dto.InvoiceResponseDTO{
		ID:              invoice.ID,
		Number:          invoice.Number,
		Status:          string(invoice.Status),
		IssueDate:       invoice.IssueDate,
		DueDate:         invoice.DueDate,
		SubtotalCents:   invoice.SubtotalCents,
		DiscountCents:   invoice.DiscountCents,
		ShippingCents:   invoice.ShippingCents,
		TaxCents:        invoice.TaxCents,
		TotalCents:      invoice.TotalCents,
		AmountPaidCents: invoice.AmountPaidCents,
		AmountDueCents:  invoice.AmountDueCents,
		Items:           items,
	}
}
