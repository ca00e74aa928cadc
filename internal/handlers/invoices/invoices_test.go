package invoices

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/restoreassist/billing/internal/domain"
	"github.com/restoreassist/billing/internal/dto"
	invoiceservice "github.com/restoreassist/billing/internal/service/invoiceservice"
	"github.com/restoreassist/billing/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*InvoiceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	return r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:              "0c8e9f1a-5a52-4f0a-9d80-0b6d4b9f1a11",
		UserID:          1,
		Number:          "INV-0042",
		Status:          domain.StatusDraft,
		IssueDate:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DueDate:         time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		SubtotalCents:   10000,
		DiscountCents:   1000,
		TaxCents:        900,
		TotalCents:      9900,
		AmountPaidCents: 0,
		AmountDueCents:  9900,
	}
}

func TestCreateInvoiceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"number":"INV-0042","issue_date":"2025-06-01T00:00:00Z","due_date":"2025-06-15T00:00:00Z","items":[{"description":"Labour","quantity":2,"unit_price_cents":5000,"tax_rate_percent":10}],"discount":{"type":"percentage","value_percent":10}}`,
			prepareMock: func() {
				service.EXPECT().
					CreateInvoice(gomock.Any(), 1, "INV-0042", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).
					Return(sampleInvoice(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"number":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Missing invoice number",
			body:          `{"items":[]}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invoice number is required",
		},
		{
			name: "Invalid line item",
			body: `{"number":"INV-0042","items":[{"description":"Labour","quantity":-1,"unit_price_cents":5000}]}`,
			prepareMock: func() {
				service.EXPECT().
					CreateInvoice(gomock.Any(), 1, "INV-0042", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).
					Return(nil, invoiceservice.ErrInvalidLineItem)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid line item",
		},
		{
			name: "Internal server error",
			body: `{"number":"INV-0042","items":[]}`,
			prepareMock: func() {
				service.EXPECT().
					CreateInvoice(gomock.Any(), 1, "INV-0042", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodPost, "/api/invoices", tt.body)
			w := httptest.NewRecorder()

			handler.CreateInvoice(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetInvoicesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetInvoices(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return([]domain.Invoice{*sampleInvoice()}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "No invoices",
			prepareMock: func() {
				service.EXPECT().
					GetInvoices(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return([]domain.Invoice{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetInvoices(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodGet, "/api/invoices", "")
			w := httptest.NewRecorder()

			handler.GetInvoices(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.InvoiceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
				assert.Equal(t, "INV-0042", body[0].Number)
			}
		})
	}
}

func TestGetInvoiceHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := "0c8e9f1a-5a52-4f0a-9d80-0b6d4b9f1a11"

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetInvoice(gomock.Any(), 1, id).
					Return(sampleInvoice(), []domain.LineItem{
						{Description: "Labour", Quantity: 2, UnitPriceCents: 5000, TaxRatePercent: 10},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invoice not found",
			prepareMock: func() {
				service.EXPECT().
					GetInvoice(gomock.Any(), 1, id).
					Return(nil, nil, invoiceservice.ErrInvoiceNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Invoice not found",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetInvoice(gomock.Any(), 1, id).
					Return(nil, nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParam(authedRequest(http.MethodGet, "/api/invoices/"+id, ""), "id", id)
			w := httptest.NewRecorder()

			handler.GetInvoice(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.InvoiceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, id, body.ID)
				assert.Len(t, body.Items, 1)
			}
		})
	}
}

func TestRecordPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := "0c8e9f1a-5a52-4f0a-9d80-0b6d4b9f1a11"

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Full payment",
			body: `{"amount_cents":9900}`,
			prepareMock: func() {
				paid := sampleInvoice()
				paid.Status = domain.StatusPaid
				paid.AmountPaidCents = 9900
				paid.AmountDueCents = 0
				service.EXPECT().
					RecordPayment(gomock.Any(), 1, id, int64(9900)).
					Return(paid, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"amount_cents":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Overpayment rejected",
			body: `{"amount_cents":20000}`,
			prepareMock: func() {
				service.EXPECT().
					RecordPayment(gomock.Any(), 1, id, int64(20000)).
					Return(nil, invoiceservice.ErrInvalidPayment)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid payment amount",
		},
		{
			name: "Invoice not found",
			body: `{"amount_cents":100}`,
			prepareMock: func() {
				service.EXPECT().
					RecordPayment(gomock.Any(), 1, id, int64(100)).
					Return(nil, invoiceservice.ErrInvoiceNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Invoice not found",
		},
		{
			name: "Internal server error",
			body: `{"amount_cents":100}`,
			prepareMock: func() {
				service.EXPECT().
					RecordPayment(gomock.Any(), 1, id, int64(100)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParam(authedRequest(http.MethodPost, "/api/invoices/"+id+"/payments", tt.body), "id", id)
			w := httptest.NewRecorder()

			handler.RecordPayment(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := "0c8e9f1a-5a52-4f0a-9d80-0b6d4b9f1a11"

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Mark as sent",
			body: `{"status":"SENT"}`,
			prepareMock: func() {
				sent := sampleInvoice()
				sent.Status = domain.StatusSent
				service.EXPECT().
					UpdateStatus(gomock.Any(), 1, id, domain.StatusSent).
					Return(sent, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Transition out of terminal state",
			body: `{"status":"SENT"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateStatus(gomock.Any(), 1, id, domain.StatusSent).
					Return(nil, invoiceservice.ErrInvalidTransition)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "invalid status transition",
		},
		{
			name: "Invoice not found",
			body: `{"status":"SENT"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateStatus(gomock.Any(), 1, id, domain.StatusSent).
					Return(nil, invoiceservice.ErrInvoiceNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Invoice not found",
		},
		{
			name:          "Invalid request body",
			body:          `{"status":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParam(authedRequest(http.MethodPost, "/api/invoices/"+id+"/status", tt.body), "id", id)
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestBulkDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.BulkDeleteResponseDTO
	}{
		{
			name: "Mixed outcome",
			body: `{"ids":["doc-1","doc-2","doc-3"]}`,
			prepareMock: func() {
				service.EXPECT().
					BulkDelete(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, []string{"doc-1", "doc-2", "doc-3"}).
					Return(&domain.BulkDeleteResult{
						Succeeded: 1,
						Failed:    2,
						FailedIDs: []string{"doc-2", "doc-3"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BulkDeleteResponseDTO{
				Succeeded: 1,
				Failed:    2,
				FailedIDs: []string{"doc-2", "doc-3"},
			},
		},
		{
			name:          "Invalid request body",
			body:          `{"ids":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Internal server error",
			body: `{"ids":["doc-1"]}`,
			prepareMock: func() {
				service.EXPECT().
					BulkDelete(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, []string{"doc-1"}).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodDelete, "/api/invoices", tt.body)
			w := httptest.NewRecorder()

			handler.BulkDelete(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.BulkDeleteResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
