package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/restoreassist/billing/docs"
	estimatehandlers "github.com/restoreassist/billing/internal/handlers/estimates"
	invoicehandlers "github.com/restoreassist/billing/internal/handlers/invoices"
	reporthandlers "github.com/restoreassist/billing/internal/handlers/reports"
	"github.com/restoreassist/billing/internal/service"
	"github.com/restoreassist/billing/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type InvoiceHandler interface {
	CreateInvoice(w http.ResponseWriter, r *http.Request)
	GetInvoices(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	BulkDelete(w http.ResponseWriter, r *http.Request)
}

type EstimateHandler interface {
	Estimate(w http.ResponseWriter, r *http.Request)
	GetCatalog(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	InvoiceHandler  InvoiceHandler
	EstimateHandler EstimateHandler
	ReportHandler   ReportHandler
}

func New(s *service.Services, generationService reporthandlers.Service) *Handlers {
	return &Handlers{
		InvoiceHandler:  invoicehandlers.New(s.InvoiceService),
		EstimateHandler: estimatehandlers.New(s.EquipmentService),
		ReportHandler:   reporthandlers.New(generationService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/invoices", func(r chi.Router) {
				r.Post("/", h.InvoiceHandler.CreateInvoice)
				r.Get("/", h.InvoiceHandler.GetInvoices)
				r.Delete("/", h.InvoiceHandler.BulkDelete)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.InvoiceHandler.GetInvoice)
					r.Post("/payments", h.InvoiceHandler.RecordPayment)
					r.Post("/status", h.InvoiceHandler.UpdateStatus)
				})
			})
			r.Post("/estimates/equipment", h.EstimateHandler.Estimate)
			r.Get("/equipment/groups", h.EstimateHandler.GetCatalog)
			r.Post("/reports/generate", h.ReportHandler.Generate)
		})
	})

	return r
}
