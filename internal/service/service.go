package service

import (
	"github.com/restoreassist/billing/internal/handlers/estimates"
	"github.com/restoreassist/billing/internal/handlers/invoices"

	"github.com/restoreassist/billing/internal/repo"
	equipmentservice "github.com/restoreassist/billing/internal/service/equipmentservice"
	invoiceservice "github.com/restoreassist/billing/internal/service/invoiceservice"
)

type Services struct {
	InvoiceService   invoices.Service
	EquipmentService estimates.Service
}

func New(repo *repo.Repositories) *Services {
	invoiceService := invoiceservice.New(repo.InvoiceRepo)
	equipmentService := equipmentservice.New(repo.EquipmentRepo)

	return &Services{
		InvoiceService:   invoiceService,
		EquipmentService: equipmentService,
	}
}
