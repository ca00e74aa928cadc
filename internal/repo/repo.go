package repo

import (
	"github.com/restoreassist/billing/internal/pg"
	equipmentrepo "github.com/restoreassist/billing/internal/repo/equipment-repo"
	invoicerepo "github.com/restoreassist/billing/internal/repo/invoice-repo"
	"github.com/restoreassist/billing/internal/service/equipmentservice"
	"github.com/restoreassist/billing/internal/service/invoiceservice"
)

type Repositories struct {
	InvoiceRepo   invoiceservice.Repo
	EquipmentRepo equipmentservice.Catalog
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	invoiceRepo := invoicerepo.New(conn, txManager)
	equipmentRepo := equipmentrepo.New(conn)

	return &Repositories{
		InvoiceRepo:   invoiceRepo,
		EquipmentRepo: equipmentRepo,
	}
}
