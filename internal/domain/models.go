package domain

import "time"

// DocumentStatus is the stored lifecycle state of a financial document.
// The status persisted in the database is never OVERDUE; OVERDUE only
// exists as an effective (computed) status.
type DocumentStatus string

const (
	StatusDraft         DocumentStatus = "DRAFT"
	StatusSent          DocumentStatus = "SENT"
	StatusViewed        DocumentStatus = "VIEWED"
	StatusPartiallyPaid DocumentStatus = "PARTIALLY_PAID"
	StatusPaid          DocumentStatus = "PAID"
	StatusOverdue       DocumentStatus = "OVERDUE"
	StatusCancelled     DocumentStatus = "CANCELLED"
)

type Invoice struct {
	ID              string         `db:"id"`
	UserID          int            `db:"user_id"`
	Number          string         `db:"number"`
	Status          DocumentStatus `db:"status"`
	IssueDate       time.Time      `db:"issue_date"`
	DueDate         time.Time      `db:"due_date"`
	SubtotalCents   int64          `db:"subtotal_cents"`
	DiscountCents   int64          `db:"discount_cents"`
	ShippingCents   int64          `db:"shipping_cents"`
	TaxCents        int64          `db:"tax_cents"`
	TotalCents      int64          `db:"total_cents"`
	AmountPaidCents int64          `db:"amount_paid_cents"`
	AmountDueCents  int64          `db:"amount_due_cents"`
	CreatedAt       time.Time      `db:"created_at"`
}

type LineItem struct {
	ID             int     `db:"id"`
	InvoiceID      string  `db:"invoice_id"`
	Description    string  `db:"description"`
	Quantity       float64 `db:"quantity"`
	UnitPriceCents int64   `db:"unit_price_cents"`
	TaxRatePercent float64 `db:"tax_rate_percent"`
}

// InvoiceTotals is the financial summary computed from line items plus
// document-level discount and shipping. All amounts are integer cents.
type InvoiceTotals struct {
	SubtotalCents int64
	DiscountCents int64
	ShippingCents int64
	TaxCents      int64
	TotalCents    int64
}

// EquipmentCategory groups catalog entries for display. Legacy catalog
// rows may carry an empty category; see equipmentservice for the
// group-id fallback classification.
type EquipmentCategory string

const (
	CategoryDehumidifier EquipmentCategory = "DEHUMIDIFIER"
	CategoryAirMover     EquipmentCategory = "AIR_MOVER"
	CategoryAirScrubber  EquipmentCategory = "AIR_SCRUBBER"
	CategoryOther        EquipmentCategory = "OTHER"
)

type EquipmentGroup struct {
	ID                    string            `db:"id"`
	Name                  string            `db:"name"`
	Category              EquipmentCategory `db:"category"`
	Amps                  float64           `db:"amps"`
	DefaultDailyRateCents int64             `db:"default_daily_rate_cents"`
}

type EquipmentSelection struct {
	GroupID                string
	Quantity               int
	DailyRateCentsOverride *int64
}

// DryingStatus labels how favorable the ambient conditions are for
// structural drying. Derived from the drying index, which is computed
// upstream from temperature/humidity/ventilation readings.
type DryingStatus string

const (
	DryingPoor      DryingStatus = "POOR"
	DryingFair      DryingStatus = "FAIR"
	DryingGood      DryingStatus = "GOOD"
	DryingExcellent DryingStatus = "EXCELLENT"
)

type EquipmentEstimateLine struct {
	GroupID        string
	Name           string
	Category       EquipmentCategory
	Quantity       int
	DailyRateCents int64
	DailyCostCents int64
	TotalCostCents int64
	Amps           float64
}

type EquipmentEstimate struct {
	Lines               []EquipmentEstimateLine
	DurationDays        int
	TotalDailyCostCents int64
	TotalCostCents      int64
	TotalAmps           float64
}

// BulkDeleteResult reports the outcome of a bulk invoice deletion.
// Every requested id is counted exactly once, either as succeeded or
// as failed with its id recorded.
type BulkDeleteResult struct {
	Succeeded int
	Failed    int
	FailedIDs []string
}
