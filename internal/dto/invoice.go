package dto

import "time"

type LineItemDTO struct {
	Description    string  `json:"description" example:"Water extraction labour"`
	Quantity       float64 `json:"quantity" example:"2.5"`
	UnitPriceCents int64   `json:"unit_price_cents" example:"5000"`
	TaxRatePercent float64 `json:"tax_rate_percent,omitempty" example:"10"`
}

type DiscountDTO struct {
	Type         string  `json:"type" example:"percentage"`
	ValueCents   int64   `json:"value_cents,omitempty" example:"2500"`
	ValuePercent float64 `json:"value_percent,omitempty" example:"10"`
}

type CreateInvoiceRequestDTO struct {
	Number        string        `json:"number" validate:"required" example:"INV-0042"`
	IssueDate     time.Time     `json:"issue_date" example:"2025-06-01T00:00:00Z"`
	DueDate       time.Time     `json:"due_date" example:"2025-06-15T00:00:00Z"`
	Items         []LineItemDTO `json:"items"`
	Discount      *DiscountDTO  `json:"discount,omitempty"`
	ShippingCents int64         `json:"shipping_cents,omitempty" example:"550"`
}

type InvoiceResponseDTO struct {
	ID              string        `json:"id" example:"0c8e9f1a-5a52-4f0a-9d80-0b6d4b9f1a11"`
	Number          string        `json:"number" example:"INV-0042"`
	Status          string        `json:"status" example:"SENT"`
	IssueDate       time.Time     `json:"issue_date"`
	DueDate         time.Time     `json:"due_date"`
	SubtotalCents   int64         `json:"subtotal_cents" example:"10000"`
	DiscountCents   int64         `json:"discount_cents" example:"1000"`
	ShippingCents   int64         `json:"shipping_cents" example:"0"`
	TaxCents        int64         `json:"tax_cents" example:"900"`
	TotalCents      int64         `json:"total_cents" example:"9900"`
	AmountPaidCents int64         `json:"amount_paid_cents" example:"0"`
	AmountDueCents  int64         `json:"amount_due_cents" example:"9900"`
	Items           []LineItemDTO `json:"items,omitempty"`
}

type RecordPaymentRequestDTO struct {
	AmountCents int64 `json:"amount_cents" example:"4000"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status" example:"SENT"`
}

type BulkDeleteRequestDTO struct {
	IDs []string `json:"ids"`
}

type BulkDeleteResponseDTO struct {
	Succeeded int      `json:"succeeded" example:"1"`
	Failed    int      `json:"failed" example:"2"`
	FailedIDs []string `json:"failed_ids,omitempty"`
}
