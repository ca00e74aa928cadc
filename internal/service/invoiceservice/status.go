package invoiceservice

import (
	"time"

	"github.com/restoreassist/billing/internal/domain"
)

// EffectiveStatus derives the status a caller should display from the
// stored status plus time-dependent conditions. It is pure: the same
// invoice and clock always produce the same answer, and nothing is
// persisted.
//
// DRAFT, PAID and CANCELLED are authoritative. Any other stored status
// is overridden to OVERDUE while money is owed past the due date. A
// zero balance with an outstanding stored status is tolerated: the
// transition to PAID is an explicit external action, never inferred.
func EffectiveStatus(invoice *domain.Invoice, now time.Time) domain.DocumentStatus {
	switch invoice.Status {
	case domain.StatusDraft, domain.StatusPaid, domain.StatusCancelled:
		return invoice.Status
	}

	if invoice.AmountDueCents > 0 && invoice.DueDate.Before(now) {
		return domain.StatusOverdue
	}
	return invoice.Status
}

func IsDraft(status domain.DocumentStatus) bool {
	return status == domain.StatusDraft
}

func IsCancelled(status domain.DocumentStatus) bool {
	return status == domain.StatusCancelled
}

// IsDeletable is evaluated on the stored status, not the effective one.
func IsDeletable(invoice *domain.Invoice) bool {
	return IsDraft(invoice.Status) || IsCancelled(invoice.Status)
}
