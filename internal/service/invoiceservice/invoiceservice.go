package invoiceservice

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/restoreassist/billing/internal/domain"
	"github.com/restoreassist/billing/pkg/money"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const deleteWorkers = 10

type Repo interface {
	Save(ctx context.Context, invoice *domain.Invoice, items []domain.LineItem) error
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Invoice, error)
	FindLineItems(ctx context.Context, invoiceID string) ([]domain.LineItem, error)
	UpdatePayment(ctx context.Context, invoice *domain.Invoice) error
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus) error
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrNotDeletable      = errors.New("invoice is not deletable")
	ErrInvalidPayment    = errors.New("invalid payment amount")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Service struct {
	repo       Repo
	workerPool WorkerPoolI
	now        func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo:       repo,
		workerPool: NewWorkerPool(deleteWorkers),
		now:        time.Now,
	}
}

func (s *Service) CreateInvoice(ctx context.Context, userID int, number string, issueDate, dueDate time.Time, items []domain.LineItem, discount *money.Discount, shippingCents int64) (*domain.Invoice, error) {
	totals, err := ComputeTotals(items, discount, shippingCents)
	if err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		ID:              uuid.NewString(),
		UserID:          userID,
		Number:          number,
		Status:          domain.StatusDraft,
		IssueDate:       issueDate,
		DueDate:         dueDate,
		SubtotalCents:   totals.SubtotalCents,
		DiscountCents:   totals.DiscountCents,
		ShippingCents:   totals.ShippingCents,
		TaxCents:        totals.TaxCents,
		TotalCents:      totals.TotalCents,
		AmountPaidCents: 0,
		AmountDueCents:  totals.TotalCents,
		CreatedAt:       s.now(),
	}

	if err := s.repo.Save(ctx, invoice, items); err != nil {
		zap.L().Error("can't save invoice", zap.Error(err))
		return nil, err
	}

	return invoice, nil
}

// GetInvoices returns the user's invoices with the effective status
// resolved against the current clock. The stored status is never
// mutated here; OVERDUE exists only on the way out.
func (s *Service) GetInvoices(ctx context.Context, userID int) ([]domain.Invoice, error) {
	invoices, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get invoices", zap.Error(err))
		return nil, err
	}

	now := s.now()
	for i := range invoices {
		warnIfInconsistent(&invoices[i])
		invoices[i].Status = EffectiveStatus(&invoices[i], now)
	}
	return invoices, nil
}

func (s *Service) GetInvoice(ctx context.Context, userID int, id string) (*domain.Invoice, []domain.LineItem, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, nil, ErrInvoiceNotFound
	}

	items, err := s.repo.FindLineItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	warnIfInconsistent(invoice)
	invoice.Status = EffectiveStatus(invoice, s.now())
	return invoice, items, nil
}

// RecordPayment applies a payment against the invoice balance. This is
// the one sanctioned stored-status transition the billing core owns:
// fully settled moves to PAID, anything in between to PARTIALLY_PAID.
func (s *Service) RecordPayment(ctx context.Context, userID int, id string, amountCents int64) (*domain.Invoice, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidPayment
	}

	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, ErrInvoiceNotFound
	}
	if invoice.Status == domain.StatusCancelled {
		return nil, ErrInvalidTransition
	}
	if invoice.AmountPaidCents+amountCents > invoice.TotalCents {
		return nil, ErrInvalidPayment
	}

	invoice.AmountPaidCents += amountCents
	invoice.AmountDueCents = invoice.TotalCents - invoice.AmountPaidCents
	if invoice.AmountDueCents == 0 {
		invoice.Status = domain.StatusPaid
	} else {
		invoice.Status = domain.StatusPartiallyPaid
	}

	if err := s.repo.UpdatePayment(ctx, invoice); err != nil {
		zap.L().Error("can't record payment", zap.Error(err))
		return nil, err
	}
	return invoice, nil
}

// UpdateStatus applies an external business transition (send, mark
// viewed, cancel). OVERDUE is computed, never stored, and payment
// states are owned by RecordPayment.
func (s *Service) UpdateStatus(ctx context.Context, userID int, id string, status domain.DocumentStatus) (*domain.Invoice, error) {
	switch status {
	case domain.StatusSent, domain.StatusViewed, domain.StatusCancelled:
	default:
		return nil, ErrInvalidTransition
	}

	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, ErrInvoiceNotFound
	}
	if invoice.Status == domain.StatusPaid || invoice.Status == domain.StatusCancelled {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		zap.L().Error("can't update invoice status", zap.Error(err))
		return nil, err
	}
	invoice.Status = status
	return invoice, nil
}

// BulkDelete deletes every eligible target and reports per-target
// outcomes. Deletions are dispatched concurrently; the result counts
// each requested id exactly once. Ineligible targets are rejected, not
// skipped, and a partial failure never aborts the rest of the batch.
func (s *Service) BulkDelete(ctx context.Context, userID int, ids []string) (*domain.BulkDeleteResult, error) {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result domain.BulkDeleteResult
	)

	record := func(id string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, id)
			zap.L().Warn("bulk delete target failed", zap.String("invoiceID", id), zap.Error(err))
			return
		}
		result.Succeeded++
	}

	var g errgroup.Group
	for _, id := range ids {
		id := id
		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				record(id, s.deleteOne(ctx, userID, id))
				return nil
			})
			if err != nil {
				record(id, err)
				wg.Done()
			}
			return nil
		})
	}

	g.Wait()
	wg.Wait()

	sort.Strings(result.FailedIDs)
	return &result, nil
}

func (s *Service) deleteOne(ctx context.Context, userID int, id string) error {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil || invoice.UserID != userID {
		return ErrInvoiceNotFound
	}
	// Eligibility is a data-integrity rule on the stored status; a
	// draft displayed as overdue is still deletable.
	if !IsDeletable(invoice) {
		return ErrNotDeletable
	}
	return s.repo.Delete(ctx, id)
}

func warnIfInconsistent(invoice *domain.Invoice) {
	switch invoice.Status {
	case domain.StatusSent, domain.StatusViewed, domain.StatusPartiallyPaid:
		if invoice.AmountDueCents == 0 {
			zap.L().Warn(
				"invoice has no outstanding balance but is not marked paid",
				zap.String("invoiceID", invoice.ID),
				zap.String("status", string(invoice.Status)),
			)
		}
	}
}
