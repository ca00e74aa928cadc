package invoicerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/restoreassist/billing/internal/domain"
	"github.com/restoreassist/billing/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, TxManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: TxManager,
	}
}

// Save inserts the invoice and its line items atomically.
func (r *Repository) Save(ctx context.Context, invoice *domain.Invoice, items []domain.LineItem) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
        INSERT INTO invoices (id, user_id, number, status, issue_date, due_date,
            subtotal_cents, discount_cents, shipping_cents, tax_cents, total_cents,
            amount_paid_cents, amount_due_cents, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `
		_, err := r.db.Exec(ctx, query,
			invoice.ID, invoice.UserID, invoice.Number, invoice.Status,
			invoice.IssueDate, invoice.DueDate,
			invoice.SubtotalCents, invoice.DiscountCents, invoice.ShippingCents,
			invoice.TaxCents, invoice.TotalCents,
			invoice.AmountPaidCents, invoice.AmountDueCents, invoice.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't save invoice", zap.Error(err))
			return err
		}

		itemQuery := `
        INSERT INTO invoice_line_items (invoice_id, description, quantity, unit_price_cents, tax_rate_percent)
        VALUES ($1, $2, $3, $4, $5)
    `
		for _, item := range items {
			_, err := r.db.Exec(ctx, itemQuery,
				invoice.ID, item.Description, item.Quantity, item.UnitPriceCents, item.TaxRatePercent,
			)
			if err != nil {
				zap.L().Error("can't save line item", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `
        SELECT id, user_id, number, status, issue_date, due_date,
            subtotal_cents, discount_cents, shipping_cents, tax_cents, total_cents,
            amount_paid_cents, amount_due_cents, created_at
        FROM invoices
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var invoice domain.Invoice
	err := row.Scan(
		&invoice.ID, &invoice.UserID, &invoice.Number, &invoice.Status,
		&invoice.IssueDate, &invoice.DueDate,
		&invoice.SubtotalCents, &invoice.DiscountCents, &invoice.ShippingCents,
		&invoice.TaxCents, &invoice.TotalCents,
		&invoice.AmountPaidCents, &invoice.AmountDueCents, &invoice.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find invoice", zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Invoice, error) {
	query := `
        SELECT id, user_id, number, status, issue_date, due_date,
            subtotal_cents, discount_cents, shipping_cents, tax_cents, total_cents,
            amount_paid_cents, amount_due_cents, created_at
        FROM invoices
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		err := rows.Scan(
			&invoice.ID, &invoice.UserID, &invoice.Number, &invoice.Status,
			&invoice.IssueDate, &invoice.DueDate,
			&invoice.SubtotalCents, &invoice.DiscountCents, &invoice.ShippingCents,
			&invoice.TaxCents, &invoice.TotalCents,
			&invoice.AmountPaidCents, &invoice.AmountDueCents, &invoice.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan invoice", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *Repository) FindLineItems(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	query := `
        SELECT id, invoice_id, description, quantity, unit_price_cents, tax_rate_percent
        FROM invoice_line_items
        WHERE invoice_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		zap.L().Error("can't get line items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.LineItem
	for rows.Next() {
		var item domain.LineItem
		err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPriceCents, &item.TaxRatePercent)
		if err != nil {
			zap.L().Error("can't scan line item", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) UpdatePayment(ctx context.Context, invoice *domain.Invoice) error {
	query := `
        UPDATE invoices
        SET status = $2, amount_paid_cents = $3, amount_due_cents = $4
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, invoice.ID, invoice.Status, invoice.AmountPaidCents, invoice.AmountDueCents)
	if err != nil {
		zap.L().Error("can't update invoice payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus) error {
	query := `
        UPDATE invoices
        SET status = $2
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		zap.L().Error("can't update invoice status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
        DELETE FROM invoices
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete invoice", zap.Error(err))
		return err
	}
	return nil
}
