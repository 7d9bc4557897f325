package repository

import (
	"context"
	"strings"

	"github.com/acmehq/invoicedesk/internal/invoice/domain"
	"github.com/acmehq/invoicedesk/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// filterPredicate is the single source of the listing filter. List and Count
// must stay on the same predicate so page contents and page counts agree.
// The date and status columns are already text; only the amount needs a cast.
func filterPredicate(dialect string) string {
	return `
	LOWER(customers.name) LIKE ? OR
	LOWER(customers.email) LIKE ? OR
	LOWER(` + amountCastExpr(dialect) + `) LIKE ? OR
	LOWER(invoices.date) LIKE ? OR
	LOWER(invoices.status) LIKE ?`
}

// amountCastExpr returns the dialect's cast of the amount column to text.
// MySQL rejects TEXT as a cast target and wants CHAR, which it treats as
// unbounded; on postgres a bare CHAR would truncate to char(1).
func amountCastExpr(dialect string) string {
	if dialect == "mysql" {
		return "CAST(invoices.amount AS CHAR)"
	}
	return "CAST(invoices.amount AS TEXT)"
}

func filterArgs(query string) []any {
	pattern := "%" + strings.ToLower(query) + "%"
	return []any{pattern, pattern, pattern, pattern, pattern}
}

func (r *repo) List(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]domain.TableRow, error) {
	args := filterArgs(query)
	args = append(args, page.Limit(), page.Offset())

	var rows []domain.TableRow
	err := db.WithContext(ctx).Raw(
		`SELECT
		   invoices.id,
		   invoices.amount,
		   invoices.date,
		   invoices.status,
		   customers.name,
		   customers.email,
		   customers.image_url
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 WHERE`+filterPredicate(db.Dialector.Name())+`
		 ORDER BY invoices.date DESC, invoices.id DESC
		 LIMIT ? OFFSET ?`,
		args...,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB, query string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*)
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 WHERE`+filterPredicate(db.Dialector.Name()),
		filterArgs(query)...,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).Raw(
		`SELECT id, customer_id, amount, status, date, created_at, updated_at
		 FROM invoices WHERE id = ?`,
		id,
	).Scan(&invoice).Error
	if err != nil {
		return nil, err
	}
	if invoice.ID == 0 {
		return nil, nil
	}
	return &invoice, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO invoices (id, customer_id, amount, status, date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.CustomerID,
		invoice.Amount,
		invoice.Status,
		invoice.Date,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	// Date is immutable after creation and deliberately absent here.
	return db.WithContext(ctx).Exec(
		`UPDATE invoices
		 SET customer_id = ?, amount = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		invoice.CustomerID,
		invoice.Amount,
		invoice.Status,
		invoice.UpdatedAt,
		invoice.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM invoices WHERE id = ?`,
		id,
	).Error
}
