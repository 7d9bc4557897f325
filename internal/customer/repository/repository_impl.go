package repository

import (
	"context"
	"strings"

	"github.com/acmehq/invoicedesk/internal/customer/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListFields(ctx context.Context, db *gorm.DB) ([]domain.Field, error) {
	var fields []domain.Field
	err := db.WithContext(ctx).Raw(
		`SELECT id, name
		 FROM customers
		 ORDER BY name ASC`,
	).Scan(&fields).Error
	if err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *repo) ListSummaries(ctx context.Context, db *gorm.DB, query string) ([]domain.SummaryRow, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var rows []domain.SummaryRow
	err := db.WithContext(ctx).Raw(
		`SELECT
		   customers.id,
		   customers.name,
		   customers.email,
		   customers.image_url,
		   COUNT(invoices.id) AS total_invoices,
		   COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
		   COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		 FROM customers
		 LEFT JOIN invoices ON customers.id = invoices.customer_id
		 WHERE
		   LOWER(customers.name) LIKE ? OR
		   LOWER(customers.email) LIKE ?
		 GROUP BY customers.id, customers.name, customers.email, customers.image_url
		 ORDER BY customers.name ASC`,
		pattern,
		pattern,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
