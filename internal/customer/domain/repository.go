package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListFields(ctx context.Context, db *gorm.DB) ([]Field, error)
	ListSummaries(ctx context.Context, db *gorm.DB, query string) ([]SummaryRow, error)
}
