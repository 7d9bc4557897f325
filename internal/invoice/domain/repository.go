package domain

import (
	"context"

	"github.com/acmehq/invoicedesk/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]TableRow, error)
	Count(ctx context.Context, db *gorm.DB, query string) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Update(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
