package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	customerdomain "github.com/acmehq/invoicedesk/internal/customer/domain"
	"github.com/acmehq/invoicedesk/internal/invoice/domain"
	"github.com/acmehq/invoicedesk/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFilterPredicatePerDialect(t *testing.T) {
	mysql := filterPredicate("mysql")
	assert.Contains(t, mysql, "CAST(invoices.amount AS CHAR)")
	assert.NotContains(t, mysql, "AS TEXT", "mysql has no TEXT cast target")

	for _, dialect := range []string{"postgres", "sqlite"} {
		pred := filterPredicate(dialect)
		assert.Contains(t, pred, "CAST(invoices.amount AS TEXT)", dialect)
		assert.NotContains(t, pred, "AS CHAR", "bare CHAR truncates on "+dialect)
	}
}

func TestListAndCountShareThePredicate(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&customerdomain.Customer{}, &domain.Invoice{}))

	now := time.Now().UTC()
	require.NoError(t, conn.Create(&customerdomain.Customer{
		ID: snowflake.ID(1), Name: "Amy Burns", Email: "amy@example.com",
		CreatedAt: now, UpdatedAt: now,
	}).Error)
	require.NoError(t, conn.Create(&domain.Invoice{
		ID: snowflake.ID(10), CustomerID: snowflake.ID(1), Amount: 66600,
		Status: domain.StatusPending, Date: "2026-05-01",
		CreatedAt: now, UpdatedAt: now,
	}).Error)
	require.NoError(t, conn.Create(&domain.Invoice{
		ID: snowflake.ID(11), CustomerID: snowflake.ID(1), Amount: 500,
		Status: domain.StatusPaid, Date: "2026-05-02",
		CreatedAt: now, UpdatedAt: now,
	}).Error)

	repo := Provide()
	page := pagination.Pagination{Page: 1, PageSize: pagination.DefaultPageSize}

	// The amount filter matches the cast cents digits.
	rows, err := repo.List(context.Background(), conn, "66600", page)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(66600), rows[0].Amount)

	count, err := repo.Count(context.Background(), conn, "66600")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
