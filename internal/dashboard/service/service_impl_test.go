package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	customerdomain "github.com/acmehq/invoicedesk/internal/customer/domain"
	"github.com/acmehq/invoicedesk/internal/dashboard/domain"
	invoicedomain "github.com/acmehq/invoicedesk/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDashboard(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&customerdomain.Customer{},
		&invoicedomain.Invoice{},
		&domain.RevenuePoint{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{DB: db, Log: zap.NewNop()})
	return svc, db, node
}

func seedInvoice(t *testing.T, db *gorm.DB, node *snowflake.Node, customerID snowflake.ID, cents int64, status invoicedomain.Status, date string) {
	t.Helper()
	require.NoError(t, db.Create(&invoicedomain.Invoice{
		ID:         node.Generate(),
		CustomerID: customerID,
		Amount:     cents,
		Status:     status,
		Date:       date,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}).Error)
}

func TestFetchCardDataEmptyTables(t *testing.T) {
	svc, _, _ := setupDashboard(t)

	cards, err := svc.FetchCardData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), cards.NumberOfInvoices)
	assert.Equal(t, int64(0), cards.NumberOfCustomers)
	assert.Equal(t, "$0.00", cards.TotalPaid)
	assert.Equal(t, "$0.00", cards.TotalPending)
}

func TestFetchCardDataAggregatesByStatus(t *testing.T) {
	svc, db, node := setupDashboard(t)

	customer := customerdomain.Customer{
		ID: node.Generate(), Name: "Amy Burns", Email: "amy@example.com",
	}
	require.NoError(t, db.Create(&customer).Error)

	seedInvoice(t, db, node, customer.ID, 10000, invoicedomain.StatusPaid, "2026-01-01")
	seedInvoice(t, db, node, customer.ID, 2500, invoicedomain.StatusPaid, "2026-01-02")
	seedInvoice(t, db, node, customer.ID, 777, invoicedomain.StatusPending, "2026-01-03")

	cards, err := svc.FetchCardData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), cards.NumberOfInvoices)
	assert.Equal(t, int64(1), cards.NumberOfCustomers)
	assert.Equal(t, "$125.00", cards.TotalPaid)
	assert.Equal(t, "$7.77", cards.TotalPending)
}

func TestFetchLatestInvoicesLimitsToFiveNewest(t *testing.T) {
	svc, db, node := setupDashboard(t)

	customer := customerdomain.Customer{
		ID: node.Generate(), Name: "Lee Robinson", Email: "lee@example.com",
	}
	require.NoError(t, db.Create(&customer).Error)

	for day := 1; day <= 7; day++ {
		seedInvoice(t, db, node, customer.ID, int64(day)*100,
			invoicedomain.StatusPending, fmt.Sprintf("2026-02-%02d", day))
	}

	latest, err := svc.FetchLatestInvoices(context.Background())
	require.NoError(t, err)

	require.Len(t, latest, 5)
	// Newest first, amount rendered for display.
	assert.Equal(t, "$7.00", latest[0].Amount)
	assert.Equal(t, "Lee Robinson", latest[0].Name)
	assert.Equal(t, "$3.00", latest[4].Amount)
}

func TestFetchRevenuePassthrough(t *testing.T) {
	svc, db, _ := setupDashboard(t)

	for i, month := range []string{"Jan", "Feb", "Mar"} {
		require.NoError(t, db.Create(&domain.RevenuePoint{
			Month: month, Revenue: int64(i+1) * 1000,
		}).Error)
	}

	points, err := svc.FetchRevenue(context.Background())
	require.NoError(t, err)
	assert.Len(t, points, 3)
}
