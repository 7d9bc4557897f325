package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/acmehq/invoicedesk/internal/customer/domain"
	"github.com/acmehq/invoicedesk/internal/customer/repository"
	invoicedomain "github.com/acmehq/invoicedesk/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCustomers(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.Customer{}, &invoicedomain.Invoice{}))

	svc := New(Params{
		DB:   conn,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return svc, conn
}

func seedCustomer(t *testing.T, conn *gorm.DB, id int64, name, email string) {
	t.Helper()
	require.NoError(t, conn.Create(&domain.Customer{
		ID:    snowflake.ID(id),
		Name:  name,
		Email: email,
	}).Error)
}

func seedInvoice(t *testing.T, conn *gorm.DB, id, customerID, cents int64, status invoicedomain.Status) {
	t.Helper()
	require.NoError(t, conn.Create(&invoicedomain.Invoice{
		ID:         snowflake.ID(id),
		CustomerID: snowflake.ID(customerID),
		Amount:     cents,
		Status:     status,
		Date:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Format(invoicedomain.DateLayout),
	}).Error)
}

func TestListOrdersByNameAscending(t *testing.T) {
	svc, conn := setupCustomers(t)

	seedCustomer(t, conn, 1, "Zoe Adams", "zoe@example.com")
	seedCustomer(t, conn, 2, "Amy Burns", "amy@example.com")
	seedCustomer(t, conn, 3, "Lee Robinson", "lee@example.com")

	fields, err := svc.List(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Amy Burns", "Lee Robinson", "Zoe Adams"}, names)
}

func TestListFilteredAggregatesTotals(t *testing.T) {
	svc, conn := setupCustomers(t)

	seedCustomer(t, conn, 1, "Amy Burns", "amy@example.com")
	seedInvoice(t, conn, 10, 1, 12500, invoicedomain.StatusPaid)
	seedInvoice(t, conn, 11, 1, 2500, invoicedomain.StatusPaid)
	seedInvoice(t, conn, 12, 1, 777, invoicedomain.StatusPending)

	rows, err := svc.ListFiltered(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(3), rows[0].TotalInvoices)
	assert.Equal(t, "$7.77", rows[0].TotalPending)
	assert.Equal(t, "$150.00", rows[0].TotalPaid)
}

func TestListFilteredIncludesCustomersWithoutInvoices(t *testing.T) {
	svc, conn := setupCustomers(t)

	seedCustomer(t, conn, 1, "Amy Burns", "amy@example.com")

	rows, err := svc.ListFiltered(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Zero(t, rows[0].TotalInvoices)
	assert.Equal(t, "$0.00", rows[0].TotalPending)
	assert.Equal(t, "$0.00", rows[0].TotalPaid)
}

func TestListFilteredMatchesNameOrEmailCaseInsensitively(t *testing.T) {
	svc, conn := setupCustomers(t)

	seedCustomer(t, conn, 1, "Amy Burns", "amy@example.com")
	seedCustomer(t, conn, 2, "Lee Robinson", "lee@other.org")

	rows, err := svc.ListFiltered(context.Background(), "BURNS")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Amy Burns", rows[0].Name)

	rows, err = svc.ListFiltered(context.Background(), "other.org")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Lee Robinson", rows[0].Name)
}
