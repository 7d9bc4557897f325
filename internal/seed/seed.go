// Package seed bootstraps demo data so a fresh install has something to
// show on the dashboard.
package seed

import (
	"context"
	"errors"
	"time"

	authdomain "github.com/acmehq/invoicedesk/internal/auth/domain"
	"github.com/acmehq/invoicedesk/internal/auth/password"
	customerdomain "github.com/acmehq/invoicedesk/internal/customer/domain"
	dashboarddomain "github.com/acmehq/invoicedesk/internal/dashboard/domain"
	invoicedomain "github.com/acmehq/invoicedesk/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const (
	defaultAdminName     = "Admin"
	defaultAdminEmail    = "admin@invoicedesk.local"
	defaultAdminPassword = "changeme"
)

type demoCustomer struct {
	name  string
	email string
	image string
}

type demoInvoice struct {
	customer int
	amount   int64
	status   invoicedomain.Status
	date     string
}

var demoCustomers = []demoCustomer{
	{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var demoInvoices = []demoInvoice{
	{0, 15795, invoicedomain.StatusPending, "2022-12-06"},
	{1, 20348, invoicedomain.StatusPending, "2022-11-14"},
	{4, 3040, invoicedomain.StatusPaid, "2022-10-29"},
	{3, 44800, invoicedomain.StatusPaid, "2023-09-10"},
	{5, 34577, invoicedomain.StatusPending, "2023-08-05"},
	{2, 54246, invoicedomain.StatusPending, "2023-07-16"},
	{0, 66600, invoicedomain.StatusPending, "2023-06-27"},
	{3, 32545, invoicedomain.StatusPaid, "2023-06-09"},
	{4, 1250, invoicedomain.StatusPaid, "2023-06-17"},
	{5, 8546, invoicedomain.StatusPaid, "2023-06-07"},
	{1, 500, invoicedomain.StatusPaid, "2023-08-19"},
	{5, 8945, invoicedomain.StatusPaid, "2023-06-03"},
	{2, 1000, invoicedomain.StatusPaid, "2022-06-05"},
}

var demoRevenue = map[string]int64{
	"Jan": 200000, "Feb": 180000, "Mar": 220000, "Apr": 250000,
	"May": 230000, "Jun": 320000, "Jul": 350000, "Aug": 370000,
	"Sep": 250000, "Oct": 280000, "Nov": 300000, "Dec": 480000,
}

// EnsureDemoData inserts the demo dataset and a default admin account.
// It is a no-op when customers already exist.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&customerdomain.Customer{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ensureAdminUser(tx, node)
		}

		now := time.Now().UTC()
		ids := make([]snowflake.ID, len(demoCustomers))
		for i, c := range demoCustomers {
			ids[i] = node.Generate()
			if err := tx.Create(&customerdomain.Customer{
				ID:        ids[i],
				Name:      c.name,
				Email:     c.email,
				ImageURL:  c.image,
				CreatedAt: now,
				UpdatedAt: now,
			}).Error; err != nil {
				return err
			}
		}

		for _, inv := range demoInvoices {
			if err := tx.Create(&invoicedomain.Invoice{
				ID:         node.Generate(),
				CustomerID: ids[inv.customer],
				Amount:     inv.amount,
				Status:     inv.status,
				Date:       inv.date,
				CreatedAt:  now,
				UpdatedAt:  now,
			}).Error; err != nil {
				return err
			}
		}

		for month, revenue := range demoRevenue {
			if err := tx.Create(&dashboarddomain.RevenuePoint{
				Month:   month,
				Revenue: revenue,
			}).Error; err != nil {
				return err
			}
		}

		return ensureAdminUser(tx, node)
	})
}

func ensureAdminUser(tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.Model(&authdomain.User{}).
		Where("email = ?", defaultAdminEmail).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := password.Hash(defaultAdminPassword)
	if err != nil {
		return err
	}

	return tx.Create(&authdomain.User{
		ID:        node.Generate(),
		Name:      defaultAdminName,
		Email:     defaultAdminEmail,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}).Error
}
