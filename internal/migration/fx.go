package migration

import (
	authdomain "github.com/acmehq/invoicedesk/internal/auth/domain"
	"github.com/acmehq/invoicedesk/internal/config"
	customerdomain "github.com/acmehq/invoicedesk/internal/customer/domain"
	dashboarddomain "github.com/acmehq/invoicedesk/internal/dashboard/domain"
	invoicedomain "github.com/acmehq/invoicedesk/internal/invoice/domain"
	"github.com/acmehq/invoicedesk/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql are dev conveniences; let gorm derive the
			// schema from the models instead of maintaining per-dialect SQL.
			if err := conn.AutoMigrate(
				&customerdomain.Customer{},
				&invoicedomain.Invoice{},
				&dashboarddomain.RevenuePoint{},
				&authdomain.User{},
				&authdomain.Session{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoData {
			return seed.EnsureDemoData(conn)
		}
		return nil
	}),
)
