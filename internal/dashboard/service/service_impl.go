package service

import (
	"context"

	"github.com/acmehq/invoicedesk/internal/currency"
	"github.com/acmehq/invoicedesk/internal/dashboard/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("dashboard.service"),
	}
}

func (s *Service) FetchRevenue(ctx context.Context) ([]domain.RevenuePoint, error) {
	var points []domain.RevenuePoint
	err := s.db.WithContext(ctx).Raw(
		`SELECT month, revenue FROM revenue`,
	).Scan(&points).Error
	if err != nil {
		s.log.Error("fetch revenue failed", zap.Error(err))
		return nil, domain.ErrFetchRevenue
	}
	return points, nil
}

type latestInvoiceRow struct {
	ID       snowflake.ID
	Name     string
	Email    string
	ImageURL string
	Amount   int64
}

func (s *Service) FetchLatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error) {
	var rows []latestInvoiceRow
	err := s.db.WithContext(ctx).Raw(
		`SELECT invoices.id, customers.name, customers.email, customers.image_url, invoices.amount
		 FROM invoices
		 JOIN customers ON invoices.customer_id = customers.id
		 ORDER BY invoices.date DESC, invoices.id DESC
		 LIMIT 5`,
	).Scan(&rows).Error
	if err != nil {
		s.log.Error("fetch latest invoices failed", zap.Error(err))
		return nil, domain.ErrFetchLatest
	}

	return lo.Map(rows, func(row latestInvoiceRow, _ int) domain.LatestInvoice {
		return domain.LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
			Amount:   currency.FormatCents(row.Amount),
		}
	}), nil
}

func (s *Service) FetchCardData(ctx context.Context) (domain.CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		statusTotals  struct {
			Paid    int64
			Pending int64
		}
	)

	// The three aggregates run concurrently so the call is bounded by the
	// slowest query, not their sum. Any failure fails the whole operation.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Raw(
			`SELECT COUNT(*) FROM invoices`,
		).Scan(&invoiceCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Raw(
			`SELECT COUNT(*) FROM customers`,
		).Scan(&customerCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Raw(
			`SELECT
			   COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
			   COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
			 FROM invoices`,
		).Scan(&statusTotals).Error
	})
	if err := g.Wait(); err != nil {
		s.log.Error("fetch card data failed", zap.Error(err))
		return domain.CardData{}, domain.ErrFetchCards
	}

	return domain.CardData{
		NumberOfInvoices:  invoiceCount,
		NumberOfCustomers: customerCount,
		TotalPaid:         currency.FormatCents(statusTotals.Paid),
		TotalPending:      currency.FormatCents(statusTotals.Pending),
	}, nil
}
