package service

import (
	"context"
	"strings"

	"github.com/acmehq/invoicedesk/internal/currency"
	"github.com/acmehq/invoicedesk/internal/customer/domain"
	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("customer.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Field, error) {
	fields, err := s.repo.ListFields(ctx, s.db)
	if err != nil {
		s.log.Error("list customer fields failed", zap.Error(err))
		return nil, domain.ErrFetchCustomers
	}
	return fields, nil
}

func (s *Service) ListFiltered(ctx context.Context, query string) ([]domain.Summary, error) {
	rows, err := s.repo.ListSummaries(ctx, s.db, strings.TrimSpace(query))
	if err != nil {
		s.log.Error("list customer summaries failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, domain.ErrFetchCustomerTable
	}

	return lo.Map(rows, func(row domain.SummaryRow, _ int) domain.Summary {
		return domain.Summary{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  currency.FormatCents(row.TotalPending),
			TotalPaid:     currency.FormatCents(row.TotalPaid),
		}
	}), nil
}
