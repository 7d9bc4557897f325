package service

import (
	"context"
	"strings"

	"github.com/acmehq/invoicedesk/internal/clock"
	"github.com/acmehq/invoicedesk/internal/currency"
	"github.com/acmehq/invoicedesk/internal/invoice/domain"
	"github.com/acmehq/invoicedesk/internal/pagecache"
	"github.com/acmehq/invoicedesk/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
	Cache pagecache.Cache
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
	cache pagecache.Cache
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
		cache: p.Cache,
	}
}

func (s *Service) List(ctx context.Context, query string, page int) ([]domain.TableRow, error) {
	rows, err := s.repo.List(ctx, s.db, strings.TrimSpace(query), pagination.Pagination{
		Page:     page,
		PageSize: pagination.DefaultPageSize,
	})
	if err != nil {
		s.log.Error("list invoices failed",
			zap.String("query", query),
			zap.Int("page", page),
			zap.Error(err),
		)
		return nil, domain.ErrFetchList
	}
	return rows, nil
}

func (s *Service) Pages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.Count(ctx, s.db, strings.TrimSpace(query))
	if err != nil {
		s.log.Error("count invoices failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return 0, domain.ErrFetchPages
	}
	return pagination.TotalPages(count, pagination.DefaultPageSize), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Form, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return nil, domain.ErrNotFound
	}

	invoice, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		s.log.Error("find invoice failed", zap.String("id", id), zap.Error(err))
		return nil, domain.ErrFetchOne
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	return &domain.Form{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     currency.CentsToMajor(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

func (s *Service) Create(ctx context.Context, input domain.Input) error {
	parsed, errs := parseInput(input, domain.MsgCreateMissingFields)
	if errs != nil {
		return errs
	}

	now := s.clock.Now()
	invoice := domain.Invoice{
		ID:         s.genID.Generate(),
		CustomerID: parsed.customerID,
		Amount:     parsed.cents,
		Status:     parsed.status,
		Date:       now.Format(domain.DateLayout),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		s.log.Error("insert invoice failed", zap.Error(err))
		return domain.ErrCreateFailed
	}

	s.cache.Invalidate(domain.ListingPath)
	return nil
}

func (s *Service) Update(ctx context.Context, id string, input domain.Input) error {
	parsed, errs := parseInput(input, domain.MsgUpdateMissingFields)
	if errs != nil {
		return errs
	}

	invoiceID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || invoiceID == 0 {
		return domain.ErrNotFound
	}

	invoice := domain.Invoice{
		ID:         invoiceID,
		CustomerID: parsed.customerID,
		Amount:     parsed.cents,
		Status:     parsed.status,
		UpdatedAt:  s.clock.Now(),
	}

	if err := s.repo.Update(ctx, s.db, &invoice); err != nil {
		s.log.Error("update invoice failed", zap.String("id", id), zap.Error(err))
		return domain.ErrUpdateFailed
	}

	s.cache.Invalidate(domain.ListingPath)
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	invoiceID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || invoiceID == 0 {
		// Nothing to delete; same success contract as a real deletion.
		return nil
	}

	if err := s.repo.Delete(ctx, s.db, invoiceID); err != nil {
		s.log.Error("delete invoice failed", zap.String("id", id), zap.Error(err))
		return domain.ErrDeleteFailed
	}

	s.cache.Invalidate(domain.ListingPath)
	return nil
}
