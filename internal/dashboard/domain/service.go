package domain

import (
	"context"
	"errors"
)

type Service interface {
	// FetchRevenue returns every revenue row, unordered passthrough.
	FetchRevenue(ctx context.Context) ([]RevenuePoint, error)
	// FetchLatestInvoices returns the five most recent invoices joined to
	// their customers, amounts formatted for display.
	FetchLatestInvoices(ctx context.Context) ([]LatestInvoice, error)
	// FetchCardData runs the three card aggregations concurrently and joins
	// on all of them; a failure in any sub-query fails the whole call.
	FetchCardData(ctx context.Context) (CardData, error)
}

var (
	ErrFetchRevenue = errors.New("failed to fetch revenue data")
	ErrFetchLatest  = errors.New("failed to fetch the latest invoices")
	ErrFetchCards   = errors.New("failed to fetch card data")
)
