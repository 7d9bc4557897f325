package domain

import (
	"context"
	"errors"
)

type Service interface {
	// List returns every customer as {id, name}, ordered by name ascending.
	List(ctx context.Context) ([]Field, error)
	// ListFiltered returns the customers table view filtered by a
	// case-insensitive partial match on name or email. No pagination.
	ListFiltered(ctx context.Context, query string) ([]Summary, error)
}

var (
	ErrFetchCustomers     = errors.New("failed to fetch all customers")
	ErrFetchCustomerTable = errors.New("failed to fetch customer table")
)
