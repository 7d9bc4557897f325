package domain

import (
	"context"
	"errors"
)

// ListingPath is the cached listing route invalidated after every mutation.
const ListingPath = "/dashboard/invoices"

// Fixed messages returned to callers. Raw storage errors never cross the
// boundary; they are logged and replaced by these.
const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgCreateFailed        = "Database Error: Failed to Create Invoice."
	MsgUpdateFailed        = "Database Error: Failed to Update Invoice."
	MsgDeleteFailed        = "Database Error: Failed to Delete Invoice."
	MsgDeleted             = "Deleted Invoice."
)

type Service interface {
	// List returns one page of the filtered invoices table. The filter
	// matches the query case-insensitively against customer name, customer
	// email, amount as text, date as text and status. Page is 1-indexed and
	// pages hold at most pagination.DefaultPageSize rows.
	List(ctx context.Context, query string, page int) ([]TableRow, error)
	// Pages counts rows matching the same filter predicate as List and
	// returns the total page count.
	Pages(ctx context.Context, query string) (int, error)
	// GetByID returns one invoice shaped for editing, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Form, error)
	// Create validates the input and inserts a new invoice with a
	// system-assigned id and date. Validation failures come back as
	// *validation.Errors; storage failures as ErrCreateFailed.
	Create(ctx context.Context, input Input) error
	// Update validates the input and rewrites customer, amount and status
	// for the given id. Date is never touched.
	Update(ctx context.Context, id string, input Input) error
	// Delete removes the invoice unconditionally. Deleting a nonexistent id
	// is a no-op that still reports success.
	Delete(ctx context.Context, id string) error
}

var (
	ErrNotFound     = errors.New("not_found")
	ErrCreateFailed = errors.New("create_failed")
	ErrUpdateFailed = errors.New("update_failed")
	ErrDeleteFailed = errors.New("delete_failed")
	ErrFetchList    = errors.New("failed to fetch invoices")
	ErrFetchPages   = errors.New("failed to fetch total number of invoices")
	ErrFetchOne     = errors.New("failed to fetch invoice")
)
