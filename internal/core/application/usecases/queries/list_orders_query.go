package queries

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// Pagination bounds for order listings.
const (
	// DefaultPageSize is used when the caller does not specify a page size.
	DefaultPageSize = 20

	// MaxPageSize caps the number of orders a single page may return.
	MaxPageSize = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves one page of orders, newest first, optionally
// filtered to a single status.
//
// Example:
//
//	query, _ := NewListOrdersQuery(20, 1)
//	confirmed, _ := NewListOrdersQueryWithStatus(order.StatusConfirmed)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	pageSize   int
	pageNumber int

	status    order.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paginated query over all orders.
// A zero pageSize falls back to DefaultPageSize and a zero pageNumber to the
// first page. Fails when pageSize is negative or exceeds MaxPageSize, or when
// pageNumber is negative.
func NewListOrdersQuery(pageSize int, pageNumber int) (ListOrdersQuery, error) {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageNumber == 0 {
		pageNumber = 1
	}

	if pageSize < 1 || pageSize > MaxPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("page size", pageSize, 1, MaxPageSize)
	}
	if pageNumber < 1 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"page number", fmt.Errorf("%d is not a positive page number", pageNumber))
	}

	return ListOrdersQuery{
		pageSize:   pageSize,
		pageNumber: pageNumber,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewListOrdersQueryWithStatus creates a query over every order in the given
// status. Fails when the status literal is invalid.
func NewListOrdersQueryWithStatus(status order.Status) (ListOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		status:    status,
		hasStatus: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// PageSize returns the number of orders per page.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// PageNumber returns the 1-based page number.
func (q ListOrdersQuery) PageNumber() int {
	return q.pageNumber
}

// Status returns the status filter and whether one was set.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasStatus
}
