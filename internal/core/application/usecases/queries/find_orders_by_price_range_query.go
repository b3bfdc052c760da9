package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrFindOrdersByPriceRangeQueryIsNotConstructed = errors.New(
		"FindOrdersByPriceRangeQuery must be created via NewFindOrdersByPriceRangeQuery constructor",
	)
	ErrPriceRangeIsInverted = errors.New("price range lower bound exceeds upper bound")
)

// FindOrdersByPriceRangeQuery retrieves all orders whose total price falls
// within [low, high], both bounds inclusive. Both bounds must be valid Money
// values in the same currency and the lower bound must not exceed the upper.
type FindOrdersByPriceRangeQuery struct { //nolint:recvcheck //using for validation
	low  kernel.Money
	high kernel.Money

	guard guard.ConstructorGuard
}

// NewFindOrdersByPriceRangeQuery creates a price range query.
func NewFindOrdersByPriceRangeQuery(low kernel.Money, high kernel.Money) (FindOrdersByPriceRangeQuery, error) {
	if err := errors.Join(low.Validate(), high.Validate()); err != nil {
		return FindOrdersByPriceRangeQuery{}, err
	}

	if low.Currency() != high.Currency() {
		return FindOrdersByPriceRangeQuery{}, kernel.ErrCurrencyMismatch
	}

	if low.Amount().GreaterThan(high.Amount()) {
		return FindOrdersByPriceRangeQuery{}, ErrPriceRangeIsInverted
	}

	return FindOrdersByPriceRangeQuery{
		low:   low,
		high:  high,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindOrdersByPriceRangeQuery) Validate() error {
	return q.guard.Validate(ErrFindOrdersByPriceRangeQueryIsNotConstructed)
}

// Low returns the inclusive lower bound.
func (q FindOrdersByPriceRangeQuery) Low() kernel.Money {
	return q.low
}

// High returns the inclusive upper bound.
func (q FindOrdersByPriceRangeQuery) High() kernel.Money {
	return q.high
}
