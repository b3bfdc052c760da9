package kernel

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
		"money must be created via NewMoney, NewMoneyFromFloat, or ZeroMoney constructors")

	// ErrAmountIsNegative is returned when constructing Money with a negative amount.
	ErrAmountIsNegative = errors.New("money amount cannot be negative")

	// ErrCurrencyMismatch is returned when combining Money values of different currencies.
	ErrCurrencyMismatch = errors.New("cannot operate on money values with different currencies")

	// ErrNegativeResult is returned when a subtraction would produce a negative amount.
	ErrNegativeResult = errors.New("money subtraction result cannot be negative")

	// ErrFactorIsNegative is returned when multiplying Money by a negative factor.
	ErrFactorIsNegative = errors.New("money multiplication factor cannot be negative")
)

// Money represents an exact, non-negative monetary amount in a single currency.
// Money is an immutable value object: arithmetic never mutates the receiver,
// every operation returns a new value. Amounts use decimal arithmetic, so sums
// and discount calculations stay exact regardless of scale.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoneyFromFloat(29.99, "USD")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price.Format()) // Output: USD 29.99
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value with the given decimal amount and currency code.
// The amount must not be negative and the currency code must not be blank.
// The currency code is trimmed and normalized to upper case.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(money.setAmount(amount), money.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return money, nil
}

// NewMoneyFromFloat creates a Money value from a float64 amount.
// Convenient at the application boundary where amounts arrive as JSON numbers.
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// ZeroMoney creates a Money value of zero amount in the given currency.
// Used as the starting point when folding line totals into an order total.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Validate checks if the Money value was properly constructed using a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the upper-cased currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add returns a new Money holding the sum of both amounts.
// Fails with ErrCurrencyMismatch if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns a new Money holding the difference of both amounts.
// Fails with ErrCurrencyMismatch if the currencies differ and with
// ErrNegativeResult if the result would drop below zero: money cannot go negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}

	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrNegativeResult
	}

	return NewMoney(result, m.currency)
}

// Multiply returns a new Money holding the amount scaled by factor.
// Fails with ErrFactorIsNegative if the factor is negative.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if factor.IsNegative() {
		return Money{}, ErrFactorIsNegative
	}

	return NewMoney(m.amount.Mul(factor), m.currency)
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// ToMap returns the structured {amount, currency} representation used in
// serialized payloads and event data. The amount is the exact decimal string,
// not the display-rounded form.
func (m Money) ToMap() map[string]any {
	return map[string]any{
		"amount":   m.amount.String(),
		"currency": m.currency,
	}
}

// Format renders the value as "<CURRENCY> <amount>" with two decimal places.
//
// Example:
//
//	m, _ := kernel.NewMoneyFromFloat(2759.9, "USD")
//	fmt.Println(m.Format()) // Output: USD 2759.90
func (m Money) Format() string {
	return m.currency + " " + m.amount.StringFixed(2)
}

// String implements fmt.Stringer using the Format representation.
func (m Money) String() string {
	return m.Format()
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountIsNegative
	}

	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}

	m.currency = currency
	return nil
}
