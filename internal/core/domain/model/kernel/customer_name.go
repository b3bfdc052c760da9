package kernel

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const (
	// CustomerNameMinLength is the minimum number of runes in a customer name.
	CustomerNameMinLength = 2
	// CustomerNameMaxLength is the maximum number of runes in a customer name.
	CustomerNameMaxLength = 100
)

// ErrCustomerNameIsNotConstructed is returned when attempting to use an improperly
// initialized CustomerName. Use NewCustomerName to create instances.
var ErrCustomerNameIsNotConstructed = errs.NewValueIsRequiredError(
	"customer name must be created via NewCustomerName constructor")

// CustomerName represents a validated customer display name.
// CustomerName is an immutable value object storing the trimmed name and
// deriving first name, last name and initials from its whitespace-separated
// tokens. Two names are equal when their trimmed values match
// case-insensitively.
//
// Example:
//
//	name, err := kernel.NewCustomerName("John Michael Doe")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(name.FirstName()) // Output: John
//	fmt.Println(name.LastName())  // Output: Michael Doe
//	fmt.Println(name.Initials())  // Output: J.M.D.
type CustomerName struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewCustomerName creates a CustomerName from a raw string.
// The value is trimmed and must be between CustomerNameMinLength and
// CustomerNameMaxLength runes long.
func NewCustomerName(value string) (CustomerName, error) {
	name := CustomerName{
		guard: guard.NewConstructorGuard(),
	}

	if err := name.setValue(value); err != nil {
		return CustomerName{}, err
	}

	return name, nil
}

// Validate checks if the CustomerName was properly constructed using the constructor.
func (n CustomerName) Validate() error {
	return n.guard.Validate(ErrCustomerNameIsNotConstructed)
}

// Value returns the trimmed name.
func (n CustomerName) Value() string {
	return n.value
}

// FirstName returns the first whitespace-separated token of the name.
func (n CustomerName) FirstName() string {
	parts := strings.Fields(n.value)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// LastName returns every token after the first, joined by a single space.
// Returns an empty string when the name consists of a single token.
func (n CustomerName) LastName() string {
	parts := strings.Fields(n.value)
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}

// Initials returns the upper-cased first rune of every token, joined by "."
// with a trailing ".".
//
// Example:
//
//	name, _ := kernel.NewCustomerName("John Michael Doe")
//	fmt.Println(name.Initials()) // Output: J.M.D.
func (n CustomerName) Initials() string {
	parts := strings.Fields(n.value)
	initials := make([]string, 0, len(parts))
	for _, part := range parts {
		r, _ := utf8.DecodeRuneInString(part)
		initials = append(initials, string(unicode.ToUpper(r)))
	}
	return strings.Join(initials, ".") + "."
}

// IsEqual compares two customer names case-insensitively on their trimmed values.
func (n CustomerName) IsEqual(other CustomerName) bool {
	return strings.EqualFold(n.value, other.value)
}

// String implements fmt.Stringer returning the trimmed name.
func (n CustomerName) String() string {
	return n.value
}

func (n *CustomerName) setValue(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	length := utf8.RuneCountInString(trimmed)
	if length < CustomerNameMinLength || length > CustomerNameMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"customer name length", length, CustomerNameMinLength, CustomerNameMaxLength)
	}

	n.value = trimmed
	return nil
}
