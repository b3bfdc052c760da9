// Package payment provides a stub payment gateway adapter. It validates the
// request and fabricates a transaction identifier without contacting any
// external processor, which is enough for local development and tests.
package payment

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
)

// Supported payment methods.
const (
	MethodCreditCard = "credit_card"
	MethodDebitCard  = "debit_card"
	MethodPaypal     = "paypal"
)

// Receipt is the result of a processed payment.
type Receipt struct {
	TransactionID string
	Method        string
	Amount        kernel.Money
}

// StubPaymentService pretends to charge the customer. Every structurally
// valid request succeeds with a fresh transaction identifier.
type StubPaymentService struct {
	logger *slog.Logger
}

// NewStubPaymentService creates a stub payment gateway.
func NewStubPaymentService(logger *slog.Logger) *StubPaymentService {
	return &StubPaymentService{
		logger: logger.With("component", "payment_service"),
	}
}

// Process validates the method and amount and returns a receipt.
// Fails with a ValueIsInvalidError on an unsupported method.
func (s *StubPaymentService) Process(
	ctx context.Context,
	orderID kernel.OrderID,
	amount kernel.Money,
	method string,
) (Receipt, error) {
	if !orderID.IsAssigned() {
		return Receipt{}, kernel.ErrOrderIDIsNotAssigned
	}
	if err := amount.Validate(); err != nil {
		return Receipt{}, err
	}

	switch method {
	case MethodCreditCard, MethodDebitCard, MethodPaypal:
	default:
		return Receipt{}, errs.NewValueIsInvalidError("payment method")
	}

	receipt := Receipt{
		TransactionID: uuid.NewString(),
		Method:        method,
		Amount:        amount,
	}

	s.logger.InfoContext(ctx, "payment processed",
		"order_id", orderID.String(),
		"transaction_id", receipt.TransactionID,
		"method", method,
		"amount", amount.Format(),
	)
	return receipt, nil
}
