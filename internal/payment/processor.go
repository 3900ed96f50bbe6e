package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
)

// Processor simulates the external payment gateway. A charge takes a fixed
// processing delay and then succeeds; there is no failure, timeout or retry
// path in this demo. Calls still run through a circuit breaker so a real
// gateway could be dropped in without touching callers.
type Processor struct {
	delay time.Duration
	cb    *gobreaker.CircuitBreaker[domain.PaymentReceipt]
}

func NewProcessor(delay time.Duration) *Processor {
	return &Processor{
		delay: delay,
		cb:    gobreaker.NewCircuitBreaker[domain.PaymentReceipt](gobreaker.Settings{Name: "payment-gateway"}),
	}
}

// Charge processes a payment for the given order. The delay is not
// cancellable: once submitted, the simulated charge always completes.
func (p *Processor) Charge(_ context.Context, orderNumber string, amount decimal.Decimal) (domain.PaymentReceipt, error) {
	return p.cb.Execute(func() (domain.PaymentReceipt, error) {
		time.Sleep(p.delay)

		return domain.PaymentReceipt{
			TransactionID: fmt.Sprintf("TXN-%d", time.Now().UnixNano()),
			OrderNumber:   orderNumber,
			Amount:        amount,
			ProcessedAt:   time.Now(),
		}, nil
	})
}
