package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/notify"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrIllegalTransition = errors.New("illegal flow transition")
	ErrInvalidDetails    = errors.New("customer details are incomplete")
	ErrInvalidPayment    = errors.New("payment details are invalid")
)

// Charger processes a payment charge against the gateway
type Charger interface {
	Charge(ctx context.Context, orderNumber string, amount decimal.Decimal) (domain.PaymentReceipt, error)
}

// Flow drives one shopper's journey through browsing, checkout, payment and
// success. It owns the cart for the duration of the journey and is not safe
// for concurrent use; the caller serializes access per session.
type Flow struct {
	log     zerolog.Logger
	charger Charger
	sink    notify.Sink

	state       domain.FlowState
	cart        *domain.Cart
	details     *domain.CustomerDetails
	orderNumber string
	receipt     *domain.PaymentReceipt
}

func NewFlow(log zerolog.Logger, charger Charger, sink notify.Sink, c *domain.Cart) *Flow {
	return &Flow{
		log:     log,
		charger: charger,
		sink:    sink,
		state:   domain.StateBrowsing,
		cart:    c,
	}
}

func (f *Flow) State() domain.FlowState { return f.state }

func (f *Flow) Cart() *domain.Cart { return f.cart }

// Details returns a copy of the submitted customer details, or nil before
// the checkout form was completed.
func (f *Flow) Details() *domain.CustomerDetails {
	if f.details == nil {
		return nil
	}
	d := *f.details
	return &d
}

// Receipt returns the payment receipt, or nil before a successful payment
func (f *Flow) Receipt() *domain.PaymentReceipt {
	if f.receipt == nil {
		return nil
	}
	r := *f.receipt
	return &r
}

// OrderNumber is assigned once on the first successful payment and stays
// stable afterwards, even across a later continue-shopping round.
func (f *Flow) OrderNumber() string { return f.orderNumber }

// BeginCheckout moves from browsing to the details form. An empty cart has
// nothing to check out and keeps the flow where it is.
func (f *Flow) BeginCheckout() error {
	if err := f.guard(domain.StateCheckout); err != nil {
		return err
	}
	if len(f.cart.Lines) == 0 {
		return ErrEmptyCart
	}

	f.transition(domain.StateCheckout)
	return nil
}

// SubmitDetails validates the customer form. All six fields are required;
// on any missing field the flow stays in checkout and the per-field errors
// are returned alongside ErrInvalidDetails.
func (f *Flow) SubmitDetails(d domain.CustomerDetails) (FieldErrors, error) {
	if err := f.guard(domain.StatePayment); err != nil {
		return nil, err
	}

	d = trimDetails(d)
	if fe := validateDetails(d); fe != nil {
		return fe, ErrInvalidDetails
	}

	f.details = &d
	f.transition(domain.StatePayment)
	return nil, nil
}

// SubmitPayment validates the method-specific fields, charges the gateway
// and on success clears the cart and moves to the success screen. The
// charged amount is the cart total at the moment of submission.
func (f *Flow) SubmitPayment(ctx context.Context, form domain.PaymentForm) (*domain.PaymentReceipt, FieldErrors, error) {
	if err := f.guard(domain.StateSuccess); err != nil {
		return nil, nil, err
	}
	if f.details == nil {
		return nil, nil, fmt.Errorf("%w: payment submitted without customer details", ErrIllegalTransition)
	}

	if fe := validatePaymentForm(form); fe != nil {
		return nil, fe, ErrInvalidPayment
	}

	amount := cart.Total(f.cart)
	if f.orderNumber == "" {
		f.orderNumber = newOrderNumber(time.Now())
	}

	receipt, err := f.charger.Charge(ctx, f.orderNumber, amount)
	if err != nil {
		f.log.Error().Err(err).Str("order_number", f.orderNumber).Msg("payment charge failed")
		return nil, nil, fmt.Errorf("charge failed: %w", err)
	}

	f.receipt = &receipt
	cart.Clear(f.cart)
	f.transition(domain.StateSuccess)

	event := notify.Event{
		Name:     notify.EventPaymentSuccessful,
		Message:  fmt.Sprintf("Your payment of $%s has been processed successfully.", amount.StringFixed(2)),
		Severity: notify.SeverityNormal,
	}
	if err := f.sink.Publish(ctx, event); err != nil {
		f.log.Warn().Err(err).Msg("failed to publish payment event")
	}

	return f.Receipt(), nil, nil
}

// Back steps one stage backwards: payment returns to the details form,
// checkout returns to browsing. Cart and submitted details are kept.
func (f *Flow) Back() error {
	switch f.state {
	case domain.StatePayment:
		f.transition(domain.StateCheckout)
	case domain.StateCheckout:
		f.transition(domain.StateBrowsing)
	default:
		return fmt.Errorf("%w: cannot go back from %s", ErrIllegalTransition, f.state)
	}
	return nil
}

// ContinueShopping returns to browsing after a completed purchase
func (f *Flow) ContinueShopping() error {
	if f.state != domain.StateSuccess {
		return fmt.Errorf("%w: continue shopping is only available from %s", ErrIllegalTransition, domain.StateSuccess)
	}
	f.transition(domain.StateBrowsing)
	return nil
}

func (f *Flow) guard(to domain.FlowState) error {
	if !domain.CanTransitionTo(f.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, f.state, to)
	}
	return nil
}

func (f *Flow) transition(to domain.FlowState) {
	f.log.Info().
		Str("from", f.state.String()).
		Str("to", to.String()).
		Msg("flow transition")
	f.state = to
}
