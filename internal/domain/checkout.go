package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowState is one stage of the commerce flow
type FlowState string

const (
	StateBrowsing FlowState = "BROWSING"
	StateCheckout FlowState = "CHECKOUT"
	StatePayment  FlowState = "PAYMENT"
	StateSuccess  FlowState = "SUCCESS"
)

// String representation (for logging)
func (s FlowState) String() string {
	return string(s)
}

var flowTransitions = map[FlowState][]FlowState{
	StateBrowsing: {StateCheckout},
	StateCheckout: {StatePayment, StateBrowsing},
	StatePayment:  {StateSuccess, StateCheckout},
	StateSuccess:  {StateBrowsing},
}

// CanTransitionTo reports whether the flow may move from one state to another
func CanTransitionTo(from, to FlowState) bool {
	for _, next := range flowTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CustomerDetails are required in full before payment. Fields are checked for
// presence only, no format validation.
type CustomerDetails struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
}

type PaymentMethod string

const (
	MethodUPI        PaymentMethod = "upi"
	MethodDebit      PaymentMethod = "debit"
	MethodCredit     PaymentMethod = "credit"
	MethodNetbanking PaymentMethod = "netbanking"
)

// PaymentForm carries the method-specific fields entered on the payment step.
// Only the fields for the selected method are validated.
type PaymentForm struct {
	Method         PaymentMethod `json:"method"`
	UPIID          string        `json:"upiId"`
	CardNumber     string        `json:"cardNumber"`
	ExpiryDate     string        `json:"expiryDate"`
	CVV            string        `json:"cvv"`
	CardholderName string        `json:"cardholderName"`
	BankName       string        `json:"bankName"`
}

// PaymentReceipt is returned by the payment gateway after a charge
type PaymentReceipt struct {
	TransactionID string          `json:"transaction_id"`
	OrderNumber   string          `json:"order_number"`
	Amount        decimal.Decimal `json:"amount"`
	ProcessedAt   time.Time       `json:"processed_at"`
}
