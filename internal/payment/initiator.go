// Package payment wraps the Razorpay order API: a gateway order is
// created before the customer pays, and its descriptor is handed back to
// the frontend checkout verbatim.
package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be greater than zero")

// GatewayOrders is the slice of the Razorpay client this package needs;
// razorpay-go's Order resource satisfies it.
type GatewayOrders interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type Initiator struct {
	orders   GatewayOrders
	currency string
}

func NewInitiator(orders GatewayOrders, currency string) *Initiator {
	return &Initiator{orders: orders, currency: currency}
}

// CreateOrder registers amount (major currency units) with the gateway
// and returns the gateway's order descriptor untouched. No idempotency
// key is sent, so a blind resubmission creates a second gateway order.
// TODO: pass a client-supplied idempotency key through once the
// checkout frontend can generate one.
func (i *Initiator) CreateOrder(amount float64) (map[string]interface{}, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	// The gateway wants minor units (paise for INR).
	minor := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	data := map[string]interface{}{
		"amount":   minor,
		"currency": i.currency,
		"receipt":  fmt.Sprintf("rcpt_%d", time.Now().UnixNano()),
	}
	return i.orders.Create(data, nil)
}
