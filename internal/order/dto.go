package order

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError reports a rejected create/update payload. Handlers map
// it to a 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// CreateOrderRequest is the client order-submission payload.
type CreateOrderRequest struct {
	CustomerName string           `json:"customerName"`
	Email        string           `json:"email"`
	Pincode      string           `json:"pincode"`
	City         string           `json:"city"`
	Address      string           `json:"address"`
	Landmark     string           `json:"landmark"`
	Items        []map[string]any `json:"items"`
	Total        float64          `json:"total"`
	PaymentID    string           `json:"paymentId"`
}

// Validate checks the payload independently of persistence.
func (r *CreateOrderRequest) Validate() error {
	required := []struct{ field, val string }{
		{"customerName", r.CustomerName},
		{"email", r.Email},
		{"pincode", r.Pincode},
		{"city", r.City},
		{"address", r.Address},
	}
	for _, f := range required {
		if strings.TrimSpace(f.val) == "" {
			return &ValidationError{Field: f.field, Reason: "is required"}
		}
	}
	if !strings.Contains(r.Email, "@") {
		return &ValidationError{Field: "email", Reason: "is not an email address"}
	}
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "must not be empty"}
	}
	if r.Total <= 0 {
		return &ValidationError{Field: "total", Reason: "must be greater than zero"}
	}
	return nil
}

// Order builds the record to persist: status forced to Pending, landmark
// defaulted, creation time stamped.
func (r *CreateOrderRequest) Order(now time.Time) *Order {
	landmark := strings.TrimSpace(r.Landmark)
	if landmark == "" {
		landmark = "N/A"
	}
	return &Order{
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Pincode:      r.Pincode,
		City:         r.City,
		Address:      r.Address,
		Landmark:     landmark,
		Items:        r.Items,
		Total:        r.Total,
		PaymentID:    r.PaymentID,
		Status:       StatusPending,
		Date:         now,
	}
}

// TrackingView is the reduced projection served on the unauthenticated
// tracking route; address and contact fields stay private.
type TrackingView struct {
	Status       string    `json:"status"`
	CustomerName string    `json:"customerName"`
	Date         time.Time `json:"date"`
	Total        float64   `json:"total"`
}

// Tracking projects an order for public consumption.
func (o *Order) Tracking() TrackingView {
	return TrackingView{
		Status:       o.Status,
		CustomerName: o.CustomerName,
		Date:         o.Date,
		Total:        o.Total,
	}
}

// UpdateStatusRequest is the admin status-change payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !ValidStatus(r.Status) {
		return &ValidationError{Field: "status", Reason: "is not a valid order status"}
	}
	return nil
}
