package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. "Paid & Pending" is set by the admin once a payment
// shows up on the gateway dashboard; this system does not verify
// payment completion itself (no webhook / signature check).
const (
	StatusPending     = "Pending"
	StatusPaidPending = "Paid & Pending"
	StatusShipped     = "Shipped"
	StatusDelivered   = "Delivered"
	StatusCancelled   = "Cancelled"
)

// ValidStatus reports whether s is one of the fixed order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaidPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is a customer's purchase record. ID and Date are set once at
// creation; only Status changes afterwards, and orders are never deleted.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Email        string             `bson:"email" json:"email"`
	Pincode      string             `bson:"pincode" json:"pincode"`
	City         string             `bson:"city" json:"city"`
	Address      string             `bson:"address" json:"address"`
	Landmark     string             `bson:"landmark" json:"landmark"`
	// Line items are opaque documents; they are not cross-checked
	// against the catalog.
	Items     []map[string]any `bson:"items" json:"items"`
	Total     float64          `bson:"total" json:"total"`
	PaymentID string           `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Status    string           `bson:"status" json:"status"`
	Date      time.Time        `bson:"date" json:"date"`
}
