package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateOrderRequest {
	return CreateOrderRequest{
		CustomerName: "Asha",
		Email:        "asha@example.com",
		Pincode:      "560001",
		City:         "Bengaluru",
		Address:      "12 MG Road",
		Items:        []map[string]any{{"sku": "poster-a", "qty": 2}},
		Total:        499.5,
	}
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		for _, mutate := range []func(*CreateOrderRequest){
			func(r *CreateOrderRequest) { r.CustomerName = "" },
			func(r *CreateOrderRequest) { r.Email = "   " },
			func(r *CreateOrderRequest) { r.Pincode = "" },
			func(r *CreateOrderRequest) { r.City = "" },
			func(r *CreateOrderRequest) { r.Address = "" },
		} {
			req := validRequest()
			mutate(&req)
			var verr *ValidationError
			require.ErrorAs(t, req.Validate(), &verr)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		req := validRequest()
		req.Email = "not-an-email"
		var verr *ValidationError
		require.ErrorAs(t, req.Validate(), &verr)
		assert.Equal(t, "email", verr.Field)
	})

	t.Run("empty items", func(t *testing.T) {
		req := validRequest()
		req.Items = nil
		var verr *ValidationError
		require.ErrorAs(t, req.Validate(), &verr)
		assert.Equal(t, "items", verr.Field)
	})

	t.Run("non-positive total", func(t *testing.T) {
		for _, total := range []float64{0, -1, -99.99} {
			req := validRequest()
			req.Total = total
			var verr *ValidationError
			require.ErrorAs(t, req.Validate(), &verr)
			assert.Equal(t, "total", verr.Field)
		}
	})
}

func TestCreateOrderRequest_Order(t *testing.T) {
	now := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)

	req := validRequest()
	o := req.Order(now)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, now, o.Date)
	assert.Equal(t, "N/A", o.Landmark, "landmark defaults when absent")
	assert.True(t, o.ID.IsZero(), "id is assigned by the store, not the builder")

	req.Landmark = "opposite the bakery"
	o = req.Order(now)
	assert.Equal(t, "opposite the bakery", o.Landmark)
}

func TestTrackingProjection(t *testing.T) {
	req := validRequest()
	o := req.Order(time.Now().UTC())
	view := o.Tracking()
	assert.Equal(t, o.Status, view.Status)
	assert.Equal(t, o.CustomerName, view.CustomerName)
	assert.Equal(t, o.Date, view.Date)
	assert.Equal(t, o.Total, view.Total)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusPaidPending, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidStatus(s), s)
	}
	for _, s := range []string{"", "pending", "Paid", "Returned", "SHIPPED"} {
		assert.False(t, ValidStatus(s), s)
	}
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	req := UpdateStatusRequest{Status: StatusShipped}
	assert.NoError(t, req.Validate())

	req.Status = "lost-in-transit"
	var verr *ValidationError
	require.ErrorAs(t, req.Validate(), &verr)
	assert.Equal(t, "status", verr.Field)
}

func TestParseID(t *testing.T) {
	_, err := ParseID("zzzz")
	assert.ErrorIs(t, err, ErrInvalidID)

	id, err := ParseID("65f1ab0000000000000000aa")
	require.NoError(t, err)
	assert.Equal(t, "65f1ab0000000000000000aa", id.Hex())
}
