package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/essentix-studio/essentix-backend/internal/catalog"
	"github.com/essentix-studio/essentix-backend/internal/notify"
	"github.com/essentix-studio/essentix-backend/internal/order"
	"github.com/essentix-studio/essentix-backend/internal/payment"
)

// eventPublisher is the slice of the notify hub the handlers use.
type eventPublisher interface {
	Publish(event string, data any)
}

func listProductsHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			log.Printf("[mongo] list products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func createOrderHandler(repo order.Repository, pub eventPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json body"})
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		o := req.Order(time.Now().UTC())
		if err := repo.Create(c.Request.Context(), o); err != nil {
			log.Printf("[mongo] create order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not store order"})
			return
		}

		// Best-effort; the order is already stored.
		pub.Publish(notify.EventNewOrder, o)

		c.JSON(http.StatusCreated, gin.H{
			"success":      true,
			"orderId":      o.ID.Hex(),
			"customerName": o.CustomerName,
			"total":        o.Total,
		})
	}
}

func trackOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := order.ParseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			log.Printf("[mongo] track order %s: %v", id.Hex(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch order"})
			return
		}
		c.JSON(http.StatusOK, o.Tracking())
	}
}

func createPaymentHandler(pay *payment.Initiator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Amount float64 `json:"amount"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
			return
		}
		desc, err := pay.CreateOrder(req.Amount)
		if errors.Is(err, payment.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			log.Printf("[payment] create gateway order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment gateway error"})
			return
		}
		c.JSON(http.StatusOK, desc)
	}
}

func adminListOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := repo.List(c.Request.Context())
		if err != nil {
			log.Printf("[mongo] list orders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func updateOrderStatusHandler(repo order.Repository, pub eventPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := order.ParseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		o, err := repo.UpdateStatus(c.Request.Context(), id, req.Status)
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			log.Printf("[mongo] update order %s status: %v", id.Hex(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update order"})
			return
		}

		pub.Publish(notify.EventStatusUpdated, o)

		c.JSON(http.StatusOK, o)
	}
}

// Origin checks already happened at the admin-key gate; dashboards may
// connect from any of the allowed frontends.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func adminSocketHandler(hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error.
			log.Printf("[ws] upgrade: %v", err)
			return
		}
		hub.Subscribe(conn)
	}
}
