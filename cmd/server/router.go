package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/essentix-studio/essentix-backend/internal/catalog"
	"github.com/essentix-studio/essentix-backend/internal/config"
	"github.com/essentix-studio/essentix-backend/internal/httpx"
	"github.com/essentix-studio/essentix-backend/internal/notify"
	"github.com/essentix-studio/essentix-backend/internal/order"
	"github.com/essentix-studio/essentix-backend/internal/payment"
)

func newRouter(cfg config.Config, products catalog.Repository, orders order.Repository,
	payments *payment.Initiator, hub *notify.Hub) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS(cfg.AllowedOrigins))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "essentix backend up")
	})

	api := r.Group("/api")
	{
		api.GET("/products", listProductsHandler(products))
		api.POST("/orders", createOrderHandler(orders, hub))
		api.GET("/orders/track/:id", trackOrderHandler(orders))
		api.POST("/payments/create-order", createPaymentHandler(payments))
	}

	admin := api.Group("/admin", httpx.AdminKey(cfg.AdminKey))
	{
		admin.GET("/orders", adminListOrdersHandler(orders))
		admin.PUT("/order-status/:id", updateOrderStatusHandler(orders, hub))
	}

	r.GET("/ws/admin", httpx.AdminKey(cfg.AdminKey), adminSocketHandler(hub))

	return r
}
