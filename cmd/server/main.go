package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/essentix-studio/essentix-backend/internal/catalog"
	"github.com/essentix-studio/essentix-backend/internal/config"
	"github.com/essentix-studio/essentix-backend/internal/notify"
	"github.com/essentix-studio/essentix-backend/internal/order"
	"github.com/essentix-studio/essentix-backend/internal/payment"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] connect: %v", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		log.Fatalf("[mongo] ping: %v", err)
	}
	log.Printf("[mongo] connected")
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("[mongo] disconnect: %v", err)
		}
	}()

	db := client.Database(cfg.MongoDatabase)
	rzp := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpaySecret)

	hub := notify.NewHub()
	go hub.Run()
	defer hub.Stop()

	router := newRouter(cfg,
		catalog.NewMongoRepo(db),
		order.NewMongoRepo(db),
		payment.NewInitiator(rzp.Order, cfg.Currency),
		hub,
	)

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: router}
	go func() {
		log.Printf("server listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
