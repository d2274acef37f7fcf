package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr     string
	MongoURI       string
	MongoDatabase  string
	AdminKey       string
	RazorpayKeyID  string
	RazorpaySecret string
	Currency       string
	AllowedOrigins []string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		ListenAddr:     getenv("LISTEN_ADDR", ":5000"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getenv("MONGO_DB", "essentix"),
		AdminKey:       getenv("ADMIN_KEY", "essentix-secret"),
		RazorpayKeyID:  getenv("RAZORPAY_KEY_ID", ""),
		RazorpaySecret: getenv("RAZORPAY_KEY_SECRET", ""),
		Currency:       getenv("PAYMENT_CURRENCY", "INR"),
		AllowedOrigins: splitOrigins(getenv("ALLOWED_ORIGINS",
			"https://essentix-studio-frontend.vercel.app,http://127.0.0.1:5500,http://localhost:5500")),
	}
	log.Printf("[config] LISTEN_ADDR=%s", cfg.ListenAddr)
	log.Printf("[config] MONGO_DB=%s", cfg.MongoDatabase)
	log.Printf("[config] ALLOWED_ORIGINS=%s", strings.Join(cfg.AllowedOrigins, ","))
	return cfg
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
