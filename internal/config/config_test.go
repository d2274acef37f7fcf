package config

import (
	"io"
	"log"
	"testing"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"LISTEN_ADDR", "MONGO_URI", "MONGO_DB", "ADMIN_KEY", "PAYMENT_CURRENCY", "ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.ListenAddr != ":5000" {
		t.Fatalf("ListenAddr=%q", cfg.ListenAddr)
	}
	if cfg.MongoDatabase != "essentix" {
		t.Fatalf("MongoDatabase=%q", cfg.MongoDatabase)
	}
	if cfg.Currency != "INR" {
		t.Fatalf("Currency=%q", cfg.Currency)
	}
	if len(cfg.AllowedOrigins) != 3 {
		t.Fatalf("AllowedOrigins=%v", cfg.AllowedOrigins)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("MONGO_DB", "shopdb")
	t.Setenv("ADMIN_KEY", "k")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg := Load()
	if cfg.ListenAddr != ":9999" || cfg.MongoDatabase != "shopdb" || cfg.AdminKey != "k" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("AllowedOrigins=%v", cfg.AllowedOrigins)
	}
}
