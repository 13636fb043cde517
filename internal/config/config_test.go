package config

import (
	"fmt"
	"testing"
	"time"
)

func TestMustLoad(t *testing.T) {
	cfg := MustLoad("./test_data")

	if cfg.Private.Pg.Host != "localhost" {
		t.Errorf("pg.Host, got: %s, want: %s", cfg.Private.Pg.Host, "localhost")
	}
	if cfg.Private.Pg.Port != 5432 {
		t.Errorf("pg.Port, got: %s, want: %s", fmt.Sprint(cfg.Private.Pg.Port), "5432")
	}
	if cfg.Private.Pg.User != "repline" {
		t.Errorf("pg.User, got: %s, want: %s", cfg.Private.Pg.User, "repline")
	}
	if cfg.Private.Pg.Password != "pass" {
		t.Errorf("pg.Password, got: %s, want: %s", cfg.Private.Pg.Password, "pass")
	}
	if cfg.Private.Pg.Dbname != "repline" {
		t.Errorf("pg.Name, got: %s, want: %s", cfg.Private.Pg.Dbname, "repline")
	}
	if cfg.JwtTTL() != time.Duration(100) {
		t.Errorf("JwtTTL, got: %s, want: %s", fmt.Sprint(cfg.JwtTTL()), "100")
	}
	if cfg.JwtKey() != "123" {
		t.Errorf("private jwtkey, got: %s, want: %s", cfg.JwtKey(), "123")
	}
	if cfg.Public.MaxMessageLen != 5000 {
		t.Errorf("MaxMessageLen, got: %d, want: %d", cfg.Public.MaxMessageLen, 5000)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Public.DefaultPageLimit != 20 {
		t.Errorf("DefaultPageLimit, got: %d, want: %d", cfg.Public.DefaultPageLimit, 20)
	}
	if cfg.Public.MaxPageLimit != 100 {
		t.Errorf("MaxPageLimit, got: %d, want: %d", cfg.Public.MaxPageLimit, 100)
	}
	if cfg.Public.MaxMessageLen != 10_000 {
		t.Errorf("MaxMessageLen, got: %d, want: %d", cfg.Public.MaxMessageLen, 10_000)
	}
	if cfg.Public.MaxTitleLen != 120 {
		t.Errorf("MaxTitleLen, got: %d, want: %d", cfg.Public.MaxTitleLen, 120)
	}
	if len(cfg.Public.AllowedVideoHosts) == 0 {
		t.Error("AllowedVideoHosts should have defaults")
	}
	if cfg.Public.WriteRatePerSec != 1 || cfg.Public.WriteBurst != 5 {
		t.Errorf("write limiter defaults, got: %v/%v", cfg.Public.WriteRatePerSec, cfg.Public.WriteBurst)
	}
}
