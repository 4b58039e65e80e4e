package web

import (
	"context"
	"flag"
	"io"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.LogEnv != "development" {
		t.Fatalf("LogEnv = %q, want %q", cfg.LogEnv, "development")
	}
}

func TestParseConfigEnvOverridesDefaults(t *testing.T) {
	t.Setenv("FOODGRAM_WEB_HTTP_ADDR", "env-web:9000")
	t.Setenv("FOODGRAM_WEB_LOG_ENV", "production")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "env-web:9000" {
		t.Fatalf("HTTPAddr = %q, want env value", cfg.HTTPAddr)
	}
	if cfg.LogEnv != "production" {
		t.Fatalf("LogEnv = %q, want env value", cfg.LogEnv)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("FOODGRAM_WEB_HTTP_ADDR", "env-web:9000")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002", "-log-env", "production"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.LogEnv != "production" {
		t.Fatalf("LogEnv = %q, want %q", cfg.LogEnv, "production")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-game-addr", "x"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestRunRejectsUnknownLogEnv(t *testing.T) {
	err := Run(context.Background(), Config{HTTPAddr: "127.0.0.1:0", LogEnv: "verbose"})
	if err == nil {
		t.Fatal("expected log environment error")
	}
}
