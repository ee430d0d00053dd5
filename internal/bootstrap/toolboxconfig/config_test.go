package toolboxconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func boolPtr(v bool) *bool {
	return &v
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromPathReadsYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  rpcAddr: 127.0.0.1:9999
  rateLimit:
    rps: 5
logging:
  format: text
tools:
  httpTimeout: 3s
  tablePreviewRows: 7
features:
  disabled: [pdf, faker]
`)
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.RPCAddr != "127.0.0.1:9999" {
		t.Fatalf("unexpected rpcAddr %q", cfg.Server.RPCAddr)
	}
	if cfg.Server.RateLimit.RPS != 5 || cfg.Server.RateLimit.Burst != 60 {
		t.Fatalf("unexpected rate limit %+v", cfg.Server.RateLimit)
	}
	if cfg.Logging.Format != "text" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
	if cfg.Tools.HTTPTimeout != 3*time.Second || cfg.Tools.TablePreviewRows != 7 {
		t.Fatalf("unexpected tools %+v", cfg.Tools)
	}
	if strings.Join(cfg.Features.Disabled, ",") != "pdf,faker" {
		t.Fatalf("unexpected disabled features %v", cfg.Features.Disabled)
	}
}

func TestLoadFromPathMissingExplicitFileFails(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadFromPathRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFromPathRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: loud\n")
	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("expected logging.level validation error, got %v", err)
	}
}

func TestMergeDoesNotOverwriteBoolDefaultsWhenUnset(t *testing.T) {
	dst := Default()
	Merge(&dst, File{Server: FileServer{RPCAddr: "127.0.0.1:1"}})
	if !dst.Server.RateLimit.Enabled {
		t.Fatal("unset rateLimit.enabled must keep default")
	}
	Merge(&dst, File{Server: FileServer{RateLimit: FileRateLimit{Enabled: boolPtr(false)}}})
	if dst.Server.RateLimit.Enabled {
		t.Fatal("explicit false must disable rate limiting")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvRPCAddr, "0.0.0.0:8080")
	t.Setenv(EnvRateLimitRPS, "2.5")
	t.Setenv(EnvRateLimitBurst, "4")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvHTTPTimeout, "1500ms")
	t.Setenv(EnvDisabledFeatures, " qrcode, ,http ")

	cfg := Default()
	ApplyEnvOverrides(&cfg)

	if cfg.Server.RPCAddr != "0.0.0.0:8080" {
		t.Fatalf("unexpected rpcAddr %q", cfg.Server.RPCAddr)
	}
	if cfg.Server.RateLimit.RPS != 2.5 || cfg.Server.RateLimit.Burst != 4 {
		t.Fatalf("unexpected rate limit %+v", cfg.Server.RateLimit)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level %q", cfg.Logging.Level)
	}
	if cfg.Tools.HTTPTimeout != 1500*time.Millisecond {
		t.Fatalf("unexpected timeout %s", cfg.Tools.HTTPTimeout)
	}
	if strings.Join(cfg.Features.Disabled, ",") != "qrcode,http" {
		t.Fatalf("unexpected disabled features %v", cfg.Features.Disabled)
	}
}

func TestApplyEnvOverridesIgnoresInvalidValues(t *testing.T) {
	t.Setenv(EnvRateLimitRPS, "fast")
	t.Setenv(EnvRateLimitBurst, "-1")
	t.Setenv(EnvRateLimitEnabled, "maybe")
	t.Setenv(EnvHTTPTimeout, "soon")
	cfg := Default()
	ApplyEnvOverrides(&cfg)
	def := Default()
	if cfg.Server.RateLimit != def.Server.RateLimit || cfg.Tools.HTTPTimeout != def.Tools.HTTPTimeout {
		t.Fatalf("invalid env values must not change config: %+v", cfg)
	}
}

func TestTestEnvironmentDisablesRateLimitUnlessExplicit(t *testing.T) {
	t.Setenv(EnvEnvironment, "test")
	cfg := Default()
	ApplyEnvOverrides(&cfg)
	if cfg.Server.RateLimit.Enabled {
		t.Fatal("expected rate limit disabled in test environment")
	}

	t.Setenv(EnvRateLimitEnabled, "true")
	cfg = Default()
	ApplyEnvOverrides(&cfg)
	if !cfg.Server.RateLimit.Enabled {
		t.Fatal("explicit enable must win over TOOLBOX_ENV=test")
	}
}
