package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"toolbox/go-backend/internal/bootstrap/toolboxconfig"
)

func TestDoctorDetectsUnavailableAddr(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen temp port: %v", err)
	}
	defer func() {
		if closeErr := ln.Close(); closeErr != nil {
			t.Logf("close temp listener: %v", closeErr)
		}
	}()

	cfg := toolboxconfig.Default()
	cfg.Server.RPCAddr = ln.Addr().String()
	report := New().Run(context.Background(), Input{Config: cfg})
	if report.Ready {
		t.Fatalf("expected readiness fail for busy address, report=%+v", report)
	}
	assertCheck(t, report, "rpc_addr_available", false)
}

func TestDoctorDetectsInvalidConfig(t *testing.T) {
	cfg := toolboxconfig.Default()
	cfg.Server.RPCAddr = "%bad-host%:80"
	cfg.Features.Disabled = []string{"teleport"}
	cfg.Logging.Level = "loud"

	report := New().Run(context.Background(), Input{Config: cfg})
	if report.Ready {
		t.Fatalf("expected readiness fail, report=%+v", report)
	}
	assertCheck(t, report, "config_valid", false)
	assertCheck(t, report, "features_known", false)
	assertCheck(t, report, "rpc_addr_valid", false)
}

func TestDoctorPassesReadyDaemon(t *testing.T) {
	svc := New()
	now := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	svc.probe = func(context.Context, string) (int, error) { return 1, nil }

	cfg := toolboxconfig.Default()
	cfg.Features.Disabled = []string{"pdf"}
	report := svc.Run(context.Background(), Input{Config: cfg, ProbeAddr: "127.0.0.1:8787"})
	if !report.Ready {
		t.Fatalf("expected readiness pass, report=%+v", report)
	}
	assertCheck(t, report, "rpc_api_version_min", true)
	if !report.CheckedAt.Equal(now) {
		t.Fatalf("unexpected checked_at %v", report.CheckedAt)
	}
	if len(report.DisabledFeatures) != 1 || report.DisabledFeatures[0] != "pdf" {
		t.Fatalf("unexpected disabled features %v", report.DisabledFeatures)
	}
}

func TestDoctorReportsUnreachableDaemon(t *testing.T) {
	svc := New()
	svc.probe = func(context.Context, string) (int, error) { return 0, errors.New("connection refused") }
	report := svc.Run(context.Background(), Input{Config: toolboxconfig.Default(), ProbeAddr: "127.0.0.1:1"})
	if report.Ready {
		t.Fatal("expected unreachable daemon to fail readiness")
	}
	assertCheck(t, report, "rpc_reachable", false)
}

func TestProbeAPIVersionReadsRPCVersion(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if r.URL.Path != "/rpc" || !strings.Contains(string(raw), `"rpc.version"`) {
			http.Error(w, "unexpected request", http.StatusBadRequest)
			return
		}
		_, _ = fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"result":{"current_version":3}}`)
	}))
	defer upstream.Close()

	version, err := probeAPIVersion(context.Background(), strings.TrimPrefix(upstream.URL, "http://"))
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if version != 3 {
		t.Fatalf("expected version 3, got %d", version)
	}
}

func assertCheck(t *testing.T, report Report, name string, pass bool) {
	t.Helper()
	for _, c := range report.Checks {
		if c.Name == name {
			if c.Pass != pass {
				t.Fatalf("check %s expected pass=%v got=%v report=%+v", name, pass, c.Pass, report)
			}
			return
		}
	}
	t.Fatalf("check %s not found in report=%+v", name, report)
}
