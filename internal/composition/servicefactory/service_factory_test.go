package servicefactory

import (
	"bytes"
	"strings"
	"testing"

	"toolbox/go-backend/internal/bootstrap/toolboxconfig"
	"toolbox/go-backend/internal/domains/capability"
)

func TestBuildToolboxServiceHonorsDisabledFeatures(t *testing.T) {
	cfg := toolboxconfig.Default()
	cfg.Features.Disabled = []string{capability.Faker}
	var logs bytes.Buffer
	bundle, err := BuildToolboxService(cfg, &logs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if bundle.Service == nil || bundle.Metrics == nil || bundle.Logger == nil {
		t.Fatalf("incomplete bundle: %+v", bundle)
	}
	if bundle.Service.Capabilities().Enabled(capability.Faker) {
		t.Fatal("faker must be disabled")
	}
	if !strings.Contains(logs.String(), "faker") {
		t.Fatalf("expected disabled feature warning, got %s", logs.String())
	}
}

func TestBuildToolboxServiceRejectsBadLogLevel(t *testing.T) {
	cfg := toolboxconfig.Default()
	cfg.Logging.Level = "loud"
	if _, err := BuildToolboxService(cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected invalid log level to fail")
	}
}
