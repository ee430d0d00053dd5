package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalcPrintsResult(t *testing.T) {
	out, _, err := runCLI(t, "calc", "2*(3+4)/7")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	if out != "2.0\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCalcRejectsDisallowedInput(t *testing.T) {
	out, _, err := runCLI(t, "calc", "import os")
	if err == nil {
		t.Fatal("expected failure for disallowed characters")
	}
	if !strings.Contains(out, "Disallowed character in expression") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConvertTemperature(t *testing.T) {
	out, _, err := runCLI(t, "convert", "temperature", "0", "C", "F")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if strings.TrimSpace(out) != "0.0 C = 32.0 F" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestColorRGB(t *testing.T) {
	out, _, err := runCLI(t, "color", "rgb", "#ff8800")
	if err != nil {
		t.Fatalf("color: %v", err)
	}
	if strings.TrimSpace(out) != "255 136 0" {
		t.Fatalf("unexpected output %q", out)
	}
	if _, _, err := runCLI(t, "color", "rgb", "#fff"); err == nil {
		t.Fatal("expected short hex to fail")
	}
}

func TestRandomPasswordHonorsLength(t *testing.T) {
	out, _, err := runCLI(t, "random", "password", "--length", "24", "--no-symbols")
	if err != nil {
		t.Fatalf("password: %v", err)
	}
	if got := strings.TrimSpace(out); len(got) != 24 || strings.ContainsAny(got, "!@#$%^&*()") {
		t.Fatalf("unexpected password %q", got)
	}
}

func TestQRWritesPNG(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := runCLI(t, "--out", dir, "qr", "hello")
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "qrcode.png"))
	if err != nil {
		t.Fatalf("read png: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("expected PNG signature")
	}
	if !strings.Contains(stderr, "saved") {
		t.Fatalf("expected save notice, got %q", stderr)
	}
}

func TestDisabledFeatureFails(t *testing.T) {
	if _, _, err := runCLI(t, "--disable", "qrcode", "qr", "hello"); err == nil {
		t.Fatal("expected disabled qrcode to fail")
	}
	out, _, err := runCLI(t, "--disable", "qrcode", "overview")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if !strings.Contains(out, "Optional features disabled: qrcode") {
		t.Fatalf("expected warning in overview, got %s", out)
	}
}

func TestFileConvertCSVWritesJSON(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "people.csv")
	if err := os.WriteFile(src, []byte("name,age\nada,36\n"), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	out, _, err := runCLI(t, "--out", dir, "file", "convert", src)
	if err != nil {
		t.Fatalf("file convert: %v", err)
	}
	if !strings.Contains(out, `"kind": "csv"`) {
		t.Fatalf("unexpected output %s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "people.json")); err != nil {
		t.Fatalf("expected people.json: %v", err)
	}
}

func TestDeploySaveDockerfile(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := runCLI(t, "--out", dir, "deploy", "save", "Dockerfile"); err != nil {
		t.Fatalf("deploy save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Dockerfile"))
	if err != nil {
		t.Fatalf("read Dockerfile: %v", err)
	}
	if !strings.Contains(string(data), "./cmd/toolboxd") {
		t.Fatal("Dockerfile should build toolboxd")
	}
	if _, _, err := runCLI(t, "deploy", "save", "nothing.txt"); err == nil {
		t.Fatal("expected unknown artifact to fail")
	}
}

func TestDoctorFlagsUnknownFeature(t *testing.T) {
	out, _, err := runCLI(t, "--disable", "teleport", "doctor", "--probe", "127.0.0.1:1")
	if err == nil {
		t.Fatal("expected doctor to report not ready")
	}
	if !strings.Contains(out, `"features_known"`) || !strings.Contains(out, `"ready": false`) {
		t.Fatalf("unexpected report %s", out)
	}
}

func TestLogLevelFromConfigAndEnvSurvivesWithoutFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, stderr, err := runCLI(t, "--config", cfgPath, "calc", "1+1")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	if !strings.Contains(stderr, "tool invoked") {
		t.Fatalf("expected debug record from config level, got %q", stderr)
	}

	t.Setenv("TOOLBOX_LOG_LEVEL", "debug")
	_, stderr, err = runCLI(t, "calc", "1+1")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	if !strings.Contains(stderr, "tool invoked") {
		t.Fatalf("expected debug record from env level, got %q", stderr)
	}

	_, stderr, err = runCLI(t, "--log-level", "error", "calc", "1+1")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	if strings.Contains(stderr, "tool invoked") {
		t.Fatalf("explicit --log-level should win over env, got %q", stderr)
	}
}
