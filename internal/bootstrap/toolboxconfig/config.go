package toolboxconfig

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvRPCAddr          = "TOOLBOX_RPC_ADDR"
	EnvMaxBodyBytes     = "TOOLBOX_RPC_MAX_BODY_BYTES"
	EnvRateLimitEnabled = "TOOLBOX_RPC_RATE_LIMIT_ENABLED"
	EnvRateLimitRPS     = "TOOLBOX_RPC_RATE_LIMIT_RPS"
	EnvRateLimitBurst   = "TOOLBOX_RPC_RATE_LIMIT_BURST"
	EnvLogLevel         = "TOOLBOX_LOG_LEVEL"
	EnvLogFormat        = "TOOLBOX_LOG_FORMAT"
	EnvHTTPTimeout      = "TOOLBOX_HTTP_TIMEOUT"
	EnvDisabledFeatures = "TOOLBOX_DISABLED_FEATURES"
	EnvEnvironment      = "TOOLBOX_ENV"
)

type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Tools    ToolsConfig
	Features FeaturesConfig
}

type ServerConfig struct {
	RPCAddr      string
	MaxBodyBytes int64
	RateLimit    RateLimitConfig
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ToolsConfig struct {
	HTTPTimeout          time.Duration
	HTTPBodyPreviewChars int
	UploadPatterns       []string
	ImagePatterns        []string
	TablePreviewRows     int
}

type FeaturesConfig struct {
	Disabled []string
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			RPCAddr:      "127.0.0.1:8787",
			MaxBodyBytes: 16 << 20,
			RateLimit:    RateLimitConfig{Enabled: true, RPS: 30, Burst: 60},
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Tools: ToolsConfig{
			HTTPTimeout:          10 * time.Second,
			HTTPBodyPreviewChars: 5000,
			UploadPatterns:       []string{"*.{csv,json,xlsx,yaml,yml,hcl}"},
			ImagePatterns:        []string{"*.{png,jpg,jpeg,gif,bmp,webp}"},
			TablePreviewRows:     100,
		},
	}
}

// File mirrors configs/config.yaml. Pointer fields distinguish "unset" from
// an explicit zero value.
type File struct {
	Server   FileServer   `yaml:"server"`
	Logging  FileLogging  `yaml:"logging"`
	Tools    FileTools    `yaml:"tools"`
	Features FileFeatures `yaml:"features"`
}

type FileServer struct {
	RPCAddr      string        `yaml:"rpcAddr"`
	MaxBodyBytes int64         `yaml:"maxBodyBytes"`
	RateLimit    FileRateLimit `yaml:"rateLimit"`
}

type FileRateLimit struct {
	Enabled *bool   `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

type FileLogging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type FileTools struct {
	HTTPTimeout          time.Duration `yaml:"httpTimeout"`
	HTTPBodyPreviewChars int           `yaml:"httpBodyPreviewChars"`
	UploadPatterns       []string      `yaml:"uploadPatterns"`
	ImagePatterns        []string      `yaml:"imagePatterns"`
	TablePreviewRows     int           `yaml:"tablePreviewRows"`
}

type FileFeatures struct {
	Disabled []string `yaml:"disabled"`
}

var defaultCandidates = []string{
	"go-backend/configs/config.yaml",
	"configs/config.yaml",
}

// LoadFromPath reads configPath, or the first readable default candidate when
// configPath is empty, then applies env overrides and validates the result.
// A missing explicit path is an error; missing default candidates are not.
func LoadFromPath(configPath string) (Config, error) {
	cfg := Default()

	candidates := defaultCandidates
	if configPath != "" {
		candidates = []string{configPath}
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if configPath != "" {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
			continue
		}
		var parsed File
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		Merge(&cfg, parsed)
		break
	}

	ApplyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Merge(dst *Config, src File) {
	if src.Server.RPCAddr != "" {
		dst.Server.RPCAddr = src.Server.RPCAddr
	}
	if src.Server.MaxBodyBytes != 0 {
		dst.Server.MaxBodyBytes = src.Server.MaxBodyBytes
	}
	if src.Server.RateLimit.Enabled != nil {
		dst.Server.RateLimit.Enabled = *src.Server.RateLimit.Enabled
	}
	if src.Server.RateLimit.RPS != 0 {
		dst.Server.RateLimit.RPS = src.Server.RateLimit.RPS
	}
	if src.Server.RateLimit.Burst != 0 {
		dst.Server.RateLimit.Burst = src.Server.RateLimit.Burst
	}
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}
	if src.Tools.HTTPTimeout != 0 {
		dst.Tools.HTTPTimeout = src.Tools.HTTPTimeout
	}
	if src.Tools.HTTPBodyPreviewChars != 0 {
		dst.Tools.HTTPBodyPreviewChars = src.Tools.HTTPBodyPreviewChars
	}
	if src.Tools.UploadPatterns != nil {
		dst.Tools.UploadPatterns = src.Tools.UploadPatterns
	}
	if src.Tools.ImagePatterns != nil {
		dst.Tools.ImagePatterns = src.Tools.ImagePatterns
	}
	if src.Tools.TablePreviewRows != 0 {
		dst.Tools.TablePreviewRows = src.Tools.TablePreviewRows
	}
	if src.Features.Disabled != nil {
		dst.Features.Disabled = src.Features.Disabled
	}
}

// ApplyEnvOverrides applies TOOLBOX_* variables. Unparseable values are ignored.
func ApplyEnvOverrides(cfg *Config) {
	if v := envString(EnvRPCAddr); v != "" {
		cfg.Server.RPCAddr = v
	}
	if raw := envString(EnvMaxBodyBytes); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			cfg.Server.MaxBodyBytes = parsed
		}
	}
	if enabled, ok := envBool(EnvRateLimitEnabled); ok {
		cfg.Server.RateLimit.Enabled = enabled
	} else {
		switch strings.ToLower(envString(EnvEnvironment)) {
		case "test", "testing":
			cfg.Server.RateLimit.Enabled = false
		}
	}
	if raw := envString(EnvRateLimitRPS); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed > 0 {
			cfg.Server.RateLimit.RPS = parsed
		}
	}
	if raw := envString(EnvRateLimitBurst); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			cfg.Server.RateLimit.Burst = parsed
		}
	}
	if v := envString(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := envString(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if raw := envString(EnvHTTPTimeout); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			cfg.Tools.HTTPTimeout = parsed
		}
	}
	if raw, ok := os.LookupEnv(EnvDisabledFeatures); ok {
		cfg.Features.Disabled = SplitList(raw)
	}
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.RPCAddr) == "" {
		errs = append(errs, errors.New("server.rpcAddr is required"))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("server.maxBodyBytes must be positive"))
	}
	if c.Server.RateLimit.Enabled && (c.Server.RateLimit.RPS <= 0 || c.Server.RateLimit.Burst <= 0) {
		errs = append(errs, errors.New("server.rateLimit rps and burst must be positive when enabled"))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be json or text", c.Logging.Format))
	}
	if c.Tools.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("tools.httpTimeout must be positive"))
	}
	if c.Tools.HTTPBodyPreviewChars <= 0 {
		errs = append(errs, errors.New("tools.httpBodyPreviewChars must be positive"))
	}
	if c.Tools.TablePreviewRows <= 0 {
		errs = append(errs, errors.New("tools.tablePreviewRows must be positive"))
	}
	return errors.Join(errs...)
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envBool(key string) (bool, bool) {
	raw := envString(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
