package daemonserver

import (
	"io"
	"os"
	"strings"

	"toolbox/go-backend/internal/adapters/rpc"
	"toolbox/go-backend/internal/bootstrap/toolboxconfig"
	"toolbox/go-backend/internal/composition/servicefactory"
	"toolbox/go-backend/internal/platform/ratelimiter"
)

// Options are the command-line overrides applied on top of the loaded config.
type Options struct {
	ConfigPath string
	RPCAddr    string
	LogLevel   string
	Disabled   []string
	LogOutput  io.Writer
}

// NewRPCServerWithOptions loads config, wires the tool service and returns the RPC transport.
func NewRPCServerWithOptions(opts Options) (*rpc.Server, error) {
	cfg, err := toolboxconfig.LoadFromPath(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if addr := strings.TrimSpace(opts.RPCAddr); addr != "" {
		cfg.Server.RPCAddr = addr
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	cfg.Features.Disabled = append(cfg.Features.Disabled, opts.Disabled...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	bundle, err := servicefactory.BuildToolboxService(cfg, out)
	if err != nil {
		return nil, err
	}
	return rpc.NewServer(bundle.Service, rpc.Options{
		Addr:         cfg.Server.RPCAddr,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		RateLimit: ratelimiter.Config{
			Enabled: cfg.Server.RateLimit.Enabled,
			RPS:     cfg.Server.RateLimit.RPS,
			Burst:   cfg.Server.RateLimit.Burst,
		},
		Metrics: bundle.Metrics,
		Logger:  bundle.Logger,
	}), nil
}
