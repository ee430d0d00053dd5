package servicefactory

import (
	"io"
	"log/slog"

	"toolbox/go-backend/internal/bootstrap/toolboxconfig"
	"toolbox/go-backend/internal/composition/toolboxservice"
	"toolbox/go-backend/internal/platform/metrics"
)

// Bundle carries everything a process entry point needs after wiring.
type Bundle struct {
	Config  toolboxconfig.Config
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	Service *toolboxservice.Service
}

// BuildToolboxService composes the logger, metrics recorder and tool service from cfg.
func BuildToolboxService(cfg toolboxconfig.Config, logOutput io.Writer) (Bundle, error) {
	logger, err := toolboxservice.NewLogger(cfg.Logging, logOutput)
	if err != nil {
		return Bundle{}, err
	}
	recorder := metrics.New()
	svc, err := toolboxservice.NewFromConfig(cfg, logger, recorder)
	if err != nil {
		return Bundle{}, err
	}
	return Bundle{Config: cfg, Logger: logger, Metrics: recorder, Service: svc}, nil
}
