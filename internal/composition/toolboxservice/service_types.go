package toolboxservice

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"toolbox/go-backend/internal/bootstrap/toolboxconfig"
	"toolbox/go-backend/internal/domains/calc"
	"toolbox/go-backend/internal/domains/capability"
	"toolbox/go-backend/internal/domains/fakedata"
	"toolbox/go-backend/internal/domains/imaging"
	"toolbox/go-backend/internal/domains/randgen"
	"toolbox/go-backend/internal/domains/tabular"
	"toolbox/go-backend/internal/domains/webfetch"
	"toolbox/go-backend/internal/platform/metrics"
)

// Options configures New. Zero values fall back to defaults.
type Options struct {
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
	Capabilities capability.Set
	Tools        toolboxconfig.ToolsConfig
	HTTPClient   *http.Client
	Now          func() time.Time
	FakerSeed    uint64
}

type Service struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	caps    capability.Set
	now     func() time.Time

	invocations atomic.Uint64

	calculator *calc.Calculator
	random     *randgen.Generator
	tables     *tabular.Converter
	images     *imaging.Processor
	fetcher    *webfetch.Fetcher
	faker      *fakedata.Generator
}
