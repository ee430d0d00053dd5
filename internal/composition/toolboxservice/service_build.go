package toolboxservice

import (
	"log/slog"
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
	"toolbox/go-backend/internal/platform/privacylog"
)

func New(opts Options) *Service {
	opts = ensureOptions(opts)
	faker := fakedata.New()
	if opts.FakerSeed != 0 {
		faker = fakedata.NewSeeded(opts.FakerSeed)
	}
	return &Service{
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		caps:       opts.Capabilities,
		now:        opts.Now,
		calculator: calc.New(),
		random:     randgen.New(),
		tables: tabular.NewConverter(tabular.Options{
			Patterns:    opts.Tools.UploadPatterns,
			PreviewRows: opts.Tools.TablePreviewRows,
		}),
		images: imaging.NewProcessor(opts.Tools.ImagePatterns),
		fetcher: webfetch.NewFetcher(webfetch.Options{
			Timeout:      opts.Tools.HTTPTimeout,
			PreviewChars: opts.Tools.HTTPBodyPreviewChars,
			Client:       opts.HTTPClient,
		}),
		faker: faker,
	}
}

// NewFromConfig builds the capability set from cfg and wires the service.
func NewFromConfig(cfg toolboxconfig.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Service, error) {
	caps, err := capability.NewSet(cfg.Features.Disabled)
	if err != nil {
		return nil, err
	}
	svc := New(Options{
		Logger:       logger,
		Metrics:      recorder,
		Capabilities: caps,
		Tools:        cfg.Tools,
	})
	if missing := caps.Missing(); len(missing) > 0 {
		svc.logWarn("build", "n/a", "optional features disabled", "features", missing)
	}
	return svc, nil
}

func ensureOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	opts.Logger = slog.New(privacylog.WrapHandler(opts.Logger.Handler()))
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}

// Capabilities exposes the read-only feature set.
func (s *Service) Capabilities() capability.Set {
	return s.caps
}
