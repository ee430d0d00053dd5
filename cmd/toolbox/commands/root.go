package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"toolbox/go-backend/internal/bootstrap/toolboxconfig"
	"toolbox/go-backend/internal/composition/servicefactory"
	"toolbox/go-backend/internal/composition/toolboxservice"
)

var (
	configPath string
	disabled   []string
	logLevel   string
	outDir     string

	svc *toolboxservice.Service
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "toolbox",
		Short:        "Run the toolbox utilities from a terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := toolboxconfig.LoadFromPath(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			cfg.Features.Disabled = append(cfg.Features.Disabled, disabled...)
			if err := cfg.Validate(); err != nil {
				return err
			}
			bundle, err := servicefactory.BuildToolboxService(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			svc = bundle.Service
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (optional)")
	root.PersistentFlags().StringSliceVar(&disabled, "disable", nil, "optional features to disable (qrcode,imaging,tables,pdf,http,faker)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level written to stderr (overrides logging.level)")
	root.PersistentFlags().StringVarP(&outDir, "out", "o", ".", "directory for generated files")

	root.AddCommand(
		overviewCmd(),
		calcCmd(),
		convertCmd(),
		randomCmd(),
		encodeCmd(),
		hashCmd(),
		textCmd(),
		fileCmd(),
		qrCmd(),
		imageCmd(),
		pdfCmd(),
		getCmd(),
		dateCmd(),
		colorCmd(),
		fakeCmd(),
		deployCmd(),
		doctorCmd(),
	)
	return root
}
