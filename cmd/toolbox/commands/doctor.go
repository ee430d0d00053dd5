package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"toolbox/go-backend/internal/bootstrap/toolboxconfig"
	"toolbox/go-backend/internal/doctor"
)

func doctorCmd() *cobra.Command {
	var probeAddr string
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check config, listen address and an optional running daemon",
		Args:  cobra.NoArgs,
		// The doctor reports config problems instead of failing before it runs.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := toolboxconfig.LoadFromPath(configPath)
			if err != nil {
				return err
			}
			cfg.Features.Disabled = append(cfg.Features.Disabled, disabled...)
			report := doctor.New().Run(cmd.Context(), doctor.Input{Config: cfg, ProbeAddr: probeAddr})
			if err := printJSON(cmd, report); err != nil {
				return err
			}
			if !report.Ready {
				return errors.New("doctor: not ready")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&probeAddr, "probe", "", "host:port of a running toolboxd to probe")
	return cmd
}
