package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AEPP294/jetson-stats/src/config"
	"github.com/AEPP294/jetson-stats/src/logging"
	"github.com/AEPP294/jetson-stats/src/report"
)

// RootCmd renders one jtop CSV log into a PNG figure saved next to it.
// Settings come from JTOPPLOT_* environment variables.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jtopplot <telemetry.csv>",
		Short: "jtopplot plots a jtop telemetry log as a seven-panel PNG.",
		Long: `jtopplot reads a CSV log recorded by jtop on a Jetson module and saves
temperature, CPU, GPU, power and HW engine charts as <name>.png in the
same directory.

Environment:
  JTOPPLOT_LOG_LEVEL     debug, info, warn or error (default info)
  JTOPPLOT_WIDTH         figure width in pixels (default 1800)
  JTOPPLOT_HEIGHT        figure height in pixels (default 1200)
  JTOPPLOT_TITLE_PREFIX  figure title before the file name`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.SetLogLevel(cfg.LogLevel)

			g := report.NewGenerator(cfg)
			g.SetOutput(cmd.OutOrStdout())
			_, err = g.Run(args[0])
			return err
		},
	}
	return cmd
}
