package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/fretdex/config"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Finds playable chord shapes",
	Long: `fretdex finds every playable way to fret a chord on a stringed instrument.

Shapes are searched string by string under a constraint profile (fingers,
fret span, barres, open and muted strings, root in the bass), then shapes
that only mute strings another shape plays are dropped.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		optional := !cmd.Flags().Changed("config")
		cfg, err = config.Load(configPath, optional)
		if err != nil {
			return err
		}
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", constants.DefaultConfigPath, "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}
