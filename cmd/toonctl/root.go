package main

import (
	"io"

	"github.com/Stormrider66/toon/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	ConfigPath string
	LogLevel   string
}

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	flags  globalFlags
	cfg    *config.Config
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "toonctl",
		Short: "Compress and inspect TOON pose sequences",
		Long: `toonctl converts pose frame sequences to and from the TOON format.

Input frames are a JSON array of {"timestamp": seconds, "landmarks": [33 x {x, y, z, visibility}]}.
TOON input may be raw binary, base64 text, the JSON form, or a sealed container;
the kind is detected automatically.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.flags.ConfigPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.flags.LogLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")

	root.AddCommand(
		newCompressCmd(a),
		newDecompressCmd(a),
		newStatsCmd(a),
		newValidateCmd(a),
		newInspectCmd(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.flags.ConfigPath)
	if err != nil {
		return err
	}
	if a.flags.LogLevel != "" {
		cfg.Log.Level = a.flags.LogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	a.log, err = cfg.Log.NewLogger(a.stderr)

	return err
}
