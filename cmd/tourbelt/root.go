package main

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/forest/internal/config"
	"github.com/katalvlaran/forest/tourbelt"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "tourbelt [input]",
		Short: "Count tour belts in synergy graphs",
		Long: "tourbelt reads T cases of \"n m\" followed by m \"u v k\" edges and prints, " +
			"per case, the total size of all tour belts.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(v, cfgFile); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			return run(cmd, args, cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default .tourbelt.yaml)")
	flags.StringP("output", "o", "", "write answers to this file instead of stdout")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	_ = v.BindPFlag("output", flags.Lookup("output"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log_format", flags.Lookup("log-format"))

	return cmd
}

func run(cmd *cobra.Command, args []string, cfg config.Config, logger *slog.Logger) error {
	in, name := cmd.InOrStdin(), "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		in, name = f, args[0]
	}

	out := cmd.OutOrStdout()
	var file *os.File
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		out, file = f, f
	}

	logger.Info("tourbelt: solving", slog.String("input", name), slog.String("output", outputName(cfg)))
	if err := (&tourbelt.Solver{Logger: logger}).Solve(in, out); err != nil {
		return errors.Wrap(err, name)
	}
	if file != nil {
		return errors.Wrap(file.Sync(), "sync output")
	}

	return nil
}

func outputName(cfg config.Config) string {
	if cfg.Output == "" {
		return "stdout"
	}

	return cfg.Output
}
