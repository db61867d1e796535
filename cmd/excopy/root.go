package main

import (
	"github.com/spf13/cobra"

	"excopy/internal/config"
	appErrors "excopy/internal/errors"
)

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "excopy",
		Short: "Copy files by extension into a destination directory",
		Long: `excopy selects files from source directories by extension, copies them
into a destination directory under a (possibly changed) target extension,
and renames copies with numeric suffixes when overwriting is disabled.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyEnv()
			if err := cfg.Validate(); err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return run(*cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&cfg.Sources, "source", "s", nil, "source directories to copy from")
	flags.StringVarP(&cfg.DestDir, "dest", "t", "", "destination directory")
	flags.StringSliceVarP(&cfg.Selections, "ext", "e", nil, "extensions or glob patterns to select")
	flags.StringVar(&cfg.TargetExt, "target-ext", "", "extension for copied files (default: keep each source's own)")
	flags.BoolVarP(&cfg.Overwrite, "overwrite", "o", false, "overwrite existing files instead of renaming")
	flags.IntVarP(&cfg.Concurrency, "concurrency", "c", 0, "max concurrent copies (default: number of CPUs)")
	flags.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "print copy decisions without copying")
	flags.BoolVarP(&cfg.Yes, "yes", "y", false, "skip the overwrite confirmation")
	flags.BoolVarP(&cfg.Interactive, "interactive", "i", false, "full-screen progress interface")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose logging")
	flags.StringVar(&cfg.LogFile, "log-file", "", "append structured logs to this file")
	flags.StringVar(&cfg.Lang, "lang", "", "message language (en, de)")

	return cmd
}
