package main

import (
	"fmt"
	"os"

	"galerij/config"
	"galerij/helper"
	"galerij/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the galerij database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Setup(config.Get())
		},
	}

	actions := []struct {
		name  string
		short string
		run   func(*config.Config) error
	}{
		{name: helper.ActionUp, short: "Apply all pending migrations", run: helper.Up},
		{name: helper.ActionDown, short: "Roll back the last migration", run: helper.Down},
		{name: helper.ActionStepUp, short: "Apply the next pending migration", run: helper.StepUp},
		{name: helper.ActionDrop, short: "Roll back every migration", run: helper.Drop},
	}

	for _, action := range actions {
		root.AddCommand(&cobra.Command{
			Use:   action.name,
			Short: action.short,
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				if err := action.run(config.Get()); err != nil {
					log.Error().Err(err).Str("action", action.name).Msg("migration failed")

					return err
				}

				return nil
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, dirty, err := helper.Version(config.Get())
			if err != nil {
				log.Error().Err(err).Msg("failed to read schema version")

				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)

			return err
		},
	})

	return root
}
