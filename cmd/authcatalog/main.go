package main

import (
	"fmt"
	"os"

	"github.com/ftauth/authcatalog/internal/catalog"
	"github.com/ftauth/authcatalog/internal/config"
	"github.com/ftauth/authcatalog/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:           "authcatalog",
		Short:         "Authentication provider catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file")

	loadConfig := func() (*config.Config, error) {
		if configFile != "" {
			return config.LoadFile(configFile)
		}
		return config.LoadConfig()
	}

	root.AddCommand(newServeCmd(loadConfig), newListCmd(), newSectionsCmd(loadConfig))
	return root
}

type configLoader func() (*config.Config, error)

func newServeCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := load()
			if err != nil {
				return err
			}
			return runServe(conf)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported providers and their IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printProviders(cmd.OutOrStdout())
		},
	}
}

func newSectionsCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:       "sections [screen]",
		Short:     "Print the sections of a screen as JSON",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{catalog.ScreenPicker, catalog.ScreenLink, catalog.ScreenProviders, catalog.ScreenEmail, catalog.ScreenOther},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := load()
			if err != nil {
				return err
			}
			screen := catalog.ScreenPicker
			if len(args) == 1 {
				screen = args[0]
			}
			log, err := logging.New(conf.Log.Level)
			if err != nil {
				return err
			}
			defer log.Sync()

			a, err := newApp(cmd.Context(), conf, log)
			if err != nil {
				return err
			}
			defer a.Close()
			return printSections(cmd.OutOrStdout(), a.catalog, screen)
		},
	}
}
