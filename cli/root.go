// Package cli implements the dailyctl command tree.
package cli

import (
	"context"
	"dailyco/core"
	"dailyco/daily"
	"dailyco/factories"
	"dailyco/protocol"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Version is overridden at build time.
var Version = "dev"

// app carries what commands share after PersistentPreRunE has run.
type app struct {
	configPath string
	settings   factories.Settings
	logger     *core.Logger
	client     *daily.Client
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "dailyctl",
		Short:         "Manage Daily rooms, meeting tokens and recordings",
		Long:          "dailyctl drives the Daily REST API: create and inspect rooms, issue or self-sign meeting tokens, and fetch recordings.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config.toml (default $XDG_CONFIG_HOME/dailyctl/config.toml)")

	rootCmd.AddCommand(newRoomsCmd(a))
	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newRecordingsCmd(a))
	rootCmd.AddCommand(newFieldsCmd())

	return rootCmd
}

func (a *app) load() error {
	settings, err := factories.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	logger, err := factories.BuildLogger(settings)
	if err != nil {
		return err
	}
	core.SetLogger(logger)
	a.settings = settings
	a.logger = logger
	return nil
}

// dailyClient builds the REST client on first use so offline commands work
// without an API key.
func (a *app) dailyClient() (*daily.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	c, err := factories.BuildClient(a.settings, a.logger)
	if err != nil {
		return nil, err
	}
	a.client = c
	return c, nil
}

// commandContext tags the command's context with a logger naming the command.
func (a *app) commandContext(cmd *cobra.Command) context.Context {
	logger := a.logger.With(map[string]interface{}{"command": cmd.CommandPath()})
	return core.ContextWithLogger(cmd.Context(), logger)
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := protocol.MarshalIndent(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

// setter is implemented by the room and token builders.
type setter interface {
	Set(key, raw string) error
}

// applySets feeds repeated --set key=value flags into b.
func applySets(b setter, sets []string) error {
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return fmt.Errorf("--set %q: expected key=value", kv)
		}
		if err := b.Set(key, value); err != nil {
			return fmt.Errorf("--set %q: %w", kv, err)
		}
	}
	return nil
}
