// Package app wires the tutordexctl commands.
package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kailas-cloud/tutordex/internal/config"
	"github.com/kailas-cloud/tutordex/internal/version"
)

// EnvPrefix is the prefix of environment variables read by tutordexctl.
const EnvPrefix = "TUTORDEX"

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "tutordexctl",
		Short:         "Operate the tutordex tutor directory",
		Long:          "tutordexctl seeds tutor records and runs directory and explore searches from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().String("env", "", "Config environment (local, dev, prod); defaults to $ENV or local")
	root.PersistentFlags().String("log-level", "", "Log level override (debug, info, warn, error)")
	_ = v.BindPFlag("env", root.PersistentFlags().Lookup("env"))
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newSeedCmd(v))
	root.AddCommand(newTutorsCmd(v))
	root.AddCommand(newSubjectsCmd(v))
	root.AddCommand(newVersionCmd())

	return root
}

// resolveEnv picks the config environment: flag, then TUTORDEX_ENV, then ENV.
func resolveEnv(v *viper.Viper) string {
	if env := v.GetString("env"); env != "" {
		return env
	}
	return config.GetEnv()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "tutordexctl "+version.String())
			return err
		},
	}
}
