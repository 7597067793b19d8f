// Command dial renders single-metric radial gauges.
//
// Usage:
//
//	dial render --props chart.json --out dial.png
//	dial render --props chart.yaml --out frames/dial.png --fps 30
//	dial schema
//	dial serve --addr :8080
//
// Settings come from flags, a config file (--config) and DIAL_*
// environment variables, in that order of precedence.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/dial"
	"github.com/gogpu/dial/internal/logging"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the state shared by the subcommands.
type app struct {
	v      *viper.Viper
	log    zerolog.Logger
	logOut io.Writer
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop(), logOut: logOut}

	root := &cobra.Command{
		Use:           "dial",
		Short:         "Render single-metric radial gauges",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (json, yaml or toml)")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "log format (console, json)")
	_ = a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(
		a.newRenderCmd(),
		a.newSchemaCmd(),
		a.newServeCmd(),
		newVersionCmd(),
	)
	return root
}

// init loads configuration and installs the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("DIAL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	l, err := logging.New(a.logOut, logging.Options{
		Level:       a.v.GetString("log.level"),
		Format:      logging.Format(a.v.GetString("log.format")),
		NoTimestamp: a.v.GetBool("log.no_timestamp"),
	})
	if err != nil {
		return err
	}
	a.log = l
	dial.SetLogger(logging.NewSlogLogger(l))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dial %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
		},
	}
}
