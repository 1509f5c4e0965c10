// Package commands implements the CLI commands for the taxa label picker.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/taxa/internal/app"
	"go.trai.ch/taxa/internal/build"
	"go.trai.ch/taxa/internal/core/ports"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for taxa.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Pick(ctx context.Context, cwd string, opts app.PickOptions) error
	Show(ctx context.Context, cwd string, opts app.ShowOptions) error
	Search(ctx context.Context, cwd, name string, opts app.SearchOptions) error
}

// New creates a new CLI instance with the given app. logger is configured
// by the global logging flags when it supports them.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "taxa",
		Short:         "Pick labels from hierarchical label trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Directory to search for taxa.yaml from")
	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON")
	rootCmd.PersistentFlags().String("log-level", "info", "Minimum log level: debug, info, warn or error")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.configureLogger

	rootCmd.AddCommand(c.newPickCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configureLogger(cmd *cobra.Command, _ []string) error {
	jsonLog, _ := cmd.Flags().GetBool("json-log")
	levelName, _ := cmd.Flags().GetString("log-level")

	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return zerr.With(zerr.Wrap(err, "invalid log level"), "level", levelName)
	}

	if l, ok := c.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(jsonLog)
	}
	if l, ok := c.logger.(interface{ SetLevel(level slog.Level) }); ok {
		l.SetLevel(level)
	}
	return nil
}

// workDir resolves the --dir flag to an absolute path.
func workDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" || dir == "." {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve directory"), "dir", dir)
	}
	return abs, nil
}
