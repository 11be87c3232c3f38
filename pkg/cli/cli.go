// Package cli provides the command-line interface for vehiclefactory
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vehiclefactory/vehiclefactory/pkg/demo"
	"github.com/vehiclefactory/vehiclefactory/pkg/logger"
)

// CLI encapsulates the command tree and its injected output streams
type CLI struct {
	config   *Config
	settings *viper.Viper
	rootCmd  *cobra.Command
	logger   logger.Logger
	output   io.Writer
	errorOut io.Writer
}

// NewCLI creates a new CLI instance writing to the process streams
func NewCLI(config *Config) *CLI {
	if config == nil {
		config = NewConfig()
	}

	cli := &CLI{
		config:   config,
		settings: viper.New(),
		output:   os.Stdout,
		errorOut: os.Stderr,
	}

	cli.setupCommands()
	return cli
}

// NewCLIWithOutput creates a CLI with custom output writers (for testing)
func NewCLIWithOutput(config *Config, output, errorOut io.Writer) *CLI {
	cli := NewCLI(config)
	cli.output = output
	cli.errorOut = errorOut
	cli.rootCmd.SetOut(output)
	cli.rootCmd.SetErr(errorOut)
	return cli
}

// Execute runs the CLI with the given arguments
func (c *CLI) Execute(args []string) error {
	return c.ExecuteContext(context.Background(), args)
}

// ExecuteContext runs the CLI with context support
func (c *CLI) ExecuteContext(ctx context.Context, args []string) error {
	c.rootCmd.SetArgs(args)
	return c.rootCmd.ExecuteContext(ctx)
}

func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:   "vehiclefactory",
		Short: "Build region-specific vehicles with abstract factories",
		Long: `vehiclefactory resolves a factory per market region (US, EU, JP) and builds
cars and motorcycles whose model names carry the region specification.

Run without arguments to start the built-in demonstration. Unknown regions are
served by the EU factory.`,

		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initializeConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			demo.Run(c.logger)
			return nil
		},
	}

	c.setupFlags()

	c.rootCmd.Version = c.config.Version
	c.rootCmd.SetVersionTemplate("vehiclefactory v{{.Version}}\n")

	c.rootCmd.AddCommand(c.newBuildCmd())
	c.rootCmd.AddCommand(c.newRegionsCmd())
}

func (c *CLI) setupFlags() {
	flags := c.rootCmd.PersistentFlags()

	flags.String("log-level", c.config.LogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", c.config.LogFormat, "log format (message, pretty)")

	_ = c.settings.BindPFlags(flags)
}

func (c *CLI) initializeConfig(cmd *cobra.Command, args []string) error {
	c.config.LogLevel = c.settings.GetString("log-level")
	c.config.LogFormat = c.settings.GetString("log-format")

	format := logger.ParseFormat(c.config.LogFormat)
	if c.output == os.Stdout {
		c.logger = logger.CreateLogger(c.config.LogLevel, format)
	} else {
		c.logger = logger.CreateLoggerWithOutput(c.config.LogLevel, format, c.output)
	}
	return nil
}

// PrintError writes an error line to w
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", color.RedString("[vehiclefactory]"), message)
}
