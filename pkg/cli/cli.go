// Package cli implements the bitop command line tool.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/xuperchain/log15"
)

// CommandFunc builds one subcommand of the Cli.
type CommandFunc func(c *Cli) *cobra.Command

// Commands collects the subcommands registered by init functions.
var Commands []CommandFunc

// AddCommand registers a subcommand for every Cli.
func AddCommand(cmd CommandFunc) {
	Commands = append(Commands, cmd)
}

// Cli is the context shared by all subcommands.
type Cli struct {
	Config Config

	rootCmd *cobra.Command
	viper   *viper.Viper
	logger  log.Logger
	layouts *LayoutRegistry
}

// NewCli creates a Cli with its root command and persistent flags.
func NewCli() *Cli {
	c := &Cli{
		Config: DefaultConfig(),
		viper:  viper.New(),
		logger: log.New("module", "bitop"),
	}
	c.logger.SetHandler(log.DiscardHandler())

	c.rootCmd = &cobra.Command{
		Use:           "bitop",
		Short:         "Evaluate bit operations on integer operands",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load()
		},
	}
	return c
}

// SetVersion sets the string printed by --version.
func (c *Cli) SetVersion(ver string) {
	c.rootCmd.Version = ver
}

// Init declares the global flags and binds them into the configuration.
// Priority: command line, then BITOP_* environment, then config file, then defaults.
func (c *Cli) Init() error {
	flags := c.rootCmd.PersistentFlags()
	flags.StringP("conf", "C", "", "config file (yaml, json or toml)")
	flags.UintP("width", "w", c.Config.Width, "operand width in bits: 8, 16, 32 or 64")
	flags.StringP("format", "f", c.Config.Format, "output format: bin, hex, dec or all")
	flags.Bool("checked", c.Config.Checked, "reject out-of-range positions, fields and rotations")
	flags.String("log-level", c.Config.LogLevel, "log level: debug, info, warn, error, crit")
	flags.String("log-format", c.Config.LogFormat, "log format: logfmt or json")

	if err := c.viper.BindPFlags(flags); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	c.viper.SetEnvPrefix("BITOP")
	c.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.viper.AutomaticEnv()
	return nil
}

// AddCommands adds sub commands to the root command.
func (c *Cli) AddCommands(cmds []CommandFunc) {
	for _, cmd := range cmds {
		c.rootCmd.AddCommand(cmd(c))
	}
}

// SetArgs overrides os.Args[1:], mostly for tests.
func (c *Cli) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command output and the logs.
func (c *Cli) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// Execute runs the command line.
func (c *Cli) Execute() error {
	return c.rootCmd.Execute()
}

// Logger returns the module logger, usable once the configuration is loaded.
func (c *Cli) Logger() log.Logger {
	return c.logger
}

// load reads the configuration and sets up logging and layouts. It runs before every subcommand.
func (c *Cli) load() error {
	if path := c.viper.GetString("conf"); path != "" {
		c.viper.SetConfigFile(path)
		if err := c.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := c.viper.Unmarshal(&c.Config); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := c.Config.Validate(); err != nil {
		return err
	}

	if err := c.setupLogger(); err != nil {
		return err
	}

	layouts, err := NewLayoutRegistry(c.Config.Layouts)
	if err != nil {
		return err
	}
	c.layouts = layouts

	c.logger.Debug("configuration loaded", "width", c.Config.Width, "format", c.Config.Format,
		"checked", c.Config.Checked, "layouts", len(c.Config.Layouts), "file", c.viper.ConfigFileUsed())
	return nil
}

func (c *Cli) setupLogger() error {
	lvl, err := log.LvlFromString(c.Config.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", c.Config.LogLevel, err)
	}

	lfmt := log.LogfmtFormat()
	if c.Config.LogFormat == "json" {
		lfmt = log.JsonFormat()
	}

	c.logger.SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(c.rootCmd.ErrOrStderr(), lfmt)))
	return nil
}
