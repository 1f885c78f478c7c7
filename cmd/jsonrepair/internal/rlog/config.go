package rlog

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for log configuration, letting callers
// rename flags while keeping sensible defaults via [NewConfig].
type Flags struct {
	Level  string
	Format string
}

// NewConfig creates a [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds CLI flag values for log configuration. Create with
// [NewConfig], optionally register CLI flags with [Config.RegisterFlags]
// (which overwrites Level/Format with their registered defaults), and
// build a [Handler] with [Config.NewHandler].
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig returns a Config with the default flag names "log-level" and
// "log-format", and default values "info"/"text" usable without ever
// calling RegisterFlags.
func NewConfig() *Config {
	c := Flags{Level: "log-level", Format: "log-format"}.NewConfig()
	c.Level = "info"
	c.Format = "text"
	return c
}

// RegisterFlags adds logging flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, "info",
		fmt.Sprintf("log level, one of: %s", AllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, "text",
		fmt.Sprintf("log format, one of: %s", AllFormatStrings()))
}

// RegisterCompletions registers shell completions for the log flags.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Level,
		cobra.FixedCompletions(AllLevelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering log-level completion: %w", err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(AllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering log-format completion: %w", err)
	}

	return nil
}

// NewHandler builds a Handler from c's current flag values, writing to w.
func (c *Config) NewHandler(w io.Writer) (Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}
