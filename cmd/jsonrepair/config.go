package main

import (
	"github.com/spf13/pflag"

	"github.com/go-jsonrepair/jsonrepair"
	"github.com/go-jsonrepair/jsonrepair/cmd/jsonrepair/internal/rlog"
)

// Config holds the CLI's own flag values, separate from rlog's logging
// flags so each can be registered, tested, and renamed independently.
type Config struct {
	MaxDepth int
	Capacity int
	Diff     bool
	Output   string

	Log *rlog.Config
}

// NewConfig returns a Config with its log sub-config wired in and usable
// defaults, without requiring RegisterFlags to be called first.
func NewConfig() *Config {
	return &Config{Capacity: 512, Log: rlog.NewConfig()}
}

// RegisterFlags adds this command's flags to flags, including the
// embedded logging flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.MaxDepth, "max-depth", 0, "maximum container nesting depth (0 = unbounded)")
	flags.IntVar(&c.Capacity, "capacity", 512, "initial output buffer capacity hint, in bytes")
	flags.BoolVar(&c.Diff, "diff", false, "print a unified diff of input vs. repaired output instead of the output itself")
	flags.StringVarP(&c.Output, "output", "o", "", "write repaired output to this file instead of stdout")

	c.Log.RegisterFlags(flags)
}

// builderOptions converts the CLI flags into jsonrepair.Option values.
func (c *Config) builderOptions() []jsonrepair.Option {
	opts := []jsonrepair.Option{jsonrepair.WithCapacity(c.Capacity)}
	if c.MaxDepth > 0 {
		opts = append(opts, jsonrepair.WithMaximumDepth(c.MaxDepth))
	}
	return opts
}
