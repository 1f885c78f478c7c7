// Command jsonrepair repairs truncated JSON from files or stdin.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-jsonrepair/jsonrepair"
)

func main() {
	cfg := NewConfig()

	rootCmd := &cobra.Command{
		Use:   "jsonrepair [flags] <file> [file2 ...]",
		Short: "Repair truncated JSON into the longest valid prefix",
		Long: `jsonrepair reads one or more JSON documents, each possibly cut off
mid-token, mid-string, or mid-container, and writes out the longest
syntactically valid prefix of each, with any unrecoverable trailing
partial structure dropped and its open containers closed.

Pass "-" to read a document from standard input.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())

	if err := cfg.Log.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *Config, args []string) error {
	handler, err := cfg.Log.NewHandler(os.Stderr)
	if err != nil {
		return err
	}
	logger := slog.New(handler)

	for _, arg := range args {
		if err := repairOne(cfg, logger, arg); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}
	return nil
}

func repairOne(cfg *Config, logger *slog.Logger, path string) error {
	input, err := readInput(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	b := jsonrepair.NewBuilder(cfg.builderOptions()...)
	if err := b.Update(input); err != nil {
		// A genuinely malformed document (not merely truncated) is not
		// something this tool repairs; surface it instead of guessing.
		logger.Error("input is not a valid JSON prefix", "path", path, "accepted_bytes", b.Len(), "error", err)
		return fmt.Errorf("not a valid JSON prefix (accepted %d bytes): %w", b.Len(), err)
	}

	output, err := b.CompletedBytes()
	if err != nil {
		return fmt.Errorf("repair: %w", err)
	}

	logger.Debug("repaired document", "path", path, "input_bytes", len(input), "output_bytes", len(output))

	if cfg.Diff {
		printDiff(path, input, output)
		return nil
	}

	return writeOutput(cfg.Output, output)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
