// Command webppl runs the worked inference scenarios from the runtime's
// test suite against each strategy, printing the resulting marginal.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/NATHANIELCROSBY1/webppl/obslog"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "webppl",
	Short: "Run probabilistic-programming inference scenarios",
	Long: `webppl drives the forward, enumerate, and particle-filter inference
strategies against a handful of worked scenarios, printing the resulting
marginal distribution to stdout.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	cobra.OnInitialize(func() {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		obslog.Configure(os.Stderr, level)
	})

	rootCmd.AddCommand(forwardCmd)
	rootCmd.AddCommand(enumerateCmd)
	rootCmd.AddCommand(particleFilterCmd)
	rootCmd.AddCommand(cacheCmd)
}

// Subcommands are defined in separate files:
// - forwardCmd in forward.go
// - enumerateCmd in enumerate.go
// - particleFilterCmd in particlefilter.go
// - cacheCmd in cache.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
