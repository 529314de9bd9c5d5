package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cammy",
	Short: "Solve the banana-relay problem with a parallel breadth-first search",
	Long: `Cammy the camel lives some distance from the market and has a stock of
bananas to sell. She eats one banana per move, carries a limited load, and
may cache banana piles on the road for later pickup.

cammy explores the full state graph of that puzzle and reports the largest
number of bananas she can deliver, optionally rendering the optimal route
as a terminal animation.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML file with default problem parameters")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
}

// newLogger builds the logger the engine runs with: silent by default,
// debug text on stderr with --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
