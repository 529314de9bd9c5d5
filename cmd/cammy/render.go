package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matthew-mcallister/cammy/internal/ascii"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Solve, then animate the optimal route",
	Long: `Render solves the configured instance, reconstructs the path to the best
winning state, and renders it as an ASCII animation: an asciicast v2
recording when --out is given (or when stdout is not a terminal), a live
playback otherwise.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntP("distance", "d", 0, "Road positions (market sits at distance-1)")
	renderCmd.Flags().IntP("capacity", "c", 0, "Most bananas Cammy can carry at once")
	renderCmd.Flags().IntP("bananas", "b", 0, "Bananas available at the start")
	renderCmd.Flags().IntP("workers", "w", 0, "Worker goroutines (default: CPUs-1)")
	renderCmd.Flags().StringP("out", "o", "", "Write an asciicast v2 recording to this file")
	renderCmd.Flags().Float64("fps", 4, "Animation frame rate")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	result, _, err := solve(cmd, cfg, false)
	if err != nil {
		return err
	}
	path, err := result.BestPath()
	if err != nil {
		return err
	}

	anim := ascii.Render(path)
	if cfg.FPS > 0 {
		anim.FPS = cfg.FPS
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		if err := anim.EncodeAsciicast(f); err != nil {
			return fmt.Errorf("encode %s: %w", out, err)
		}
		fmt.Printf("wrote %d frames to %s\n", anim.Frames(), out)
		return nil
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return anim.Play(termenv.NewOutput(os.Stdout))
	}
	return anim.EncodeAsciicast(os.Stdout)
}
