package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matthew-mcallister/cammy/internal/camel"
	"github.com/matthew-mcallister/cammy/internal/engine"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Search the state graph and report the optimal delivery",
	Args:  cobra.NoArgs,
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().IntP("distance", "d", 0, "Road positions (market sits at distance-1)")
	solveCmd.Flags().IntP("capacity", "c", 0, "Most bananas Cammy can carry at once")
	solveCmd.Flags().IntP("bananas", "b", 0, "Bananas available at the start")
	solveCmd.Flags().IntP("workers", "w", 0, "Worker goroutines (default: CPUs-1)")
	solveCmd.Flags().Bool("sequential", false, "Use the single-threaded reference solver")
	solveCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while solving")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sequential, _ := cmd.Flags().GetBool("sequential")

	result, elapsed, err := solve(cmd, cfg, sequential)
	if err != nil {
		return err
	}

	fmt.Printf("visited %d states in %.2fs (%d workers, %d rounds)\n",
		result.StatesVisited, elapsed.Seconds(), result.Workers, result.Rounds)
	if !result.Solved() {
		fmt.Println("no solutions.")
		return nil
	}
	fmt.Printf("delivered %d bananas (%d optimal states)\n",
		result.Delivered, len(result.Winners))
	fmt.Printf("winning state: %s\n", result.Winners[0])
	return nil
}

// solve runs the engine, serving Prometheus metrics alongside it when
// configured. The metrics endpoint lives exactly as long as the search:
// it exists to watch long runs, not to outlive them.
func solve(cmd *cobra.Command, cfg Config, sequential bool) (*engine.Result, time.Duration, error) {
	problem := camel.Problem{
		Distance: cfg.Distance,
		Capacity: cfg.Capacity,
		Bananas:  cfg.Bananas,
	}
	opts := []engine.Option{engine.WithLogger(newLogger(cmd))}
	if cfg.Workers > 0 {
		opts = append(opts, engine.WithWorkers(cfg.Workers))
	}

	var server *http.Server
	if cfg.MetricsAddr != "" {
		registry := prometheus.NewRegistry()
		opts = append(opts, engine.WithMetrics(engine.NewMetrics(registry)))
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server = &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
	}

	var (
		result  *engine.Result
		elapsed time.Duration
	)
	g := new(errgroup.Group)
	if server != nil {
		g.Go(func() error {
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		if server != nil {
			defer server.Shutdown(context.Background())
		}
		startTime := time.Now()
		var err error
		if sequential {
			result, err = engine.Sequential(problem, opts...)
		} else {
			result, err = engine.Solve(problem, opts...)
		}
		elapsed = time.Since(startTime)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return result, elapsed, nil
}
