// cryptoterm - a terminal crypto dashboard driven by a simulated market
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/zappabad/cryptoterm/internal/dashboard"
	"github.com/zappabad/cryptoterm/internal/game"
	"github.com/zappabad/cryptoterm/tui"
	"go.uber.org/zap"
)

var (
	version  = "0.1.0"
	logFile  string
	interval time.Duration
	seed     int64
	plain    bool
	debugLog string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cryptoterm",
		Short: "Simulated crypto market dashboard",
		Long: `cryptoterm simulates a small crypto market, runs a random trader
against a starting portfolio and renders prices, trends, signals and
profit in the terminal. Every simulated trade is appended to a CSV log.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDashboard,
	}

	defaults := game.DefaultConfig()
	rootCmd.Flags().StringVar(&logFile, "log-file", defaults.LogPath, "CSV file simulated trades are appended to")
	rootCmd.Flags().DurationVar(&interval, "interval", dashboard.DefaultConfig().Interval, "Time between market ticks")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 seeds from the clock)")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Print frames as plain text instead of the full-screen UI")
	rootCmd.Flags().StringVar(&debugLog, "debug-log", "", "Write structured JSON logs to this file")

	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cryptoterm version %s\n", version)
		},
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(debugLog, plain)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := game.DefaultConfig()
	cfg.LogPath = logFile
	cfg.Seed = seed

	g, err := game.New(cfg, logger)
	if err != nil {
		return err
	}

	dcfg := dashboard.DefaultConfig()
	dcfg.Interval = interval

	var (
		summary dashboard.FinalSummary
		runErr  error
	)
	if plain {
		loop := dashboard.NewLoop(dcfg, g, dashboard.NewTextPublisher(os.Stdout), logger)
		summary, runErr = loop.Run(ctx)
	} else {
		summary, runErr = runInteractive(ctx, dcfg, g, logger)
	}

	printSummary(summary)

	if err := g.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

type loopResult struct {
	summary dashboard.FinalSummary
	err     error
}

// runInteractive drives the loop on a background goroutine and the UI in
// the foreground. Quitting the UI cancels the loop; a failed loop closes
// the model stream, which ends the UI.
func runInteractive(ctx context.Context, cfg dashboard.Config, g *game.Game, logger *zap.Logger) (dashboard.FinalSummary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pub := dashboard.NewChannelPublisher(16)
	loop := dashboard.NewLoop(cfg, g, pub, logger)

	done := make(chan loopResult, 1)
	go func() {
		s, err := loop.Run(ctx)
		pub.Close()
		done <- loopResult{summary: s, err: err}
	}()

	uiErr := tui.Run(ctx, pub.Models(), g.LogPath(), cancel)
	cancel()
	res := <-done

	if dropped := pub.Dropped(); dropped > 0 {
		logger.Debug("frames dropped", zap.Int64("count", dropped))
	}
	if res.err != nil {
		return res.summary, res.err
	}
	if uiErr != nil {
		return res.summary, fmt.Errorf("ui: %w", uiErr)
	}
	return res.summary, nil
}

// newLogger returns a JSON file logger when path is set. Plain mode logs
// to stderr; the full-screen UI owns the terminal so it logs nowhere.
func newLogger(path string, plain bool) (*zap.Logger, error) {
	switch {
	case path != "":
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
		return cfg.Build()
	case plain:
		return zap.NewProduction()
	default:
		return zap.NewNop(), nil
	}
}

func printSummary(s dashboard.FinalSummary) {
	fmt.Println()
	if plain {
		fmt.Print(s.Text())
		return
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err == nil {
		if out, err := r.Render(s.Markdown()); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(s.Text())
}
