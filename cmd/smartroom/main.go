package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/angristan/smartroom-tui/internal/config"
	"github.com/angristan/smartroom-tui/internal/logging"
	"github.com/angristan/smartroom-tui/internal/store"
	"github.com/angristan/smartroom-tui/internal/tui"
	"github.com/angristan/smartroom-tui/internal/tui/messages"
)

type options struct {
	demo       bool
	configFile string
	dbPath     string
	logFile    string
	logLevel   string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "smartroom",
		Short:         "Watch and control the rooms of your home from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return run(c.Context(), opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.demo, "demo", os.Getenv("SMARTROOM_DEMO") != "", "Run against an in-memory demo home with simulated faults")
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to configuration (default $XDG_CONFIG_HOME/smartroom/config.json)")
	flags.StringVar(&opts.dbPath, "db", "", "Path to the room database")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Load configuration
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.dbPath != "" {
		cfg.DatabasePath = opts.dbPath
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	repo, err := openRepository(ctx, cfg, opts.demo)
	if err != nil {
		return err
	}

	st, err := store.New(ctx, repo, logger.Named("store"))
	if err != nil {
		_ = repo.Close()
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()

	// Create and run the application
	model := tui.NewModel(cfg, st, store.NewStaticUserStore(cfg.UserName), logger.Named("tui"))
	if opts.demo {
		model.SetHeaderStatus("● Demo")
	}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.demo {
		feedLogger := logger.Named("feed")
		feed := store.NewDeviceFeed(st, func(events []store.StatusEvent) {
			applied := store.ApplyEvents(ctx, st, events, feedLogger)
			if len(applied) > 0 {
				p.Send(messages.DeviceEventsMsg{Rooms: applied})
			}
		}, cfg.DemoFeedInterval(), cfg.DemoFaultPercent, uint64(time.Now().UnixNano()), feedLogger)

		if err := feed.Start(ctx); err != nil {
			return err
		}
		defer feed.Stop()
	}

	logger.Info("starting", zap.Bool("demo", opts.demo))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// openRepository returns the in-memory demo home, or the sqlite database
// seeded with the demo home on first run
func openRepository(ctx context.Context, cfg *config.Config, demo bool) (store.Repository, error) {
	if demo {
		return store.NewMemoryRepository(store.DemoRooms()), nil
	}

	path, err := cfg.DatabaseFile()
	if err != nil {
		return nil, err
	}
	repo, err := store.OpenSQLite(ctx, path, store.DemoRooms())
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return repo, nil
}
