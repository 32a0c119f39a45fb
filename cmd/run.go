package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathadventures/internal/adaptive"
	"github.com/abhisek/mathadventures/internal/app"
	"github.com/abhisek/mathadventures/internal/attemptlog"
	"github.com/abhisek/mathadventures/internal/config"
	"github.com/abhisek/mathadventures/internal/console"
	"github.com/abhisek/mathadventures/internal/logging"
	"github.com/abhisek/mathadventures/internal/puzzle"
	"github.com/abhisek/mathadventures/internal/session"
	"github.com/abhisek/mathadventures/internal/store"
)

// runSession loads config, opens the attempt log and runs one session in
// either the full-screen UI or the plain console.
func runSession(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.DebugLog)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	sink, err := openSink(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warn("close attempt log", "error", err)
		}
	}()

	tier, hasTier, err := cfg.StartTier()
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	sessionID := uuid.NewString()
	engine := adaptive.New(cfg.Adaptive())
	puzzles := puzzle.NewSeeded(seed)
	reporter := session.Reporter{Sink: sink, Log: logger}
	name, _ := cmd.Flags().GetString("name")

	logger.Debug("session config",
		"session_id", sessionID,
		"seed", seed,
		"log_format", cfg.LogFormat,
		"questions", cfg.Questions,
	)

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		d := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), console.Options{
			Name:         name,
			StartTier:    tier,
			HasStartTier: hasTier,
			MaxQuestions: cfg.Questions,
			SessionID:    sessionID,
			Engine:       engine,
			Puzzles:      puzzles,
			Reporter:     reporter,
		})
		_, err := d.Run(cmd.Context())
		return err
	}

	sum, err := app.Run(app.Options{
		Name:         name,
		StartTier:    tier,
		HasStartTier: hasTier,
		MaxQuestions: cfg.Questions,
		SessionID:    sessionID,
		Engine:       engine,
		Puzzles:      puzzles,
		Reporter:     reporter,
	})
	if err != nil {
		return err
	}
	if sum != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d correct. Recommended starting level for next time: %s\n",
			sum.Name, sum.TotalCorrect, sum.TotalQuestions, sum.Recommended)
	}
	return nil
}

// openSink opens the attempt log sinks selected by cfg.LogFormat.
func openSink(cfg *config.Config, logger *logging.Logger) (attemptlog.Sink, error) {
	var sinks attemptlog.MultiSink

	if cfg.LogFormat == config.LogFormatCSV || cfg.LogFormat == config.LogFormatBoth {
		csvSink, err := attemptlog.OpenCSV(cfg.LogPath)
		if err != nil {
			return nil, fmt.Errorf("open csv log: %w", err)
		}
		logger.Info("attempt log opened", "format", config.LogFormatCSV, "path", csvSink.Path())
		sinks = append(sinks, csvSink)
	}

	if cfg.LogFormat == config.LogFormatSQLite || cfg.LogFormat == config.LogFormatBoth {
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			_ = sinks.Close()
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			_ = sinks.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		logger.Info("attempt log opened", "format", config.LogFormatSQLite, "path", dbPath)
		sinks = append(sinks, st.AttemptRepo())
	}

	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return sinks, nil
}

// resolveDBPath returns cfg.DBPath when set, otherwise the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// loadConfig layers explicitly set flags over the file and env config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug-log") {
		cfg.DebugLog, _ = flags.GetString("debug-log")
	}
	if flags.Lookup("questions") == nil {
		return cfg, nil
	}
	if flags.Changed("level") {
		cfg.StartLevel, _ = flags.GetString("level")
	}
	if flags.Changed("questions") {
		cfg.Questions, _ = flags.GetInt("questions")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log") {
		cfg.LogPath, _ = flags.GetString("log")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
