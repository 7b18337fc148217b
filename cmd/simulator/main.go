package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/littlemonopoly/simulator-go/internal/config"
	"github.com/littlemonopoly/simulator-go/internal/simulation"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev" // set via ldflags during build

func main() {
	flags := pflag.NewFlagSet("simulator", pflag.ExitOnError)
	configPath := flags.String("config", "config/config.yaml", "path to configuration file")
	flags.Int("matches", 300, "number of matches to play")
	flags.Int64("seed", 0, "batch seed (0 picks a time-based seed)")
	flags.Bool("log-turns", false, "log every turn at debug level")
	flags.Bool("log-results", false, "log each match result")
	showVersion := flags.Bool("version", false, "print version and exit")
	_ = flags.Parse(os.Args[1:])

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := loadConfig(*configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting simulator",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received shutdown signal", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	runner := simulation.NewRunner(cfg.Simulation, logger)
	results, err := runner.RunBatch(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Fatal("batch failed", zap.Error(err))
		}
		logger.Warn("reporting partial batch", zap.Int("matches", len(results)))
	}

	if err := simulation.WriteReport(os.Stdout, simulation.Summarize(results)); err != nil {
		logger.Fatal("failed to print summary", zap.Error(err))
	}
}

// loadConfig layers command line flags over the config file and environment.
// Only flags set explicitly override the other sources.
func loadConfig(path string, flags *pflag.FlagSet) (*config.Config, error) {
	v := config.New()
	if err := config.ReadFile(v, path); err != nil {
		return nil, err
	}

	bindings := map[string]string{
		"simulation.matches":     "matches",
		"simulation.seed":        "seed",
		"simulation.log_turns":   "log-turns",
		"simulation.log_results": "log-results",
	}
	for key, name := range bindings {
		if flag := flags.Lookup(name); flag != nil && flag.Changed {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	return config.Decode(v)
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// The report goes to stdout; keep log lines out of it.
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
