package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrymomot/doorkit/pkg/config"
	"github.com/dmitrymomot/doorkit/pkg/door"
	"github.com/dmitrymomot/doorkit/pkg/logger"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"doordemo"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DoorColor   string `env:"DOOR_COLOR" envDefault:"green"`
	Script      string `env:"DOOR_SCRIPT"`
}

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Logs go to stderr so stdout carries only the door dumps.
	l := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(door.LogExtractor()),
	)
	logger.SetAsDefault(l)

	if err := run(context.Background(), cfg, l, os.Stdout); err != nil {
		l.Error("door demo failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, l *slog.Logger, out io.Writer) error {
	script := door.DefaultScript(cfg.DoorColor)
	if cfg.Script != "" {
		s, err := loadScript(cfg.Script)
		if err != nil {
			return err
		}
		if s.Color == "" {
			s.Color = cfg.DoorColor
		}
		script = s
	}

	d, err := door.New(door.NewLock(l), script.Color, door.WithLogger(l))
	if err != nil {
		return err
	}
	ctx = door.ContextWithID(ctx, d.ID())
	l.DebugContext(ctx, "door created", logger.Color(d.Color()))

	if _, err := script.Run(ctx, d, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func loadScript(path string) (*door.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	s, err := door.LoadScript(f)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return s, nil
}
