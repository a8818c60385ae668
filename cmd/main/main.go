package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilyadubrovsky/homework-status-bot/internal/app"
	"github.com/ilyadubrovsky/homework-status-bot/internal/config"
	ierrors "github.com/ilyadubrovsky/homework-status-bot/internal/errors"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Msgf("cant initialize config: %v\n%s", err, config.Usage())
	}

	initLogger(cfg.Log)

	a, err := app.NewApp(cfg, time.Now())
	if errors.Is(err, ierrors.ErrCredentialsMissing) {
		log.Fatal().Msg(err.Error())
	}
	if err != nil {
		log.Fatal().Msgf("app.NewApp: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = a.Run(ctx); err != nil {
		log.Fatal().Msgf("app.Run: %v", err)
	}

	log.Info().Msg("gracefully stopped")
}
