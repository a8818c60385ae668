package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ilyadubrovsky/homework-status-bot/internal/config"
	"github.com/ilyadubrovsky/homework-status-bot/internal/repository/last_message"
	"github.com/ilyadubrovsky/homework-status-bot/internal/service"
	"github.com/ilyadubrovsky/homework-status-bot/internal/service/homework"
	"github.com/ilyadubrovsky/homework-status-bot/internal/service/status_tracker"
	"github.com/ilyadubrovsky/homework-status-bot/internal/service/telegram"
	"github.com/ilyadubrovsky/homework-status-bot/pkg/practicum"
	"github.com/rs/zerolog/log"
)

type App interface {
	Run(ctx context.Context) error
}

type app struct {
	tracker service.StatusTracker
}

// NewApp wires the tracker, fromDate of the first poll is startedAt.
func NewApp(cfg *config.Config, startedAt time.Time) (App, error) {
	log.Info().Msg("app initializing")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().Msg("telegram bot initializing")
	telegramSvc, err := telegram.NewService(cfg.Telegram)
	if err != nil {
		return nil, fmt.Errorf("telegram.NewService: %w", err)
	}

	practicumClient := practicum.NewClient(
		cfg.Practicum.Endpoint,
		cfg.Practicum.Token,
		cfg.Practicum.RequestTimeout,
	)

	tracker := status_tracker.NewService(
		practicumClient,
		homework.NewService(),
		telegramSvc,
		last_message.NewRepository(cfg.Tracker.DedupTTL),
		cfg.Tracker,
		startedAt.Unix(),
	)

	return &app{tracker: tracker}, nil
}

func (a *app) Run(ctx context.Context) error {
	log.Info().Msg("app launching")

	if err := a.tracker.Start(ctx); err != nil {
		return fmt.Errorf("tracker.Start: %w", err)
	}

	return nil
}
