package status_tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ilyadubrovsky/homework-status-bot/internal/config"
	"github.com/ilyadubrovsky/homework-status-bot/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-status-bot/internal/errors"
	"github.com/ilyadubrovsky/homework-status-bot/internal/repository"
	"github.com/ilyadubrovsky/homework-status-bot/internal/service"
	"github.com/ilyadubrovsky/homework-status-bot/pkg/practicum"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type svc struct {
	practicumClient practicum.Client
	homeworkSvc     service.Homework
	telegramSvc     service.Telegram
	lastMessageRepo repository.LastMessage
	cfg             config.Tracker

	// fromDate is owned by the goroutine running Start.
	fromDate int64

	mu       sync.Mutex
	stopFunc func()
}

func NewService(
	practicumClient practicum.Client,
	homeworkSvc service.Homework,
	telegramSvc service.Telegram,
	lastMessageRepo repository.LastMessage,
	cfg config.Tracker,
	fromDate int64,
) *svc {
	return &svc{
		practicumClient: practicumClient,
		homeworkSvc:     homeworkSvc,
		telegramSvc:     telegramSvc,
		lastMessageRepo: lastMessageRepo,
		cfg:             cfg,
		fromDate:        fromDate,
	}
}

// Start runs cycles until ctx is done or Stop is called. The first cycle starts immediately.
func (s *svc) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.stopFunc != nil {
		s.mu.Unlock()
		return errors.New("service is already started")
	}
	s.stopFunc = cancel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.stopFunc = nil
		s.mu.Unlock()
	}()

	log.Info().
		Int64("from_date", s.fromDate).
		Dur("retry_period", s.cfg.RetryPeriod).
		Msg("start homework status tracker")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			s.cycle(ctx)
			timer.Reset(s.cfg.RetryPeriod)
		case <-ctx.Done():
			log.Info().Msg("homework status tracker stopped")
			return nil
		}
	}
}

func (s *svc) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopFunc == nil {
		return errors.New("service is not started")
	}

	s.stopFunc()
	return nil
}

func (s *svc) cycle(ctx context.Context) {
	logger := log.With().Str("cycle", uuid.NewString()).Logger()

	message, currentDate, err := s.checkStatus(ctx)
	if ctx.Err() != nil {
		return
	}
	if errors.Is(err, ierrors.ErrEmptyHomeworks) && s.cfg.AdvanceFromDate {
		logger.Debug().Int64("from_date", s.fromDate).Msg("no homework status changes")
		s.advance(currentDate)
		return
	}
	if err == nil {
		err = s.notify(&logger, message)
		if err == nil {
			s.advance(currentDate)
			return
		}
	}

	failure := fmt.Sprintf(config.FailureTemplate, err)
	logger.Error().Str("kind", ierrors.KindOf(err).String()).Msg(failure)

	if sendErr := s.notify(&logger, failure); sendErr != nil {
		logger.Error().Msgf("failure report is not delivered: %v", sendErr)
	}
}

// checkStatus returns the notification for the latest homework and current_date of the response.
func (s *svc) checkStatus(ctx context.Context) (string, int64, error) {
	response, err := s.practicumClient.HomeworkStatuses(ctx, s.fromDate)
	if err != nil {
		return "", 0, err
	}
	currentDate := extractCurrentDate(response)

	homeworks, err := s.homeworkSvc.CheckResponse(response)
	if err != nil {
		return "", currentDate, err
	}

	message, err := s.homeworkSvc.ParseStatus(homeworks[0])
	if err != nil {
		return "", currentDate, err
	}

	return message, currentDate, nil
}

// notify sends message unless it repeats the last sent one.
func (s *svc) notify(logger *zerolog.Logger, message string) error {
	if message == s.lastMessageRepo.LastMessage() {
		logger.Debug().Msg("message is the same as the last one, skip")
		return nil
	}

	if err := s.telegramSvc.SendMessage(message); err != nil {
		return err
	}
	s.lastMessageRepo.Save(message)

	return nil
}

func (s *svc) advance(currentDate int64) {
	if !s.cfg.AdvanceFromDate || currentDate <= 0 {
		return
	}
	s.fromDate = currentDate
}

func extractCurrentDate(response any) int64 {
	body, ok := response.(map[string]any)
	if !ok {
		return 0
	}

	switch value := body[domain.CurrentDateKey].(type) {
	case json.Number:
		currentDate, err := value.Int64()
		if err != nil {
			return 0
		}
		return currentDate
	case float64:
		return int64(value)
	default:
		return 0
	}
}
