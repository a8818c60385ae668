package telegram

import (
	"errors"
	"fmt"

	"github.com/ilyadubrovsky/homework-status-bot/internal/config"
	ierrors "github.com/ilyadubrovsky/homework-status-bot/internal/errors"
	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
)

type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type svc struct {
	bot  sender
	chat chat
}

func NewService(cfg config.Telegram) (*svc, error) {
	bot, err := createBot(cfg)
	if err != nil {
		return nil, fmt.Errorf("createBot: %w", err)
	}

	return newService(bot, cfg.ChatID), nil
}

func newService(bot sender, chatID string) *svc {
	return &svc{
		bot:  bot,
		chat: chat(chatID),
	}
}

// createBot builds an offline bot, only outgoing messages are used.
func createBot(cfg config.Telegram) (*tele.Bot, error) {
	pref := tele.Settings{
		URL:     cfg.APIURL,
		Token:   cfg.BotToken,
		Offline: true,
	}

	abot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("tele.NewBot: %w", err)
	}

	return abot, nil
}

func (s *svc) SendMessage(message string) error {
	_, err := s.bot.Send(s.chat, message)
	if err != nil {
		s.middlewareError(err)
		log.Error().Str("chat", s.chat.Recipient()).Msgf("%s: %v", ierrors.ErrNotificationSend, err)
		return fmt.Errorf("%w: %w", ierrors.ErrNotificationSend, err)
	}

	log.Debug().Str("chat", s.chat.Recipient()).Msg(config.MessageSent)
	return nil
}

func (s *svc) middlewareError(err error) {
	if errors.Is(err, tele.ErrBlockedByUser) ||
		errors.Is(err, tele.ErrUserIsDeactivated) ||
		errors.Is(err, tele.ErrNotStartedByUser) ||
		errors.Is(err, tele.ErrChatNotFound) {
		log.Warn().Str("chat", s.chat.Recipient()).
			Msgf("chat is unreachable, check TELEGRAM_CHAT_ID: %v", err)
	}
}
