package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	ierrors "github.com/ilyadubrovsky/homework-status-bot/internal/errors"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Practicum Practicum
	Telegram  Telegram
	Tracker   Tracker
	Log       Log
}

type Practicum struct {
	Token          string        `env:"PRACTICUM_TOKEN" env-description:"Practicum API OAuth token"`
	Endpoint       string        `env:"PRACTICUM_ENDPOINT" env-default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	RequestTimeout time.Duration `env:"PRACTICUM_REQUEST_TIMEOUT" env-default:"30s"`
}

type Telegram struct {
	BotToken string `env:"TELEGRAM_TOKEN" env-description:"Telegram bot token"`
	ChatID   string `env:"TELEGRAM_CHAT_ID" env-description:"chat id or @channel name to notify"`
	APIURL   string `env:"TELEGRAM_API_URL" env-default:"https://api.telegram.org"`
}

type Tracker struct {
	RetryPeriod time.Duration `env:"RETRY_PERIOD" env-default:"600s"`
	// DedupTTL is how long the last sent message is remembered, zero means forever.
	DedupTTL time.Duration `env:"DEDUP_TTL" env-default:"0s"`
	// AdvanceFromDate moves from_date to the current_date of the last delivered response,
	// otherwise every cycle asks for the window starting at process start.
	AdvanceFromDate bool `env:"ADVANCE_FROM_DATE" env-default:"false"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" env-default:"debug"`
	Format string `env:"LOG_FORMAT" env-default:"console"`
}

// NewConfig loads an optional .env file and then reads the environment.
func NewConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("godotenv.Load: %w", err)
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	return cfg, nil
}

// Validate reports which credentials are missing.
func (c *Config) Validate() error {
	if CheckTokens(c.Practicum.Token, c.Telegram.BotToken, c.Telegram.ChatID) {
		return nil
	}

	var missing []string
	if c.Practicum.Token == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.Telegram.BotToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.Telegram.ChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}

	return fmt.Errorf("%w: %s", ierrors.ErrCredentialsMissing, strings.Join(missing, ", "))
}

func CheckTokens(practicumToken, telegramToken, chatID string) bool {
	return practicumToken != "" && telegramToken != "" && chatID != ""
}

// Usage describes the supported environment variables.
func Usage() string {
	help, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return help
}
