package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ilyadubrovsky/homework-status-bot/internal/config"
	ierrors "github.com/ilyadubrovsky/homework-status-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_CredentialsMissing(t *testing.T) {
	_, err := NewApp(&config.Config{}, time.Now())
	require.ErrorIs(t, err, ierrors.ErrCredentialsMissing)
}

type botAPI struct {
	mu    sync.Mutex
	texts []string
}

func (b *botAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	b.mu.Lock()
	b.texts = append(b.texts, body.Text)
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
}

func (b *botAPI) sent() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.texts...)
}

func TestRun(t *testing.T) {
	startedAt := time.Unix(1700000000, 0)

	practicumAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OAuth practicum", r.Header.Get("Authorization"))
		assert.Equal(t, "1700000000", r.URL.Query().Get("from_date"))
		_, _ = w.Write([]byte(`{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1700000600}`))
	}))
	defer practicumAPI.Close()

	bot := &botAPI{}
	telegramAPI := httptest.NewServer(bot)
	defer telegramAPI.Close()

	cfg := &config.Config{
		Practicum: config.Practicum{
			Token:          "practicum",
			Endpoint:       practicumAPI.URL,
			RequestTimeout: time.Second,
		},
		Telegram: config.Telegram{
			BotToken: "telegram",
			ChatID:   "42",
			APIURL:   telegramAPI.URL,
		},
		Tracker: config.Tracker{RetryPeriod: 10 * time.Millisecond},
	}

	a, err := NewApp(cfg, startedAt)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
	assert.Equal(t, []string{
		`Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`,
	}, bot.sent())
}
