package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	ierrors "github.com/ilyadubrovsky/homework-status-bot/internal/errors"
	"github.com/rs/zerolog/log"
)

const (
	QueryKeyFromDate    = "from_date"
	HeaderAuthorization = "Authorization"
)

type Client interface {
	// HomeworkStatuses returns the decoded response body as is, shape checks are up to the caller.
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}

type client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewClient(endpoint, token string, timeout time.Duration) Client {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
	}
}

func (c *client) HomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	requestURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, c.fail(fmt.Errorf("url.Parse: %w", err))
	}
	query := requestURL.Query()
	query.Set(QueryKeyFromDate, strconv.FormatInt(fromDate, 10))
	requestURL.RawQuery = query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)
	if err != nil {
		return nil, c.fail(fmt.Errorf("http.NewRequestWithContext: %w", err))
	}
	request.Header.Set(HeaderAuthorization, "OAuth "+c.token)
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, c.fail(fmt.Errorf("httpClient.Do: %w", err))
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		event := log.Error().Int("status", response.StatusCode)
		if title := pageTitle(response); title != "" {
			event = event.Str("page_title", title)
		}
		message := fmt.Sprintf("Недоступность эндпоинта. Код ответа API: %d", response.StatusCode)
		event.Msg(message)

		return nil, fmt.Errorf("%w: %s", ierrors.ErrAPIAccess, message)
	}

	decoder := json.NewDecoder(response.Body)
	decoder.UseNumber()

	var payload any
	if err = decoder.Decode(&payload); err != nil {
		return nil, c.fail(fmt.Errorf("decoder.Decode: %w", err))
	}

	return payload, nil
}

func (c *client) fail(err error) error {
	err = fmt.Errorf("%w: %v", ierrors.ErrAPIAccess, err)
	log.Error().Msg(err.Error())
	return err
}

// pageTitle extracts <title> of an html error page, proxies answer 5xx with those.
func pageTitle(response *http.Response) string {
	if !strings.Contains(response.Header.Get("Content-Type"), "text/html") {
		return ""
	}

	document, err := goquery.NewDocumentFromReader(io.LimitReader(response.Body, 1<<20))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(document.Find("title").First().Text())
}
