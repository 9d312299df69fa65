// Package telegram delivers wallet activity messages to a Telegram chat via
// the Bot API sendMessage endpoint.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gabapcia/tokenwatch/internal/walletwatch"

	transporthttp "github.com/gabapcia/tokenwatch/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

// defaultAPIBaseURL is the public Telegram Bot API endpoint.
const defaultAPIBaseURL = "https://api.telegram.org"

type (
	// client sends messages to a single Telegram chat on behalf of a bot.
	client struct {
		httpClient *retryablehttp.Client
		apiBaseURL string
		botToken   string
		chatID     string
	}

	// Option defines a functional option for configuring the Telegram client.
	Option func(*client)

	// sendMessageRequest is the JSON payload accepted by the Bot API
	// sendMessage method.
	sendMessageRequest struct {
		ChatID string `json:"chat_id"`
		Text   string `json:"text"`
	}

	// sendMessageResponse carries the API status fields needed to detect
	// a rejected message.
	sendMessageResponse struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
)

// WithAPIBaseURL overrides the Bot API base URL. Intended for tests.
func WithAPIBaseURL(url string) Option {
	return func(c *client) {
		c.apiBaseURL = url
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *retryablehttp.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Telegram notifier that posts messages to the given
// chat using the given bot token.
func NewClient(botToken, chatID string, opts ...Option) *client {
	c := &client{
		httpClient: transporthttp.NewClient(),
		apiBaseURL: defaultAPIBaseURL,
		botToken:   botToken,
		chatID:     chatID,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// sendMessage posts a single text message to the configured chat.
func (c *client) sendMessage(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID: c.chatID,
		Text:   text,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBaseURL, c.botToken)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var body sendMessageResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return err
	}

	if !body.OK {
		return fmt.Errorf("telegram api rejected message: %s", body.Description)
	}

	return nil
}

// Notify implements the walletwatch.Notifier interface by delivering the
// rendered activity message to the configured Telegram chat.
func (c *client) Notify(ctx context.Context, network, wallet, message string) error {
	return c.sendMessage(ctx, message)
}

// Compile-time assertion to ensure *client satisfies the Notifier interface
var _ walletwatch.Notifier = (*client)(nil)
