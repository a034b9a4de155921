// Package notify delivers run summaries to a chat channel.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/marksman/internal/common"
	"github.com/Veraticus/marksman/internal/service"
)

const (
	// DefaultDiscordBaseURL is the Discord REST API root.
	DefaultDiscordBaseURL = "https://discord.com/api"

	// MaxMessageLength is the longest message content Discord accepts.
	MaxMessageLength = 2000

	truncationMark = "…"
)

// Discord posts messages to a channel as a bot.
type Discord struct {
	HTTPClient *http.Client
	logger     *slog.Logger
	BotToken   string
	ChannelID  string
	BaseURL    string
	Retry      service.RetryOptions
}

// NewDiscord creates a notifier for channelID authenticated with botToken.
func NewDiscord(botToken, channelID string, logger *slog.Logger) (*Discord, error) {
	if botToken == "" {
		return nil, fmt.Errorf("%w: discord bot token", common.ErrMissingConfig)
	}
	if channelID == "" {
		return nil, fmt.Errorf("%w: discord channel id", common.ErrMissingConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Discord{
		BotToken:   botToken,
		ChannelID:  channelID,
		BaseURL:    DefaultDiscordBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Retry: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: time.Second,
			MaxDelay:     10 * time.Second,
			Multiplier:   2.0,
		},
		logger: logger.With("component", "discord", "channel_id", channelID),
	}, nil
}

type messageRequest struct {
	Content string `json:"content"`
}

// Send implements service.Notifier.
func (d *Discord) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(messageRequest{Content: Truncate(text, MaxMessageLength)})
	if err != nil {
		return fmt.Errorf("%w: encoding message: %w", common.ErrDelivery, err)
	}

	url := strings.TrimRight(d.BaseURL, "/") + "/channels/" + d.ChannelID + "/messages"

	err = common.WithRetry(ctx, func(ctx context.Context) error {
		return d.post(ctx, url, body)
	}, d.Retry)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrDelivery, err)
	}

	d.logger.Debug("message delivered", "length", len(body))
	return nil
}

func (d *Discord) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+d.BotToken)
	req.Header.Set("Content-Type", "application/json")

	client := d.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	statusErr := fmt.Errorf("discord returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", common.ErrRateLimit, statusErr)
	case resp.StatusCode >= http.StatusInternalServerError:
		return &common.RetryableError{Err: statusErr, Retryable: true}
	default:
		return statusErr
	}
}

// Truncate shortens text to at most limit characters, marking the cut with
// an ellipsis.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	return string(runes[:limit-1]) + truncationMark
}
