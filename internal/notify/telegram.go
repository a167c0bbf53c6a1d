package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"Wirefill/internal/repo"

	"github.com/sony/gobreaker/v2"
)

const defaultBaseURL = "https://api.telegram.org"

// Telegram forwards new notes to the site owner's chat. Calls go through a
// circuit breaker so an unreachable API does not slow down note submission.
type Telegram struct {
	Token      string
	ChatID     int64
	BaseURL    string
	HTTPClient *http.Client
	cb         *gobreaker.CircuitBreaker[struct{}]
}

func NewTelegram(token string, chatID int64) *Telegram {
	return &Telegram{
		Token:      token,
		ChatID:     chatID,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		cb: gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:    "telegram",
			Timeout: time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

func (t *Telegram) NotifyNote(ctx context.Context, n repo.Note) error {
	text := fmt.Sprintf("New note from %s", n.Name)
	if n.Email != "" {
		text += fmt.Sprintf(" <%s>", n.Email)
	}
	text += ":\n\n" + n.Body
	return t.Send(ctx, text)
}

func (t *Telegram) Send(ctx context.Context, text string) error {
	_, err := t.cb.Execute(func() (struct{}, error) {
		return struct{}{}, t.sendMessage(ctx, text)
	})
	return err
}

func (t *Telegram) sendMessage(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]any{
		"chat_id": t.ChatID,
		"text":    text,
	})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.BaseURL, t.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := t.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	defer res.Body.Close()

	var out struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return fmt.Errorf("telegram sendMessage: decode response: %w", err)
	}
	if !out.OK {
		return fmt.Errorf("telegram sendMessage: %d %s", res.StatusCode, out.Description)
	}
	return nil
}
