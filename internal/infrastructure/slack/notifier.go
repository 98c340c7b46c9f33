package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"brandwatch/internal/domain"
	"brandwatch/internal/ports"
)

// Notifier posts one message per detected article to a Slack incoming
// webhook. Fire-and-forget from the pipeline's point of view: errors are
// returned here but only logged by the caller.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier registers the webhook endpoint.
func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify delivers the per-article alert message.
func (n *Notifier) Notify(ctx context.Context, article domain.Article) error {
	if n.webhookURL == "" || n.client == nil {
		return fmt.Errorf("slack notifier misconfigured")
	}

	payload, err := json.Marshal(map[string]string{"text": formatMessage(article)})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack error: %s", resp.Status)
	}

	return nil
}

func formatMessage(article domain.Article) string {
	return fmt.Sprintf("📰 Nouvel article détecté sur *%s*\n*%s*\n_Ton: %s_\n<%s|Lire l'article>",
		article.Model,
		article.Title,
		article.Tone,
		article.Link)
}
