package slack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brandwatch/internal/domain"
)

func TestNotifyPostsFormattedMessage(t *testing.T) {
	t.Parallel()

	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("payload not JSON: %s", body)
		}
		received = payload["text"]
	}))
	defer server.Close()

	notifier := NewNotifier(server.URL)
	article := domain.Article{
		Title: "La DS7 impressionne",
		Model: "DS7",
		Tone:  domain.TonePositive,
		Link:  "https://example.org/a",
	}

	if err := notifier.Notify(context.Background(), article); err != nil {
		t.Fatalf("Notify error: %v", err)
	}

	for _, want := range []string{"*DS7*", "La DS7 impressionne", "Ton: Positive", "<https://example.org/a|"} {
		if !strings.Contains(received, want) {
			t.Fatalf("message %q missing %q", received, want)
		}
	}
}

func TestNotifyErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	notifier := NewNotifier(server.URL)
	if err := notifier.Notify(context.Background(), domain.Article{}); err == nil {
		t.Fatal("expected error on 400")
	}
}

func TestNotifyMisconfigured(t *testing.T) {
	t.Parallel()

	notifier := NewNotifier("")
	if err := notifier.Notify(context.Background(), domain.Article{}); err == nil {
		t.Fatal("expected error without webhook url")
	}
}
