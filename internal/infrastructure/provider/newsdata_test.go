package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"brandwatch/internal/fetch"
)

func TestNewsdataFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("apikey"); got != "secret" {
			t.Errorf("expected apikey=secret, got %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "DS Automobiles" {
			t.Errorf("expected query, got %q", got)
		}
		_, _ = w.Write([]byte(`{
			"results": [
				{"pubDate": "2026-08-30 09:00:00", "title": "DS7 à l'essai", "description": "Un essai.", "source_id": "lautomobile", "link": "https://example.org/a"},
				{"pubDate": "", "title": "Sans date", "description": "", "source_id": "autre", "link": "https://example.org/b"},
				{"pubDate": "2026-08-28 09:00:00", "title": "Trop", "description": "coupé", "source_id": "x", "link": "https://example.org/c"}
			]
		}`))
	}))
	defer server.Close()

	client := NewNewsdataClient(server.URL, "secret", server.Client())
	articles, err := client.Fetch(context.Background(), fetch.Request{Query: "DS Automobiles", MaxResults: 2})
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("expected max 2 articles, got %d", len(articles))
	}
	if articles[0].Title != "DS7 à l'essai" || articles[0].Source != "lautomobile" {
		t.Fatalf("unexpected mapping: %+v", articles[0])
	}
	if articles[0].Date != "2026-08-30 09:00:00" {
		t.Fatalf("date must stay the raw provider string, got %q", articles[0].Date)
	}
}

func TestNewsdataFetchBadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewNewsdataClient(server.URL, "bad", server.Client())
	if _, err := client.Fetch(context.Background(), fetch.Request{Query: "q"}); err == nil {
		t.Fatal("expected error on 401")
	}
}
