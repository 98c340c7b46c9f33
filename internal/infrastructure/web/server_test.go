package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"brandwatch/internal/domain"
	"brandwatch/internal/logging"
	"brandwatch/internal/usecase"
)

func testLogger() *slog.Logger {
	return logging.NewWithWriter(io.Discard, "error")
}

type fakeScanner struct {
	result  usecase.Result
	err     error
	gotMax  int
	gotFilt usecase.Filters
}

func (f *fakeScanner) Scan(_ context.Context, _ string, maxResults int, filters usecase.Filters) (usecase.Result, error) {
	f.gotMax = maxResults
	f.gotFilt = filters
	return f.result, f.err
}

func newTestServer(scanner Scanner) *Server {
	gin.SetMode(gin.TestMode)
	return New(scanner, "DS Automobiles", []string{"http://localhost:3000"}, testLogger())
}

func TestScanEndpoint(t *testing.T) {
	t.Parallel()

	published := time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)
	scanner := &fakeScanner{result: usecase.Result{
		Articles: []domain.Article{{
			Date:    &published,
			Title:   "La DS7 impressionne",
			Model:   "DS7",
			Tone:    domain.TonePositive,
			Summary: "Un essai...",
			Source:  "lautomobile",
			Link:    "https://example.org/a",
		}},
		Buzz:  domain.BuzzIndex{Score: 72, Level: domain.BuzzStable},
		Total: 3,
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/scan?max=7&model=DS7&tone=Positive", nil)
	newTestServer(scanner).Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var res ScanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Articles) != 1 || res.Articles[0].Model != "DS7" {
		t.Fatalf("unexpected articles: %+v", res.Articles)
	}
	if res.Buzz == nil || res.Buzz.Score != 72 || res.Buzz.Level != "Stable" {
		t.Fatalf("unexpected buzz: %+v", res.Buzz)
	}
	if res.Total != 3 {
		t.Fatalf("unexpected total: %d", res.Total)
	}
	if scanner.gotMax != 7 {
		t.Fatalf("max not propagated, got %d", scanner.gotMax)
	}
	if scanner.gotFilt.Model != "DS7" || scanner.gotFilt.Tone != "Positive" {
		t.Fatalf("filters not propagated: %+v", scanner.gotFilt)
	}
}

func TestScanEndpointDefaultsAndClamping(t *testing.T) {
	t.Parallel()

	scanner := &fakeScanner{err: domain.ErrNoArticles}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/scan?max=500", nil)
	newTestServer(scanner).Handler().ServeHTTP(w, req)

	if scanner.gotMax != usecase.MaxResults {
		t.Fatalf("expected max clamped to %d, got %d", usecase.MaxResults, scanner.gotMax)
	}
	if scanner.gotFilt.Model != usecase.FilterAll || scanner.gotFilt.Tone != usecase.FilterAll {
		t.Fatalf("expected all-filters by default: %+v", scanner.gotFilt)
	}
}

func TestScanEndpointNoArticles(t *testing.T) {
	t.Parallel()

	scanner := &fakeScanner{err: domain.ErrNoArticles}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/scan", nil)
	newTestServer(scanner).Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("empty result is informational, expected 200, got %d", w.Code)
	}

	var res ScanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Message != "Aucun article trouvé." {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if res.Buzz != nil {
		t.Fatalf("no buzz index without articles, got %+v", res.Buzz)
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	newTestServer(&fakeScanner{}).Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestDashboardRendersFormWithoutRunning(t *testing.T) {
	t.Parallel()

	scanner := &fakeScanner{}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	newTestServer(scanner).Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Lancer la veille") {
		t.Fatal("expected the scan form in the page")
	}
	if scanner.gotMax != 0 {
		t.Fatal("plain page load must not trigger a scan")
	}
}

func TestDashboardRunRendersTable(t *testing.T) {
	t.Parallel()

	scanner := &fakeScanner{result: usecase.Result{
		Articles: []domain.Article{{Title: "La DS7 impressionne", Model: "DS7", Tone: domain.ToneNeutral, Summary: "Résumé..."}},
		Buzz:     domain.BuzzIndex{Score: 90, Level: domain.BuzzSpike},
		Total:    1,
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?run=1&max=5&model=all&tone=all", nil)
	newTestServer(scanner).Handler().ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "La DS7 impressionne") {
		t.Fatal("expected the article row in the page")
	}
	if !strings.Contains(body, "90/100") || !strings.Contains(body, "Pic") {
		t.Fatal("expected the buzz metric in the page")
	}
}
