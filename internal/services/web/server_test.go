package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewHandlerServesTechnologiesPage(t *testing.T) {
	t.Parallel()

	h := mustHandler(t)
	for _, path := range []string{"/technologies", "/technologies/"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusOK)
		}
		body := rr.Body.String()
		for _, marker := range []string{"<title>О проекте</title>", `<h1 class="title">Технологии</h1>`, `alt="GitHub Actions"`} {
			if !strings.Contains(body, marker) {
				t.Fatalf("GET %s body missing %q", path, marker)
			}
		}
		if got := rr.Header().Get("Vary"); got != "HX-Request" {
			t.Fatalf("GET %s Vary = %q, want %q", path, got, "HX-Request")
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("GET %s missing request id header", path)
		}
	}
}

func TestNewHandlerRedirectsRoot(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mustHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/technologies" {
		t.Fatalf("Location = %q", got)
	}
}

func TestNewHandlerServesStaticStylesheet(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mustHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/styles.css", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/css") {
		t.Fatalf("content-type = %q, want text/css", got)
	}
}

func TestNewHandlerServesHealthAndMetrics(t *testing.T) {
	t.Parallel()

	h := mustHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = %d %q", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "foodgram_web_http_requests_total") {
		t.Fatalf("metrics body missing request counter")
	}
}

func TestNewHandlerRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mustHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/recipes/42", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Страница не найдена") {
		t.Fatalf("expected localized not found page")
	}
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{HTTPAddr: "  "}); err == nil {
		t.Fatal("expected http address error")
	}
}

func TestListenAndServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not stop after cancel")
	}
}

func TestServerNilSafety(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected nil server error")
	}
	server.Close()
}

func mustHandler(t *testing.T) http.Handler {
	t.Helper()

	h, err := NewHandler(Config{Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}
