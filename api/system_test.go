package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/netpost/stringshop/api"
	dbpkg "github.com/netpost/stringshop/internal/db"
)

func TestHealthHandler(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file:healthtest?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	handler := api.NewSystemHandler(d)

	w := httptest.NewRecorder()
	handler.HealthHandler(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "It works.") {
		t.Fatalf("unexpected body: %s", string(b))
	}

	// a broken database surfaces a 500 with the error text
	d.Close()
	w = httptest.NewRecorder()
	handler.HealthHandler(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	res2 := w.Result()
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 after close, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "broken") {
		t.Fatalf("unexpected error body: %s", string(b2))
	}
}

func TestVersionHandler(t *testing.T) {
	handler := api.NewSystemHandler(nil)
	w := httptest.NewRecorder()
	handler.VersionHandler("1.2.3", "today")(w, httptest.NewRequest(http.MethodGet, "/version", nil))
	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "1.2.3") || !strings.Contains(string(b), "today") {
		t.Fatalf("unexpected body: %s", string(b))
	}
}
