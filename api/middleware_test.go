package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/netpost/stringshop/api"
)

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handler := api.LoggingMiddleware(next)
	req := httptest.NewRequest(http.MethodGet, "/log", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if string(b) != "ok" {
		t.Fatalf("unexpected body: %q", string(b))
	}
	if res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	// handler that panics
	pan := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := api.RecoveryMiddleware(pan)
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 from panic recovery, got %d", res.StatusCode)
	}

	// normal handler should pass through
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler2 := api.RecoveryMiddleware(ok)
	w2 := httptest.NewRecorder()
	handler2.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w2.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for normal path, got %d", w2.Result().StatusCode)
	}
}

func TestSessionMiddleware(t *testing.T) {
	secret := "s3cr3t"
	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v, ok := r.Context().Value(api.CtxUserID).(int64); ok {
			gotUserID = v
		}
		w.WriteHeader(http.StatusOK)
	})
	mw := api.SessionMiddleware(secret)
	handler := mw(next)

	cases := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
	}{
		{name: "MissingCookie", cookie: nil, wantStatus: http.StatusSeeOther},
		{name: "GarbageToken", cookie: &http.Cookie{Name: api.SessionCookieName, Value: "bad.token.here"}, wantStatus: http.StatusSeeOther},
	}

	// a signed but expired session reads as anonymous
	expired, err := api.SessionCookie(secret, 7, "workshop", -time.Minute)
	if err != nil {
		t.Fatalf("build expired cookie: %v", err)
	}
	cases = append(cases, struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
	}{name: "ExpiredToken", cookie: expired, wantStatus: http.StatusSeeOther})

	// a session signed with a different secret reads as anonymous
	forged, err := api.SessionCookie("othersecret", 7, "workshop", time.Hour)
	if err != nil {
		t.Fatalf("build forged cookie: %v", err)
	}
	cases = append(cases, struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
	}{name: "ForgedToken", cookie: forged, wantStatus: http.StatusSeeOther})

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/racket", nil)
			if c.cookie != nil {
				req.AddCookie(c.cookie)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			res := w.Result()
			defer res.Body.Close()
			if res.StatusCode != c.wantStatus {
				t.Fatalf("%s: want %d got %d", c.name, c.wantStatus, res.StatusCode)
			}
			if loc := res.Header.Get("Location"); loc != "/login" {
				t.Fatalf("%s: expected redirect to /login, got %q", c.name, loc)
			}
		})
	}

	// valid session passes through and exposes the user id
	cookie, err := api.SessionCookie(secret, 7, "workshop", time.Hour)
	if err != nil {
		t.Fatalf("build cookie: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/racket", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("valid session: expected 200 got %d", w.Result().StatusCode)
	}
	if gotUserID != 7 {
		t.Fatalf("expected user id 7 in context, got %d", gotUserID)
	}
}
