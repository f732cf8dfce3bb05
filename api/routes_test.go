package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/netpost/stringshop/api"
	dbfs "github.com/netpost/stringshop/db"
	"github.com/netpost/stringshop/internal/config"
	dbpkg "github.com/netpost/stringshop/internal/db"
	"github.com/netpost/stringshop/pkg/models"
)

// Full journey through the real router: register, log in, create a job, list
// it, update its workflow, delete it twice.
func TestRoutesEndToEnd(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file:routestest?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer d.Close()
	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Addr:            ":0",
		DatabasePath:    "ignored",
		SessionSecret:   "routes-secret",
		SessionDuration: time.Hour,
		APITimeout:      5 * time.Second,
	}
	router := api.SetupRoutes(cfg, "test", "now", d)

	do := func(method, path string, form url.Values, cookie *http.Cookie) *http.Response {
		t.Helper()
		var req *http.Request
		if form != nil {
			req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		if cookie != nil {
			req.AddCookie(cookie)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Result()
	}

	// anonymous requests to protected routes bounce to the login view
	res := do(http.MethodGet, "/racket", nil, nil)
	if res.StatusCode != http.StatusSeeOther || res.Header.Get("Location") != "/login" {
		t.Fatalf("anonymous: expected 303 to /login, got %d %q", res.StatusCode, res.Header.Get("Location"))
	}

	// open endpoints answer without a session
	if res := do(http.MethodGet, "/healthcheck", nil, nil); res.StatusCode != http.StatusOK {
		t.Fatalf("healthcheck: expected 200 got %d", res.StatusCode)
	}
	if res := do(http.MethodGet, "/login", nil, nil); res.StatusCode != http.StatusOK {
		t.Fatalf("login page: expected 200 got %d", res.StatusCode)
	}

	// register, then log in
	creds := url.Values{"username": {"workshop"}, "password": {"racketstring"}}
	res = do(http.MethodPost, "/register", creds, nil)
	if res.StatusCode != http.StatusSeeOther || res.Header.Get("Location") != "/login" {
		t.Fatalf("register: expected 303 to /login, got %d %q", res.StatusCode, res.Header.Get("Location"))
	}

	res = do(http.MethodPost, "/login", url.Values{"username": {"workshop"}, "password": {"wrong-password"}}, nil)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401 got %d", res.StatusCode)
	}

	res = do(http.MethodPost, "/login", creds, nil)
	if res.StatusCode != http.StatusSeeOther || res.Header.Get("Location") != "/racket" {
		t.Fatalf("login: expected 303 to /racket, got %d %q", res.StatusCode, res.Header.Get("Location"))
	}
	var session *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == api.SessionCookieName {
			session = c
		}
	}
	if session == nil {
		t.Fatalf("login did not set a session cookie")
	}

	// create a job
	res = do(http.MethodPost, "/racket", url.Values{
		"player_name":  {"Ana"},
		"phone_number": {"555-1234"},
		"racket_brand": {"Yonex"},
		"racket_model": {"EZONE 98"},
		"string_main":  {"Poly"},
		"string_cross": {"Poly"},
		"tension":      {"55"},
	}, session)
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("create: expected 303 got %d", res.StatusCode)
	}

	// list: the new job is present, In Progress, unpaid, unassigned
	res = do(http.MethodGet, "/racket", nil, session)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", res.StatusCode)
	}
	var list struct {
		OrdersToday   int64           `json:"orders_today"`
		FinishedToday int64           `json:"finished_today"`
		Items         []models.Racket `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	res.Body.Close()
	if list.OrdersToday != 1 || list.FinishedToday != 0 || len(list.Items) != 1 {
		t.Fatalf("list wrong: %+v", list)
	}
	job := list.Items[0]
	if job.Status != models.StatusInProgress || job.Payment || job.Stringer != "" {
		t.Fatalf("job wrong: %#v", job)
	}

	// mark it finished, assign a stringer, record payment
	idPath := "/racket/" + strconv.FormatInt(job.ID, 10)
	res = do(http.MethodPost, idPath, url.Values{"status": {"Finished"}, "stringer": {"Sam"}, "paid": {"on"}}, session)
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("update: expected 303 got %d", res.StatusCode)
	}

	res = do(http.MethodGet, "/racket", nil, session)
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		t.Fatalf("decode second list: %v", err)
	}
	res.Body.Close()
	if list.FinishedToday != 1 {
		t.Fatalf("expected 1 finished today, got %d", list.FinishedToday)
	}
	if got := list.Items[0]; got.Status != models.StatusFinished || got.Stringer != "Sam" || !got.Payment {
		t.Fatalf("update not persisted: %#v", got)
	}
	if got := list.Items[0]; got.PlayerName != "Ana" || got.Tension != 55 {
		t.Fatalf("update touched customer fields: %#v", got)
	}

	// two-phase delete, then a second delete is a clean 404
	if res := do(http.MethodGet, idPath+"/delete", nil, session); res.StatusCode != http.StatusOK {
		t.Fatalf("confirm delete: expected 200 got %d", res.StatusCode)
	}
	if res := do(http.MethodPost, idPath+"/delete", nil, session); res.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", res.StatusCode)
	}
	if res := do(http.MethodPost, idPath+"/delete", nil, session); res.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete: expected 404 got %d", res.StatusCode)
	}

	// placeholder views stay behind the gate
	if res := do(http.MethodGet, "/history", nil, nil); res.StatusCode != http.StatusSeeOther {
		t.Fatalf("history anonymous: expected 303 got %d", res.StatusCode)
	}
	if res := do(http.MethodGet, "/history", nil, session); res.StatusCode != http.StatusOK {
		t.Fatalf("history: expected 200 got %d", res.StatusCode)
	}

	// logout clears the session
	res = do(http.MethodPost, "/logout", nil, session)
	if res.StatusCode != http.StatusSeeOther || res.Header.Get("Location") != "/login" {
		t.Fatalf("logout: expected 303 to /login, got %d", res.StatusCode)
	}
}
