package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Wirefill/internal/config"
	"Wirefill/internal/notes"
	"Wirefill/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct{ notes []repo.Note }

func (m *memStore) CreateNote(_ context.Context, n repo.Note) error {
	m.notes = append(m.notes, n)
	return nil
}

func (m *memStore) ListNotes(context.Context, int) ([]repo.Note, error) { return m.notes, nil }

func (m *memStore) Ping(context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Port:              "8080",
		SiteOwner:         "Himanshu Deshpande",
		RateLimitRPS:      100,
		RateLimitBurst:    100,
		TokenKey:          "0123456789abcdef0123",
		AdminLogin:        "admin",
		AdminPasswordHash: "$2a$04$invalidinvalidinvalidinvalidinvalidinvalidinvalidinv",
	}
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRoutes_Calculator(t *testing.T) {
	h, err := newHandler(testConfig(), services{})
	require.NoError(t, err)

	w := serve(t, h, http.MethodPost, "/api/wireway/calc", `{"input":{"fla":100}}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "pending", resp["status"])

	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/api/tables/ampacity?size=750&temp=90", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/calculator", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(t, h, http.MethodGet, "/api/wireway/calc", "").Code)
}

func TestRoutes_NotesDisabled(t *testing.T) {
	h, err := newHandler(testConfig(), services{})
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, serve(t, h, http.MethodPost, "/api/notes", `{"name":"a","body":"b"}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, h, http.MethodGet, "/api/admin/notes", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, h, http.MethodPost, "/api/login", `{}`).Code)
}

func TestRoutes_NotesEnabled(t *testing.T) {
	store := &memStore{}
	h, err := newHandler(testConfig(), services{store: store})
	require.NoError(t, err)

	w := serve(t, h, http.MethodPost, "/api/notes", `{"name":"Ada","body":"Hello"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, store.notes, 1)

	assert.Equal(t, http.StatusUnauthorized, serve(t, h, http.MethodGet, "/api/admin/notes", "").Code)
	assert.Contains(t, serve(t, h, http.MethodGet, "/", "").Body.String(), `id="note-form"`)
}

func TestRoutes_NotesAndLoginLimitedSeparately(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.0001
	cfg.RateLimitBurst = 1
	h, err := newHandler(cfg, services{store: &memStore{}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, serve(t, h, http.MethodPost, "/api/notes", `{"name":"Ada","body":"one"}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(t, h, http.MethodPost, "/api/notes", `{"name":"Ada","body":"two"}`).Code)

	login := `{"login":"admin","password":"wrong"}`
	assert.Equal(t, http.StatusUnauthorized, serve(t, h, http.MethodPost, "/api/login", login).Code, "notes traffic must not spend the login budget")
	assert.Equal(t, http.StatusTooManyRequests, serve(t, h, http.MethodPost, "/api/login", login).Code)
}

type gatedNotifier struct {
	release chan struct{}
	sent    chan repo.Note
}

func (g *gatedNotifier) NotifyNote(_ context.Context, n repo.Note) error {
	<-g.release
	g.sent <- n
	return nil
}

func TestDrainNotes_WaitsForNotifications(t *testing.T) {
	store := &memStore{}
	n := &gatedNotifier{release: make(chan struct{}), sent: make(chan repo.Note, 1)}
	svc := services{store: store, notifier: n}
	svc.notes = notes.NewHandler(store, n)
	h, err := newHandler(testConfig(), svc)
	require.NoError(t, err)

	w := serve(t, h, http.MethodPost, "/api/notes", `{"name":"Ada","body":"hi"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, drainNotes(ctx, svc), context.DeadlineExceeded)

	close(n.release)
	require.NoError(t, drainNotes(context.Background(), svc))
	select {
	case got := <-n.sent:
		assert.Equal(t, "Ada", got.Name)
	default:
		t.Fatal("notification not delivered before drain returned")
	}

	assert.NoError(t, drainNotes(context.Background(), services{}))
}
