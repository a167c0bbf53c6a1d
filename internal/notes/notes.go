package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"Wirefill/internal/httputil"
	"Wirefill/internal/repo"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
	notifyTimeout    = 15 * time.Second
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type NoteRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=254"`
	Body  string `json:"body" validate:"required,max=4000"`
}

// Notifier is told about each stored note. A failing notifier never fails
// the submission.
type Notifier interface {
	NotifyNote(ctx context.Context, n repo.Note) error
}

type Handler struct {
	Repo     repo.Repository
	Notifier Notifier
	now      func() time.Time
	// notifySync makes Create wait for the notifier; used by tests.
	notifySync bool
	inflight   sync.WaitGroup
}

func NewHandler(r repo.Repository, n Notifier) *Handler {
	return &Handler{Repo: r, Notifier: n, now: time.Now}
}

func (r *NoteRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Body = strings.TrimSpace(r.Body)
}

// Validate returns a message naming the offending fields, or "" when valid.
func (r NoteRequest) Validate() string {
	err := validate.Struct(r)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.normalize()
	if msg := req.Validate(); msg != "" {
		httputil.Error(w, msg, http.StatusBadRequest)
		return
	}

	now := time.Now
	if h.now != nil {
		now = h.now
	}
	n := repo.Note{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Body:      req.Body,
		CreatedAt: now().UTC(),
	}
	if err := h.Repo.CreateNote(r.Context(), n); err != nil {
		slog.Error("Failed to store note", "error", err)
		httputil.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	slog.Info("Note received", "id", n.ID, "name", n.Name)

	if h.Notifier != nil {
		if h.notifySync {
			h.notify(context.Background(), n)
		} else {
			h.inflight.Add(1)
			go func() {
				defer h.inflight.Done()
				h.notify(context.WithoutCancel(r.Context()), n)
			}()
		}
	}

	httputil.JSON(w, http.StatusCreated, map[string]any{"id": n.ID, "status": "received"})
}

func (h *Handler) notify(ctx context.Context, n repo.Note) {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := h.Notifier.NotifyNote(ctx, n); err != nil {
		slog.Warn("Note notification failed", "id", n.ID, "error", err)
	}
}

// List returns the most recent notes, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			httputil.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxListLimit)
	}

	notes, err := h.Repo.ListNotes(r.Context(), limit)
	if err != nil {
		slog.Error("Failed to list notes", "error", err)
		httputil.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	httputil.JSON(w, http.StatusOK, notes)
}

// Wait blocks until notifications already started have finished or ctx is
// done. Call it after the server has stopped accepting requests.
func (h *Handler) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
