// Package api serves the drill engine over JSON HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/biblegym/internal/app"
	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/drillgen"
	"github.com/abhisek/biblegym/internal/llm"
	"github.com/abhisek/biblegym/internal/mastery"
	"github.com/abhisek/biblegym/internal/workout"
)

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	corpus *corpus.Corpus
	gen    *drillgen.Generator
	engine *app.Engine
	now    func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithEngine enables state endpoints and practice recording.
func WithEngine(e *app.Engine) Option {
	return func(h *Handler) { h.engine = e }
}

// WithClock overrides the handler's notion of now.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// New creates a Handler.
func New(c *corpus.Corpus, gen *drillgen.Generator, opts ...Option) *Handler {
	h := &Handler{corpus: c, gen: gen, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/passages", h.handlePassages)
		r.Get("/packs", h.handlePacks)
		r.Get("/workouts/daily", h.handleDailyWorkout)
		r.Post("/workouts/themed", h.handleThemedWorkout)
		r.Post("/drills/practice", h.handlePractice)
		r.Post("/drills/score", h.handleScore)
		r.Post("/mastery/display", h.handleMasteryDisplay)
		r.Post("/mastery/attempt", h.handleMasteryAttempt)
		r.Get("/state", h.handleState)
	})
}

func (h *Handler) handlePassages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.corpus.Passages)
}

func (h *Handler) handlePacks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.corpus.MasteryPacks)
}

func (h *Handler) handleDailyWorkout(w http.ResponseWriter, r *http.Request) {
	day := h.now()
	if s := r.URL.Query().Get("date"); s != "" {
		d, err := time.ParseInLocation(time.DateOnly, s, day.Location())
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		day = d
	}

	wk, err := workout.GenerateDaily(h.corpus, r.URL.Query().Get("user"), day)
	if err != nil {
		h.fail(w, "daily workout failed", err)
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

type themedRequest struct {
	Theme string `json:"theme"`
}

func (h *Handler) handleThemedWorkout(w http.ResponseWriter, r *http.Request) {
	var req themedRequest
	if !readJSON(w, r, &req) {
		return
	}
	if h.gen == nil || !h.gen.HasProvider() {
		writeError(w, http.StatusServiceUnavailable, "AI generation is not configured")
		return
	}

	wk, err := h.gen.ThemedWorkout(r.Context(), req.Theme)
	if err != nil {
		h.fail(w, "themed workout failed", err)
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

type practiceRequest struct {
	Type  string `json:"type"`
	By    string `json:"by"`
	Value string `json:"value"`
}

func (h *Handler) handlePractice(w http.ResponseWriter, r *http.Request) {
	var req practiceRequest
	if !readJSON(w, r, &req) {
		return
	}
	if h.gen == nil {
		writeError(w, http.StatusServiceUnavailable, "drill generator is not configured")
		return
	}
	kind, err := drill.ParseKind(req.Type)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res, err := h.gen.Practice(r.Context(), kind, drillgen.PracticeConfig{By: req.By, Value: req.Value})
	if err != nil {
		h.fail(w, "practice drill failed", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type scoreRequest struct {
	Drill       json.RawMessage `json:"drill"`
	Answers     drill.Answers   `json:"answers"`
	AIGenerated bool            `json:"aiGenerated"`
	Record      bool            `json:"record"`
}

type scoreResponse struct {
	Score int `json:"score"`
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !readJSON(w, r, &req) {
		return
	}
	d, err := drill.Decode(req.Drill)
	if errors.Is(err, drill.ErrUnknownKind) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	score, err := drill.Score(d, req.Answers)
	if err != nil {
		h.fail(w, "scoring failed", err)
		return
	}

	if req.Record && h.engine != nil {
		if err := h.engine.RecordPractice(r.Context(), d.Kind(), score, req.AIGenerated); err != nil {
			slog.Warn("failed to record practice score", "kind", d.Kind(), "error", err)
		}
	}
	writeJSON(w, http.StatusOK, scoreResponse{Score: score})
}

type displayRequest struct {
	Passage corpus.Passage `json:"passage"`
	Level   mastery.Level  `json:"level"`
}

type displayResponse struct {
	Level       mastery.Level `json:"level"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Text        string        `json:"text"`
}

func (h *Handler) handleMasteryDisplay(w http.ResponseWriter, r *http.Request) {
	var req displayRequest
	if !readJSON(w, r, &req) {
		return
	}
	if !req.Level.Valid() {
		writeError(w, http.StatusUnprocessableEntity, mastery.ErrInvalidLevel.Error())
		return
	}
	writeJSON(w, http.StatusOK, displayResponse{
		Level:       req.Level,
		Name:        req.Level.Name(),
		Description: req.Level.Description(),
		Text:        mastery.Display(req.Passage.Reference, req.Passage.Text, req.Level),
	})
}

type attemptRequest struct {
	Mastery *mastery.VerseMastery `json:"mastery"`
	Level   mastery.Level         `json:"level"`
	Input   string                `json:"input"`
	Seconds int                   `json:"seconds"`
}

type attemptResponse struct {
	Accuracy      int                   `json:"accuracy"`
	Passed        bool                  `json:"passed"`
	Trigger       string                `json:"trigger"`
	NewlyMastered bool                  `json:"newlyMastered"`
	Mastery       *mastery.VerseMastery `json:"mastery"`
}

func (h *Handler) handleMasteryAttempt(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Mastery == nil {
		writeError(w, http.StatusBadRequest, "mastery record is required")
		return
	}

	if err := req.Mastery.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	rec := req.Mastery.Clone()
	a := mastery.Attempt{
		Level:    req.Level,
		Accuracy: mastery.Accuracy(req.Input, rec.Passage.Text),
		Seconds:  req.Seconds,
		At:       h.now(),
	}
	tr, err := rec.Complete(a)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, attemptResponse{
		Accuracy:      a.Accuracy,
		Passed:        a.Passed(),
		Trigger:       tr.Trigger,
		NewlyMastered: tr.NewlyMastered(),
		Mastery:       rec,
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil {
		writeError(w, http.StatusServiceUnavailable, "no state store attached")
		return
	}
	writeJSON(w, http.StatusOK, h.engine.State())
}

// fail maps engine errors onto status codes.
func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	var (
		verr *drillgen.ValidationError
		lerr *llm.Error
	)
	switch {
	case errors.Is(err, corpus.ErrEmptyCollection),
		errors.Is(err, drillgen.ErrEmptyTheme),
		errors.Is(err, drill.ErrUnknownKind):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, drillgen.ErrNoProvider):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &verr), errors.As(err, &lerr):
		slog.Warn(msg, "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		slog.Error(msg, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+strings.TrimSpace(err.Error()))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
