package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/hangman-backend/internal/entity"
)

type session interface {
	Guess(ctx context.Context, letter string) (entity.GuessResult, entity.Snapshot)
	State(ctx context.Context) entity.Snapshot
	NewGame(ctx context.Context) entity.Snapshot
}

type guessRequest struct {
	Letter string `json:"letter"`
}

type guessResponse struct {
	Result entity.GuessResult `json:"result"`
	State  entity.Snapshot    `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger  *zap.SugaredLogger
	session session
}

func NewHandler(logger *zap.SugaredLogger, session session) *Handler {
	return &Handler{
		logger:  logger.With("component", "rest"),
		session: session,
	}
}

// Register mounts the ping and game routes on router.
func (that *Handler) Register(router chi.Router) {
	router.Get("/ping", that.ping)

	router.Route("/game", func(r chi.Router) {
		r.Use(that.logRequests)

		r.Get("/", that.state)
		r.Post("/guess", that.guess)
		r.Post("/new", that.newGame)
	})
}

func (that *Handler) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Handler) state(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.session.State(r.Context()))
}

func (that *Handler) guess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, state := that.session.Guess(r.Context(), req.Letter)
	that.writeJSON(w, http.StatusOK, guessResponse{Result: result, State: state})
}

func (that *Handler) newGame(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.session.NewGame(r.Context()))
}

func (that *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Errorw("failed to write response", "error", err)
	}
}

func (that *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		that.logger.Infow("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
