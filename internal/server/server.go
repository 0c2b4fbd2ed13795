// Package server exposes resilience analysis over HTTP.
//
// Routes:
//
//	GET  /healthz         liveness probe, answers "OK"
//	POST /v1/resilience   analyze the posted graph
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/katalvlaran/resilience/attack"
	"github.com/katalvlaran/resilience/core"
	"github.com/katalvlaran/resilience/internal/report"
)

// maxBodyBytes caps the size of a posted graph.
const maxBodyBytes = 32 << 20

// Request is the body of POST /v1/resilience. Adjacency maps each node to
// its neighbors and must be symmetric. Strategy defaults to "fast".
type Request struct {
	Adjacency map[int][]int `json:"adjacency"`
	Strategy  string        `json:"strategy"`
	Seed      int64         `json:"seed"`
}

// Response is the body of a successful POST /v1/resilience.
type Response struct {
	Order []int `json:"order"`
	Curve []int `json:"curve"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the HTTP API.
type Handler struct {
	logger *zap.Logger
}

// NewRouter returns the routed API handler.
func NewRouter(logger *zap.Logger) *mux.Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{logger: logger}

	router := mux.NewRouter()
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/v1/resilience", h.Resilience).Methods(http.MethodPost)

	return router
}

// Health answers liveness probes.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Resilience decodes a Request, runs the analysis and writes a Response.
// Malformed bodies and graphs the analysis rejects yield 400.
func (h *Handler) Resilience(w http.ResponseWriter, r *http.Request) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	strategy := attack.FastTargeted
	if req.Strategy != "" {
		s, err := attack.ParseStrategy(req.Strategy)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err)
			return
		}
		strategy = s
	}

	g, err := core.FromAdjacency(req.Adjacency)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	rep, err := report.Analyze(g, strategy, req.Seed, h.logger)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrInconsistentGraph) || errors.Is(err, attack.ErrUnknownStrategy) {
			status = http.StatusBadRequest
		}
		h.writeError(w, status, err)
		return
	}
	h.logger.Info("resilience request served",
		zap.String("strategy", string(strategy)),
		zap.Int("nodes", rep.Nodes),
		zap.Int("edges", rep.Edges))

	h.writeJSON(w, http.StatusOK, Response{Order: rep.Order, Curve: rep.Curve})
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.logger.Warn("resilience request rejected", zap.Int("status", status), zap.Error(err))
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("err while encoding response", zap.Error(err))
	}
}

// Serve runs the API on addr until ctx is canceled, then shuts the server
// down gracefully.
func Serve(ctx context.Context, addr string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
