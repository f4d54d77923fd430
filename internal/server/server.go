// Package server implements the resumeforge HTTP render service.
//
// The service exposes a single rendering endpoint plus small operational
// endpoints for stats and liveness:
//
//   - POST /v1/render?format=yaml|toml|json - render the request body to PDF
//   - GET  /v1/stats                        - render and cache counters
//   - GET  /healthz                         - liveness probe
//
// Rendering flows through the same [pipeline.Runner] the CLI uses, so server
// deployments get artifact caching for free. Completed renders are archived
// as receipts through an [Archive] when one is configured.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/resumeforge/resumeforge/pkg/errors"
	"github.com/resumeforge/resumeforge/pkg/observability"
	"github.com/resumeforge/resumeforge/pkg/pipeline"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// maxBodyBytes caps render request bodies. Resume documents are small text
// files; anything past this is either abuse or the wrong endpoint.
const maxBodyBytes = 2 << 20

// Server handles HTTP render requests.
type Server struct {
	runner   *pipeline.Runner
	archive  Archive
	counters *Counters
	logger   *log.Logger
}

// Options configures a Server.
type Options struct {
	// Runner executes the compose and render stages. Required.
	Runner *pipeline.Runner

	// Archive receives a receipt for every completed render.
	// Defaults to NullArchive.
	Archive Archive

	// Logger receives request-level log lines. Defaults to a silent logger.
	Logger *log.Logger
}

// New creates a Server and registers its counters with the observability
// hooks so pipeline and cache events feed the stats endpoint. The server is
// expected to own the process; hook registration is global.
func New(opts Options) *Server {
	if opts.Archive == nil {
		opts.Archive = NullArchive{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Server{
		runner:   opts.Runner,
		archive:  opts.Archive,
		counters: NewCounters(),
		logger:   opts.Logger,
	}
	observability.SetPipelineHooks(s.counters)
	observability.SetCacheHooks(s.counters)
	return s
}

// Handler returns the routed HTTP handler for the service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Post("/v1/render", s.handleRender)
	r.Get("/v1/stats", s.handleStats)
	r.Get("/healthz", s.handleHealth)
	return r
}

// logRequests emits one structured log line per completed request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// handleRender parses the request body as a resume document and replies with
// the rendered PDF.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format, err := resume.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeParse, err, "reading request body"))
		return
	}

	doc, err := resume.Load(body, format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.runner.Execute(ctx, doc, pipeline.Options{
		Format: pipeline.FormatPDF,
		Logger: s.logger,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	// Receipts are best effort: a dead archive must not fail the render.
	receipt := NewReceipt(result.DocHash, doc.Personal.Name, len(result.PDF))
	if err := s.archive.Save(ctx, receipt); err != nil {
		s.logger.Warn("archiving receipt failed", "id", receipt.ID, "error", err)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.OutputFilename()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.PDF)
}

// handleStats replies with the accumulated render and cache counters.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.counters.Snapshot())
}

// handleHealth replies with a liveness acknowledgment.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// writeError replies with the JSON error form and the HTTP status mapped
// from the error code.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorReply{
		Code:  string(errors.GetCode(err)),
		Error: errors.UserMessage(err),
	})
}

// errorReply is the JSON body returned for failed requests.
type errorReply struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// statusFromError maps the structured error taxonomy onto HTTP statuses.
// Malformed input is the client's fault, valid-but-wrong input is
// unprocessable, and everything else is on us.
func statusFromError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeParse, errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeValidation:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
