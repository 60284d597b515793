// Package server exposes tray layouts over HTTP for preview.
//
// The server renders on demand through the pipeline Runner, so repeated
// requests for the same tray are served from the layout cache. Routes:
//
//	GET /api/trays                      project tray listing
//	GET /api/trays/{name}/layout.svg    rendered layout
//	GET /api/trays/{name}/layout.png
//	GET /api/trays/{name}/layout.json   plan data
//	GET /api/routes.svg                 route graph across all trays
//	GET /healthz
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/pipeline"
	"github.com/MrToKa/traylay/pkg/render/routegraph"
)

// Server serves layout previews for one project.
type Server struct {
	runner *pipeline.Runner
	opts   pipeline.Options
	logger *log.Logger
}

// New creates a server that renders the project named by opts.ProjectPath
// through the given runner.
func New(runner *pipeline.Runner, opts pipeline.Options, logger *log.Logger) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, opts: opts, logger: logger}
}

// Handler builds the HTTP routing table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(hooksMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/api/trays", s.handleTrays)
	r.Get("/api/trays/{name}/layout.svg", s.handleLayout(pipeline.FormatSVG))
	r.Get("/api/trays/{name}/layout.png", s.handleLayout(pipeline.FormatPNG))
	r.Get("/api/trays/{name}/layout.json", s.handleLayout(pipeline.FormatJSON))
	r.Get("/api/routes.svg", s.handleRoutes)

	return r
}

// trayInfo is one row of the tray listing.
type trayInfo struct {
	Name       string  `json:"name"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	CableCount int     `json:"cable_count"`
}

func (s *Server) handleTrays(w http.ResponseWriter, r *http.Request) {
	p, _, err := pipeline.Load(r.Context(), s.opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	infos := make([]trayInfo, len(p.Trays))
	for i, t := range p.Trays {
		infos[i] = trayInfo{
			Name:       t.Name,
			Width:      t.Width,
			Height:     t.Height,
			CableCount: len(p.Cables(t.Name)),
		}
	}
	s.writeJSON(w, infos)
}

func (s *Server) handleLayout(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		opts := s.opts
		opts.Tray = name
		opts.Formats = []string{format}
		opts.Logger = s.logger

		result, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", contentType(format))
		_, _ = w.Write(result.Artifacts[name][format])
	}
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	p, _, err := pipeline.Load(r.Context(), s.opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	detailed := r.URL.Query().Get("detailed") == "true"
	dot := routegraph.ToDOT(p.AllCables(), routegraph.Options{Detailed: detailed})
	svg, err := routegraph.RenderSVG(dot)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatPDF:
		return "application/pdf"
	default:
		return "application/json"
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:   string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeTrayNotFound, errors.ErrCodeNotFound,
		errors.ErrCodeFileNotFound, errors.ErrCodeProjectNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDimensions,
		errors.ErrCodeInvalidDiameter, errors.ErrCodeInvalidCategory,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidProject,
		errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
