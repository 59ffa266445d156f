package api

import (
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/archiview/pkg/buildinfo"
	"github.com/matzehuels/archiview/pkg/export"
	"github.com/matzehuels/archiview/pkg/view"
)

// DefaultMaxBody limits the size of a posted model file.
const DefaultMaxBody = 4 << 20

// Server renders posted model files.
type Server struct {
	renderer *view.Renderer
	svg      export.SVGRenderer
	logger   *log.Logger
	maxBody  int64
	timeout  time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithSVG enables POST /api/v1/render/svg.
func WithSVG(r export.SVGRenderer) Option {
	return func(s *Server) { s.svg = r }
}

// WithMaxBody overrides DefaultMaxBody.
func WithMaxBody(n int64) Option {
	return func(s *Server) { s.maxBody = n }
}

// WithRequestTimeout bounds a whole render request. Zero means no bound
// beyond the renderer's own per-view timeout.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// New creates a server that renders views with renderer.
// A nil logger discards output.
func New(renderer *view.Renderer, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{renderer: renderer, logger: logger, maxBody: DefaultMaxBody}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(hooks)
	r.Use(chimiddleware.SetHeader("Server", buildinfo.UserAgent()))
	if s.timeout > 0 {
		r.Use(chimiddleware.Timeout(s.timeout))
	}

	r.Get("/health", s.health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/viewpoints", s.listViewpoints)
		r.Get("/kinds", s.listKinds)
		r.Route("/render", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/toml", "application/yaml", "text/yaml", "application/x-yaml", "text/plain", "application/octet-stream"))
			r.Post("/", s.render)
			r.Post("/svg", s.renderSVG)
		})
	})
	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}
