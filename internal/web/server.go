// Package web serves the salary dashboard over HTTP: an HTML page with
// filters and charts, a JSON API and Prometheus metrics.
package web

import (
	"context"
	"crypto/subtle"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/fr4nk3nst1ner/salarydash/internal/config"
	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/metrics"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/ui"
)

// Loader fetches a fresh dataset for POST /api/refresh.
type Loader func(ctx context.Context) (*dataset.Dataset, error)

// state is one loaded dataset with everything derived from it. It is
// replaced as a whole on refresh and never modified.
type state struct {
	ds       *dataset.Dataset
	catalog  models.Catalog
	defaults models.Selection
}

// Server is the dashboard HTTP host.
type Server struct {
	cfg     config.Config
	load    Loader
	metrics *metrics.Metrics
	mux     *http.ServeMux
	tmpl    *template.Template

	mu    sync.RWMutex
	state *state
}

// New builds a server around an already loaded dataset. load may be nil,
// in which case refresh is unavailable.
func New(cfg config.Config, ds *dataset.Dataset, load Loader, m *metrics.Metrics) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		load:    load,
		metrics: m,
		mux:     http.NewServeMux(),
		tmpl:    tmpl,
	}
	s.swap(ds)
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	// Public endpoints
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/catalog", s.handleCatalog)
	s.mux.HandleFunc("/api/dashboard", s.handleDashboard)
	s.mux.Handle("/metrics", s.metrics.Handler())

	// Protected endpoints (require auth if WEB_USERNAME/WEB_PASSWORD set)
	s.mux.HandleFunc("/api/refresh", s.basicAuth(s.handleRefresh))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured port until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Web.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log := ui.Logger()
	if s.cfg.Web.Username != "" {
		log.Info("web server listening", log.Args("url", "http://localhost"+addr, "refresh_auth", "enabled"))
	} else {
		log.Warn("web server listening with every endpoint public; set WEB_USERNAME/WEB_PASSWORD to protect refresh",
			log.Args("url", "http://localhost"+addr))
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "web server failed")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "failed to shut down web server")
		}
		return nil
	}
}

// basicAuth wraps an http.HandlerFunc with HTTP Basic Authentication
func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	username := s.cfg.Web.Username
	password := s.cfg.Web.Password

	// No credentials configured, no auth
	if username == "" || password == "" {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()

		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1

		if !ok || !userMatch || !passMatch {
			w.Header().Set("WWW-Authenticate", `Basic realm="salarydash"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

// current returns the dataset in use. The result must not be modified.
func (s *Server) current() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Server) swap(ds *dataset.Dataset) {
	catalog := filter.BuildCatalog(ds.Records)
	st := &state{
		ds:       ds,
		catalog:  catalog,
		defaults: s.cfg.InitialSelection(ds.Records, catalog),
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}
