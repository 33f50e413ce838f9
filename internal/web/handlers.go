package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/pipeline"
	"github.com/fr4nk3nst1ner/salarydash/internal/ui"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	st := s.current()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "OK\nrecords: %d\nfingerprint: %016x\n", len(st.ds.Records), st.ds.Fingerprint)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	st := s.current()

	response := struct {
		Source      string           `json:"source"`
		LoadedAt    time.Time        `json:"loaded_at"`
		Records     int              `json:"records"`
		Dropped     int              `json:"dropped"`
		Fingerprint string           `json:"fingerprint"`
		Catalog     models.Catalog   `json:"catalog"`
		Defaults    models.Selection `json:"defaults"`
	}{
		Source:      st.ds.Source,
		LoadedAt:    st.ds.LoadedAt,
		Records:     len(st.ds.Records),
		Dropped:     st.ds.Dropped,
		Fingerprint: fmt.Sprintf("%016x", st.ds.Fingerprint),
		Catalog:     st.catalog,
		Defaults:    st.defaults,
	}
	writeJSON(w, http.StatusOK, response)
}

// render computes the dashboard of sel and records it in the metrics.
func (s *Server) render(st *state, sel models.Selection) pipeline.Dashboard {
	start := time.Now()
	d := pipeline.RenderWith(st.ds.Records, sel, s.cfg.Limits())
	s.metrics.ObserveRender("web", d, time.Since(start))
	return d
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	st := s.current()

	q := r.URL.Query()
	sel, err := selectionFromQuery(q, st.defaults)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	limit := s.cfg.Display.Records
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
	}

	tag := etag(st.ds.Fingerprint, sel, strconv.Itoa(limit))
	w.Header().Set("ETag", tag)
	if r.Header.Get("If-None-Match") == tag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	d := s.render(st, sel)
	total := len(d.Records)
	if limit >= 0 && total > limit {
		d.Records = d.Records[:limit]
	}
	w.Header().Set("X-Total-Records", strconv.Itoa(total))
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}
	if s.load == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "refresh is not available"})
		return
	}

	log := ui.Logger()
	ds, err := s.load(r.Context())
	s.metrics.ObserveLoad(ds, err)
	if err != nil {
		// Keep serving the previous dataset.
		log.Error("dataset refresh failed", log.Args("error", err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	s.swap(ds)
	log.Info("dataset refreshed", log.Args("records", len(ds.Records), "fingerprint", fmt.Sprintf("%016x", ds.Fingerprint)))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"records":     len(ds.Records),
		"dropped":     ds.Dropped,
		"fingerprint": fmt.Sprintf("%016x", ds.Fingerprint),
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	st := s.current()

	sel, err := selectionFromQuery(r.URL.Query(), st.defaults)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page := s.newPage(st, s.render(st, sel))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "dashboard.html", page); err != nil {
		ui.Logger().Error("failed to render page", ui.Logger().Args("error", err))
	}
}

func allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	return false
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ui.Logger().Error("failed to encode response", ui.Logger().Args("error", err))
	}
}
