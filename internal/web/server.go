// Package web serves the dashboard page and its JSON view.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/spacesedan/sentidash/internal/report"
	"github.com/spacesedan/sentidash/internal/selection"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"share": formatShare,
}).ParseFS(templateFS, "templates/dashboard.html"))

type Options struct {
	// SessionTTL bounds the session cookie lifetime. Zero means a browser
	// session cookie.
	SessionTTL time.Duration
}

type Server struct {
	dashboard *report.Dashboard
	store     selection.Store
	opts      Options
	mux       *http.ServeMux
}

func NewServer(d *report.Dashboard, store selection.Store, opts Options) *Server {
	s := &Server{
		dashboard: d,
		store:     store,
		opts:      opts,
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /select", s.handleSelect)
	s.mux.HandleFunc("GET /api/report", s.handleReport)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	return s
}

func (s *Server) Handler() http.Handler {
	return logRequests(s.mux)
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("[Web] Dashboard listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("[Web] server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("[Web] Shutting down dashboard gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

// loadSelection falls back to Unselected when the store is unavailable so
// the page still renders.
func (s *Server) loadSelection(ctx context.Context, id string) selection.Selection {
	sel, err := s.store.Load(ctx, id)
	if err != nil {
		slog.Warn("[Web] Failed to load selection, rendering unselected",
			slog.String("session", id),
			slog.String("error", err.Error()))
		return selection.Unselected
	}
	return sel
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r, s.opts.SessionTTL)
	view := s.dashboard.Render(s.loadSelection(r.Context(), id))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, newPage(view)); err != nil {
		slog.Error("[Web] Failed to render dashboard",
			slog.String("error", err.Error()))
	}
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	group, err := selection.ParseGroup(r.PostForm.Get("group"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	keyword := r.PostForm.Get("keyword")

	id := sessionID(w, r, s.opts.SessionTTL)
	current := s.loadSelection(r.Context(), id)
	next := selection.Toggle(current, selection.Select(group, keyword))

	if err := s.store.Save(r.Context(), id, next); err != nil {
		slog.Error("[Web] Failed to save selection",
			slog.String("session", id),
			slog.String("error", err.Error()))
	}

	slog.Debug("[Web] Selection toggled",
		slog.String("session", id),
		slog.String("group", group.String()),
		slog.String("keyword", keyword),
		slog.Bool("active", next.Active()))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r, s.opts.SessionTTL)
	view := s.dashboard.Render(s.loadSelection(r.Context(), id))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		slog.Error("[Web] Failed to encode report",
			slog.String("error", err.Error()))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func formatShare(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
