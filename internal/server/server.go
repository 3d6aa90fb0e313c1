package server

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"sync"

	"github.com/freejk/campscope/internal/utils"
	"github.com/freejk/campscope/pkg/records"
	"github.com/freejk/campscope/pkg/source"
	"github.com/freejk/campscope/pkg/storage"
)

//go:embed web
var WebFS embed.FS

type Server struct {
	Loader   *source.Loader
	Store    *storage.Store
	Username string
	Password string

	mu      sync.RWMutex
	dataset *records.Dataset
}

func New(loader *source.Loader, store *storage.Store, user, pass string) *Server {
	return &Server{
		Loader:   loader,
		Store:    store,
		Username: user,
		Password: pass,
	}
}

// Start loads the dataset once, then serves. A failed initial load is
// fatal; afterwards /api/reload is the only re-trigger.
func (s *Server) Start(addr string) error {
	if err := s.reload(context.Background()); err != nil {
		return err
	}

	mux := http.NewServeMux()

	// API Group
	mux.HandleFunc("GET /api/campaign", s.basicAuth(s.handleCampaign))
	mux.HandleFunc("GET /api/markets", s.basicAuth(s.handleMarkets))
	mux.HandleFunc("GET /api/records", s.basicAuth(s.handleRecords))
	mux.HandleFunc("GET /api/template", s.basicAuth(s.handleTemplate))
	mux.HandleFunc("POST /api/contacted", s.basicAuth(s.handleContacted))
	mux.HandleFunc("POST /api/reload", s.basicAuth(s.handleReload))

	// Static Files
	webRoot, err := fs.Sub(WebFS, "web")
	if err != nil {
		return err
	}
	fileServer := http.FileServer(http.FS(webRoot))
	mux.Handle("/", s.basicAuthMiddlewareForStatic(fileServer))

	utils.Log.Info("Starting server on ", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) reload(ctx context.Context) error {
	dataset, err := s.Loader.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.dataset = dataset
	s.mu.Unlock()
	return nil
}

func (s *Server) currentDataset() *records.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) basicAuthMiddlewareForStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
