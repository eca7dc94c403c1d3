package main

import (
	"database/sql"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/CTAG07/Sundew/pkg/animation"
	"github.com/CTAG07/Sundew/pkg/gallery"
)

// pageTemplate composes every stored figure into one page, in insertion order.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Figures}}<section class="figure" id="figure-{{.FileID}}">
<h2>{{.FileID}}</h2>
{{.Fragment}}
</section>
{{else}}<p>No figures yet.</p>
{{end}}</body>
</html>
`

// pageData is passed to pageTemplate.
type pageData struct {
	Title   string
	Figures []gallery.Entry
}

type Server struct {
	config    *Config
	db        *sql.DB
	logger    *slog.Logger
	store     *gallery.Store
	assembler *animation.Assembler
	authAPI   *AuthAPI
	figureAPI *FigureAPI
	serverAPI *ServerAPI
	page      *template.Template
	mux       *http.ServeMux
}

// NewServer wires the gallery store, the assembler displaying into it and
// every API onto a single mux. The schemas must already exist.
func NewServer(config *Config, configPath string, logger *slog.Logger, db *sql.DB, assets *animation.Assets, actionChan chan string) (*Server, error) {
	store, err := gallery.NewStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery store: %w", err)
	}
	store.SetLogger(logger)

	assembler, err := animation.NewAssembler(logger, config.Animation, assets, store)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to create assembler: %w", err)
	}

	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	server := &Server{
		config:    config,
		db:        db,
		logger:    logger,
		store:     store,
		assembler: assembler,
		authAPI:   NewAuthAPI(db, logger),
		figureAPI: NewFigureAPI(assembler, store, logger),
		serverAPI: NewServerAPI(config, configPath, actionChan, logger),
		page:      page,
		mux:       http.NewServeMux(),
	}

	apiMux := http.NewServeMux()
	server.authAPI.RegisterRoutes(apiMux)
	server.figureAPI.RegisterRoutes(apiMux)
	server.serverAPI.RegisterRoutes(apiMux)

	// Every api route passes through authentication, except the health check.
	server.mux.HandleFunc("/api/health", server.serverAPI.handleHealthCheck)
	server.mux.Handle("/api/", server.authAPI.Authenticate(apiMux))
	server.mux.HandleFunc("/favicon.ico", handleFavicon)
	server.mux.HandleFunc("/", server.handlePage)

	return server, nil
}

// Close releases the prepared statements held by the server.
func (s *Server) Close() {
	s.store.Close()
}

// handlePage renders all stored figures as one page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	figures, err := s.store.Fragments(r.Context())
	if err != nil {
		s.logger.Error("Failed to load figures for page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = s.page.Execute(w, pageData{Title: s.config.Server.PageTitle, Figures: figures}); err != nil {
		s.logger.Error("Failed to render page template", "error", err)
	}
}

// handleFavicon answers favicon requests with no content.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
