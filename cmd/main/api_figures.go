package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/CTAG07/Sundew/pkg/animation"
	"github.com/CTAG07/Sundew/pkg/gallery"
)

// FigureAPI holds the dependencies for the figure API handlers.
type FigureAPI struct {
	assembler *animation.Assembler
	store     *gallery.Store
	logger    *slog.Logger
}

// FigureRequest is the JSON body accepted by the create and preview endpoints.
type FigureRequest struct {
	FileID string           `json:"file_id"`
	Figure animation.Figure `json:"figure"`
}

// NewFigureAPI creates a new instance of the FigureAPI. The assembler is
// expected to display into store.
func NewFigureAPI(assembler *animation.Assembler, store *gallery.Store, logger *slog.Logger) *FigureAPI {
	return &FigureAPI{
		assembler: assembler,
		store:     store,
		logger:    logger,
	}
}

// RegisterRoutes sets up the routing for all /api/figures endpoints.
func (f *FigureAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/figures", f.handleFigures)
	mux.HandleFunc("/api/figures/preview", f.handlePreview)
	mux.HandleFunc("/api/figures/", f.handleFigure)
}

// handleFigures lists stored figures or renders and stores a new one.
func (f *FigureAPI) handleFigures(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if !requireScope(w, r, "figures:read") {
			return
		}
		entries, err := f.store.List(r.Context())
		if err != nil {
			f.logger.Error("Failed to list figures", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to list figures")
			return
		}
		respondWithJSON(w, http.StatusOK, entries)

	case http.MethodPost:
		if !requireScope(w, r, "figures:write") {
			return
		}
		var req FigureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON request body")
			return
		}
		if err := f.assembler.RenderFigure(r.Context(), req.FileID, req.Figure); err != nil {
			f.respondWithRenderError(w, req.FileID, err)
			return
		}
		entry, err := f.store.Get(r.Context(), req.FileID)
		if err != nil {
			f.logger.Error("Failed to read back stored figure", "file_id", req.FileID, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Figure stored but could not be read back")
			return
		}
		f.logger.Info("Figure stored via API", "file_id", req.FileID, "bytes", entry.Size)
		respondWithJSON(w, http.StatusCreated, entry)

	default:
		w.Header().Set("Allow", "GET, POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handlePreview assembles a figure and returns the fragment without storing it.
func (f *FigureAPI) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if !requireScope(w, r, "figures:read") {
		return
	}
	var req FigureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON request body")
		return
	}
	fragment, err := f.assembler.Assemble(req.FileID, req.Figure)
	if err != nil {
		f.respondWithRenderError(w, req.FileID, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(fragment))
}

// handleFigure returns or deletes a single stored figure.
func (f *FigureAPI) handleFigure(w http.ResponseWriter, r *http.Request) {
	fileID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/figures/"), "/")
	if fileID == "" || strings.Contains(fileID, "/") {
		respondWithError(w, http.StatusNotFound, "Not Found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		if !requireScope(w, r, "figures:read") {
			return
		}
		entry, err := f.store.Get(r.Context(), fileID)
		if err != nil {
			if errors.Is(err, gallery.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Figure not found")
				return
			}
			f.logger.Error("Failed to load figure", "file_id", fileID, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to load figure")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(entry.Fragment))

	case http.MethodDelete:
		if !requireScope(w, r, "figures:write") {
			return
		}
		if err := f.store.Delete(r.Context(), fileID); err != nil {
			if errors.Is(err, gallery.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Figure not found")
				return
			}
			f.logger.Error("Failed to delete figure", "file_id", fileID, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to delete figure")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "GET, DELETE")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// respondWithRenderError maps assembler and gallery errors to status codes.
func (f *FigureAPI) respondWithRenderError(w http.ResponseWriter, fileID string, err error) {
	switch {
	case errors.Is(err, gallery.ErrDuplicateFileID):
		respondWithError(w, http.StatusConflict, fmt.Sprintf("File id '%s' is already in use", fileID))
	case errors.Is(err, animation.ErrEmptyFileID),
		errors.Is(err, animation.ErrLengthMismatch),
		errors.Is(err, animation.ErrDuplicateRef),
		errors.Is(err, animation.ErrUnknownRef):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		f.logger.Error("Failed to render figure", "file_id", fileID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to render figure")
	}
}
