package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/loader"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/render"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/source"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/pkg/models"
)

// PageLoader runs one leaderboard load into the given mounts
type PageLoader interface {
	Load(ctx context.Context, table, cards *render.Mount) ([]models.Player, error)
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	loader   PageLoader
	renderer *render.Renderer
	source   source.Source
}

// NewHandler creates a new handler
func NewHandler(l PageLoader, renderer *render.Renderer, src source.Source) *Handler {
	return &Handler{
		loader:   l,
		renderer: renderer,
		source:   src,
	}
}

// ErrorResponse is the JSON body of failed API calls
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthCheck returns service health, pinging the source when it holds a connection
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if pinger, ok := h.source.(source.Pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			respondError(w, http.StatusServiceUnavailable, "source unhealthy", err)
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "goalkeeper-board",
	})
}

// GetPage renders the full leaderboard page with table and cards
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, render.NewTableMount(), render.NewCardsMount())
}

// GetTablePage renders the page with only the table
func (h *Handler) GetTablePage(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, render.NewTableMount(), nil)
}

// GetCardsPage renders the page with only the card grid
func (h *Handler) GetCardsPage(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, nil, render.NewCardsMount())
}

// servePage runs one load and writes the page. Load failures are already
// rendered as the fallback row, so the page is still a 200.
func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, table, cards *render.Mount) {
	h.loader.Load(r.Context(), table, cards)

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, render.PageData{Table: table, Cards: cards}); err != nil {
		fmt.Printf("error: rendering page - %v\n", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetGoalkeepers returns the normalized, sorted leaderboard as JSON
func (h *Handler) GetGoalkeepers(w http.ResponseWriter, r *http.Request) {
	players, err := h.loader.Load(r.Context(), nil, nil)
	if err != nil {
		respondError(w, http.StatusBadGateway, "failed to load goalkeepers", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"goleiros": players,
		"count":    len(players),
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}

	if err != nil {
		fmt.Printf("error: %s - %v\n", message, err)
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		fmt.Printf("error encoding error response: %v\n", err)
	}
}

// compile-time check that the concrete loader satisfies PageLoader
var _ PageLoader = (*loader.Loader)(nil)
