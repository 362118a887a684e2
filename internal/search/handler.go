package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/config"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/schema"
)

const defaultProviderTimeout = 60 * time.Second

// Handler bundles dependencies for the search endpoints.
type Handler struct {
	Assistant Assistant
	Policy    config.FailurePolicy
	Timeout   time.Duration
}

// Search handles POST /api/search.
func (h Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req schema.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, verr := schema.ValidateSearchRequest(req)
	if verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.providerTimeout())
	defer cancel()

	resp, err := h.Assistant.Search(ctx, req.Query)
	if err != nil {
		log.Printf("search failed for %q: %v", req.Query, err)
		if h.Policy == config.PolicyError {
			writeError(w, http.StatusInternalServerError, "Search is temporarily unavailable")
			return
		}
		resp = Fallback(req.Query)
	}

	writeJSON(w, resp)
}

// PlaceholderImage handles GET /api/placeholder-image. It redirects to a
// stand-in image service keyed by the product name.
func (h Handler) PlaceholderImage(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("product")
	if name == "" {
		name = "Product"
	}
	target := fmt.Sprintf("https://via.placeholder.com/400x300/4A90E2/FFFFFF?text=%s", url.QueryEscape(name))
	http.Redirect(w, r, target, http.StatusFound)
}

func (h Handler) providerTimeout() time.Duration {
	if h.Timeout > 0 {
		return h.Timeout
	}
	return defaultProviderTimeout
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
