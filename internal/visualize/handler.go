package visualize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/config"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/media"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/schema"
)

const (
	defaultProviderTimeout = 60 * time.Second

	fallbackImageURL     = "https://via.placeholder.com/1024x1024/4A90E2/FFFFFF?text=AI+Visualization+Demo"
	fallbackRoomAnalysis = "This is a demo visualization. In production, AI would analyze your room and place furniture realistically."
)

// Handler bundles dependencies for the visualization endpoint.
type Handler struct {
	Analyzer Analyzer
	Renderer Renderer
	Uploader media.Uploader
	Policy   config.FailurePolicy
	Timeout  time.Duration
}

// Visualize handles POST /api/visualize. It analyzes the uploaded room photo,
// renders a furnished version of it, and returns both alongside the analysis.
func (h Handler) Visualize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxUploadBytes + (1 << 20)); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
	if err != nil || len(data) == 0 {
		writeError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	if len(data) > MaxUploadBytes {
		writeError(w, http.StatusBadRequest, "image exceeds the 10MB upload limit")
		return
	}

	items, err := parseFurnitureItems(r.FormValue("furnitureItems"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid furnitureItems")
		return
	}
	if len(items) == 0 {
		writeError(w, http.StatusBadRequest, "No furniture items selected")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	originalDataURI := DataURI(data, mimeType)

	ctx, cancel := context.WithTimeout(r.Context(), h.providerTimeout())
	defer cancel()

	analysis, err := h.Analyzer.DescribeRoom(ctx, data, mimeType)
	if err != nil {
		log.Printf("room analysis failed: %v", err)
		h.fail(w, originalDataURI, items)
		return
	}

	render, err := h.Renderer.Render(ctx, RenderPrompt(analysis, items))
	if err != nil {
		log.Printf("render failed: %v", err)
		h.fail(w, originalDataURI, items)
		return
	}

	writeJSON(w, schema.VisualizeResponse{
		Success:           true,
		OriginalImageURL:  originalDataURI,
		ProcessedImageURL: h.hostRender(ctx, render),
		RoomAnalysis:      analysis,
		FurnitureItems:    items,
	})
}

// hostRender turns a render into a servable URL. Hosted URLs pass through;
// inline bytes are uploaded to media storage when configured, otherwise
// embedded as a data URI.
func (h Handler) hostRender(ctx context.Context, render ImageResult) string {
	if render.URL != "" {
		return render.URL
	}

	if h.Uploader != nil {
		result, err := h.Uploader.Upload(ctx, media.UploadInput{
			Filename:    "room-render.png",
			ContentType: render.MIME,
			Body:        bytes.NewReader(render.Data),
			Size:        int64(len(render.Data)),
		})
		if err == nil && result.URL != "" {
			return result.URL
		}
		if err != nil && !errors.Is(err, media.ErrUploaderDisabled) {
			log.Printf("hosting render failed, falling back to data URI: %v", err)
		}
	}

	return DataURI(render.Data, render.MIME)
}

func (h Handler) fail(w http.ResponseWriter, originalDataURI string, items []string) {
	if h.Policy == config.PolicyError {
		writeError(w, http.StatusInternalServerError, "Visualization is temporarily unavailable")
		return
	}

	writeJSON(w, schema.VisualizeResponse{
		Success:           true,
		OriginalImageURL:  originalDataURI,
		ProcessedImageURL: fallbackImageURL,
		RoomAnalysis:      fallbackRoomAnalysis,
		FurnitureItems:    items,
	})
}

func (h Handler) providerTimeout() time.Duration {
	if h.Timeout > 0 {
		return h.Timeout
	}
	return defaultProviderTimeout
}

func parseFurnitureItems(raw string) ([]string, error) {
	if raw == "" {
		raw = "[]"
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
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
