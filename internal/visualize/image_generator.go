package visualize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiRenderer renders room visualizations via Gemini inline image outputs.
type GeminiRenderer struct {
	apiKey  string
	model   string
	timeout time.Duration
}

const defaultImageModel = "gemini-2.5-flash-image"

// NewGeminiRenderer constructs a renderer able to request inline images.
func NewGeminiRenderer(apiKey, model string, timeout time.Duration) *GeminiRenderer {
	if strings.TrimSpace(model) == "" {
		model = defaultImageModel
	}
	model = strings.TrimPrefix(strings.TrimSpace(model), "models/")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiRenderer{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

// Render requests a photorealistic image for the given prompt and returns the
// inline image bytes.
func (g *GeminiRenderer) Render(ctx context.Context, prompt string) (ImageResult, error) {
	if g == nil || strings.TrimSpace(g.apiKey) == "" {
		return ImageResult{}, fmt.Errorf("vision: image generator unavailable")
	}
	if strings.TrimSpace(prompt) == "" {
		return ImageResult{}, fmt.Errorf("vision: empty render prompt")
	}

	childCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := genai.NewClient(childCtx, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		return ImageResult{}, fmt.Errorf("vision: create genai client: %w", err)
	}

	resp, err := client.Models.GenerateContent(childCtx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return ImageResult{}, fmt.Errorf("vision: render failed: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ImageResult{}, fmt.Errorf("vision: render returned no candidates")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mime := part.InlineData.MIMEType
		if strings.TrimSpace(mime) == "" {
			mime = "image/png"
		}
		return ImageResult{
			Data: part.InlineData.Data,
			MIME: mime,
		}, nil
	}
	return ImageResult{}, fmt.Errorf("vision: render returned no image data")
}
