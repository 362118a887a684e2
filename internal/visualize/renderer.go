package visualize

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/llm"
)

// Renderer produces the furnished-room visualization for a compose prompt.
type Renderer interface {
	Render(ctx context.Context, prompt string) (ImageResult, error)
}

// ImageResult is a rendered image: either a hosted URL or inline bytes,
// depending on what the backing provider returns.
type ImageResult struct {
	URL  string
	Data []byte
	MIME string
}

// RenderPrompt composes the image-generation prompt from the room analysis
// and the selected furniture items.
func RenderPrompt(roomAnalysis string, furnitureItems []string) string {
	return fmt.Sprintf(
		"A photorealistic interior design visualization showing a modern %s. Add %s naturally placed in the room. The image should look like a professional interior design rendering with natural lighting and realistic proportions. Make it look like a real room with these furniture pieces tastefully arranged.",
		roomAnalysis,
		strings.Join(furnitureItems, ", "),
	)
}

// OpenAIRenderer renders through the OpenAI images endpoint, which returns a
// hosted URL directly.
type OpenAIRenderer struct {
	client *llm.OpenAIClient
}

// NewOpenAIRenderer constructs a renderer backed by the given client.
func NewOpenAIRenderer(client *llm.OpenAIClient) *OpenAIRenderer {
	return &OpenAIRenderer{client: client}
}

// Render requests a single square standard-quality image.
func (r *OpenAIRenderer) Render(ctx context.Context, prompt string) (ImageResult, error) {
	if r == nil || r.client == nil {
		return ImageResult{}, fmt.Errorf("vision: renderer unavailable")
	}
	if strings.TrimSpace(prompt) == "" {
		return ImageResult{}, fmt.Errorf("vision: empty render prompt")
	}

	url, err := r.client.GenerateImage(ctx, prompt, "1024x1024", "standard")
	if err != nil {
		return ImageResult{}, err
	}
	return ImageResult{URL: url}, nil
}
