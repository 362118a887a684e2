package visualize

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/llm"
)

// MaxUploadBytes bounds how much room-photo data a request may carry.
const MaxUploadBytes = 10 * 1024 * 1024

const analysisTokenBudget = 500

const roomAnalysisPrompt = `Analyze this room image and provide a detailed description of the space, including dimensions, lighting, wall colors, and existing furniture. This will help us visualize how new furniture items would look in this space.`

// Analyzer describes an uploaded room photo in prose.
type Analyzer interface {
	DescribeRoom(ctx context.Context, data []byte, mimeType string) (string, error)
}

// OpenAIAnalyzer runs the room analysis through the OpenAI vision endpoint.
type OpenAIAnalyzer struct {
	client *llm.OpenAIClient
}

// NewOpenAIAnalyzer constructs an analyzer backed by the given client.
func NewOpenAIAnalyzer(client *llm.OpenAIClient) *OpenAIAnalyzer {
	return &OpenAIAnalyzer{client: client}
}

// DescribeRoom sends the image inline as a data URL and returns the prose answer.
func (a *OpenAIAnalyzer) DescribeRoom(ctx context.Context, data []byte, mimeType string) (string, error) {
	if a == nil || a.client == nil {
		return "", fmt.Errorf("vision: analyzer unavailable")
	}
	if len(data) == 0 {
		return "", fmt.Errorf("vision: empty image data")
	}
	if len(data) > MaxUploadBytes {
		return "", fmt.Errorf("vision: image exceeds %d bytes", MaxUploadBytes)
	}

	analysis, err := a.client.VisionCompletion(ctx, roomAnalysisPrompt, DataURI(data, mimeType), analysisTokenBudget)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(analysis) == "" {
		return "", fmt.Errorf("vision: empty analysis")
	}
	return analysis, nil
}

// DataURI encodes image bytes as a base64 data URI with the given mime type.
func DataURI(data []byte, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", detectMime(data, mimeType), base64.StdEncoding.EncodeToString(data))
}

func detectMime(data []byte, provided string) string {
	mime := strings.TrimSpace(provided)
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	if !strings.Contains(mime, "image/") {
		return "image/jpeg"
	}
	return mime
}
