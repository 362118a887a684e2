package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	openAIChatURL   = "https://api.openai.com/v1/chat/completions"
	openAIImagesURL = "https://api.openai.com/v1/images/generations"
)

// OpenAIClient wraps the OpenAI REST endpoints used by the assistant.
type OpenAIClient struct {
	apiKey string
	model  string
	client *http.Client
}

// NewOpenAIClient constructs a client using the provided API key and default model.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIClient{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

// ChatCompletion sends chat messages to OpenAI and returns the first response content.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, messages []ChatMessage, temperature float64) (string, error) {
	payload := map[string]any{
		"model":       c.model,
		"temperature": temperature,
		"messages":    messages,
	}
	return c.completion(ctx, payload)
}

// JSONCompletion is ChatCompletion with the response format pinned to a JSON object.
func (c *OpenAIClient) JSONCompletion(ctx context.Context, messages []ChatMessage, temperature float64) (string, error) {
	payload := map[string]any{
		"model":           c.model,
		"temperature":     temperature,
		"messages":        messages,
		"response_format": map[string]string{"type": "json_object"},
	}
	return c.completion(ctx, payload)
}

// VisionCompletion sends a text instruction together with an image (as a data
// URL or any fetchable URL) and returns the model's prose answer.
func (c *OpenAIClient) VisionCompletion(ctx context.Context, instruction, imageURL string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = 500
	}
	payload := map[string]any{
		"model": c.model,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": instruction},
					{"type": "image_url", "image_url": map[string]string{"url": imageURL}},
				},
			},
		},
		"max_tokens": maxTokens,
	}
	return c.completion(ctx, payload)
}

func (c *OpenAIClient) completion(ctx context.Context, payload map[string]any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal openai payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", decodeOpenAIError(resp)
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return completion.Choices[0].Message.Content, nil
}

// GenerateImage asks the images endpoint for a single render and returns its
// hosted URL.
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt, size, quality string) (string, error) {
	if size == "" {
		size = "1024x1024"
	}
	if quality == "" {
		quality = "standard"
	}
	payload := map[string]any{
		"model":   "dall-e-3",
		"prompt":  prompt,
		"n":       1,
		"size":    size,
		"quality": quality,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal openai image payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIImagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", decodeOpenAIError(resp)
	}

	var generated struct {
		Data []struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(generated.Data) == 0 || generated.Data[0].URL == "" {
		return "", fmt.Errorf("no image returned")
	}
	return generated.Data[0].URL, nil
}

func decodeOpenAIError(resp *http.Response) error {
	var failure struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&failure)
	return fmt.Errorf("openai status %d: %s", resp.StatusCode, failure.Error.Message)
}
