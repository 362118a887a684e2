package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/llm"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/schema"
)

// Assistant turns a free-text shopping query into a structured search response.
type Assistant interface {
	Search(ctx context.Context, query string) (schema.SearchResponse, error)
}

const searchTemperature = 0.7

const systemPrompt = `You are an AI shopping assistant. Given a user's search query, generate:
1. A helpful summary about the product category they're searching for
2. Three key insights about what to look for when shopping for this product
3. A list of 6 realistic product recommendations with details

Format your response as JSON with this structure:
{
  "summary": "A 2-3 sentence summary about the product category and price range",
  "insights": ["insight 1", "insight 2", "insight 3"],
  "products": [
    {
      "name": "Product name",
      "description": "Brief description",
      "price": "99.99",
      "originalPrice": "149.99" (optional, only if on sale),
      "rating": 4.5,
      "reviewCount": 500,
      "store": "Amazon|eBay|Walmart|Target|Best Buy",
      "category": "Electronics|Furniture|Fashion|Home & Garden|Sports"
    }
  ]
}

Make the products realistic and varied in price. Include sale prices for some items.`

type aiAssistant struct {
	client llm.Client
}

// NewAssistant wires the assistant to a chat-completion client.
func NewAssistant(client llm.Client) Assistant {
	return &aiAssistant{client: client}
}

// Search drives one completion round-trip and reshapes the model output into
// the response contract. Any provider or parse failure is returned to the
// caller, which decides between the fallback catalog and a hard error.
func (a *aiAssistant) Search(ctx context.Context, query string) (schema.SearchResponse, error) {
	content, err := a.client.JSONCompletion(ctx, []llm.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: query},
	}, searchTemperature)
	if err != nil {
		return schema.SearchResponse{}, err
	}

	parsed, err := parseAssistantJSON(content)
	if err != nil {
		return schema.SearchResponse{}, err
	}

	return schema.SearchResponse{
		Query: query,
		AISummary: schema.AISummary{
			Summary:  parsed.Summary,
			Insights: parsed.Insights,
		},
		Products: decorateProducts(parsed.Products, time.Now()),
	}, nil
}

type assistantPayload struct {
	Summary  string             `json:"summary"`
	Insights []string           `json:"insights"`
	Products []assistantProduct `json:"products"`
}

// assistantProduct is the model's view of a product, before the server adds
// the id and image URL.
type assistantProduct struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         string  `json:"price"`
	OriginalPrice string  `json:"originalPrice"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Store         string  `json:"store"`
	Category      string  `json:"category"`
}

func parseAssistantJSON(content string) (assistantPayload, error) {
	var payload assistantPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		start := strings.Index(content, "{")
		end := strings.LastIndex(content, "}")
		if start < 0 || end <= start {
			return assistantPayload{}, fmt.Errorf("assistant: parse response: %w", err)
		}
		if err := json.Unmarshal([]byte(content[start:end+1]), &payload); err != nil {
			return assistantPayload{}, fmt.Errorf("assistant: parse response: %w", err)
		}
	}

	if strings.TrimSpace(payload.Summary) == "" {
		return assistantPayload{}, fmt.Errorf("assistant: response missing summary")
	}
	if len(payload.Insights) == 0 {
		return assistantPayload{}, fmt.Errorf("assistant: response missing insights")
	}
	if len(payload.Products) == 0 {
		return assistantPayload{}, fmt.Errorf("assistant: response missing products")
	}
	return payload, nil
}

// decorateProducts assigns the response-scoped id and the placeholder image
// URL the UI expects. Ids are unique within a response via the index.
func decorateProducts(items []assistantProduct, now time.Time) []schema.Product {
	products := make([]schema.Product, 0, len(items))
	for i, item := range items {
		products = append(products, schema.Product{
			ID:            fmt.Sprintf("product-%d-%d", now.UnixMilli(), i),
			Name:          item.Name,
			Description:   item.Description,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Rating:        item.Rating,
			ReviewCount:   item.ReviewCount,
			Store:         item.Store,
			Category:      item.Category,
			ImageURL:      "/api/placeholder-image?product=" + url.QueryEscape(item.Name),
		})
	}
	return products
}
