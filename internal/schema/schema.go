// Package schema defines the request/response contracts shared by the HTTP
// handlers and their tests. It is deliberately dependency-free so the
// validation behaviour never hinges on a particular schema library.
package schema

import (
	"strconv"
	"strings"
	"time"
)

// Stores enumerates the retailers a product recommendation may reference.
var Stores = []string{"Amazon", "eBay", "Walmart", "Target", "Best Buy"}

// Categories enumerates the product categories the assistant may emit.
var Categories = []string{"Electronics", "Furniture", "Fashion", "Home & Garden", "Sports"}

// SearchRequest is the inbound payload for POST /api/search.
type SearchRequest struct {
	Query string `json:"query"`
}

// AISummary captures the assistant's prose summary plus shopping insights.
type AISummary struct {
	Summary  string   `json:"summary"`
	Insights []string `json:"insights"`
}

// Product is a single recommendation in a search response. Prices are decimal
// strings to keep cents exact across the wire.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         string  `json:"price"`
	OriginalPrice string  `json:"originalPrice,omitempty"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Store         string  `json:"store"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"imageUrl"`
}

// SearchResponse is the full payload for POST /api/search.
type SearchResponse struct {
	Query     string    `json:"query"`
	AISummary AISummary `json:"aiSummary"`
	Products  []Product `json:"products"`
}

// VisualizeResponse is the payload for POST /api/visualize.
type VisualizeResponse struct {
	Success           bool     `json:"success"`
	OriginalImageURL  string   `json:"originalImageUrl"`
	ProcessedImageURL string   `json:"processedImageUrl"`
	RoomAnalysis      string   `json:"roomAnalysis"`
	FurnitureItems    []string `json:"furnitureItems"`
}

// SearchHistory records a past search. Persisted schema only; no handler
// writes it today.
type SearchHistory struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	ResultCount int       `json:"resultCount"`
	Timestamp   time.Time `json:"timestamp"`
}

// RoomVisualization records a past visualization. Persisted schema only; no
// handler writes it today.
type RoomVisualization struct {
	ID                string    `json:"id"`
	OriginalImageURL  string    `json:"originalImageUrl"`
	ProcessedImageURL string    `json:"processedImageUrl"`
	FurnitureItems    []string  `json:"furnitureItems"`
	Timestamp         time.Time `json:"timestamp"`
}

// User is an account in the key/value user store.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// ValidationError reports the first contract violation found in a payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// ValidateSearchRequest checks an inbound search payload and returns the
// request with its query trimmed of surrounding whitespace.
func ValidateSearchRequest(req SearchRequest) (SearchRequest, *ValidationError) {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return SearchRequest{}, invalid("Search query is required")
	}
	return req, nil
}

// ValidateSearchResponse verifies that an outbound search response satisfies
// the contract, regardless of whether it came from the provider or the
// fallback catalog.
func ValidateSearchResponse(resp SearchResponse) *ValidationError {
	if strings.TrimSpace(resp.Query) == "" {
		return invalid("response query must not be empty")
	}
	if strings.TrimSpace(resp.AISummary.Summary) == "" {
		return invalid("aiSummary.summary must not be empty")
	}
	if len(resp.AISummary.Insights) == 0 {
		return invalid("aiSummary.insights must not be empty")
	}
	if len(resp.Products) == 0 {
		return invalid("products must not be empty")
	}
	for i, p := range resp.Products {
		if err := validateProduct(i, p); err != nil {
			return err
		}
	}
	return nil
}

func validateProduct(index int, p Product) *ValidationError {
	switch {
	case p.ID == "":
		return invalidProductField(index, "id is missing")
	case p.Name == "":
		return invalidProductField(index, "name is missing")
	case p.Price == "":
		return invalidProductField(index, "price is missing")
	case p.ImageURL == "":
		return invalidProductField(index, "imageUrl is missing")
	case p.Rating < 0 || p.Rating > 5:
		return invalidProductField(index, "rating must be between 0 and 5")
	case p.ReviewCount < 0:
		return invalidProductField(index, "reviewCount must not be negative")
	case !contains(Stores, p.Store):
		return invalidProductField(index, "store is not a known retailer")
	case !contains(Categories, p.Category):
		return invalidProductField(index, "category is not a known category")
	}
	return nil
}

func invalidProductField(index int, msg string) *ValidationError {
	return invalid("product " + strconv.Itoa(index) + ": " + msg)
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
