package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResponse() SearchResponse {
	return SearchResponse{
		Query: "desk lamp",
		AISummary: AISummary{
			Summary:  "Desk lamps range from $20 budget picks to $150 designer pieces.",
			Insights: []string{"check lumens", "prefer adjustable arms", "look for warm color temperature"},
		},
		Products: []Product{
			{
				ID:          "product-1700000000000-0",
				Name:        "Modern Table Lamp",
				Description: "Stylish lamp with brass finish",
				Price:       "79.99",
				Rating:      4.4,
				ReviewCount: 156,
				Store:       "eBay",
				Category:    "Home & Garden",
				ImageURL:    "/api/placeholder-image?product=Table+Lamp",
			},
		},
	}
}

func TestValidateSearchRequest(t *testing.T) {
	req, err := ValidateSearchRequest(SearchRequest{Query: "  desk lamp  "})
	require.Nil(t, err)
	assert.Equal(t, "desk lamp", req.Query)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := ValidateSearchRequest(SearchRequest{Query: query})
		require.NotNil(t, err)
		assert.Equal(t, "Search query is required", err.Message)
	}
}

func TestValidateSearchResponseAcceptsValid(t *testing.T) {
	assert.Nil(t, ValidateSearchResponse(validResponse()))
}

func TestValidateSearchResponseRejectsViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SearchResponse)
	}{
		{"empty query", func(r *SearchResponse) { r.Query = "" }},
		{"empty summary", func(r *SearchResponse) { r.AISummary.Summary = "" }},
		{"no insights", func(r *SearchResponse) { r.AISummary.Insights = nil }},
		{"no products", func(r *SearchResponse) { r.Products = nil }},
		{"missing id", func(r *SearchResponse) { r.Products[0].ID = "" }},
		{"missing name", func(r *SearchResponse) { r.Products[0].Name = "" }},
		{"missing price", func(r *SearchResponse) { r.Products[0].Price = "" }},
		{"missing image", func(r *SearchResponse) { r.Products[0].ImageURL = "" }},
		{"rating too high", func(r *SearchResponse) { r.Products[0].Rating = 5.5 }},
		{"negative rating", func(r *SearchResponse) { r.Products[0].Rating = -1 }},
		{"negative reviews", func(r *SearchResponse) { r.Products[0].ReviewCount = -1 }},
		{"unknown store", func(r *SearchResponse) { r.Products[0].Store = "Etsy" }},
		{"unknown category", func(r *SearchResponse) { r.Products[0].Category = "Toys" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := validResponse()
			tc.mutate(&resp)
			err := ValidateSearchResponse(resp)
			require.NotNil(t, err)
			assert.NotEmpty(t, err.Message)
		})
	}
}

func TestClosedSets(t *testing.T) {
	assert.Len(t, Stores, 5)
	assert.Len(t, Categories, 5)
	assert.Contains(t, Stores, "Best Buy")
	assert.Contains(t, Categories, "Home & Garden")
}
