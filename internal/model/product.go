package model

import "context"

// SuggestionLimit is the number of products requested per catalog query.
const SuggestionLimit = 5

// Product is a read-only projection of a catalog product.
type Product struct {
	Title          string           `json:"title"`
	Handle         string           `json:"handle"`
	OnlineStoreURL string           `json:"online_store_url,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	Images         []ProductImage   `json:"images,omitempty"`
	Variants       []ProductVariant `json:"variants,omitempty"`
}

type ProductImage struct {
	Src string `json:"src"`
}

type ProductVariant struct {
	// Price is kept as the catalog's decimal string, e.g. "25.00".
	Price string `json:"price"`
}

// ProductQuery selects catalog products by a comma separated tag filter.
type ProductQuery struct {
	Tags  string `json:"tags"`
	Limit int    `json:"limit"`
}

// Suggestion is the caller-facing shape of a recommended product.
type Suggestion struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Image string `json:"image"`
}

type Catalog interface {
	// SearchProducts returns at most q.Limit products matching q.Tags, in catalog order.
	SearchProducts(ctx context.Context, q ProductQuery) ([]Product, error)
}

type TextGenerator interface {
	// Generate returns the model's text for a single user prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}
