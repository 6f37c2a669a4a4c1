package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/giftgenie-teelab/server/internal/metrics"
	"github.com/giftgenie-teelab/server/internal/model"
	logx "github.com/giftgenie-teelab/server/pkg/logger"
)

const productsQuery = `query SuggestProducts($first: Int!, $query: String) {
  products(first: $first, query: $query) {
    edges {
      node {
        title
        handle
        onlineStoreUrl
        tags
        images(first: 1) { edges { node { url } } }
        variants(first: 1) { edges { node { price } } }
      }
    }
  }
}`

// maxErrorBody bounds how much of an upstream error body ends up in logs.
const maxErrorBody = 512

type ShopifyConfig struct {
	ShopDomain  string `split_words:"true" required:"true"`
	AccessToken string `split_words:"true" required:"true"`
	APIVersion  string `envconfig:"API_VERSION" default:"2024-07"`
	// Timeout in seconds for a single catalog request.
	Timeout int `default:"10"`
}

// StorefrontURL returns the public product URL built from the shop domain and handle.
func (c ShopifyConfig) StorefrontURL(handle string) string {
	return fmt.Sprintf("https://%s/products/%s", strings.TrimSuffix(c.ShopDomain, "/"), handle)
}

// Shopify queries the Shopify Admin GraphQL API.
type Shopify struct {
	cfg      ShopifyConfig
	client   *http.Client
	endpoint string
}

type ShopifyOption func(*Shopify)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) ShopifyOption {
	return func(s *Shopify) { s.client = c }
}

// WithEndpoint overrides the GraphQL endpoint, mainly for tests.
func WithEndpoint(url string) ShopifyOption {
	return func(s *Shopify) { s.endpoint = url }
}

func NewShopify(cfg ShopifyConfig, opts ...ShopifyOption) (*Shopify, error) {
	if cfg.ShopDomain == "" || cfg.AccessToken == "" {
		return nil, fmt.Errorf("shopify shop domain and access token are required")
	}
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	s := &Shopify{
		cfg:      cfg,
		client:   &http.Client{Timeout: timeout},
		endpoint: fmt.Sprintf("https://%s/admin/api/%s/graphql.json", cfg.ShopDomain, cfg.APIVersion),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type productsResponse struct {
	Data struct {
		Products struct {
			Edges []struct {
				Node productNode `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type productNode struct {
	Title          string   `json:"title"`
	Handle         string   `json:"handle"`
	OnlineStoreURL *string  `json:"onlineStoreUrl"`
	Tags           []string `json:"tags"`
	Images         struct {
		Edges []struct {
			Node struct {
				URL string `json:"url"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node struct {
				Price string `json:"price"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

func (n productNode) toProduct() model.Product {
	p := model.Product{
		Title:  n.Title,
		Handle: n.Handle,
		Tags:   n.Tags,
	}
	if n.OnlineStoreURL != nil {
		p.OnlineStoreURL = *n.OnlineStoreURL
	}
	for _, e := range n.Images.Edges {
		p.Images = append(p.Images, model.ProductImage{Src: e.Node.URL})
	}
	for _, e := range n.Variants.Edges {
		p.Variants = append(p.Variants, model.ProductVariant{Price: e.Node.Price})
	}
	return p
}

// SearchProducts implements model.Catalog.
func (s *Shopify) SearchProducts(ctx context.Context, q model.ProductQuery) (products []model.Product, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogRequest(err, time.Since(start)) }()

	body, err := json.Marshal(graphqlRequest{
		Query: productsQuery,
		Variables: map[string]any{
			"first": q.Limit,
			"query": SearchQuery(q.Tags),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal catalog query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", s.cfg.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		logx.Error().Err(err).Str("tags", q.Tags).Msg("catalog request failed")
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logx.Error().Int("status", resp.StatusCode).Str("body", string(snippet)).Msg("catalog returned non-200")
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var out productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	if len(out.Errors) > 0 {
		msgs := make([]string, 0, len(out.Errors))
		for _, e := range out.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("catalog query errors: %s", strings.Join(msgs, "; "))
	}

	products = make([]model.Product, 0, len(out.Data.Products.Edges))
	for _, e := range out.Data.Products.Edges {
		products = append(products, e.Node.toProduct())
	}
	logx.Debug().Str("tags", q.Tags).Int("count", len(products)).Msg("catalog query done")
	return products, nil
}

// SearchQuery turns a comma separated tag filter into Shopify search syntax.
// Every tag must match: "a,b" becomes `tag:"a" AND tag:"b"`.
func SearchQuery(tags string) string {
	parts := SplitTags(tags)
	terms := make([]string, 0, len(parts))
	for _, t := range parts {
		t = strings.NewReplacer(`"`, "", `\`, "").Replace(t)
		terms = append(terms, fmt.Sprintf("tag:%q", t))
	}
	return strings.Join(terms, " AND ")
}

// SplitTags splits a comma separated tag filter, dropping blanks.
func SplitTags(tags string) []string {
	var out []string
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

var _ model.Catalog = (*Shopify)(nil)
