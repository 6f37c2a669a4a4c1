package catalog

import (
	"context"
	"strings"

	"github.com/giftgenie-teelab/server/internal/model"
)

// Static is an in-memory catalog. A product matches when it carries every
// requested tag (case-insensitive), mirroring the Shopify search semantics.
type Static struct {
	products []model.Product
	// Err, when set, is returned by every search.
	Err error
}

func NewStatic(products ...model.Product) *Static {
	return &Static{products: products}
}

func (s *Static) SearchProducts(ctx context.Context, q model.ProductQuery) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wanted := SplitTags(q.Tags)
	var matched []model.Product
	for _, p := range s.products {
		if !hasAllTags(p, wanted) {
			continue
		}
		matched = append(matched, p)
		if q.Limit > 0 && len(matched) == q.Limit {
			break
		}
	}
	return matched, nil
}

func hasAllTags(p model.Product, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, t := range p.Tags {
			if strings.EqualFold(strings.TrimSpace(t), w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var _ model.Catalog = (*Static)(nil)
