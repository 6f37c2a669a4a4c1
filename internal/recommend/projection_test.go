package recommend

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/giftgenie-teelab/server/internal/model"
)

func storefront(handle string) string { return "https://shop.test/products/" + handle }

func TestToSuggestion(t *testing.T) {
	tests := []struct {
		name    string
		product model.Product
		want    model.Suggestion
	}{
		{
			name: "online store url and image",
			product: model.Product{
				Title: "Mug", Handle: "mug", OnlineStoreURL: "https://brand.test/mug",
				Images: []model.ProductImage{{Src: "https://cdn.test/1.png"}, {Src: "https://cdn.test/2.png"}},
			},
			want: model.Suggestion{Title: "Mug", URL: "https://brand.test/mug", Image: "https://cdn.test/1.png"},
		},
		{
			name:    "fallback url and no images",
			product: model.Product{Title: "Scarf", Handle: "scarf"},
			want:    model.Suggestion{Title: "Scarf", URL: "https://shop.test/products/scarf", Image: ""},
		},
		{
			name:    "no handle",
			product: model.Product{Title: "Ghost"},
			want:    model.Suggestion{Title: "Ghost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToSuggestion(tt.product, storefront); got != tt.want {
				t.Errorf("ToSuggestion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToSuggestion_NilFallback(t *testing.T) {
	got := ToSuggestion(model.Product{Title: "Hat", Handle: "hat"}, nil)
	if got.URL != "" {
		t.Errorf("URL = %q, want empty without a builder", got.URL)
	}
}

func TestWithinBudget(t *testing.T) {
	budget := decimal.RequireFromString("30")

	tests := []struct {
		name     string
		variants []model.ProductVariant
		want     bool
	}{
		{name: "below", variants: []model.ProductVariant{{Price: "25.00"}}, want: true},
		{name: "equal", variants: []model.ProductVariant{{Price: "30.00"}}, want: true},
		{name: "above", variants: []model.ProductVariant{{Price: "40.00"}}, want: false},
		{name: "only first variant counts", variants: []model.ProductVariant{{Price: "45"}, {Price: "5"}}, want: false},
		{name: "no variants", variants: nil, want: false},
		{name: "garbage price", variants: []model.ProductVariant{{Price: "free"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.Product{Title: tt.name, Variants: tt.variants}
			if got := WithinBudget(p, budget); got != tt.want {
				t.Errorf("WithinBudget() = %v, want %v", got, tt.want)
			}
		})
	}
}
