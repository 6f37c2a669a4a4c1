package recommend

import (
	"github.com/shopspring/decimal"

	"github.com/giftgenie-teelab/server/internal/model"
)

// URLBuilder builds a storefront URL from a product handle.
type URLBuilder func(handle string) string

// ToSuggestion projects a catalog product. Missing images or a missing online
// store URL fall back to defaults instead of failing.
func ToSuggestion(p model.Product, fallbackURL URLBuilder) model.Suggestion {
	s := model.Suggestion{Title: p.Title}

	switch {
	case p.OnlineStoreURL != "":
		s.URL = p.OnlineStoreURL
	case fallbackURL != nil && p.Handle != "":
		s.URL = fallbackURL(p.Handle)
	}

	if len(p.Images) > 0 {
		s.Image = p.Images[0].Src
	}
	return s
}

// FirstVariantPrice returns the price of the first variant.
// ok is false when the product has no variants or the price is not a number.
func FirstVariantPrice(p model.Product) (price decimal.Decimal, ok bool) {
	if len(p.Variants) == 0 {
		return decimal.Decimal{}, false
	}
	price, err := decimal.NewFromString(p.Variants[0].Price)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return price, true
}

// WithinBudget reports whether the first-variant price is at most budget.
func WithinBudget(p model.Product, budget decimal.Decimal) bool {
	price, ok := FirstVariantPrice(p)
	return ok && price.LessThanOrEqual(budget)
}
