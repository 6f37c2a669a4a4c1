package recommend

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	errx "github.com/giftgenie-teelab/server/internal/core/error"
	"github.com/giftgenie-teelab/server/internal/llm/prompts"
	"github.com/giftgenie-teelab/server/internal/model"
	logx "github.com/giftgenie-teelab/server/pkg/logger"
)

// Pipeline turns request parameters into product suggestions.
type Pipeline struct {
	catalog     model.Catalog
	generator   model.TextGenerator
	fallbackURL URLBuilder
	limit       int
}

type Option func(*Pipeline)

// WithLimit overrides the catalog query limit.
func WithLimit(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.limit = n
		}
	}
}

func NewPipeline(catalog model.Catalog, generator model.TextGenerator, fallbackURL URLBuilder, opts ...Option) *Pipeline {
	p := &Pipeline{
		catalog:     catalog,
		generator:   generator,
		fallbackURL: fallbackURL,
		limit:       model.SuggestionLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GiftSuggestions returns products tagged with the vibe that fit the budget,
// plus the caller's message or a generated one.
func (p *Pipeline) GiftSuggestions(ctx context.Context, req model.GiftRequest) (*model.GiftResponse, error) {
	relationship := strings.TrimSpace(req.Relationship)
	vibe := strings.TrimSpace(req.Vibe)
	rawBudget := strings.TrimSpace(string(req.Budget))

	if missing := missingFields(
		field{"relationship", relationship},
		field{"vibe", vibe},
		field{"budget", rawBudget},
	); missing != nil {
		return nil, missing
	}

	budget, err := decimal.NewFromString(rawBudget)
	if err != nil {
		return nil, errx.Validationf("budget must be a number, got %q", rawBudget)
	}

	products, err := p.catalog.SearchProducts(ctx, model.ProductQuery{Tags: vibe, Limit: p.limit})
	if err != nil {
		return nil, errx.WrapUpstream(err, "catalog query failed")
	}

	suggestions := make([]model.Suggestion, 0, len(products))
	for _, prod := range products {
		if len(suggestions) == p.limit {
			break
		}
		if !WithinBudget(prod, budget) {
			continue
		}
		suggestions = append(suggestions, ToSuggestion(prod, p.fallbackURL))
	}

	message := req.Message
	if message == "" {
		message, err = p.generateMessage(ctx, relationship, vibe)
		if err != nil {
			return nil, err
		}
	}

	logx.Debug().
		Str("vibe", vibe).
		Str("budget", budget.String()).
		Int("catalog_count", len(products)).
		Int("suggestion_count", len(suggestions)).
		Msg("gift suggestions ready")

	return &model.GiftResponse{Suggestions: suggestions, Message: message}, nil
}

func (p *Pipeline) generateMessage(ctx context.Context, relationship, vibe string) (string, error) {
	prompt, err := prompts.RenderGiftMessage(ctx, relationship, vibe)
	if err != nil {
		return "", errx.WrapUpstream(err, "gift message prompt failed")
	}
	message, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		return "", errx.WrapUpstream(err, "gift message generation failed")
	}
	return message, nil
}

// StyleSuggestions returns products matching gender, skin tone and optional body type.
func (p *Pipeline) StyleSuggestions(ctx context.Context, req model.StyleRequest) (*model.StyleResponse, error) {
	gender := strings.TrimSpace(req.Gender)
	skinTone := strings.TrimSpace(req.SkinTone)
	bodyType := strings.TrimSpace(req.BodyType)

	if missing := missingFields(
		field{"gender", gender},
		field{"skin_tone", skinTone},
	); missing != nil {
		return nil, missing
	}

	products, err := p.catalog.SearchProducts(ctx, model.ProductQuery{
		Tags:  StyleTags(gender, skinTone, bodyType),
		Limit: p.limit,
	})
	if err != nil {
		return nil, errx.WrapUpstream(err, "catalog query failed")
	}

	if len(products) > p.limit {
		products = products[:p.limit]
	}
	suggestions := make([]model.Suggestion, 0, len(products))
	for _, prod := range products {
		suggestions = append(suggestions, ToSuggestion(prod, p.fallbackURL))
	}
	return &model.StyleResponse{Suggestions: suggestions}, nil
}

// StyleTags builds the combined tag filter "gender,skinTone[,bodyType]".
func StyleTags(gender, skinTone, bodyType string) string {
	tags := gender + "," + skinTone
	if bodyType != "" {
		tags += "," + bodyType
	}
	return tags
}

type field struct {
	name  string
	value string
}

func missingFields(fields ...field) error {
	var names []string
	for _, f := range fields {
		if f.value == "" {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return errx.Validationf("missing required fields: %s", strings.Join(names, ", "))
}
