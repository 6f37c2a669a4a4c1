package prompts

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/giftgenie-teelab/server/internal/llm"
)

//go:embed template/gift_message.txt
var giftMessageTemplate string

var giftMessageRunInfo = &einocb.RunInfo{
	Name:      "GiftMessagePrompt",
	Type:      "GoTemplate",
	Component: components.ComponentOfPrompt,
}

// RenderGiftMessage renders the gift card prompt for the given relationship and vibe.
func RenderGiftMessage(ctx context.Context, relationship, vibe string) (string, error) {
	relationship = strings.TrimSpace(relationship)
	vibe = strings.TrimSpace(vibe)
	if relationship == "" || vibe == "" {
		return "", fmt.Errorf("gift message prompt: relationship and vibe are required")
	}

	ctx = einocb.InitCallbacks(ctx, giftMessageRunInfo, llm.NewPromptCallbacks())

	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.UserMessage(giftMessageTemplate),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"Relationship": relationship,
		"Vibe":         vibe,
	})
	if err != nil {
		return "", fmt.Errorf("gift message prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("gift message prompt render: empty result")
	}
	return strings.TrimSpace(msgs[0].Content), nil
}
