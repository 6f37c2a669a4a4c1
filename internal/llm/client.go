package llm

import (
	"context"
	"fmt"
	"strings"

	einocb "github.com/cloudwego/eino/callbacks"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/giftgenie-teelab/server/internal/metrics"
	"github.com/giftgenie-teelab/server/internal/model"
	logx "github.com/giftgenie-teelab/server/pkg/logger"
)

// Client turns a single prompt into generated text.
type Client struct {
	runnable  compose.Runnable[[]*schema.Message, *schema.Message]
	modelName string
	callbacks einocb.Handler
}

// NewClient compiles a one-node chain around chatModel.
func NewClient(ctx context.Context, chatModel einomodel.BaseChatModel, modelName string) (*Client, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is nil")
	}

	runnable, err := compose.NewChain[[]*schema.Message, *schema.Message]().
		AppendChatModel(chatModel).
		Compile(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling generation chain")
		return nil, fmt.Errorf("error compiling generation chain: %w", err)
	}

	return &Client{
		runnable:  runnable,
		modelName: modelName,
		callbacks: NewModelCallbacks(),
	}, nil
}

// Generate implements model.TextGenerator. The model's content is returned as is.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is empty")
	}

	out, err := c.runnable.Invoke(ctx, []*schema.Message{schema.UserMessage(prompt)},
		compose.WithCallbacks(c.callbacks))
	if err != nil {
		metrics.RecordGeneration(c.modelName, err, 0)
		return "", fmt.Errorf("generate: %w", err)
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		err := fmt.Errorf("generate: empty response from %s", c.modelName)
		metrics.RecordGeneration(c.modelName, err, 0)
		return "", err
	}

	metrics.RecordGeneration(c.modelName, nil, c.usageCost(out))
	return out.Content, nil
}

// usageCost logs token usage and returns the estimated USD cost.
func (c *Client) usageCost(out *schema.Message) float64 {
	if out.ResponseMeta == nil || out.ResponseMeta.Usage == nil {
		return 0
	}
	usage := out.ResponseMeta.Usage
	inC, outC, totalC := model.ComputeCost(usage, model.ResolvePricing(c.modelName))
	logx.Debug().
		Str("model", c.modelName).
		Int("prompt_tokens", usage.PromptTokens).
		Int("completion_tokens", usage.CompletionTokens).
		Int("total_tokens", usage.TotalTokens).
		Float64("input_cost_usd", inC).
		Float64("output_cost_usd", outC).
		Float64("total_cost_usd", totalC).
		Msg("LLM usage")
	return totalC
}

var _ model.TextGenerator = (*Client)(nil)
