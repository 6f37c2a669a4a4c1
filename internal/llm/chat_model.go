package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"google.golang.org/genai"

	"github.com/giftgenie-teelab/server/internal/model"
	logx "github.com/giftgenie-teelab/server/pkg/logger"
)

// NewGeminiChatModel creates the Gemini chat model used for message generation.
func NewGeminiChatModel(ctx context.Context, config model.GenerationModelConfig) (*gemini.ChatModel, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       config.Model,
		Temperature: &config.Temperature,
		MaxTokens:   &config.MaxTokens,
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: false,
			ThinkingBudget:  genai.Ptr(config.ThinkingBudget),
		},
	})
	if err != nil {
		logx.Error().Err(err).Str("model", config.Model).Msg("Error creating generation model")
		return nil, fmt.Errorf("error creating generation model: %w", err)
	}

	return chatModel, nil
}
