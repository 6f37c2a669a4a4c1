package llm

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

type fakeChatModel struct {
	reply *schema.Message
	err   error
	got   []*schema.Message
	calls int
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	f.calls++
	f.got = input
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	if f.err != nil {
		return nil, f.err
	}
	return schema.StreamReaderFromArray([]*schema.Message{f.reply}), nil
}

func TestClient_Generate(t *testing.T) {
	reply := schema.AssistantMessage("Happy birthday, sis!", nil)
	reply.ResponseMeta = &schema.ResponseMeta{Usage: &schema.TokenUsage{PromptTokens: 40, CompletionTokens: 12, TotalTokens: 52}}
	cm := &fakeChatModel{reply: reply}

	c, err := NewClient(context.Background(), cm, "gemini-2.5-flash")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	got, err := c.Generate(context.Background(), "Write a message for my sister")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "Happy birthday, sis!" {
		t.Errorf("Generate() = %q", got)
	}
	if cm.calls != 1 {
		t.Errorf("chat model calls = %d, want 1", cm.calls)
	}
	if len(cm.got) != 1 || cm.got[0].Role != schema.User || cm.got[0].Content != "Write a message for my sister" {
		t.Errorf("unexpected model input: %+v", cm.got)
	}
}

func TestClient_GenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		model  *fakeChatModel
		prompt string
	}{
		{name: "empty prompt", model: &fakeChatModel{reply: schema.AssistantMessage("x", nil)}, prompt: "  "},
		{name: "model failure", model: &fakeChatModel{err: errors.New("quota exceeded")}, prompt: "hi"},
		{name: "blank completion", model: &fakeChatModel{reply: schema.AssistantMessage(" ", nil)}, prompt: "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(context.Background(), tt.model, "test-model")
			if err != nil {
				t.Fatalf("NewClient() error = %v", err)
			}
			if _, err := c.Generate(context.Background(), tt.prompt); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewClient_NilModel(t *testing.T) {
	if _, err := NewClient(context.Background(), nil, "x"); err == nil {
		t.Fatal("expected error for nil chat model")
	}
}
