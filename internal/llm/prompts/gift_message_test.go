package prompts

import (
	"context"
	"strings"
	"testing"
)

func TestRenderGiftMessage(t *testing.T) {
	got, err := RenderGiftMessage(context.Background(), "sister", " cozy ")
	if err != nil {
		t.Fatalf("RenderGiftMessage() error = %v", err)
	}
	for _, want := range []string{"my sister", "cozy vibe"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "{{") {
		t.Errorf("template placeholders left in prompt: %q", got)
	}
}

func TestRenderGiftMessage_RequiresInputs(t *testing.T) {
	tests := []struct{ relationship, vibe string }{
		{"", "cozy"},
		{"sister", "  "},
	}
	for _, tt := range tests {
		if _, err := RenderGiftMessage(context.Background(), tt.relationship, tt.vibe); err == nil {
			t.Errorf("RenderGiftMessage(%q, %q) expected error", tt.relationship, tt.vibe)
		}
	}
}
