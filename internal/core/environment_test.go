package core

import "testing"

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		in   string
		want Environment
	}{
		{"production", Production},
		{"staging", Staging},
		{"testing", Testing},
		{"development", Development},
		{"", Development},
		{"PRODUCTION", Development},
	}
	for _, tt := range tests {
		if got := ParseEnvironment(tt.in); got != tt.want {
			t.Errorf("ParseEnvironment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGinMode(t *testing.T) {
	tests := map[Environment]string{
		Production:  "release",
		Staging:     "release",
		Testing:     "test",
		Development: "debug",
	}
	for env, want := range tests {
		if got := env.GinMode(); got != want {
			t.Errorf("%s.GinMode() = %q, want %q", env, got, want)
		}
	}
}
