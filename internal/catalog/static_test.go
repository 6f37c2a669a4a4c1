package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/giftgenie-teelab/server/internal/model"
)

func TestStatic_SearchProducts(t *testing.T) {
	s := NewStatic(
		model.Product{Title: "A", Tags: []string{"female", "fair"}},
		model.Product{Title: "B", Tags: []string{"Female", "Fair", "petite"}},
		model.Product{Title: "C", Tags: []string{"male", "fair"}},
		model.Product{Title: "D", Tags: []string{"female", "deep"}},
	)

	tests := []struct {
		name  string
		query model.ProductQuery
		want  []string
	}{
		{name: "all tags must match", query: model.ProductQuery{Tags: "female,fair", Limit: 5}, want: []string{"A", "B"}},
		{name: "case insensitive", query: model.ProductQuery{Tags: "FAIR", Limit: 5}, want: []string{"A", "B", "C"}},
		{name: "limit", query: model.ProductQuery{Tags: "fair", Limit: 2}, want: []string{"A", "B"}},
		{name: "no match", query: model.ProductQuery{Tags: "olive", Limit: 5}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SearchProducts(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d products, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Title != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i].Title, tt.want[i])
				}
			}
		})
	}
}

func TestStatic_Err(t *testing.T) {
	s := NewStatic()
	s.Err = errors.New("down")
	if _, err := s.SearchProducts(context.Background(), model.ProductQuery{Tags: "x"}); err == nil {
		t.Fatal("expected configured error")
	}
}
