package slugify

import (
	"context"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Kitchen Remodeling", "kitchen-remodeling"},
		{"punctuation collapses", "Roofing & Gutters: A Guide!", "roofing-gutters-a-guide"},
		{"diacritics stripped", "Café Rénovation", "cafe-renovation"},
		{"surrounding whitespace", "  Decks  ", "decks"},
		{"consecutive separators", "one -- two   three", "one-two-three"},
		{"digits kept", "Top 10 Tips for 2024", "top-10-tips-for-2024"},
		{"nothing usable", "???", "item"},
		{"empty", "", "item"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify_LengthLimit(t *testing.T) {
	got := Slugify(strings.Repeat("word ", 50))
	if len(got) > 100 {
		t.Errorf("Slugify(long input) = %d chars, want at most 100", len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("Slugify(long input) = %q, want no trailing hyphen after truncation", got)
	}
}

func TestUnique(t *testing.T) {
	taken := map[string]bool{
		"kitchen-remodeling":   true,
		"kitchen-remodeling-2": true,
	}
	exists := func(ctx context.Context, slug string) (bool, error) {
		return taken[slug], nil
	}

	got, err := Unique(context.Background(), "Kitchen Remodeling", exists)
	if err != nil {
		t.Fatalf("Unique() error = %v", err)
	}
	if got != "kitchen-remodeling-3" {
		t.Errorf("Unique() = %q, want kitchen-remodeling-3", got)
	}

	got, err = Unique(context.Background(), "Bathroom Tiling", exists)
	if err != nil {
		t.Fatalf("Unique() error = %v", err)
	}
	if got != "bathroom-tiling" {
		t.Errorf("Unique() = %q, want the base slug when free", got)
	}
}
