package enrich

import (
	"testing"

	"brandwatch/internal/domain"
)

func TestDetectModel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"exact match", "Essai du DS7 sur autoroute", "DS7"},
		{"case insensitive", "la nouvelle ds3 arrive", "DS3"},
		{"substring semantics", "Le DS70 n'existe pas", "DS7"},
		{"multi word label", "Jules Verne : série limitée", "Jules Verne"},
		{"no match", "DS Automobiles en forte croissance", domain.ModelCatchAll},
		{"empty title", "", domain.ModelCatchAll},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectModel(tc.title); got != tc.want {
				t.Fatalf("DetectModel(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestDetectModelPriorityOrder(t *testing.T) {
	t.Parallel()

	// "DS N8" precedes "DS7" in the label list, so it wins even though DS7
	// appears first in the title.
	got := DetectModel("DS7 contre DS N8 : le comparatif")
	if got != "DS N8" {
		t.Fatalf("expected first label in priority order (DS N8), got %q", got)
	}
}
