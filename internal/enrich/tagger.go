package enrich

import (
	"strings"

	"brandwatch/internal/domain"
)

// DetectModel maps a title to the first product label whose name appears in
// it, case-insensitive. The scan stops at the first hit: a title mentioning
// several models is tagged with the highest-priority one, and plain substring
// semantics mean "DS70" matches "DS7". Total over any input; titles with no
// match (including the empty string) get the catch-all label.
func DetectModel(title string) string {
	lowered := strings.ToLower(title)
	for _, model := range domain.ModelLabels {
		if strings.Contains(lowered, strings.ToLower(model)) {
			return model
		}
	}
	return domain.ModelCatchAll
}
