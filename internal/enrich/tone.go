package enrich

import (
	"context"
	"log/slog"
	"strings"

	"brandwatch/internal/domain"
	"brandwatch/internal/ports"
)

// classifierInputLimit is the practical input ceiling of the underlying
// sentiment model; longer text is cut before the call.
const classifierInputLimit = 512

// ToneNormalizer wraps the external classifier and pins its output to the
// fixed {Positive, Neutral, Negative} vocabulary. Classification can never
// fail the pipeline: every error path collapses to Neutral.
type ToneNormalizer struct {
	classifier ports.ToneClassifier
	logger     *slog.Logger
}

// NewToneNormalizer wires the classifier dependency; both arguments may be nil.
func NewToneNormalizer(classifier ports.ToneClassifier, logger *slog.Logger) *ToneNormalizer {
	return &ToneNormalizer{classifier: classifier, logger: logger}
}

// Classify returns the normalized tone for the given text.
func (n *ToneNormalizer) Classify(ctx context.Context, text string) domain.Tone {
	if n == nil || n.classifier == nil || text == "" {
		return domain.ToneNeutral
	}

	if runes := []rune(text); len(runes) > classifierInputLimit {
		text = string(runes[:classifierInputLimit])
	}

	label, _, err := n.classifier.Classify(ctx, text)
	if err != nil {
		if n.logger != nil {
			n.logger.Warn("classification failed, defaulting tone", "error", err)
		}
		return domain.ToneNeutral
	}

	return normalizeLabel(label)
}

// normalizeLabel accepts both plain-word labels and the LABEL_n indices the
// roberta sentiment models emit. Anything unknown reads as Neutral.
func normalizeLabel(label string) domain.Tone {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "positive", "label_2":
		return domain.TonePositive
	case "negative", "label_0":
		return domain.ToneNegative
	case "neutral", "label_1":
		return domain.ToneNeutral
	default:
		return domain.ToneNeutral
	}
}
