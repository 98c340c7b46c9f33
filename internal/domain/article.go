package domain

import (
	"errors"
	"time"
)

// Tone is the normalized sentiment label attached to an article.
type Tone string

const (
	TonePositive Tone = "Positive"
	ToneNeutral  Tone = "Neutral"
	ToneNegative Tone = "Negative"
)

// ModelLabels lists the tracked product names in detection priority order:
// the tagger returns the first entry found in a title, not the best match.
var ModelLabels = []string{"DS N4", "DS N8", "DS7", "DS3", "DS9", "DS4", "Jules Verne"}

// ModelCatchAll tags articles that mention the brand but no specific model.
const ModelCatchAll = "DS Global"

// NoContentPlaceholder replaces the summary when a provider sent no body text.
const NoContentPlaceholder = "Aucun contenu"

// RawArticle is the provider-native record shape. Every field is optional;
// Date stays a string until the pipeline parses it best-effort.
type RawArticle struct {
	Date    string
	Title   string
	Content string
	Source  string
	Link    string
}

// Article is the enriched, immutable row shown to the user. Summary, Tone
// and Model are always set after enrichment; Date is nil when the provider
// value could not be parsed.
type Article struct {
	Date    *time.Time
	Title   string
	Content string
	Source  string
	Link    string
	Summary string
	Tone    Tone
	Model   string
}

// BuzzLevel is the qualitative reading of the buzz score.
type BuzzLevel string

const (
	BuzzLow    BuzzLevel = "Low"
	BuzzStable BuzzLevel = "Stable"
	BuzzSpike  BuzzLevel = "Spike"
)

// BuzzIndex is recomputed from scratch on every run; it carries no history
// and, because of the jitter term, is not reproducible run to run.
type BuzzIndex struct {
	Score int
	Level BuzzLevel
}

// ErrNoArticles signals the single user-visible stop condition: every
// configured provider came back empty. Informational, not a failure.
var ErrNoArticles = errors.New("no articles found")
