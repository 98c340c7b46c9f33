package usecase

import (
	"math/rand"

	"brandwatch/internal/domain"
)

// The buzz score compares today's filtered mention count against a fixed
// reference rate of 25 mentions per 7 days, scaled to a nominal 0-100 range,
// plus a random jitter that makes the metric advisory rather than exact.
const (
	mentionBaseline = 25.0 / 7.0
	buzzScale       = 50
	jitterSpan      = 20

	spikeThreshold  = 75
	stableThreshold = 50
)

// JitterFunc returns a uniform integer in [0, span]. Injected so tests can
// pin the otherwise non-reproducible score.
type JitterFunc func(span int) int

// DefaultJitter draws from the shared process source.
func DefaultJitter(span int) int {
	return rand.Intn(span + 1)
}

func buzzIndex(mentions int, jitter JitterFunc) domain.BuzzIndex {
	baseline := mentionBaseline
	if baseline < 1 {
		baseline = 1
	}
	score := int(float64(mentions)/baseline*buzzScale) + jitter(jitterSpan)
	return domain.BuzzIndex{Score: score, Level: levelFor(score)}
}

func levelFor(score int) domain.BuzzLevel {
	switch {
	case score > spikeThreshold:
		return domain.BuzzSpike
	case score > stableThreshold:
		return domain.BuzzStable
	default:
		return domain.BuzzLow
	}
}
