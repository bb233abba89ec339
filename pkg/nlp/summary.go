package nlp

import (
	"math"
	"strings"

	"github.com/lexgraph/lexgraph/pkg/common"
	"github.com/lexgraph/lexgraph/pkg/logger"
	"github.com/lexgraph/lexgraph/pkg/polarity"
	"github.com/lexgraph/lexgraph/pkg/readability"
)

// PolarityScorer computes valence scores for a text.
// *polarity.LexiconScorer satisfies it.
type PolarityScorer interface {
	Score(text string) polarity.Scores
}

// ReadabilityScorer computes readability scores for a text.
// *readability.FleschScorer satisfies it.
type ReadabilityScorer interface {
	Score(text string) (readability.Scores, error)
}

// AnalyzeSentiment turns polarity scores into a labeled sentiment summary.
// The label is positive when the compound score is at least 0.05, negative
// when at most -0.05, neutral otherwise; confidence is the absolute
// compound score. A nil scorer or blank text yields a neutral zero summary.
func AnalyzeSentiment(scorer PolarityScorer, text string) *common.Sentiment {
	if scorer == nil || strings.TrimSpace(text) == "" {
		return &common.Sentiment{Label: "neutral"}
	}

	scores := scorer.Score(text)
	label := "neutral"
	switch {
	case scores.Compound >= 0.05:
		label = "positive"
	case scores.Compound <= -0.05:
		label = "negative"
	}

	return &common.Sentiment{
		Compound:   scores.Compound,
		Positive:   scores.Positive,
		Negative:   scores.Negative,
		Neutral:    scores.Neutral,
		Label:      label,
		Confidence: math.Abs(scores.Compound),
	}
}

// CalculateReadability maps readability scores into a complexity band.
// Scorer errors degrade to an unknown summary instead of propagating.
func CalculateReadability(scorer ReadabilityScorer, text string) *common.Readability {
	if scorer == nil {
		return &common.Readability{Complexity: "unknown"}
	}

	scores, err := scorer.Score(text)
	if err != nil {
		logger.Warn("[Readability] Scoring failed", "err", err)
		return &common.Readability{Complexity: "unknown"}
	}

	return &common.Readability{
		FleschEase:    scores.EaseScore,
		FleschKincaid: scores.GradeLevel,
		Complexity:    complexityBand(scores.EaseScore),
	}
}

// complexityBand maps a Flesch reading-ease score to a complexity label.
func complexityBand(ease float64) string {
	switch {
	case ease >= 90:
		return "very easy"
	case ease >= 80:
		return "easy"
	case ease >= 70:
		return "fairly easy"
	case ease >= 60:
		return "standard"
	case ease >= 50:
		return "fairly difficult"
	case ease >= 30:
		return "difficult"
	default:
		return "very difficult"
	}
}
