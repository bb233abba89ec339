package polarity

import (
	"math"
	"strings"
	"unicode"
)

// Scores holds raw polarity intensities for a text. Positive, Negative and
// Neutral are proportions in [0,1]; Compound is a normalized aggregate
// valence in [-1,1].
type Scores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
}

// Scaling constants of the valence aggregation. Boosters shift the valence
// of the following lexicon hit, negations flip and dampen it.
const (
	normalizationAlpha = 15.0
	boostIncrement     = 0.293
	negationFactor     = -0.74
	negationWindow     = 3
)

// LexiconScorer scores text against an embedded valence lexicon. The zero
// value is not usable; create one with NewLexiconScorer. A LexiconScorer is
// immutable after construction and safe for concurrent use.
type LexiconScorer struct {
	lexicon   map[string]float64
	boosters  map[string]float64
	negations map[string]bool
}

// NewLexiconScorer creates a scorer backed by the built-in valence lexicon.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{
		lexicon:   valenceLexicon,
		boosters:  boosterLexicon,
		negations: negationWords,
	}
}

// Score computes polarity intensities for text. Empty or unscorable text
// yields all-zero scores with Neutral=1.
func (s *LexiconScorer) Score(text string) Scores {
	words := tokenize(text)
	if len(words) == 0 {
		return Scores{Neutral: 1}
	}

	var (
		posSum float64
		negSum float64
		neuCnt int
		total  float64
	)

	for i, word := range words {
		valence, ok := s.lexicon[word]
		if !ok {
			if !s.negations[word] {
				if _, boost := s.boosters[word]; !boost {
					neuCnt++
				}
			}
			continue
		}

		// Boosters directly before the hit amplify its valence.
		if i > 0 {
			if boost, ok := s.boosters[words[i-1]]; ok {
				if valence > 0 {
					valence += boost
				} else {
					valence -= boost
				}
			}
		}

		// A negation in the preceding window flips and dampens.
		for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
			if s.negations[words[j]] {
				valence *= negationFactor
				break
			}
		}

		if valence > 0 {
			posSum += valence
		} else {
			negSum += valence
		}
		total += valence
	}

	compound := total / math.Sqrt(total*total+normalizationAlpha)

	denom := posSum + math.Abs(negSum) + float64(neuCnt)
	if denom == 0 {
		return Scores{Neutral: 1, Compound: compound}
	}

	return Scores{
		Positive: posSum / denom,
		Negative: math.Abs(negSum) / denom,
		Neutral:  float64(neuCnt) / denom,
		Compound: compound,
	}
}

// tokenize lowercases and splits text into letter-only words.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}
