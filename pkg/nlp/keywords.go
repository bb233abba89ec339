package nlp

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lexgraph/lexgraph/pkg/annotate"
	"github.com/lexgraph/lexgraph/pkg/common"
	"github.com/lexgraph/lexgraph/pkg/logger"
)

// DefaultMaxKeywords caps the keyword list when no explicit cap is given.
const DefaultMaxKeywords = 20

// candidatePOS lists the coarse part-of-speech tags eligible as keyword
// candidates.
var candidatePOS = map[string]bool{
	"NOUN":  true,
	"ADJ":   true,
	"PROPN": true,
}

// ExtractKeywords turns an annotated document into ranked keyword candidates.
// Candidates are non-stop, non-punctuation, non-space tokens longer than two
// characters whose POS is a noun, adjective or proper noun, reduced to their
// lowercased lemma. The combined score is 0.7 times the per-document tf-idf
// weight plus 0.3 times the relative frequency.
//
// The tf-idf step treats the joined candidate lemmas as a single document,
// so the weight degenerates to an L2-normalized frequency term rather than a
// true corpus statistic. That behavior is intentional and must not be
// replaced with multi-document IDF.
//
// Weighting failures degrade to pure frequency ranking; ExtractKeywords
// never returns an error.
func ExtractKeywords(doc *annotate.Annotation, maxKeywords int) []common.Keyword {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}

	candidates := keywordCandidates(doc)
	if len(candidates) == 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, c := range candidates {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	total := len(candidates)

	weights, err := scoreTerms(counts)
	if err != nil {
		logger.Warn("[Keywords] Term weighting failed, falling back to frequency ranking", "err", err)
		weights = nil
	}

	keywords := make([]common.Keyword, 0, len(order))
	for _, word := range order {
		freq := counts[word]
		freqScore := float64(freq) / float64(total)

		var tfidf float64
		if weights != nil {
			tfidf = weights[word]
		}

		score := freqScore
		if weights != nil {
			score = tfidf*0.7 + freqScore*0.3
		}

		keywords = append(keywords, common.Keyword{
			Word:      word,
			Score:     score,
			Frequency: freq,
			TFIDF:     tfidf,
		})
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		if keywords[i].Frequency != keywords[j].Frequency {
			return keywords[i].Frequency > keywords[j].Frequency
		}
		return keywords[i].Word < keywords[j].Word
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

func keywordCandidates(doc *annotate.Annotation) []string {
	var candidates []string
	for _, tok := range doc.Tokens {
		if tok.IsStop || tok.IsPunct || tok.IsSpace {
			continue
		}
		if len(tok.Text) <= 2 {
			continue
		}
		if !candidatePOS[tok.POS] {
			continue
		}
		candidates = append(candidates, strings.ToLower(tok.Lemma))
	}
	return candidates
}

// scoreTerms computes the per-document tf-idf weight for each term. With a
// single synthetic document the inverse-document-frequency factor is
// constant, leaving an L2-normalized term frequency. The function is pure:
// it holds no fitted state between calls, so concurrent requests cannot
// interfere with each other.
func scoreTerms(counts map[string]int) (map[string]float64, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("empty vocabulary")
	}

	var sumSquares float64
	for _, c := range counts {
		sumSquares += float64(c) * float64(c)
	}
	norm := math.Sqrt(sumSquares)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, fmt.Errorf("degenerate term norm")
	}

	weights := make(map[string]float64, len(counts))
	for term, c := range counts {
		weights[term] = float64(c) / norm
	}
	return weights, nil
}
