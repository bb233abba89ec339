package readability

import (
	"errors"
	"strings"
	"unicode"
)

// Scores holds the two readability measures the pipeline consumes.
type Scores struct {
	EaseScore  float64 `json:"ease_score"`
	GradeLevel float64 `json:"grade_level"`
}

// ErrNoText is returned when the input contains no scorable words.
var ErrNoText = errors.New("readability: no scorable words")

// FleschScorer computes Flesch reading-ease and Flesch-Kincaid grade level
// using a vowel-group syllable heuristic. It is stateless and safe for
// concurrent use.
type FleschScorer struct{}

// NewFleschScorer creates a Flesch readability scorer.
func NewFleschScorer() *FleschScorer {
	return &FleschScorer{}
}

// Score computes the ease score and grade level for text.
func (s *FleschScorer) Score(text string) (Scores, error) {
	words := wordsOf(text)
	if len(words) == 0 {
		return Scores{}, ErrNoText
	}

	sentences := countSentences(text)
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	return Scores{
		EaseScore:  206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord,
		GradeLevel: 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59,
	}, nil
}

func wordsOf(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func countSentences(text string) int {
	count := 0
	inTerminator := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inTerminator {
				count++
				inTerminator = true
			}
		default:
			inTerminator = false
		}
	}
	return count
}

// countSyllables approximates syllables as vowel groups, dropping a trailing
// silent e and flooring at one.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	groups := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			groups++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && groups > 1 {
		groups--
	}

	if groups < 1 {
		groups = 1
	}
	return groups
}
