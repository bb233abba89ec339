package nlp

import (
	"strings"

	"github.com/lexgraph/lexgraph/pkg/annotate"
)

// Preprocess reduces an annotated document to its informative lemmas:
// stopwords, punctuation, whitespace and single-character tokens are
// dropped, everything else is lowercased and joined with single spaces.
func Preprocess(doc *annotate.Annotation) string {
	var lemmas []string
	for _, tok := range doc.Tokens {
		if tok.IsStop || tok.IsPunct || tok.IsSpace || len(tok.Text) <= 1 {
			continue
		}
		lemmas = append(lemmas, strings.ToLower(tok.Lemma))
	}
	return strings.Join(lemmas, " ")
}
