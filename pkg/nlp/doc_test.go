package nlp

import (
	"strings"

	"github.com/lexgraph/lexgraph/pkg/annotate"
)

// tok is a compact token description for building test annotations.
type tok struct {
	text  string
	lemma string
	pos   string
	dep   string
	stop  bool
	punct bool
}

func word(text, pos, dep string) tok {
	return tok{text: text, lemma: strings.ToLower(text), pos: pos, dep: dep}
}

func stopword(text string) tok {
	return tok{text: text, lemma: strings.ToLower(text), pos: "DET", dep: "det", stop: true}
}

func punct(text string) tok {
	return tok{text: text, lemma: text, pos: "PUNCT", dep: "punct", punct: true}
}

// makeDoc builds an annotation from per-sentence token lists. Tokens are
// laid out space-separated so character offsets stay consistent with the
// sentence texts.
func makeDoc(sentences [][]tok, entities []annotate.EntitySpan) *annotate.Annotation {
	doc := &annotate.Annotation{Entities: entities}

	offset := 0
	index := 0
	for _, sentence := range sentences {
		var words []string
		sentStart := offset
		for _, t := range sentence {
			start := offset
			end := start + len(t.text)
			doc.Tokens = append(doc.Tokens, annotate.Token{
				Text:    t.text,
				Lemma:   t.lemma,
				POS:     t.pos,
				Dep:     t.dep,
				Index:   index,
				Start:   start,
				End:     end,
				IsStop:  t.stop,
				IsPunct: t.punct,
			})
			words = append(words, t.text)
			offset = end + 1
			index++
		}
		text := strings.Join(words, " ")
		doc.Sentences = append(doc.Sentences, annotate.Sentence{
			Text:  text,
			Start: sentStart,
			End:   sentStart + len(text),
		})
	}
	return doc
}
