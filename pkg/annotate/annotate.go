package annotate

import "context"

// Token is a single annotated token. POS carries the coarse part-of-speech
// tag (NOUN, ADJ, PROPN, ...), Dep the dependency label relative to the
// syntactic head, Head the literal text of that head, Index the token's
// position in the document and Start/End its character offsets into the
// original source text.
type Token struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`
	Dep     string `json:"dep"`
	Head    string `json:"head"`
	Index   int    `json:"index"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	IsStop  bool   `json:"is_stop"`
	IsPunct bool   `json:"is_punct"`
	IsSpace bool   `json:"is_space"`
}

// Sentence is a sentence boundary with its character span in the source text.
type Sentence struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// EntitySpan is a named-entity span with its character offsets into the
// original (unprocessed) source text.
type EntitySpan struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Annotation is the full linguistic annotation of one document.
type Annotation struct {
	Tokens    []Token      `json:"tokens"`
	Sentences []Sentence   `json:"sentences"`
	Entities  []EntitySpan `json:"entities"`
}

// Annotator produces linguistic annotations for raw text. Tokenization,
// parsing and named-entity recognition are entirely the annotator's
// responsibility; the processing pipeline only consumes this contract.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*Annotation, error)
}

// SentenceTokens groups the annotation's tokens by sentence. A token belongs
// to the sentence whose character span contains its start offset; tokens
// outside every span are attached to the last sentence that started before
// them. Returns one group per sentence, in document order.
func (a *Annotation) SentenceTokens() [][]Token {
	if len(a.Sentences) == 0 {
		if len(a.Tokens) == 0 {
			return nil
		}
		return [][]Token{a.Tokens}
	}

	groups := make([][]Token, len(a.Sentences))
	si := 0
	for _, tok := range a.Tokens {
		for si < len(a.Sentences)-1 && tok.Start >= a.Sentences[si+1].Start {
			si++
		}
		groups[si] = append(groups[si], tok)
	}
	return groups
}
