package nlp

import (
	"regexp"
	"strings"
)

// intentPattern associates an intent label with the cues that signal it.
// Patterns are checked in declaration order against the lowercased text
// and the first match wins, so earlier intents take priority: question
// outranks everything, explanation outranks instruction. Cues match
// anywhere in the text, so "whatever" still reads as a question cue.
type intentPattern struct {
	intent   string
	patterns []*regexp.Regexp
}

var intentPatterns = []intentPattern{
	{
		intent: "question",
		patterns: compilePatterns(
			`\?`, `what`, `how`, `why`, `when`, `where`, `who`, `which`,
		),
	},
	{
		intent: "explanation",
		patterns: compilePatterns(
			`explain`, `describe`, `definition`, `means`, `is defined as`, `refers to`,
		),
	},
	{
		intent: "instruction",
		patterns: compilePatterns(
			`steps`, `how to`, `process`, `method`, `procedure`, `tutorial`, `guide`,
		),
	},
	{
		intent: "analysis",
		patterns: compilePatterns(
			`analyze`, `compare`, `evaluate`, `assess`, `examine`, `investigate`,
		),
	},
	{
		intent: "opinion",
		patterns: compilePatterns(
			`think`, `believe`, `opinion`, `view`, `perspective`, `feel`, `consider`,
		),
	},
	{
		intent: "factual",
		patterns: compilePatterns(
			`fact`, `data`, `statistics`, `research`, `study`, `evidence`, `proof`,
		),
	},
}

func compilePatterns(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		patterns[i] = regexp.MustCompile(expr)
	}
	return patterns
}

// ClassifyIntent labels a text with its dominant communicative intent.
// Texts matching no pattern are labeled informational.
func ClassifyIntent(text string) string {
	lower := strings.ToLower(text)
	for _, candidate := range intentPatterns {
		for _, pattern := range candidate.patterns {
			if pattern.MatchString(lower) {
				return candidate.intent
			}
		}
	}
	return "informational"
}
