package nlp

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"What is the capital of France", "question"},
		{"Did the mission succeed?", "question"},
		{"Whatever happens next is unclear", "question"},
		{"Explain the docking sequence", "explanation"},
		{"The term refers to a class of algorithms", "explanation"},
		{"Follow the tutorial before flight", "instruction"},
		{"The launch procedure takes an hour", "instruction"},
		{"Compare the two engine designs", "analysis"},
		{"Assess the structural margins", "analysis"},
		{"I believe the design is flawed", "opinion"},
		{"From my perspective the plan works", "opinion"},
		{"The research shows clear evidence", "factual"},
		{"Official statistics back the claim", "factual"},
		{"The sky turned orange at dusk", "informational"},
		{"", "informational"},
	}

	for _, tt := range tests {
		if got := ClassifyIntent(tt.text); got != tt.want {
			t.Fatalf("expected %s for %q, got %s", tt.want, tt.text, got)
		}
	}
}

func TestClassifyIntent_Priority(t *testing.T) {
	// "how to" signals instruction, but "how" is checked first as a
	// question cue.
	if got := ClassifyIntent("How to dock the capsule"); got != "question" {
		t.Fatalf("expected question, got %s", got)
	}
	// "steps" and "process" signal instruction, but explanation is
	// checked before instruction and "describe" wins.
	if got := ClassifyIntent("These steps describe the recovery process"); got != "explanation" {
		t.Fatalf("expected explanation, got %s", got)
	}
}
