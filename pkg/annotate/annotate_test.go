package annotate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func TestSentenceTokens(t *testing.T) {
	doc := &Annotation{
		Tokens: []Token{
			{Text: "Hello", Index: 0, Start: 0, End: 5},
			{Text: ".", Index: 1, Start: 5, End: 6},
			{Text: "Bye", Index: 2, Start: 7, End: 10},
			{Text: ".", Index: 3, Start: 10, End: 11},
		},
		Sentences: []Sentence{
			{Text: "Hello.", Start: 0, End: 6},
			{Text: "Bye.", Start: 7, End: 11},
		},
	}

	groups := doc.SentenceTokens()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0]) != 2 || groups[0][0].Text != "Hello" {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if len(groups[1]) != 2 || groups[1][0].Text != "Bye" {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestSentenceTokens_NoSentences(t *testing.T) {
	doc := &Annotation{Tokens: []Token{{Text: "orphan"}}}
	groups := doc.SentenceTokens()
	if len(groups) != 1 || len(groups[0]) != 1 {
		t.Fatalf("expected single group, got %v", groups)
	}

	if got := (&Annotation{}).SentenceTokens(); got != nil {
		t.Fatalf("expected nil for empty annotation, got %v", got)
	}
}

func TestSentenceTokens_TokenPastLastSentence(t *testing.T) {
	doc := &Annotation{
		Tokens: []Token{
			{Text: "Hi", Index: 0, Start: 0, End: 2},
			{Text: "trailing", Index: 1, Start: 10, End: 18},
		},
		Sentences: []Sentence{{Text: "Hi", Start: 0, End: 2}},
	}

	groups := doc.SentenceTokens()
	if len(groups) != 1 || len(groups[0]) != 2 {
		t.Fatalf("expected trailing token attached to last sentence, got %v", groups)
	}
}

func TestHTTPClient_Annotate(t *testing.T) {
	want := &Annotation{
		Tokens:    []Token{{Text: "Hello", Lemma: "hello", POS: "INTJ", Index: 0, End: 5}},
		Sentences: []Sentence{{Text: "Hello", End: 5}},
		Entities:  []EntitySpan{},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/annotate" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Text != "Hello" {
			t.Errorf("unexpected text: %q", req.Text)
		}
		json.NewEncoder(w).Encode(want)
	}))
	defer server.Close()

	client := NewHTTPClient(NewHTTPClientParams{BaseURL: server.URL + "/"})
	got, err := client.Annotate(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestHTTPClient_AnnotateErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHTTPClient(NewHTTPClientParams{BaseURL: server.URL})
	_, err := client.Annotate(context.Background(), "Hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "model not loaded") {
		t.Fatalf("unexpected error: %v", err)
	}

	client = NewHTTPClient(NewHTTPClientParams{BaseURL: "http://127.0.0.1:1"})
	if _, err := client.Annotate(context.Background(), "Hello"); err == nil {
		t.Fatal("expected connection error")
	}
}
