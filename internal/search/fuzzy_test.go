package search_test

import (
	"slices"
	"testing"

	"github.com/subcue/subcue/internal/search"
	"github.com/subcue/subcue/pkg/caption"
)

func wordsDoc(texts ...string) *caption.Document {
	words := make([]caption.WordSegment, len(texts))
	for i, text := range texts {
		words[i] = caption.WordSegment{
			ID: text, Word: text, OriginalWord: text,
			Start: float64(i), End: float64(i) + 0.5,
		}
	}
	return &caption.Document{
		Frames: []caption.SubtitleFrame{{ID: "f1", StartTime: 0, EndTime: float64(len(texts)), Words: words}},
	}
}

func TestSuggest_ClosestWordsFirst(t *testing.T) {
	t.Parallel()

	doc := wordsDoc("cart", "cast", "category", "dog")
	got := search.Suggest(doc, "cat", 0)

	// "cart" and "cast" are both distance 1; "category" is too far away and
	// "dog" shares nothing with the query.
	want := []string{"cart", "cast"}
	if !slices.Equal(got, want) {
		t.Errorf("Suggest = %v, want %v", got, want)
	}
}

func TestSuggest_PhoneticTiebreak(t *testing.T) {
	t.Parallel()

	// "fone" and "gone" are equally far from "phone" by letters, but only
	// "fone" sounds like it.
	doc := wordsDoc("fone", "gone")
	got := search.Suggest(doc, "phone", 0)
	if len(got) == 0 || got[0] != "fone" {
		t.Errorf("Suggest = %v, want fone ranked first (phonetic match)", got)
	}
}

func TestSuggest_Limit(t *testing.T) {
	t.Parallel()

	doc := wordsDoc("cart", "cast", "coat", "chat")
	got := search.Suggest(doc, "cat", 2)
	if len(got) != 2 {
		t.Errorf("len(Suggest) = %d, want 2", len(got))
	}
}

func TestSuggest_SkipsExactAndDuplicates(t *testing.T) {
	t.Parallel()

	doc := wordsDoc("cat", "Cart", "cart")
	got := search.Suggest(doc, "cat", 0)
	want := []string{"cart"}
	if !slices.Equal(got, want) {
		t.Errorf("Suggest = %v, want %v (exact match skipped, duplicates folded)", got, want)
	}
}

func TestSuggest_EmptyInputs(t *testing.T) {
	t.Parallel()

	if got := search.Suggest(nil, "cat", 0); got != nil {
		t.Errorf("Suggest(nil doc) = %v, want nil", got)
	}
	if got := search.Suggest(wordsDoc("cat"), "  ", 0); got != nil {
		t.Errorf("Suggest(blank query) = %v, want nil", got)
	}
}
