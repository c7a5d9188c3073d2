package search_test

import (
	"testing"

	"github.com/subcue/subcue/internal/search"
	"github.com/subcue/subcue/pkg/caption"
)

func findWord(t *testing.T, doc *caption.Document, id string) caption.WordSegment {
	t.Helper()
	for _, f := range doc.Frames {
		for _, w := range f.Words {
			if w.ID == id {
				return w
			}
		}
	}
	t.Fatalf("word %q not found", id)
	return caption.WordSegment{}
}

func TestReplaceCurrent_RewritesMatchedPortion(t *testing.T) {
	t.Parallel()

	doc := transcriptDoc()
	res := search.Find(doc, "cat", search.Options{})
	res.Next() // cursor onto the standalone "cat" in f1

	out, changed := res.ReplaceCurrent(doc, "dog")
	if !changed {
		t.Fatal("ReplaceCurrent: changed=false, want true")
	}
	if w := findWord(t, out, "cat-id"); w.Word != "dog" {
		t.Errorf("replaced word = %q, want %q", w.Word, "dog")
	}
	// Only the word under the cursor changes.
	if w := findWord(t, out, "Category-id"); w.Word != "Category" {
		t.Errorf("untouched word = %q, want Category", w.Word)
	}
	if out.LastModified <= doc.LastModified {
		t.Error("replace must bump the modification stamp")
	}
}

func TestReplaceCurrent_SubstitutesInsideLongerWord(t *testing.T) {
	t.Parallel()

	doc := transcriptDoc()
	res := search.Find(doc, "cat", search.Options{})

	// Cursor starts on "Category"; only the matched substring is rewritten.
	out, changed := res.ReplaceCurrent(doc, "Dog")
	if !changed {
		t.Fatal("ReplaceCurrent: changed=false, want true")
	}
	if w := findWord(t, out, "Category-id"); w.Word != "Dogegory" {
		t.Errorf("replaced word = %q, want %q", w.Word, "Dogegory")
	}
}

func TestReplaceAll_RewritesEveryMatch(t *testing.T) {
	t.Parallel()

	doc := transcriptDoc()
	res := search.Find(doc, "cat", search.Options{WholeWord: true})

	out, replaced := res.ReplaceAll(doc, "dog")
	if replaced != 2 {
		t.Fatalf("replaced = %d, want 2", replaced)
	}
	for _, f := range out.Frames {
		for _, w := range f.Words {
			if w.Word == "cat" {
				t.Errorf("word %q still reads cat after ReplaceAll", w.ID)
			}
		}
	}
	if w := findWord(t, out, "Category-id"); w.Word != "Category" {
		t.Errorf("whole-word ReplaceAll touched %q", w.Word)
	}
}

func TestReplaceAll_SkipsStaleMatches(t *testing.T) {
	t.Parallel()

	doc := transcriptDoc()
	res := search.Find(doc, "cat", search.Options{WholeWord: true})

	// Drop the f2 match from the document after indexing.
	stale := doc.Clone()
	stale.Frames[1].Words = stale.Frames[1].Words[:1]

	out, replaced := res.ReplaceAll(stale, "dog")
	if replaced != 1 {
		t.Fatalf("replaced = %d, want 1 (the vanished word is skipped)", replaced)
	}
	if w := findWord(t, out, "cat-id"); w.Word != "dog" {
		t.Errorf("surviving match = %q, want dog", w.Word)
	}
}

// A word edited between the search and the replace must not be clobbered
// with a rewrite of its search-time text.
func TestReplaceCurrent_SkipsWordEditedAwayFromPattern(t *testing.T) {
	t.Parallel()

	doc := transcriptDoc()
	res := search.Find(doc, "cat", search.Options{WholeWord: true})

	// "cat" became "kitten" after indexing; the pattern no longer matches.
	edited := doc.Clone()
	wi := edited.Frames[0].WordIndex("cat-id")
	edited.Frames[0].Words[wi].Word = "kitten"

	out, changed := res.ReplaceCurrent(edited, "dog")
	if changed {
		t.Fatal("ReplaceCurrent on an edited word: changed=true, want false")
	}
	if out != edited {
		t.Error("skip must return the input snapshot unchanged")
	}
	if w := findWord(t, edited, "cat-id"); w.Word != "kitten" {
		t.Errorf("word = %q, want the newer edit preserved", w.Word)
	}
}

func TestReplaceCurrent_UsesCurrentTextNotSearchTimeText(t *testing.T) {
	t.Parallel()

	doc := transcriptDoc()
	res := search.Find(doc, "cat", search.Options{})

	// Cursor starts on "Category"; it was edited to "catalog" after indexing
	// and still matches, so the substitution applies to the current text.
	edited := doc.Clone()
	wi := edited.Frames[0].WordIndex("Category-id")
	edited.Frames[0].Words[wi].Word = "catalog"

	out, changed := res.ReplaceCurrent(edited, "dog")
	if !changed {
		t.Fatal("ReplaceCurrent: changed=false, want true")
	}
	if w := findWord(t, out, "Category-id"); w.Word != "dogalog" {
		t.Errorf("replaced word = %q, want %q (substitution on the current text)", w.Word, "dogalog")
	}
}

func TestReplaceAll_SkipsEditedWords(t *testing.T) {
	t.Parallel()

	doc := transcriptDoc()
	res := search.Find(doc, "cat", search.Options{WholeWord: true})

	edited := doc.Clone()
	wi := edited.Frames[1].WordIndex("f2-cat-id")
	edited.Frames[1].Words[wi].Word = "kitten"

	out, replaced := res.ReplaceAll(edited, "dog")
	if replaced != 1 {
		t.Fatalf("replaced = %d, want 1 (the edited word is skipped)", replaced)
	}
	if w := findWord(t, out, "f2-cat-id"); w.Word != "kitten" {
		t.Errorf("edited word = %q, want kitten preserved", w.Word)
	}
	if w := findWord(t, out, "cat-id"); w.Word != "dog" {
		t.Errorf("unedited match = %q, want dog", w.Word)
	}
}

func TestReplace_NoMatchesIsNoOp(t *testing.T) {
	t.Parallel()

	doc := transcriptDoc()
	res := search.Find(doc, "zebra", search.Options{})

	if out, changed := res.ReplaceCurrent(doc, "dog"); changed || out != doc {
		t.Error("ReplaceCurrent with no matches must return the input unchanged")
	}
	if out, replaced := res.ReplaceAll(doc, "dog"); replaced != 0 || out != doc {
		t.Error("ReplaceAll with no matches must return the input unchanged")
	}
}
