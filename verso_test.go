package verso

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/verso/document"
	"github.com/tsawler/verso/engine"
	"github.com/tsawler/verso/model"
	"github.com/tsawler/verso/page"
	"github.com/tsawler/verso/spans"
)

type fakeEngine struct {
	doc *fakeDoc
	err error
}

func (f fakeEngine) Open(path string) (engine.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

type fakeDoc struct {
	pages  []*fakePage
	closed bool
}

func (f *fakeDoc) PageCount() int { return len(f.pages) }
func (f *fakeDoc) Page(i int) (engine.Page, error) { return f.pages[i], nil }
func (f *fakeDoc) Outline() ([]*engine.OutlineItem, error) { return nil, nil }
func (f *fakeDoc) Info() (engine.Dict, error) {
	return engine.Dict{"Title": engine.String("Fixture")}, nil
}
func (f *fakeDoc) Close() error {
	f.closed = true
	return nil
}

type fakePage struct {
	spans []spans.Span
}

func (f *fakePage) Size() (float64, float64) { return 100, 200 }
func (f *fakePage) ExtractSpans() ([]spans.Span, error) { return f.spans, nil }
func (f *fakePage) Links() ([]engine.Link, error) { return nil, nil }
func (f *fakePage) Resources() (engine.Dict, error) { return nil, nil }
func (f *fakePage) Render(sx, sy float64) (*engine.Pixmap, error) { return nil, errors.New("no pixmap") }

func lineSpan(text string, y float64, eol bool) spans.Span {
	chars := make([]spans.Char, 0, len(text))
	for i, r := range []rune(text) {
		cx := float64(i) * 10
		chars = append(chars, spans.Char{
			Rune: r,
			BBox: model.NewRect(cx, y, cx+10, y+10),
		})
	}
	return spans.Span{Chars: chars, EOL: eol}
}

func fixtureEngine() fakeEngine {
	return fakeEngine{doc: &fakeDoc{
		pages: []*fakePage{
			{spans: []spans.Span{lineSpan("Hello", 100, true), lineSpan("World", 80, false)}},
			{spans: []spans.Span{lineSpan("Another hello", 100, false)}},
		},
	}}
}

func TestSessionSearch(t *testing.T) {
	matches, err := Open(fixtureEngine(), "fixture.pdf").Search("hello")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("expected hits on 2 pages, got %d", len(matches))
	}
	if matches[0].Page != 1 || len(matches[0].Rects) != 1 {
		t.Errorf("first page matches = %+v", matches[0])
	}
	if matches[1].Page != 2 {
		t.Errorf("second page matches = %+v", matches[1])
	}
}

func TestSessionSearchPageSelection(t *testing.T) {
	matches, err := Open(fixtureEngine(), "fixture.pdf").Pages(2).Search("hello")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(matches) != 1 || matches[0].Page != 2 {
		t.Errorf("matches = %+v", matches)
	}
}

func TestSessionPageOutOfRange(t *testing.T) {
	_, err := Open(fixtureEngine(), "fixture.pdf").Pages(7).Search("hello")
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("expected out of range error, got %v", err)
	}
}

func TestSessionChainingDoesNotMutate(t *testing.T) {
	base := Open(fixtureEngine(), "fixture.pdf")
	restricted := base.Pages(2)

	if base.options.pages != nil {
		t.Error("base session mutated by Pages()")
	}
	if len(restricted.options.pages) != 1 {
		t.Errorf("restricted options = %+v", restricted.options)
	}
}

func TestSessionText(t *testing.T) {
	text, err := Open(fixtureEngine(), "fixture.pdf").Text()
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	want := "Hello World\nAnother hello"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestSessionTextInRegion(t *testing.T) {
	s := Open(fixtureEngine(), "fixture.pdf")

	text, err := s.TextInRegion(1, model.NewRect(0, 105, 60, 125))
	if err != nil {
		t.Fatalf("TextInRegion failed: %v", err)
	}
	if text != "World" {
		t.Errorf("text = %q, want %q", text, "World")
	}

	if _, err := s.TextInRegion(1, model.NewRect(500, 500, 600, 600)); !errors.Is(err, page.ErrNoText) {
		t.Errorf("expected ErrNoText, got %v", err)
	}

	if _, err := s.TextInRegion(9, model.NewRect(0, 0, 1, 1)); err == nil {
		t.Error("expected out of range error")
	}
}

func TestSessionInformation(t *testing.T) {
	entries, err := Open(fixtureEngine(), "fixture.pdf").Information()
	if err != nil {
		t.Fatalf("Information failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Type != model.InfoTitle {
		t.Errorf("entries = %+v", entries)
	}
}

func TestSessionOpenFailure(t *testing.T) {
	cause := errors.New("engine says no")
	_, err := Open(fakeEngine{err: cause}, "broken.pdf").Search("x")
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

func TestFromDocument(t *testing.T) {
	fake := fixtureEngine()
	doc, err := document.FromEngine(fake.doc)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	count, err := FromDocument(doc).PageCount()
	if err != nil {
		t.Fatalf("PageCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestSessionClose(t *testing.T) {
	fake := fixtureEngine()
	s := Open(fake, "fixture.pdf")

	if _, err := s.PageCount(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !fake.doc.closed {
		t.Error("document not closed")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Must(0, errors.New("boom"))
}
