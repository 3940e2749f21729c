package verso

import (
	"fmt"
	"strings"

	"github.com/tsawler/verso/document"
	"github.com/tsawler/verso/engine"
	"github.com/tsawler/verso/model"
	"github.com/tsawler/verso/page"
)

// PageMatches holds the search hits found on one page. Page is
// 1-indexed to match the Pages option; Rects are in page coordinates,
// one per occurrence, in reading order.
type PageMatches struct {
	Page  int
	Rects []model.Rect
}

// Session provides a fluent interface over an open document. Each
// configuration method returns a new Session instance, making it safe
// for concurrent use and allowing method chaining.
type Session struct {
	// Source
	eng      engine.Engine
	filename string

	// Lifecycle
	doc     *document.Document
	ownsDoc bool
	opened  bool

	// Configuration
	options SessionOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Session with a deep copy of
// options. This ensures immutability - each chain method returns a
// new instance.
func (s *Session) clone() *Session {
	return &Session{
		eng:      s.eng,
		filename: s.filename,
		doc:      s.doc,
		ownsDoc:  s.ownsDoc,
		opened:   s.opened,
		options:  s.options.clone(),
		err:      s.err,
	}
}

// ensureDocument opens the document if not already open.
func (s *Session) ensureDocument() error {
	if s.opened {
		return nil
	}

	doc, err := document.Open(s.eng, s.filename)
	if err != nil {
		return err
	}
	if s.options.recognizer != nil {
		doc.SetRecognizer(s.options.recognizer)
	}

	s.doc = doc
	s.ownsDoc = true
	s.opened = true
	return nil
}

// Close releases resources associated with the Session. It is safe
// to call Close multiple times.
func (s *Session) Close() error {
	if s.ownsDoc && s.doc != nil {
		err := s.doc.Close()
		s.doc = nil
		s.ownsDoc = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Session instance)
// ============================================================================

// Pages restricts terminal operations to the given pages (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	matches, err := verso.Open(eng, "doc.pdf").Pages(1, 3, 5).Search("total")
func (s *Session) Pages(pages ...int) *Session {
	newSess := s.clone()
	newSess.options.pages = append(newSess.options.pages, pages...)
	return newSess
}

// PageRange restricts terminal operations to a range of pages
// (1-indexed, inclusive).
//
// Example:
//
//	matches, err := verso.Open(eng, "doc.pdf").PageRange(5, 10).Search("total")
func (s *Session) PageRange(start, end int) *Session {
	newSess := s.clone()
	for i := start; i <= end; i++ {
		newSess.options.pages = append(newSess.options.pages, i)
	}
	return newSess
}

// OCRFallback installs a recognizer used on pages whose layout pass
// yields no text, typically scanned documents. Build with the ocr tag
// and pass an ocr.Client to enable Tesseract.
//
// Example:
//
//	client, err := ocr.New()
//	matches, err := verso.Open(eng, "scan.pdf").OCRFallback(client).Search("total")
func (s *Session) OCRFallback(r page.Recognizer) *Session {
	newSess := s.clone()
	newSess.options.recognizer = r
	return newSess
}

// ============================================================================
// Terminal Operations
// ============================================================================

// selectedPages resolves the configured page selection to 0-indexed
// page positions, defaulting to every page.
func (s *Session) selectedPages() ([]int, error) {
	count := s.doc.PageCount()

	if s.options.pages == nil {
		all := make([]int, count)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	selected := make([]int, 0, len(s.options.pages))
	for _, n := range s.options.pages {
		if n < 1 || n > count {
			return nil, fmt.Errorf("page %d out of range (document has %d pages)", n, count)
		}
		selected = append(selected, n-1)
	}
	return selected, nil
}

// Search finds every occurrence of query on the selected pages. Pages
// with no hits are omitted from the result.
func (s *Session) Search(query string) ([]PageMatches, error) {
	if s.err != nil {
		return nil, s.err
	}
	if err := s.ensureDocument(); err != nil {
		return nil, err
	}

	indices, err := s.selectedPages()
	if err != nil {
		return nil, err
	}

	var results []PageMatches
	for _, i := range indices {
		p, err := s.doc.Page(i)
		if err != nil {
			return nil, err
		}

		rects, err := p.SearchText(query)
		if err != nil {
			return nil, err
		}
		if len(rects) == 0 {
			continue
		}

		results = append(results, PageMatches{Page: i + 1, Rects: rects})
	}

	return results, nil
}

// Text returns the reading-order text of the selected pages, one line
// per page.
func (s *Session) Text() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if err := s.ensureDocument(); err != nil {
		return "", err
	}

	indices, err := s.selectedPages()
	if err != nil {
		return "", err
	}

	var pages []string
	for _, i := range indices {
		p, err := s.doc.Page(i)
		if err != nil {
			return "", err
		}

		text, err := p.Text()
		if err != nil {
			return "", err
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

// TextInRegion returns the text inside a page-space rectangle on one
// page (1-indexed). It returns page.ErrNoText when nothing intersects
// the region.
func (s *Session) TextInRegion(pageNum int, region model.Rect) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if err := s.ensureDocument(); err != nil {
		return "", err
	}

	if pageNum < 1 || pageNum > s.doc.PageCount() {
		return "", fmt.Errorf("page %d out of range (document has %d pages)", pageNum, s.doc.PageCount())
	}

	p, err := s.doc.Page(pageNum - 1)
	if err != nil {
		return "", err
	}

	return p.TextInRegion(region)
}

// Index returns the document outline.
func (s *Session) Index() ([]*model.IndexEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	if err := s.ensureDocument(); err != nil {
		return nil, err
	}
	return s.doc.Index()
}

// Information returns the document metadata entries.
func (s *Session) Information() ([]model.InfoEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	if err := s.ensureDocument(); err != nil {
		return nil, err
	}
	return s.doc.Information()
}

// PageCount returns the number of pages in the document.
func (s *Session) PageCount() (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if err := s.ensureDocument(); err != nil {
		return 0, err
	}
	return s.doc.PageCount(), nil
}

// Document exposes the underlying document for callers that need the
// lower-level page API. The session keeps ownership.
func (s *Session) Document() (*document.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	if err := s.ensureDocument(); err != nil {
		return nil, err
	}
	return s.doc, nil
}
