// Package document manages an open document: page loading and
// caching, the outline index, and document metadata.
package document

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tsawler/verso/engine"
	"github.com/tsawler/verso/model"
	"github.com/tsawler/verso/page"
)

// ErrInvalidArgument is returned for nil or malformed inputs.
var ErrInvalidArgument = errors.New("invalid argument")

// Document is an open document. Pages are loaded lazily and cached,
// so the per-page text extraction cost is paid at most once however
// many searches run against the document.
type Document struct {
	src       engine.Document
	pageCount int

	recognizer page.Recognizer

	mu    sync.Mutex
	pages map[int]*page.Page
}

// Open opens the document at path using the given engine.
func Open(eng engine.Engine, path string) (*Document, error) {
	if eng == nil {
		return nil, fmt.Errorf("document: %w: nil engine", ErrInvalidArgument)
	}
	if path == "" {
		return nil, fmt.Errorf("document: %w: empty path", ErrInvalidArgument)
	}

	src, err := eng.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}

	return FromEngine(src)
}

// FromEngine wraps an already-open engine document. The caller hands
// over ownership; Close closes the engine document.
func FromEngine(src engine.Document) (*Document, error) {
	if src == nil {
		return nil, fmt.Errorf("document: %w: nil engine document", ErrInvalidArgument)
	}

	return &Document{
		src:       src,
		pageCount: src.PageCount(),
		pages:     make(map[int]*page.Page),
	}, nil
}

// SetRecognizer installs an OCR fallback handed to every page loaded
// after the call.
func (d *Document) SetRecognizer(r page.Recognizer) {
	d.recognizer = r
}

// PageCount returns the number of pages
func (d *Document) PageCount() int {
	return d.pageCount
}

// Page returns the page at the given 0-indexed position, loading it
// on first use.
func (d *Document) Page(index int) (*page.Page, error) {
	if index < 0 || index >= d.pageCount {
		return nil, fmt.Errorf("document: %w: page index %d of %d", ErrInvalidArgument, index, d.pageCount)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pages[index]; ok {
		return p, nil
	}

	src, err := d.src.Page(index)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %d: %w", index, err)
	}

	p, err := page.New(src, index)
	if err != nil {
		return nil, err
	}
	if d.recognizer != nil {
		p.SetRecognizer(d.recognizer)
	}

	d.pages[index] = p
	return p, nil
}

// Index returns the document outline as a tree of index entries, or
// an empty slice when the document has none. Outline items pointing
// at unsupported targets are skipped along with their children.
func (d *Document) Index() ([]*model.IndexEntry, error) {
	items, err := d.src.Outline()
	if err != nil {
		return nil, fmt.Errorf("failed to load outline: %w", err)
	}

	return buildIndex(items), nil
}

func buildIndex(items []*engine.OutlineItem) []*model.IndexEntry {
	entries := make([]*model.IndexEntry, 0, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}

		entry := &model.IndexEntry{Title: item.Title}

		switch item.Kind {
		case engine.LinkURI:
			entry.Link = model.Link{Kind: model.LinkKindURI, URI: item.URI}
		case engine.LinkGoto:
			entry.Link = model.Link{Kind: model.LinkKindGoto, PageNumber: item.DestPage}
		default:
			continue
		}

		entry.Children = buildIndex(item.Children)
		entries = append(entries, entry)
	}

	return entries
}

// infoTypes maps information dictionary keys to their typed
// classification; anything else is InfoOther.
var infoTypes = map[string]model.InfoType{
	"Author":       model.InfoAuthor,
	"Title":        model.InfoTitle,
	"Subject":      model.InfoSubject,
	"Creator":      model.InfoCreator,
	"Producer":     model.InfoProducer,
	"CreationDate": model.InfoCreationDate,
	"ModDate":      model.InfoModificationDate,
}

// Information returns the document's metadata entries. Only string
// values are reported; entries appear in sorted key order.
func (d *Document) Information() ([]model.InfoEntry, error) {
	info, err := d.src.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to load document information: %w", err)
	}

	entries := make([]model.InfoEntry, 0, len(info))
	for _, key := range info.Keys() {
		value, ok := info.GetString(key)
		if !ok {
			continue
		}

		entries = append(entries, model.InfoEntry{
			Type:  infoTypes[key],
			Key:   key,
			Value: string(value),
		})
	}

	return entries, nil
}

// Close releases the underlying engine document. The document must
// not be used afterwards.
func (d *Document) Close() error {
	return d.src.Close()
}
