// Package page exposes the per-page operations a viewer needs: text
// search with match rectangles, windowed text extraction, links,
// embedded images and rendering.
//
// A Page extracts its text spans from the engine at most once, on
// first use, and caches the resulting store for every later search or
// extraction. The cached store is immutable, so concurrent reads are
// safe; the extraction itself is guarded so it runs exactly once.
package page

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"

	"github.com/tsawler/verso/engine"
	"github.com/tsawler/verso/images"
	"github.com/tsawler/verso/model"
	"github.com/tsawler/verso/render"
	"github.com/tsawler/verso/search"
	"github.com/tsawler/verso/spans"
)

var (
	// ErrInvalidArgument is returned for nil or malformed inputs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoText is returned by TextInRegion when no character
	// intersects the region. It distinguishes "nothing there" from a
	// successful empty extraction.
	ErrNoText = errors.New("no text in region")
)

// Recognizer recovers text from a rendered page image. ocr.Client
// implements it when the module is built with the ocr tag.
type Recognizer interface {
	RecognizeImage(imageData []byte) (string, error)
}

// Page is one page of an open document. The zero value is not usable;
// construct with New.
type Page struct {
	number int
	width  float64
	height float64
	src    engine.Page

	recognizer Recognizer

	// Text extraction runs at most once; both outcome fields are
	// written under once and only read afterwards.
	once       sync.Once
	store      *spans.Store
	extractErr error
}

// New wraps an engine page. number is the 0-indexed page position.
func New(src engine.Page, number int) (*Page, error) {
	if src == nil {
		return nil, fmt.Errorf("page: %w: nil engine page", ErrInvalidArgument)
	}

	width, height := src.Size()

	return &Page{
		number: number,
		width:  width,
		height: height,
		src:    src,
	}, nil
}

// SetRecognizer installs an OCR fallback used when the layout pass
// yields no text. It must be called before the first text operation;
// later calls have no effect on the cached text.
func (p *Page) SetRecognizer(r Recognizer) {
	p.recognizer = r
}

// Number returns the 0-indexed page position
func (p *Page) Number() int {
	return p.number
}

// Width returns the page width in device units
func (p *Page) Width() float64 {
	return p.width
}

// Height returns the page height in device units
func (p *Page) Height() float64 {
	return p.height
}

// text returns the page's span store, extracting it on first use.
// An extraction failure is cached and reported by every subsequent
// call; it never degrades into an empty-but-successful store.
func (p *Page) text() (*spans.Store, error) {
	p.once.Do(func() {
		sp, err := p.src.ExtractSpans()
		if err != nil {
			p.extractErr = fmt.Errorf("text extraction failed: %w", err)
			return
		}

		if len(sp) == 0 && p.recognizer != nil {
			sp = p.recognizedSpans()
		}

		p.store = spans.NewStore(sp)
	})

	if p.extractErr != nil {
		return nil, p.extractErr
	}
	return p.store, nil
}

// recognizedSpans renders the page and runs the OCR fallback over it.
// OCR is best-effort: any failure yields no spans rather than failing
// the page, since the layout pass itself succeeded.
func (p *Page) recognizedSpans() []spans.Span {
	px, err := p.src.Render(1, 1)
	if err != nil {
		return nil
	}

	img, err := render.ToRGBA(px)
	if err != nil {
		return nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}

	text, err := p.recognizer.RecognizeImage(buf.Bytes())
	if err != nil || text == "" {
		return nil
	}

	// Recognized text has no per-glyph geometry; each line becomes
	// one span of unpositioned characters so search still works.
	lines := strings.Split(text, "\n")
	result := make([]spans.Span, 0, len(lines))
	for _, line := range lines {
		chars := make([]spans.Char, 0, len(line))
		for _, r := range line {
			chars = append(chars, spans.Char{Rune: r})
		}
		result = append(result, spans.Span{Chars: chars, EOL: true})
	}

	return result
}

// SearchText finds every case-insensitive occurrence of query in the
// page's text and returns one bounding rectangle per occurrence, in
// page coordinates and reading order. Overlapping occurrences are all
// reported. An empty query is an invalid argument.
func (p *Page) SearchText(query string) ([]model.Rect, error) {
	if query == "" {
		return nil, fmt.Errorf("search: %w: empty query", ErrInvalidArgument)
	}

	store, err := p.text()
	if err != nil {
		return nil, err
	}

	return search.Search(store, query, p.height)
}

// TextInRegion returns the text of every character whose box, flipped
// into page coordinates, falls within region. Control characters are
// substituted with '?'. A line-ending span that contributed at least
// one character emits a newline after its contribution. When nothing
// intersects, ErrNoText is returned.
func (p *Page) TextInRegion(region model.Rect) (string, error) {
	store, err := p.text()
	if err != nil {
		return "", err
	}

	var b strings.Builder

	for _, span := range store.Spans() {
		seen := false

		for _, ch := range span.Chars {
			c := ch.Rune
			if c < 0x20 {
				c = '?'
			}

			box := ch.BBox
			if box.X2 >= region.X1 && box.X1 <= region.X2 &&
				(p.height-box.Y2) >= region.Y1 &&
				(p.height-box.Y1) <= region.Y2 {
				b.WriteRune(c)
				seen = true
			}
		}

		if seen && span.EOL {
			b.WriteRune('\n')
		}
	}

	if b.Len() == 0 {
		return "", ErrNoText
	}
	return b.String(), nil
}

// Text returns the page's full reading-order text with line breaks
// rendered as single spaces.
func (p *Page) Text() (string, error) {
	store, err := p.text()
	if err != nil {
		return "", err
	}
	return store.Text(), nil
}

// Links returns the page's links with their rectangles flipped into
// page coordinates. Links of unsupported kinds are skipped.
func (p *Page) Links() ([]model.Link, error) {
	raw, err := p.src.Links()
	if err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}

	links := make([]model.Link, 0, len(raw))
	for _, l := range raw {
		link := model.Link{
			Rect: model.Rect{
				X1: l.X1,
				Y1: p.height - l.Y2,
				X2: l.X2,
				Y2: p.height - l.Y1,
			},
		}

		switch l.Kind {
		case engine.LinkURI:
			link.Kind = model.LinkKindURI
			link.URI = l.URI
		case engine.LinkGoto:
			link.Kind = model.LinkKindGoto
			link.PageNumber = l.DestPage
		default:
			continue
		}

		links = append(links, link)
	}

	return links, nil
}

// Images lists the images embedded in the page's resources.
func (p *Page) Images() ([]images.Image, error) {
	resources, err := p.src.Resources()
	if err != nil {
		return nil, fmt.Errorf("failed to read resources: %w", err)
	}
	return images.Collect(resources), nil
}

// Render rasterizes the page at the given scale and returns it as an
// RGBA image with the bottom row of the rendering at the top.
func (p *Page) Render(scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("render: %w: scale %f", ErrInvalidArgument, scale)
	}

	px, err := p.src.Render(scale, scale)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}

	return render.ToRGBA(px)
}

// RenderTo rasterizes the page into exactly width x height pixels,
// scaling each axis independently.
func (p *Page) RenderTo(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || p.width == 0 || p.height == 0 {
		return nil, fmt.Errorf("render: %w: target %dx%d", ErrInvalidArgument, width, height)
	}

	px, err := p.src.Render(float64(width)/p.width, float64(height)/p.height)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}

	return render.ToRGBA(px)
}

// Thumbnail renders the page and scales it so its longer side is
// maxDim pixels.
func (p *Page) Thumbnail(maxDim int) (*image.RGBA, error) {
	img, err := p.Render(1)
	if err != nil {
		return nil, err
	}
	return render.Thumbnail(img, maxDim)
}
