package verso

import "github.com/tsawler/verso/page"

// SessionOptions holds configuration for a search session.
type SessionOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// OCR fallback for pages without extractable text
	recognizer page.Recognizer
}

// defaultOptions returns the default session options.
func defaultOptions() SessionOptions {
	return SessionOptions{
		pages:      nil, // nil means all pages
		recognizer: nil,
	}
}

// clone creates a deep copy of SessionOptions.
func (o SessionOptions) clone() SessionOptions {
	newOpts := SessionOptions{
		recognizer: o.recognizer,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
