package model

// LinkKind identifies what a link points at
type LinkKind int

const (
	LinkKindNone LinkKind = iota
	LinkKindURI
	LinkKindGoto
)

func (k LinkKind) String() string {
	switch k {
	case LinkKindURI:
		return "URI"
	case LinkKindGoto:
		return "Goto"
	default:
		return "None"
	}
}

// Link is a clickable region on a page, in page coordinates.
// For LinkKindURI the target is URI; for LinkKindGoto it is PageNumber
// (0-indexed).
type Link struct {
	Rect       Rect
	Kind       LinkKind
	URI        string
	PageNumber int
}

// IndexEntry is one node of a document's outline (table of contents).
type IndexEntry struct {
	Title    string
	Link     Link
	Children []*IndexEntry
}

// InfoType classifies a document metadata entry
type InfoType int

const (
	InfoOther InfoType = iota
	InfoAuthor
	InfoTitle
	InfoSubject
	InfoCreator
	InfoProducer
	InfoCreationDate
	InfoModificationDate
)

func (t InfoType) String() string {
	switch t {
	case InfoAuthor:
		return "Author"
	case InfoTitle:
		return "Title"
	case InfoSubject:
		return "Subject"
	case InfoCreator:
		return "Creator"
	case InfoProducer:
		return "Producer"
	case InfoCreationDate:
		return "CreationDate"
	case InfoModificationDate:
		return "ModDate"
	default:
		return "Other"
	}
}

// InfoEntry is a single document metadata entry. Key holds the raw
// dictionary key, which matters for InfoOther entries.
type InfoEntry struct {
	Type  InfoType
	Key   string
	Value string
}
