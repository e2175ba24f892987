package lsp

import (
	"net/url"
	"sort"
	"strings"
	"sync"
)

// Document is an open timelang document.
type Document struct {
	URI     string
	Content string
	Version int
	lines   []int // byte offsets of line starts
}

func newDocument(uri, content string, version int) *Document {
	return &Document{
		URI:     uri,
		Content: content,
		Version: version,
		lines:   lineOffsets(content),
	}
}

// DocumentStore holds the documents the client has open.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]*Document
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{documents: make(map[string]*Document)}
}

// Open adds a document, replacing any earlier version.
func (s *DocumentStore) Open(uri, content string, version int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[uri] = newDocument(uri, content, version)
}

// Update replaces the content of an open document. It reports false when
// the document is not open.
func (s *DocumentStore) Update(uri, content string, version int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[uri]; !ok {
		return false
	}
	s.documents[uri] = newDocument(uri, content, version)
	return true
}

// Close drops a document.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, uri)
}

// Get returns the document for uri, or nil. Documents are replaced on
// update, so the returned value is safe to read without the lock.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents[uri]
}

// URIs returns the open document URIs, sorted.
func (s *DocumentStore) URIs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	uris := make([]string, 0, len(s.documents))
	for uri := range s.documents {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	return uris
}

func lineOffsets(content string) []int {
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// LineCount returns the number of lines, counting a trailing empty one.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the text of a zero-based line without its terminator.
func (d *Document) Line(n int) string {
	if n < 0 || n >= len(d.lines) {
		return ""
	}
	start := d.lines[n]
	end := len(d.Content)
	if n+1 < len(d.lines) {
		end = d.lines[n+1] - 1
	}
	return strings.TrimSuffix(d.Content[start:end], "\r")
}

// End returns the position just past the last character.
func (d *Document) End() Position {
	last := len(d.lines) - 1
	return Position{
		Line:      uint32(last),
		Character: uint32(len(d.Content) - d.lines[last]),
	}
}

// WordBefore returns the identifier characters immediately left of pos
// and the range they cover.
func (d *Document) WordBefore(pos Position) (string, Range) {
	line := d.Line(int(pos.Line))
	end := min(int(pos.Character), len(line))
	start := end
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	return line[start:end], Range{
		Start: Position{Line: pos.Line, Character: uint32(start)},
		End:   Position{Line: pos.Line, Character: uint32(end)},
	}
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '_'
}

// URIToPath converts a file:// URI to a file system path.
func URIToPath(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return uri
	}
	return u.Path
}
