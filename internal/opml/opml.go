// ABOUTME: OPML subscription lists read through the XPath engine and written with encoding/xml
// ABOUTME: Flattens nested folders into subscriptions and writes them back grouped by folder

package opml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/feedparse/internal/query"
	"github.com/harper/feedparse/internal/xmldoc"
)

// ErrNotOPML is returned for well-formed documents whose root is not <opml>.
var ErrNotOPML = errors.New("not an OPML document")

// Subscription is one feed outline with the folder it sits in.
type Subscription struct {
	URL    string
	Title  string
	Folder string
	// Type is the outline type attribute, e.g. "rss" or "atom".
	Type string
}

// Document is a parsed subscription list.
type Document struct {
	Title         string
	Subscriptions []Subscription
}

// Parse reads an OPML document. Outlines without an xmlUrl are folders; a
// feed takes the text of its parent folder.
func Parse(data []byte) (*Document, error) {
	doc, err := xmldoc.Parse(data)
	if err != nil {
		return nil, err
	}
	return fromDocument(doc)
}

// ParseFile reads an OPML document from path.
func ParseFile(path string) (*Document, error) {
	doc, err := xmldoc.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return fromDocument(doc)
}

func fromDocument(doc *xmldoc.Document) (*Document, error) {
	if !strings.EqualFold(doc.RootName(), "opml") {
		return nil, fmt.Errorf("%w: root element %q", ErrNotOPML, doc.RootName())
	}

	p := query.New(doc)
	out := &Document{}
	if title := p.SelectNode("head/title"); title != nil {
		out.Title = strings.TrimSpace(title.InnerText())
	}

	// The descendant axis keeps document order; "//" does not.
	for _, node := range p.SelectNodes("descendant::outline[@xmlUrl]") {
		sub := Subscription{
			URL:   strings.TrimSpace(node.SelectAttr("xmlUrl")),
			Title: node.SelectAttr("title"),
			Type:  node.SelectAttr("type"),
		}
		if sub.Title == "" {
			sub.Title = node.SelectAttr("text")
		}
		if folder := p.At(node).SelectNode("parent::outline[not(@xmlUrl)]/@text"); folder != nil {
			sub.Folder = folder.InnerText()
		}
		if sub.URL != "" {
			out.Subscriptions = append(out.Subscriptions, sub)
		}
	}
	return out, nil
}

// Folders returns folder names in first-seen order, without the root level.
func (d *Document) Folders() []string {
	seen := make(map[string]bool)
	var folders []string
	for _, s := range d.Subscriptions {
		if s.Folder != "" && !seen[s.Folder] {
			seen[s.Folder] = true
			folders = append(folders, s.Folder)
		}
	}
	return folders
}

// XML structs for writing OPML files
type opmlXML struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    headXML  `xml:"head"`
	Body    bodyXML  `xml:"body"`
}

type headXML struct {
	Title string `xml:"title"`
}

type bodyXML struct {
	Outlines []outlineXML `xml:"outline"`
}

type outlineXML struct {
	Text     string       `xml:"text,attr"`
	Title    string       `xml:"title,attr,omitempty"`
	Type     string       `xml:"type,attr,omitempty"`
	XMLURL   string       `xml:"xmlUrl,attr,omitempty"`
	Children []outlineXML `xml:"outline,omitempty"`
}

// Write serializes the document as OPML 2.0. Root-level feeds come first,
// then one outline per folder.
func (d *Document) Write(w io.Writer) error {
	out := opmlXML{
		Version: "2.0",
		Head:    headXML{Title: d.Title},
	}

	byFolder := make(map[string][]outlineXML)
	for _, s := range d.Subscriptions {
		if s.Folder == "" {
			out.Body.Outlines = append(out.Body.Outlines, feedOutline(s))
			continue
		}
		byFolder[s.Folder] = append(byFolder[s.Folder], feedOutline(s))
	}
	for _, folder := range d.Folders() {
		out.Body.Outlines = append(out.Body.Outlines, outlineXML{
			Text:     folder,
			Title:    folder,
			Children: byFolder[folder],
		})
	}

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode OPML: %w", err)
	}
	return nil
}

// WriteFile writes the document to path, creating parent directories.
func (d *Document) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return d.Write(file)
}

func feedOutline(s Subscription) outlineXML {
	text := s.Title
	if text == "" {
		text = s.URL
	}
	return outlineXML{
		Text:   text,
		Title:  s.Title,
		Type:   s.Type,
		XMLURL: s.URL,
	}
}
