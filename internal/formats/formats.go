// ABOUTME: Declarative selector tables describing where each record field lives per dialect
// ABOUTME: Maps a document's root element name to the dialect that knows how to read it

package formats

import (
	"strings"

	"github.com/harper/feedparse/internal/models"
)

// SubField is one member of a grouped field such as image.src.
type SubField struct {
	Name     string
	Selector string
}

// Field binds a record field to either a scalar alternation selector or a
// group of sub-selectors. Exactly one of Selector and Group is set.
type Field struct {
	Name     string
	Selector string
	Group    []SubField
}

// IsGroup reports whether the field fans out into sub-fields.
func (f Field) IsGroup() bool {
	return len(f.Group) > 0
}

// Scalar builds a single-selector field.
func Scalar(name, selector string) Field {
	return Field{Name: name, Selector: selector}
}

// Group builds a grouped field from name/selector pairs.
func Group(name string, subs ...SubField) Field {
	return Field{Name: name, Group: subs}
}

// Sub is shorthand for a SubField literal.
func Sub(name, selector string) SubField {
	return SubField{Name: name, Selector: selector}
}

// Table is an ordered list of fields; resolution follows this order.
type Table []Field

// Dialect is everything the builder needs to read one syndication format.
type Dialect struct {
	Name       string
	FeedType   models.FeedType
	Namespaces map[string]string
	Feed       Table
	Items      string
	Item       Table
}

// ItemType is the tag given to every item of this dialect.
func (d Dialect) ItemType() models.ItemType {
	return d.FeedType.ItemType()
}

// Dialects returns every supported dialect.
func Dialects() []Dialect {
	return []Dialect{RSS, ATOM, RDF}
}

// Lookup picks the dialect for a root element local name, ignoring case:
// feed is ATOM, rss is RSS and RDF is RDF.
func Lookup(root string) (Dialect, bool) {
	switch strings.ToLower(root) {
	case "feed":
		return ATOM, true
	case "rss":
		return RSS, true
	case "rdf":
		return RDF, true
	}
	return Dialect{}, false
}

// Namespace URIs shared by the tables.
const (
	NSAtom     = "http://www.w3.org/2005/Atom"
	NSXML      = "http://www.w3.org/XML/1998/namespace"
	NSRSS1     = "http://purl.org/rss/1.0/"
	NSRDF      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSDC       = "http://purl.org/dc/elements/1.1/"
	NSSy       = "http://purl.org/rss/1.0/modules/syndication"
	NSEnc      = "http://purl.oclc.org/net/rss_2.0/enc#"
	NSContent  = "http://purl.org/rss/1.0/modules/content/"
	NSTaxonomy = "http://purl.org/rss/1.0/modules/taxonomy/"
)

// rssFamily is registered for both RSS 2.0 and RDF documents.
func rssFamily() map[string]string {
	return map[string]string{
		"def":     NSRSS1,
		"rdf":     NSRDF,
		"dc":      NSDC,
		"sy":      NSSy,
		"enc":     NSEnc,
		"content": NSContent,
		"taxo":    NSTaxonomy,
	}
}
