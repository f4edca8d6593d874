// ABOUTME: Read-only XML document tree consumed by the extraction engine
// ABOUTME: Wraps xmlquery parsing and reports malformed input as a list of messages

package xmldoc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
)

// ErrMalformed is matched by every MalformedError.
var ErrMalformed = errors.New("malformed XML document")

// MalformedError carries the parser messages for a document that failed to load.
type MalformedError struct {
	Errors []string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed XML document: %s", strings.Join(e.Errors, "; "))
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// Document is a parsed XML tree. It is never mutated after Parse, so it can
// be read from several goroutines at once.
type Document struct {
	node *xmlquery.Node
	root *xmlquery.Node
}

// Parse builds a Document from raw bytes.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, &MalformedError{Errors: []string{"document is empty"}}
	}

	node, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &MalformedError{Errors: []string{err.Error()}}
	}

	root := firstElement(node)
	if root == nil {
		return nil, &MalformedError{Errors: []string{"document has no root element"}}
	}

	return &Document{node: node, root: root}, nil
}

// ParseString is Parse for string input.
func ParseString(s string) (*Document, error) {
	return Parse([]byte(s))
}

// LoadFile reads and parses the file at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Root returns the document element.
func (d *Document) Root() *xmlquery.Node {
	return d.root
}

// RootName returns the local name of the document element, e.g. "RDF" for <rdf:RDF>.
func (d *Document) RootName() string {
	return d.root.Data
}

func firstElement(n *xmlquery.Node) *xmlquery.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return child
		}
	}
	return nil
}
