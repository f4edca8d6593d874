// ABOUTME: Turns an alternation selector into a field value
// ABOUTME: Classifies text constructs by @type and cleans serialized xhtml fragments

package extract

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/harper/feedparse/internal/query"
	"github.com/harper/feedparse/internal/sanitize"
	"github.com/harper/feedparse/internal/timeutil"
)

// Resolve evaluates alt against p's context and returns the value for field.
// No match, or a match with empty text, yields "".
func Resolve(p *query.Path, field, alt string, opts Options) string {
	node := p.SelectAltNode(alt)
	if node == nil {
		return ""
	}

	raw := nodeValue(node, opts)
	if raw == "" {
		return ""
	}
	return filter(field, raw, opts)
}

// constructType reads the text-construct type of a matched element. Attribute
// and text matches are always plain text.
func constructType(node *xmlquery.Node) string {
	if node.Type != xmlquery.ElementNode {
		return "text"
	}
	if t := strings.TrimSpace(node.SelectAttr("type")); t != "" {
		return t
	}
	return "text"
}

func nodeValue(node *xmlquery.Node, opts Options) string {
	switch constructType(node) {
	case "text", "html":
		return strings.TrimSpace(node.InnerText())
	}

	child := firstElementChild(node)
	if child == nil {
		return strings.TrimSpace(node.InnerText())
	}
	return sanitize.XHTML(child.OutputXML(true), opts.sanitize())
}

func firstElementChild(n *xmlquery.Node) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}

// filter reformats date fields and passes every other field through.
func filter(field, value string, opts Options) string {
	if !timeutil.IsDateField(field) {
		return value
	}
	out, err := timeutil.Normalize(value, opts.DateTemplate)
	if err != nil {
		opts.logger().Warn("keeping unparseable date", "field", field, "value", value, "err", err)
	}
	return out
}
