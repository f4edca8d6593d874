// ABOUTME: Best-effort cleanup of serialized XHTML text constructs
// ABOUTME: Strips wrapper divs, namespace prefixes, style and script constructs; not a security boundary

package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Options toggles the optional removal passes.
type Options struct {
	RemoveStyles  bool
	RemoveScripts bool
}

var (
	wrapperOpen  = regexp.MustCompile(`^<([-\w]+:)?div\b[^>]*>`)
	wrapperClose = regexp.MustCompile(`<\s*/([-\w]+:)?div\s*>$`)

	openPrefix  = regexp.MustCompile(`<[-\w]+:`)
	closePrefix = regexp.MustCompile(`</[-\w]+:`)

	styleAttr    = regexp.MustCompile(`(?i)(<[^>]+)\s+style=("[^"]*"|'[^']*')`)
	styleElement = regexp.MustCompile(`(?i)<style\b[^>]*>[^<]*</style\s*>`)

	handlerAttr   = regexp.MustCompile(`(?i)(<[^>]+)\s+on[a-z]+=("[^"]*"|'[^']*')`)
	scriptElement = regexp.MustCompile(`(?i)<script\b[^>]*>[^<]*</script\s*>`)

	spaces = regexp.MustCompile(`\s+`)
)

// XHTML cleans the serialized first child of an xhtml text construct.
func XHTML(serialized string, opts Options) string {
	out := strings.TrimSpace(serialized)
	out = StripWrapper(out)
	out = StripPrefixes(out)
	if opts.RemoveStyles {
		out = RemoveStyles(out)
	}
	if opts.RemoveScripts {
		out = RemoveScripts(out)
	}
	return strings.TrimSpace(out)
}

// StripWrapper removes a leading div start tag and a trailing div end tag,
// prefixed or not.
func StripWrapper(s string) string {
	s = wrapperOpen.ReplaceAllString(s, "")
	return wrapperClose.ReplaceAllString(s, "")
}

// StripPrefixes turns <ns:tag into <tag and </ns:tag into </tag. The pass is
// textual, so matching text inside CDATA sections is rewritten too.
func StripPrefixes(s string) string {
	s = closePrefix.ReplaceAllString(s, "</")
	return openPrefix.ReplaceAllString(s, "<")
}

// RemoveStyles drops style attributes and single-line <style> elements.
func RemoveStyles(s string) string {
	return untilStable(s, func(s string) string {
		s = styleAttr.ReplaceAllString(s, "$1")
		return styleElement.ReplaceAllString(s, "")
	})
}

// RemoveScripts drops on* handler attributes and single-line <script> elements.
func RemoveScripts(s string) string {
	return untilStable(s, func(s string) string {
		s = handlerAttr.ReplaceAllString(s, "$1")
		return scriptElement.ReplaceAllString(s, "")
	})
}

// TextOnly strips every tag from markup and returns the readable text with
// entities decoded and whitespace collapsed.
func TextOnly(markup string) string {
	if markup == "" {
		return ""
	}
	stripped := bluemonday.StrictPolicy().Sanitize(markup)
	stripped = html.UnescapeString(stripped)
	return strings.TrimSpace(spaces.ReplaceAllString(stripped, " "))
}

// untilStable reapplies fn until the output stops changing. A tag with two
// style attributes needs two passes because regexp matches never overlap.
func untilStable(s string, fn func(string) string) string {
	for {
		next := fn(s)
		if next == s {
			return s
		}
		s = next
	}
}
