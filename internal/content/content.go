// ABOUTME: Presentation helpers for normalized feed items
// ABOUTME: Detects HTML, converts it to Markdown, and lays out an item as a Markdown document

package content

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"

	"github.com/harper/feedparse/internal/models"
)

// htmlTagPattern matches common HTML tags
var htmlTagPattern = regexp.MustCompile(`<\s*(p|div|span|a|br|img|h[1-6]|ul|ol|li|table|tr|td|th|strong|em|b|i|code|pre|blockquote|figure)[^>]*>`)

// IsHTML checks if content appears to be HTML
func IsHTML(content string) bool {
	if strings.Contains(content, "<!DOCTYPE") || strings.Contains(content, "<html") {
		return true
	}
	return htmlTagPattern.MatchString(content)
}

// ToMarkdown converts HTML content to Markdown. Relative links and image
// sources resolve against base when it is an absolute URL. Content that
// doesn't look like HTML is returned unchanged.
func ToMarkdown(content, base string) string {
	if content == "" || !IsHTML(content) {
		return content
	}

	var opts []converter.ConvertOptionFunc
	if isAbsolute(base) {
		opts = append(opts, converter.WithDomain(base))
	}

	markdown, err := htmltomarkdown.ConvertString(content, opts...)
	if err != nil {
		return content
	}
	return strings.TrimSpace(markdown)
}

// ItemMarkdown renders item as a Markdown document: a title heading, a
// metadata block, the content, and the enclosure when there is one.
func ItemMarkdown(item *models.FeedItem) string {
	var b strings.Builder

	title := item.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	meta := []struct{ label, value string }{
		{"Link", item.Link},
		{"Author", item.Author},
		{"Published", item.CreatedAt},
		{"Updated", item.LastUpdated},
		{"Category", item.Category},
		{"Source", item.Source},
	}
	wroteMeta := false
	for _, m := range meta {
		if m.value == "" {
			continue
		}
		fmt.Fprintf(&b, "- **%s:** %s\n", m.label, m.value)
		wroteMeta = true
	}
	if wroteMeta {
		b.WriteString("\n")
	}

	if body := ToMarkdown(item.Content, item.Link); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}

	if item.Enclosure.URL != "" {
		fmt.Fprintf(&b, "\n---\n\nAttachment: [%s](%s)", enclosureLabel(item.Enclosure), item.Enclosure.URL)
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

func enclosureLabel(e models.Enclosure) string {
	label := e.Type
	if label == "" {
		label = "file"
	}
	if e.Length != "" {
		label += ", " + e.Length + " bytes"
	}
	return label
}

func isAbsolute(link string) bool {
	u, err := url.Parse(link)
	return err == nil && u.Scheme != "" && u.Host != ""
}
