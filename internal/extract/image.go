// ABOUTME: Picks a representative image out of item content
// ABOUTME: Best-effort scan for the first <img> tag, not a markup parser

package extract

import (
	"html"
	"regexp"

	"github.com/harper/feedparse/internal/models"
)

var (
	// Attribute names must follow whitespace so data-src and data-alt do not match.
	imgTag  = regexp.MustCompile(`(?is)<img\s(?:[^>]*?\s)?src\s*=\s*(?:"([^"]*)"|'([^']*)')[^>]*>`)
	altAttr = regexp.MustCompile(`(?is)\salt\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// SniffImage sets item.Image from the first <img> in item.Content. The alt
// text of that same tag becomes the title, falling back to the item title.
// Without an <img> the image is left untouched.
func SniffImage(item *models.FeedItem) {
	m := imgTag.FindStringSubmatch(item.Content)
	if m == nil {
		return
	}

	src := firstGroup(m[1:])
	if src == "" {
		return
	}

	title := item.Title
	if alt := altAttr.FindStringSubmatch(m[0]); alt != nil {
		title = html.UnescapeString(firstGroup(alt[1:]))
	}

	item.Image = models.Image{
		Src:   html.UnescapeString(src),
		Link:  item.Link,
		Title: title,
	}
}

func firstGroup(groups []string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}
	return ""
}
