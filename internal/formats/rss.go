// ABOUTME: Selector tables for RSS 2.0 documents
// ABOUTME: Feed selectors are relative to <rss>, item selectors to each <item>

package formats

import "github.com/harper/feedparse/internal/models"

// RSS reads RSS 0.9x and 2.0 documents.
var RSS = Dialect{
	Name:       "rss",
	FeedType:   models.FeedTypeRSS,
	Namespaces: rssFamily(),
	Feed: Table{
		Scalar("id", "channel/title"),
		Scalar("title", "channel/title"),
		Scalar("link", "channel/link"),
		Scalar("description", "channel/description"),
		Group("image",
			Sub("src", "channel/image/url"),
			Sub("link", "channel/image/link"),
			Sub("title", "channel/image/title"),
		),
		Scalar("copyright", "channel/copyright"),
		Scalar("lastUpdated", "channel/lastBuildDate || channel/pubDate"),
		Scalar("generator", "channel/generator"),
		Scalar("language", "channel/language"),
		Scalar("category", "channel/category"),
	},
	Items: "channel/item",
	Item: Table{
		Scalar("id", "guid"),
		Scalar("title", "title"),
		Scalar("link", "link"),
		Scalar("content", "content:encoded || description"),
		Scalar("source", "source"),
		Group("enclosure",
			Sub("type", "enclosure/@type"),
			Sub("url", "enclosure/@url"),
			Sub("length", "enclosure/@length"),
		),
		Scalar("createdAt", "pubDate"),
		Scalar("lastUpdated", "pubDate"),
		Scalar("author", "author || dc:creator"),
		Scalar("category", "category"),
	},
}
