// ABOUTME: Selector tables for ATOM 1.0 documents
// ABOUTME: Entries fall back to their atom:source block and then to feed-level values

package formats

import "github.com/harper/feedparse/internal/models"

const atomFeedLink = `atom:link[@rel="alternate"]/@href || atom:link/@href`

// ATOM reads ATOM 1.0 documents.
var ATOM = Dialect{
	Name:     "atom",
	FeedType: models.FeedTypeATOM,
	Namespaces: map[string]string{
		"atom": NSAtom,
		"xml":  NSXML,
	},
	Feed: Table{
		Scalar("id", "atom:id"),
		Scalar("title", "atom:title"),
		Scalar("link", atomFeedLink),
		Scalar("description", "atom:subtitle"),
		Group("image",
			Sub("src", "atom:logo || atom:icon"),
			Sub("link", atomFeedLink),
			Sub("title", "atom:title"),
		),
		Scalar("copyright", "atom:rights"),
		Scalar("lastUpdated", "atom:updated"),
		Scalar("generator", "atom:generator"),
		Scalar("language", `@xml:lang || @*[local-name()="lang"]`),
		Scalar("category", "atom:category/@term || atom:category"),
	},
	Items: "atom:entry",
	Item: Table{
		Scalar("id", "atom:id || atom:source/atom:id"),
		Scalar("title", "atom:title || atom:source/atom:title"),
		Scalar("link", `atom:link[@rel="alternate"]/@href || atom:source/atom:link[@rel="alternate"]/@href || atom:link/@href || atom:source/atom:link/@href`),
		Scalar("content", "atom:content || atom:source/atom:content || atom:summary || atom:source/atom:summary"),
		Group("enclosure",
			Sub("type", `atom:link[@rel="enclosure"]/@type`),
			Sub("url", `atom:link[@rel="enclosure"]/@href`),
			Sub("length", `atom:link[@rel="enclosure"]/@length`),
		),
		Scalar("source", "atom:source/atom:title || atom:source/atom:subtitle"),
		Scalar("createdAt", "atom:published || atom:source/atom:published"),
		Scalar("lastUpdated", "atom:updated || atom:source/atom:updated || atom:published || atom:source/atom:published"),
		Scalar("author", "atom:author/atom:name || atom:source/atom:author/atom:name || parent::atom:feed/atom:author/atom:name"),
		Scalar("category", "atom:category/@term || atom:source/atom:category/@term || parent::atom:feed/atom:category/@term"),
	},
}
