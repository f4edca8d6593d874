// ABOUTME: Selector tables for RDF Site Summary (RSS 1.0) documents
// ABOUTME: Items are siblings of the channel, so item fields fall back through parent::rdf:RDF

package formats

import "github.com/harper/feedparse/internal/models"

const rdfChannelCategory = "def:channel/dc:coverage || def:channel/dc:subject/taxo:topic/@rdf:value || def:channel/dc:subject"

// RDF reads RSS 1.0 documents rooted at rdf:RDF.
var RDF = Dialect{
	Name:       "rdf",
	FeedType:   models.FeedTypeRDF,
	Namespaces: rssFamily(),
	Feed: Table{
		Scalar("id", "def:channel/@rdf:about || def:channel/dc:identifier"),
		Scalar("title", "def:channel/def:title || def:channel/dc:title"),
		Scalar("link", "def:channel/def:link"),
		Scalar("description", "def:channel/def:description || def:channel/dc:description"),
		Group("image",
			Sub("src", "def:image/def:url || def:image/@rdf:about"),
			Sub("link", "def:image/def:link || def:channel/def:link"),
			Sub("title", "def:image/def:title || def:image/dc:title || def:channel/def:title || def:channel/dc:title"),
		),
		Scalar("copyright", "def:channel/dc:rights"),
		Scalar("lastUpdated", "def:channel/dc:date"),
		Scalar("generator", "def:channel/dc:publisher || def:channel/dc:creator"),
		Scalar("language", "def:channel/dc:language"),
		Scalar("category", rdfChannelCategory),
	},
	Items: "def:item",
	Item: Table{
		Scalar("id", "@rdf:about"),
		Scalar("title", "def:title || dc:title"),
		Scalar("link", "def:link"),
		Scalar("content", "content:encoded || dc:description || def:description"),
		Group("enclosure",
			Sub("type", "enc:enclosure/@enc:type"),
			Sub("url", "enc:enclosure/@rdf:resource"),
			Sub("length", "enc:enclosure/@enc:length || enc:enclosure/enc:length"),
		),
		Scalar("source", "dc:source"),
		Scalar("createdAt", "dc:date"),
		Scalar("lastUpdated", "dc:date"),
		Scalar("author", "dc:creator || dc:contributor"),
		Scalar("category", "dc:coverage || dc:subject/taxo:topic/@rdf:value || dc:subject || parent::rdf:RDF/" +
			"def:channel/dc:coverage || parent::rdf:RDF/def:channel/dc:subject/taxo:topic/@rdf:value || parent::rdf:RDF/def:channel/dc:subject"),
	},
}
