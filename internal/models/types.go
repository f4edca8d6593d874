// ABOUTME: Dialect tags for feeds and feed items
// ABOUTME: Closed string enums shared by records, format tables and JSON output

package models

// FeedType identifies the syndication dialect a feed was read from.
type FeedType string

// Supported feed dialects.
const (
	FeedTypeRSS  FeedType = "RSS"
	FeedTypeATOM FeedType = "ATOM"
	FeedTypeRDF  FeedType = "RDF"
)

// Valid reports whether t is one of the supported dialects.
func (t FeedType) Valid() bool {
	switch t {
	case FeedTypeRSS, FeedTypeATOM, FeedTypeRDF:
		return true
	}
	return false
}

// ItemType mirrors the FeedType of the feed an item belongs to.
type ItemType string

// Supported item dialects.
const (
	ItemTypeRSS  ItemType = "RSS"
	ItemTypeATOM ItemType = "ATOM"
	ItemTypeRDF  ItemType = "RDF"
)

// Valid reports whether t is one of the supported dialects.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeRSS, ItemTypeATOM, ItemTypeRDF:
		return true
	}
	return false
}

// ItemType returns the item tag matching a feed tag.
func (t FeedType) ItemType() ItemType {
	return ItemType(t)
}
