// ABOUTME: FeedItem record holding one normalized entry of a feed
// ABOUTME: Provides named setters and a deterministic fingerprint for deduplication

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Enclosure is a media attachment on an item.
type Enclosure struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Length string `json:"length"`
}

// FeedItem is one normalized item, entry or rdf:item.
type FeedItem struct {
	Type        ItemType  `json:"type"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Content     string    `json:"content"`
	TextContent string    `json:"textContent"`
	Image       Image     `json:"image"`
	Enclosure   Enclosure `json:"enclosure"`
	CreatedAt   string    `json:"createdAt"`
	LastUpdated string    `json:"lastUpdated"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	Author      string    `json:"author"`
}

// NewFeedItem creates an empty item of type t.
func NewFeedItem(t ItemType) *FeedItem {
	return &FeedItem{Type: t}
}

// Set assigns a scalar item field by its JSON name.
func (i *FeedItem) Set(field, value string) error {
	switch field {
	case "id":
		i.ID = value
	case "title":
		i.Title = value
	case "link":
		i.Link = value
	case "content":
		i.Content = value
	case "textContent":
		i.TextContent = value
	case "createdAt":
		i.CreatedAt = value
	case "lastUpdated":
		i.LastUpdated = value
	case "category":
		i.Category = value
	case "source":
		i.Source = value
	case "author":
		i.Author = value
	default:
		return fmt.Errorf("item %q: %w", field, ErrUnknownField)
	}
	return nil
}

// SetGroup assigns one member of the image or enclosure group.
func (i *FeedItem) SetGroup(group, sub, value string) error {
	switch group {
	case "image":
		return setImage(&i.Image, sub, value)
	case "enclosure":
		switch sub {
		case "type":
			i.Enclosure.Type = value
		case "url":
			i.Enclosure.URL = value
		case "length":
			i.Enclosure.Length = value
		default:
			return fmt.Errorf("enclosure %q: %w", sub, ErrUnknownField)
		}
		return nil
	}
	return fmt.Errorf("item %q: %w", group, ErrUnknownField)
}

// Fingerprint returns a stable UUID derived from the item's id, link and
// title. Two parses of the same item always agree.
func (i *FeedItem) Fingerprint() string {
	key := i.ID + "|" + i.Link + "|" + i.Title
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}
