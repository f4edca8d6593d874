// ABOUTME: Feed record holding normalized channel-level metadata and its items
// ABOUTME: Populated through a closed set of named setters driven by format tables

package models

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned by the setters for names outside the record shape.
var ErrUnknownField = errors.New("unknown field")

// Image describes a feed logo or an image found in item content.
type Image struct {
	Src   string `json:"src"`
	Link  string `json:"link"`
	Title string `json:"title"`
}

// IsZero reports whether no image field is set.
func (i Image) IsZero() bool {
	return i == Image{}
}

// Feed is the normalized form of an RSS, ATOM or RDF document.
type Feed struct {
	Type        FeedType   `json:"type"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Description string     `json:"description"`
	Image       Image      `json:"image"`
	Copyright   string     `json:"copyright"`
	LastUpdated string     `json:"lastUpdated"`
	Generator   string     `json:"generator"`
	Language    string     `json:"language"`
	Category    string     `json:"category"`
	Items       []FeedItem `json:"items"`
}

// NewFeed creates an empty feed of type t whose language starts out as
// defaultLanguage. Items is non-nil so the JSON shape always has an array.
func NewFeed(t FeedType, defaultLanguage string) *Feed {
	return &Feed{
		Type:     t,
		Language: defaultLanguage,
		Items:    []FeedItem{},
	}
}

// Set assigns a scalar feed field by its JSON name.
func (f *Feed) Set(field, value string) error {
	switch field {
	case "id":
		f.ID = value
	case "title":
		f.Title = value
	case "link":
		f.Link = value
	case "description":
		f.Description = value
	case "copyright":
		f.Copyright = value
	case "lastUpdated":
		f.LastUpdated = value
	case "generator":
		f.Generator = value
	case "language":
		f.Language = value
	case "category":
		f.Category = value
	default:
		return fmt.Errorf("feed %q: %w", field, ErrUnknownField)
	}
	return nil
}

// SetGroup assigns one member of a grouped feed field.
func (f *Feed) SetGroup(group, sub, value string) error {
	if group != "image" {
		return fmt.Errorf("feed %q: %w", group, ErrUnknownField)
	}
	return setImage(&f.Image, sub, value)
}

func setImage(img *Image, sub, value string) error {
	switch sub {
	case "src":
		img.Src = value
	case "link":
		img.Link = value
	case "title":
		img.Title = value
	default:
		return fmt.Errorf("image %q: %w", sub, ErrUnknownField)
	}
	return nil
}
