// ABOUTME: Integration tests for the full feed normalization workflow
// ABOUTME: Tests fetch, discover, parse, fingerprinting, Markdown rendering, and conditional refetch end to end

package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"

	"github.com/harper/feedparse/internal/config"
	"github.com/harper/feedparse/internal/content"
	"github.com/harper/feedparse/internal/discover"
	"github.com/harper/feedparse/internal/fetch"
	"github.com/harper/feedparse/internal/models"
	"github.com/harper/feedparse/internal/parse"
)

const comicRSS = `<?xml version="1.0" encoding="utf-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>Comics</title>
    <link>https://comics.example.com/</link>
    <description>A webcomic</description>
    <language>en-us</language>
    <item>
      <title>Strip 2</title>
      <link>https://comics.example.com/2/</link>
      <description>&lt;img src="https://imgs.example.com/2.png" title="Hover" alt="Second strip" /&gt;</description>
      <pubDate>Wed, 03 Jan 2024 05:00:00 -0000</pubDate>
      <guid>https://comics.example.com/2/</guid>
    </item>
    <item>
      <title>Strip 1</title>
      <link>https://comics.example.com/1/</link>
      <description>&lt;p&gt;The first one&lt;/p&gt;</description>
      <pubDate>Mon, 01 Jan 2024 05:00:00 -0000</pubDate>
      <guid>https://comics.example.com/1/</guid>
    </item>
  </channel>
</rss>`

const siteHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Comics</title>
  <link rel="alternate" type="application/rss+xml" title="Comics RSS" href="/rss.xml">
</head>
<body><h1>Comics</h1></body>
</html>`

const etag = `"v1"`

func newComicServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(siteHTML))
		case "/rss.xml":
			if r.Header.Get("If-None-Match") == etag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
			w.Header().Set("Content-Type", "application/rss+xml")
			w.Header().Set("ETag", etag)
			w.Write([]byte(comicRSS))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// TestFullWorkflow discovers a feed from its site, parses it, and renders an item
func TestFullWorkflow(t *testing.T) {
	server := newComicServer(t)
	ctx := context.Background()

	found, err := discover.Discover(ctx, server.URL)
	if err != nil {
		t.Fatalf("failed to discover feed: %v", err)
	}
	if found.URL != server.URL+"/rss.xml" {
		t.Fatalf("expected feed URL %s/rss.xml, got %s", server.URL, found.URL)
	}
	t.Logf("Discovered %s feed at %s", found.Type, found.URL)

	result, err := fetch.Fetch(ctx, found.URL, nil, nil)
	if err != nil {
		t.Fatalf("failed to fetch feed: %v", err)
	}
	if result.NotModified || len(result.Body) == 0 {
		t.Fatal("expected a fresh, non-empty body on initial fetch")
	}

	feed, err := parse.Parse(result.Body)
	if err != nil {
		t.Fatalf("failed to parse feed: %v", err)
	}

	if feed.Type != models.FeedTypeRSS || feed.Title != "Comics" {
		t.Errorf("unexpected feed header: %s %q", feed.Type, feed.Title)
	}
	if feed.Language != "en-us" {
		t.Errorf("expected declared language, got %q", feed.Language)
	}
	if len(feed.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(feed.Items))
	}

	first := feed.Items[0]
	if first.CreatedAt != "2024-01-03T05:00:00Z" {
		t.Errorf("expected normalized pubDate, got %q", first.CreatedAt)
	}
	if first.Image.Src != "https://imgs.example.com/2.png" || first.Image.Title != "Second strip" {
		t.Errorf("expected image sniffed from content, got %+v", first.Image)
	}
	if first.TextContent != "" {
		t.Errorf("expected no text in an image-only item, got %q", first.TextContent)
	}
	if feed.Items[1].TextContent != "The first one" {
		t.Errorf("unexpected text content: %q", feed.Items[1].TextContent)
	}

	// Fingerprints are stable across parses and distinct across items.
	again, err := parse.Parse(result.Body)
	if err != nil {
		t.Fatalf("failed to re-parse feed: %v", err)
	}
	if again.Items[0].Fingerprint() != first.Fingerprint() {
		t.Error("fingerprint should be stable across parses")
	}
	if first.Fingerprint() == feed.Items[1].Fingerprint() {
		t.Error("fingerprints should differ between items")
	}

	markdown := content.ItemMarkdown(&feed.Items[1])
	if !strings.Contains(markdown, "# Strip 1") || !strings.Contains(markdown, "The first one") {
		t.Errorf("unexpected markdown:\n%s", markdown)
	}

	// The normalized record agrees with gofeed on the basics.
	reference, err := gofeed.NewParser().ParseString(comicRSS)
	if err != nil {
		t.Fatalf("gofeed failed: %v", err)
	}
	if reference.Title != feed.Title || len(reference.Items) != len(feed.Items) {
		t.Errorf("gofeed disagrees: %q/%d vs %q/%d", reference.Title, len(reference.Items), feed.Title, len(feed.Items))
	}
}

// TestConditionalRefetch checks that a known ETag yields NotModified
func TestConditionalRefetch(t *testing.T) {
	server := newComicServer(t)
	ctx := context.Background()

	first, err := fetch.Fetch(ctx, server.URL+"/rss.xml", nil, nil)
	if err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	if first.ETag != etag {
		t.Fatalf("expected ETag %s, got %q", etag, first.ETag)
	}

	second, err := fetch.Fetch(ctx, server.URL+"/rss.xml", &first.ETag, nil)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if !second.NotModified {
		t.Error("expected 304 Not Modified with a matching ETag")
	}
	if len(second.Body) != 0 {
		t.Error("expected empty body on NotModified")
	}
}

// TestConfigDrivenParse loads a config file and parses with its options
func TestConfigDrivenParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "default_language: nl\ndate_template: \"02 Jan 2006\"\nworkers: 4\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	noLanguage := strings.Replace(comicRSS, "<language>en-us</language>", "", 1)
	feed, err := parse.New(cfg.Options(nil)).ParseString(noLanguage)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if feed.Language != "nl" {
		t.Errorf("expected configured default language, got %q", feed.Language)
	}
	if feed.Items[1].CreatedAt != "01 Jan 2024" {
		t.Errorf("expected configured date template, got %q", feed.Items[1].CreatedAt)
	}

	out, err := json.Marshal(feed)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	for _, key := range []string{`"type":"RSS"`, `"items":[`, `"textContent":`, `"enclosure":`} {
		if !strings.Contains(string(out), key) {
			t.Errorf("JSON missing %s", key)
		}
	}
}
