// ABOUTME: Finds an RSS, ATOM or RDF feed starting from any web page URL
// ABOUTME: Tries the URL itself, then <link rel="alternate"> tags, then common feed paths

package discover

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/harper/feedparse/internal/fetch"
	"github.com/harper/feedparse/internal/models"
	"github.com/harper/feedparse/internal/parse"
)

// Common feed paths to probe when other discovery methods fail
var commonFeedPaths = []string{
	"/feed.xml",
	"/feed",
	"/rss.xml",
	"/rss",
	"/atom.xml",
	"/atom",
	"/index.xml",
	"/index.rdf",
	"/rss.rdf",
	"/feed/rss",
	"/feed/atom",
	"/feeds/posts/default",
}

// Errors returned by discovery functions
var (
	ErrNoFeedFound = errors.New("no RSS/ATOM/RDF feed found at URL")
	ErrInvalidURL  = errors.New("invalid URL")
)

// DiscoveredFeed is a feed found during discovery, already parsed.
type DiscoveredFeed struct {
	URL   string
	Title string
	Type  models.FeedType
	Feed  *models.Feed
}

// Discoverer fetches candidates and validates them with a parser.
type Discoverer struct {
	parser *parse.Parser
	client *fetch.Client
}

// New returns a Discoverer that validates candidates with parser.
func New(parser *parse.Parser, client *fetch.Client) *Discoverer {
	if parser == nil {
		parser = parse.New(parse.DefaultOptions())
	}
	if client == nil {
		client = fetch.NewClient(fetch.DefaultTimeout)
	}
	return &Discoverer{parser: parser, client: client}
}

// Discover finds a feed with default parsing options.
func Discover(ctx context.Context, inputURL string) (*DiscoveredFeed, error) {
	return New(nil, nil).Discover(ctx, inputURL)
}

// Discover attempts to find a feed from inputURL. It tries, in order:
//  1. inputURL as a direct feed
//  2. <link rel="alternate"> elements in the page at inputURL
//  3. common feed paths on the same host
func (d *Discoverer) Discover(ctx context.Context, inputURL string) (*DiscoveredFeed, error) {
	parsedURL, err := url.Parse(inputURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: missing scheme or host", ErrInvalidURL)
	}

	feed, body, err := d.tryDirectFeed(ctx, inputURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	if feed != nil {
		return feed, nil
	}

	for _, candidate := range extractFeedLinks(body, parsedURL) {
		verified, _, verifyErr := d.tryDirectFeed(ctx, candidate.URL)
		if verifyErr == nil && verified != nil {
			if verified.Title == "" && candidate.Title != "" {
				verified.Title = candidate.Title
			}
			return verified, nil
		}
	}

	if feed := d.probeCommonPaths(ctx, parsedURL); feed != nil {
		return feed, nil
	}
	return nil, ErrNoFeedFound
}

// tryDirectFeed fetches feedURL and parses it. A body that is not a feed is
// returned with a nil feed and no error so it can be scanned as HTML.
func (d *Discoverer) tryDirectFeed(ctx context.Context, feedURL string) (*DiscoveredFeed, []byte, error) {
	result, err := d.client.Fetch(ctx, feedURL, nil, nil)
	if err != nil {
		return nil, nil, err
	}

	parsed, parseErr := d.parser.ParseBytes(result.Body)
	if parseErr != nil {
		return nil, result.Body, nil //nolint:nilerr // not a feed, which is expected here
	}

	return &DiscoveredFeed{
		URL:   feedURL,
		Title: parsed.Title,
		Type:  parsed.Type,
		Feed:  parsed,
	}, result.Body, nil
}

// extractFeedLinks returns feed URLs from <link rel="alternate"> elements.
func extractFeedLinks(htmlBody []byte, baseURL *url.URL) []DiscoveredFeed {
	doc, err := html.Parse(bytes.NewReader(htmlBody))
	if err != nil {
		return nil
	}

	var feeds []DiscoveredFeed
	var findLinks func(*html.Node)
	findLinks = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "link" {
			var rel, linkType, href, title string
			for _, attr := range n.Attr {
				switch strings.ToLower(attr.Key) {
				case "rel":
					rel = attr.Val
				case "type":
					linkType = attr.Val
				case "href":
					href = attr.Val
				case "title":
					title = attr.Val
				}
			}

			if isAlternate(rel) && isFeedContentType(linkType) && href != "" {
				if resolved, err := resolveURL(href, baseURL); err == nil {
					feeds = append(feeds, DiscoveredFeed{URL: resolved, Title: title})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findLinks(c)
		}
	}

	findLinks(doc)
	return feeds
}

func (d *Discoverer) probeCommonPaths(ctx context.Context, baseURL *url.URL) *DiscoveredFeed {
	probeBase := &url.URL{Scheme: baseURL.Scheme, Host: baseURL.Host}
	for _, path := range commonFeedPaths {
		feed, _, err := d.tryDirectFeed(ctx, probeBase.String()+path)
		if err == nil && feed != nil {
			return feed
		}
	}
	return nil
}

func resolveURL(href string, baseURL *url.URL) (string, error) {
	refURL, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

func isAlternate(rel string) bool {
	for _, r := range strings.Fields(strings.ToLower(rel)) {
		if r == "alternate" {
			return true
		}
	}
	return false
}

// isFeedContentType checks if the content type indicates a feed
func isFeedContentType(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.Contains(contentType, "rss") ||
		strings.Contains(contentType, "atom") ||
		strings.Contains(contentType, "rdf") ||
		strings.Contains(contentType, "xml")
}
