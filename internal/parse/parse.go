// ABOUTME: Front door that loads feeds from strings, files and URLs
// ABOUTME: Maps loading failures onto sentinel errors before handing documents to the builder

package parse

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	"github.com/mmcdole/gofeed"

	"github.com/harper/feedparse/internal/fetch"
	"github.com/harper/feedparse/internal/models"
	"github.com/harper/feedparse/internal/xmldoc"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrInvalidURL       = errors.New("invalid URL")
	ErrResourceNotFound = errors.New("resource not found")
)

// Parser loads documents and builds feeds with fixed options.
type Parser struct {
	opts   Options
	client *fetch.Client
}

// New returns a Parser using opts.
func New(opts Options) *Parser {
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = "en"
	}
	return &Parser{opts: opts, client: fetch.NewClient(fetch.DefaultTimeout)}
}

// WithClient replaces the HTTP client used by ParseURL.
func (p *Parser) WithClient(c *fetch.Client) *Parser {
	if c != nil {
		p.client = c
	}
	return p
}

// Options returns the build options.
func (p *Parser) Options() Options {
	return p.opts
}

// Parse builds a feed from data with DefaultOptions.
func Parse(data []byte) (*models.Feed, error) {
	return New(DefaultOptions()).ParseBytes(data)
}

// ParseBytes builds a feed from raw document bytes.
func (p *Parser) ParseBytes(data []byte) (*models.Feed, error) {
	if gofeed.DetectFeedType(bytes.NewReader(data)) == gofeed.FeedTypeJSON {
		return nil, &UnsupportedFeedError{Root: "json"}
	}

	doc, err := xmldoc.Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(doc, p.opts)
}

// ParseString builds a feed from document text.
func (p *Parser) ParseString(s string) (*models.Feed, error) {
	return p.ParseBytes([]byte(s))
}

// ParseFile builds a feed from the file at path.
func (p *Parser) ParseFile(path string) (*models.Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p.ParseBytes(data)
}

// ParseURL fetches rawURL and builds a feed from the response.
func (p *Parser) ParseURL(ctx context.Context, rawURL string) (*models.Feed, error) {
	if !IsURL(rawURL) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	res, err := p.client.Fetch(ctx, rawURL, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceNotFound, err)
	}
	return p.ParseBytes(res.Body)
}

// IsURL reports whether s is an absolute http or https URL.
func IsURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
