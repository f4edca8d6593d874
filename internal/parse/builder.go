// ABOUTME: Builds a normalized Feed from a parsed XML document
// ABOUTME: Dispatches on the root element, resolves feed fields, then builds items in document order

package parse

import (
	"errors"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/harper/feedparse/internal/extract"
	"github.com/harper/feedparse/internal/formats"
	"github.com/harper/feedparse/internal/models"
	"github.com/harper/feedparse/internal/query"
	"github.com/harper/feedparse/internal/sanitize"
	"github.com/harper/feedparse/internal/timeutil"
	"github.com/harper/feedparse/internal/xmldoc"
)

// ErrUnsupportedFeed is matched by every UnsupportedFeedError.
var ErrUnsupportedFeed = errors.New("unsupported feed type")

// UnsupportedFeedError names the root element that no dialect accepts.
type UnsupportedFeedError struct {
	Root string
}

func (e *UnsupportedFeedError) Error() string {
	return fmt.Sprintf("unsupported feed type: root element %q", e.Root)
}

func (e *UnsupportedFeedError) Is(target error) bool {
	return target == ErrUnsupportedFeed
}

// Options controls a build.
type Options struct {
	DefaultLanguage string
	DateTemplate    string
	RemoveStyles    bool
	RemoveScripts   bool
	// Workers > 1 resolves items concurrently.
	Workers int
	Logger  *log.Logger
}

// DefaultOptions returns English, RFC 3339 dates, style and script stripping
// and sequential item building.
func DefaultOptions() Options {
	return Options{
		DefaultLanguage: "en",
		DateTemplate:    timeutil.DefaultTemplate,
		RemoveStyles:    true,
		RemoveScripts:   true,
		Workers:         1,
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

func (o Options) extract() extract.Options {
	return extract.Options{
		DefaultLanguage: o.DefaultLanguage,
		DateTemplate:    o.DateTemplate,
		RemoveStyles:    o.RemoveStyles,
		RemoveScripts:   o.RemoveScripts,
		Logger:          o.logger(),
	}
}

// Build reads doc into a Feed. An unrecognized root element fails before
// any field is resolved; everything after that point degrades to empty
// values instead of failing.
func Build(doc *xmldoc.Document, opts Options) (*models.Feed, error) {
	logger := opts.logger()

	dialect, ok := formats.Lookup(doc.RootName())
	if !ok {
		return nil, &UnsupportedFeedError{Root: doc.RootName()}
	}

	path := query.New(doc).WithLogger(logger)
	path.RegisterNamespaces(dialect.Namespaces)

	eopts := opts.extract()
	feed := models.NewFeed(dialect.FeedType, opts.DefaultLanguage)
	path.SetContextNode(doc.Root())
	extract.Apply(path, feed, dialect.Feed, eopts)
	if feed.Language == "" {
		feed.Language = opts.DefaultLanguage
	}

	nodes := path.SelectAltNodes(dialect.Items, doc.Root())
	items, err := buildItems(path, nodes, dialect, eopts, opts.Workers)
	if err != nil {
		return nil, err
	}
	feed.Items = items

	logger.Debug("built feed", "type", feed.Type, "title", feed.Title, "items", len(feed.Items))
	return feed, nil
}

func buildItems(path *query.Path, nodes []*xmlquery.Node, dialect formats.Dialect, opts extract.Options, workers int) ([]models.FeedItem, error) {
	items := make([]models.FeedItem, len(nodes))

	if workers <= 1 || len(nodes) < 2 {
		for i, node := range nodes {
			items[i] = buildItem(path.At(node), dialect, opts)
		}
		return items, nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, node := range nodes {
		scoped := path.At(node)
		g.Go(func() error {
			items[i] = buildItem(scoped, dialect, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func buildItem(path *query.Path, dialect formats.Dialect, opts extract.Options) models.FeedItem {
	item := models.NewFeedItem(dialect.ItemType())
	extract.Apply(path, item, dialect.Item, opts)
	extract.SniffImage(item)
	item.TextContent = sanitize.TextOnly(item.Content)
	return *item
}
