// ABOUTME: Walks a format table and writes every resolved value into a record
// ABOUTME: Records expose a closed set of named setters instead of reflection

package extract

import (
	"github.com/harper/feedparse/internal/formats"
	"github.com/harper/feedparse/internal/query"
)

// Record is implemented by *models.Feed and *models.FeedItem.
type Record interface {
	Set(field, value string) error
	SetGroup(group, sub, value string) error
}

// Apply resolves every field of table against p and stores the result in rec.
// Fields the record does not know are logged and skipped.
func Apply(p *query.Path, rec Record, table formats.Table, opts Options) {
	for _, f := range table {
		if !f.IsGroup() {
			if err := rec.Set(f.Name, Resolve(p, f.Name, f.Selector, opts)); err != nil {
				opts.logger().Warn("skipping table field", "err", err)
			}
			continue
		}
		for _, sub := range f.Group {
			if err := rec.SetGroup(f.Name, sub.Name, Resolve(p, sub.Name, sub.Selector, opts)); err != nil {
				opts.logger().Warn("skipping table field", "err", err)
			}
		}
	}
}
