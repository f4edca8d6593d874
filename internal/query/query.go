// ABOUTME: XPath selector engine bound to one document with namespace registration
// ABOUTME: Supports context-relative queries and "||" alternation where the first match wins

package query

import (
	"regexp"
	"strings"
	"sync"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/charmbracelet/log"

	"github.com/harper/feedparse/internal/xmldoc"
)

var alternation = regexp.MustCompile(`\s*\|\|\s*`)

// SplitAlternation breaks an alternation selector into its branches, in order.
func SplitAlternation(alt string) []string {
	parts := alternation.Split(strings.TrimSpace(alt), -1)
	branches := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			branches = append(branches, p)
		}
	}
	return branches
}

// exprCache holds compiled expressions for one namespace set.
type exprCache struct {
	mu    sync.Mutex
	exprs map[string]*xpath.Expr
}

func newExprCache() *exprCache {
	return &exprCache{exprs: make(map[string]*xpath.Expr)}
}

func (c *exprCache) compile(expr string, namespaces map[string]string) (*xpath.Expr, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if compiled, ok := c.exprs[expr]; ok {
		return compiled, nil
	}
	compiled, err := xpath.CompileWithNS(expr, namespaces)
	if err != nil {
		return nil, err
	}
	c.exprs[expr] = compiled
	return compiled, nil
}

// Path evaluates XPath expressions against a single document.
//
// A Path is not safe for concurrent use because of its context slot. Use At
// to hand each goroutine its own binding; bindings share the document and
// the compiled-expression cache.
type Path struct {
	doc        *xmldoc.Document
	namespaces map[string]string
	cache      *exprCache
	context    *xmlquery.Node
	logger     *log.Logger
}

// New binds a Path to doc.
func New(doc *xmldoc.Document) *Path {
	return &Path{
		doc:        doc,
		namespaces: make(map[string]string),
		cache:      newExprCache(),
		logger:     log.Default(),
	}
}

// WithLogger sets the logger used for expression errors.
func (p *Path) WithLogger(logger *log.Logger) *Path {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// RegisterNamespace maps prefix to uri for later queries. Empty values are
// ignored and reported as false.
func (p *Path) RegisterNamespace(prefix, uri string) bool {
	if prefix == "" || uri == "" {
		return false
	}
	if p.namespaces[prefix] == uri {
		return true
	}

	// Bindings created by At share the map, so copy before writing.
	namespaces := make(map[string]string, len(p.namespaces)+1)
	for k, v := range p.namespaces {
		namespaces[k] = v
	}
	namespaces[prefix] = uri
	p.namespaces = namespaces
	p.cache = newExprCache()
	return true
}

// RegisterNamespaces registers every prefix/uri pair in namespaces.
func (p *Path) RegisterNamespaces(namespaces map[string]string) {
	for prefix, uri := range namespaces {
		p.RegisterNamespace(prefix, uri)
	}
}

// SetContextNode sets the node relative queries resolve against.
func (p *Path) SetContextNode(n *xmlquery.Node) {
	p.context = n
}

// ContextNode returns the current context node, nil until one is set.
func (p *Path) ContextNode() *xmlquery.Node {
	return p.context
}

// At returns a separate binding whose context node is n.
func (p *Path) At(n *xmlquery.Node) *Path {
	return &Path{
		doc:        p.doc,
		namespaces: p.namespaces,
		cache:      p.cache,
		context:    n,
		logger:     p.logger,
	}
}

// resolveContext picks the explicit override, then the context slot, then
// the document element.
func (p *Path) resolveContext(ctx []*xmlquery.Node) *xmlquery.Node {
	if len(ctx) > 0 && ctx[0] != nil {
		return ctx[0]
	}
	if p.context != nil {
		return p.context
	}
	return p.doc.Root()
}

// SelectNodes returns every node matching expr, or nil when the expression
// is invalid or matches nothing.
func (p *Path) SelectNodes(expr string, ctx ...*xmlquery.Node) []*xmlquery.Node {
	compiled, err := p.cache.compile(expr, p.namespaces)
	if err != nil {
		p.logger.Debug("invalid xpath expression", "expr", expr, "err", err)
		return nil
	}

	nodes := xmlquery.QuerySelectorAll(p.resolveContext(ctx), compiled)
	if len(nodes) == 0 {
		return nil
	}
	return nodes
}

// SelectNode returns the first node matching expr, or nil.
func (p *Path) SelectNode(expr string, ctx ...*xmlquery.Node) *xmlquery.Node {
	compiled, err := p.cache.compile(expr, p.namespaces)
	if err != nil {
		p.logger.Debug("invalid xpath expression", "expr", expr, "err", err)
		return nil
	}
	return xmlquery.QuerySelector(p.resolveContext(ctx), compiled)
}

// SelectAltNode tries each "||" branch of alt in order and returns the first
// match. Later branches are not evaluated once one matches.
func (p *Path) SelectAltNode(alt string, ctx ...*xmlquery.Node) *xmlquery.Node {
	for _, expr := range SplitAlternation(alt) {
		if node := p.SelectNode(expr, ctx...); node != nil {
			return node
		}
	}
	return nil
}

// SelectAltNodes is SelectAltNode for node lists: the first branch with a
// non-empty result wins.
func (p *Path) SelectAltNodes(alt string, ctx ...*xmlquery.Node) []*xmlquery.Node {
	for _, expr := range SplitAlternation(alt) {
		if nodes := p.SelectNodes(expr, ctx...); len(nodes) > 0 {
			return nodes
		}
	}
	return nil
}
