// ABOUTME: Tests for the XPath selector engine
// ABOUTME: Covers namespace registration, context handling, and alternation order

package query

import (
	"reflect"
	"sync"
	"testing"

	"github.com/harper/feedparse/internal/xmldoc"
)

const documentsXML = `<?xml version='1.0' standalone='yes'?>
<documents>
    <!--default document-->
    <html>
        <body>
            <div>this is default document</div>
        </body>
    </html>
    <!--xhtml document-->
    <html xmlns="http://w3.org/ns/xhml">
        <body>
            <div>this is xhtml document</div>
        </body>
    </html>
    <!--svg document-->
    <html xmlns="http://w3.org/ns/svg">
        <body>
            <div>this is svg document</div>
        </body>
    </html>
</documents>`

var testNamespaces = map[string]string{
	"xhtml": "http://w3.org/ns/xhml",
	"svg":   "http://w3.org/ns/svg",
}

// expressionPairs holds an expression that matches one node and one that matches none.
var expressionPairs = []struct {
	name     string
	existing string
	missing  string
	text     string
}{
	{"xhtml", "xhtml:html/xhtml:body/xhtml:div", "xhtml:html/xhtml:body/xhtml:p", "this is xhtml document"},
	{"svg", "svg:html/svg:body/svg:div", "svg:html/svg:body/svg:p", "this is svg document"},
}

func newTestPath(t *testing.T) *Path {
	t.Helper()
	doc, err := xmldoc.ParseString(documentsXML)
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return New(doc)
}

func TestSplitAlternation(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"title", []string{"title"}},
		{"a || b", []string{"a", "b"}},
		{"a||b||c", []string{"a", "b", "c"}},
		{"  a  ||\n  b  ", []string{"a", "b"}},
		{`atom:link[@rel="alternate"]/@href || atom:link/@href`, []string{`atom:link[@rel="alternate"]/@href`, "atom:link/@href"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		got := SplitAlternation(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitAlternation(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestInitialContextNode(t *testing.T) {
	p := newTestPath(t)
	if p.ContextNode() != nil {
		t.Error("expected nil context node on a fresh path")
	}
}

func TestSetContextNode(t *testing.T) {
	p := newTestPath(t)
	root := p.doc.Root()
	p.SetContextNode(root)
	if p.ContextNode() != root {
		t.Error("ContextNode() did not return the node passed to SetContextNode()")
	}
}

func TestRegisterNamespace(t *testing.T) {
	for _, pair := range expressionPairs {
		t.Run(pair.name, func(t *testing.T) {
			p := newTestPath(t)

			if node := p.SelectNode(pair.existing); node != nil {
				t.Fatal("expected no match before the prefix is registered")
			}

			for prefix, uri := range testNamespaces {
				if !p.RegisterNamespace(prefix, uri) {
					t.Errorf("RegisterNamespace(%q, %q) = false, want true", prefix, uri)
				}
			}

			node := p.SelectNode(pair.existing)
			if node == nil {
				t.Fatal("expected a match after registering the prefix")
			}
			if node.InnerText() != pair.text {
				t.Errorf("InnerText() = %q, want %q", node.InnerText(), pair.text)
			}
		})
	}
}

func TestRegisterNamespace_SkipsEmpty(t *testing.T) {
	p := newTestPath(t)
	if p.RegisterNamespace("", "http://example.com/ns") {
		t.Error("expected empty prefix to be skipped")
	}
	if p.RegisterNamespace("ex", "") {
		t.Error("expected empty uri to be skipped")
	}
	if len(p.namespaces) != 0 {
		t.Errorf("expected no namespaces, got %v", p.namespaces)
	}
}

func TestRegisterNamespace_LastWriteWins(t *testing.T) {
	p := newTestPath(t)
	p.RegisterNamespace("ns", "http://w3.org/ns/svg")
	if p.SelectNode("ns:html/ns:body/ns:div").InnerText() != "this is svg document" {
		t.Fatal("expected svg document for first registration")
	}

	p.RegisterNamespace("ns", "http://w3.org/ns/xhml")
	node := p.SelectNode("ns:html/ns:body/ns:div")
	if node == nil || node.InnerText() != "this is xhtml document" {
		t.Errorf("expected re-registered prefix to resolve to xhtml document, got %v", node)
	}
}

func TestSelectNode(t *testing.T) {
	for _, pair := range expressionPairs {
		t.Run(pair.name, func(t *testing.T) {
			p := newTestPath(t)
			p.RegisterNamespaces(testNamespaces)

			if p.SelectNode(pair.existing) == nil {
				t.Errorf("SelectNode(%q) = nil, want node", pair.existing)
			}
			if node := p.SelectNode(pair.missing); node != nil {
				t.Errorf("SelectNode(%q) = %v, want nil", pair.missing, node)
			}
		})
	}
}

func TestSelectNodes(t *testing.T) {
	for _, pair := range expressionPairs {
		t.Run(pair.name, func(t *testing.T) {
			p := newTestPath(t)
			p.RegisterNamespaces(testNamespaces)

			if nodes := p.SelectNodes(pair.existing); len(nodes) != 1 {
				t.Errorf("len(SelectNodes(%q)) = %d, want 1", pair.existing, len(nodes))
			}
			if nodes := p.SelectNodes(pair.missing); nodes != nil {
				t.Errorf("SelectNodes(%q) = %v, want nil", pair.missing, nodes)
			}
		})
	}
}

func TestSelectNodes_InvalidExpression(t *testing.T) {
	p := newTestPath(t)
	if nodes := p.SelectNodes("html[@@broken"); nodes != nil {
		t.Errorf("expected nil for invalid expression, got %v", nodes)
	}
	if node := p.SelectNode("undeclared:html"); node != nil {
		t.Errorf("expected nil for undeclared prefix, got %v", node)
	}
}

func TestSelectAltNode(t *testing.T) {
	for _, pair := range expressionPairs {
		t.Run(pair.name, func(t *testing.T) {
			p := newTestPath(t)
			p.RegisterNamespaces(testNamespaces)

			if p.SelectAltNode(pair.existing+" || "+pair.missing) == nil {
				t.Error("expected match with existing branch first")
			}
			if p.SelectAltNode(pair.missing+" || "+pair.existing) == nil {
				t.Error("expected match with existing branch last")
			}
			if p.SelectAltNode(pair.missing+" || "+pair.missing) != nil {
				t.Error("expected nil when no branch matches")
			}
		})
	}
}

func TestSelectAltNode_FirstBranchWins(t *testing.T) {
	p := newTestPath(t)
	p.RegisterNamespaces(testNamespaces)

	a := "xhtml:html/xhtml:body/xhtml:div"
	b := "svg:html/svg:body/svg:div"

	if got := p.SelectAltNode(a + " || " + b).InnerText(); got != "this is xhtml document" {
		t.Errorf("a || b = %q, want xhtml document", got)
	}
	if got := p.SelectAltNode(b + " || " + a).InnerText(); got != "this is svg document" {
		t.Errorf("b || a = %q, want svg document", got)
	}
	// An untried branch never affects the result, even when it is invalid.
	if got := p.SelectAltNode(a + " || [[[").InnerText(); got != "this is xhtml document" {
		t.Errorf("a || invalid = %q, want xhtml document", got)
	}
}

func TestSelectAltNodes(t *testing.T) {
	for _, pair := range expressionPairs {
		t.Run(pair.name, func(t *testing.T) {
			p := newTestPath(t)
			p.RegisterNamespaces(testNamespaces)

			if nodes := p.SelectAltNodes(pair.existing + " || " + pair.missing); len(nodes) != 1 {
				t.Errorf("expected 1 node, got %d", len(nodes))
			}
			if nodes := p.SelectAltNodes(pair.missing + " || " + pair.existing); len(nodes) != 1 {
				t.Errorf("expected 1 node, got %d", len(nodes))
			}
			if nodes := p.SelectAltNodes(pair.missing + " || " + pair.missing); nodes != nil {
				t.Errorf("expected nil, got %v", nodes)
			}
		})
	}
}

func TestContextRelativeQueries(t *testing.T) {
	p := newTestPath(t)
	p.RegisterNamespaces(testNamespaces)

	// Without a context node, queries run against the document element.
	if nodes := p.SelectNodes("html"); len(nodes) != 3 {
		t.Fatalf("expected 3 html children of the root, got %d", len(nodes))
	}

	svgHTML := p.SelectNode("svg:html")
	p.SetContextNode(svgHTML)
	if got := p.SelectNode("svg:body/svg:div").InnerText(); got != "this is svg document" {
		t.Errorf("relative query = %q, want svg document", got)
	}

	// An explicit override beats the context slot.
	xhtmlHTML := p.SelectNode("xhtml:html", p.doc.Root())
	if got := p.SelectNode("xhtml:body/xhtml:div", xhtmlHTML).InnerText(); got != "this is xhtml document" {
		t.Errorf("override query = %q, want xhtml document", got)
	}
	if p.ContextNode() != svgHTML {
		t.Error("an explicit override must not change the context slot")
	}
}

func TestAt_IndependentBindings(t *testing.T) {
	p := newTestPath(t)
	p.RegisterNamespaces(testNamespaces)

	roots := []string{"xhtml:html", "svg:html"}
	want := []string{"this is xhtml document", "this is svg document"}

	var wg sync.WaitGroup
	got := make([]string, len(roots))
	for i, expr := range roots {
		wg.Add(1)
		go func(i int, scoped *Path) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got[i] = scoped.SelectAltNode("xhtml:body/xhtml:div || svg:body/svg:div").InnerText()
			}
		}(i, p.At(p.SelectNode(expr)))
	}
	wg.Wait()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("scoped results = %v, want %v", got, want)
	}
	if p.ContextNode() != nil {
		t.Error("At() must not change the parent binding's context")
	}
}
