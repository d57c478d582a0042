package document

import (
	"fmt"
	"strings"

	"github.com/lestrrat-go/libxml2"
	"github.com/lestrrat-go/libxml2/types"
	"github.com/lestrrat-go/libxml2/xpath"
)

// XMLDocument owns a parsed libxml2 document. Nodes obtained from it are
// only valid until Close is called.
type XMLDocument struct {
	doc        types.Document
	namespaces map[string]string
}

// ParseXML parses data and remembers the prefix to namespace URI bindings
// used when evaluating paths.
func ParseXML(data []byte, namespaces map[string]string) (*XMLDocument, error) {
	doc, err := libxml2.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing XML: %w", err)
	}
	return &XMLDocument{doc: doc, namespaces: namespaces}, nil
}

// Root returns the document element.
func (d *XMLDocument) Root() (Node, error) {
	root, err := d.doc.DocumentElement()
	if err != nil {
		return nil, fmt.Errorf("error reading document element: %w", err)
	}
	return &xmlNode{node: root, namespaces: d.namespaces}, nil
}

// Close frees the underlying document.
func (d *XMLDocument) Close() {
	d.doc.Free()
}

type xmlNode struct {
	node       types.Node
	namespaces map[string]string
}

func (n *xmlNode) context() (*xpath.Context, error) {
	ctx, err := xpath.NewContext(n.node)
	if err != nil {
		return nil, err
	}
	for prefix, uri := range n.namespaces {
		if err := ctx.RegisterNS(prefix, uri); err != nil {
			ctx.Free()
			return nil, fmt.Errorf("error registering namespace %s: %w", prefix, err)
		}
	}
	return ctx, nil
}

func (n *xmlNode) Get(path string) []Node {
	ctx, err := n.context()
	if err != nil {
		return nil
	}
	defer ctx.Free()

	found := xpath.NodeList(ctx.Find(path))
	out := make([]Node, 0, len(found))
	for _, f := range found {
		out = append(out, &xmlNode{node: f, namespaces: n.namespaces})
	}
	return out
}

func (n *xmlNode) Value() string {
	return strings.TrimSpace(n.node.TextContent())
}

// Attr returns the named attribute of the node, e.g. "rdf:resource".
func (n *xmlNode) Attr(name string) string {
	return n.attr("@" + name)
}

func (n *xmlNode) Lang() string {
	return n.attr("@xml:lang")
}

// attr selects an attribute node. Only node-set results carry the
// attribute text, so the path must not be wrapped in string().
func (n *xmlNode) attr(path string) string {
	ctx, err := n.context()
	if err != nil {
		return ""
	}
	defer ctx.Free()
	found := xpath.NodeList(ctx.Find(path))
	if len(found) == 0 {
		return ""
	}
	return strings.TrimSpace(found[0].TextContent())
}
