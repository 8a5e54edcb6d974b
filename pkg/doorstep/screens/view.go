package screens

import (
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/form"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/router"
)

// NodeKind identifies what a render node is.
type NodeKind int

const (
	NodeHeading NodeKind = iota
	NodeSubheading
	NodeInput
	NodeButton
	NodeLink
)

func (k NodeKind) String() string {
	switch k {
	case NodeHeading:
		return "heading"
	case NodeSubheading:
		return "subheading"
	case NodeInput:
		return "input"
	case NodeButton:
		return "button"
	case NodeLink:
		return "link"
	default:
		return "unknown"
	}
}

// Node is one element of a screen's render tree.
type Node struct {
	Kind   NodeKind
	ID     string      // Empty for static text
	Text   string      // Heading text or button/link label
	Field  *form.Field // Bound field, inputs only
	Action Action      // Buttons and links only
}

// Focusable reports whether a host should let the user move focus onto the node.
func (n Node) Focusable() bool {
	return n.Kind == NodeInput || n.Kind == NodeButton || n.Kind == NodeLink
}

// View is the declarative output of a screen, consumed by a rendering host.
type View struct {
	Route       router.Route
	Title       string // Header title, only meaningful when HeaderShown
	HeaderShown bool
	Nodes       []Node
}

// Find returns the node with the given ID.
func (v View) Find(id string) (Node, bool) {
	for _, n := range v.Nodes {
		if n.ID != "" && n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Focusable returns the focusable nodes in render order.
func (v View) Focusable() []Node {
	nodes := make([]Node, 0, len(v.Nodes))
	for _, n := range v.Nodes {
		if n.Focusable() {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func heading(text string) Node {
	return Node{Kind: NodeHeading, Text: text}
}

func subheading(text string) Node {
	return Node{Kind: NodeSubheading, Text: text}
}

func input(f *form.Field) Node {
	return Node{Kind: NodeInput, ID: f.ID, Field: f}
}

func button(id, label string, action Action) Node {
	return Node{Kind: NodeButton, ID: id, Text: label, Action: action}
}

func link(id, label string, action Action) Node {
	return Node{Kind: NodeLink, ID: id, Text: label, Action: action}
}
