// Package templates renders the shared page chrome: document shell, head
// metadata and layout containers.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Main wraps page content in the application main region.
func Main(children ...g.Node) g.Node {
	return h.Main(h.ID("main"), h.Class(Styles.Main), g.Group(children))
}

// Container constrains page content to the layout width.
func Container(children ...g.Node) g.Node {
	return h.Div(h.Class(Styles.Container), g.Group(children))
}

// Title renders the page heading.
func Title(text string) g.Node {
	return h.H1(h.Class(Styles.Title), g.Text(text))
}

// Component adapts a node tree to the templ component contract.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// children renders the templ children carried by ctx as a node.
func children(ctx context.Context) g.Node {
	child := templ.GetChildren(ctx)
	ctx = templ.ClearChildren(ctx)
	return g.NodeFunc(func(w io.Writer) error {
		return child.Render(ctx, w)
	})
}
