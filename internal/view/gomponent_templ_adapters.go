package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// gomponentComponent lets a gomponents node sit wherever a templ.Component is
// expected.
type gomponentComponent struct {
	node g.Node
}

func (a gomponentComponent) Render(_ context.Context, w io.Writer) error {
	if a.node == nil {
		return nil
	}
	return a.node.Render(w)
}

// FromGomponent wraps node as a templ.Component.
func FromGomponent(node g.Node) templ.Component {
	return gomponentComponent{node: node}
}

// templNode lets a templ.Component sit inside a gomponents tree. gomponents
// does not pass a context down, so the one captured at construction is used.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (a templNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// FromTempl wraps component as a gomponents node rendered with ctx.
func FromTempl(ctx context.Context, component templ.Component) g.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return templNode{ctx: ctx, component: component}
}
