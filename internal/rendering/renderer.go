package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer turns templ components and gomponents nodes into HTML.
type Renderer interface {
	// Fragment renders a component to bytes for htmx swaps and WebSocket
	// frames.
	Fragment(ctx context.Context, component any) ([]byte, error)
	// Page streams a component as a full HTTP response.
	Page(c echo.Context, status int, component any) error
}

// HTMLRenderer renders both component flavours and doubles as the echo
// renderer.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

type node interface {
	Render(w io.Writer) error
}

func (r *HTMLRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case node:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T", component)
	}
}

func (r *HTMLRenderer) Fragment(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("render fragment: %w", err)
	}
	return buf.Bytes(), nil
}

// Page buffers the output so a render error can still become a 500.
func (r *HTMLRenderer) Page(c echo.Context, status int, component any) error {
	body, err := r.Fragment(c.Request().Context(), component)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer; the component travels in data.
func (r *HTMLRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}
