package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/demosite/internal/middleware"
	"github.com/nfrund/demosite/internal/navsession"
	"github.com/nfrund/demosite/internal/rendering"
	"github.com/nfrund/demosite/internal/view"
)

// PageHandler renders the full pages. Every page load mounts a fresh
// navigation for the visitor.
type PageHandler struct {
	appName  string
	store    *navsession.Store
	navbar   view.NavbarConfig
	renderer rendering.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(appName string, store *navsession.Store, navbar view.NavbarConfig, renderer rendering.Renderer) *PageHandler {
	return &PageHandler{appName: appName, store: store, navbar: navbar, renderer: renderer}
}

// HomeGet handles the GET request for the home page.
func (h *PageHandler) HomeGet(c echo.Context) error {
	return h.render(c, "Home", view.HomeContent(h.appName))
}

// AboutGet handles the GET request for the about page.
func (h *PageHandler) AboutGet(c echo.Context) error {
	sess := h.mount(c)
	return h.renderSession(c, sess, "About", view.AboutContent(sess.Controller.Snapshot().Links))
}

// ContactGet handles the GET request for the contact page.
func (h *PageHandler) ContactGet(c echo.Context) error {
	return h.render(c, "Contact", view.ContactContent(h.appName))
}

func (h *PageHandler) render(c echo.Context, title string, body templ.Component) error {
	return h.renderSession(c, h.mount(c), title, body)
}

func (h *PageHandler) mount(c echo.Context) *navsession.Session {
	sess := h.store.Mount(navsession.IDFromRequest(c), 0)
	if err := navsession.SaveID(c, sess.ID); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to save navigation session", "error", err)
	}
	return sess
}

func (h *PageHandler) renderSession(c echo.Context, sess *navsession.Session, title string, body templ.Component) error {
	ctx := c.Request().Context()
	path := c.Request().URL.Path
	page := view.Page(ctx, view.PageData{
		AppName:     h.appName,
		Title:       title,
		CurrentPath: path,
		Navbar:      h.navbar.Props(sess.Controller.Snapshot(), path),
		Flashes:     view.GetFlashes(c),
	}, body)

	if err := h.renderer.Page(c, http.StatusOK, page); err != nil {
		return err
	}
	sess.Controller.RenderComplete()
	return nil
}
