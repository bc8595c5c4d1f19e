package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/demosite/internal/middleware"
	"github.com/nfrund/demosite/internal/view"
)

// SearchFunc receives submitted search queries. It is fire and forget: the
// navbar never waits on a result.
type SearchFunc func(ctx context.Context, query string)

// SearchHandler forwards the navbar search form to a SearchFunc.
type SearchHandler struct {
	onSearch SearchFunc
}

// NewSearchHandler creates a new SearchHandler. A nil onSearch discards
// queries.
func NewSearchHandler(onSearch SearchFunc) *SearchHandler {
	if onSearch == nil {
		onSearch = func(context.Context, string) {}
	}
	return &SearchHandler{onSearch: onSearch}
}

// SearchPost handles POST /search.
func (h *SearchHandler) SearchPost(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Code: "bad_request", Message: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, ErrorResponse{Code: "invalid_query", Message: err.Error()})
	}

	middleware.FromContext(c.Request().Context()).Info("Search submitted", "query_length", len(req.Query))
	h.onSearch(context.WithoutCancel(c.Request().Context()), req.Query)

	if isHTMX(c) {
		return c.NoContent(http.StatusNoContent)
	}
	view.SetFlashSuccess(c, "Searching for \""+req.Query+"\"")
	back := c.Request().Referer()
	if back == "" {
		back = "/"
	}
	return c.Redirect(http.StatusSeeOther, view.PathOf(back))
}
