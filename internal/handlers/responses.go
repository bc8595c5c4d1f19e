package handlers

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
)

const (
	// FocusEvent is the client event carrying focus commands.
	FocusEvent = "nav:focus"

	headerTrigger            = "HX-Trigger"
	headerTriggerAfterSettle = "HX-Trigger-After-Settle"
	headerReswap             = "HX-Reswap"
	headerCurrentURL         = "HX-Current-URL"
	headerRequest            = "HX-Request"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FocusCommand lists the element ids to focus, in order. The client applies
// each one and ends on the last.
type FocusCommand struct {
	IDs []string `json:"ids"`
}

// setFocusTrigger asks htmx to fire FocusEvent through header. After a swap
// it must be the settle trigger so focus lands on the new DOM.
func setFocusTrigger(c echo.Context, header string, ids []string) {
	if len(ids) == 0 {
		return
	}
	payload, err := json.Marshal(map[string]FocusCommand{FocusEvent: {IDs: ids}})
	if err != nil {
		return
	}
	c.Response().Header().Set(header, string(payload))
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get(headerRequest) == "true"
}
