package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "demosite-flash"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// Flashes holds the one-shot messages pending for a visitor.
type Flashes struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f Flashes) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if sess == nil {
		c.Logger().Warnf("flash session unavailable: %v", err)
		return
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("failed to save flash session: %v", err)
	}
}

// SetFlashSuccess queues a success message for the next page render.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError queues an error message for the next page render.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashes retrieves and clears pending messages.
func GetFlashes(c echo.Context) Flashes {
	var f Flashes
	sess, _ := session.Get(flashSessionName, c)
	if sess == nil {
		return f
	}
	f.Success = toStrings(sess.Flashes(flashKeySuccess))
	f.Error = toStrings(sess.Flashes(flashKeyError))
	if !f.Empty() {
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			c.Logger().Warnf("failed to clear flash session: %v", err)
		}
	}
	return f
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
