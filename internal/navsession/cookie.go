package navsession

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	cookieSessionName = "nav-session"
	cookieKeyID       = "id"
)

// IDFromRequest reads the navigation session id from the cookie session.
func IDFromRequest(c echo.Context) string {
	sess, err := session.Get(cookieSessionName, c)
	if err != nil || sess == nil {
		return ""
	}
	id, _ := sess.Values[cookieKeyID].(string)
	return id
}

// SaveID stores the navigation session id in the cookie session.
func SaveID(c echo.Context, id string) error {
	sess, err := session.Get(cookieSessionName, c)
	if sess == nil {
		// A cookie that no longer decodes still yields a fresh session.
		return err
	}
	if sess.Values[cookieKeyID] == id {
		return nil
	}
	sess.Values[cookieKeyID] = id
	return sess.Save(c.Request(), c.Response())
}
