package handler

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// flashSession is the cookie session that carries one-shot notification
// messages across the redirect after a write operation.
const flashSession = "booking_flash"

// addFlash queues a notification message for the next rendered page.
// Failures are swallowed: a lost flash must never fail the operation it
// reports on.
func addFlash(c echo.Context, msg string) {
	sess, err := session.Get(flashSession, c)
	if err != nil {
		return
	}
	sess.Options = &sessions.Options{Path: "/", MaxAge: 300, HttpOnly: true}
	sess.AddFlash(msg)
	_ = sess.Save(c.Request(), c.Response())
}

// takeFlashes drains and returns the queued notification messages.
func takeFlashes(c echo.Context) []string {
	sess, err := session.Get(flashSession, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) > 0 {
		// Flashes() removes the messages from the session; persist that.
		_ = sess.Save(c.Request(), c.Response())
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
