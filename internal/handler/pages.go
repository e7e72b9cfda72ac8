package handler // handler contains the HTTP handlers for the booking board

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Home renders the landing page.
func Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"Flashes": takeFlashes(c),
	})
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It returns
// a plain text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// NewHTTPErrorHandler maps unhandled errors to the rendered 404 and 500
// pages while keeping the corresponding status codes. Anything that is
// not an *echo.HTTPError is treated as a server error.
func NewHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}
		if code >= http.StatusInternalServerError {
			e.Logger.Error(err)
		}
		page := "error500.html"
		if code == http.StatusNotFound {
			page = "error404.html"
		}
		if rerr := c.Render(code, page, echo.Map{"Code": code}); rerr != nil {
			e.Logger.Error(rerr)
			_ = c.NoContent(code)
		}
	}
}

// parseID extracts the numeric :id route parameter.
func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound)
	}
	return id, nil
}
