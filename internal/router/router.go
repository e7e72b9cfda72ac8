package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/venue-booking/internal/handler" // import the handlers that implement page logic
)

// Register wires every page of the booking board onto the provided Echo
// instance. Static segments such as /venues/create are registered
// alongside the parameterised routes; Echo matches static paths before
// the :id parameter.
func Register(e *echo.Echo, v *handler.VenueHandler, a *handler.ArtistHandler, s *handler.ShowHandler) {
	e.GET("/", handler.Home)
	e.GET("/healthz", handler.Health)

	// Venues
	e.GET("/venues", v.Board)
	e.POST("/venues/search", v.Search)
	e.GET("/venues/create", v.CreateForm)
	e.POST("/venues/create", v.Create)
	e.GET("/venues/:id", v.Detail)
	e.DELETE("/venues/:id", v.Delete)
	e.GET("/venues/:id/edit", v.EditForm)
	e.POST("/venues/:id/edit", v.Edit)

	// Artists
	e.GET("/artists", a.List)
	e.POST("/artists/search", a.Search)
	e.GET("/artists/create", a.CreateForm)
	e.POST("/artists/create", a.Create)
	e.GET("/artists/:id", a.Detail)
	e.GET("/artists/:id/edit", a.EditForm)
	e.POST("/artists/:id/edit", a.Edit)

	// Shows
	e.GET("/shows", s.List)
	e.GET("/shows/create", s.CreateForm)
	e.POST("/shows/create", s.Create)
}
