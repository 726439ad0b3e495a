package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triptactix/catalog"
)

type popularRoute struct {
	catalog.PopularRoute
	FromCode string `json:"from_code,omitempty"`
	ToCode   string `json:"to_code,omitempty"`
}

func (h *Handler) Airports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"airports": catalog.FilterAirports(c.Query("q"))})
}

func (h *Handler) Destinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": catalog.FilterDestinations(c.Query("q"))})
}

// PopularRoutes lists the route cards with airport codes resolved so a
// client can prefill the flight form from a card.
func (h *Handler) PopularRoutes(c *gin.Context) {
	routes := catalog.PopularRoutes()
	out := make([]popularRoute, 0, len(routes))
	for _, r := range routes {
		pr := popularRoute{PopularRoute: r}
		if a, ok := catalog.AirportForCity(r.From); ok {
			pr.FromCode = a.Code
		}
		if a, ok := catalog.AirportForCity(r.To); ok {
			pr.ToCode = a.Code
		}
		out = append(out, pr)
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
