package fixtures

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"triptactix/middleware"
	"triptactix/services"
)

// NewRouter serves the travel backend's HTTP contract from generated data.
func NewRouter(logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging(logger))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "TripTactix mock backend"})
	})
	r.POST("/api/search-flights", searchFlights)
	r.POST("/api/search-hotels", searchHotels)
	r.GET("/rag", rag)
	return r
}

func searchFlights(c *gin.Context) {
	var req services.FlightSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.FlightSearchResponse{
		Success:         true,
		OutboundFlights: FlightOffers(req),
	})
}

func searchHotels(c *gin.Context) {
	var req services.HotelSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.HotelSearchResponse{
		Success: true,
		Hotels:  HotelOffers(req),
	})
}

func rag(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "query is required"})
		return
	}
	c.JSON(http.StatusOK, services.RAGResponse{Itinerary: Itinerary(query)})
}
