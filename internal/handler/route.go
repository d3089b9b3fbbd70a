package handler

import (
	"context"
	"errors"
	"net/http"

	"food-analyzer-api/internal/models"
	"food-analyzer-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RouteHandler handles route lookups
type RouteHandler struct {
	service RouteService
}

// RouteService interface for dependency injection
type RouteService interface {
	ShortestRoute(ctx context.Context, origin, destination string) (*models.RouteResult, error)
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(svc RouteService) *RouteHandler {
	return &RouteHandler{service: svc}
}

// Route godoc
// @Summary      Traffic-adjusted driving route
// @Tags         route
// @Produce      json
// @Param        origin       query  string  true  "Origin address"
// @Param        destination  query  string  true  "Destination address"
// @Success      200  {object}  models.RouteResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/route [get]
func (h *RouteHandler) Route(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'origin' and 'destination'"})
		return
	}

	origin, destination := req.Origin, req.Destination
	route, err := h.service.ShortestRoute(c.Request.Context(), origin, destination)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAddressNotFound), errors.Is(err, service.ErrRouteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			log.Error().Err(err).Str("origin", origin).Str("destination", destination).Msg("route lookup failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, route)
}
