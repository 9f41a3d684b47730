package api

import (
	"net/http"

	resdto "booking-flow/internal/handler/dto/response"
	"booking-flow/internal/handler/httperr"
	"booking-flow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List services
// @Description List the bookable services
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Failure 500 {object} httperr.Response
// @Router /api/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	res, err := resdto.FromServiceViews(h.q.ListServices(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load services", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List providers
// @Description List the service providers
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ProviderResponse
// @Failure 500 {object} httperr.Response
// @Router /api/providers [get]
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	res, err := resdto.FromProviderViews(h.q.ListProviders(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load providers", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
