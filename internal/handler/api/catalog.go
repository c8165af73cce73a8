package api

import (
	"errors"
	"net/http"

	resdto "bookingcore/internal/handler/dto/response"
	"bookingcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary Get booking catalog
// @Description Public booking page data: active services, plus active staff when the business runs the staff module
// @Tags catalog
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {object} resdto.CatalogResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /businesses/{businessId}/catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid business ID format",
		})
		return
	}

	view, err := h.catalogQueries.Catalog(c.Request.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Business not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCatalogView(view))
}
