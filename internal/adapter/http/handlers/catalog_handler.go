package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "workshop_jobs/internal/adapter/http/dto/response"
	"workshop_jobs/internal/usecase/interfaces"
)

// CatalogHandler serves the static part reference table consumed by the
// intake and customer screens.

type CatalogHandler struct {
	catalog interfaces.IPartCatalog
}

func NewCatalogHandler(catalog interfaces.IPartCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListParts(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalogParts(h.catalog.List()))
}
