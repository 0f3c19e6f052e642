package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/letstracker/journal-engine/internal/core/domain"
)

// CatalogHandler exposes the deployment's habit catalog so clients can render
// the journal form without hardcoding the habit list.
type CatalogHandler struct {
	catalog *domain.Catalog
}

func NewCatalogHandler(catalog *domain.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/habits", h.List)
}

func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"habits": h.catalog.Habits()})
}
