package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pirayth/gardenshop/internal/catalog"
	domain "github.com/pirayth/gardenshop/internal/entity"
)

type CatalogHandler struct {
	catalog *catalog.Provider
}

func NewCatalogHandler(cat *catalog.Provider) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// Pets lists the pet catalog with optional ?search= substring filter and
// ?sort=low|high price ordering.
func (h *CatalogHandler) Pets(c *gin.Context) {
	entries := h.catalog.List(
		domain.KindPet,
		c.Query("search"),
		catalog.SortOrder(c.Query("sort")),
	)
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

func (h *CatalogHandler) Sheckles(c *gin.Context) {
	entries := h.catalog.List(domain.KindSheckles, "", catalog.SortNone)
	c.JSON(http.StatusOK, gin.H{"items": entries})
}
