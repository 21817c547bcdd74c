package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/repository"
)

type CatalogHandler struct {
	catalog repository.CatalogRepository
}

func NewCatalogHandler(catalog repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) GetOutlets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"outlets": h.catalog.Outlets()})
}

type brandGroup struct {
	Brand    string           `json:"brand"`
	Products []domain.Product `json:"products"`
}

// GetProducts returns the catalog grouped into brand sections, declaration
// order, the shape both the entry form and the report grid render from.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var groups []brandGroup
	index := make(map[string]int)
	for _, p := range h.catalog.Products() {
		i, ok := index[p.Brand]
		if !ok {
			i = len(groups)
			index[p.Brand] = i
			groups = append(groups, brandGroup{Brand: p.Brand})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	c.JSON(http.StatusOK, gin.H{"brands": groups})
}
