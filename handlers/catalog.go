package handlers

import (
	"net/http"
	"strings"

	"savora/services/catalog"
	"savora/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the customer-facing catalog reads.
type CatalogHandler struct {
	Browse catalog.BrowseService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(browse catalog.BrowseService) *CatalogHandler {
	return &CatalogHandler{Browse: browse}
}

// ListItemsHandler returns every item visible in listings right now.
// The repository layer has already persisted any pending reactivations
// by the time this responds.
func (h *CatalogHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.Browse.VisibleItems()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list items", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetItemHandler resolves a deep link. Schedule windows do not apply
// here; only activation state can make the link dead.
func (h *CatalogHandler) GetItemHandler(c *gin.Context) {
	id := c.Param("id")
	item, err := h.Browse.AccessibleItem(id)
	if err != nil {
		if strings.Contains(err.Error(), "no documents") {
			utils.JSONError(c, http.StatusNotFound, "item not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch item", err.Error())
		return
	}
	if item == nil {
		utils.JSONError(c, http.StatusNotFound, "item not available", id)
		return
	}
	c.JSON(http.StatusOK, item)
}
