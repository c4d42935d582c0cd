package handlers

import (
	"net/http"

	catalogRepo "savora/database/repository/catalog"
	"savora/models"
	"savora/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogAdminHandler serves the back-office CRUD for the catalog
// hierarchy and its weekly schedules.
type CatalogAdminHandler struct {
	Repo catalogRepo.CatalogRepository
}

// NewCatalogAdminHandler creates a CatalogAdminHandler.
func NewCatalogAdminHandler(repo catalogRepo.CatalogRepository) *CatalogAdminHandler {
	return &CatalogAdminHandler{Repo: repo}
}

func (h *CatalogAdminHandler) ListMainCategoriesHandler(c *gin.Context) {
	mains, err := h.Repo.GetMainCategories()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list main categories", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"mainCategories": mains})
}

func (h *CatalogAdminHandler) CreateMainCategoryHandler(c *gin.Context) {
	var mc models.MainCategory
	if err := c.ShouldBindJSON(&mc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	mc.ID = uuid.New().String()
	if err := h.Repo.CreateMainCategory(&mc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create main category", err.Error())
		return
	}
	c.JSON(http.StatusCreated, mc)
}

func (h *CatalogAdminHandler) UpdateMainCategoryHandler(c *gin.Context) {
	var mc models.MainCategory
	if err := c.ShouldBindJSON(&mc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	mc.ID = c.Param("id")
	if err := h.Repo.UpdateMainCategory(&mc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update main category", err.Error())
		return
	}
	c.JSON(http.StatusOK, mc)
}

func (h *CatalogAdminHandler) DeleteMainCategoryHandler(c *gin.Context) {
	if err := h.Repo.DeleteMainCategory(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete main category", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *CatalogAdminHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.Repo.GetCategories()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list categories", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CatalogAdminHandler) CreateCategoryHandler(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	cat.ID = uuid.New().String()
	if err := h.Repo.CreateCategory(&cat); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create category", err.Error())
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CatalogAdminHandler) UpdateCategoryHandler(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	cat.ID = c.Param("id")
	if err := h.Repo.UpdateCategory(&cat); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update category", err.Error())
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CatalogAdminHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.Repo.DeleteCategory(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete category", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *CatalogAdminHandler) ListSubcategoriesHandler(c *gin.Context) {
	subs, err := h.Repo.GetSubcategories()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list subcategories", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategories": subs})
}

func (h *CatalogAdminHandler) CreateSubcategoryHandler(c *gin.Context) {
	var sc models.Subcategory
	if err := c.ShouldBindJSON(&sc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sc.ID = uuid.New().String()
	if err := h.Repo.CreateSubcategory(&sc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create subcategory", err.Error())
		return
	}
	c.JSON(http.StatusCreated, sc)
}

func (h *CatalogAdminHandler) UpdateSubcategoryHandler(c *gin.Context) {
	var sc models.Subcategory
	if err := c.ShouldBindJSON(&sc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sc.ID = c.Param("id")
	if err := h.Repo.UpdateSubcategory(&sc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update subcategory", err.Error())
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (h *CatalogAdminHandler) DeleteSubcategoryHandler(c *gin.Context) {
	if err := h.Repo.DeleteSubcategory(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete subcategory", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *CatalogAdminHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.Repo.GetItems()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list items", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *CatalogAdminHandler) CreateItemHandler(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	item.ID = uuid.New().String()
	if err := h.Repo.CreateItem(&item); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create item", err.Error())
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogAdminHandler) UpdateItemHandler(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	item.ID = c.Param("id")
	if err := h.Repo.UpdateItem(&item); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update item", err.Error())
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogAdminHandler) DeleteItemHandler(c *gin.Context) {
	if err := h.Repo.DeleteItem(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete item", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// Schedule endpoints. The level path segment selects which collection the
// weekly schedule belongs to.

func (h *CatalogAdminHandler) UpsertScheduleHandler(c *gin.Context) {
	var sched models.WeeklySchedule
	if err := c.ShouldBindJSON(&sched); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sched.OwnerID = c.Param("id")

	var err error
	switch c.Param("level") {
	case "main-categories":
		err = h.Repo.UpsertMainCategorySchedule(&sched)
	case "categories":
		err = h.Repo.UpsertCategorySchedule(&sched)
	case "subcategories":
		err = h.Repo.UpsertSubcategorySchedule(&sched)
	default:
		utils.JSONError(c, http.StatusBadRequest, "unknown schedule level", c.Param("level"))
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, sched)
}

func (h *CatalogAdminHandler) DeleteScheduleHandler(c *gin.Context) {
	var err error
	switch c.Param("level") {
	case "main-categories":
		err = h.Repo.DeleteMainCategorySchedule(c.Param("id"))
	case "categories":
		err = h.Repo.DeleteCategorySchedule(c.Param("id"))
	case "subcategories":
		err = h.Repo.DeleteSubcategorySchedule(c.Param("id"))
	default:
		utils.JSONError(c, http.StatusBadRequest, "unknown schedule level", c.Param("level"))
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *CatalogAdminHandler) UpsertItemScheduleHandler(c *gin.Context) {
	var sched models.ItemSchedule
	if err := c.ShouldBindJSON(&sched); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sched.ItemID = c.Param("id")
	if err := h.Repo.UpsertItemSchedule(&sched); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save item schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, sched)
}

func (h *CatalogAdminHandler) DeleteItemScheduleHandler(c *gin.Context) {
	if err := h.Repo.DeleteItemSchedule(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete item schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
