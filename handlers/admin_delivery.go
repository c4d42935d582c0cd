package handlers

import (
	"net/http"

	rulesRepo "savora/database/repository/rules"
	zoneRepo "savora/database/repository/zone"
	"savora/models"
	"savora/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeliveryAdminHandler serves the back-office CRUD for zones, charge
// rules, and surcharge rules.
type DeliveryAdminHandler struct {
	Zones zoneRepo.ZoneRepository
	Rules rulesRepo.RulesRepository
}

// NewDeliveryAdminHandler creates a DeliveryAdminHandler.
func NewDeliveryAdminHandler(zones zoneRepo.ZoneRepository, rules rulesRepo.RulesRepository) *DeliveryAdminHandler {
	return &DeliveryAdminHandler{Zones: zones, Rules: rules}
}

func (h *DeliveryAdminHandler) ListZonesHandler(c *gin.Context) {
	zones, err := h.Zones.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list zones", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"zones": zones})
}

func (h *DeliveryAdminHandler) CreateZoneHandler(c *gin.Context) {
	var zone models.RadiusZone
	if err := c.ShouldBindJSON(&zone); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	zone.ID = uuid.New().String()
	if err := h.Zones.Create(&zone); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create zone", err.Error())
		return
	}
	c.JSON(http.StatusCreated, zone)
}

func (h *DeliveryAdminHandler) UpdateZoneHandler(c *gin.Context) {
	var zone models.RadiusZone
	if err := c.ShouldBindJSON(&zone); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	zone.ID = c.Param("id")
	if err := h.Zones.Update(&zone); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update zone", err.Error())
		return
	}
	c.JSON(http.StatusOK, zone)
}

func (h *DeliveryAdminHandler) DeleteZoneHandler(c *gin.Context) {
	if err := h.Zones.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete zone", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *DeliveryAdminHandler) ListChargeRulesHandler(c *gin.Context) {
	rules, err := h.Rules.GetChargeRules()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list charge rules", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (h *DeliveryAdminHandler) CreateChargeRuleHandler(c *gin.Context) {
	var rule models.DeliveryChargeRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if rule.MilesStart > rule.MilesEnd {
		utils.JSONError(c, http.StatusBadRequest, "invalid distance band", "milesStart must not exceed milesEnd")
		return
	}
	rule.ID = uuid.New().String()
	if err := h.Rules.CreateChargeRule(&rule); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create charge rule", err.Error())
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *DeliveryAdminHandler) UpdateChargeRuleHandler(c *gin.Context) {
	var rule models.DeliveryChargeRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if rule.MilesStart > rule.MilesEnd {
		utils.JSONError(c, http.StatusBadRequest, "invalid distance band", "milesStart must not exceed milesEnd")
		return
	}
	rule.ID = c.Param("id")
	if err := h.Rules.UpdateChargeRule(&rule); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update charge rule", err.Error())
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *DeliveryAdminHandler) DeleteChargeRuleHandler(c *gin.Context) {
	if err := h.Rules.DeleteChargeRule(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete charge rule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *DeliveryAdminHandler) ListSurchargesHandler(c *gin.Context) {
	rules, err := h.Rules.GetSurchargeRules()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list surcharge rules", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"surcharges": rules})
}

func (h *DeliveryAdminHandler) CreateSurchargeHandler(c *gin.Context) {
	var rule models.SurchargeRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	rule.ID = uuid.New().String()
	if err := h.Rules.CreateSurchargeRule(&rule); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create surcharge rule", err.Error())
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *DeliveryAdminHandler) UpdateSurchargeHandler(c *gin.Context) {
	var rule models.SurchargeRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	rule.ID = c.Param("id")
	if err := h.Rules.UpdateSurchargeRule(&rule); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update surcharge rule", err.Error())
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *DeliveryAdminHandler) DeleteSurchargeHandler(c *gin.Context) {
	if err := h.Rules.DeleteSurchargeRule(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete surcharge rule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
