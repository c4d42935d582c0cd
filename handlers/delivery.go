package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"savora/config"
	rulesRepo "savora/database/repository/rules"
	zoneRepo "savora/database/repository/zone"
	"savora/models"
	"savora/services/delivery"
	"savora/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const activeZonesCacheKey = "zones:active"

// DeliveryHandler serves the quote, checkability, and estimate endpoints.
type DeliveryHandler struct {
	Engine delivery.QuoteEngine
	Zones  zoneRepo.ZoneRepository
	Rules  rulesRepo.RulesRepository
	Cache  *redis.Client
	Quotes *redis.Client
	Logger *zap.Logger
}

// NewDeliveryHandler creates a DeliveryHandler.
func NewDeliveryHandler(engine delivery.QuoteEngine, zones zoneRepo.ZoneRepository, rules rulesRepo.RulesRepository, cache, quotes *redis.Client, logger *zap.Logger) *DeliveryHandler {
	return &DeliveryHandler{Engine: engine, Zones: zones, Rules: rules, Cache: cache, Quotes: quotes, Logger: logger}
}

// QuoteHandler prices a delivery address and caches the quote under a
// session id for the checkout flow to pick up.
func (h *DeliveryHandler) QuoteHandler(c *gin.Context) {
	var input struct {
		Address *models.GeoPoint `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	zones, err := h.Zones.GetActive()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load zones", err.Error())
		return
	}
	chargeRules, err := h.Rules.GetChargeRules()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load charge rules", err.Error())
		return
	}
	surcharges, err := h.Rules.GetSurchargeRules()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load surcharge rules", err.Error())
		return
	}

	quote := h.Engine.BuildQuote(input.Address, zones, chargeRules, surcharges)
	if quote == nil {
		// No usable coordinates yet; the client retries once the address is set.
		utils.JSONError(c, http.StatusUnprocessableEntity, "address has no coordinates", "a delivery address with latitude and longitude is required")
		return
	}

	sessionID := uuid.New().String()
	if data, err := json.Marshal(quote); err == nil {
		ttl := time.Duration(config.AppConfig.QuoteSessionTTL) * time.Second
		if err := h.Quotes.Set(c.Request.Context(), "quote:"+sessionID, data, ttl).Err(); err != nil {
			h.Logger.Warn("failed to cache quote session", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": sessionID,
		"quote":     quote,
	})
}

// CheckHandler is the reduced pre-checkout surface: zone match only.
// The active-zone snapshot is cached briefly since this endpoint is hit
// on every address keystroke.
func (h *DeliveryHandler) CheckHandler(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("longitude"), 64)
	if errLat != nil || errLon != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid coordinates", "latitude and longitude query parameters are required")
		return
	}

	zones, err := h.activeZones(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load zones", err.Error())
		return
	}

	check := h.Engine.CheckDeliverability(models.GeoPoint{Latitude: lat, Longitude: lon}, zones)
	c.JSON(http.StatusOK, check)
}

// EstimateHandler is the back-office calculator: distance plus optional
// parcel size against a zone's charge rules.
func (h *DeliveryHandler) EstimateHandler(c *gin.Context) {
	var input struct {
		DistanceMiles float64 `json:"distanceMiles"`
		ZoneID        string  `json:"zoneId"`
		ParcelSize    string  `json:"parcelSize"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	chargeRules, err := h.Rules.GetChargeRules()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load charge rules", err.Error())
		return
	}

	now := time.Now()
	price, matched := delivery.EstimateCharge(input.DistanceMiles, input.ZoneID, chargeRules, now.Hour()*60+now.Minute())
	if matched && input.ParcelSize != "" {
		price = delivery.ParcelAdjustedCharge(price, input.ParcelSize)
	}

	c.JSON(http.StatusOK, gin.H{
		"matched": matched,
		"price":   price,
	})
}

// activeZones returns the active-zone list, serving from the Redis
// snapshot when fresh. Cache failures fall through to Mongo.
func (h *DeliveryHandler) activeZones(ctx context.Context) ([]models.RadiusZone, error) {
	if data, err := h.Cache.Get(ctx, activeZonesCacheKey).Bytes(); err == nil {
		var zones []models.RadiusZone
		if err := json.Unmarshal(data, &zones); err == nil {
			return zones, nil
		}
	}

	zones, err := h.Zones.GetActive()
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(zones); err == nil {
		ttl := time.Duration(config.AppConfig.ZoneSnapshotTTL) * time.Second
		if err := h.Cache.Set(ctx, activeZonesCacheKey, data, ttl).Err(); err != nil {
			h.Logger.Warn("failed to cache zone snapshot", zap.Error(err))
		}
	}
	return zones, nil
}
