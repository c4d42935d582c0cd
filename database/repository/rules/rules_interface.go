package rulesRepo

import (
	"savora/models"
)

// RulesRepository defines data access for charge and surcharge rules.
type RulesRepository interface {
	// GetChargeRules retrieves all charge rules ordered by priority.
	// Order is the first-match tie-break for quoting.
	GetChargeRules() ([]models.DeliveryChargeRule, error)
	// GetChargeRuleByID retrieves a charge rule by its unique ID.
	GetChargeRuleByID(id string) (*models.DeliveryChargeRule, error)
	// CreateChargeRule inserts a new charge rule.
	CreateChargeRule(rule *models.DeliveryChargeRule) error
	// UpdateChargeRule modifies an existing charge rule.
	UpdateChargeRule(rule *models.DeliveryChargeRule) error
	// DeleteChargeRule removes a charge rule by its ID.
	DeleteChargeRule(id string) error

	// GetSurchargeRules retrieves all surcharge rules.
	GetSurchargeRules() ([]models.SurchargeRule, error)
	// CreateSurchargeRule inserts a new surcharge rule.
	CreateSurchargeRule(rule *models.SurchargeRule) error
	// UpdateSurchargeRule modifies an existing surcharge rule.
	UpdateSurchargeRule(rule *models.SurchargeRule) error
	// DeleteSurchargeRule removes a surcharge rule by its ID.
	DeleteSurchargeRule(id string) error
}
