package rulesRepo

import (
	"context"
	"fmt"
	"time"

	"savora/database"
	"savora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRulesRepo implements RulesRepository using MongoDB.
type MongoRulesRepo struct {
	chargeColl    *mongo.Collection
	surchargeColl *mongo.Collection
}

// NewMongoRulesRepo creates a new instance of RulesRepository using MongoDB.
func NewMongoRulesRepo() RulesRepository {
	return &MongoRulesRepo{
		chargeColl:    database.Collection("delivery_charge_rules"),
		surchargeColl: database.Collection("surcharge_rules"),
	}
}

func (r *MongoRulesRepo) GetChargeRules() ([]models.DeliveryChargeRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: 1}})
	cursor, err := r.chargeColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve charge rules: %w", err)
	}
	defer cursor.Close(ctx)
	var rules []models.DeliveryChargeRule
	for cursor.Next(ctx) {
		var rule models.DeliveryChargeRule
		if err := cursor.Decode(&rule); err != nil {
			return nil, fmt.Errorf("failed to decode charge rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return rules, nil
}

func (r *MongoRulesRepo) GetChargeRuleByID(id string) (*models.DeliveryChargeRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var rule models.DeliveryChargeRule
	if err := r.chargeColl.FindOne(ctx, bson.M{"id": id}).Decode(&rule); err != nil {
		return nil, fmt.Errorf("failed to fetch charge rule with id %s: %w", id, err)
	}
	return &rule, nil
}

func (r *MongoRulesRepo) CreateChargeRule(rule *models.DeliveryChargeRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.chargeColl.InsertOne(ctx, rule); err != nil {
		return fmt.Errorf("failed to create charge rule: %w", err)
	}
	return nil
}

func (r *MongoRulesRepo) UpdateChargeRule(rule *models.DeliveryChargeRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.chargeColl.UpdateOne(ctx, bson.M{"id": rule.ID}, bson.M{"$set": rule})
	if err != nil {
		return fmt.Errorf("failed to update charge rule with id %s: %w", rule.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("charge rule with id %s not found", rule.ID)
	}
	return nil
}

func (r *MongoRulesRepo) DeleteChargeRule(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.chargeColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete charge rule with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("charge rule with id %s not found", id)
	}
	return nil
}

func (r *MongoRulesRepo) GetSurchargeRules() ([]models.SurchargeRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.surchargeColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve surcharge rules: %w", err)
	}
	defer cursor.Close(ctx)
	var rules []models.SurchargeRule
	for cursor.Next(ctx) {
		var rule models.SurchargeRule
		if err := cursor.Decode(&rule); err != nil {
			return nil, fmt.Errorf("failed to decode surcharge rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return rules, nil
}

func (r *MongoRulesRepo) CreateSurchargeRule(rule *models.SurchargeRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.surchargeColl.InsertOne(ctx, rule); err != nil {
		return fmt.Errorf("failed to create surcharge rule: %w", err)
	}
	return nil
}

func (r *MongoRulesRepo) UpdateSurchargeRule(rule *models.SurchargeRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.surchargeColl.UpdateOne(ctx, bson.M{"id": rule.ID}, bson.M{"$set": rule})
	if err != nil {
		return fmt.Errorf("failed to update surcharge rule with id %s: %w", rule.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("surcharge rule with id %s not found", rule.ID)
	}
	return nil
}

func (r *MongoRulesRepo) DeleteSurchargeRule(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.surchargeColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete surcharge rule with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("surcharge rule with id %s not found", id)
	}
	return nil
}
