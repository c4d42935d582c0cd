package zoneRepo

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

// MongoZoneRepo implements ZoneRepository using MongoDB.
type MongoZoneRepo struct {
	coll *mongo.Collection
}

// NewMongoZoneRepo creates a new instance of ZoneRepository using MongoDB.
func NewMongoZoneRepo() ZoneRepository {
	return &MongoZoneRepo{coll: database.Collection("radius_zones")}
}

func (r *MongoZoneRepo) GetByID(id string) (*models.RadiusZone, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var zone models.RadiusZone
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&zone); err != nil {
		return nil, fmt.Errorf("failed to fetch zone with id %s: %w", id, err)
	}
	return &zone, nil
}

func (r *MongoZoneRepo) GetAll() ([]models.RadiusZone, error) {
	return r.find(bson.M{})
}

func (r *MongoZoneRepo) GetActive() ([]models.RadiusZone, error) {
	return r.find(bson.M{"active": true})
}

func (r *MongoZoneRepo) find(filter bson.M) ([]models.RadiusZone, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve zones: %w", err)
	}
	defer cursor.Close(ctx)
	var zones []models.RadiusZone
	for cursor.Next(ctx) {
		var z models.RadiusZone
		if err := cursor.Decode(&z); err != nil {
			return nil, fmt.Errorf("failed to decode zone: %w", err)
		}
		zones = append(zones, z)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return zones, nil
}

func (r *MongoZoneRepo) Create(zone *models.RadiusZone) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, zone)
	if err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return nil
}

func (r *MongoZoneRepo) Update(zone *models.RadiusZone) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": zone.ID}
	update := bson.M{"$set": zone}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update zone with id %s: %w", zone.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("zone with id %s not found", zone.ID)
	}
	return nil
}

func (r *MongoZoneRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete zone with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("zone with id %s not found", id)
	}
	return nil
}
