package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savora/database"
	"savora/models"
	"savora/services/catalog"
	"savora/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	mainColl        *mongo.Collection
	categoryColl    *mongo.Collection
	subcategoryColl *mongo.Collection
	itemColl        *mongo.Collection

	mainSchedColl *mongo.Collection
	catSchedColl  *mongo.Collection
	subSchedColl  *mongo.Collection
	itemSchedColl *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	return &MongoCatalogRepo{
		mainColl:        database.Collection("main_categories"),
		categoryColl:    database.Collection("categories"),
		subcategoryColl: database.Collection("subcategories"),
		itemColl:        database.Collection("items"),
		mainSchedColl:   database.Collection("main_category_schedules"),
		catSchedColl:    database.Collection("category_schedules"),
		subSchedColl:    database.Collection("subcategory_schedules"),
		itemSchedColl:   database.Collection("item_schedules"),
	}
}

func (r *MongoCatalogRepo) GetMainCategories() ([]models.MainCategory, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.mainColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve main categories: %w", err)
	}
	defer cursor.Close(ctx)
	var mains []models.MainCategory
	for cursor.Next(ctx) {
		var mc models.MainCategory
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("failed to decode main category: %w", err)
		}
		mains = append(mains, mc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	now := time.Now()
	r.reactivate(r.mainColl, catalog.PendingMainCategoryReactivations(mains, now))
	for i := range mains {
		if catalog.PendingReactivation(mains[i].Active, mains[i].ReactivateOn, now) {
			mains[i].Active = true
			mains[i].ReactivateOn = ""
		}
	}
	return mains, nil
}

func (r *MongoCatalogRepo) GetCategories() ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.categoryColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)
	var categories []models.Category
	for cursor.Next(ctx) {
		var c models.Category
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	now := time.Now()
	r.reactivate(r.categoryColl, catalog.PendingCategoryReactivations(categories, now))
	for i := range categories {
		if catalog.PendingReactivation(categories[i].Active, categories[i].ReactivateOn, now) {
			categories[i].Active = true
			categories[i].ReactivateOn = ""
		}
	}
	return categories, nil
}

func (r *MongoCatalogRepo) GetSubcategories() ([]models.Subcategory, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.subcategoryColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve subcategories: %w", err)
	}
	defer cursor.Close(ctx)
	var subs []models.Subcategory
	for cursor.Next(ctx) {
		var sc models.Subcategory
		if err := cursor.Decode(&sc); err != nil {
			return nil, fmt.Errorf("failed to decode subcategory: %w", err)
		}
		subs = append(subs, sc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return subs, nil
}

func (r *MongoCatalogRepo) GetItems() ([]models.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.itemColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve items: %w", err)
	}
	defer cursor.Close(ctx)
	var items []models.Item
	for cursor.Next(ctx) {
		var it models.Item
		if err := cursor.Decode(&it); err != nil {
			return nil, fmt.Errorf("failed to decode item: %w", err)
		}
		items = append(items, it)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	now := time.Now()
	r.reactivate(r.itemColl, catalog.PendingItemReactivations(items, now))
	for i := range items {
		if catalog.PendingReactivation(items[i].Active, items[i].ReactivateOn, now) {
			items[i].Active = true
			items[i].ReactivateOn = ""
		}
	}
	return items, nil
}

func (r *MongoCatalogRepo) GetItemByID(id string) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var item models.Item
	if err := r.itemColl.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to fetch item with id %s: %w", id, err)
	}
	return &item, nil
}

// reactivate persists the lazy reactivation flip for the given ids.
// Failures are logged and swallowed: the stale record simply gets
// reconsidered on the next read.
func (r *MongoCatalogRepo) reactivate(coll *mongo.Collection, ids []string) {
	if len(ids) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{"active": true, "reactivateOn": ""}}
	if _, err := coll.UpdateMany(ctx, filter, update); err != nil {
		utils.GetLogger().Warn("reactivation write-back failed",
			zap.String("collection", coll.Name()),
			zap.Strings("ids", ids),
			zap.Error(err))
	}
}

func (r *MongoCatalogRepo) CreateMainCategory(mc *models.MainCategory) error {
	return r.insert(r.mainColl, mc, "main category")
}

func (r *MongoCatalogRepo) CreateCategory(c *models.Category) error {
	return r.insert(r.categoryColl, c, "category")
}

func (r *MongoCatalogRepo) CreateSubcategory(sc *models.Subcategory) error {
	return r.insert(r.subcategoryColl, sc, "subcategory")
}

func (r *MongoCatalogRepo) CreateItem(item *models.Item) error {
	return r.insert(r.itemColl, item, "item")
}

func (r *MongoCatalogRepo) insert(coll *mongo.Collection, doc any, kind string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create %s: %w", kind, err)
	}
	return nil
}

func (r *MongoCatalogRepo) UpdateMainCategory(mc *models.MainCategory) error {
	return r.updateByID(r.mainColl, mc.ID, mc, "main category")
}

func (r *MongoCatalogRepo) UpdateCategory(c *models.Category) error {
	return r.updateByID(r.categoryColl, c.ID, c, "category")
}

func (r *MongoCatalogRepo) UpdateSubcategory(sc *models.Subcategory) error {
	return r.updateByID(r.subcategoryColl, sc.ID, sc, "subcategory")
}

func (r *MongoCatalogRepo) UpdateItem(item *models.Item) error {
	return r.updateByID(r.itemColl, item.ID, item, "item")
}

func (r *MongoCatalogRepo) updateByID(coll *mongo.Collection, id string, doc any, kind string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("failed to update %s with id %s: %w", kind, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s with id %s not found", kind, id)
	}
	return nil
}

func (r *MongoCatalogRepo) DeleteMainCategory(id string) error {
	return r.deleteByID(r.mainColl, id, "main category")
}

func (r *MongoCatalogRepo) DeleteCategory(id string) error {
	return r.deleteByID(r.categoryColl, id, "category")
}

func (r *MongoCatalogRepo) DeleteSubcategory(id string) error {
	return r.deleteByID(r.subcategoryColl, id, "subcategory")
}

func (r *MongoCatalogRepo) DeleteItem(id string) error {
	return r.deleteByID(r.itemColl, id, "item")
}

func (r *MongoCatalogRepo) deleteByID(coll *mongo.Collection, id string, kind string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s with id %s: %w", kind, id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s with id %s not found", kind, id)
	}
	return nil
}

func (r *MongoCatalogRepo) GetMainCategorySchedule(ownerID string) (*models.WeeklySchedule, error) {
	return r.findWeekly(r.mainSchedColl, ownerID)
}

func (r *MongoCatalogRepo) GetCategorySchedule(ownerID string) (*models.WeeklySchedule, error) {
	return r.findWeekly(r.catSchedColl, ownerID)
}

func (r *MongoCatalogRepo) GetSubcategorySchedule(ownerID string) (*models.WeeklySchedule, error) {
	return r.findWeekly(r.subSchedColl, ownerID)
}

// findWeekly returns nil, nil when no schedule record exists: the
// "no restriction configured" default the visibility engine expects.
func (r *MongoCatalogRepo) findWeekly(coll *mongo.Collection, ownerID string) (*models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var sched models.WeeklySchedule
	err := coll.FindOne(ctx, bson.M{"ownerId": ownerID}).Decode(&sched)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for owner %s: %w", ownerID, err)
	}
	return &sched, nil
}

func (r *MongoCatalogRepo) GetItemSchedule(itemID string) (*models.ItemSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var sched models.ItemSchedule
	err := r.itemSchedColl.FindOne(ctx, bson.M{"itemId": itemID}).Decode(&sched)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item schedule for %s: %w", itemID, err)
	}
	return &sched, nil
}

func (r *MongoCatalogRepo) UpsertMainCategorySchedule(s *models.WeeklySchedule) error {
	return r.upsertWeekly(r.mainSchedColl, s)
}

func (r *MongoCatalogRepo) UpsertCategorySchedule(s *models.WeeklySchedule) error {
	return r.upsertWeekly(r.catSchedColl, s)
}

func (r *MongoCatalogRepo) UpsertSubcategorySchedule(s *models.WeeklySchedule) error {
	return r.upsertWeekly(r.subSchedColl, s)
}

func (r *MongoCatalogRepo) upsertWeekly(coll *mongo.Collection, s *models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := options.Update().SetUpsert(true)
	_, err := coll.UpdateOne(ctx, bson.M{"ownerId": s.OwnerID}, bson.M{"$set": s}, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert schedule for owner %s: %w", s.OwnerID, err)
	}
	return nil
}

func (r *MongoCatalogRepo) UpsertItemSchedule(s *models.ItemSchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := options.Update().SetUpsert(true)
	_, err := r.itemSchedColl.UpdateOne(ctx, bson.M{"itemId": s.ItemID}, bson.M{"$set": s}, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert item schedule for %s: %w", s.ItemID, err)
	}
	return nil
}

func (r *MongoCatalogRepo) DeleteMainCategorySchedule(ownerID string) error {
	return r.deleteWeekly(r.mainSchedColl, ownerID)
}

func (r *MongoCatalogRepo) DeleteCategorySchedule(ownerID string) error {
	return r.deleteWeekly(r.catSchedColl, ownerID)
}

func (r *MongoCatalogRepo) DeleteSubcategorySchedule(ownerID string) error {
	return r.deleteWeekly(r.subSchedColl, ownerID)
}

func (r *MongoCatalogRepo) deleteWeekly(coll *mongo.Collection, ownerID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := coll.DeleteOne(ctx, bson.M{"ownerId": ownerID}); err != nil {
		return fmt.Errorf("failed to delete schedule for owner %s: %w", ownerID, err)
	}
	return nil
}

func (r *MongoCatalogRepo) DeleteItemSchedule(itemID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.itemSchedColl.DeleteOne(ctx, bson.M{"itemId": itemID}); err != nil {
		return fmt.Errorf("failed to delete item schedule for %s: %w", itemID, err)
	}
	return nil
}
