package retreatRepo

import (
	"fmt"
	"time"

	"veranera/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new retreat document.
func (r *MongoRetreatRepo) Create(retreat *models.Retreat) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	retreat.CreatedAt = now
	retreat.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, retreat)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("retreat slug %q already exists: %w", retreat.Slug, err)
		}
		return fmt.Errorf("failed to create retreat: %w", err)
	}
	return nil
}

// Update replaces an existing retreat document.
func (r *MongoRetreatRepo) Update(retreat *models.Retreat) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	retreat.UpdatedAt = time.Now()
	filter := bson.M{"id": retreat.ID}
	update := bson.M{"$set": retreat}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update retreat with id %s: %w", retreat.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("retreat with id %s not found", retreat.ID)
	}
	return nil
}

// Delete removes a retreat document by its ID.
func (r *MongoRetreatRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete retreat with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("retreat with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a retreat by its unique ID. Returns nil when absent.
func (r *MongoRetreatRepo) GetByID(id string) (*models.Retreat, error) {
	return r.findOne(bson.M{"id": id})
}

// GetBySlug retrieves a retreat by its slug. Returns nil when absent.
func (r *MongoRetreatRepo) GetBySlug(slug string) (*models.Retreat, error) {
	return r.findOne(bson.M{"slug": slug})
}

// GetByRoomTypeID retrieves the retreat embedding the given room type.
func (r *MongoRetreatRepo) GetByRoomTypeID(roomTypeID string) (*models.Retreat, error) {
	return r.findOne(bson.M{"roomTypes.id": roomTypeID})
}

func (r *MongoRetreatRepo) findOne(filter bson.M) (*models.Retreat, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var retreat models.Retreat
	if err := r.coll.FindOne(ctx, filter).Decode(&retreat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch retreat: %w", err)
	}
	return &retreat, nil
}

// GetAll retrieves all retreats, newest first.
func (r *MongoRetreatRepo) GetAll() ([]models.Retreat, error) {
	return r.findMany(bson.M{})
}

// GetPublished retrieves only live retreats, newest first.
func (r *MongoRetreatRepo) GetPublished() ([]models.Retreat, error) {
	return r.findMany(bson.M{"published": true})
}

func (r *MongoRetreatRepo) findMany(filter bson.M) ([]models.Retreat, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve retreats: %w", err)
	}
	defer cursor.Close(ctx)

	var retreats []models.Retreat
	for cursor.Next(ctx) {
		var rt models.Retreat
		if err := cursor.Decode(&rt); err != nil {
			return nil, fmt.Errorf("failed to decode retreat: %w", err)
		}
		retreats = append(retreats, rt)
	}
	return retreats, nil
}

// SetPublished flips the published flag by slug.
func (r *MongoRetreatRepo) SetPublished(slug string, published bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"slug": slug}
	update := bson.M{"$set": bson.M{"published": published, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set published on retreat %s: %w", slug, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("retreat with slug %s not found", slug)
	}
	return nil
}
