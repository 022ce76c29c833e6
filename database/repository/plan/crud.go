package planRepo

import (
	"context"
	"errors"
	"time"

	"tripflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new saved plan and returns its ID.
func (r *mongoPlanRepo) Create(ctx context.Context, plan models.SavedPlan) (string, error) {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.Status == "" {
		plan.Status = models.PlanStatusPending
	}
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, plan)
	if err != nil {
		return "", err
	}
	return plan.ID, nil
}

// SetPlan attaches a generated itinerary to a saved plan and marks it ready.
func (r *mongoPlanRepo) SetPlan(ctx context.Context, id string, plan *models.TripPlan, fallback bool) error {
	update := bson.M{"$set": bson.M{
		"plan":      plan,
		"status":    models.PlanStatusReady,
		"fallback":  fallback,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("saved plan not found")
	}
	return nil
}

// GetByID returns a saved plan by its ID.
func (r *mongoPlanRepo) GetByID(ctx context.Context, id string) (*models.SavedPlan, error) {
	var plan models.SavedPlan
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&plan)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListRecent fetches the most recently created saved plans.
func (r *mongoPlanRepo) ListRecent(ctx context.Context, limit int64) ([]models.SavedPlan, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.SavedPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// DeleteByID removes a saved plan by ID.
func (r *mongoPlanRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("saved plan not found")
	}
	return nil
}
