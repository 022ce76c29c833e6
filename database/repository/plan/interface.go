package planRepo

import (
	"context"

	"tripflow/database"
	"tripflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PlanRepository interface {
	Create(ctx context.Context, plan models.SavedPlan) (string, error)
	SetPlan(ctx context.Context, id string, plan *models.TripPlan, fallback bool) error
	GetByID(ctx context.Context, id string) (*models.SavedPlan, error)
	ListRecent(ctx context.Context, limit int64) ([]models.SavedPlan, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoPlanRepo returns a new PlanRepository instance using MongoDB.
func NewMongoPlanRepo() PlanRepository {
	db := database.MongoClient.Database("tripflow")
	return &mongoPlanRepo{
		coll: db.Collection("saved_plans"),
	}
}
