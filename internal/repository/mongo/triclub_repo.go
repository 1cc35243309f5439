package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/repository"
)

const triClubCollectionName = "triclub_schedules"

// There is a single club schedule; it lives under a fixed document id.
const triClubDocumentID = "default"

type triClubDocument struct {
	ID        string                 `bson:"_id"`
	Days      domain.TriClubSchedule `bson:"days"`
	UpdatedAt time.Time              `bson:"updatedAt"`
}

// mongoTriClubRepository implements repository.TriClubRepository.
type mongoTriClubRepository struct {
	collection *mongo.Collection
}

// NewMongoTriClubRepository creates a new tri club schedule repository.
func NewMongoTriClubRepository(db *mongo.Database) repository.TriClubRepository {
	return &mongoTriClubRepository{
		collection: db.Collection(triClubCollectionName),
	}
}

// Get returns the weekly schedule, or an empty one when none was stored yet.
func (r *mongoTriClubRepository) Get(ctx context.Context) (domain.TriClubSchedule, error) {
	var doc triClubDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": triClubDocumentID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.TriClubSchedule{}, nil
		}
		return nil, err
	}
	return doc.Days, nil
}

func (r *mongoTriClubRepository) Put(ctx context.Context, schedule domain.TriClubSchedule) error {
	doc := triClubDocument{
		ID:        triClubDocumentID,
		Days:      schedule,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": triClubDocumentID}, doc,
		options.Replace().SetUpsert(true))
	return err
}
