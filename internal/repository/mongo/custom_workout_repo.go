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

const customWorkoutCollectionName = "custom_workouts"

// mongoCustomWorkoutRepository implements repository.CustomWorkoutRepository.
type mongoCustomWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoCustomWorkoutRepository creates a new custom workout repository.
func NewMongoCustomWorkoutRepository(db *mongo.Database) repository.CustomWorkoutRepository {
	return &mongoCustomWorkoutRepository{
		collection: db.Collection(customWorkoutCollectionName),
	}
}

func (r *mongoCustomWorkoutRepository) Create(ctx context.Context, workout *domain.CustomWorkout) error {
	if workout.ID == "" || workout.Title == "" || workout.PlannedDate.IsZero() {
		return errors.New("custom workout requires an id, a title and a planned date")
	}
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, workout)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *mongoCustomWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.CustomWorkout, error) {
	var workout domain.CustomWorkout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

func (r *mongoCustomWorkoutRepository) GetAll(ctx context.Context) ([]domain.CustomWorkout, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "plannedDate", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.CustomWorkout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *mongoCustomWorkoutRepository) Update(ctx context.Context, workout *domain.CustomWorkout) error {
	if workout.ID == "" {
		return errors.New("custom workout ID is required for update")
	}
	workout.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": workout.ID}, workout)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoCustomWorkoutRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoCustomWorkoutRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureCustomWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureCustomWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "plannedDate", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
