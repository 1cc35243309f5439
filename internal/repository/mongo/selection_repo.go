package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/repository"
)

const selectionCollectionName = "workout_selections"

// mongoSelectionRepository implements repository.SelectionRepository.
type mongoSelectionRepository struct {
	collection *mongo.Collection
}

// NewMongoSelectionRepository creates a new selection repository.
func NewMongoSelectionRepository(db *mongo.Database) repository.SelectionRepository {
	return &mongoSelectionRepository{
		collection: db.Collection(selectionCollectionName),
	}
}

func (r *mongoSelectionRepository) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) (*domain.WorkoutSelection, error) {
	var selection domain.WorkoutSelection
	err := r.collection.FindOne(ctx, bson.M{"workoutId": workoutID}).Decode(&selection)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &selection, nil
}

func (r *mongoSelectionRepository) GetAll(ctx context.Context) ([]domain.WorkoutSelection, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var selections []domain.WorkoutSelection
	if err = cursor.All(ctx, &selections); err != nil {
		return nil, err
	}
	return selections, nil
}

// Upsert replaces the whole selection document for its workout. Optional
// fields the user cleared (timeOfDay back to unscheduled, say) must actually
// disappear from the document, which a $set of individual fields would not
// guarantee.
func (r *mongoSelectionRepository) Upsert(ctx context.Context, selection *domain.WorkoutSelection) error {
	if selection.WorkoutID == primitive.NilObjectID {
		return errors.New("selection requires a workout ID")
	}
	selection.UpdatedAt = time.Now().UTC()
	if selection.ID == primitive.NilObjectID {
		selection.ID = primitive.NewObjectID()
	}

	filter := bson.M{"workoutId": selection.WorkoutID}
	_, err := r.collection.ReplaceOne(ctx, filter, selection, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoSelectionRepository) DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"workoutId": workoutID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoSelectionRepository) CountSelected(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"isSelected": true})
}

// EnsureSelectionIndexes creates necessary indexes. Call during startup.
func EnsureSelectionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One selection per workout.
			Keys:    bson.D{{Key: "workoutId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
