package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleCSV = `Title,WorkoutType,WorkoutDescription,PlannedDuration,PlannedDistanceInMeters,WorkoutDay,CoachComments,TSS,IF
Endurance Swim,Swim,Steady z2,1.0,2000,2026-01-12,Focus on form,55,0.72
Tempo Ride,Bike,2x20 @ FTP,1.5,,2026-01-13,,95,0.85
Rest,Day Off,,,,not-a-date,,,
Easy Run,Run,Recovery,0.5,6000,2026-01-14,,30,0.6
`

func TestImportCSV(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := NewImportService(repo, nil, discardLogger())

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(sampleCSV), "plan.csv")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.SkippedInvalid, "row with unparseable date is skipped")
	assert.Equal(t, 0, result.SkippedDuplicate)
	assert.Empty(t, result.ArchiveKey, "no archive storage configured")

	workouts, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, workouts, 3)

	swim := workouts[0]
	assert.Equal(t, "Endurance Swim", swim.Title)
	assert.Equal(t, "2026-01-12", swim.OriginallyPlannedDay.String())
	require.NotNil(t, swim.PlannedDuration)
	assert.Equal(t, 1.0, *swim.PlannedDuration)
	require.NotNil(t, swim.TSS)
	assert.Equal(t, 55.0, *swim.TSS)
	require.NotNil(t, swim.IntensityFactor)
	assert.Equal(t, 0.72, *swim.IntensityFactor)

	ride := workouts[1]
	assert.Nil(t, ride.PlannedDistanceMeters, "empty numeric column stays absent")
	assert.Nil(t, ride.IntensityFactor)
}

func TestImportCSVDeduplicatesOnReimport(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := NewImportService(repo, nil, discardLogger())

	first, err := svc.ImportCSV(context.Background(), strings.NewReader(sampleCSV), "plan.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, first.Imported)

	second, err := svc.ImportCSV(context.Background(), strings.NewReader(sampleCSV), "plan.csv")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 3, second.SkippedDuplicate)

	count, _ := repo.Count(context.Background())
	assert.EqualValues(t, 3, count)
}

func TestImportCSVUnknownTypeBecomesOther(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := NewImportService(repo, nil, discardLogger())

	csv := "Title,WorkoutType,WorkoutDay\nMobility,Yoga,2026-01-12\n"
	result, err := svc.ImportCSV(context.Background(), strings.NewReader(csv), "plan.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	workouts, _ := repo.GetAll(context.Background())
	assert.EqualValues(t, "Other", workouts[0].WorkoutType)
}

func TestImportCSVRejectsMissingColumns(t *testing.T) {
	svc := NewImportService(newFakeWorkoutRepo(), nil, discardLogger())

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("Title,WorkoutType\nX,Swim\n"), "plan.csv")
	assert.ErrorIs(t, err, ErrMissingHeader)

	_, err = svc.ImportCSV(context.Background(), strings.NewReader(""), "plan.csv")
	assert.ErrorIs(t, err, ErrEmptyCSV)
}
