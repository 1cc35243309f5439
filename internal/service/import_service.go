package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/observability"
	"alcyxob/workout-planner/internal/repository"
	"alcyxob/workout-planner/internal/storage"
)

var (
	ErrEmptyCSV      = errors.New("csv file is empty")
	ErrMissingHeader = errors.New("csv is missing required columns")
)

// Columns a TrainingPeaks export must carry. Extra columns are ignored.
var requiredColumns = []string{"Title", "WorkoutType", "WorkoutDay"}

// ImportResult summarizes one CSV import run.
type ImportResult struct {
	Imported         int    `json:"imported"`
	SkippedDuplicate int    `json:"skippedDuplicate"`
	SkippedInvalid   int    `json:"skippedInvalid"`
	ArchiveKey       string `json:"archiveKey,omitempty"`
}

// ImportService ingests TrainingPeaks CSV exports into the workout store.
type ImportService interface {
	ImportCSV(ctx context.Context, r io.Reader, filename string) (*ImportResult, error)
}

type importService struct {
	workoutRepo repository.WorkoutRepository
	archive     storage.ArchiveStorage // optional
	log         *slog.Logger
}

// NewImportService creates a new instance of importService. The archive
// storage may be nil, in which case raw files are not retained.
func NewImportService(workoutRepo repository.WorkoutRepository, archive storage.ArchiveStorage, log *slog.Logger) ImportService {
	return &importService{
		workoutRepo: workoutRepo,
		archive:     archive,
		log:         log,
	}
}

// ImportCSV parses the export row by row. Rows with an unparseable date are
// skipped, and rows matching an already stored (title, day) pair are treated
// as duplicates from a previous import of the same plan.
func (s *importService) ImportCSV(ctx context.Context, r io.Reader, filename string) (*ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCSV
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, ErrEmptyCSV
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeader, name)
		}
	}

	result := &ImportResult{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.SkippedInvalid++
			observability.WorkoutsSkipped.WithLabelValues("malformed").Inc()
			continue
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		day, err := domain.ParseDateOnly(field("WorkoutDay"))
		if err != nil {
			result.SkippedInvalid++
			observability.WorkoutsSkipped.WithLabelValues("invalid_date").Inc()
			s.log.Warn("skipping row with invalid workout day", "title", field("Title"), "day", field("WorkoutDay"))
			continue
		}

		title := field("Title")
		exists, err := s.workoutRepo.ExistsByTitleAndDay(ctx, title, day)
		if err != nil {
			return nil, err
		}
		if exists {
			result.SkippedDuplicate++
			observability.WorkoutsSkipped.WithLabelValues("duplicate").Inc()
			continue
		}

		workout := &domain.Workout{
			Title:                 title,
			WorkoutType:           domain.ParseWorkoutType(field("WorkoutType")),
			Description:           field("WorkoutDescription"),
			PlannedDuration:       parseOptionalFloat(field("PlannedDuration")),
			PlannedDistanceMeters: parseOptionalFloat(field("PlannedDistanceInMeters")),
			OriginallyPlannedDay:  day,
			CoachComments:         field("CoachComments"),
			TSS:                   parseOptionalFloat(field("TSS")),
			IntensityFactor:       parseOptionalFloat(field("IF")),
			CreatedAt:             time.Now().UTC(),
		}
		if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				result.SkippedDuplicate++
				observability.WorkoutsSkipped.WithLabelValues("duplicate").Inc()
				continue
			}
			return nil, err
		}
		result.Imported++
	}
	observability.WorkoutsImported.Add(float64(result.Imported))

	if s.archive != nil {
		key := archiveKey(filename)
		if err := s.archive.PutObject(ctx, key, "text/csv", raw); err != nil {
			// The import itself succeeded; losing the archive copy is not
			// worth failing the request over.
			s.log.Error("failed to archive csv", "key", key, "error", err)
		} else {
			result.ArchiveKey = key
		}
	}

	s.log.Info("csv import finished",
		"file", filename,
		"imported", result.Imported,
		"duplicates", result.SkippedDuplicate,
		"invalid", result.SkippedInvalid,
	)
	return result, nil
}

func archiveKey(filename string) string {
	if filename == "" {
		filename = "upload.csv"
	}
	return fmt.Sprintf("imports/%s/%s", time.Now().UTC().Format("2006-01-02T15-04-05Z"), filename)
}

func parseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
