package repository

import (
	"context"
	"errors"

	"github.com/lakemont/campsignup/internal/database"
	"github.com/lakemont/campsignup/internal/model"
)

// ActivityRepository handles activity data access
type ActivityRepository struct {
	db database.Database
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db database.Database) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// GetAll retrieves all activities, scalar fields only
func (r *ActivityRepository) GetAll(ctx context.Context) ([]*model.Activity, error) {
	query := `SELECT * FROM activity ORDER BY id`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	activities := make([]*model.Activity, 0)
	for _, row := range rowsFrom(result) {
		activities = append(activities, parseActivity(row))
	}
	return activities, nil
}

// GetByID retrieves an activity by ID. Returns nil if the activity does not exist.
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	query := `SELECT * FROM type::thing('activity', $id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return parseActivity(row), nil
}

// Create persists a new activity and fills in its assigned ID
func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	query := `
		BEGIN TRANSACTION;
		LET $seq = (UPSERT counter:activity SET value += 1 RETURN VALUE value)[0];
		CREATE type::thing('activity', $seq) CONTENT {
			name: $name,
			difficulty: $difficulty
		};
		COMMIT TRANSACTION;
	`
	vars := map[string]interface{}{
		"name":       activity.Name,
		"difficulty": activity.Difficulty,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	row, ok := createdRow(result)
	if !ok {
		return database.ErrQuery
	}
	activity.ID = recordIDInt(row["id"])
	return nil
}

// Delete removes an activity and all signups referencing it in one transaction
func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE signup WHERE activity = type::thing('activity', $id)`, map[string]interface{}{"id": id})
	batch.Add(`DELETE type::thing('activity', $id)`, map[string]interface{}{"id": id})
	return batch.Execute(ctx, r.db)
}

// parseActivity converts a record map to an Activity
func parseActivity(row map[string]interface{}) *model.Activity {
	return &model.Activity{
		ID:         recordIDInt(row["id"]),
		Name:       getString(row, "name"),
		Difficulty: getInt(row, "difficulty"),
	}
}
