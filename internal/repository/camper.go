package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/lakemont/campsignup/internal/database"
	"github.com/lakemont/campsignup/internal/model"
)

// CamperRepository handles camper data access.
// Campers use integer primary keys allocated from a counter record, so
// creation increments the counter and creates the row in one transaction.
type CamperRepository struct {
	db database.Database
}

// NewCamperRepository creates a new camper repository
func NewCamperRepository(db database.Database) *CamperRepository {
	return &CamperRepository{db: db}
}

// GetAll retrieves all campers, scalar fields only
func (r *CamperRepository) GetAll(ctx context.Context) ([]*model.Camper, error) {
	query := `SELECT * FROM camper ORDER BY id`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	campers := make([]*model.Camper, 0)
	for _, row := range rowsFrom(result) {
		campers = append(campers, parseCamper(row))
	}
	return campers, nil
}

// GetByID retrieves a camper by ID. Returns nil if the camper does not exist.
func (r *CamperRepository) GetByID(ctx context.Context, id int64) (*model.Camper, error) {
	query := `SELECT * FROM type::thing('camper', $id)`
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
	return parseCamper(row), nil
}

// Create persists a new camper and fills in its assigned ID.
// The counter increment and the record creation commit together or not at all.
func (r *CamperRepository) Create(ctx context.Context, camper *model.Camper) error {
	query := `
		BEGIN TRANSACTION;
		LET $seq = (UPSERT counter:camper SET value += 1 RETURN VALUE value)[0];
		CREATE type::thing('camper', $seq) CONTENT {
			name: $name,
			age: $age
		};
		COMMIT TRANSACTION;
	`
	vars := map[string]interface{}{
		"name": camper.Name,
		"age":  camper.Age,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	row, ok := createdRow(result)
	if !ok {
		return database.ErrQuery
	}
	camper.ID = recordIDInt(row["id"])
	return nil
}

// Update applies the given field updates to a camper in a single statement
// and returns the updated record. Returns database.ErrNotFound if the camper
// does not exist.
func (r *CamperRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*model.Camper, error) {
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	vars := map[string]interface{}{"id": id}
	assignments := make([]string, 0, len(updates))

	if name, ok := updates["name"]; ok {
		assignments = append(assignments, "name = $name")
		vars["name"] = name
	}
	if age, ok := updates["age"]; ok {
		assignments = append(assignments, "age = $age")
		vars["age"] = age
	}

	query := `UPDATE type::thing('camper', $id) SET ` + strings.Join(assignments, ", ") + ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	row, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return parseCamper(row), nil
}

// Delete removes a camper and all signups referencing it in one transaction
func (r *CamperRepository) Delete(ctx context.Context, id int64) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE signup WHERE camper = type::thing('camper', $id)`, map[string]interface{}{"id": id})
	batch.Add(`DELETE type::thing('camper', $id)`, map[string]interface{}{"id": id})
	return batch.Execute(ctx, r.db)
}

// parseCamper converts a record map to a Camper
func parseCamper(row map[string]interface{}) *model.Camper {
	return &model.Camper{
		ID:   recordIDInt(row["id"]),
		Name: getString(row, "name"),
		Age:  getInt(row, "age"),
	}
}
