package repository

import (
	"context"
	"errors"

	"github.com/lakemont/campsignup/internal/database"
	"github.com/lakemont/campsignup/internal/model"
)

// SignupRepository handles signup data access. Signups hold record links to
// their camper and activity; queries FETCH those links so callers get the
// related records hydrated to exactly one level.
type SignupRepository struct {
	db database.Database
}

// NewSignupRepository creates a new signup repository
func NewSignupRepository(db database.Database) *SignupRepository {
	return &SignupRepository{db: db}
}

// GetByID retrieves a signup with its camper and activity hydrated.
// Returns nil if the signup does not exist.
func (r *SignupRepository) GetByID(ctx context.Context, id int64) (*model.Signup, error) {
	query := `SELECT * FROM type::thing('signup', $id) FETCH camper, activity`
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
	return parseSignup(row), nil
}

// ListByCamper retrieves all signups for a camper with each activity hydrated
func (r *SignupRepository) ListByCamper(ctx context.Context, camperID int64) ([]*model.Signup, error) {
	query := `SELECT * FROM signup WHERE camper = type::thing('camper', $id) ORDER BY id FETCH activity`
	vars := map[string]interface{}{"id": camperID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	signups := make([]*model.Signup, 0)
	for _, row := range rowsFrom(result) {
		signups = append(signups, parseSignup(row))
	}
	return signups, nil
}

// ListByActivity retrieves all signups for an activity with each camper hydrated
func (r *SignupRepository) ListByActivity(ctx context.Context, activityID int64) ([]*model.Signup, error) {
	query := `SELECT * FROM signup WHERE activity = type::thing('activity', $id) ORDER BY id FETCH camper`
	vars := map[string]interface{}{"id": activityID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	signups := make([]*model.Signup, 0)
	for _, row := range rowsFrom(result) {
		signups = append(signups, parseSignup(row))
	}
	return signups, nil
}

// Create persists a new signup and fills in its assigned ID.
// Referential checks happen in the service layer before this is called.
func (r *SignupRepository) Create(ctx context.Context, signup *model.Signup) error {
	query := `
		BEGIN TRANSACTION;
		LET $seq = (UPSERT counter:signup SET value += 1 RETURN VALUE value)[0];
		CREATE type::thing('signup', $seq) CONTENT {
			time: $time,
			camper: type::thing('camper', $camper_id),
			activity: type::thing('activity', $activity_id)
		};
		COMMIT TRANSACTION;
	`
	vars := map[string]interface{}{
		"time":        signup.Time,
		"camper_id":   signup.CamperID,
		"activity_id": signup.ActivityID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	row, ok := createdRow(result)
	if !ok {
		return database.ErrQuery
	}
	signup.ID = recordIDInt(row["id"])
	return nil
}

// parseSignup converts a record map to a Signup. The camper and activity
// fields arrive either as bare record links or, when the query used FETCH,
// as full nested records.
func parseSignup(row map[string]interface{}) *model.Signup {
	s := &model.Signup{
		ID:   recordIDInt(row["id"]),
		Time: getInt(row, "time"),
	}

	if nested, ok := row["camper"].(map[string]interface{}); ok {
		if _, fetched := nested["name"]; fetched {
			s.Camper = parseCamper(nested)
			s.CamperID = s.Camper.ID
		} else {
			s.CamperID = recordIDInt(nested)
		}
	} else {
		s.CamperID = recordIDInt(row["camper"])
	}

	if nested, ok := row["activity"].(map[string]interface{}); ok {
		if _, fetched := nested["name"]; fetched {
			s.Activity = parseActivity(nested)
			s.ActivityID = s.Activity.ID
		} else {
			s.ActivityID = recordIDInt(nested)
		}
	} else {
		s.ActivityID = recordIDInt(row["activity"])
	}

	return s
}
