package model

// Signup is the association entity joining a camper to an activity at a given
// hour of the day. Camper and Activity are back-references owned by the
// storage layer; the repository hydrates them on demand.
type Signup struct {
	ID         int64 `json:"id"`
	Time       int   `json:"time"`
	CamperID   int64 `json:"camper_id"`
	ActivityID int64 `json:"activity_id"`

	Camper   *Camper   `json:"-"`
	Activity *Activity `json:"-"`
}

// Fields returns the scalar fields of the signup for rendering.
func (s *Signup) Fields() map[string]interface{} {
	return map[string]interface{}{
		"id":          s.ID,
		"time":        s.Time,
		"camper_id":   s.CamperID,
		"activity_id": s.ActivityID,
	}
}

// Relations returns the hydrated relationships of the signup for rendering.
func (s *Signup) Relations() map[string]interface{} {
	rels := make(map[string]interface{}, 2)
	if s.Camper != nil {
		rels["camper"] = s.Camper
	}
	if s.Activity != nil {
		rels["activity"] = s.Activity
	}
	if len(rels) == 0 {
		return nil
	}
	return rels
}

// CreateSignupRequest represents a request to sign a camper up for an activity
type CreateSignupRequest struct {
	CamperID   *int64 `json:"camper_id"`
	ActivityID *int64 `json:"activity_id"`
	Time       *int   `json:"time"`
}

// Validate checks the request, returning one FieldError per violation.
// Foreign-key existence is checked by the service, not here.
func (r *CreateSignupRequest) Validate() []FieldError {
	var errs []FieldError

	if r.CamperID == nil {
		errs = append(errs, FieldError{Field: "camper_id", Message: "camper_id is required"})
	}
	if r.ActivityID == nil {
		errs = append(errs, FieldError{Field: "activity_id", Message: "activity_id is required"})
	}

	if r.Time == nil {
		errs = append(errs, FieldError{Field: "time", Message: "time is required"})
	} else if fe := ValidateSignupTime(*r.Time); fe != nil {
		errs = append(errs, *fe)
	}

	return errs
}
