package model

// Activity represents a camp activity campers can sign up for.
// Name and difficulty carry no constraints.
type Activity struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`

	Signups []*Signup `json:"-"`
}

// Fields returns the scalar fields of the activity for rendering.
func (a *Activity) Fields() map[string]interface{} {
	return map[string]interface{}{
		"id":         a.ID,
		"name":       a.Name,
		"difficulty": a.Difficulty,
	}
}

// Relations returns the hydrated relationships of the activity for rendering.
func (a *Activity) Relations() map[string]interface{} {
	if a.Signups == nil {
		return nil
	}
	items := make([]interface{}, len(a.Signups))
	for i, s := range a.Signups {
		items[i] = s
	}
	return map[string]interface{}{"signups": items}
}

// CreateActivityRequest represents a request to add an activity
type CreateActivityRequest struct {
	Name       *string `json:"name"`
	Difficulty *int    `json:"difficulty"`
}

// Validate checks the request, returning one FieldError per violation
func (r *CreateActivityRequest) Validate() []FieldError {
	var errs []FieldError

	if r.Name == nil {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if r.Difficulty == nil {
		errs = append(errs, FieldError{Field: "difficulty", Message: "difficulty is required"})
	}

	return errs
}
