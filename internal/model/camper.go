package model

// Camper represents a registered camper.
// Signups is a back-reference collection hydrated by the repository when the
// caller asks for it; it is excluded from plain JSON encoding and only appears
// in responses through the render package.
type Camper struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`

	Signups []*Signup `json:"-"`
}

// Fields returns the scalar fields of the camper for rendering.
func (c *Camper) Fields() map[string]interface{} {
	return map[string]interface{}{
		"id":   c.ID,
		"name": c.Name,
		"age":  c.Age,
	}
}

// Relations returns the hydrated relationships of the camper for rendering.
func (c *Camper) Relations() map[string]interface{} {
	if c.Signups == nil {
		return nil
	}
	items := make([]interface{}, len(c.Signups))
	for i, s := range c.Signups {
		items[i] = s
	}
	return map[string]interface{}{"signups": items}
}

// CreateCamperRequest represents a request to register a camper.
// Pointer fields distinguish a missing key from a zero value.
type CreateCamperRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// Validate checks the request, returning one FieldError per violation
func (r *CreateCamperRequest) Validate() []FieldError {
	var errs []FieldError

	if r.Name == nil {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if fe := ValidateCamperName(*r.Name); fe != nil {
		errs = append(errs, *fe)
	}

	if r.Age == nil {
		errs = append(errs, FieldError{Field: "age", Message: "age is required"})
	} else if fe := ValidateCamperAge(*r.Age); fe != nil {
		errs = append(errs, *fe)
	}

	return errs
}

// UpdateCamperRequest represents a partial update of a camper.
// Only non-nil fields are validated and applied.
type UpdateCamperRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// Validate checks every supplied field through the same per-field validators
// used at creation time. No field is applied if any supplied field fails.
func (r *UpdateCamperRequest) Validate() []FieldError {
	var errs []FieldError

	if r.Name != nil {
		if fe := ValidateCamperName(*r.Name); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if r.Age != nil {
		if fe := ValidateCamperAge(*r.Age); fe != nil {
			errs = append(errs, *fe)
		}
	}

	return errs
}

// IsEmpty reports whether the update carries no fields at all
func (r *UpdateCamperRequest) IsEmpty() bool {
	return r.Name == nil && r.Age == nil
}
