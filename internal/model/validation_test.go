package model

import (
	"strings"
	"testing"
)

func ptr[T any](v T) *T { return &v }

// ============================================================================
// CreateCamperRequest Tests
// ============================================================================

func TestCreateCamperRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateCamperRequest{Name: ptr("Ann"), Age: ptr(12)}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateCamperRequest_Validate_MissingName(t *testing.T) {
	t.Parallel()

	req := &CreateCamperRequest{Age: ptr(12)}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "name" {
		t.Errorf("expected name error, got %v", errors)
	}
}

func TestCreateCamperRequest_Validate_EmptyName(t *testing.T) {
	t.Parallel()

	req := &CreateCamperRequest{Name: ptr(""), Age: ptr(12)}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "name" && strings.Contains(e.Message, "empty") {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected empty name error, got %v", errors)
	}
}

func TestCreateCamperRequest_Validate_MissingAge(t *testing.T) {
	t.Parallel()

	req := &CreateCamperRequest{Name: ptr("Ann")}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "age" {
		t.Errorf("expected age error, got %v", errors)
	}
}

func TestCreateCamperRequest_Validate_AgeBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		age   int
		valid bool
	}{
		{7, false},
		{8, true},
		{12, true},
		{18, true},
		{19, false},
		{-1, false},
		{0, false},
	}

	for _, tc := range cases {
		req := &CreateCamperRequest{Name: ptr("Bob"), Age: ptr(tc.age)}
		errors := req.Validate()
		if tc.valid && len(errors) > 0 {
			t.Errorf("age %d: expected valid, got %v", tc.age, errors)
		}
		if !tc.valid && len(errors) == 0 {
			t.Errorf("age %d: expected age error, got none", tc.age)
		}
	}
}

func TestCreateCamperRequest_Validate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	req := &CreateCamperRequest{Name: ptr(""), Age: ptr(5)}

	errors := req.Validate()
	if len(errors) != 2 {
		t.Errorf("expected errors for both name and age, got %v", errors)
	}
}

// ============================================================================
// UpdateCamperRequest Tests
// ============================================================================

func TestUpdateCamperRequest_Validate_PartialValid(t *testing.T) {
	t.Parallel()

	req := &UpdateCamperRequest{Age: ptr(9)}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestUpdateCamperRequest_Validate_Empty(t *testing.T) {
	t.Parallel()

	req := &UpdateCamperRequest{}

	if !req.IsEmpty() {
		t.Error("expected IsEmpty to be true for empty update")
	}
	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("expected no errors for empty update, got %v", errors)
	}
}

func TestUpdateCamperRequest_Validate_InvalidAge(t *testing.T) {
	t.Parallel()

	req := &UpdateCamperRequest{Age: ptr(30)}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "age" {
		t.Errorf("expected age error, got %v", errors)
	}
}

func TestUpdateCamperRequest_Validate_InvalidName(t *testing.T) {
	t.Parallel()

	req := &UpdateCamperRequest{Name: ptr("")}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "name" {
		t.Errorf("expected name error, got %v", errors)
	}
}

// ============================================================================
// CreateSignupRequest Tests
// ============================================================================

func TestCreateSignupRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateSignupRequest{
		CamperID:   ptr(int64(1)),
		ActivityID: ptr(int64(2)),
		Time:       ptr(9),
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateSignupRequest_Validate_MissingFields(t *testing.T) {
	t.Parallel()

	req := &CreateSignupRequest{}

	errors := req.Validate()
	fields := map[string]bool{}
	for _, e := range errors {
		fields[e.Field] = true
	}
	for _, want := range []string{"camper_id", "activity_id", "time"} {
		if !fields[want] {
			t.Errorf("expected error for %s, got %v", want, errors)
		}
	}
}

func TestCreateSignupRequest_Validate_TimeBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hour  int
		valid bool
	}{
		{-1, false},
		{0, true},
		{12, true},
		{23, true},
		{24, false},
		{25, false},
	}

	for _, tc := range cases {
		req := &CreateSignupRequest{
			CamperID:   ptr(int64(1)),
			ActivityID: ptr(int64(1)),
			Time:       ptr(tc.hour),
		}
		errors := req.Validate()
		if tc.valid && len(errors) > 0 {
			t.Errorf("hour %d: expected valid, got %v", tc.hour, errors)
		}
		if !tc.valid && len(errors) == 0 {
			t.Errorf("hour %d: expected time error, got none", tc.hour)
		}
	}
}

// ============================================================================
// Field Validator Tests
// ============================================================================

func TestValidateCamperAge_BoundsInclusive(t *testing.T) {
	t.Parallel()

	if fe := ValidateCamperAge(MinCamperAge); fe != nil {
		t.Errorf("expected min age to be valid, got %v", fe)
	}
	if fe := ValidateCamperAge(MaxCamperAge); fe != nil {
		t.Errorf("expected max age to be valid, got %v", fe)
	}
	if fe := ValidateCamperAge(MinCamperAge - 1); fe == nil {
		t.Error("expected error below min age")
	}
	if fe := ValidateCamperAge(MaxCamperAge + 1); fe == nil {
		t.Error("expected error above max age")
	}
}

func TestValidateSignupTime_BoundsInclusive(t *testing.T) {
	t.Parallel()

	if fe := ValidateSignupTime(MinSignupHour); fe != nil {
		t.Errorf("expected hour %d to be valid, got %v", MinSignupHour, fe)
	}
	if fe := ValidateSignupTime(MaxSignupHour); fe != nil {
		t.Errorf("expected hour %d to be valid, got %v", MaxSignupHour, fe)
	}
	if fe := ValidateSignupTime(MaxSignupHour + 1); fe == nil {
		t.Error("expected error above max hour")
	}
}
