package service

import (
	"context"

	"github.com/lakemont/campsignup/internal/model"
)

// SignupRepository defines the interface for signup storage
type SignupRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Signup, error)
	ListByCamper(ctx context.Context, camperID int64) ([]*model.Signup, error)
	ListByActivity(ctx context.Context, activityID int64) ([]*model.Signup, error)
	Create(ctx context.Context, signup *model.Signup) error
}

// SignupService handles signup business logic
type SignupService struct {
	signupRepo   SignupRepository
	camperRepo   CamperRepository
	activityRepo ActivityRepository
}

// SignupServiceConfig holds configuration for the signup service
type SignupServiceConfig struct {
	SignupRepo   SignupRepository
	CamperRepo   CamperRepository
	ActivityRepo ActivityRepository
}

// NewSignupService creates a new signup service
func NewSignupService(cfg SignupServiceConfig) *SignupService {
	return &SignupService{
		signupRepo:   cfg.SignupRepo,
		camperRepo:   cfg.CamperRepo,
		activityRepo: cfg.ActivityRepo,
	}
}

// GetSignup retrieves a signup with its camper and activity hydrated
func (s *SignupService) GetSignup(ctx context.Context, id int64) (*model.Signup, error) {
	signup, err := s.signupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if signup == nil {
		return nil, ErrSignupNotFound
	}
	return signup, nil
}

// CreateSignup validates the request and both foreign keys before persisting.
// A nonexistent camper or activity is a validation failure on the referencing
// field, not a missing-resource error: the signup is the resource being
// created, so the response stays in the 422 class.
func (s *SignupService) CreateSignup(ctx context.Context, req *model.CreateSignupRequest) (*model.Signup, error) {
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, model.NewValidationError(fieldErrs)
	}

	camper, err := s.camperRepo.GetByID(ctx, *req.CamperID)
	if err != nil {
		return nil, err
	}
	if camper == nil {
		return nil, model.NewValidationError([]model.FieldError{
			{Field: "camper_id", Message: "camper does not exist"},
		})
	}

	activity, err := s.activityRepo.GetByID(ctx, *req.ActivityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, model.NewValidationError([]model.FieldError{
			{Field: "activity_id", Message: "activity does not exist"},
		})
	}

	signup := &model.Signup{
		Time:       *req.Time,
		CamperID:   camper.ID,
		ActivityID: activity.ID,
	}
	if err := s.signupRepo.Create(ctx, signup); err != nil {
		return nil, err
	}

	signup.Camper = camper
	signup.Activity = activity
	return signup, nil
}
