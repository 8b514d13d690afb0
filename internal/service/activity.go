package service

import (
	"context"

	"github.com/lakemont/campsignup/internal/model"
)

// ActivityRepository defines the interface for activity storage
type ActivityRepository interface {
	GetAll(ctx context.Context) ([]*model.Activity, error)
	GetByID(ctx context.Context, id int64) (*model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) error
	Delete(ctx context.Context, id int64) error
}

// ActivityService handles activity business logic
type ActivityService struct {
	activityRepo ActivityRepository
}

// ActivityServiceConfig holds configuration for the activity service
type ActivityServiceConfig struct {
	ActivityRepo ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(cfg ActivityServiceConfig) *ActivityService {
	return &ActivityService{
		activityRepo: cfg.ActivityRepo,
	}
}

// ListActivities retrieves all activities, scalar fields only
func (s *ActivityService) ListActivities(ctx context.Context) ([]*model.Activity, error) {
	return s.activityRepo.GetAll(ctx)
}

// CreateActivity validates and persists a new activity
func (s *ActivityService) CreateActivity(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error) {
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, model.NewValidationError(fieldErrs)
	}

	activity := &model.Activity{
		Name:       *req.Name,
		Difficulty: *req.Difficulty,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	activity.Signups = []*model.Signup{}
	return activity, nil
}

// DeleteActivity removes an activity and cascades deletion of its signups
func (s *ActivityService) DeleteActivity(ctx context.Context, id int64) error {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if activity == nil {
		return ErrActivityNotFound
	}

	return s.activityRepo.Delete(ctx, id)
}
