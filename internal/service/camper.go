package service

import (
	"context"

	"github.com/lakemont/campsignup/internal/model"
)

// CamperRepository defines the interface for camper storage
type CamperRepository interface {
	GetAll(ctx context.Context) ([]*model.Camper, error)
	GetByID(ctx context.Context, id int64) (*model.Camper, error)
	Create(ctx context.Context, camper *model.Camper) error
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*model.Camper, error)
	Delete(ctx context.Context, id int64) error
}

// SignupLister provides the signups a camper or activity detail view embeds
type SignupLister interface {
	ListByCamper(ctx context.Context, camperID int64) ([]*model.Signup, error)
	ListByActivity(ctx context.Context, activityID int64) ([]*model.Signup, error)
}

// CamperService handles camper business logic
type CamperService struct {
	camperRepo CamperRepository
	signupRepo SignupLister
}

// CamperServiceConfig holds configuration for the camper service
type CamperServiceConfig struct {
	CamperRepo CamperRepository
	SignupRepo SignupLister
}

// NewCamperService creates a new camper service
func NewCamperService(cfg CamperServiceConfig) *CamperService {
	return &CamperService{
		camperRepo: cfg.CamperRepo,
		signupRepo: cfg.SignupRepo,
	}
}

// ListCampers retrieves all campers, scalar fields only
func (s *CamperService) ListCampers(ctx context.Context) ([]*model.Camper, error) {
	return s.camperRepo.GetAll(ctx)
}

// GetCamper retrieves a camper with its signups hydrated
func (s *CamperService) GetCamper(ctx context.Context, id int64) (*model.Camper, error) {
	camper, err := s.camperRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if camper == nil {
		return nil, ErrCamperNotFound
	}

	signups, err := s.signupRepo.ListByCamper(ctx, id)
	if err != nil {
		return nil, err
	}
	camper.Signups = signups

	return camper, nil
}

// CreateCamper validates and persists a new camper. Validation runs before
// any persistence, so a rejected request never reaches the store.
func (s *CamperService) CreateCamper(ctx context.Context, req *model.CreateCamperRequest) (*model.Camper, error) {
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, model.NewValidationError(fieldErrs)
	}

	camper := &model.Camper{
		Name: *req.Name,
		Age:  *req.Age,
	}
	if err := s.camperRepo.Create(ctx, camper); err != nil {
		return nil, err
	}

	// A fresh camper has no signups; an empty collection renders as [].
	camper.Signups = []*model.Signup{}
	return camper, nil
}

// UpdateCamper applies a partial update. Every supplied field is validated
// before anything is written, and the write itself is a single statement, so
// a rejected update leaves the stored record fully unchanged.
func (s *CamperService) UpdateCamper(ctx context.Context, id int64, req *model.UpdateCamperRequest) (*model.Camper, error) {
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, model.NewValidationError(fieldErrs)
	}

	existing, err := s.camperRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCamperNotFound
	}

	if !req.IsEmpty() {
		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Age != nil {
			updates["age"] = *req.Age
		}

		if _, err := s.camperRepo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.GetCamper(ctx, id)
}

// DeleteCamper removes a camper and cascades deletion of its signups.
// Not exposed over HTTP; callers use it for administrative cleanup.
func (s *CamperService) DeleteCamper(ctx context.Context, id int64) error {
	camper, err := s.camperRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if camper == nil {
		return ErrCamperNotFound
	}

	return s.camperRepo.Delete(ctx, id)
}
