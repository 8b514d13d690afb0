package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakemont/campsignup/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockCamperRepo struct {
	getAllFunc  func(ctx context.Context) ([]*model.Camper, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.Camper, error)
	createFunc  func(ctx context.Context, camper *model.Camper) error
	updateFunc  func(ctx context.Context, id int64, updates map[string]interface{}) (*model.Camper, error)
	deleteFunc  func(ctx context.Context, id int64) error

	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockCamperRepo) GetAll(ctx context.Context) ([]*model.Camper, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCamperRepo) GetByID(ctx context.Context, id int64) (*model.Camper, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCamperRepo) Create(ctx context.Context, camper *model.Camper) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, camper)
	}
	return nil
}

func (m *mockCamperRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (*model.Camper, error) {
	m.updateCalls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, updates)
	}
	return nil, nil
}

func (m *mockCamperRepo) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockSignupRepo struct {
	getByIDFunc        func(ctx context.Context, id int64) (*model.Signup, error)
	listByCamperFunc   func(ctx context.Context, camperID int64) ([]*model.Signup, error)
	listByActivityFunc func(ctx context.Context, activityID int64) ([]*model.Signup, error)
	createFunc         func(ctx context.Context, signup *model.Signup) error

	createCalls int
}

func (m *mockSignupRepo) GetByID(ctx context.Context, id int64) (*model.Signup, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSignupRepo) ListByCamper(ctx context.Context, camperID int64) ([]*model.Signup, error) {
	if m.listByCamperFunc != nil {
		return m.listByCamperFunc(ctx, camperID)
	}
	return []*model.Signup{}, nil
}

func (m *mockSignupRepo) ListByActivity(ctx context.Context, activityID int64) ([]*model.Signup, error) {
	if m.listByActivityFunc != nil {
		return m.listByActivityFunc(ctx, activityID)
	}
	return []*model.Signup{}, nil
}

func (m *mockSignupRepo) Create(ctx context.Context, signup *model.Signup) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, signup)
	}
	return nil
}

func newCamperService(camperRepo *mockCamperRepo, signupRepo *mockSignupRepo) *CamperService {
	return NewCamperService(CamperServiceConfig{
		CamperRepo: camperRepo,
		SignupRepo: signupRepo,
	})
}

func ptr[T any](v T) *T { return &v }

// ============================================================================
// CreateCamper
// ============================================================================

func TestCamperService_CreateCamper_Valid(t *testing.T) {
	ctx := context.Background()
	camperRepo := &mockCamperRepo{
		createFunc: func(ctx context.Context, camper *model.Camper) error {
			camper.ID = 1
			return nil
		},
	}
	svc := newCamperService(camperRepo, &mockSignupRepo{})

	camper, err := svc.CreateCamper(ctx, &model.CreateCamperRequest{Name: ptr("Ann"), Age: ptr(12)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), camper.ID)
	assert.Equal(t, "Ann", camper.Name)
	assert.Equal(t, 12, camper.Age)
	assert.NotNil(t, camper.Signups)
}

func TestCamperService_CreateCamper_AgeOutOfRange_NothingPersisted(t *testing.T) {
	ctx := context.Background()
	camperRepo := &mockCamperRepo{}
	svc := newCamperService(camperRepo, &mockSignupRepo{})

	_, err := svc.CreateCamper(ctx, &model.CreateCamperRequest{Name: ptr("Bob"), Age: ptr(5)})
	require.Error(t, err)

	var pd *model.ProblemDetails
	require.True(t, errors.As(err, &pd))
	assert.Equal(t, 422, pd.Status)
	assert.Equal(t, 0, camperRepo.createCalls, "repository must not be touched on validation failure")
}

func TestCamperService_CreateCamper_EmptyName_NothingPersisted(t *testing.T) {
	ctx := context.Background()
	camperRepo := &mockCamperRepo{}
	svc := newCamperService(camperRepo, &mockSignupRepo{})

	_, err := svc.CreateCamper(ctx, &model.CreateCamperRequest{Name: ptr(""), Age: ptr(12)})
	require.Error(t, err)
	assert.Equal(t, 0, camperRepo.createCalls)
}

func TestCamperService_CreateCamper_MissingFields(t *testing.T) {
	ctx := context.Background()
	camperRepo := &mockCamperRepo{}
	svc := newCamperService(camperRepo, &mockSignupRepo{})

	_, err := svc.CreateCamper(ctx, &model.CreateCamperRequest{})
	require.Error(t, err)

	var pd *model.ProblemDetails
	require.True(t, errors.As(err, &pd))
	assert.Len(t, pd.Errors, 2)
	assert.Equal(t, 0, camperRepo.createCalls)
}

// ============================================================================
// GetCamper
// ============================================================================

func TestCamperService_GetCamper_HydratesSignups(t *testing.T) {
	ctx := context.Background()
	camperRepo := &mockCamperRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Camper, error) {
			return &model.Camper{ID: id, Name: "Ann", Age: 12}, nil
		},
	}
	signupRepo := &mockSignupRepo{
		listByCamperFunc: func(ctx context.Context, camperID int64) ([]*model.Signup, error) {
			return []*model.Signup{{ID: 3, Time: 9, CamperID: camperID, ActivityID: 2}}, nil
		},
	}
	svc := newCamperService(camperRepo, signupRepo)

	camper, err := svc.GetCamper(ctx, 1)
	require.NoError(t, err)
	require.Len(t, camper.Signups, 1)
	assert.Equal(t, int64(3), camper.Signups[0].ID)
}

func TestCamperService_GetCamper_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newCamperService(&mockCamperRepo{}, &mockSignupRepo{})

	_, err := svc.GetCamper(ctx, 99)
	assert.ErrorIs(t, err, ErrCamperNotFound)
}

// ============================================================================
// UpdateCamper
// ============================================================================

func TestCamperService_UpdateCamper_PartialUpdatesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	stored := &model.Camper{ID: 1, Name: "Ann", Age: 12}
	camperRepo := &mockCamperRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Camper, error) {
			c := *stored
			return &c, nil
		},
		updateFunc: func(ctx context.Context, id int64, updates map[string]interface{}) (*model.Camper, error) {
			if age, ok := updates["age"]; ok {
				stored.Age = age.(int)
			}
			if name, ok := updates["name"]; ok {
				stored.Name = name.(string)
			}
			c := *stored
			return &c, nil
		},
	}
	svc := newCamperService(camperRepo, &mockSignupRepo{})

	camper, err := svc.UpdateCamper(ctx, 1, &model.UpdateCamperRequest{Age: ptr(9)})
	require.NoError(t, err)
	assert.Equal(t, 9, camper.Age)
	assert.Equal(t, "Ann", camper.Name, "unspecified fields stay unchanged")
	assert.Equal(t, 1, camperRepo.updateCalls)
}

func TestCamperService_UpdateCamper_InvalidField_NoWrite(t *testing.T) {
	ctx := context.Background()
	camperRepo := &mockCamperRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Camper, error) {
			return &model.Camper{ID: id, Name: "Ann", Age: 12}, nil
		},
	}
	svc := newCamperService(camperRepo, &mockSignupRepo{})

	_, err := svc.UpdateCamper(ctx, 1, &model.UpdateCamperRequest{Age: ptr(40)})
	require.Error(t, err)

	var pd *model.ProblemDetails
	require.True(t, errors.As(err, &pd))
	assert.Equal(t, 422, pd.Status)
	assert.Equal(t, 0, camperRepo.updateCalls, "an invalid update must never reach the store")
}

func TestCamperService_UpdateCamper_MixedValidity_NoWrite(t *testing.T) {
	ctx := context.Background()
	camperRepo := &mockCamperRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Camper, error) {
			return &model.Camper{ID: id, Name: "Ann", Age: 12}, nil
		},
	}
	svc := newCamperService(camperRepo, &mockSignupRepo{})

	// Name is fine, age is not: the whole update must be rejected atomically.
	_, err := svc.UpdateCamper(ctx, 1, &model.UpdateCamperRequest{Name: ptr("Anna"), Age: ptr(99)})
	require.Error(t, err)
	assert.Equal(t, 0, camperRepo.updateCalls)
}

func TestCamperService_UpdateCamper_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newCamperService(&mockCamperRepo{}, &mockSignupRepo{})

	_, err := svc.UpdateCamper(ctx, 42, &model.UpdateCamperRequest{Age: ptr(10)})
	assert.ErrorIs(t, err, ErrCamperNotFound)
}

func TestCamperService_UpdateCamper_EmptyUpdate_ReturnsCurrent(t *testing.T) {
	ctx := context.Background()
	camperRepo := &mockCamperRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Camper, error) {
			return &model.Camper{ID: id, Name: "Ann", Age: 12}, nil
		},
	}
	svc := newCamperService(camperRepo, &mockSignupRepo{})

	camper, err := svc.UpdateCamper(ctx, 1, &model.UpdateCamperRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Ann", camper.Name)
	assert.Equal(t, 0, camperRepo.updateCalls)
}

// ============================================================================
// DeleteCamper
// ============================================================================

func TestCamperService_DeleteCamper_Cascades(t *testing.T) {
	ctx := context.Background()
	camperRepo := &mockCamperRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Camper, error) {
			return &model.Camper{ID: id, Name: "Ann", Age: 12}, nil
		},
	}
	svc := newCamperService(camperRepo, &mockSignupRepo{})

	err := svc.DeleteCamper(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, camperRepo.deleteCalls)
}

func TestCamperService_DeleteCamper_NotFound(t *testing.T) {
	ctx := context.Background()
	camperRepo := &mockCamperRepo{}
	svc := newCamperService(camperRepo, &mockSignupRepo{})

	err := svc.DeleteCamper(ctx, 5)
	assert.ErrorIs(t, err, ErrCamperNotFound)
	assert.Equal(t, 0, camperRepo.deleteCalls)
}
