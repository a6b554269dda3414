package credential

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/catalog"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

type MockCredentialRepo struct{ mock.Mock }

func (m *MockCredentialRepo) Rotate(ctx context.Context, gymID int, token string) (*GymAccessCredential, error) {
	args := m.Called(ctx, gymID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymAccessCredential), args.Error(1)
}

func (m *MockCredentialRepo) GetActive(ctx context.Context, gymID int) (*GymAccessCredential, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymAccessCredential), args.Error(1)
}

func (m *MockCredentialRepo) GetActiveByToken(ctx context.Context, token string) (*GymAccessCredential, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymAccessCredential), args.Error(1)
}

func (m *MockCredentialRepo) Deactivate(ctx context.Context, gymID int) (int64, error) {
	args := m.Called(ctx, gymID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCatalogRepo struct{ mock.Mock }

func (m *MockCatalogRepo) GetGymByID(ctx context.Context, id int) (*catalog.Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Gym), args.Error(1)
}

func (m *MockCatalogRepo) ListGyms(ctx context.Context) ([]catalog.Gym, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Gym), args.Error(1)
}

func (m *MockCatalogRepo) PlanIDsForGym(ctx context.Context, gymID int) ([]int, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockCatalogRepo) GetPlanByID(ctx context.Context, id int) (*catalog.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Plan), args.Error(1)
}

func (m *MockCatalogRepo) ListPlans(ctx context.Context) ([]catalog.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Plan), args.Error(1)
}

func (m *MockCatalogRepo) GetProductByID(ctx context.Context, id int) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockCatalogRepo) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func TestServiceRotate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockCredentialRepo)
		catalogRepo := new(MockCatalogRepo)
		svc := NewService(repo, catalogRepo)

		catalogRepo.On("GetGymByID", ctx, 2).Return(&catalog.Gym{ID: 2, IsActive: true}, nil)
		repo.On("Rotate", ctx, 2, mock.MatchedBy(func(token string) bool {
			return len(token) == 64
		})).Return(&GymAccessCredential{ID: 7, GymID: 2, Active: true}, nil)

		cred, err := svc.Rotate(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, 7, cred.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown gym", func(t *testing.T) {
		repo := new(MockCredentialRepo)
		catalogRepo := new(MockCatalogRepo)
		svc := NewService(repo, catalogRepo)

		catalogRepo.On("GetGymByID", ctx, 99).Return(nil, sql.ErrNoRows)

		_, err := svc.Rotate(ctx, 99)
		assert.ErrorIs(t, err, ErrGymNotFound)
	})

	t.Run("Inactive gym", func(t *testing.T) {
		repo := new(MockCredentialRepo)
		catalogRepo := new(MockCatalogRepo)
		svc := NewService(repo, catalogRepo)

		catalogRepo.On("GetGymByID", ctx, 2).Return(&catalog.Gym{ID: 2, IsActive: false}, nil)

		_, err := svc.Rotate(ctx, 2)
		assert.ErrorIs(t, err, ErrGymInactive)
	})
}

func TestServiceGetActive(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repo := new(MockCredentialRepo)
		catalogRepo := new(MockCatalogRepo)
		svc := NewService(repo, catalogRepo)

		catalogRepo.On("GetGymByID", ctx, 2).Return(&catalog.Gym{ID: 2, IsActive: true}, nil)
		repo.On("GetActive", ctx, 2).Return(&GymAccessCredential{ID: 7, GymID: 2, Token: "tok", Active: true}, nil)

		cred, err := svc.GetActive(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, "tok", cred.Token)
	})

	t.Run("No active credential", func(t *testing.T) {
		repo := new(MockCredentialRepo)
		catalogRepo := new(MockCatalogRepo)
		svc := NewService(repo, catalogRepo)

		catalogRepo.On("GetGymByID", ctx, 2).Return(&catalog.Gym{ID: 2, IsActive: true}, nil)
		repo.On("GetActive", ctx, 2).Return(nil, sql.ErrNoRows)

		_, err := svc.GetActive(ctx, 2)
		assert.ErrorIs(t, err, ErrNoActiveCredential)
	})
}

func TestServiceDeactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("Retired", func(t *testing.T) {
		repo := new(MockCredentialRepo)
		catalogRepo := new(MockCatalogRepo)
		svc := NewService(repo, catalogRepo)

		catalogRepo.On("GetGymByID", ctx, 2).Return(&catalog.Gym{ID: 2, IsActive: true}, nil)
		repo.On("Deactivate", ctx, 2).Return(int64(1), nil)

		assert.NoError(t, svc.Deactivate(ctx, 2))
	})

	t.Run("Nothing to retire", func(t *testing.T) {
		repo := new(MockCredentialRepo)
		catalogRepo := new(MockCatalogRepo)
		svc := NewService(repo, catalogRepo)

		catalogRepo.On("GetGymByID", ctx, 2).Return(&catalog.Gym{ID: 2, IsActive: true}, nil)
		repo.On("Deactivate", ctx, 2).Return(int64(0), nil)

		assert.ErrorIs(t, svc.Deactivate(ctx, 2), ErrNoActiveCredential)
	})
}

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	assert.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := NewToken()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
