package membership

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/user"
)

type MockMembershipRepo struct{ mock.Mock }

func (m *MockMembershipRepo) GetCurrent(ctx context.Context, userID int) (*CurrentMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CurrentMembership), args.Error(1)
}

func (m *MockMembershipRepo) GetActive(ctx context.Context, userID int) (*Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockMembershipRepo) GetByID(ctx context.Context, id int) (*Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockMembershipRepo) CloseActive(ctx context.Context, userID int) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMembershipRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMembershipRepo) CloseActiveTx(ctx context.Context, tx *sqlx.Tx, userID int) error {
	return m.Called(ctx, tx, userID).Error(0)
}

func (m *MockMembershipRepo) IssueTx(ctx context.Context, tx *sqlx.Tx, userID, planID int, start, end time.Time) (*Membership, error) {
	args := m.Called(ctx, tx, userID, planID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func TestServiceGetCurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repo := new(MockMembershipRepo)
		svc := NewService(repo)

		repo.On("GetCurrent", ctx, 1).Return(&CurrentMembership{
			Membership: Membership{ID: 10, UserID: 1, Active: true},
			PlanName:   "Monthly",
		}, nil)

		m, err := svc.GetCurrent(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Monthly", m.PlanName)
	})

	t.Run("Not found", func(t *testing.T) {
		repo := new(MockMembershipRepo)
		svc := NewService(repo)

		repo.On("GetCurrent", ctx, 1).Return(nil, ErrMembershipNotFound)

		_, err := svc.GetCurrent(ctx, 1)
		assert.Equal(t, ErrMembershipNotFound, err)
	})
}

func TestServiceCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Closes active membership", func(t *testing.T) {
		repo := new(MockMembershipRepo)
		svc := NewService(repo)

		repo.On("CloseActive", ctx, 1).Return(int64(1), nil)

		assert.NoError(t, svc.Cancel(ctx, 1))
	})

	t.Run("Nothing active", func(t *testing.T) {
		repo := new(MockMembershipRepo)
		svc := NewService(repo)

		repo.On("CloseActive", ctx, 1).Return(int64(0), nil)

		assert.Equal(t, ErrNoActiveMembership, svc.Cancel(ctx, 1))
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner can delete", func(t *testing.T) {
		repo := new(MockMembershipRepo)
		svc := NewService(repo)

		repo.On("GetByID", ctx, 10).Return(&Membership{ID: 10, UserID: 1}, nil)
		repo.On("Delete", ctx, 10).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 1, user.RoleMember, 10))
	})

	t.Run("Admin can delete another user's membership", func(t *testing.T) {
		repo := new(MockMembershipRepo)
		svc := NewService(repo)

		repo.On("GetByID", ctx, 10).Return(&Membership{ID: 10, UserID: 1}, nil)
		repo.On("Delete", ctx, 10).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 99, user.RoleAdmin, 10))
	})

	t.Run("Non-owner member is rejected", func(t *testing.T) {
		repo := new(MockMembershipRepo)
		svc := NewService(repo)

		repo.On("GetByID", ctx, 10).Return(&Membership{ID: 10, UserID: 1}, nil)

		assert.Equal(t, ErrNotMembershipOwner, svc.Delete(ctx, 99, user.RoleMember, 10))
		repo.AssertNotCalled(t, "Delete", ctx, 10)
	})

	t.Run("Missing membership", func(t *testing.T) {
		repo := new(MockMembershipRepo)
		svc := NewService(repo)

		repo.On("GetByID", ctx, 10).Return(nil, ErrMembershipNotFound)

		assert.Equal(t, ErrMembershipNotFound, svc.Delete(ctx, 1, user.RoleMember, 10))
	})
}
