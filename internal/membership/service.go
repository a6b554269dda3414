package membership

import (
	"context"
	"errors"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/user"
)

var (
	ErrNoActiveMembership = errors.New("no active membership")
	ErrNotMembershipOwner = errors.New("caller does not own this membership")
)

type Service interface {
	GetCurrent(ctx context.Context, userID int) (*CurrentMembership, error)
	Cancel(ctx context.Context, userID int) error
	Delete(ctx context.Context, callerID int, callerRole string, membershipID int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCurrent(ctx context.Context, userID int) (*CurrentMembership, error) {
	m, err := s.repo.GetCurrent(ctx, userID)
	if err != nil {
		return nil, ErrMembershipNotFound
	}
	return m, nil
}

func (s *service) Cancel(ctx context.Context, userID int) error {
	closed, err := s.repo.CloseActive(ctx, userID)
	if err != nil {
		return err
	}
	if closed == 0 {
		return ErrNoActiveMembership
	}
	return nil
}

func (s *service) Delete(ctx context.Context, callerID int, callerRole string, membershipID int) error {
	m, err := s.repo.GetByID(ctx, membershipID)
	if err != nil {
		return ErrMembershipNotFound
	}

	if m.UserID != callerID && callerRole != user.RoleAdmin {
		return ErrNotMembershipOwner
	}

	return s.repo.Delete(ctx, membershipID)
}
