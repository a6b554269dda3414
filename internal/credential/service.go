package credential

import (
	"context"
	"errors"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/catalog"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/logger"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/metrics"
)

var (
	ErrGymNotFound        = errors.New("gym not found")
	ErrGymInactive        = errors.New("gym is not active")
	ErrNoActiveCredential = errors.New("gym has no active credential")
)

type Service interface {
	Rotate(ctx context.Context, gymID int) (*GymAccessCredential, error)
	GetActive(ctx context.Context, gymID int) (*GymAccessCredential, error)
	Deactivate(ctx context.Context, gymID int) error
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
}

func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{repo: repo, catalogRepo: catalogRepo}
}

func (s *service) Rotate(ctx context.Context, gymID int) (*GymAccessCredential, error) {
	gym, err := s.catalogRepo.GetGymByID(ctx, gymID)
	if err != nil {
		return nil, ErrGymNotFound
	}
	if !gym.IsActive {
		return nil, ErrGymInactive
	}

	token, err := NewToken()
	if err != nil {
		return nil, err
	}

	cred, err := s.repo.Rotate(ctx, gymID, token)
	if err != nil {
		return nil, err
	}

	metrics.RecordCredentialRotation()
	logger.Info("Rotated gym access credential", "gym_id", gymID, "credential_id", cred.ID)

	return cred, nil
}

func (s *service) GetActive(ctx context.Context, gymID int) (*GymAccessCredential, error) {
	if _, err := s.catalogRepo.GetGymByID(ctx, gymID); err != nil {
		return nil, ErrGymNotFound
	}

	cred, err := s.repo.GetActive(ctx, gymID)
	if err != nil {
		return nil, ErrNoActiveCredential
	}

	return cred, nil
}

func (s *service) Deactivate(ctx context.Context, gymID int) error {
	if _, err := s.catalogRepo.GetGymByID(ctx, gymID); err != nil {
		return ErrGymNotFound
	}

	retired, err := s.repo.Deactivate(ctx, gymID)
	if err != nil {
		return err
	}

	if retired == 0 {
		return ErrNoActiveCredential
	}

	logger.Info("Deactivated gym access credential", "gym_id", gymID)
	return nil
}
