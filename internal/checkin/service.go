package checkin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/catalog"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/credential"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/logger"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/membership"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/metrics"
)

var (
	ErrCredentialInvalid = errors.New("access credential is invalid")
	ErrGymInactive       = errors.New("gym is not active")
	ErrNoEntitlement     = errors.New("no membership covering this gym")
	ErrNotSessionOwner   = errors.New("caller does not own this session")
	ErrAlreadyCheckedOut = errors.New("session is already checked out")
	ErrGymNotFound       = errors.New("gym not found")
)

const (
	rejectInvalidCredential = "invalid_credential"
	rejectGymInactive       = "gym_inactive"
	rejectAlreadyCheckedIn  = "already_checked_in"
	rejectNoEntitlement     = "no_entitlement"
)

type Service interface {
	CheckIn(ctx context.Context, userID int, req CheckInRequest) (*CheckInSession, error)
	CheckOut(ctx context.Context, userID, sessionID int) (*SessionWithDuration, error)
	Occupancy(ctx context.Context, gymID int) (int, error)
	ListMy(ctx context.Context, userID int) ([]SessionWithDuration, error)
}

type service struct {
	repo           Repository
	credentialRepo credential.Repository
	membershipRepo membership.Repository
	catalogRepo    catalog.Repository
}

func NewService(repo Repository, credentialRepo credential.Repository, membershipRepo membership.Repository, catalogRepo catalog.Repository) Service {
	return &service{
		repo:           repo,
		credentialRepo: credentialRepo,
		membershipRepo: membershipRepo,
		catalogRepo:    catalogRepo,
	}
}

// CheckIn walks the full gate: token → credential → gym → entitlement →
// session. The storage unique index backstops the single-active-session
// check for racing scans.
func (s *service) CheckIn(ctx context.Context, userID int, req CheckInRequest) (*CheckInSession, error) {
	cred, err := s.credentialRepo.GetActiveByToken(ctx, req.Token)
	if err != nil {
		metrics.RecordCheckInRejection(rejectInvalidCredential)
		return nil, ErrCredentialInvalid
	}

	gym, err := s.catalogRepo.GetGymByID(ctx, cred.GymID)
	if err != nil {
		metrics.RecordCheckInRejection(rejectInvalidCredential)
		return nil, ErrCredentialInvalid
	}
	if !gym.IsActive {
		metrics.RecordCheckInRejection(rejectGymInactive)
		return nil, ErrGymInactive
	}

	m, err := s.membershipRepo.GetActive(ctx, userID)
	if err != nil {
		metrics.RecordCheckInRejection(rejectNoEntitlement)
		return nil, ErrNoEntitlement
	}

	planIDs, err := s.catalogRepo.PlanIDsForGym(ctx, gym.ID)
	if err != nil {
		return nil, err
	}
	if !containsInt(planIDs, m.PlanID) {
		metrics.RecordCheckInRejection(rejectNoEntitlement)
		return nil, ErrNoEntitlement
	}

	session, err := s.repo.Create(ctx, userID, gym.ID, req.Notes)
	if err != nil {
		if errors.Is(err, ErrAlreadyCheckedIn) {
			metrics.RecordCheckInRejection(rejectAlreadyCheckedIn)
		}
		return nil, err
	}

	metrics.RecordCheckIn()
	logger.Info("Member checked in", "user_id", userID, "gym_id", gym.ID, "session_id", session.ID)

	return session, nil
}

func (s *service) CheckOut(ctx context.Context, userID, sessionID int) (*SessionWithDuration, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	if session.UserID != userID {
		return nil, ErrNotSessionOwner
	}

	closed, err := s.repo.CheckOut(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlreadyCheckedOut
		}
		return nil, err
	}

	metrics.RecordCheckOut()
	logger.Info("Member checked out", "user_id", userID, "session_id", sessionID)

	result := withDuration(*closed)
	return &result, nil
}

func (s *service) Occupancy(ctx context.Context, gymID int) (int, error) {
	if _, err := s.catalogRepo.GetGymByID(ctx, gymID); err != nil {
		return 0, ErrGymNotFound
	}

	return s.repo.CountActive(ctx, gymID)
}

func (s *service) ListMy(ctx context.Context, userID int) ([]SessionWithDuration, error) {
	sessions, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]SessionWithDuration, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, withDuration(session))
	}

	return out, nil
}

func containsInt(list []int, v int) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
