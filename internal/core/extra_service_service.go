package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wastesync-backend-go/internal/db"
	"wastesync-backend-go/internal/models"
)

// ErrExtraServiceNotFound is returned when an extra pickup request does not exist.
var ErrExtraServiceNotFound = errors.New("extra service request not found")

// ErrInvalidServiceDate is returned when the requested date is not yyyy-MM-dd.
var ErrInvalidServiceDate = errors.New("service date must use the yyyy-MM-dd layout")

// ErrRequestNotPending is returned when deletion is attempted on a request
// that has already been approved, rejected or completed.
var ErrRequestNotPending = errors.New("extra service request is no longer pending")

// extraServiceService implements the ExtraServiceService interface.
type extraServiceService struct {
	repo db.ExtraServiceRepository
}

// NewExtraServiceService creates a new ExtraServiceService instance.
func NewExtraServiceService(repo db.ExtraServiceRepository) ExtraServiceService {
	return &extraServiceService{repo: repo}
}

// Request files an extra pickup request under the caller's sub-collection.
// Status starts as Pending.
func (s *extraServiceService) Request(ctx context.Context, userID string, req models.CreateExtraServiceRequest) (*models.ExtraServiceRequest, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidServiceDate, req.Date)
	}

	request := &models.ExtraServiceRequest{
		UserID:      userID,
		AreaID:      req.AreaID,
		RouteID:     req.RouteID,
		Address:     req.Address,
		Description: req.Description,
		Date:        req.Date,
		Status:      models.StatusPending,
	}

	id, err := s.repo.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create extra service request: %w", err)
	}
	request.ID = id
	return request, nil
}

// List returns all of the caller's extra pickup requests.
func (s *extraServiceService) List(ctx context.Context, userID string) ([]*models.ExtraServiceRequest, error) {
	requests, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra service requests for user '%s': %w", userID, err)
	}
	return requests, nil
}

// Delete removes one of the caller's requests. Ownership is structural (the
// document lives under the caller's sub-collection); the Pending-only gate
// matches the report lifecycle.
func (s *extraServiceService) Delete(ctx context.Context, userID, requestID string) error {
	request, err := s.repo.GetByID(ctx, userID, requestID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s'", ErrExtraServiceNotFound, requestID)
		}
		return fmt.Errorf("failed to get extra service request '%s': %w", requestID, err)
	}
	if !request.Status.IsPending() {
		return ErrRequestNotPending
	}

	if err := s.repo.Delete(ctx, userID, requestID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s'", ErrExtraServiceNotFound, requestID)
		}
		return fmt.Errorf("failed to delete extra service request '%s': %w", requestID, err)
	}
	return nil
}
