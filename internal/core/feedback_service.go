package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wastesync-backend-go/internal/db"
	"wastesync-backend-go/internal/models"
)

// ErrInvalidRating is returned when a feedback rating is outside 1..5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// feedbackService implements the FeedbackService interface.
type feedbackService struct {
	repo db.FeedbackRepository
}

// NewFeedbackService creates a new FeedbackService instance.
func NewFeedbackService(repo db.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

// Submit writes one worker feedback record. Fire-and-forget from the
// client's perspective: success carries no payload and nothing is read back.
func (s *feedbackService) Submit(ctx context.Context, userID string, req models.SubmitFeedbackRequest) error {
	if req.Rating != 0 && (req.Rating < 1 || req.Rating > 5) {
		return ErrInvalidRating
	}

	feedback := &models.WorkerFeedback{
		ID:         uuid.NewString(),
		UserID:     userID,
		WorkerID:   req.WorkerID,
		WorkerRole: req.WorkerRole,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return fmt.Errorf("failed to submit worker feedback: %w", err)
	}
	return nil
}
