package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"wastesync-backend-go/internal/models"
)

const workerFeedbackCollection = "worker_feedback"

// firestoreFeedbackRepository implements the FeedbackRepository interface using Firestore.
type firestoreFeedbackRepository struct {
	client *firestore.Client
}

// NewFirestoreFeedbackRepository creates a new instance of firestoreFeedbackRepository.
func NewFirestoreFeedbackRepository(client *firestore.Client) FeedbackRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for FeedbackRepository.")
	}
	return &firestoreFeedbackRepository{client: client}
}

// Create writes one feedback document. The service layer assigns the ID;
// CreatedAt is handled by serverTimestamp.
func (r *firestoreFeedbackRepository) Create(ctx context.Context, feedback *models.WorkerFeedback) error {
	if feedback.ID == "" {
		return errors.New("feedback ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(workerFeedbackCollection).Doc(feedback.ID).Create(ctx, feedback)
	if err != nil {
		return fmt.Errorf("failed to create worker feedback: %w", err)
	}
	return nil
}
