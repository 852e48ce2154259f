package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wastesync-backend-go/internal/models"
)

const extraServicesSubcollection = "extra_services"

// firestoreExtraServiceRepository implements ExtraServiceRepository using the
// users/{uid}/extra_services sub-collection.
type firestoreExtraServiceRepository struct {
	client *firestore.Client
}

// NewFirestoreExtraServiceRepository creates a new instance of firestoreExtraServiceRepository.
func NewFirestoreExtraServiceRepository(client *firestore.Client) ExtraServiceRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ExtraServiceRepository.")
	}
	return &firestoreExtraServiceRepository{client: client}
}

func (r *firestoreExtraServiceRepository) subcollection(userID string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(userID).Collection(extraServicesSubcollection)
}

// Create adds a new extra-service request under the owner's sub-collection,
// with an auto-generated document ID.
func (r *firestoreExtraServiceRepository) Create(ctx context.Context, req *models.ExtraServiceRequest) (string, error) {
	if req.UserID == "" {
		return "", errors.New("user ID cannot be empty for Create operation")
	}
	docRef := r.subcollection(req.UserID).NewDoc()
	req.ID = docRef.ID

	_, err := docRef.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create extra service request: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves one extra-service request from the owner's sub-collection.
func (r *firestoreExtraServiceRepository) GetByID(ctx context.Context, userID, requestID string) (*models.ExtraServiceRequest, error) {
	if userID == "" || requestID == "" {
		return nil, errors.New("userID and requestID cannot be empty for GetByID operation")
	}
	docSnap, err := r.subcollection(userID).Doc(requestID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("extra service request '%s' not found: %w", requestID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get extra service request '%s': %w", requestID, err)
	}

	var req models.ExtraServiceRequest
	if err := docSnap.DataTo(&req); err != nil {
		return nil, fmt.Errorf("failed to decode extra service request '%s': %w", requestID, err)
	}
	req.ID = docSnap.Ref.ID
	return &req, nil
}

// ListByUser retrieves all of one user's extra-service requests, newest first.
func (r *firestoreExtraServiceRepository) ListByUser(ctx context.Context, userID string) ([]*models.ExtraServiceRequest, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for ListByUser operation")
	}

	iter := r.subcollection(userID).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var requests []*models.ExtraServiceRequest
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate extra service requests for user '%s': %w", userID, err)
		}

		var req models.ExtraServiceRequest
		if err := doc.DataTo(&req); err != nil {
			log.Printf("Error decoding extra service request (ID: %s) for user '%s': %v. Skipping.", doc.Ref.ID, userID, err)
			continue
		}
		req.ID = doc.Ref.ID
		requests = append(requests, &req)
	}
	return requests, nil
}

// Delete removes one extra-service request from the owner's sub-collection.
func (r *firestoreExtraServiceRepository) Delete(ctx context.Context, userID, requestID string) error {
	if userID == "" || requestID == "" {
		return errors.New("userID and requestID cannot be empty for Delete operation")
	}
	_, err := r.subcollection(userID).Doc(requestID).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("extra service request '%s' not found for deletion: %w", requestID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete extra service request '%s': %w", requestID, err)
	}
	return nil
}
