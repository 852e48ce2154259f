package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"wastesync-backend-go/internal/models"
	"wastesync-backend-go/internal/result"
)

const routeProgressCollection = "route_progress"

// firestoreRouteProgressRepository implements RouteProgressRepository using
// Firestore. Progress documents are written by field crews; this service
// only ever attaches listeners.
type firestoreRouteProgressRepository struct {
	client *firestore.Client
}

// NewFirestoreRouteProgressRepository creates a new instance of firestoreRouteProgressRepository.
func NewFirestoreRouteProgressRepository(client *firestore.Client) RouteProgressRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for RouteProgressRepository.")
	}
	return &firestoreRouteProgressRepository{client: client}
}

// Listen streams every route-progress document, unfiltered. Clients pick the
// run matching their assigned route out of the snapshot.
func (r *firestoreRouteProgressRepository) Listen(ctx context.Context) *result.Subscription[[]*models.RouteProgress] {
	return listenQuery(ctx, r.client.Collection(routeProgressCollection).Query, func(doc *firestore.DocumentSnapshot) (*models.RouteProgress, error) {
		var progress models.RouteProgress
		if err := doc.DataTo(&progress); err != nil {
			return nil, fmt.Errorf("failed to decode route progress data for ID '%s': %w", doc.Ref.ID, err)
		}
		progress.ID = doc.Ref.ID
		return &progress, nil
	})
}
