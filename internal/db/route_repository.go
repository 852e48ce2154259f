package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"wastesync-backend-go/internal/models"
	"wastesync-backend-go/internal/result"
)

const routesCollection = "routes"

// firestoreRouteRepository implements the RouteRepository interface using Firestore.
type firestoreRouteRepository struct {
	client *firestore.Client
}

// NewFirestoreRouteRepository creates a new instance of firestoreRouteRepository.
func NewFirestoreRouteRepository(client *firestore.Client) RouteRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for RouteRepository.")
	}
	return &firestoreRouteRepository{client: client}
}

// GetAll retrieves every route document once.
func (r *firestoreRouteRepository) GetAll(ctx context.Context) ([]*models.Route, error) {
	iter := r.client.Collection(routesCollection).Documents(ctx)
	defer iter.Stop()

	var routes []*models.Route
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate routes: %w", err)
		}

		route, err := decodeRoute(doc)
		if err != nil {
			log.Printf("Error decoding route data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		routes = append(routes, route)
	}
	return routes, nil
}

// Listen streams the full route set as a live tri-state subscription.
func (r *firestoreRouteRepository) Listen(ctx context.Context) *result.Subscription[[]*models.Route] {
	return listenQuery(ctx, r.client.Collection(routesCollection).Query, decodeRoute)
}

func decodeRoute(doc *firestore.DocumentSnapshot) (*models.Route, error) {
	var route models.Route
	if err := doc.DataTo(&route); err != nil {
		return nil, fmt.Errorf("failed to decode route data for ID '%s': %w", doc.Ref.ID, err)
	}
	route.ID = doc.Ref.ID
	return &route, nil
}
