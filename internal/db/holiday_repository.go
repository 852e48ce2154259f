package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"wastesync-backend-go/internal/models"
)

const holidaysCollection = "holidays"

// firestoreHolidayRepository implements the HolidayRepository interface using Firestore.
type firestoreHolidayRepository struct {
	client *firestore.Client
}

// NewFirestoreHolidayRepository creates a new instance of firestoreHolidayRepository.
func NewFirestoreHolidayRepository(client *firestore.Client) HolidayRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for HolidayRepository.")
	}
	return &firestoreHolidayRepository{client: client}
}

// GetAll retrieves every holiday document once. Ordering is left to the
// service layer, which sorts by parsed date.
func (r *firestoreHolidayRepository) GetAll(ctx context.Context) ([]*models.Holiday, error) {
	iter := r.client.Collection(holidaysCollection).Documents(ctx)
	defer iter.Stop()

	var holidays []*models.Holiday
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate holidays: %w", err)
		}

		var holiday models.Holiday
		if err := doc.DataTo(&holiday); err != nil {
			log.Printf("Error decoding holiday data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		holidays = append(holidays, &holiday)
	}
	return holidays, nil
}
