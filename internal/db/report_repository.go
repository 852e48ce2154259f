package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wastesync-backend-go/internal/models"
	"wastesync-backend-go/internal/result"
)

const reportsCollection = "reports"

// firestoreReportRepository implements the ReportRepository interface using Firestore.
type firestoreReportRepository struct {
	client *firestore.Client
}

// NewFirestoreReportRepository creates a new instance of firestoreReportRepository.
func NewFirestoreReportRepository(client *firestore.Client) ReportRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ReportRepository.")
	}
	return &firestoreReportRepository{client: client}
}

// Create adds a new report document with an auto-generated ID. It sets
// report.ID with the new document ID before creation; CreatedAt is handled
// by serverTimestamp.
func (r *firestoreReportRepository) Create(ctx context.Context, report *models.Report) (string, error) {
	docRef := r.client.Collection(reportsCollection).NewDoc()
	report.ID = docRef.ID

	_, err := docRef.Create(ctx, report)
	if err != nil {
		return "", fmt.Errorf("failed to create report: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a report document by its ID.
func (r *firestoreReportRepository) GetByID(ctx context.Context, reportID string) (*models.Report, error) {
	if reportID == "" {
		return nil, errors.New("reportID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(reportsCollection).Doc(reportID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("report with ID '%s' not found: %w", reportID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report with ID '%s': %w", reportID, err)
	}

	report, err := decodeReport(docSnap)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Update modifies an existing report document. Set with MergeAll allows the
// service layer to send partial models.
func (r *firestoreReportRepository) Update(ctx context.Context, report *models.Report) error {
	if report.ID == "" {
		return errors.New("report ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(reportsCollection).Doc(report.ID).Set(ctx, report, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update report with ID '%s': %w", report.ID, err)
	}
	return nil
}

// Delete removes a report document. The Pending-only gate is enforced by the
// service layer, which reads the document first.
func (r *firestoreReportRepository) Delete(ctx context.Context, reportID string) error {
	if reportID == "" {
		return errors.New("reportID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(reportsCollection).Doc(reportID).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("report with ID '%s' not found for deletion: %w", reportID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete report with ID '%s': %w", reportID, err)
	}
	return nil
}

// ListenByUser streams reports filed by one user as a live tri-state
// subscription, using an equality filter on userId.
func (r *firestoreReportRepository) ListenByUser(ctx context.Context, userID string) *result.Subscription[[]*models.Report] {
	query := r.client.Collection(reportsCollection).Where("userId", "==", userID)
	return listenQuery(ctx, query, decodeReport)
}

func decodeReport(doc *firestore.DocumentSnapshot) (*models.Report, error) {
	var report models.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report data for ID '%s': %w", doc.Ref.ID, err)
	}
	report.ID = doc.Ref.ID
	return &report, nil
}
