package core

import (
	"context"
	"errors"
	"testing"

	"wastesync-backend-go/internal/db"
	"wastesync-backend-go/internal/models"
	"wastesync-backend-go/internal/result"
)

// fakeReportRepo is an in-memory ReportRepository.
type fakeReportRepo struct {
	reports   map[string]*models.Report
	createErr error
	deleted   []string
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*models.Report)}
}

func (f *fakeReportRepo) Create(ctx context.Context, report *models.Report) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	report.ID = "r-1"
	clone := *report
	f.reports[report.ID] = &clone
	return report.ID, nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, reportID string) (*models.Report, error) {
	report, ok := f.reports[reportID]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *report
	return &clone, nil
}

func (f *fakeReportRepo) Update(ctx context.Context, report *models.Report) error {
	clone := *report
	f.reports[report.ID] = &clone
	return nil
}

func (f *fakeReportRepo) Delete(ctx context.Context, reportID string) error {
	if _, ok := f.reports[reportID]; !ok {
		return db.ErrNotFound
	}
	delete(f.reports, reportID)
	f.deleted = append(f.deleted, reportID)
	return nil
}

func (f *fakeReportRepo) ListenByUser(ctx context.Context, userID string) *result.Subscription[[]*models.Report] {
	return result.Start(ctx, func(ctx context.Context, emit func(result.Result[[]*models.Report]) bool) {
		emit(result.Loading[[]*models.Report]())
	})
}

func TestCreateReportForcesPendingStatus(t *testing.T) {
	repo := newFakeReportRepo()
	svc := NewReportService(repo)

	report, err := svc.CreateReport(context.Background(), "u-1", models.CreateReportRequest{
		RouteID:     "route-1",
		AreaID:      "area-1",
		Description: "missed pickup",
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.Status != models.StatusPending {
		t.Fatalf("new report status = %q, want Pending", report.Status)
	}
	if report.UserID != "u-1" {
		t.Fatalf("report owner = %q", report.UserID)
	}
}

func TestDeleteReportAllowedWhilePending(t *testing.T) {
	repo := newFakeReportRepo()
	repo.reports["r-1"] = &models.Report{ID: "r-1", UserID: "u-1", Status: models.StatusPending}
	svc := NewReportService(repo)

	if err := svc.DeleteReport(context.Background(), "u-1", "r-1"); err != nil {
		t.Fatal(err)
	}
	if len(repo.deleted) != 1 {
		t.Fatal("report not deleted")
	}
}

func TestDeleteReportRejectedOnceApproved(t *testing.T) {
	repo := newFakeReportRepo()
	repo.reports["r-1"] = &models.Report{ID: "r-1", UserID: "u-1", Status: models.StatusApproved}
	svc := NewReportService(repo)

	err := svc.DeleteReport(context.Background(), "u-1", "r-1")
	if !errors.Is(err, ErrReportNotPending) {
		t.Fatalf("err = %v, want ErrReportNotPending", err)
	}
}

func TestDeleteReportPendingGateIsCaseInsensitive(t *testing.T) {
	repo := newFakeReportRepo()
	repo.reports["r-1"] = &models.Report{ID: "r-1", UserID: "u-1", Status: models.ReportStatus("pending")}
	svc := NewReportService(repo)

	if err := svc.DeleteReport(context.Background(), "u-1", "r-1"); err != nil {
		t.Fatalf("lowercase stored status should still pass the gate: %v", err)
	}
}

func TestDeleteReportForbiddenForOtherUsers(t *testing.T) {
	repo := newFakeReportRepo()
	repo.reports["r-1"] = &models.Report{ID: "r-1", UserID: "u-1", Status: models.StatusPending}
	svc := NewReportService(repo)

	err := svc.DeleteReport(context.Background(), "u-2", "r-1")
	if !errors.Is(err, ErrForbiddenAccess) {
		t.Fatalf("err = %v, want ErrForbiddenAccess", err)
	}
}

func TestDeleteReportNotFound(t *testing.T) {
	svc := NewReportService(newFakeReportRepo())

	err := svc.DeleteReport(context.Background(), "u-1", "missing")
	if !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("err = %v, want ErrReportNotFound", err)
	}
}

func TestUpdateReportOnlyWhilePending(t *testing.T) {
	repo := newFakeReportRepo()
	repo.reports["r-1"] = &models.Report{ID: "r-1", UserID: "u-1", Status: models.StatusCompleted, Description: "old"}
	svc := NewReportService(repo)

	desc := "new"
	_, err := svc.UpdateReport(context.Background(), "u-1", "r-1", models.UpdateReportRequest{Description: &desc})
	if !errors.Is(err, ErrReportNotPending) {
		t.Fatalf("err = %v, want ErrReportNotPending", err)
	}
	if repo.reports["r-1"].Description != "old" {
		t.Fatal("description mutated despite failed gate")
	}
}
