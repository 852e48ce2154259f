package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wastesync-backend-go/internal/db"
	"wastesync-backend-go/internal/models"
)

type fakeExtraServiceRepo struct {
	requests map[string]*models.ExtraServiceRequest
	nextID   int
}

func newFakeExtraServiceRepo() *fakeExtraServiceRepo {
	return &fakeExtraServiceRepo{requests: make(map[string]*models.ExtraServiceRequest)}
}

func (f *fakeExtraServiceRepo) key(userID, requestID string) string {
	return userID + "/" + requestID
}

func (f *fakeExtraServiceRepo) Create(ctx context.Context, req *models.ExtraServiceRequest) (string, error) {
	f.nextID++
	id := fmt.Sprintf("req-%d", f.nextID)
	clone := *req
	clone.ID = id
	f.requests[f.key(req.UserID, id)] = &clone
	return id, nil
}

func (f *fakeExtraServiceRepo) GetByID(ctx context.Context, userID, requestID string) (*models.ExtraServiceRequest, error) {
	req, ok := f.requests[f.key(userID, requestID)]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *req
	return &clone, nil
}

func (f *fakeExtraServiceRepo) ListByUser(ctx context.Context, userID string) ([]*models.ExtraServiceRequest, error) {
	var out []*models.ExtraServiceRequest
	for _, req := range f.requests {
		if req.UserID == userID {
			clone := *req
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeExtraServiceRepo) Delete(ctx context.Context, userID, requestID string) error {
	key := f.key(userID, requestID)
	if _, ok := f.requests[key]; !ok {
		return db.ErrNotFound
	}
	delete(f.requests, key)
	return nil
}

func TestRequestForcesPendingStatus(t *testing.T) {
	repo := newFakeExtraServiceRepo()
	svc := NewExtraServiceService(repo)

	req, err := svc.Request(context.Background(), "u-1", models.CreateExtraServiceRequest{
		Address: "12 Main St", Description: "bulky waste", Date: "2026-09-15",
	})
	if err != nil {
		t.Fatal(err)
	}
	if req.Status != models.StatusPending {
		t.Fatalf("status = %q, want %q", req.Status, models.StatusPending)
	}
}

func TestRequestRejectsMalformedDate(t *testing.T) {
	svc := NewExtraServiceService(newFakeExtraServiceRepo())

	_, err := svc.Request(context.Background(), "u-1", models.CreateExtraServiceRequest{
		Address: "12 Main St", Date: "15/09/2026",
	})
	if !errors.Is(err, ErrInvalidServiceDate) {
		t.Fatalf("err = %v, want ErrInvalidServiceDate", err)
	}
}

func TestDeleteExtraServiceRequiresPendingStatus(t *testing.T) {
	cases := []struct {
		name    string
		status  models.ReportStatus
		wantErr error
	}{
		{name: "pending deletes", status: models.StatusPending, wantErr: nil},
		{name: "lowercase pending deletes", status: models.ReportStatus("pending"), wantErr: nil},
		{name: "approved is blocked", status: models.StatusApproved, wantErr: ErrRequestNotPending},
		{name: "completed is blocked", status: models.StatusCompleted, wantErr: ErrRequestNotPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeExtraServiceRepo()
			repo.requests["u-1/req-1"] = &models.ExtraServiceRequest{
				ID: "req-1", UserID: "u-1", Status: tc.status,
			}
			svc := NewExtraServiceService(repo)

			err := svc.Delete(context.Background(), "u-1", "req-1")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			_, stillThere := repo.requests["u-1/req-1"]
			if tc.wantErr == nil && stillThere {
				t.Fatal("request was not deleted")
			}
			if tc.wantErr != nil && !stillThere {
				t.Fatal("blocked request must not be deleted")
			}
		})
	}
}

func TestDeleteExtraServiceNotFound(t *testing.T) {
	svc := NewExtraServiceService(newFakeExtraServiceRepo())

	err := svc.Delete(context.Background(), "u-1", "missing")
	if !errors.Is(err, ErrExtraServiceNotFound) {
		t.Fatalf("err = %v, want ErrExtraServiceNotFound", err)
	}
}
