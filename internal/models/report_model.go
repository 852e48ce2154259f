package models

import (
	"fmt"
	"strings"
	"time"
)

// ReportStatus is the closed lifecycle enumeration for reports and extra
// service requests. Values are stored canonically; parsing is
// case-insensitive because historical documents carry arbitrary casing.
type ReportStatus string

const (
	StatusPending   ReportStatus = "Pending"
	StatusApproved  ReportStatus = "Approved"
	StatusRejected  ReportStatus = "Rejected"
	StatusCompleted ReportStatus = "Completed"
)

// ParseReportStatus normalizes a free-form status string into the closed
// enumeration.
func ParseReportStatus(s string) (ReportStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	case "rejected":
		return StatusRejected, nil
	case "completed":
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown report status %q", s)
	}
}

// IsPending reports whether the status equals Pending, case-insensitively.
func (s ReportStatus) IsPending() bool {
	return strings.EqualFold(string(s), string(StatusPending))
}

// Report is a complaint filed by a resident against a crew or a route run.
// Status transitions are driven by back-office tooling; the client may only
// delete a report while it is still Pending.
type Report struct {
	ID          string       `json:"id" firestore:"-"`
	UserID      string       `json:"userId" firestore:"userId"`
	DriverID    string       `json:"driverId,omitempty" firestore:"driverId,omitempty"`
	CollectorID string       `json:"collectorId,omitempty" firestore:"collectorId,omitempty"`
	RouteID     string       `json:"routeId" firestore:"routeId"`
	AreaID      string       `json:"areaId" firestore:"areaId"`
	AreaName    string       `json:"areaName,omitempty" firestore:"areaName,omitempty"`
	Description string       `json:"description" firestore:"description"`
	Attachments []string     `json:"attachments,omitempty" firestore:"attachments,omitempty"`
	Status      ReportStatus `json:"status" firestore:"status"`
	CreatedAt   time.Time    `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// ExtraServiceRequest is an on-demand pickup request, stored in the per-user
// extra_services sub-collection. Same lifecycle shape as Report.
type ExtraServiceRequest struct {
	ID          string       `json:"id" firestore:"-"`
	UserID      string       `json:"userId" firestore:"userId"`
	AreaID      string       `json:"areaId,omitempty" firestore:"areaId,omitempty"`
	RouteID     string       `json:"routeId,omitempty" firestore:"routeId,omitempty"`
	Address     string       `json:"address" firestore:"address"`
	Description string       `json:"description" firestore:"description"`
	Date        string       `json:"date" firestore:"date"` // yyyy-MM-dd
	Status      ReportStatus `json:"status" firestore:"status"`
	CreatedAt   time.Time    `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
