package models

import "testing"

func TestParseReportStatus(t *testing.T) {
	cases := []struct {
		in   string
		want ReportStatus
	}{
		{"Pending", StatusPending},
		{"pending", StatusPending},
		{"  PENDING ", StatusPending},
		{"approved", StatusApproved},
		{"Rejected", StatusRejected},
		{"COMPLETED", StatusCompleted},
	}
	for _, c := range cases {
		got, err := ParseReportStatus(c.in)
		if err != nil {
			t.Errorf("ParseReportStatus(%q) unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseReportStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if _, err := ParseReportStatus("archived"); err == nil {
		t.Error("ParseReportStatus should reject values outside the enumeration")
	}
}

func TestIsPendingCaseInsensitive(t *testing.T) {
	if !ReportStatus("pending").IsPending() {
		t.Error("lowercase stored status should still count as pending")
	}
	if ReportStatus("Approved").IsPending() {
		t.Error("Approved is not pending")
	}
}
