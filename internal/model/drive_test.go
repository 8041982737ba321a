package model

import "testing"

func TestDriveStatusApproved(t *testing.T) {
	tests := []struct {
		status DriveStatus
		want   bool
	}{
		{DriveStatusDraft, false},
		{DriveStatusSubmitted, false},
		{DriveStatusRejected, false},
		{DriveStatusApproved, true},
		{DriveStatusUpcoming, true},
		{DriveStatusLive, true},
		{DriveStatusOngoing, true},
		{DriveStatusCompleted, true},
	}

	for _, tt := range tests {
		if got := tt.status.Approved(); got != tt.want {
			t.Errorf("%s.Approved() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestDriveStatusEditable(t *testing.T) {
	tests := []struct {
		status DriveStatus
		want   bool
	}{
		{DriveStatusDraft, true},
		{DriveStatusRejected, true},
		{DriveStatusSubmitted, false},
		{DriveStatusApproved, false},
		{DriveStatusUpcoming, false},
		{DriveStatusLive, false},
		{DriveStatusCompleted, false},
	}

	for _, tt := range tests {
		if got := tt.status.Editable(); got != tt.want {
			t.Errorf("%s.Editable() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestDriveStatusSubmittable(t *testing.T) {
	tests := []struct {
		status DriveStatus
		want   bool
	}{
		{DriveStatusDraft, true},
		{DriveStatusRejected, true},
		{DriveStatusSubmitted, false},
		{DriveStatusApproved, false},
	}

	for _, tt := range tests {
		if got := tt.status.Submittable(); got != tt.want {
			t.Errorf("%s.Submittable() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestDriveStatusReviewable(t *testing.T) {
	for _, status := range []DriveStatus{
		DriveStatusDraft, DriveStatusApproved, DriveStatusRejected,
		DriveStatusUpcoming, DriveStatusLive, DriveStatusCompleted,
	} {
		if status.Reviewable() {
			t.Errorf("%s.Reviewable() = true, only submitted drives are reviewable", status)
		}
	}
	if !DriveStatusSubmitted.Reviewable() {
		t.Error("submitted.Reviewable() = false")
	}
}

func TestDriveIsApprovedMirrorsStatus(t *testing.T) {
	d := &Drive{Status: DriveStatusLive}
	if !d.IsApproved() {
		t.Error("live drive should report approved")
	}
	d.Status = DriveStatusSubmitted
	if d.IsApproved() {
		t.Error("submitted drive should not report approved")
	}
}
