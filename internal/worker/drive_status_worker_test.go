package worker

import (
	"testing"
	"time"

	"github.com/campushire/driveport-backend/internal/model"
)

func TestNextStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	before := now.Add(2 * time.Hour)
	inWindow := now.Add(-30 * time.Minute)
	past := now.Add(-3 * time.Hour)

	tests := []struct {
		name   string
		status model.DriveStatus
		start  *time.Time
		want   model.DriveStatus
	}{
		{"approved before start", model.DriveStatusApproved, &before, model.DriveStatusUpcoming},
		{"upcoming stays before start", model.DriveStatusUpcoming, &before, model.DriveStatusUpcoming},
		{"approved inside window", model.DriveStatusApproved, &inWindow, model.DriveStatusLive},
		{"upcoming inside window", model.DriveStatusUpcoming, &inWindow, model.DriveStatusLive},
		{"ongoing holds inside window", model.DriveStatusOngoing, &inWindow, model.DriveStatusOngoing},
		{"live after window", model.DriveStatusLive, &past, model.DriveStatusCompleted},
		{"ongoing after window", model.DriveStatusOngoing, &past, model.DriveStatusCompleted},
		{"upcoming after window", model.DriveStatusUpcoming, &past, model.DriveStatusCompleted},
		{"completed stays completed", model.DriveStatusCompleted, &past, model.DriveStatusCompleted},
		{"no schedule stays put", model.DriveStatusApproved, nil, model.DriveStatusApproved},
		{"draft never advances", model.DriveStatusDraft, &past, model.DriveStatusDraft},
		{"submitted never advances", model.DriveStatusSubmitted, &inWindow, model.DriveStatusSubmitted},
		{"rejected never advances", model.DriveStatusRejected, &past, model.DriveStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drive := &model.Drive{
				Status:          tt.status,
				ScheduledStart:  tt.start,
				DurationMinutes: 60,
			}
			if got := NextStatus(drive, now); got != tt.want {
				t.Errorf("NextStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNextStatusWindowBoundaries(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	drive := &model.Drive{
		Status:          model.DriveStatusUpcoming,
		ScheduledStart:  &start,
		DurationMinutes: 60,
	}

	// Exactly at start the drive goes live.
	if got := NextStatus(drive, start); got != model.DriveStatusLive {
		t.Errorf("at start = %s, want live", got)
	}
	// Exactly at the end it completes.
	if got := NextStatus(drive, start.Add(60*time.Minute)); got != model.DriveStatusCompleted {
		t.Errorf("at end = %s, want completed", got)
	}
}

func TestGeneratePassword(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		pw, err := generatePassword()
		if err != nil {
			t.Fatalf("generatePassword: %v", err)
		}
		if len(pw) != passwordLength {
			t.Fatalf("length = %d, want %d", len(pw), passwordLength)
		}
		for _, r := range pw {
			switch r {
			case '0', 'O', '1', 'l', 'I', 'B', 'o':
				t.Errorf("password %q contains ambiguous character %q", pw, r)
			}
		}
		seen[pw] = struct{}{}
	}
	if len(seen) < 45 {
		t.Errorf("expected mostly unique passwords, got %d distinct of 50", len(seen))
	}
}
