package model

import "testing"

func TestCompanyStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from CompanyStatus
		to   CompanyStatus
		want bool
	}{
		{CompanyStatusPending, CompanyStatusApproved, true},
		{CompanyStatusPending, CompanyStatusRejected, true},
		{CompanyStatusPending, CompanyStatusSuspended, false},
		{CompanyStatusApproved, CompanyStatusSuspended, true},
		{CompanyStatusApproved, CompanyStatusRejected, false},
		{CompanyStatusApproved, CompanyStatusPending, false},
		{CompanyStatusSuspended, CompanyStatusApproved, true},
		{CompanyStatusSuspended, CompanyStatusRejected, true},
		{CompanyStatusRejected, CompanyStatusApproved, true},
		{CompanyStatusRejected, CompanyStatusSuspended, false},
		// No self transitions
		{CompanyStatusPending, CompanyStatusPending, false},
		{CompanyStatusApproved, CompanyStatusApproved, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCompanyStatusDeletable(t *testing.T) {
	for _, status := range []CompanyStatus{CompanyStatusPending, CompanyStatusApproved, CompanyStatusSuspended} {
		if status.Deletable() {
			t.Errorf("%s.Deletable() = true, only rejected companies can be deleted", status)
		}
	}
	if !CompanyStatusRejected.Deletable() {
		t.Error("rejected.Deletable() = false")
	}
}

func TestCompanyIsApproved(t *testing.T) {
	c := &Company{Status: CompanyStatusApproved}
	if !c.IsApproved() {
		t.Error("approved company should report approved")
	}
	c.Status = CompanyStatusSuspended
	if c.IsApproved() {
		t.Error("suspended company should not report approved")
	}
}
