package domain_test

import (
	"testing"

	"careertrack-backend/internal/domain"
)

func TestComputeStats_Empty(t *testing.T) {
	stats := domain.ComputeStats(nil)
	if stats.Total != 0 {
		t.Errorf("ComputeStats(nil).Total = %d, want 0", stats.Total)
	}
}

func TestComputeStats_CountsPerStatus(t *testing.T) {
	apps := []domain.Application{
		{Status: domain.ApplicationStatusApplied},
		{Status: domain.ApplicationStatusApplied},
		{Status: domain.ApplicationStatusInterviewing},
		{Status: domain.ApplicationStatusOffer},
		{Status: domain.ApplicationStatusRejected},
		{Status: domain.ApplicationStatusAccepted},
	}

	stats := domain.ComputeStats(apps)

	if stats.Total != 6 {
		t.Errorf("Total = %d, want 6", stats.Total)
	}
	if stats.Applied != 2 {
		t.Errorf("Applied = %d, want 2", stats.Applied)
	}
	if stats.Interviewing != 1 || stats.Offer != 1 || stats.Rejected != 1 || stats.Accepted != 1 {
		t.Errorf("per-status counts = %+v, want 1 each for interviewing/offer/rejected/accepted", stats)
	}
}

func TestComputeStats_ReflectsInputListOnly(t *testing.T) {
	// Stats over a filtered list must describe the filtered list, not the
	// client's full history.
	filtered := []domain.Application{
		{Status: domain.ApplicationStatusInterviewing},
		{Status: domain.ApplicationStatusInterviewing},
	}

	stats := domain.ComputeStats(filtered)

	if stats.Total != 2 {
		t.Errorf("Total = %d, want 2 (the filtered count)", stats.Total)
	}
	if stats.Interviewing != 2 {
		t.Errorf("Interviewing = %d, want 2", stats.Interviewing)
	}
	if stats.Applied != 0 {
		t.Errorf("Applied = %d, want 0", stats.Applied)
	}
}

func TestIsValidApplicationStatus(t *testing.T) {
	for _, s := range domain.ApplicationStatuses() {
		if !domain.IsValidApplicationStatus(s) {
			t.Errorf("IsValidApplicationStatus(%q) = false, want true", s)
		}
	}

	for _, s := range []string{"", "pending", "APPLIED", "reviewed"} {
		if domain.IsValidApplicationStatus(s) {
			t.Errorf("IsValidApplicationStatus(%q) = true, want false", s)
		}
	}
}
