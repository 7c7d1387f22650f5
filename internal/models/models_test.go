package models_test

import (
	"testing"

	"jobdeck/internal/models"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"employer", "job_seeker"} {
		got, err := models.ParseRole(s)
		if err != nil {
			t.Errorf("ParseRole(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseRole(%q) = %q, want %q", s, got, s)
		}
	}
	for _, s := range []string{"", "admin", "Employer", "jobseeker"} {
		if _, err := models.ParseRole(s); err == nil {
			t.Errorf("ParseRole(%q) expected error, got nil", s)
		}
	}
}

func TestRequiredProfileFields(t *testing.T) {
	employer := models.RequiredProfileFields(models.RoleEmployer)
	seeker := models.RequiredProfileFields(models.RoleJobSeeker)
	if len(employer) != 6 {
		t.Errorf("employer requires %d fields, want 6", len(employer))
	}
	if len(seeker) != 3 {
		t.Errorf("job seeker requires %d fields, want 3", len(seeker))
	}
}

func TestMissingProfileFields_Employer(t *testing.T) {
	p := models.Profile{
		Name:    "Ada",
		Phone:   "555-0100",
		Address: "1 Main St",
	}
	missing := models.MissingProfileFields(p, models.RoleEmployer)
	want := map[string]bool{
		"profile_company":         true,
		"profile_position":        true,
		"profile_company_address": true,
	}
	if len(missing) != len(want) {
		t.Fatalf("missing = %v, want the 3 company fields", missing)
	}
	for _, f := range missing {
		if !want[f] {
			t.Errorf("unexpected missing field %q", f)
		}
	}
}

func TestMissingProfileFields_JobSeekerComplete(t *testing.T) {
	p := models.Profile{
		Name:    "Ada",
		Phone:   "555-0100",
		Address: "1 Main St",
	}
	if missing := models.MissingProfileFields(p, models.RoleJobSeeker); len(missing) != 0 {
		t.Errorf("complete job-seeker profile reported missing fields: %v", missing)
	}
}

func TestJob_ValidSalaryRange(t *testing.T) {
	cases := []struct {
		min, max float64
		want     bool
	}{
		{50000, 90000, true},
		{60000, 60000, true},
		{0, 0, true},
		{90000, 50000, false},
	}
	for _, c := range cases {
		j := models.Job{MinSalary: c.min, MaxSalary: c.max}
		if got := j.ValidSalaryRange(); got != c.want {
			t.Errorf("ValidSalaryRange(min=%v, max=%v) = %v, want %v", c.min, c.max, got, c.want)
		}
	}
}

func TestParseJobStatus(t *testing.T) {
	for _, s := range []string{"open", "closed"} {
		if _, err := models.ParseJobStatus(s); err != nil {
			t.Errorf("ParseJobStatus(%q) returned unexpected error: %v", s, err)
		}
	}
	if _, err := models.ParseJobStatus("archived"); err == nil {
		t.Error("ParseJobStatus(\"archived\") expected error, got nil")
	}
}
