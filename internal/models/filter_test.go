package models_test

import (
	"testing"

	"jobdeck/internal/models"
)

func TestSearchFilter_QueryValues_Empty(t *testing.T) {
	v := models.SearchFilter{}.QueryValues()
	if got := v.Encode(); got != "" {
		t.Errorf("empty filter produced query %q, want empty", got)
	}
}

func TestSearchFilter_QueryValues_SingleField(t *testing.T) {
	v := models.SearchFilter{JobType: "contract"}.QueryValues()
	if got := v.Encode(); got != "job_type=contract" {
		t.Errorf("QueryValues().Encode() = %q, want %q", got, "job_type=contract")
	}
}

func TestSearchFilter_QueryValues_OmitsAbsentFields(t *testing.T) {
	min := 50000.0
	f := models.SearchFilter{
		Keyword:   "golang",
		Location:  "remote",
		MinSalary: &min,
	}
	v := f.QueryValues()

	for _, key := range []string{"keyword", "location", "min_salary"} {
		if v.Get(key) == "" {
			t.Errorf("expected %q to be set", key)
		}
	}
	for _, key := range []string{"job_type", "status", "max_salary"} {
		if _, ok := v[key]; ok {
			t.Errorf("absent field %q must not appear in query", key)
		}
	}
	if got := v.Get("min_salary"); got != "50000" {
		t.Errorf("min_salary = %q, want %q", got, "50000")
	}
}

func TestSearchFilter_QueryValues_ZeroSalaryIsNotAbsent(t *testing.T) {
	zero := 0.0
	v := models.SearchFilter{MinSalary: &zero}.QueryValues()
	if got := v.Get("min_salary"); got != "0" {
		t.Errorf("explicit zero min_salary = %q, want %q", got, "0")
	}
}

func TestSearchFilter_IsZero(t *testing.T) {
	if !(models.SearchFilter{}).IsZero() {
		t.Error("empty filter should be zero")
	}
	max := 1.0
	nonZero := []models.SearchFilter{
		{JobType: "contract"},
		{Location: "remote"},
		{Keyword: "go"},
		{Status: "open"},
		{MaxSalary: &max},
	}
	for i, f := range nonZero {
		if f.IsZero() {
			t.Errorf("filter %d should not be zero", i)
		}
	}
}
