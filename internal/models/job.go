package models

import "fmt"

// JobStatus says whether a listing still accepts applications.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// ParseJobStatus converts a raw string to a JobStatus, returning an error for
// unknown values.
func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	switch st {
	case JobStatusOpen, JobStatusClosed:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// Job is an employer-posted listing. `_id` is the canonical identifier field;
// every in-store comparison uses it.
type Job struct {
	ID               string        `json:"_id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Company          string        `json:"company"`
	Location         string        `json:"location"`
	Qualifications   []string      `json:"qualifications"`
	Responsibilities []string      `json:"responsibilities"`
	MinSalary        float64       `json:"min_salary"`
	MaxSalary        float64       `json:"max_salary"`
	JobType          string        `json:"job_type"`
	Status           JobStatus     `json:"status"`
	Applications     []Application `json:"applications,omitempty"`
}

// ValidSalaryRange reports whether the listing keeps min_salary <= max_salary.
func (j Job) ValidSalaryRange() bool {
	return j.MinSalary <= j.MaxSalary
}
