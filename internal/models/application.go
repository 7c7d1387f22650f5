// Application status graph, as enforced client-side before the status call
// goes out:
//
//	applied ──► reviewed ──► interview ──► hired
//	   │            │             │
//	   └────────────┴─────────────┴──► rejected
//
// applied may also jump straight to interview or hired; hired and rejected
// are terminal.
package models

import (
	"fmt"
	"time"
)

// ApplicationStatus values mirror the status enum of the remote service.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusReviewed  ApplicationStatus = "reviewed"
	StatusInterview ApplicationStatus = "interview"
	StatusHired     ApplicationStatus = "hired"
	StatusRejected  ApplicationStatus = "rejected"
)

// validStatusTransitions lists every allowed (from → to) pair.
var validStatusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied:   {StatusReviewed, StatusInterview, StatusHired, StatusRejected},
	StatusReviewed:  {StatusInterview, StatusHired, StatusRejected},
	StatusInterview: {StatusHired, StatusRejected},
	// hired and rejected are terminal, no outgoing transitions
}

// ParseApplicationStatus converts a raw string to an ApplicationStatus,
// returning an error for unknown values.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case StatusApplied, StatusReviewed, StatusInterview, StatusHired, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// CanTransition returns true when moving from → to is permitted.
func CanTransition(from, to ApplicationStatus) bool {
	allowed, ok := validStatusTransitions[from]
	if !ok {
		return false // terminal state
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether no further transition can leave s.
func IsTerminalStatus(s ApplicationStatus) bool {
	_, ok := validStatusTransitions[s]
	return !ok
}

// Application is a job seeker's submission against a listing. Only the owning
// employer mutates Status, and only along the transition graph above.
type Application struct {
	ID            string            `json:"_id"`
	JobID         string            `json:"job_id"`
	ApplicantName string            `json:"applicant_name"`
	CoverLetter   string            `json:"cover_letter"`
	Resume        string            `json:"resume"`
	Status        ApplicationStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// AppliedJob is one row of the job seeker's applied-jobs view. It is a
// materialized collection of its own, not derived from Job.Applications.
type AppliedJob struct {
	ID        string            `json:"_id"`
	Job       Job               `json:"job"`
	Status    ApplicationStatus `json:"application_status"`
	CreatedAt time.Time         `json:"created_at"`
}
