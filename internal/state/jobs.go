package state

import (
	"sync"

	"jobdeck/internal/models"
)

// JobsStore holds the employer's own listings, the latest search results,
// and the seeker's applied-jobs view, plus the pending search-keyword
// buffer handed from navigation to the search view.
type JobsStore struct {
	mu          sync.RWMutex
	jobs        []models.Job
	postedJobs  []models.Job
	appliedJobs []models.AppliedJob
	keyword     models.SearchFilter
}

func NewJobsStore() *JobsStore {
	return &JobsStore{}
}

// SetJobs replaces the employer-owned listing collection wholesale.
func (s *JobsStore) SetJobs(jobs []models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = copyJobs(jobs)
}

// SetPostedJobs replaces the search-result collection wholesale.
func (s *JobsStore) SetPostedJobs(jobs []models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postedJobs = copyJobs(jobs)
}

// SetAppliedJobs replaces the applied-jobs view wholesale.
func (s *JobsStore) SetAppliedJobs(applied []models.AppliedJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appliedJobs = append([]models.AppliedJob(nil), applied...)
}

func (s *JobsStore) Jobs() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyJobs(s.jobs)
}

func (s *JobsStore) PostedJobs() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyJobs(s.postedJobs)
}

func (s *JobsStore) AppliedJobs() []models.AppliedJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AppliedJob(nil), s.appliedJobs...)
}

// SetKeyword stores a pending search filter for the next fetch.
func (s *JobsStore) SetKeyword(filter models.SearchFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyword = filter
}

// ConsumeKeyword returns the pending filter and resets the buffer. The
// search intent is a one-shot handoff.
func (s *JobsStore) ConsumeKeyword() models.SearchFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	filter := s.keyword
	s.keyword = models.SearchFilter{}
	return filter
}

// UpdateJob replaces the listing with the same `_id` in place, preserving
// order and all other entries. Returns false (and changes nothing) when no
// listing matches.
func (s *JobsStore) UpdateJob(updated models.Job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, job := range s.jobs {
		if job.ID == updated.ID {
			s.jobs[i] = updated
			return true
		}
	}
	return false
}

// AppendJob adds a freshly created listing to the employer collection.
func (s *JobsStore) AppendJob(job models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
}

// DeleteJob removes the listing with the given `_id`, keeping the relative
// order of the rest. Deleting an unknown id is a no-op.
func (s *JobsStore) DeleteJob(jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, job := range s.jobs {
		if job.ID == jobID {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return true
		}
	}
	return false
}

// Clear resets every collection and the keyword buffer.
func (s *JobsStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = nil
	s.postedJobs = nil
	s.appliedJobs = nil
	s.keyword = models.SearchFilter{}
}

func copyJobs(jobs []models.Job) []models.Job {
	if jobs == nil {
		return nil
	}
	return append([]models.Job(nil), jobs...)
}
