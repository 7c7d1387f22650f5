package models

import (
	"net/url"
	"strconv"
)

// SearchFilter is the ephemeral query handed to the search endpoint. It is
// never persisted; absent fields must not appear in the outgoing query
// string, so the salary bounds are pointers to tell "unset" from zero.
type SearchFilter struct {
	JobType   string
	Location  string
	Keyword   string
	Status    string
	MinSalary *float64
	MaxSalary *float64
}

// IsZero reports whether no field of the filter is set.
func (f SearchFilter) IsZero() bool {
	return f.JobType == "" && f.Location == "" && f.Keyword == "" &&
		f.Status == "" && f.MinSalary == nil && f.MaxSalary == nil
}

// QueryValues builds the query parameters for the search call from only the
// present, non-empty fields.
func (f SearchFilter) QueryValues() url.Values {
	v := url.Values{}
	if f.JobType != "" {
		v.Set("job_type", f.JobType)
	}
	if f.Location != "" {
		v.Set("location", f.Location)
	}
	if f.Keyword != "" {
		v.Set("keyword", f.Keyword)
	}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.MinSalary != nil {
		v.Set("min_salary", strconv.FormatFloat(*f.MinSalary, 'f', -1, 64))
	}
	if f.MaxSalary != nil {
		v.Set("max_salary", strconv.FormatFloat(*f.MaxSalary, 'f', -1, 64))
	}
	return v
}
