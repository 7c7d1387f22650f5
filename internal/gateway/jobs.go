package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	errs "jobdeck/internal/errors"
	"jobdeck/internal/models"
	"jobdeck/internal/storage"
	"jobdeck/internal/telemetry"
)

type jobEnvelope struct {
	Data struct {
		Job models.Job `json:"job"`
	} `json:"data"`
}

type jobsEnvelope struct {
	Data struct {
		Jobs []models.Job `json:"jobs"`
	} `json:"data"`
}

func (c *client) PostJob(ctx context.Context, job models.Job) (*models.Job, error) {
	ctx, span := tracer.Start(ctx, "PostJob")
	defer span.End()

	if !job.ValidSalaryRange() {
		err := errs.Validation("min_salary must not exceed max_salary", nil)
		span.RecordError(err)
		return nil, err
	}

	var resp jobEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/job-listing", job, &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}

	c.logger.Debug("job posted", zap.String("job_id", resp.Data.Job.ID))
	return &resp.Data.Job, nil
}

func (c *client) GetJobs(ctx context.Context) ([]models.Job, error) {
	ctx, span := tracer.Start(ctx, "GetJobs")
	defer span.End()

	var resp jobsEnvelope
	if err := c.getJSON(ctx, "/job-listing", &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(telemetry.Int("jobs.count", len(resp.Data.Jobs)))
	return resp.Data.Jobs, nil
}

func (c *client) EditJob(ctx context.Context, job models.Job) (*models.Job, error) {
	ctx, span := tracer.Start(ctx, "EditJob")
	defer span.End()

	if !job.ValidSalaryRange() {
		err := errs.Validation("min_salary must not exceed max_salary", nil)
		span.RecordError(err)
		return nil, err
	}

	var resp jobEnvelope
	if err := c.doJSON(ctx, http.MethodPatch, "/job-listing", job, &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &resp.Data.Job, nil
}

// DeleteJob removes a listing. The service expects the id in the request body
// rather than the URL path; that contract detail must not change.
func (c *client) DeleteJob(ctx context.Context, jobID string) error {
	ctx, span := tracer.Start(ctx, "DeleteJob")
	defer span.End()

	body := map[string]string{"_id": jobID}
	if err := c.doJSON(ctx, http.MethodDelete, "/job-listing", body, nil); err != nil {
		span.RecordError(err)
		return err
	}

	c.logger.Debug("job deleted", zap.String("job_id", jobID))
	return nil
}

// SearchJobs queries listings matching the filter. Absent filter fields never
// appear in the query string. Results are cached in storage for the
// configured TTL when one is set.
func (c *client) SearchJobs(ctx context.Context, filter models.SearchFilter) ([]models.Job, error) {
	ctx, span := tracer.Start(ctx, "SearchJobs")
	defer span.End()

	query := filter.QueryValues().Encode()
	path := "/search"
	if query != "" {
		path += "?" + query
	}
	span.SetAttributes(telemetry.String("search.query", query))

	cacheKey := "search:" + query
	if c.config.SearchCacheTTL > 0 {
		raw, err := c.store.Get(ctx, cacheKey)
		if err == nil {
			var cached []models.Job
			if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
				span.SetAttributes(telemetry.String("cache.result", "hit"))
				c.logger.Debug("search cache hit", zap.String("query", query))
				return cached, nil
			}
		} else if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Warn("search cache error", zap.Error(err))
		}
	}

	var resp jobsEnvelope
	if err := c.getJSON(ctx, path, &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(telemetry.Int("jobs.count", len(resp.Data.Jobs)))
	c.logger.Debug("search completed",
		zap.String("query", query),
		zap.Int("count", len(resp.Data.Jobs)))

	if c.config.SearchCacheTTL > 0 {
		if raw, err := json.Marshal(resp.Data.Jobs); err == nil {
			if err := c.store.Set(ctx, cacheKey, raw, c.config.SearchCacheTTL); err != nil {
				c.logger.Warn("failed to cache search results", zap.Error(err))
			}
		}
	}

	return resp.Data.Jobs, nil
}
