package gateway

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	errs "jobdeck/internal/errors"
	"jobdeck/internal/models"
	"jobdeck/internal/telemetry"
)

type applicationsEnvelope struct {
	Data struct {
		Applications []models.Application `json:"applications"`
	} `json:"data"`
}

// ApplyForJob submits an application as multipart form data. A resume file
// or the stored-resume flag must be present; that is checked before any
// network traffic happens.
func (c *client) ApplyForJob(ctx context.Context, application JobApplication) error {
	ctx, span := tracer.Start(ctx, "ApplyForJob")
	defer span.End()

	if application.ResumeFile == nil && !application.UseStoredResume {
		err := errs.Validation("a resume file or the stored-resume flag is required", nil)
		span.RecordError(err)
		return err
	}

	err := c.postMultipart(ctx, "/jobs", func(w *multipart.Writer) error {
		if err := w.WriteField("job_id", application.JobID); err != nil {
			return err
		}
		if err := w.WriteField("cover_letter", application.CoverLetter); err != nil {
			return err
		}
		if err := w.WriteField("use_existing_resume", strconv.FormatBool(application.UseStoredResume)); err != nil {
			return err
		}
		if application.ResumeFile != nil {
			part, err := w.CreateFormFile("resume", application.ResumeFilename)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, application.ResumeFile); err != nil {
				return err
			}
		}
		return nil
	}, nil)
	if err != nil {
		span.RecordError(err)
		return err
	}

	c.logger.Debug("application submitted", zap.String("job_id", application.JobID))
	return nil
}

func (c *client) GetAppliedJobs(ctx context.Context) ([]models.AppliedJob, error) {
	ctx, span := tracer.Start(ctx, "GetAppliedJobs")
	defer span.End()

	var resp struct {
		Data struct {
			Applications []models.AppliedJob `json:"applications"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "/jobs/applied", &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(telemetry.Int("applications.count", len(resp.Data.Applications)))
	return resp.Data.Applications, nil
}

func (c *client) GetJobApplications(ctx context.Context, jobID string) ([]models.Application, error) {
	ctx, span := tracer.Start(ctx, "GetJobApplications")
	defer span.End()
	span.SetAttributes(telemetry.String("job.id", jobID))

	var resp applicationsEnvelope
	if err := c.getJSON(ctx, "/jobs/"+jobID, &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return resp.Data.Applications, nil
}

func (c *client) UpdateApplicationStatus(ctx context.Context, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	ctx, span := tracer.Start(ctx, "UpdateApplicationStatus")
	defer span.End()

	body := map[string]string{
		"application_id": applicationID,
		"status":         string(status),
	}

	var resp struct {
		Data struct {
			Application models.Application `json:"application"`
		} `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/jobs/status", body, &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}

	c.logger.Debug("application status updated",
		zap.String("application_id", applicationID),
		zap.String("status", string(status)))
	return &resp.Data.Application, nil
}
