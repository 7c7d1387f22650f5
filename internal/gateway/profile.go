package gateway

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"jobdeck/internal/models"
)

type profileEnvelope struct {
	Data struct {
		Profile models.Profile `json:"profile"`
	} `json:"data"`
}

func (c *client) CreateEmployerProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	return c.createProfile(ctx, "/profile/employer", profile)
}

func (c *client) CreateJobSeekerProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	return c.createProfile(ctx, "/profile/job-seeker", profile)
}

func (c *client) createProfile(ctx context.Context, path string, profile models.Profile) (*models.Profile, error) {
	ctx, span := tracer.Start(ctx, "CreateProfile")
	defer span.End()

	var resp profileEnvelope
	if err := c.doJSON(ctx, http.MethodPost, path, profile, &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &resp.Data.Profile, nil
}

func (c *client) GetProfile(ctx context.Context) (*models.Profile, error) {
	ctx, span := tracer.Start(ctx, "GetProfile")
	defer span.End()

	var resp profileEnvelope
	if err := c.getJSON(ctx, "/profile", &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &resp.Data.Profile, nil
}

func (c *client) UpdateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	ctx, span := tracer.Start(ctx, "UpdateProfile")
	defer span.End()

	var resp profileEnvelope
	if err := c.doJSON(ctx, http.MethodPatch, "/profile", profile, &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &resp.Data.Profile, nil
}

func (c *client) DeleteProfile(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "DeleteProfile")
	defer span.End()

	if err := c.doJSON(ctx, http.MethodDelete, "/profile", nil, nil); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// UploadResume submits the resume file as multipart form data and returns the
// updated profile with the resume URL set.
func (c *client) UploadResume(ctx context.Context, filename string, resume io.Reader) (*models.Profile, error) {
	ctx, span := tracer.Start(ctx, "UploadResume")
	defer span.End()

	var resp profileEnvelope
	err := c.postMultipart(ctx, "/profile/upload-resume", func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("resume", filename)
		if err != nil {
			return err
		}
		_, err = io.Copy(part, resume)
		return err
	}, &resp)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &resp.Data.Profile, nil
}
