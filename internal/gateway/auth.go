package gateway

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	errs "jobdeck/internal/errors"
	"jobdeck/internal/models"
	"jobdeck/internal/telemetry"
)

func (c *client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp struct {
		Data Credentials `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signIn", body, &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}
	if resp.Data.User == nil {
		err := errs.Internal("auth response carried no user", nil)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(telemetry.String("user.role", string(resp.Data.User.Role)))
	c.logger.Debug("login succeeded", zap.String("user_id", resp.Data.User.ID))
	return &resp.Data, nil
}

func (c *client) Register(ctx context.Context, username, email, password string, role models.Role) (*Credentials, error) {
	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
		"role":     string(role),
	}

	var resp struct {
		Data Credentials `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signUp", body, &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}
	if resp.Data.User == nil {
		err := errs.Internal("auth response carried no user", nil)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(telemetry.String("user.role", string(role)))
	c.logger.Debug("registration succeeded", zap.String("user_id", resp.Data.User.ID))
	return &resp.Data, nil
}
