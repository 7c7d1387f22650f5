package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	errs "jobdeck/internal/errors"
	"jobdeck/internal/storage"
)

const maxErrorBody = 1 << 20

// serverError is the error body the remote service returns on non-2xx
// responses. Some endpoints use "message", older ones "error".
type serverError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errs.Internal("creating request", err)
	}

	req.Header.Set("X-Request-ID", uuid.NewString())

	token, err := c.store.Get(ctx, storage.KeySessionToken)
	if err == nil && len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+string(token))
	} else if err != nil && !errors.Is(err, storage.ErrNotFound) {
		c.logger.Warn("failed to read stored token", zap.Error(err))
	}

	return req, nil
}

// send executes the request and decodes a 2xx body into out (skipped when out
// is nil). Every failure comes back as a DomainError.
func (c *client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(req, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(req, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode response",
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return errs.Internal("decoding response", err)
	}
	return nil
}

func (c *client) transportError(req *http.Request, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		c.logger.Error("request timed out", zap.String("path", req.URL.Path))
		return errs.Transport("request timed out", err)
	}
	if ctxErr := req.Context().Err(); ctxErr != nil {
		return errs.Transport("request cancelled", err)
	}
	c.logger.Error("request failed",
		zap.String("path", req.URL.Path),
		zap.Error(err))
	return errs.Transport("request failed", err)
}

// errorFromResponse maps a non-2xx response onto the error taxonomy, keeping
// the server-provided message verbatim when the body carries one.
func (c *client) errorFromResponse(req *http.Request, resp *http.Response) error {
	message := fmt.Sprintf("unexpected status code: %d", resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(body) > 0 {
		var se serverError
		if jsonErr := json.Unmarshal(body, &se); jsonErr == nil {
			if se.Message != "" {
				message = se.Message
			} else if se.Error != "" {
				message = se.Error
			}
		}
	}

	c.logger.Warn("server rejected request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status_code", resp.StatusCode))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errs.Auth(message, nil)
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		return errs.Validation(message, nil)
	case http.StatusNotFound:
		return errs.NotFound(message, nil)
	default:
		return errs.Internal(message, nil)
	}
}

// doJSON issues a request with an optional JSON body and decodes the response
// into out.
func (c *client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errs.Internal("marshaling request body", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// getJSON is doJSON for idempotent GETs, with bounded exponential-backoff
// retry on transport failures only. Server rejections are never retried.
func (c *client) getJSON(ctx context.Context, path string, out any) error {
	operation := func() error {
		err := c.doJSON(ctx, http.MethodGet, path, nil, out)
		if err == nil {
			return nil
		}
		if errs.IsType(err, errs.ErrTypeTransport) && ctx.Err() == nil {
			c.logger.Warn("retrying GET after transport failure",
				zap.String("path", path),
				zap.Error(err))
			return err
		}
		return backoff.Permanent(err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.config.MaxRetries)),
		ctx,
	)
	return backoff.Retry(operation, policy)
}

// postMultipart issues a multipart/form-data POST whose parts are written by
// build, decoding the response into out.
func (c *client) postMultipart(ctx context.Context, path string, build func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := build(writer); err != nil {
		return errs.Internal("building multipart body", err)
	}
	if err := writer.Close(); err != nil {
		return errs.Internal("finalizing multipart body", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, out)
}
