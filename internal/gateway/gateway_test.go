package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"jobdeck/internal/config"
	errs "jobdeck/internal/errors"
	"jobdeck/internal/gateway"
	"jobdeck/internal/storage"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		APIBaseURL: baseURL,
		APITimeout: 2 * time.Second,
		MaxRetries: 2,
	}
}

func newTestClient(t *testing.T, handler http.Handler) (gateway.Client, *storage.Memory) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := storage.NewMemory()
	return gateway.NewClient(zap.NewNop(), testConfig(server.URL), store), store
}

func TestLogin_DecodesCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/signIn" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		w.Write([]byte(`{"data":{"user":{"_id":"u1","username":"ada","email":"a@b.c","role":"employer","profile":true},"access_token":"tok-1"}}`))
	}))

	creds, err := client.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if creds.User.ID != "u1" || creds.AccessToken != "tok-1" {
		t.Errorf("credentials = %+v", creds)
	}
	if !creds.User.HasProfile {
		t.Error("profile flag lost in decode")
	}
}

func TestLogin_InvalidCredentials_VerbatimMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))

	_, err := client.Login(context.Background(), "a@b.c", "wrong")
	if !errs.IsType(err, errs.ErrTypeAuth) {
		t.Fatalf("error type = %v, want AUTH", err)
	}
	if got := errs.Message(err); got != "Invalid email or password" {
		t.Errorf("message = %q, want the server body verbatim", got)
	}
}

func TestBearerToken_AttachedWhenStored(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{"profile":{"profile_name":"Ada"}}}`))
	}))

	ctx := context.Background()
	if _, err := client.GetProfile(ctx); err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none without a stored token", gotAuth)
	}

	if err := store.Set(ctx, storage.KeySessionToken, []byte("tok-xyz"), 0); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	if _, err := client.GetProfile(ctx); err != nil {
		t.Fatalf("GetProfile with token: %v", err)
	}
	if gotAuth != "Bearer tok-xyz" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-xyz")
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		want   errs.ErrorType
	}{
		{http.StatusUnauthorized, errs.ErrTypeAuth},
		{http.StatusForbidden, errs.ErrTypeAuth},
		{http.StatusBadRequest, errs.ErrTypeValidation},
		{http.StatusUnprocessableEntity, errs.ErrTypeValidation},
		{http.StatusConflict, errs.ErrTypeValidation},
		{http.StatusNotFound, errs.ErrTypeNotFound},
		{http.StatusInternalServerError, errs.ErrTypeInternal},
	}

	for _, c := range cases {
		status := c.status
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"message":"boom"}`))
		}))

		err := client.DeleteProfile(context.Background())
		if !errs.IsType(err, c.want) {
			t.Errorf("status %d mapped to %v, want %s", c.status, err, c.want)
		}
	}
}

func TestTransportError_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	store := storage.NewMemory()
	cfg := testConfig(url)
	cfg.MaxRetries = 0
	client := gateway.NewClient(zap.NewNop(), cfg, store)

	err := client.DeleteProfile(context.Background())
	if !errs.IsType(err, errs.ErrTypeTransport) {
		t.Errorf("unreachable server error = %v, want TRANSPORT", err)
	}
}

func TestGetRetry_RecoversFromTransportFailure(t *testing.T) {
	var attempts int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			// Drop the connection so the client sees a transport error.
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatal("httptest server must support hijacking")
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Fatalf("hijack: %v", err)
			}
			conn.Close()
			return
		}
		w.Write([]byte(`{"data":{"jobs":[{"_id":"j1","title":"Go dev"}]}}`))
	}))

	jobs, err := client.GetJobs(context.Background())
	if err != nil {
		t.Fatalf("GetJobs after retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if len(jobs) != 1 || jobs[0].ID != "j1" {
		t.Errorf("jobs = %+v", jobs)
	}
}

func TestServerRejection_IsNotRetried(t *testing.T) {
	var attempts int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no profile"}`))
	}))

	_, err := client.GetProfile(context.Background())
	if !errs.IsType(err, errs.ErrTypeNotFound) {
		t.Fatalf("error = %v, want NOT_FOUND", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (server rejections are permanent)", attempts)
	}
}

func TestLogin_ResponseWithoutUserRejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"access_token":"tok-1"}}`))
	}))

	creds, err := client.Login(context.Background(), "a@b.c", "secret")
	if !errs.IsType(err, errs.ErrTypeInternal) {
		t.Fatalf("error = %v, want INTERNAL", err)
	}
	if creds != nil {
		t.Errorf("credentials = %+v, want nil", creds)
	}
}
