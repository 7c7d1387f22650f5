// Package gateway is the single point of outbound HTTP communication with the
// job-board service. It attaches the bearer token from durable storage,
// normalizes every failure into the client error taxonomy, and passes
// server-provided error messages through verbatim.
package gateway

import (
	"context"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"jobdeck/internal/config"
	"jobdeck/internal/models"
	"jobdeck/internal/storage"
	"jobdeck/internal/telemetry"
)

var tracer = telemetry.GetTracer("jobdeck/gateway")

// Credentials is the payload of a successful login or registration. User is
// nil only for malformed responses; both auth calls reject those.
type Credentials struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// JobApplication is the multipart payload of a job-seeker's application. A
// submission must carry either a new resume file or the stored-resume flag.
type JobApplication struct {
	JobID           string
	CoverLetter     string
	ResumeFile      io.Reader
	ResumeFilename  string
	UseStoredResume bool
}

type Client interface {
	Login(ctx context.Context, email, password string) (*Credentials, error)
	Register(ctx context.Context, username, email, password string, role models.Role) (*Credentials, error)

	CreateEmployerProfile(ctx context.Context, profile models.Profile) (*models.Profile, error)
	CreateJobSeekerProfile(ctx context.Context, profile models.Profile) (*models.Profile, error)
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error)
	DeleteProfile(ctx context.Context) error
	UploadResume(ctx context.Context, filename string, resume io.Reader) (*models.Profile, error)

	PostJob(ctx context.Context, job models.Job) (*models.Job, error)
	GetJobs(ctx context.Context) ([]models.Job, error)
	EditJob(ctx context.Context, job models.Job) (*models.Job, error)
	DeleteJob(ctx context.Context, jobID string) error
	SearchJobs(ctx context.Context, filter models.SearchFilter) ([]models.Job, error)

	ApplyForJob(ctx context.Context, application JobApplication) error
	GetAppliedJobs(ctx context.Context) ([]models.AppliedJob, error)
	GetJobApplications(ctx context.Context, jobID string) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, applicationID string, status models.ApplicationStatus) (*models.Application, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	store      storage.Store
	logger     *zap.Logger
	config     *config.Config
}

func NewClient(logger *zap.Logger, cfg *config.Config, store storage.Store) Client {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.APITimeout,
		},
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		store:   store,
		logger:  logger,
		config:  cfg,
	}
}
