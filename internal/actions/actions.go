// Package actions orchestrates the API client and the in-memory stores.
// Each action calls the server, then applies the result to local state
// only on success, so the stores never drift ahead of the backend.
package actions

import (
	"context"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	errs "jobdeck/internal/errors"
	"jobdeck/internal/gateway"
	"jobdeck/internal/guard"
	"jobdeck/internal/models"
	"jobdeck/internal/state"
)

type Actions struct {
	gw     gateway.Client
	app    *state.App
	logger *zap.Logger

	mu           sync.Mutex
	cancelSearch context.CancelFunc
}

func New(logger *zap.Logger, gw gateway.Client, app *state.App) *Actions {
	return &Actions{gw: gw, app: app, logger: logger}
}

// Login authenticates, stores the session, and returns where the caller
// should navigate next: the role dashboard, or profile setup when the
// account has no profile yet.
func (a *Actions) Login(ctx context.Context, email, password string) (guard.Route, error) {
	creds, err := a.gw.Login(ctx, email, password)
	if err != nil {
		return "", err
	}
	if err := a.app.Session.SetCredentials(ctx, *creds.User, creds.AccessToken); err != nil {
		return "", err
	}

	a.logger.Info("Signed in",
		zap.String("user_id", creds.User.ID),
		zap.String("role", string(creds.User.Role)),
	)
	return a.postAuthDestination(*creds.User), nil
}

// Register creates an account and signs it in. New accounts never have a
// profile, so the destination is always profile setup.
func (a *Actions) Register(ctx context.Context, username, email, password string, role models.Role) (guard.Route, error) {
	creds, err := a.gw.Register(ctx, username, email, password, role)
	if err != nil {
		return "", err
	}
	if err := a.app.Session.SetCredentials(ctx, *creds.User, creds.AccessToken); err != nil {
		return "", err
	}

	a.logger.Info("Registered",
		zap.String("user_id", creds.User.ID),
		zap.String("role", string(creds.User.Role)),
	)
	return a.postAuthDestination(*creds.User), nil
}

func (a *Actions) postAuthDestination(user models.User) guard.Route {
	if user.HasProfile {
		return guard.DashboardFor(user.Role)
	}
	return guard.RouteProfileSetup
}

// Logout clears the session and every dependent store. Local state is
// wiped even if nothing was signed in.
func (a *Actions) Logout(ctx context.Context) error {
	a.mu.Lock()
	if a.cancelSearch != nil {
		a.cancelSearch()
		a.cancelSearch = nil
	}
	a.mu.Unlock()

	return a.app.Reset(ctx)
}

// CreateProfile validates required fields for the signed-in role, submits
// the profile, and flips the session's profile flag on success.
func (a *Actions) CreateProfile(ctx context.Context, profile models.Profile) error {
	sess := a.app.Session.Current()
	if !sess.IsAuthenticated {
		return errs.Auth("sign in to create a profile", nil)
	}

	if missing := models.MissingProfileFields(profile, sess.User.Role); len(missing) > 0 {
		return errs.Validation("missing required fields: "+strings.Join(missing, ", "), nil)
	}

	var (
		created *models.Profile
		err     error
	)
	switch sess.User.Role {
	case models.RoleEmployer:
		created, err = a.gw.CreateEmployerProfile(ctx, profile)
	default:
		created, err = a.gw.CreateJobSeekerProfile(ctx, profile)
	}
	if err != nil {
		return err
	}

	a.app.Profile.SetProfile(created)
	return a.app.Session.SetProfileFlag(ctx, true)
}

func (a *Actions) FetchProfile(ctx context.Context) (*models.Profile, error) {
	profile, err := a.gw.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	a.app.Profile.SetProfile(profile)
	return profile, nil
}

func (a *Actions) UpdateProfile(ctx context.Context, profile models.Profile) error {
	updated, err := a.gw.UpdateProfile(ctx, profile)
	if err != nil {
		return err
	}
	a.app.Profile.SetProfile(updated)
	return nil
}

// DeleteProfile removes the server-side profile, then clears the local
// copy and the session flag so route decisions send the user back to
// profile setup.
func (a *Actions) DeleteProfile(ctx context.Context) error {
	if err := a.gw.DeleteProfile(ctx); err != nil {
		return err
	}
	a.app.Profile.Clear()
	return a.app.Session.SetProfileFlag(ctx, false)
}

func (a *Actions) UploadResume(ctx context.Context, filename string, resume io.Reader) error {
	updated, err := a.gw.UploadResume(ctx, filename, resume)
	if err != nil {
		return err
	}
	a.app.Profile.SetProfile(updated)
	return nil
}

// FetchPostedJobs loads the employer's own listings.
func (a *Actions) FetchPostedJobs(ctx context.Context) ([]models.Job, error) {
	if err := a.requireRole(models.RoleEmployer); err != nil {
		return nil, err
	}
	jobs, err := a.gw.GetJobs(ctx)
	if err != nil {
		return nil, err
	}
	a.app.Jobs.SetJobs(jobs)
	return jobs, nil
}

func (a *Actions) PostJob(ctx context.Context, job models.Job) (*models.Job, error) {
	if err := a.requireRole(models.RoleEmployer); err != nil {
		return nil, err
	}
	created, err := a.gw.PostJob(ctx, job)
	if err != nil {
		return nil, err
	}
	a.app.Jobs.AppendJob(*created)
	return created, nil
}

func (a *Actions) EditJob(ctx context.Context, job models.Job) (*models.Job, error) {
	if err := a.requireRole(models.RoleEmployer); err != nil {
		return nil, err
	}
	updated, err := a.gw.EditJob(ctx, job)
	if err != nil {
		return nil, err
	}
	if !a.app.Jobs.UpdateJob(*updated) {
		a.logger.Warn("Edited listing not present locally", zap.String("job_id", updated.ID))
	}
	return updated, nil
}

func (a *Actions) DeleteJob(ctx context.Context, jobID string) error {
	if err := a.requireRole(models.RoleEmployer); err != nil {
		return err
	}
	if err := a.gw.DeleteJob(ctx, jobID); err != nil {
		return err
	}
	a.app.Jobs.DeleteJob(jobID)
	return nil
}

// QueueSearch stashes a filter for the next Search call, the handoff used
// when a search box lives on a different view than the results.
func (a *Actions) QueueSearch(filter models.SearchFilter) {
	a.app.Jobs.SetKeyword(filter)
}

// Search runs a job search and stores the results. A zero filter consumes
// the queued one. Starting a new search cancels any still in flight, and a
// cancelled search never writes its stale results into the store.
func (a *Actions) Search(ctx context.Context, filter models.SearchFilter) ([]models.Job, error) {
	if filter.IsZero() {
		filter = a.app.Jobs.ConsumeKeyword()
	}

	ctx, cancel := context.WithCancel(ctx)
	a.mu.Lock()
	if a.cancelSearch != nil {
		a.cancelSearch()
	}
	a.cancelSearch = cancel
	a.mu.Unlock()

	jobs, err := a.gw.SearchJobs(ctx, filter)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		a.logger.Debug("Discarding superseded search results")
		return nil, errs.Transport("search cancelled", ctx.Err())
	}

	a.app.Jobs.SetPostedJobs(jobs)
	return jobs, nil
}

func (a *Actions) Apply(ctx context.Context, application gateway.JobApplication) error {
	if err := a.requireRole(models.RoleJobSeeker); err != nil {
		return err
	}
	return a.gw.ApplyForJob(ctx, application)
}

func (a *Actions) FetchAppliedJobs(ctx context.Context) ([]models.AppliedJob, error) {
	if err := a.requireRole(models.RoleJobSeeker); err != nil {
		return nil, err
	}
	applied, err := a.gw.GetAppliedJobs(ctx)
	if err != nil {
		return nil, err
	}
	a.app.Jobs.SetAppliedJobs(applied)
	return applied, nil
}

func (a *Actions) FetchApplications(ctx context.Context, jobID string) ([]models.Application, error) {
	if err := a.requireRole(models.RoleEmployer); err != nil {
		return nil, err
	}
	return a.gw.GetJobApplications(ctx, jobID)
}

// UpdateApplicationStatus moves an application along the hiring pipeline.
// Illegal moves, such as leaving a terminal status, are rejected without a
// network call.
func (a *Actions) UpdateApplicationStatus(ctx context.Context, applicationID string, current, next models.ApplicationStatus) (*models.Application, error) {
	if err := a.requireRole(models.RoleEmployer); err != nil {
		return nil, err
	}
	if !models.CanTransition(current, next) {
		return nil, errs.Validation("cannot move application from "+string(current)+" to "+string(next), nil)
	}
	return a.gw.UpdateApplicationStatus(ctx, applicationID, next)
}

func (a *Actions) requireRole(role models.Role) error {
	sess := a.app.Session.Current()
	if !sess.IsAuthenticated {
		return errs.Auth("sign in first", nil)
	}
	if sess.User.Role != role {
		return errs.Auth("this action requires the "+string(role)+" role", nil)
	}
	return nil
}
