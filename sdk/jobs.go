package sdk

import (
	"context"

	"github.com/hypernetlabs/galileo-go/internal/events"
	"github.com/hypernetlabs/galileo-go/internal/service"
)

// JobsSdk exposes job operations and job event registration.
type JobsSdk struct {
	svc    *service.JobsService
	events *events.JobsEvents
}

// OnJobLauncherUpdated registers cb for updates to jobs the caller launched.
func (j *JobsSdk) OnJobLauncherUpdated(cb Callback[JobLauncherUpdatedEvent]) {
	j.events.OnJobLauncherUpdated(cb)
}

// OnJobLauncherSubmitted registers cb for newly submitted jobs the caller launched.
func (j *JobsSdk) OnJobLauncherSubmitted(cb Callback[JobLauncherSubmittedEvent]) {
	j.events.OnJobLauncherSubmitted(cb)
}

// OnStationJobUpdated registers cb for updates to jobs running in the caller's stations.
func (j *JobsSdk) OnStationJobUpdated(cb Callback[StationJobUpdatedEvent]) {
	j.events.OnStationJobUpdated(cb)
}

// ListJobs returns one page of jobs. Page and Items default to 1 and 25.
func (j *JobsSdk) ListJobs(ctx context.Context, opts JobListOptions) ([]*Job, error) {
	return j.svc.ListJobs(ctx, opts)
}

// UpdateJob changes the mutable fields of a job, such as Archived.
func (j *JobsSdk) UpdateJob(ctx context.Context, req UpdateJobRequest) (*Job, error) {
	return j.svc.UpdateJob(ctx, req)
}

// RequestStopJob asks the station to stop a job.
func (j *JobsSdk) RequestStopJob(ctx context.Context, jobID string) (*Job, error) {
	return j.svc.RequestStopJob(ctx, jobID)
}

// RequestPauseJob asks the station to pause a job.
func (j *JobsSdk) RequestPauseJob(ctx context.Context, jobID string) (*Job, error) {
	return j.svc.RequestPauseJob(ctx, jobID)
}

// RequestStartJob asks the station to start or resume a job.
func (j *JobsSdk) RequestStartJob(ctx context.Context, jobID string) (*Job, error) {
	return j.svc.RequestStartJob(ctx, jobID)
}

// RequestKillJob asks the station to kill a job.
func (j *JobsSdk) RequestKillJob(ctx context.Context, jobID string) (*Job, error) {
	return j.svc.RequestKillJob(ctx, jobID)
}

// RequestTopFromJob returns the process table of a running job.
func (j *JobsSdk) RequestTopFromJob(ctx context.Context, jobID string) ([]*TopProcess, error) {
	return j.svc.RequestTopFromJob(ctx, jobID)
}

// RequestLogsFromJob returns the logs of a job.
func (j *JobsSdk) RequestLogsFromJob(ctx context.Context, jobID string) (string, error) {
	return j.svc.RequestLogsFromJob(ctx, jobID)
}

// GetResultsMetadata lists the result files of a job.
func (j *JobsSdk) GetResultsMetadata(ctx context.Context, jobID string) ([]*ResultFile, error) {
	return j.svc.GetResultsMetadata(ctx, jobID)
}

// DownloadJobResults downloads every result file into dir and returns the paths written.
func (j *JobsSdk) DownloadJobResults(ctx context.Context, jobID, dir string) ([]string, error) {
	return j.svc.DownloadJobResults(ctx, jobID, dir)
}
