package events

import "github.com/hypernetlabs/galileo-go/internal/domain/model"

// JobsEvents groups the job-related registries.
type JobsEvents struct {
	launcherUpdated   Registry[model.JobLauncherUpdatedEvent]
	launcherSubmitted Registry[model.JobLauncherSubmittedEvent]
	stationUpdated    Registry[model.StationJobUpdatedEvent]
}

// NewJobsEvents returns an empty JobsEvents.
func NewJobsEvents() *JobsEvents {
	return &JobsEvents{}
}

// OnJobLauncherUpdated registers a callback for job_launcher_updated.
func (e *JobsEvents) OnJobLauncherUpdated(cb Callback[model.JobLauncherUpdatedEvent]) {
	e.launcherUpdated.Register(cb)
}

// JobLauncherUpdated emits job_launcher_updated.
func (e *JobsEvents) JobLauncherUpdated(ev model.JobLauncherUpdatedEvent) {
	e.launcherUpdated.Emit(ev)
}

// OnJobLauncherSubmitted registers a callback for job_launcher_submitted.
func (e *JobsEvents) OnJobLauncherSubmitted(cb Callback[model.JobLauncherSubmittedEvent]) {
	e.launcherSubmitted.Register(cb)
}

// JobLauncherSubmitted emits job_launcher_submitted.
func (e *JobsEvents) JobLauncherSubmitted(ev model.JobLauncherSubmittedEvent) {
	e.launcherSubmitted.Emit(ev)
}

// OnStationJobUpdated registers a callback for station_job_updated.
func (e *JobsEvents) OnStationJobUpdated(cb Callback[model.StationJobUpdatedEvent]) {
	e.stationUpdated.Register(cb)
}

// StationJobUpdated emits station_job_updated.
func (e *JobsEvents) StationJobUpdated(ev model.StationJobUpdatedEvent) {
	e.stationUpdated.Emit(ev)
}
