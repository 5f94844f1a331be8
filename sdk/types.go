package sdk

import (
	"github.com/hypernetlabs/galileo-go/config"
	"github.com/hypernetlabs/galileo-go/internal/domain/model"
	"github.com/hypernetlabs/galileo-go/internal/events"
)

// Config is the client configuration. See package config for the environment variables.
type Config = config.SDKConfig

// AuthConfig, AuthMode, and OAuthConfig configure token acquisition.
type (
	AuthConfig  = config.AuthConfig
	AuthMode    = config.AuthMode
	OAuthConfig = config.OAuthConfig
)

// Auth modes.
const (
	AuthModeStatic = config.AuthModeStatic
	AuthModeOAuth  = config.AuthModeOAuth
)

// Domain records returned by the backend.
type (
	Job            = model.Job
	JobStatus      = model.JobStatus
	JobStatusEvent = model.JobStatusEvent
	TopProcess     = model.TopProcess
	ResultFile     = model.ResultFile
	Machine        = model.Machine
	MachineStatus  = model.MachineStatus
	Project        = model.Project
)

// Request and filter types.
type (
	UpdateJobRequest     = model.UpdateJobRequest
	UpdateMachineRequest = model.UpdateMachineRequest
	CreateProjectRequest = model.CreateProjectRequest
	JobListOptions       = model.JobListOptions
	MachineListOptions   = model.MachineListOptions
	ProjectListOptions   = model.ProjectListOptions
)

// Event payloads.
type (
	JobLauncherUpdatedEvent   = model.JobLauncherUpdatedEvent
	JobLauncherSubmittedEvent = model.JobLauncherSubmittedEvent
	StationJobUpdatedEvent    = model.StationJobUpdatedEvent
	MachineStatusUpdateEvent  = model.MachineStatusUpdateEvent
)

// Callback receives one event of type E.
type Callback[E any] = events.Callback[E]

// Job statuses.
const (
	JobStatusUploaded          = model.JobStatusUploaded
	JobStatusSubmitted         = model.JobStatusSubmitted
	JobStatusInitialized       = model.JobStatusInitialized
	JobStatusRunning           = model.JobStatusRunning
	JobStatusBuildingImage     = model.JobStatusBuildingImage
	JobStatusImageBuilt        = model.JobStatusImageBuilt
	JobStatusBuildingContainer = model.JobStatusBuildingContainer
	JobStatusContainerBuilt    = model.JobStatusContainerBuilt
	JobStatusPaused            = model.JobStatusPaused
	JobStatusStopped           = model.JobStatusStopped
	JobStatusStartRequested    = model.JobStatusStartRequested
	JobStatusStopRequested     = model.JobStatusStopRequested
	JobStatusPauseRequested    = model.JobStatusPauseRequested
	JobStatusKillRequested     = model.JobStatusKillRequested
	JobStatusCompleted         = model.JobStatusCompleted
	JobStatusCollectingResults = model.JobStatusCollectingResults
	JobStatusResultsPosted     = model.JobStatusResultsPosted
	JobStatusTerminated        = model.JobStatusTerminated
	JobStatusFailed            = model.JobStatusFailed
	JobStatusDead              = model.JobStatusDead
)

// Machine statuses.
const (
	MachineStatusOnline  = model.MachineStatusOnline
	MachineStatusOffline = model.MachineStatusOffline
)

// Pagination defaults applied when list options leave Page or Items at zero.
const (
	DefaultPage  = model.DefaultPage
	DefaultItems = model.DefaultItems
)

// ParseJobStatus parses a status name, rejecting unknown values.
func ParseJobStatus(s string) (JobStatus, error) { return model.ParseJobStatus(s) }
