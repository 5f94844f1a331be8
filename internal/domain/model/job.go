// Package model defines the records exchanged with the Galileo backend.
package model

import (
	"fmt"
	"strings"
	"time"
)

// JobStatus represents the lifecycle state reported by the backend for a job.
type JobStatus string

const (
	JobStatusUploaded          JobStatus = "uploaded"
	JobStatusSubmitted         JobStatus = "submitted"
	JobStatusInitialized       JobStatus = "initialized"
	JobStatusRunning           JobStatus = "running"
	JobStatusBuildingImage     JobStatus = "building_image"
	JobStatusImageBuilt        JobStatus = "image_built"
	JobStatusBuildingContainer JobStatus = "building_container"
	JobStatusContainerBuilt    JobStatus = "container_built"
	JobStatusPaused            JobStatus = "paused"
	JobStatusStopped           JobStatus = "stopped"
	JobStatusStartRequested    JobStatus = "start_requested"
	JobStatusStopRequested     JobStatus = "stop_requested"
	JobStatusPauseRequested    JobStatus = "pause_requested"
	JobStatusKillRequested     JobStatus = "kill_requested"
	JobStatusCompleted         JobStatus = "completed"
	JobStatusCollectingResults JobStatus = "collecting_results"
	JobStatusResultsPosted     JobStatus = "results_posted"
	JobStatusTerminated        JobStatus = "terminated"
	JobStatusFailed            JobStatus = "failed"
	JobStatusDead              JobStatus = "dead"
)

var knownJobStatuses = map[JobStatus]struct{}{
	JobStatusUploaded:          {},
	JobStatusSubmitted:         {},
	JobStatusInitialized:       {},
	JobStatusRunning:           {},
	JobStatusBuildingImage:     {},
	JobStatusImageBuilt:        {},
	JobStatusBuildingContainer: {},
	JobStatusContainerBuilt:    {},
	JobStatusPaused:            {},
	JobStatusStopped:           {},
	JobStatusStartRequested:    {},
	JobStatusStopRequested:     {},
	JobStatusPauseRequested:    {},
	JobStatusKillRequested:     {},
	JobStatusCompleted:         {},
	JobStatusCollectingResults: {},
	JobStatusResultsPosted:     {},
	JobStatusTerminated:        {},
	JobStatusFailed:            {},
	JobStatusDead:              {},
}

// Valid returns true if the status is one the SDK knows about.
// Unknown statuses still decode so newer backends do not break older clients.
func (s JobStatus) Valid() bool {
	_, ok := knownJobStatuses[s]
	return ok
}

// ParseJobStatus parses user input such as a CLI flag. Unlike JSON decoding,
// it rejects statuses the SDK does not know.
func ParseJobStatus(text string) (JobStatus, error) {
	v := JobStatus(strings.ToLower(strings.TrimSpace(text)))
	if !v.Valid() {
		return "", fmt.Errorf("invalid JobStatus: %q", v)
	}
	return v, nil
}

// JobStatusEvent is a single entry of a job's status history.
type JobStatusEvent struct {
	Timestamp int64     `json:"timestamp"`
	Status    JobStatus `json:"status"`
}

// Time returns the entry timestamp as a UTC time.
func (e JobStatusEvent) Time() time.Time {
	return time.Unix(e.Timestamp, 0).UTC()
}

// Job is a unit of work launched from a project onto a station or machine.
type Job struct {
	JobID         string           `json:"jobid"`
	ReceiverID    string           `json:"receiverid"`
	ProjectID     string           `json:"project_id"`
	TimeCreated   int64            `json:"time_created"`
	LastUpdated   int64            `json:"last_updated"`
	Status        JobStatus        `json:"status"`
	Container     string           `json:"container"`
	Name          string           `json:"name"`
	StationID     string           `json:"stationid"`
	UserID        string           `json:"userid"`
	State         string           `json:"state"`
	OAID          string           `json:"oaid"`
	PayStatus     string           `json:"pay_status"`
	PayInterval   int64            `json:"pay_interval"`
	TotalRuntime  int64            `json:"total_runtime"`
	Archived      bool             `json:"archived"`
	StatusHistory []JobStatusEvent `json:"status_history"`
}

// CreatedAt returns TimeCreated as a UTC time.
func (j *Job) CreatedAt() time.Time {
	return time.Unix(j.TimeCreated, 0).UTC()
}

// UpdatedAt returns LastUpdated as a UTC time.
func (j *Job) UpdatedAt() time.Time {
	return time.Unix(j.LastUpdated, 0).UTC()
}

// TopProcess is one row of `docker top` output for a running job container.
type TopProcess struct {
	UID   string `json:"uid"`
	PID   string `json:"pid"`
	PPID  string `json:"ppid"`
	C     string `json:"c"`
	STime string `json:"stime"`
	TTY   string `json:"tty"`
	Time  string `json:"time"`
	Cmd   string `json:"cmd"`
}

// ResultFile describes a result artifact produced by a completed job.
type ResultFile struct {
	Filename         string `json:"filename"`
	Path             string `json:"path"`
	FileSize         int64  `json:"file_size"`
	ModificationDate string `json:"modification_date"`
	CreationDate     string `json:"creation_date"`
	Nonce            string `json:"nonce,omitempty"`
}

// UpdateJobRequest carries the mutable job fields.
// JobID addresses the job and is not serialized into the body.
type UpdateJobRequest struct {
	JobID    string `json:"-"                  validate:"required"`
	Archived *bool  `json:"archived,omitempty"`
}

// JobListOptions groups the filters accepted by the job listing endpoint.
// Page and Items fall back to DefaultPage and DefaultItems when zero.
type JobListOptions struct {
	JobIDs      []string
	ReceiverIDs []string
	OAIDs       []string
	UserIDs     []string
	StationIDs  []string
	Statuses    []JobStatus
	Page        int
	Items       int
}
