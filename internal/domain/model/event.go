//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// EventName identifies a push notification emitted by the backend.
type EventName string

const (
	EventJobLauncherUpdated   EventName = "job_launcher_updated"
	EventJobLauncherSubmitted EventName = "job_launcher_submitted"
	EventStationJobUpdated    EventName = "station_job_updated"
	EventMachineStatusUpdate  EventName = "machine_status_update"
)

// JobLauncherUpdatedEvent is sent to the launcher when one of its jobs changes.
type JobLauncherUpdatedEvent struct {
	Job Job `json:"job"`
}

// JobLauncherSubmittedEvent is sent to the launcher once a job has been accepted.
type JobLauncherSubmittedEvent struct {
	Job Job `json:"job"`
}

// StationJobUpdatedEvent is sent to station members when a job on the station changes.
type StationJobUpdatedEvent struct {
	Job Job `json:"job"`
}

// MachineStatusUpdateEvent is sent when a machine goes online or offline.
type MachineStatusUpdateEvent struct {
	MID    string        `json:"mid"`
	Status MachineStatus `json:"status"`
}
