//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Project groups source files and result storage for jobs.
type Project struct {
	ProjectID            string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	SourceStorageID      string `json:"source_storage_id"`
	SourcePath           string `json:"source_path"`
	DestinationStorageID string `json:"destination_storage_id"`
	DestinationPath      string `json:"destination_path"`
	UserID               string `json:"user_id"`
	CreationTimestamp    string `json:"creation_timestamp"`
}

// CreateProjectRequest is the body sent when creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Description string `json:"description"`
}

// RunJobRequest is the body sent to launch a project onto a station, optionally pinned to a machine.
type RunJobRequest struct {
	ProjectID string `json:"-"                    validate:"required"`
	StationID string `json:"station_id"           validate:"required"`
	MachineID string `json:"machine_id,omitempty"`
}

// ProjectListOptions groups the filters accepted by the project listing endpoint.
type ProjectListOptions struct {
	IDs     []string
	Names   []string
	UserIDs []string
	Page    int
	Items   int
}

// Pagination defaults applied by the service layer when a list call leaves them unset.
const (
	DefaultPage  = 1
	DefaultItems = 25
)
