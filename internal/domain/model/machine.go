//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// MachineStatus is the connectivity state of a machine.
type MachineStatus string

const (
	MachineStatusOnline  MachineStatus = "online"
	MachineStatusOffline MachineStatus = "offline"
)

// Valid reports whether the machine status is supported.
func (s MachineStatus) Valid() bool {
	switch s {
	case MachineStatusOnline, MachineStatusOffline:
		return true
	default:
		return false
	}
}

// Machine is a compute host registered by a user to a station.
type Machine struct {
	MID              string        `json:"mid"`
	UserID           string        `json:"userid"`
	Name             string        `json:"name"`
	Status           MachineStatus `json:"status"`
	GPUCount         int           `json:"gpu_count"`
	CPUCount         int           `json:"cpu_count"`
	OS               string        `json:"os"`
	Arch             string        `json:"arch"`
	Memory           string        `json:"memory"`
	MemoryAmount     int64         `json:"memory_amount"`
	RunningJobsLimit int           `json:"running_jobs_limit"`
	JobRunner        string        `json:"job_runner"`
}

// UpdateMachineRequest carries the mutable machine fields. Nil fields are left unchanged.
type UpdateMachineRequest struct {
	MID              string  `json:"-"                            validate:"required"`
	Name             *string `json:"name,omitempty"               validate:"omitempty,min=1,max=255"`
	GPUCount         *int    `json:"gpu_count,omitempty"          validate:"omitempty,min=0"`
	CPUCount         *int    `json:"cpu_count,omitempty"          validate:"omitempty,min=0"`
	MemoryAmount     *int64  `json:"memory_amount,omitempty"      validate:"omitempty,min=0"`
	RunningJobsLimit *int    `json:"running_jobs_limit,omitempty" validate:"omitempty,min=0"`
}

// MachineListOptions groups the filters accepted by the machine listing endpoint.
type MachineListOptions struct {
	MIDs    []string
	UserIDs []string
	Page    int
	Items   int
}
