// Package core defines the repository ports shared by the service and data layers.
package core

import (
	"context"
	"io"

	"github.com/hypernetlabs/galileo-go/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// JobsRepository defines the backend operations on jobs.
// Query arguments are pre-rendered query strings produced by the service layer.
type JobsRepository interface {
	ListJobs(ctx context.Context, query string) ([]*model.Job, error)
	UpdateJob(ctx context.Context, req model.UpdateJobRequest) (*model.Job, error)
	RequestStopJob(ctx context.Context, jobID string) (*model.Job, error)
	RequestPauseJob(ctx context.Context, jobID string) (*model.Job, error)
	RequestStartJob(ctx context.Context, jobID string) (*model.Job, error)
	RequestKillJob(ctx context.Context, jobID string) (*model.Job, error)
	RequestTopFromJob(ctx context.Context, jobID string) ([]*model.TopProcess, error)
	RequestLogsFromJob(ctx context.Context, jobID string) (string, error)
	GetResultsMetadata(ctx context.Context, jobID string) ([]*model.ResultFile, error)
	// DownloadResult streams one result file into params.Dst and returns the number of bytes written.
	DownloadResult(ctx context.Context, params DownloadResultParams) (int64, error)
}

// DownloadResultParams groups parameters for JobsRepository.DownloadResult to keep param count ≤3.
type DownloadResultParams struct {
	JobID string
	Path  string
	Nonce string
	Dst   io.Writer
}

// MachinesRepository defines the backend operations on machines.
type MachinesRepository interface {
	GetMachineByID(ctx context.Context, mid string) (*model.Machine, error)
	ListMachines(ctx context.Context, query string) ([]*model.Machine, error)
	UpdateMachine(ctx context.Context, req model.UpdateMachineRequest) (*model.Machine, error)
}

// ProjectsRepository defines the backend operations on projects.
type ProjectsRepository interface {
	ListProjects(ctx context.Context, query string) ([]*model.Project, error)
	CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error)
	UploadSingleFile(ctx context.Context, params UploadFileParams) (bool, error)
	RunJob(ctx context.Context, req model.RunJobRequest) (*model.Job, error)
}

// UploadFileParams groups parameters for ProjectsRepository.UploadSingleFile.
type UploadFileParams struct {
	ProjectID string
	Filename  string
	Content   io.Reader
}
