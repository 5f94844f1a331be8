// Package mocks provides mock implementations of the repository ports for service tests.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	mockRepo := mocks.NewMockJobsRepository(ctrl)
//	mockRepo.EXPECT().ListJobs(gomock.Any(), "page=1&items=25").Return(jobs, nil)
package mocks

// Generate mock for JobsRepository interface from internal/core package.
// This creates MockJobsRepository with methods for all JobsRepository interface methods:
// ListJobs, UpdateJob, RequestStopJob, RequestPauseJob, RequestStartJob, RequestKillJob,
// RequestTopFromJob, RequestLogsFromJob, GetResultsMetadata, DownloadResult
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=jobs_repository_mock.go github.com/hypernetlabs/galileo-go/internal/core JobsRepository

// Generate mock for MachinesRepository interface from internal/core package.
// This creates MockMachinesRepository with methods for all MachinesRepository interface methods:
// GetMachineByID, ListMachines, UpdateMachine
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=machines_repository_mock.go github.com/hypernetlabs/galileo-go/internal/core MachinesRepository

// Generate mock for ProjectsRepository interface from internal/core package.
// This creates MockProjectsRepository with methods for all ProjectsRepository interface methods:
// ListProjects, CreateProject, UploadSingleFile, RunJob
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=projects_repository_mock.go github.com/hypernetlabs/galileo-go/internal/core ProjectsRepository
