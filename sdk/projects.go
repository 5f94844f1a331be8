package sdk

import (
	"context"
	"io"

	"github.com/hypernetlabs/galileo-go/internal/service"
)

// ProjectsSdk exposes project operations.
type ProjectsSdk struct {
	svc *service.ProjectsService
}

// ListProjects returns one page of projects. Page and Items default to 1 and 25.
func (p *ProjectsSdk) ListProjects(ctx context.Context, opts ProjectListOptions) ([]*Project, error) {
	return p.svc.ListProjects(ctx, opts)
}

// CreateProject creates a project.
func (p *ProjectsSdk) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	return p.svc.CreateProject(ctx, req)
}

// UploadSingleFile uploads content as filename into a project.
func (p *ProjectsSdk) UploadSingleFile(ctx context.Context, projectID, filename string, content io.Reader) (bool, error) {
	return p.svc.UploadSingleFile(ctx, projectID, filename, content)
}

// RunJobOnStation launches a project on any eligible machine of a station.
func (p *ProjectsSdk) RunJobOnStation(ctx context.Context, projectID, stationID string) (*Job, error) {
	return p.svc.RunJobOnStation(ctx, projectID, stationID)
}

// RunJobOnMachine launches a project on a specific machine of a station.
func (p *ProjectsSdk) RunJobOnMachine(ctx context.Context, projectID, stationID, machineID string) (*Job, error) {
	return p.svc.RunJobOnMachine(ctx, projectID, stationID, machineID)
}
