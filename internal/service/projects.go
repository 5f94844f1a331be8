package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/hypernetlabs/galileo-go/internal/core"
	"github.com/hypernetlabs/galileo-go/internal/domain/model"
	sdkerrors "github.com/hypernetlabs/galileo-go/internal/errors"
	"github.com/hypernetlabs/galileo-go/internal/util"
)

// ProjectsServiceOptions groups dependencies for ProjectsService.
type ProjectsServiceOptions struct {
	Repo   core.ProjectsRepository // Required
	Logger *slog.Logger            // Optional
}

// ProjectsService applies defaults and validation on top of ProjectsRepository.
type ProjectsService struct {
	repo     core.ProjectsRepository
	logger   *slog.Logger
	validate *validator.Validate
}

// NewProjectsService constructs a new ProjectsService.
func NewProjectsService(opts ProjectsServiceOptions) *ProjectsService {
	if opts.Repo == nil {
		panic("ProjectsRepository is required")
	}
	return &ProjectsService{
		repo:     opts.Repo,
		logger:   opts.Logger,
		validate: newValidator(),
	}
}

// ProjectsQuery renders the list filters in the order the backend expects.
func ProjectsQuery(opts model.ProjectListOptions) string {
	return util.GenerateQueryStr(
		util.ListParam("ids", opts.IDs),
		util.ListParam("names", opts.Names),
		util.ListParam("user_ids", opts.UserIDs),
		util.IntParam("page", orDefault(opts.Page, model.DefaultPage)),
		util.IntParam("items", orDefault(opts.Items, model.DefaultItems)),
	)
}

// ListProjects returns one page of projects visible to the caller.
func (s *ProjectsService) ListProjects(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	projects, err := s.repo.ListProjects(ctx, ProjectsQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// CreateProject creates a new project.
func (s *ProjectsService) CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error) {
	if err := validateRequest(s.validate, "create project", req); err != nil {
		return nil, err
	}
	p, err := s.repo.CreateProject(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "project created", "project_id", p.ProjectID, "name", p.Name)
	}
	return p, nil
}

// UploadSingleFile uploads content as filename into the project's source files.
func (s *ProjectsService) UploadSingleFile(ctx context.Context, projectID, filename string, content io.Reader) (bool, error) {
	if err := requireID("upload file", "project_id", projectID); err != nil {
		return false, err
	}
	if err := requireID("upload file", "filename", filename); err != nil {
		return false, err
	}
	if content == nil {
		return false, sdkerrors.ValidationField("content", "upload file: content is required")
	}
	ok, err := s.repo.UploadSingleFile(ctx, core.UploadFileParams{
		ProjectID: projectID,
		Filename:  filename,
		Content:   content,
	})
	if err != nil {
		return false, fmt.Errorf("upload file: %w", err)
	}
	return ok, nil
}

// RunJobOnStation launches the project on any eligible machine of a station.
func (s *ProjectsService) RunJobOnStation(ctx context.Context, projectID, stationID string) (*model.Job, error) {
	return s.runJob(ctx, "run job on station", model.RunJobRequest{
		ProjectID: projectID,
		StationID: stationID,
	})
}

// RunJobOnMachine launches the project on a specific machine of a station.
func (s *ProjectsService) RunJobOnMachine(ctx context.Context, projectID, stationID, machineID string) (*model.Job, error) {
	if err := requireID("run job on machine", "machine_id", machineID); err != nil {
		return nil, err
	}
	return s.runJob(ctx, "run job on machine", model.RunJobRequest{
		ProjectID: projectID,
		StationID: stationID,
		MachineID: machineID,
	})
}

func (s *ProjectsService) runJob(ctx context.Context, op string, req model.RunJobRequest) (*model.Job, error) {
	if err := requireID(op, "project_id", req.ProjectID); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validate, op, req); err != nil {
		return nil, err
	}
	job, err := s.repo.RunJob(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "job submitted", "project_id", req.ProjectID, "job_id", job.JobID)
	}
	return job, nil
}
