package data

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/hypernetlabs/galileo-go/internal/core"
	"github.com/hypernetlabs/galileo-go/internal/domain/model"
	sdkerrors "github.com/hypernetlabs/galileo-go/internal/errors"
)

// UploadFieldName is the multipart form field the backend reads uploaded files from.
const UploadFieldName = "upload_file"

var _ core.ProjectsRepository = (*ProjectsRepo)(nil)

// ProjectsRepo implements core.ProjectsRepository over the /projects endpoints.
type ProjectsRepo struct {
	backend *Backend
}

// NewProjectsRepo creates a new ProjectsRepo.
func NewProjectsRepo(backend *Backend) *ProjectsRepo {
	return &ProjectsRepo{backend: backend}
}

func projectPath(projectID, suffix string) string {
	return "/projects/" + url.PathEscape(projectID) + suffix
}

// ListProjects returns the projects matching the pre-rendered query string.
func (r *ProjectsRepo) ListProjects(ctx context.Context, query string) ([]*model.Project, error) {
	var env struct {
		Projects []*model.Project `json:"projects"`
	}
	err := r.backend.doJSON(ctx, request{
		op:     "list_projects",
		method: http.MethodGet,
		path:   "/projects",
		query:  query,
	}, &env)
	if err != nil {
		return nil, err
	}
	if env.Projects == nil {
		return []*model.Project{}, nil
	}
	return env.Projects, nil
}

// CreateProject creates a project owned by the authenticated user.
func (r *ProjectsRepo) CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error) {
	var env struct {
		Project *model.Project `json:"project"`
	}
	err := r.backend.doJSON(ctx, request{
		op:     "create_project",
		method: http.MethodPost,
		path:   "/projects",
		body:   req,
	}, &env)
	if err != nil {
		return nil, err
	}
	if env.Project == nil {
		return nil, sdkerrors.Internalf("create_project: response missing project")
	}
	return env.Project, nil
}

// UploadSingleFile uploads one file into the project's source storage.
// The file is buffered in memory before sending so the request has a known length.
func (r *ProjectsRepo) UploadSingleFile(ctx context.Context, params core.UploadFileParams) (bool, error) {
	if params.Content == nil {
		return false, sdkerrors.ValidationField("content", "upload content is required")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(UploadFieldName, params.Filename)
	if err != nil {
		return false, fmt.Errorf("upload_single_file: create form file: %w", err)
	}
	if _, err := io.Copy(part, params.Content); err != nil {
		return false, fmt.Errorf("upload_single_file: read content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return false, fmt.Errorf("upload_single_file: close multipart writer: %w", err)
	}

	var ok bool
	err = r.backend.doJSON(ctx, request{
		op:          "upload_single_file",
		method:      http.MethodPost,
		path:        projectPath(params.ProjectID, "/files"),
		rawBody:     &buf,
		contentType: mw.FormDataContentType(),
	}, &ok)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// RunJob launches the project on a station, optionally pinned to one machine.
func (r *ProjectsRepo) RunJob(ctx context.Context, req model.RunJobRequest) (*model.Job, error) {
	var env jobEnvelope
	err := r.backend.doJSON(ctx, request{
		op:     "run_job",
		method: http.MethodPost,
		path:   projectPath(req.ProjectID, "/jobs"),
		body:   req,
	}, &env)
	if err != nil {
		return nil, err
	}
	if env.Job == nil {
		return nil, sdkerrors.Internalf("run_job: response missing job")
	}
	return env.Job, nil
}
