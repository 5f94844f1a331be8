package data

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hypernetlabs/galileo-go/internal/core"
	"github.com/hypernetlabs/galileo-go/internal/domain/model"
	sdkerrors "github.com/hypernetlabs/galileo-go/internal/errors"
	"github.com/hypernetlabs/galileo-go/internal/util"
)

var _ core.JobsRepository = (*JobsRepo)(nil)

// JobsRepo implements core.JobsRepository over the /jobs endpoints.
type JobsRepo struct {
	backend *Backend
}

// NewJobsRepo creates a new JobsRepo.
func NewJobsRepo(backend *Backend) *JobsRepo {
	return &JobsRepo{backend: backend}
}

type jobEnvelope struct {
	Job *model.Job `json:"job"`
}

type jobsEnvelope struct {
	Jobs []*model.Job `json:"jobs"`
}

func jobPath(jobID string, suffix string) string {
	return "/jobs/" + url.PathEscape(jobID) + suffix
}

// ListJobs returns the jobs matching the pre-rendered query string.
func (r *JobsRepo) ListJobs(ctx context.Context, query string) ([]*model.Job, error) {
	var env jobsEnvelope
	err := r.backend.doJSON(ctx, request{
		op:     "list_jobs",
		method: http.MethodGet,
		path:   "/jobs",
		query:  query,
	}, &env)
	if err != nil {
		return nil, err
	}
	if env.Jobs == nil {
		return []*model.Job{}, nil
	}
	return env.Jobs, nil
}

// UpdateJob applies the mutable fields of req to the job it addresses.
func (r *JobsRepo) UpdateJob(ctx context.Context, req model.UpdateJobRequest) (*model.Job, error) {
	return r.jobCall(ctx, request{
		op:     "update_job",
		method: http.MethodPut,
		path:   jobPath(req.JobID, ""),
		body:   req,
	})
}

// RequestStopJob asks the station to stop the job.
func (r *JobsRepo) RequestStopJob(ctx context.Context, jobID string) (*model.Job, error) {
	return r.jobAction(ctx, "request_stop_job", jobID, "stop")
}

// RequestPauseJob asks the station to pause the job.
func (r *JobsRepo) RequestPauseJob(ctx context.Context, jobID string) (*model.Job, error) {
	return r.jobAction(ctx, "request_pause_job", jobID, "pause")
}

// RequestStartJob asks the station to start or resume the job.
func (r *JobsRepo) RequestStartJob(ctx context.Context, jobID string) (*model.Job, error) {
	return r.jobAction(ctx, "request_start_job", jobID, "start")
}

// RequestKillJob asks the station to kill the job.
func (r *JobsRepo) RequestKillJob(ctx context.Context, jobID string) (*model.Job, error) {
	return r.jobAction(ctx, "request_kill_job", jobID, "kill")
}

func (r *JobsRepo) jobAction(ctx context.Context, op, jobID, action string) (*model.Job, error) {
	return r.jobCall(ctx, request{
		op:     op,
		method: http.MethodPut,
		path:   jobPath(jobID, "/"+action),
	})
}

func (r *JobsRepo) jobCall(ctx context.Context, req request) (*model.Job, error) {
	var env jobEnvelope
	if err := r.backend.doJSON(ctx, req, &env); err != nil {
		return nil, err
	}
	if env.Job == nil {
		return nil, sdkerrors.Internalf("%s: response missing job", req.op)
	}
	return env.Job, nil
}

// RequestTopFromJob returns the container process table of a running job.
func (r *JobsRepo) RequestTopFromJob(ctx context.Context, jobID string) ([]*model.TopProcess, error) {
	var env struct {
		Processes []*model.TopProcess `json:"processes"`
	}
	err := r.backend.doJSON(ctx, request{
		op:     "request_top_from_job",
		method: http.MethodGet,
		path:   jobPath(jobID, "/top"),
	}, &env)
	if err != nil {
		return nil, err
	}
	if env.Processes == nil {
		return []*model.TopProcess{}, nil
	}
	return env.Processes, nil
}

// RequestLogsFromJob returns the container logs of a job.
func (r *JobsRepo) RequestLogsFromJob(ctx context.Context, jobID string) (string, error) {
	var env struct {
		Logs string `json:"logs"`
	}
	err := r.backend.doJSON(ctx, request{
		op:     "request_logs_from_job",
		method: http.MethodGet,
		path:   jobPath(jobID, "/logs"),
	}, &env)
	if err != nil {
		return "", err
	}
	return env.Logs, nil
}

// GetResultsMetadata lists the result files a job produced.
func (r *JobsRepo) GetResultsMetadata(ctx context.Context, jobID string) ([]*model.ResultFile, error) {
	var env struct {
		Files []*model.ResultFile `json:"files"`
	}
	err := r.backend.doJSON(ctx, request{
		op:     "get_results_metadata",
		method: http.MethodGet,
		path:   jobPath(jobID, "/results"),
	}, &env)
	if err != nil {
		return nil, err
	}
	if env.Files == nil {
		return []*model.ResultFile{}, nil
	}
	return env.Files, nil
}

// DownloadResult streams a single result file into params.Dst.
func (r *JobsRepo) DownloadResult(ctx context.Context, params core.DownloadResultParams) (int64, error) {
	if params.Dst == nil {
		return 0, sdkerrors.ValidationField("dst", "download destination is required")
	}

	resp, err := r.backend.do(ctx, request{
		op:     "download_result",
		method: http.MethodGet,
		path:   jobPath(params.JobID, "/results/download"),
		query: util.GenerateQueryStr(
			util.StringParam("path", params.Path),
			util.StringParam("nonce", params.Nonce),
		),
	})
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	n, err := io.Copy(params.Dst, resp.Body)
	if err != nil {
		return n, fmt.Errorf("download_result: copy body: %w", err)
	}
	return n, nil
}
