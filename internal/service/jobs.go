package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hypernetlabs/galileo-go/internal/core"
	"github.com/hypernetlabs/galileo-go/internal/domain/model"
	"github.com/hypernetlabs/galileo-go/internal/util"
)

// JobsServiceOptions groups dependencies for JobsService.
type JobsServiceOptions struct {
	Repo   core.JobsRepository // Required
	Logger *slog.Logger        // Optional
}

// JobsService applies defaults and validation on top of JobsRepository.
type JobsService struct {
	repo     core.JobsRepository
	logger   *slog.Logger
	validate *validator.Validate
}

// NewJobsService constructs a new JobsService.
func NewJobsService(opts JobsServiceOptions) *JobsService {
	if opts.Repo == nil {
		panic("JobsRepository is required")
	}
	return &JobsService{
		repo:     opts.Repo,
		logger:   opts.Logger,
		validate: newValidator(),
	}
}

// JobsQuery renders the list filters in the order the backend expects.
func JobsQuery(opts model.JobListOptions) string {
	statuses := make([]string, len(opts.Statuses))
	for i, s := range opts.Statuses {
		statuses[i] = string(s)
	}
	return util.GenerateQueryStr(
		util.ListParam("jobids", opts.JobIDs),
		util.ListParam("receiverids", opts.ReceiverIDs),
		util.ListParam("oaids", opts.OAIDs),
		util.ListParam("userids", opts.UserIDs),
		util.ListParam("stationids", opts.StationIDs),
		util.ListParam("statuses", statuses),
		util.IntParam("page", orDefault(opts.Page, model.DefaultPage)),
		util.IntParam("items", orDefault(opts.Items, model.DefaultItems)),
	)
}

// ListJobs returns one page of jobs visible to the caller.
func (s *JobsService) ListJobs(ctx context.Context, opts model.JobListOptions) ([]*model.Job, error) {
	jobs, err := s.repo.ListJobs(ctx, JobsQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJob changes the mutable fields of a job.
func (s *JobsService) UpdateJob(ctx context.Context, req model.UpdateJobRequest) (*model.Job, error) {
	if err := validateRequest(s.validate, "update job", req); err != nil {
		return nil, err
	}
	job, err := s.repo.UpdateJob(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// RequestStopJob asks the station to stop a job.
func (s *JobsService) RequestStopJob(ctx context.Context, jobID string) (*model.Job, error) {
	return s.control(ctx, "stop job", jobID, s.repo.RequestStopJob)
}

// RequestPauseJob asks the station to pause a job.
func (s *JobsService) RequestPauseJob(ctx context.Context, jobID string) (*model.Job, error) {
	return s.control(ctx, "pause job", jobID, s.repo.RequestPauseJob)
}

// RequestStartJob asks the station to start or resume a job.
func (s *JobsService) RequestStartJob(ctx context.Context, jobID string) (*model.Job, error) {
	return s.control(ctx, "start job", jobID, s.repo.RequestStartJob)
}

// RequestKillJob asks the station to kill a job.
func (s *JobsService) RequestKillJob(ctx context.Context, jobID string) (*model.Job, error) {
	return s.control(ctx, "kill job", jobID, s.repo.RequestKillJob)
}

func (s *JobsService) control(
	ctx context.Context,
	op, jobID string,
	call func(context.Context, string) (*model.Job, error),
) (*model.Job, error) {
	if err := requireID(op, "job_id", jobID); err != nil {
		return nil, err
	}
	job, err := call(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if s.logger != nil {
		s.logger.DebugContext(ctx, "job control requested", "op", op, "job_id", jobID, "status", job.Status)
	}
	return job, nil
}

// RequestTopFromJob returns the process table of a running job.
func (s *JobsService) RequestTopFromJob(ctx context.Context, jobID string) ([]*model.TopProcess, error) {
	if err := requireID("top job", "job_id", jobID); err != nil {
		return nil, err
	}
	procs, err := s.repo.RequestTopFromJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("top job: %w", err)
	}
	return procs, nil
}

// RequestLogsFromJob returns the logs of a job.
func (s *JobsService) RequestLogsFromJob(ctx context.Context, jobID string) (string, error) {
	if err := requireID("job logs", "job_id", jobID); err != nil {
		return "", err
	}
	logs, err := s.repo.RequestLogsFromJob(ctx, jobID)
	if err != nil {
		return "", fmt.Errorf("job logs: %w", err)
	}
	return logs, nil
}

// GetResultsMetadata lists the files a job produced without downloading them.
func (s *JobsService) GetResultsMetadata(ctx context.Context, jobID string) ([]*model.ResultFile, error) {
	if err := requireID("job results", "job_id", jobID); err != nil {
		return nil, err
	}
	files, err := s.repo.GetResultsMetadata(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("job results: %w", err)
	}
	return files, nil
}

// DownloadJobResults downloads every result file of a job into dir, creating
// dir when missing. It returns the paths written, in metadata order. On failure
// the paths written so far are returned with the error and the partial file is removed.
func (s *JobsService) DownloadJobResults(ctx context.Context, jobID, dir string) ([]string, error) {
	files, err := s.GetResultsMetadata(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("download job results: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("download job results: create dir: %w", err)
	}

	written := make([]string, 0, len(files))
	for i, f := range files {
		dst := filepath.Join(dir, resultFileName(f, i))
		n, err := s.downloadOne(ctx, jobID, f, dst)
		if err != nil {
			return written, fmt.Errorf("download job results: %s: %w", f.Path, err)
		}
		if s.logger != nil {
			s.logger.DebugContext(ctx, "job result downloaded", "job_id", jobID, "path", dst, "bytes", n)
		}
		written = append(written, dst)
	}
	return written, nil
}

func (s *JobsService) downloadOne(ctx context.Context, jobID string, f *model.ResultFile, dst string) (int64, error) {
	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("create file: %w", err)
	}

	n, err := s.repo.DownloadResult(ctx, core.DownloadResultParams{
		JobID: jobID,
		Path:  f.Path,
		Nonce: f.Nonce,
		Dst:   out,
	})
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dst)
		return n, err
	}
	return n, nil
}

// resultFileName reduces the backend-supplied name to a single path element
// so a hostile name cannot escape the download directory.
func resultFileName(f *model.ResultFile, index int) string {
	name := f.Filename
	if strings.TrimSpace(name) == "" {
		name = f.Path
	}
	name = filepath.Base(filepath.Clean("/" + filepath.FromSlash(strings.ReplaceAll(name, "\\", "/"))))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "result-" + strconv.Itoa(index)
	}
	return name
}
