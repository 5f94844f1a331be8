package sdk_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypernetlabs/galileo-go/sdk"
)

const ns = "/galileo/user_interface/v1"

type recordingSink struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (s *recordingSink) Count(name string, value int64, _ map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counts == nil {
		s.counts = map[string]int64{}
	}
	s.counts[name] += value
}

func (s *recordingSink) Timing(string, time.Duration, map[string]string) {}

func newClient(t *testing.T, handler http.HandlerFunc, opts ...sdk.Option) *sdk.Galileo {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	base := []sdk.Option{
		sdk.WithHTTPClient(srv.Client()),
		sdk.WithTokenProvider(sdk.TokenProviderFunc(func(context.Context) (string, error) {
			return "sdk-token", nil
		})),
	}
	g, err := sdk.New(context.Background(), sdk.Config{Backend: srv.URL}, append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestProjectsListProjectsQuery(t *testing.T) {
	sink := &recordingSink{}
	g := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ns+"/projects", r.URL.Path)
		assert.Equal(t, "ids=id&names=name&user_ids=user_id&page=1&items=25", r.URL.RawQuery)
		assert.Equal(t, "Bearer sdk-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"projects":[{"id":"id","name":"name","description":"description",` +
			`"source_storage_id":"source_storage_id","source_path":"source_path",` +
			`"destination_storage_id":"destination_storage_id","destination_path":"destination_path",` +
			`"user_id":"user_id","creation_timestamp":"creation_timestamp"}]}`))
	}, sdk.WithMetrics(sink))

	projects, err := g.Projects.ListProjects(context.Background(), sdk.ProjectListOptions{
		IDs:     []string{"id"},
		Names:   []string{"name"},
		UserIDs: []string{"user_id"},
	})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, sdk.Project{
		ProjectID:            "id",
		Name:                 "name",
		Description:          "description",
		SourceStorageID:      "source_storage_id",
		SourcePath:           "source_path",
		DestinationStorageID: "destination_storage_id",
		DestinationPath:      "destination_path",
		UserID:               "user_id",
		CreationTimestamp:    "creation_timestamp",
	}, *projects[0])
	assert.Equal(t, int64(1), sink.counts["backend.request"])
}

func TestProjectsRunJobBodies(t *testing.T) {
	var bodies []string
	g := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ns+"/projects/project_id/jobs", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		_, _ = w.Write([]byte(`{"job":{"jobid":"job-1","status":"submitted"}}`))
	})
	ctx := context.Background()

	job, err := g.Projects.RunJobOnStation(ctx, "project_id", "station_id")
	require.NoError(t, err)
	assert.Equal(t, sdk.JobStatusSubmitted, job.Status)

	_, err = g.Projects.RunJobOnMachine(ctx, "project_id", "station_id", "machine_id")
	require.NoError(t, err)

	assert.Equal(t, []string{
		`{"station_id":"station_id"}`,
		`{"station_id":"station_id","machine_id":"machine_id"}`,
	}, bodies)
}

func TestJobsArchiveAndErrors(t *testing.T) {
	g := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ns + "/jobs/job-1":
			b, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"archived":true}`, string(b))
			_, _ = w.Write([]byte(`{"job":{"jobid":"job-1","archived":true}}`))
		default:
			http.Error(w, "no such job", http.StatusNotFound)
		}
	})
	ctx := context.Background()

	archived := true
	job, err := g.Jobs.UpdateJob(ctx, sdk.UpdateJobRequest{JobID: "job-1", Archived: &archived})
	require.NoError(t, err)
	assert.True(t, job.Archived)

	_, err = g.Jobs.RequestStopJob(ctx, "missing")
	require.Error(t, err)
	assert.True(t, sdk.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, sdk.StatusCode(err))

	var sdkErr *sdk.Error
	require.True(t, errors.As(err, &sdkErr))
	assert.Equal(t, sdk.ErrCodeNotFound, sdkErr.Code)

	_, err = g.Jobs.RequestStopJob(ctx, "")
	assert.True(t, sdk.IsValidation(err))
}

func TestJobsDownloadJobResults(t *testing.T) {
	g := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ns + "/jobs/job-1/results":
			_, _ = w.Write([]byte(`{"files":[{"filename":"out.txt","path":"/out.txt","file_size":2}]}`))
		case ns + "/jobs/job-1/results/download":
			assert.Equal(t, "path=%2Fout.txt", r.URL.RawQuery)
			_, _ = w.Write([]byte("ok"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	dir := t.TempDir()
	written, err := g.Jobs.DownloadJobResults(context.Background(), "job-1", dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "out.txt")}, written)

	data, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}

func TestMachinesUpdate(t *testing.T) {
	g := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, ns+"/machines/m-1", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"running_jobs_limit":2}`, string(b))
		_, _ = w.Write([]byte(`{"machine":{"mid":"m-1","running_jobs_limit":2,"status":"online"}}`))
	})

	limit := 2
	m, err := g.Machines.UpdateMachine(context.Background(), sdk.UpdateMachineRequest{MID: "m-1", RunningJobsLimit: &limit})
	require.NoError(t, err)
	assert.Equal(t, sdk.MachineStatusOnline, m.Status)
}

func TestEventsDispatch(t *testing.T) {
	g := newClient(t, func(http.ResponseWriter, *http.Request) {})

	var order []string
	g.Jobs.OnStationJobUpdated(func(ev sdk.StationJobUpdatedEvent) { order = append(order, "first:"+ev.Job.JobID) })
	g.Jobs.OnStationJobUpdated(func(ev sdk.StationJobUpdatedEvent) { order = append(order, "second:"+ev.Job.JobID) })
	g.Machines.OnMachineStatusUpdate(func(ev sdk.MachineStatusUpdateEvent) { order = append(order, "machine:"+ev.MID) })

	require.NoError(t, g.Events().Dispatch("station_job_updated", []byte(`{"job":{"jobid":"j1"}}`)))
	require.NoError(t, g.Events().Dispatch("machine_status_update", []byte(`{"mid":"m1","status":"offline"}`)))
	assert.Equal(t, []string{"first:j1", "second:j1", "machine:m1"}, order)

	err := g.Events().Dispatch("nope", nil)
	assert.ErrorIs(t, err, sdk.ErrUnknownEvent)
	assert.Len(t, g.Events().Names(), 4)
}

func TestNewRequiresToken(t *testing.T) {
	_, err := sdk.New(context.Background(), sdk.Config{Backend: "http://localhost:1"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "GALILEO_TOKEN"))
}

func TestNewRequiresBackend(t *testing.T) {
	_, err := sdk.New(context.Background(), sdk.Config{Auth: sdk.AuthConfig{Token: "t"}})
	require.Error(t, err)
}

func TestNewFromEnv(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer env-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/custom/machines", r.URL.Path)
		_, _ = w.Write([]byte(`{"machines":[]}`))
	}))
	defer srv.Close()

	t.Setenv("GALILEO_BACKEND", srv.URL)
	t.Setenv("GALILEO_NAMESPACE", "custom")
	t.Setenv("GALILEO_TOKEN", "env-token")

	g, err := sdk.NewFromEnv(context.Background(), []string{filepath.Join(t.TempDir(), "missing.env")})
	require.NoError(t, err)
	defer g.Close()

	machines, err := g.Machines.ListMachines(context.Background(), sdk.MachineListOptions{})
	require.NoError(t, err)
	assert.Empty(t, machines)
}
