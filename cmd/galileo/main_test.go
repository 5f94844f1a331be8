package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypernetlabs/galileo-go/sdk"
)

const apiPrefix = "/galileo/user_interface/v1"

func runCLI(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	factory := func(ctx context.Context, logger *slog.Logger) (*sdk.Galileo, error) {
		return sdk.New(ctx, sdk.Config{Backend: srv.URL},
			sdk.WithLogger(logger),
			sdk.WithHTTPClient(srv.Client()),
			sdk.WithTokenProvider(sdk.TokenProviderFunc(func(context.Context) (string, error) {
				return "cli-token", nil
			})),
		)
	}

	var out bytes.Buffer
	err := run(context.Background(), runOptions{
		Args:      args,
		Out:       &out,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		NewClient: factory,
	})
	return out.String(), err
}

func TestRunWithoutCommandPrintsUsage(t *testing.T) {
	out, err := runCLI(t, nil)
	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, "Usage: galileo <command> [flags]")
	assert.Contains(t, out, "jobs-list")
}

func TestRunUnknownCommand(t *testing.T) {
	out, err := runCLI(t, nil, "jobs-explode")
	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, `unknown command "jobs-explode"`)
}

func TestJobsListQueryAndJMESPath(t *testing.T) {
	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiPrefix+"/jobs", r.URL.Path)
		assert.Equal(t, "stationids=s1,s2&statuses=running&page=2&items=25", r.URL.RawQuery)
		assert.Equal(t, "Bearer cli-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"jobs":[{"jobid":"j1","status":"running"},{"jobid":"j2","status":"running"}]}`))
	}, "jobs-list", "-stationids", "s1, s2", "-statuses", "RUNNING", "-page", "2", "-query", "[].jobid")
	require.NoError(t, err)

	var ids []string
	require.NoError(t, json.Unmarshal([]byte(out), &ids))
	assert.Equal(t, []string{"j1", "j2"}, ids)
}

func TestJobsListRejectsUnknownStatus(t *testing.T) {
	_, err := runCLI(t, func(http.ResponseWriter, *http.Request) {
		t.Error("backend should not be called")
	}, "jobs-list", "-statuses", "sleeping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JobStatus")
}

func TestJobsListTable(t *testing.T) {
	out, err := runCLI(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"jobs":[{"jobid":"j1","name":"train","status":"completed","time_created":86400,"total_runtime":90}]}`))
	}, "jobs-list", "-table")
	require.NoError(t, err)
	assert.Contains(t, out, "JOB ID")
	assert.Contains(t, out, "1970-01-02T00:00:00Z")
	assert.Contains(t, out, "1m30s")
}

func TestJobActions(t *testing.T) {
	for cmd, action := range map[string]string{
		"jobs-stop":  "stop",
		"jobs-pause": "pause",
		"jobs-start": "start",
		"jobs-kill":  "kill",
	} {
		t.Run(cmd, func(t *testing.T) {
			out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, apiPrefix+"/jobs/j1/"+action, r.URL.Path)
				_, _ = w.Write([]byte(`{"job":{"jobid":"j1","status":"` + action + `_requested"}}`))
			}, cmd, "-job-id", "j1", "-query", "status")
			require.NoError(t, err)
			assert.JSONEq(t, `"`+action+`_requested"`, out)
		})
	}
}

func TestJobActionRequiresJobID(t *testing.T) {
	_, err := runCLI(t, nil, "jobs-stop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--job-id is required")
}

func TestJobsArchive(t *testing.T) {
	_, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"archived":false}`, string(body))
		_, _ = w.Write([]byte(`{"job":{"jobid":"j1"}}`))
	}, "jobs-archive", "-job-id", "j1", "-unarchive")
	require.NoError(t, err)
}

func TestJobsLogsPrintsVerbatim(t *testing.T) {
	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiPrefix+"/jobs/j1/logs", r.URL.Path)
		_, _ = w.Write([]byte(`{"logs":"line one\nline two"}`))
	}, "jobs-logs", "-job-id", "j1")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", out)
}

func TestJobsDownload(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case apiPrefix + "/jobs/j1/results":
			_, _ = w.Write([]byte(`{"files":[{"filename":"model.bin","path":"/out/model.bin","nonce":"n1"}]}`))
		case apiPrefix + "/jobs/j1/results/download":
			assert.Equal(t, "path=%2Fout%2Fmodel.bin&nonce=n1", r.URL.RawQuery)
			_, _ = w.Write([]byte("weights"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}, "jobs-download", "-job-id", "j1", "-dir", dir)
	require.NoError(t, err)

	target := filepath.Join(dir, "model.bin")
	var written []string
	require.NoError(t, json.Unmarshal([]byte(out), &written))
	assert.Equal(t, []string{target}, written)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "weights", string(data))
}

func TestMachinesUpdateSendsOnlyGivenFlags(t *testing.T) {
	_, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiPrefix+"/machines/m1", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"gpu_count":0,"running_jobs_limit":3}`, string(body))
		_, _ = w.Write([]byte(`{"machine":{"mid":"m1"}}`))
	}, "machines-update", "-mid", "m1", "-gpu-count", "0", "-running-jobs-limit", "3")
	require.NoError(t, err)
}

func TestMachinesGetNotFound(t *testing.T) {
	_, err := runCLI(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}, "machines-get", "-mid", "m404")
	require.Error(t, err)
	assert.True(t, sdk.IsNotFound(err))
}

func TestProjectsUpload(t *testing.T) {
	src := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(src, []byte("print('hi')"), 0o600))

	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiPrefix+"/projects/p1/files", r.URL.Path)
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		part, err := multipart.NewReader(r.Body, params["boundary"]).NextPart()
		require.NoError(t, err)
		assert.Equal(t, "upload_file", part.FormName())
		assert.Equal(t, "main.py", part.FileName())
		content, _ := io.ReadAll(part)
		assert.Equal(t, "print('hi')", string(content))
		_, _ = w.Write([]byte(`true`))
	}, "projects-upload", "-project-id", "p1", "-file", src)
	require.NoError(t, err)
	assert.Equal(t, "uploaded main.py to project p1\n", out)
}

func TestProjectsRunOnMachine(t *testing.T) {
	_, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiPrefix+"/projects/p1/jobs", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"station_id":"s1","machine_id":"m1"}`, string(body))
		_, _ = w.Write([]byte(`{"job":{"jobid":"j9"}}`))
	}, "projects-run", "-project-id", "p1", "-station-id", "s1", "-machine-id", "m1")
	require.NoError(t, err)
}

func TestEventNames(t *testing.T) {
	out, err := runCLI(t, nil, "event-names")
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Contains(t, names, "machine_status_update")
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList("  "))
	assert.Equal(t, []string{"a", "b"}, splitList("a, ,b,"))
}
