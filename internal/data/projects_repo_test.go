package data

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypernetlabs/galileo-go/internal/core"
	"github.com/hypernetlabs/galileo-go/internal/domain/model"
	sdkerrors "github.com/hypernetlabs/galileo-go/internal/errors"
)

const projectJSON = `{"id":"proj-1","name":"name","description":"desc","source_storage_id":"s1",` +
	`"source_path":"/src","destination_storage_id":"d1","destination_path":"/dst","user_id":"u-1",` +
	`"creation_timestamp":"2023-11-14T22:13:20Z"}`

func TestProjectsRepoListProjects(t *testing.T) {
	query := "ids=id&names=name&user_ids=user_id&page=1&items=25"
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, testNamespace+"/projects", r.URL.Path)
		assert.Equal(t, query, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"projects":[` + projectJSON + `]}`))
	})

	projects, err := NewProjectsRepo(b).ListProjects(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, model.Project{
		ProjectID:            "proj-1",
		Name:                 "name",
		Description:          "desc",
		SourceStorageID:      "s1",
		SourcePath:           "/src",
		DestinationStorageID: "d1",
		DestinationPath:      "/dst",
		UserID:               "u-1",
		CreationTimestamp:    "2023-11-14T22:13:20Z",
	}, *projects[0])
}

func TestProjectsRepoCreateProject(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, testNamespace+"/projects", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"name":"name","description":"desc"}`, string(body))
		_, _ = w.Write([]byte(`{"project":` + projectJSON + `}`))
	})

	p, err := NewProjectsRepo(b).CreateProject(context.Background(), model.CreateProjectRequest{
		Name:        "name",
		Description: "desc",
	})
	require.NoError(t, err)
	assert.Equal(t, "proj-1", p.ProjectID)
}

func TestProjectsRepoUploadSingleFile(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, testNamespace+"/projects/proj-1/files", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))

		file, header, err := r.FormFile(UploadFieldName)
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "main.py", header.Filename)
		assert.Equal(t, "print('hi')\n", string(content))

		_, _ = w.Write([]byte(`true`))
	})

	ok, err := NewProjectsRepo(b).UploadSingleFile(context.Background(), core.UploadFileParams{
		ProjectID: "proj-1",
		Filename:  "main.py",
		Content:   strings.NewReader("print('hi')\n"),
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProjectsRepoUploadSingleFileRejected(t *testing.T) {
	b := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "too large", http.StatusRequestEntityTooLarge)
	})
	repo := NewProjectsRepo(b)

	_, err := repo.UploadSingleFile(context.Background(), core.UploadFileParams{ProjectID: "proj-1", Filename: "f"})
	require.Error(t, err)
	assert.True(t, sdkerrors.IsValidation(err))

	ok, err := repo.UploadSingleFile(context.Background(), core.UploadFileParams{
		ProjectID: "proj-1",
		Filename:  "f",
		Content:   strings.NewReader("x"),
	})
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, sdkerrors.GetStatus(err))
}

func TestProjectsRepoRunJob(t *testing.T) {
	tests := []struct {
		name     string
		req      model.RunJobRequest
		wantBody string
	}{
		{
			name:     "station only",
			req:      model.RunJobRequest{ProjectID: "proj-1", StationID: "station_id"},
			wantBody: `{"station_id":"station_id"}`,
		},
		{
			name:     "pinned machine",
			req:      model.RunJobRequest{ProjectID: "proj-1", StationID: "station_id", MachineID: "machine_id"},
			wantBody: `{"station_id":"station_id","machine_id":"machine_id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, testNamespace+"/projects/proj-1/jobs", r.URL.Path)
				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
				_, _ = w.Write([]byte(`{"job":` + jobJSON + `}`))
			})

			job, err := NewProjectsRepo(b).RunJob(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, "proj-1", job.ProjectID)
		})
	}
}
