package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hypernetlabs/galileo-go/internal/domain/model"
	sdkerrors "github.com/hypernetlabs/galileo-go/internal/errors"
	"github.com/hypernetlabs/galileo-go/internal/mocks"
)

func newMachinesService(t *testing.T) (*MachinesService, *mocks.MockMachinesRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMachinesRepository(ctrl)
	return NewMachinesService(MachinesServiceOptions{Repo: repo}), repo
}

func TestMachinesQuery(t *testing.T) {
	assert.Equal(t, "page=1&items=25", MachinesQuery(model.MachineListOptions{}))
	assert.Equal(t,
		"mids=mid&userids=userid&page=3&items=5",
		MachinesQuery(model.MachineListOptions{MIDs: []string{"mid"}, UserIDs: []string{"userid"}, Page: 3, Items: 5}),
	)
}

func TestMachinesService_GetMachineByID(t *testing.T) {
	svc, repo := newMachinesService(t)
	ctx := context.Background()
	want := &model.Machine{MID: "m-1", Status: model.MachineStatusOnline}
	repo.EXPECT().GetMachineByID(ctx, "m-1").Return(want, nil)

	got, err := svc.GetMachineByID(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMachinesService_GetMachineByID_NotFound(t *testing.T) {
	svc, repo := newMachinesService(t)
	repo.EXPECT().GetMachineByID(gomock.Any(), "missing").Return(nil, sdkerrors.FromHTTPStatus(404, "get_machine_by_id", nil))

	_, err := svc.GetMachineByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, sdkerrors.IsNotFound(err))
}

func TestMachinesService_GetMachineByID_RequiresMID(t *testing.T) {
	svc, _ := newMachinesService(t)
	_, err := svc.GetMachineByID(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "mid", sdkerrors.GetField(err))
}

func TestMachinesService_ListMachines(t *testing.T) {
	svc, repo := newMachinesService(t)
	ctx := context.Background()
	repo.EXPECT().ListMachines(ctx, "userids=u-1&page=1&items=25").Return([]*model.Machine{}, nil)

	got, err := svc.ListMachines(ctx, model.MachineListOptions{UserIDs: []string{"u-1"}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMachinesService_UpdateMachine(t *testing.T) {
	svc, repo := newMachinesService(t)
	ctx := context.Background()
	limit := 5
	req := model.UpdateMachineRequest{MID: "m-1", RunningJobsLimit: &limit}
	repo.EXPECT().UpdateMachine(ctx, req).Return(&model.Machine{MID: "m-1", RunningJobsLimit: 5}, nil)

	got, err := svc.UpdateMachine(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 5, got.RunningJobsLimit)
}

func TestMachinesService_UpdateMachine_Validation(t *testing.T) {
	negative := -1

	tests := []struct {
		name      string
		req       model.UpdateMachineRequest
		wantField string
	}{
		{name: "missing mid", req: model.UpdateMachineRequest{}, wantField: "MID"},
		{name: "negative limit", req: model.UpdateMachineRequest{MID: "m-1", RunningJobsLimit: &negative}, wantField: "running_jobs_limit"},
		{name: "negative gpus", req: model.UpdateMachineRequest{MID: "m-1", GPUCount: &negative}, wantField: "gpu_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newMachinesService(t)
			repo.EXPECT().UpdateMachine(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.UpdateMachine(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, sdkerrors.IsValidation(err))
			assert.Equal(t, tt.wantField, sdkerrors.GetField(err))
		})
	}
}
