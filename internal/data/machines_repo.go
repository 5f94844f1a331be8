package data

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hypernetlabs/galileo-go/internal/core"
	"github.com/hypernetlabs/galileo-go/internal/domain/model"
	sdkerrors "github.com/hypernetlabs/galileo-go/internal/errors"
)

var _ core.MachinesRepository = (*MachinesRepo)(nil)

// MachinesRepo implements core.MachinesRepository over the /machines endpoints.
type MachinesRepo struct {
	backend *Backend
}

// NewMachinesRepo creates a new MachinesRepo.
func NewMachinesRepo(backend *Backend) *MachinesRepo {
	return &MachinesRepo{backend: backend}
}

type machineEnvelope struct {
	Machine *model.Machine `json:"machine"`
}

// GetMachineByID returns a single machine.
func (r *MachinesRepo) GetMachineByID(ctx context.Context, mid string) (*model.Machine, error) {
	return r.machineCall(ctx, request{
		op:     "get_machine_by_id",
		method: http.MethodGet,
		path:   "/machines/" + url.PathEscape(mid),
	})
}

// ListMachines returns the machines matching the pre-rendered query string.
func (r *MachinesRepo) ListMachines(ctx context.Context, query string) ([]*model.Machine, error) {
	var env struct {
		Machines []*model.Machine `json:"machines"`
	}
	err := r.backend.doJSON(ctx, request{
		op:     "list_machines",
		method: http.MethodGet,
		path:   "/machines",
		query:  query,
	}, &env)
	if err != nil {
		return nil, err
	}
	if env.Machines == nil {
		return []*model.Machine{}, nil
	}
	return env.Machines, nil
}

// UpdateMachine applies the non-nil fields of req to the machine it addresses.
func (r *MachinesRepo) UpdateMachine(ctx context.Context, req model.UpdateMachineRequest) (*model.Machine, error) {
	return r.machineCall(ctx, request{
		op:     "update_machine",
		method: http.MethodPut,
		path:   "/machines/" + url.PathEscape(req.MID),
		body:   req,
	})
}

func (r *MachinesRepo) machineCall(ctx context.Context, req request) (*model.Machine, error) {
	var env machineEnvelope
	if err := r.backend.doJSON(ctx, req, &env); err != nil {
		return nil, err
	}
	if env.Machine == nil {
		return nil, sdkerrors.Internalf("%s: response missing machine", req.op)
	}
	return env.Machine, nil
}
