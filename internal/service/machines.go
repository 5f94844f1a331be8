package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/hypernetlabs/galileo-go/internal/core"
	"github.com/hypernetlabs/galileo-go/internal/domain/model"
	"github.com/hypernetlabs/galileo-go/internal/util"
)

// MachinesServiceOptions groups dependencies for MachinesService.
type MachinesServiceOptions struct {
	Repo   core.MachinesRepository // Required
	Logger *slog.Logger            // Optional
}

// MachinesService applies defaults and validation on top of MachinesRepository.
type MachinesService struct {
	repo     core.MachinesRepository
	logger   *slog.Logger
	validate *validator.Validate
}

// NewMachinesService constructs a new MachinesService.
func NewMachinesService(opts MachinesServiceOptions) *MachinesService {
	if opts.Repo == nil {
		panic("MachinesRepository is required")
	}
	return &MachinesService{
		repo:     opts.Repo,
		logger:   opts.Logger,
		validate: newValidator(),
	}
}

// MachinesQuery renders the list filters in the order the backend expects.
func MachinesQuery(opts model.MachineListOptions) string {
	return util.GenerateQueryStr(
		util.ListParam("mids", opts.MIDs),
		util.ListParam("userids", opts.UserIDs),
		util.IntParam("page", orDefault(opts.Page, model.DefaultPage)),
		util.IntParam("items", orDefault(opts.Items, model.DefaultItems)),
	)
}

// GetMachineByID returns a single machine.
func (s *MachinesService) GetMachineByID(ctx context.Context, mid string) (*model.Machine, error) {
	if err := requireID("get machine", "mid", mid); err != nil {
		return nil, err
	}
	m, err := s.repo.GetMachineByID(ctx, mid)
	if err != nil {
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return m, nil
}

// ListMachines returns one page of machines visible to the caller.
func (s *MachinesService) ListMachines(ctx context.Context, opts model.MachineListOptions) ([]*model.Machine, error) {
	machines, err := s.repo.ListMachines(ctx, MachinesQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	return machines, nil
}

// UpdateMachine changes the settable fields of a machine. Nil fields are left untouched.
func (s *MachinesService) UpdateMachine(ctx context.Context, req model.UpdateMachineRequest) (*model.Machine, error) {
	if err := validateRequest(s.validate, "update machine", req); err != nil {
		return nil, err
	}
	m, err := s.repo.UpdateMachine(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("update machine: %w", err)
	}
	if s.logger != nil {
		s.logger.DebugContext(ctx, "machine updated", "mid", m.MID)
	}
	return m, nil
}
