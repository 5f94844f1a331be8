package sdk

import (
	"context"

	"github.com/hypernetlabs/galileo-go/internal/events"
	"github.com/hypernetlabs/galileo-go/internal/service"
)

// MachinesSdk exposes machine operations and machine event registration.
type MachinesSdk struct {
	svc    *service.MachinesService
	events *events.MachinesEvents
}

// OnMachineStatusUpdate registers cb for machines going online or offline.
func (m *MachinesSdk) OnMachineStatusUpdate(cb Callback[MachineStatusUpdateEvent]) {
	m.events.OnMachineStatusUpdate(cb)
}

// GetMachineByID returns a single machine.
func (m *MachinesSdk) GetMachineByID(ctx context.Context, mid string) (*Machine, error) {
	return m.svc.GetMachineByID(ctx, mid)
}

// ListMachines returns one page of machines. Page and Items default to 1 and 25.
func (m *MachinesSdk) ListMachines(ctx context.Context, opts MachineListOptions) ([]*Machine, error) {
	return m.svc.ListMachines(ctx, opts)
}

// UpdateMachine changes the non-nil fields of req on the machine req.MID.
func (m *MachinesSdk) UpdateMachine(ctx context.Context, req UpdateMachineRequest) (*Machine, error) {
	return m.svc.UpdateMachine(ctx, req)
}
