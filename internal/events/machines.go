package events

import "github.com/hypernetlabs/galileo-go/internal/domain/model"

// MachinesEvents groups the machine-related registries.
type MachinesEvents struct {
	statusUpdate Registry[model.MachineStatusUpdateEvent]
}

// NewMachinesEvents returns an empty MachinesEvents.
func NewMachinesEvents() *MachinesEvents {
	return &MachinesEvents{}
}

// OnMachineStatusUpdate registers a callback for machine_status_update.
func (e *MachinesEvents) OnMachineStatusUpdate(cb Callback[model.MachineStatusUpdateEvent]) {
	e.statusUpdate.Register(cb)
}

// MachineStatusUpdate emits machine_status_update.
func (e *MachinesEvents) MachineStatusUpdate(ev model.MachineStatusUpdateEvent) {
	e.statusUpdate.Emit(ev)
}
