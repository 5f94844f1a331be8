package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hypernetlabs/galileo-go/internal/domain/model"
	sdkerrors "github.com/hypernetlabs/galileo-go/internal/errors"
)

// ErrUnknownEvent is returned by Dispatch for event names with no registry.
var ErrUnknownEvent = errors.New("unknown event")

// DispatcherOptions groups dependencies for Dispatcher.
type DispatcherOptions struct {
	Jobs     *JobsEvents     // Required
	Machines *MachinesEvents // Required
	Logger   *slog.Logger    // Optional
}

// Dispatcher decodes raw event payloads and emits them on the matching registry.
// It does not own a transport; whatever receives backend events hands them to Dispatch.
type Dispatcher struct {
	handlers map[model.EventName]func([]byte) error
	logger   *slog.Logger
}

// NewDispatcher constructs a Dispatcher wired to the given registries.
func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	if opts.Jobs == nil {
		panic("JobsEvents is required")
	}
	if opts.Machines == nil {
		panic("MachinesEvents is required")
	}

	return &Dispatcher{
		logger: opts.Logger,
		handlers: map[model.EventName]func([]byte) error{
			model.EventJobLauncherUpdated:   decodeAndEmit(opts.Jobs.JobLauncherUpdated),
			model.EventJobLauncherSubmitted: decodeAndEmit(opts.Jobs.JobLauncherSubmitted),
			model.EventStationJobUpdated:    decodeAndEmit(opts.Jobs.StationJobUpdated),
			model.EventMachineStatusUpdate:  decodeAndEmit(opts.Machines.MachineStatusUpdate),
		},
	}
}

func decodeAndEmit[E any](emit func(E)) func([]byte) error {
	return func(payload []byte) error {
		var ev E
		if err := json.Unmarshal(payload, &ev); err != nil {
			return err
		}
		emit(ev)
		return nil
	}
}

// Dispatch decodes payload as the event called name and runs its callbacks
// before returning.
func (d *Dispatcher) Dispatch(name string, payload []byte) error {
	handle, ok := d.handlers[model.EventName(name)]
	if !ok {
		if d.logger != nil {
			d.logger.Warn("dropping unknown event", "event", name)
		}
		return fmt.Errorf("dispatch %q: %w", name, ErrUnknownEvent)
	}
	if err := handle(payload); err != nil {
		return sdkerrors.Wrapf(err, sdkerrors.ErrCodeValidation, "dispatch %q: decode payload", name)
	}
	return nil
}

// Names returns the event names the dispatcher understands.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.handlers))
	for n := range d.handlers {
		names = append(names, string(n))
	}
	return names
}
