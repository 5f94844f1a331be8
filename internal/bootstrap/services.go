package bootstrap

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hypernetlabs/galileo-go/config"
	"github.com/hypernetlabs/galileo-go/internal/data"
	"github.com/hypernetlabs/galileo-go/internal/events"
	"github.com/hypernetlabs/galileo-go/internal/ports"
	"github.com/hypernetlabs/galileo-go/internal/service"
)

// ServiceContainer holds the services and event registries of one client.
type ServiceContainer struct {
	Jobs     *service.JobsService
	Machines *service.MachinesService
	Projects *service.ProjectsService
	Events   EventsContainer
}

// EventsContainer groups the event registries and the dispatcher feeding them.
type EventsContainer struct {
	Jobs       *events.JobsEvents
	Machines   *events.MachinesEvents
	Dispatcher *events.Dispatcher
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config    *config.SDKConfig
	Auth      ports.AccessTokenProvider
	Transport data.BackendTransport
}

// BuildServices wires repositories, services, and event registries against one backend.
func BuildServices(deps ServiceDeps) (*ServiceContainer, error) {
	if deps.Config == nil {
		return nil, errors.New("config is required")
	}
	if deps.Auth == nil {
		return nil, errors.New("access token provider is required")
	}

	transport := deps.Transport
	if transport.HTTPClient == nil {
		transport.HTTPClient = &http.Client{Timeout: deps.Config.HTTPTimeout}
	}

	backend, err := data.NewBackend(data.BackendOptions{
		Settings: data.Settings{
			Backend:   deps.Config.Backend,
			Namespace: deps.Config.Namespace,
		},
		Auth:      deps.Auth,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("build backend: %w", err)
	}

	logger := transport.Logger
	jobsEvents := events.NewJobsEvents()
	machinesEvents := events.NewMachinesEvents()

	return &ServiceContainer{
		Jobs: service.NewJobsService(service.JobsServiceOptions{
			Repo:   data.NewJobsRepo(backend),
			Logger: logger,
		}),
		Machines: service.NewMachinesService(service.MachinesServiceOptions{
			Repo:   data.NewMachinesRepo(backend),
			Logger: logger,
		}),
		Projects: service.NewProjectsService(service.ProjectsServiceOptions{
			Repo:   data.NewProjectsRepo(backend),
			Logger: logger,
		}),
		Events: EventsContainer{
			Jobs:     jobsEvents,
			Machines: machinesEvents,
			Dispatcher: events.NewDispatcher(events.DispatcherOptions{
				Jobs:     jobsEvents,
				Machines: machinesEvents,
				Logger:   logger,
			}),
		},
	}, nil
}
