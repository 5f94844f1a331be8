// Command galileo is a command-line client for the Galileo job, machine, and project API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/hypernetlabs/galileo-go/internal/bootstrap"
	"github.com/hypernetlabs/galileo-go/sdk"
)

type commandFn func(cc *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Client *sdk.Galileo
	Out    io.Writer
}

// clientFactory builds the SDK client once the command name is known to be valid.
type clientFactory func(ctx context.Context, logger *slog.Logger) (*sdk.Galileo, error)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, cfgErr := bootstrap.LoadConfig()
	logger := bootstrap.InitLogger(os.Stderr, cfg.Observability.Log)

	factory := func(ctx context.Context, logger *slog.Logger) (*sdk.Galileo, error) {
		if cfgErr != nil {
			return nil, cfgErr
		}
		return sdk.New(ctx, cfg, sdk.WithLogger(logger))
	}

	err := run(ctx, runOptions{Args: os.Args[1:], Out: os.Stdout, Logger: logger, NewClient: factory})
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when the command is missing or unknown
	default:
		logger.ErrorContext(ctx, "command failed", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

type runOptions struct {
	Args      []string
	Out       io.Writer
	Logger    *slog.Logger
	NewClient clientFactory
}

func run(ctx context.Context, opts runOptions) error {
	if len(opts.Args) < 1 {
		if err := printUsage(opts.Out); err != nil {
			return err
		}
		return errUsage
	}

	name := opts.Args[0]
	cmd, ok := commands()[name]
	if !ok {
		if err := writef(opts.Out, "unknown command %q\n\n", name); err != nil {
			return err
		}
		if err := printUsage(opts.Out); err != nil {
			return err
		}
		return errUsage
	}

	client, err := opts.NewClient(ctx, opts.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			opts.Logger.WarnContext(ctx, "close client failed", "error", cerr)
		}
	}()

	cc := &commandContext{Ctx: ctx, Logger: opts.Logger, Client: client, Out: opts.Out}
	if err := cmd.run(cc, opts.Args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func commands() map[string]command {
	list := []command{
		{"jobs-list", "List jobs visible to the caller", runJobsList},
		{"jobs-stop", "Request that a job stop", runJobAction(actionStop)},
		{"jobs-pause", "Request that a job pause", runJobAction(actionPause)},
		{"jobs-start", "Request that a job start or resume", runJobAction(actionStart)},
		{"jobs-kill", "Request that a job be killed", runJobAction(actionKill)},
		{"jobs-archive", "Archive or unarchive a job", runJobsArchive},
		{"jobs-top", "Show the process table of a running job", runJobsTop},
		{"jobs-logs", "Print the logs of a job", runJobsLogs},
		{"jobs-results", "List the result files of a job", runJobsResults},
		{"jobs-download", "Download every result file of a job into a directory", runJobsDownload},
		{"machines-list", "List machines", runMachinesList},
		{"machines-get", "Show a single machine", runMachinesGet},
		{"machines-update", "Update the mutable fields of a machine", runMachinesUpdate},
		{"projects-list", "List projects", runProjectsList},
		{"projects-create", "Create a project", runProjectsCreate},
		{"projects-upload", "Upload a file into a project", runProjectsUpload},
		{"projects-run", "Run a project on a station or machine", runProjectsRun},
		{"event-names", "List the event names accepted by the dispatcher", runEventNames},
	}
	out := make(map[string]command, len(list))
	for _, c := range list {
		out[c.name] = c
	}
	return out
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: galileo <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(w, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(w, "  %-18s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
