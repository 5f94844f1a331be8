package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hypernetlabs/galileo-go/sdk"
)

func runProjectsList(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("projects-list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		list                sdk.ProjectListOptions
		out                 outputOptions
		ids, names, userIDs string
	)
	fs.StringVar(&ids, "ids", "", "Comma-separated project IDs")
	fs.StringVar(&names, "names", "", "Comma-separated project names")
	fs.StringVar(&userIDs, "userids", "", "Comma-separated owner user IDs")
	fs.IntVar(&list.Page, "page", sdk.DefaultPage, "Page number")
	fs.IntVar(&list.Items, "items", sdk.DefaultItems, "Items per page")
	out.register(fs, true)
	if err := fs.Parse(args); err != nil {
		return err
	}
	list.IDs = splitList(ids)
	list.Names = splitList(names)
	list.UserIDs = splitList(userIDs)

	projects, err := cc.Client.Projects.ListProjects(cc.Ctx, list)
	if err != nil {
		return err
	}
	if out.Table {
		return printProjectsTable(cc.Out, projects)
	}
	return printResult(cc.Out, out, projects)
}

func runProjectsCreate(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("projects-create", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		req sdk.CreateProjectRequest
		out outputOptions
	)
	fs.StringVar(&req.Name, "name", "", "Project name (required)")
	fs.StringVar(&req.Description, "description", "", "Project description")
	out.register(fs, false)
	if err := fs.Parse(args); err != nil {
		return err
	}
	req.Name = strings.TrimSpace(req.Name)

	p, err := cc.Client.Projects.CreateProject(cc.Ctx, req)
	if err != nil {
		return err
	}
	return printResult(cc.Out, out, p)
}

type projectsUploadOptions struct {
	ProjectID string
	Path      string
	Name      string
}

func parseProjectsUploadFlags(args []string) (projectsUploadOptions, error) {
	fs := flag.NewFlagSet("projects-upload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts projectsUploadOptions
	fs.StringVar(&opts.ProjectID, "project-id", "", "Project ID (required)")
	fs.StringVar(&opts.Path, "file", "", "Local file to upload (required)")
	fs.StringVar(&opts.Name, "name", "", "File name stored in the project (defaults to the base name of -file)")
	if err := fs.Parse(args); err != nil {
		return projectsUploadOptions{}, err
	}

	opts.ProjectID = strings.TrimSpace(opts.ProjectID)
	if opts.ProjectID == "" {
		return projectsUploadOptions{}, errors.New("--project-id is required")
	}
	if opts.Path == "" {
		return projectsUploadOptions{}, errors.New("--file is required")
	}
	if opts.Name == "" {
		opts.Name = filepath.Base(opts.Path)
	}
	return opts, nil
}

func runProjectsUpload(cc *commandContext, args []string) error {
	opts, err := parseProjectsUploadFlags(args)
	if err != nil {
		return err
	}

	f, err := os.Open(opts.Path)
	if err != nil {
		return fmt.Errorf("open upload file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ok, err := cc.Client.Projects.UploadSingleFile(cc.Ctx, opts.ProjectID, opts.Name, f)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("backend rejected upload of %q", opts.Name)
	}
	return writef(cc.Out, "uploaded %s to project %s\n", opts.Name, opts.ProjectID)
}

func runProjectsRun(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("projects-run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		projectID, stationID, machineID string
		out                             outputOptions
	)
	fs.StringVar(&projectID, "project-id", "", "Project ID (required)")
	fs.StringVar(&stationID, "station-id", "", "Station ID (required)")
	fs.StringVar(&machineID, "machine-id", "", "Pin the job to this machine of the station")
	out.register(fs, false)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		job *sdk.Job
		err error
	)
	if machineID = strings.TrimSpace(machineID); machineID != "" {
		job, err = cc.Client.Projects.RunJobOnMachine(cc.Ctx, projectID, stationID, machineID)
	} else {
		job, err = cc.Client.Projects.RunJobOnStation(cc.Ctx, projectID, stationID)
	}
	if err != nil {
		return err
	}
	return printResult(cc.Out, out, job)
}

func runEventNames(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("event-names", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var out outputOptions
	out.register(fs, false)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return printResult(cc.Out, out, cc.Client.Events().Names())
}
