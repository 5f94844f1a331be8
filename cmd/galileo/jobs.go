package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/hypernetlabs/galileo-go/sdk"
)

type jobsListOptions struct {
	List   sdk.JobListOptions
	Output outputOptions
}

func parseJobsListFlags(args []string) (jobsListOptions, error) {
	fs := flag.NewFlagSet("jobs-list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts jobsListOptions
	var jobIDs, receiverIDs, oaIDs, userIDs, stationIDs, statuses string
	fs.StringVar(&jobIDs, "jobids", "", "Comma-separated job IDs")
	fs.StringVar(&receiverIDs, "receiverids", "", "Comma-separated receiver IDs")
	fs.StringVar(&oaIDs, "oaids", "", "Comma-separated offer IDs")
	fs.StringVar(&userIDs, "userids", "", "Comma-separated launcher user IDs")
	fs.StringVar(&stationIDs, "stationids", "", "Comma-separated station IDs")
	fs.StringVar(&statuses, "statuses", "", "Comma-separated job statuses")
	fs.IntVar(&opts.List.Page, "page", sdk.DefaultPage, "Page number")
	fs.IntVar(&opts.List.Items, "items", sdk.DefaultItems, "Items per page")
	opts.Output.register(fs, true)

	if err := fs.Parse(args); err != nil {
		return jobsListOptions{}, err
	}

	opts.List.JobIDs = splitList(jobIDs)
	opts.List.ReceiverIDs = splitList(receiverIDs)
	opts.List.OAIDs = splitList(oaIDs)
	opts.List.UserIDs = splitList(userIDs)
	opts.List.StationIDs = splitList(stationIDs)
	for _, s := range splitList(statuses) {
		st, err := sdk.ParseJobStatus(s)
		if err != nil {
			return jobsListOptions{}, err
		}
		opts.List.Statuses = append(opts.List.Statuses, st)
	}
	return opts, nil
}

func runJobsList(cc *commandContext, args []string) error {
	opts, err := parseJobsListFlags(args)
	if err != nil {
		return err
	}
	jobs, err := cc.Client.Jobs.ListJobs(cc.Ctx, opts.List)
	if err != nil {
		return err
	}
	if opts.Output.Table {
		return printJobsTable(cc.Out, jobs)
	}
	return printResult(cc.Out, opts.Output, jobs)
}

type jobOptions struct {
	JobID  string
	Output outputOptions
}

// parseJobFlags parses the flags of commands that address a single job.
// extra registers command-specific flags before parsing.
func parseJobFlags(name string, args []string, extra func(fs *flag.FlagSet)) (jobOptions, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts jobOptions
	fs.StringVar(&opts.JobID, "job-id", "", "Job ID (required)")
	opts.Output.register(fs, false)
	if extra != nil {
		extra(fs)
	}

	if err := fs.Parse(args); err != nil {
		return jobOptions{}, err
	}

	opts.JobID = strings.TrimSpace(opts.JobID)
	if opts.JobID == "" {
		return jobOptions{}, errors.New("--job-id is required")
	}
	return opts, nil
}

type jobAction struct {
	name string
	call func(j *sdk.JobsSdk, ctx context.Context, jobID string) (*sdk.Job, error)
}

var (
	actionStop  = jobAction{"jobs-stop", (*sdk.JobsSdk).RequestStopJob}
	actionPause = jobAction{"jobs-pause", (*sdk.JobsSdk).RequestPauseJob}
	actionStart = jobAction{"jobs-start", (*sdk.JobsSdk).RequestStartJob}
	actionKill  = jobAction{"jobs-kill", (*sdk.JobsSdk).RequestKillJob}
)

func runJobAction(action jobAction) commandFn {
	return func(cc *commandContext, args []string) error {
		opts, err := parseJobFlags(action.name, args, nil)
		if err != nil {
			return err
		}
		job, err := action.call(cc.Client.Jobs, cc.Ctx, opts.JobID)
		if err != nil {
			return err
		}
		return printResult(cc.Out, opts.Output, job)
	}
}

func runJobsArchive(cc *commandContext, args []string) error {
	var unarchive bool
	opts, err := parseJobFlags("jobs-archive", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&unarchive, "unarchive", false, "Clear the archived flag instead of setting it")
	})
	if err != nil {
		return err
	}
	archived := !unarchive
	job, err := cc.Client.Jobs.UpdateJob(cc.Ctx, sdk.UpdateJobRequest{JobID: opts.JobID, Archived: &archived})
	if err != nil {
		return err
	}
	return printResult(cc.Out, opts.Output, job)
}

func runJobsTop(cc *commandContext, args []string) error {
	opts, err := parseJobFlags("jobs-top", args, nil)
	if err != nil {
		return err
	}
	procs, err := cc.Client.Jobs.RequestTopFromJob(cc.Ctx, opts.JobID)
	if err != nil {
		return err
	}
	return printResult(cc.Out, opts.Output, procs)
}

// runJobsLogs prints the logs verbatim; -query is ignored.
func runJobsLogs(cc *commandContext, args []string) error {
	opts, err := parseJobFlags("jobs-logs", args, nil)
	if err != nil {
		return err
	}
	logs, err := cc.Client.Jobs.RequestLogsFromJob(cc.Ctx, opts.JobID)
	if err != nil {
		return err
	}
	if logs != "" && !strings.HasSuffix(logs, "\n") {
		logs += "\n"
	}
	return writef(cc.Out, "%s", logs)
}

func runJobsResults(cc *commandContext, args []string) error {
	opts, err := parseJobFlags("jobs-results", args, nil)
	if err != nil {
		return err
	}
	files, err := cc.Client.Jobs.GetResultsMetadata(cc.Ctx, opts.JobID)
	if err != nil {
		return err
	}
	return printResult(cc.Out, opts.Output, files)
}

func runJobsDownload(cc *commandContext, args []string) error {
	var dir string
	opts, err := parseJobFlags("jobs-download", args, func(fs *flag.FlagSet) {
		fs.StringVar(&dir, "dir", ".", "Directory the result files are written into")
	})
	if err != nil {
		return err
	}
	written, err := cc.Client.Jobs.DownloadJobResults(cc.Ctx, opts.JobID, dir)
	if err != nil {
		return err
	}
	cc.Logger.InfoContext(cc.Ctx, "job results downloaded", "job_id", opts.JobID, "files", len(written), "dir", dir)
	return printResult(cc.Out, opts.Output, written)
}
