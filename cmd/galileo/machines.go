package main

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/hypernetlabs/galileo-go/sdk"
)

func runMachinesList(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("machines-list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		list          sdk.MachineListOptions
		out           outputOptions
		mids, userIDs string
	)
	fs.StringVar(&mids, "mids", "", "Comma-separated machine IDs")
	fs.StringVar(&userIDs, "userids", "", "Comma-separated owner user IDs")
	fs.IntVar(&list.Page, "page", sdk.DefaultPage, "Page number")
	fs.IntVar(&list.Items, "items", sdk.DefaultItems, "Items per page")
	out.register(fs, true)
	if err := fs.Parse(args); err != nil {
		return err
	}
	list.MIDs = splitList(mids)
	list.UserIDs = splitList(userIDs)

	machines, err := cc.Client.Machines.ListMachines(cc.Ctx, list)
	if err != nil {
		return err
	}
	if out.Table {
		return printMachinesTable(cc.Out, machines)
	}
	return printResult(cc.Out, out, machines)
}

func runMachinesGet(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("machines-get", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		mid string
		out outputOptions
	)
	fs.StringVar(&mid, "mid", "", "Machine ID (required)")
	out.register(fs, false)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if mid = strings.TrimSpace(mid); mid == "" {
		return errors.New("--mid is required")
	}

	m, err := cc.Client.Machines.GetMachineByID(cc.Ctx, mid)
	if err != nil {
		return err
	}
	return printResult(cc.Out, out, m)
}

// parseMachinesUpdateFlags only sets the request fields whose flags were given,
// so unspecified fields are left unchanged on the backend.
func parseMachinesUpdateFlags(args []string) (sdk.UpdateMachineRequest, outputOptions, error) {
	fs := flag.NewFlagSet("machines-update", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		req                          sdk.UpdateMachineRequest
		out                          outputOptions
		name                         string
		gpus, cpus, runningJobsLimit int
		memory                       int64
	)
	fs.StringVar(&req.MID, "mid", "", "Machine ID (required)")
	fs.StringVar(&name, "name", "", "New machine name")
	fs.IntVar(&gpus, "gpu-count", 0, "GPUs available to jobs")
	fs.IntVar(&cpus, "cpu-count", 0, "CPUs available to jobs")
	fs.Int64Var(&memory, "memory-amount", 0, "Memory available to jobs")
	fs.IntVar(&runningJobsLimit, "running-jobs-limit", 0, "Maximum concurrently running jobs")
	out.register(fs, false)
	if err := fs.Parse(args); err != nil {
		return sdk.UpdateMachineRequest{}, outputOptions{}, err
	}

	req.MID = strings.TrimSpace(req.MID)
	if req.MID == "" {
		return sdk.UpdateMachineRequest{}, outputOptions{}, errors.New("--mid is required")
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			req.Name = &name
		case "gpu-count":
			req.GPUCount = &gpus
		case "cpu-count":
			req.CPUCount = &cpus
		case "memory-amount":
			req.MemoryAmount = &memory
		case "running-jobs-limit":
			req.RunningJobsLimit = &runningJobsLimit
		}
	})
	return req, out, nil
}

func runMachinesUpdate(cc *commandContext, args []string) error {
	req, out, err := parseMachinesUpdateFlags(args)
	if err != nil {
		return err
	}
	m, err := cc.Client.Machines.UpdateMachine(cc.Ctx, req)
	if err != nil {
		return err
	}
	return printResult(cc.Out, out, m)
}
