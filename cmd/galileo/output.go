package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/hypernetlabs/galileo-go/internal/util"
	"github.com/hypernetlabs/galileo-go/sdk"
)

// outputOptions are the flags shared by every command that prints a result.
type outputOptions struct {
	Query string
	Table bool
}

func (o *outputOptions) register(fs *flag.FlagSet, table bool) {
	fs.StringVar(&o.Query, "query", "", "JMESPath expression applied to the JSON result")
	if table {
		fs.BoolVar(&o.Table, "table", false, "Print a table instead of JSON")
	}
}

// printResult writes v as indented JSON, filtered through the JMESPath query when one is set.
func printResult(w io.Writer, opts outputOptions, v any) error {
	out := v
	if opts.Query != "" {
		if _, err := jmespath.Compile(opts.Query); err != nil {
			return fmt.Errorf("invalid -query: %w", err)
		}
		generic, err := toGeneric(v)
		if err != nil {
			return err
		}
		out, err = jmespath.Search(opts.Query, generic)
		if err != nil {
			return fmt.Errorf("evaluate -query: %w", err)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// toGeneric converts v to maps and slices so JMESPath field lookups follow JSON names.
func toGeneric(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	return out, nil
}

func printJobsTable(w io.Writer, jobs []*sdk.Job) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writef(tw, "JOB ID\tNAME\tSTATUS\tSTATION\tCREATED\tRUNTIME\tARCHIVED\n"); err != nil {
		return err
	}
	for _, j := range jobs {
		if err := writef(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%t\n",
			j.JobID, j.Name, j.Status, j.StationID,
			util.FormatUnix(j.TimeCreated), util.FormatRuntime(j.TotalRuntime), j.Archived,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printMachinesTable(w io.Writer, machines []*sdk.Machine) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writef(tw, "MID\tNAME\tSTATUS\tCPUS\tGPUS\tMEMORY\tJOB LIMIT\n"); err != nil {
		return err
	}
	for _, m := range machines {
		if err := writef(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%d\n",
			m.MID, m.Name, m.Status, m.CPUCount, m.GPUCount, m.Memory, m.RunningJobsLimit,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printProjectsTable(w io.Writer, projects []*sdk.Project) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writef(tw, "ID\tNAME\tOWNER\tCREATED\n"); err != nil {
		return err
	}
	for _, p := range projects {
		if err := writef(tw, "%s\t%s\t%s\t%s\n", p.ProjectID, p.Name, p.UserID, p.CreationTimestamp); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// splitList parses a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
