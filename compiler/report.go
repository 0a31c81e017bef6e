package compiler

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Report groups the issues of a failed compilation for display.
type Report struct {
	Device         string
	StructIssues   []Issue
	TopologyIssues []Issue
}

// NewReport categorizes the issues of a lint error.
func NewReport(e *LintError) *Report {
	r := &Report{Device: e.Device}

	for _, issue := range e.Issues {
		if issue.Type == IssueTopology {
			r.TopologyIssues = append(r.TopologyIssues, issue)
		} else {
			r.StructIssues = append(r.StructIssues, issue)
		}
	}

	return r
}

// WriteReport writes a formatted report to a writer.
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "PROGRAM DOES NOT COMPILE FOR %s\n", r.Device)
	fmt.Fprintln(w, separator)

	writeIssues(w, "STRUCT", r.StructIssues)
	writeIssues(w, "TOPOLOGY", r.TopologyIssues)

	fmt.Fprintf(w, "\n%d issues (%d STRUCT, %d TOPOLOGY)\n",
		len(r.StructIssues)+len(r.TopologyIssues),
		len(r.StructIssues), len(r.TopologyIssues))
}

func writeIssues(w io.Writer, title string, issues []Issue) {
	if len(issues) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s ISSUES (%d):\n", title, len(issues))
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, issue := range issues {
		if issue.Index < 0 {
			fmt.Fprintf(w, "  %s\n", issue.Message)
		} else {
			fmt.Fprintf(w, "  [#%d] %s\n", issue.Index, issue.Message)
		}

		keys := make([]string, 0, len(issue.Details))
		for k := range issue.Details {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(w, "    %s: %v\n", k, issue.Details[k])
		}
	}
}
