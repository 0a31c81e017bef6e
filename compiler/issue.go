package compiler

import (
	"fmt"
	"strings"
)

// IssueType classifies a problem found while checking a program.
type IssueType string

const (
	IssueStruct   IssueType = "STRUCT"   // Malformed program (memory, shots, operands)
	IssueTopology IssueType = "TOPOLOGY" // Program does not fit the device
)

// Issue represents a single problem that prevents compilation.
type Issue struct {
	Type    IssueType
	Index   int // Instruction index or -1
	Message string
	Details map[string]interface{}
}

func (i Issue) String() string {
	if i.Index < 0 {
		return fmt.Sprintf("[%s] %s", i.Type, i.Message)
	}

	return fmt.Sprintf("[%s] #%d: %s", i.Type, i.Index, i.Message)
}

// LintError is returned by Compile when a program has issues.
type LintError struct {
	Device string
	Issues []Issue
}

func (e *LintError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}

	return fmt.Sprintf("program does not compile for %s: %s",
		e.Device, strings.Join(msgs, "; "))
}
