package compiler

import (
	"fmt"

	"github.com/sarchlab/qmi/device"
	"github.com/sarchlab/qmi/quil"
)

// ReadoutName is the memory region results are read from.
const ReadoutName = "ro"

// Lint checks a program against a device. It returns every issue found, or
// an empty list if the program can be compiled.
func Lint(prog *quil.Program, dev device.Device) []Issue {
	var issues []Issue

	issues = append(issues, lintShots(prog)...)
	issues = append(issues, lintReadout(prog)...)
	issues = append(issues, lintMeasurements(prog)...)
	issues = append(issues, lintQubits(prog, dev)...)

	return issues
}

func lintShots(prog *quil.Program) []Issue {
	if prog.NumShots() > 0 {
		return nil
	}

	return []Issue{{
		Type:    IssueStruct,
		Index:   -1,
		Message: fmt.Sprintf("shot count must be positive, got %d", prog.NumShots()),
		Details: map[string]interface{}{"shots": prog.NumShots()},
	}}
}

func lintReadout(prog *quil.Program) []Issue {
	ro, found := prog.Declaration(ReadoutName)
	if !found {
		return []Issue{{
			Type:    IssueStruct,
			Index:   -1,
			Message: fmt.Sprintf("no %s register declared", ReadoutName),
		}}
	}

	if ro.Type != quil.BIT {
		return []Issue{{
			Type:    IssueStruct,
			Index:   -1,
			Message: fmt.Sprintf("register %s must be BIT, got %s", ReadoutName, ro.Type),
			Details: map[string]interface{}{"type": ro.Type},
		}}
	}

	return nil
}

func lintMeasurements(prog *quil.Program) []Issue {
	var issues []Issue

	written := make(map[quil.MemoryRef]int)

	for idx, inst := range prog.Instructions() {
		m, ok := inst.(quil.Measurement)
		if !ok || m.Target == nil {
			continue
		}

		ref := *m.Target

		decl, found := prog.Declaration(ref.Name)
		if !found {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Index:   idx,
				Message: fmt.Sprintf("measurement into undeclared memory %s", ref.Name),
				Details: map[string]interface{}{"target": ref.String()},
			})

			continue
		}

		if ref.Offset < 0 || ref.Offset >= decl.Length {
			issues = append(issues, Issue{
				Type:  IssueStruct,
				Index: idx,
				Message: fmt.Sprintf("measurement target %s out of range [0,%d)",
					ref, decl.Length),
				Details: map[string]interface{}{"target": ref.String(), "length": decl.Length},
			})

			continue
		}

		if prev, dup := written[ref]; dup {
			issues = append(issues, Issue{
				Type:  IssueStruct,
				Index: idx,
				Message: fmt.Sprintf("measurement target %s already written by #%d",
					ref, prev),
				Details: map[string]interface{}{"target": ref.String(), "prev": prev},
			})

			continue
		}

		written[ref] = idx
	}

	return issues
}

func lintQubits(prog *quil.Program, dev device.Device) []Issue {
	var issues []Issue

	for idx, inst := range prog.Instructions() {
		qubits := inst.Qubits()
		valid := true

		for _, q := range qubits {
			switch {
			case q < 0:
				valid = false
				issues = append(issues, Issue{
					Type:    IssueStruct,
					Index:   idx,
					Message: fmt.Sprintf("negative qubit %d in %s", q, inst),
					Details: map[string]interface{}{"qubit": q},
				})
			case !dev.HasQubit(q):
				valid = false
				issues = append(issues, Issue{
					Type:    IssueTopology,
					Index:   idx,
					Message: fmt.Sprintf("qubit %d is not on %s", q, dev.Name),
					Details: map[string]interface{}{"qubit": q, "device": dev.Name},
				})
			}
		}

		if !valid || len(qubits) != 2 {
			continue
		}

		if qubits[0] == qubits[1] {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Index:   idx,
				Message: fmt.Sprintf("%s uses qubit %d twice", inst, qubits[0]),
				Details: map[string]interface{}{"qubit": qubits[0]},
			})

			continue
		}

		if !dev.HasEdge(qubits[0], qubits[1]) {
			issues = append(issues, Issue{
				Type:  IssueTopology,
				Index: idx,
				Message: fmt.Sprintf("qubits %d and %d are not coupled on %s",
					qubits[0], qubits[1], dev.Name),
				Details: map[string]interface{}{"edge": qubits, "device": dev.Name},
			})
		}
	}

	return issues
}
