// Package runner runs the entanglement experiment end to end.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/sarchlab/qmi/api"
	"github.com/sarchlab/qmi/circuit"
	"github.com/sarchlab/qmi/config"
	"github.com/sarchlab/qmi/result"
)

const (
	// DefaultDevice is used when no device name is given.
	DefaultDevice = "9q-generic-qvm"

	// OutputFile receives the readout, one line per shot.
	OutputFile = "entanglement.txt"
)

// QCGetter acquires a quantum computer handle by name.
type QCGetter func(name string, asQVM bool) (api.QuantumComputer, error)

// Runner executes the experiment.
type Runner struct {
	getQC      QCGetter
	stdout     io.Writer
	summary    io.Writer
	outputPath string
	log        *slog.Logger
}

// Greeting is the line printed before the readout. The word "virtual" appears
// only for simulated quantum computers.
func Greeting(name string, simulated bool) string {
	virtual := ""
	if simulated {
		virtual = " virtual"
	}

	return fmt.Sprintf("Your%s quantum computer, %s, greets you with:", virtual, name)
}

// RunExperiment builds the entanglement circuit, compiles and runs it on the
// named device, writes the readout to the output file and prints it. The
// name is trimmed of surrounding whitespace. Any failure ends the run.
func (r *Runner) RunExperiment(ctx context.Context, deviceName string) error {
	deviceName = strings.TrimSpace(deviceName)

	program := circuit.Build()
	r.log.Log(ctx, config.LevelTrace, "Built program",
		"instructions", len(program.Instructions()),
		"shots", program.NumShots(),
	)

	qc, err := r.getQC(deviceName, true)
	if err != nil {
		return err
	}

	exe, err := qc.Compile(program)
	if err != nil {
		return errors.Wrapf(err, "compile for %s", qc.Name())
	}

	results, err := qc.Run(ctx, exe)
	if err != nil {
		return errors.Wrapf(err, "execute on %s", qc.Name())
	}

	if err := result.SaveTxtFile(r.outputPath, results); err != nil {
		return err
	}

	r.log.Log(ctx, config.LevelTrace, "Saved readout", "path", r.outputPath)

	if _, err := fmt.Fprintf(r.stdout, "%s\n %s\n",
		Greeting(deviceName, qc.IsSimulated()), results); err != nil {
		return errors.Wrap(err, "print readout")
	}

	if r.summary != nil {
		return result.RenderHistogram(r.summary, results)
	}

	return nil
}
