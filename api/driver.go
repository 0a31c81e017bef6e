// Package api defines the handle used to compile and run programs on a
// quantum computer.
package api

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/sarchlab/qmi/compiler"
	"github.com/sarchlab/qmi/config"
	"github.com/sarchlab/qmi/device"
	"github.com/sarchlab/qmi/quil"
	"github.com/sarchlab/qmi/qvm"
	"github.com/sarchlab/qmi/result"
)

// QuantumComputer is a handle to a quantum computer or simulator.
type QuantumComputer interface {
	// Name returns the device name the handle was acquired for.
	Name() string

	// IsSimulated reports whether programs run on a virtual machine rather
	// than hardware.
	IsSimulated() bool

	// Compile prepares a program for this quantum computer. The program is
	// not modified.
	Compile(program *quil.Program) (*compiler.Executable, error)

	// Run executes a compiled program and returns one row of readout per
	// shot.
	Run(ctx context.Context, exe *compiler.Executable) (result.Matrix, error)
}

type qcImpl struct {
	device device.Device
	qam    qvm.Client
	log    *slog.Logger
}

func (qc *qcImpl) Name() string {
	return qc.device.Name
}

func (qc *qcImpl) IsSimulated() bool {
	return qc.device.Simulated
}

// Compile checks the program against the device topology and serializes it.
func (qc *qcImpl) Compile(program *quil.Program) (*compiler.Executable, error) {
	exe, err := compiler.Compile(program, qc.device)
	if err != nil {
		return nil, err
	}

	qc.log.Log(context.Background(), config.LevelTrace, "Compiled",
		"device", qc.device.Name,
		"shots", exe.Shots,
		"readout", exe.Readout,
		"width", exe.ReadoutWidth,
	)

	return exe, nil
}

// Run sends the executable to the QVM and checks the shape of the readout.
func (qc *qcImpl) Run(
	ctx context.Context,
	exe *compiler.Executable,
) (result.Matrix, error) {
	if exe.Device != qc.device.Name {
		return nil, errors.Errorf("executable was compiled for %s, not %s",
			exe.Device, qc.device.Name)
	}

	rows, err := qc.qam.Run(ctx, exe.Quil, exe.Shots, exe.Readout)
	if err != nil {
		return nil, errors.Wrapf(err, "run on %s", qc.device.Name)
	}

	m, err := result.FromRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "malformed readout")
	}

	if err := m.Validate(exe.Shots, exe.ReadoutWidth); err != nil {
		return nil, errors.Wrap(err, "malformed readout")
	}

	qc.log.Log(ctx, config.LevelTrace, "Ran",
		"device", qc.device.Name,
		"shots", len(m),
	)

	return m, nil
}
