// Package compiler turns programs into executables for a device.
//
// Compilation here is a structural check followed by serialization. The
// program is not rewritten: no qubit routing and no native gate translation
// take place, so the executable runs the program as written.
package compiler

import (
	"fmt"

	"github.com/sarchlab/qmi/device"
	"github.com/sarchlab/qmi/quil"
)

// Executable is a program compiled for one device. It is opaque to callers
// and only meaningful to the backend that produced it.
type Executable struct {
	Device       string
	Quil         string
	Shots        int
	Readout      string
	ReadoutWidth int
}

func (e *Executable) String() string {
	return fmt.Sprintf("Executable(%s, %d shots, %s[%d])",
		e.Device, e.Shots, e.Readout, e.ReadoutWidth)
}

// Compile checks the program against the device and produces an executable.
// It returns a *LintError listing every issue when the check fails.
func Compile(prog *quil.Program, dev device.Device) (*Executable, error) {
	snapshot := prog.Copy()

	if issues := Lint(snapshot, dev); len(issues) > 0 {
		return nil, &LintError{Device: dev.Name, Issues: issues}
	}

	ro, _ := snapshot.Declaration(ReadoutName)

	return &Executable{
		Device:       dev.Name,
		Quil:         snapshot.String(),
		Shots:        snapshot.NumShots(),
		Readout:      ro.Name,
		ReadoutWidth: ro.Length,
	}, nil
}
