// Package circuit describes the entanglement experiment as static data.
//
// The experiment puts qubit 1 halfway between |0> and |1>, then spreads that
// superposition over a 16-qubit tree with CNOTs, producing a GHZ-style state.
// The qubit layout follows two octagons (0-7 and 10-17) joined by the 1-16
// link and must be kept as is.
package circuit

import (
	"math"

	"github.com/sarchlab/qmi/quil"
)

const (
	// ReadoutName is the classical register the measurements write to.
	ReadoutName = "ro"

	// ReadoutWidth is the number of readout bits.
	ReadoutWidth = 16

	// Shots is how many times the circuit is executed.
	Shots = 100
)

// Rotation is a single-qubit RX rotation.
type Rotation struct {
	Qubit int
	Angle float64
}

// Pair is a control/target pair of a CNOT.
type Pair struct {
	Control int
	Target  int
}

// Readout maps a physical qubit to a readout bit.
type Readout struct {
	Qubit int
	Bit   int
}

// Seed is the rotation that creates the superposition.
var Seed = Rotation{Qubit: 1, Angle: math.Pi / 2}

// EntanglingPairs is the CNOT sequence, in application order.
var EntanglingPairs = []Pair{
	{1, 0}, {0, 7}, {7, 6}, {6, 5},
	{1, 2}, {2, 3}, {3, 4},
	{1, 16}, {16, 17}, {17, 10}, {10, 11},
	{16, 15}, {15, 14}, {14, 13}, {13, 12},
}

// Measurements maps qubits to readout bits in ascending bit order.
var Measurements = []Readout{
	{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 7},
	{10, 8}, {11, 9}, {12, 10}, {13, 11}, {14, 12}, {15, 13}, {16, 14}, {17, 15},
}

// Qubits returns the physical qubits read out by the experiment, in bit
// order.
func Qubits() []int {
	qubits := make([]int, len(Measurements))
	for i, m := range Measurements {
		qubits[i] = m.Qubit
	}

	return qubits
}

// Build creates a fresh program for the experiment.
func Build() *quil.Program {
	p := quil.NewProgram()
	ro := p.Declare(ReadoutName, quil.BIT, ReadoutWidth)

	p.Inst(quil.RX(Seed.Angle, Seed.Qubit))

	for _, pair := range EntanglingPairs {
		p.Inst(quil.CNOT(pair.Control, pair.Target))
	}

	for _, m := range Measurements {
		p.Inst(quil.MEASURE(m.Qubit, ro.At(m.Bit)))
	}

	return p.WrapInNumShotsLoop(Shots)
}
