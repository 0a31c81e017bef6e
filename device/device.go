// Package device describes the quantum computers programs can target.
package device

import (
	"fmt"
	"sort"
)

// Device is the qubit topology of a quantum computer. A device with no
// qubits is generic and accepts any qubit index.
type Device struct {
	Name           string
	Qubits         []int
	Edges          [][2]int
	FullyConnected bool
	Simulated      bool
}

// Generic reports whether the device places no restriction on qubits.
func (d Device) Generic() bool {
	return len(d.Qubits) == 0
}

// HasQubit reports whether q exists on the device.
func (d Device) HasQubit(q int) bool {
	if d.Generic() {
		return true
	}

	for _, dq := range d.Qubits {
		if dq == q {
			return true
		}
	}

	return false
}

// HasEdge reports whether a two-qubit gate may act on a and b. Edges are
// undirected.
func (d Device) HasEdge(a, b int) bool {
	if a == b {
		return false
	}

	if d.Generic() {
		return true
	}

	if !d.HasQubit(a) || !d.HasQubit(b) {
		return false
	}

	if d.FullyConnected {
		return true
	}

	for _, e := range d.Edges {
		if (e[0] == a && e[1] == b) || (e[0] == b && e[1] == a) {
			return true
		}
	}

	return false
}

func (d Device) String() string {
	kind := "QPU"
	if d.Simulated {
		kind = "QVM"
	}

	if d.Generic() {
		return fmt.Sprintf("%s(%s, generic)", kind, d.Name)
	}

	return fmt.Sprintf("%s(%s, %d qubits)", kind, d.Name, len(d.Qubits))
}

// Builder creates devices.
type Builder struct {
	qubits         []int
	edges          [][2]int
	fullyConnected bool
	simulated      bool
}

// WithQubits sets the qubits of the device.
func (b Builder) WithQubits(qubits ...int) Builder {
	b.qubits = append([]int(nil), qubits...)
	return b
}

// WithNumQubits sets the qubits of the device to 0..n-1.
func (b Builder) WithNumQubits(n int) Builder {
	b.qubits = make([]int, n)
	for i := range b.qubits {
		b.qubits[i] = i
	}

	return b
}

// WithEdges sets the couplings between qubits.
func (b Builder) WithEdges(edges ...[2]int) Builder {
	b.edges = append([][2]int(nil), edges...)
	return b
}

// WithFullConnectivity couples every pair of qubits.
func (b Builder) WithFullConnectivity() Builder {
	b.fullyConnected = true
	return b
}

// AsQVM marks the device as simulated.
func (b Builder) AsQVM() Builder {
	b.simulated = true
	return b
}

// Build creates a device with the given name.
func (b Builder) Build(name string) Device {
	qubits := append([]int(nil), b.qubits...)
	sort.Ints(qubits)

	return Device{
		Name:           name,
		Qubits:         qubits,
		Edges:          append([][2]int(nil), b.edges...),
		FullyConnected: b.fullyConnected,
		Simulated:      b.simulated,
	}
}
