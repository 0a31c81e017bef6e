package quil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Instruction is a single line of a Quil program.
type Instruction interface {
	fmt.Stringer

	// Qubits returns the qubit indices the instruction acts on.
	Qubits() []int
}

// Gate applies a named, optionally parameterized, unitary to qubits.
type Gate struct {
	Name    string
	Params  []float64
	Targets []int
}

// Qubits returns the target qubits of the gate.
func (g Gate) Qubits() []int {
	return append([]int(nil), g.Targets...)
}

func (g Gate) String() string {
	var sb strings.Builder

	sb.WriteString(g.Name)

	if len(g.Params) > 0 {
		params := make([]string, len(g.Params))
		for i, p := range g.Params {
			params[i] = FormatAngle(p)
		}

		sb.WriteString("(" + strings.Join(params, ", ") + ")")
	}

	for _, q := range g.Targets {
		sb.WriteString(" " + strconv.Itoa(q))
	}

	return sb.String()
}

// Measurement reads a qubit into classical memory. A nil Target discards the
// outcome.
type Measurement struct {
	Qubit  int
	Target *MemoryRef
}

// Qubits returns the measured qubit.
func (m Measurement) Qubits() []int {
	return []int{m.Qubit}
}

func (m Measurement) String() string {
	if m.Target == nil {
		return fmt.Sprintf("MEASURE %d", m.Qubit)
	}

	return fmt.Sprintf("MEASURE %d %s", m.Qubit, m.Target)
}

// RX rotates a qubit about the X axis.
func RX(angle float64, qubit int) Gate {
	return Gate{Name: "RX", Params: []float64{angle}, Targets: []int{qubit}}
}

// RY rotates a qubit about the Y axis.
func RY(angle float64, qubit int) Gate {
	return Gate{Name: "RY", Params: []float64{angle}, Targets: []int{qubit}}
}

// RZ rotates a qubit about the Z axis.
func RZ(angle float64, qubit int) Gate {
	return Gate{Name: "RZ", Params: []float64{angle}, Targets: []int{qubit}}
}

// H is the Hadamard gate.
func H(qubit int) Gate {
	return Gate{Name: "H", Targets: []int{qubit}}
}

// X is the Pauli-X gate.
func X(qubit int) Gate {
	return Gate{Name: "X", Targets: []int{qubit}}
}

// CNOT flips target when control is set.
func CNOT(control, target int) Gate {
	return Gate{Name: "CNOT", Targets: []int{control, target}}
}

// CZ applies a controlled phase flip.
func CZ(a, b int) Gate {
	return Gate{Name: "CZ", Targets: []int{a, b}}
}

// MEASURE measures qubit into the given memory reference.
func MEASURE(qubit int, ref MemoryRef) Measurement {
	return Measurement{Qubit: qubit, Target: &ref}
}

// FormatAngle prints an angle as a Quil expression. Rational multiples of pi
// with a denominator up to 8 print symbolically, e.g. "pi/2" or "-3*pi/4".
func FormatAngle(angle float64) string {
	ratio := angle / math.Pi

	for den := 1; den <= 8; den++ {
		num := int(math.Round(ratio * float64(den)))
		if float64(num)/float64(den) != ratio {
			continue
		}

		return piFraction(num, den)
	}

	return strconv.FormatFloat(angle, 'f', -1, 64)
}

func piFraction(num, den int) string {
	sign := ""
	if num < 0 {
		sign = "-"
	}

	abs := num
	if abs < 0 {
		abs = -abs
	}

	switch {
	case num == 0:
		return "0"
	case abs == 1 && den == 1:
		return sign + "pi"
	case abs == 1:
		return fmt.Sprintf("%spi/%d", sign, den)
	case den == 1:
		return fmt.Sprintf("%d*pi", num)
	default:
		return fmt.Sprintf("%d*pi/%d", num, den)
	}
}
