// Package quil provides a minimal model of Quil programs: classical memory
// declarations, gate and measurement instructions, and the shot count the
// program is executed with.
package quil

import (
	"fmt"
	"sort"
	"strings"
)

// MemoryType is the element type of a classical memory region.
type MemoryType string

// Memory types understood by the QVM.
const (
	BIT     MemoryType = "BIT"
	OCTET   MemoryType = "OCTET"
	INTEGER MemoryType = "INTEGER"
	REAL    MemoryType = "REAL"
)

// Declaration reserves a named region of classical memory.
type Declaration struct {
	Name   string
	Type   MemoryType
	Length int
}

func (d Declaration) String() string {
	return fmt.Sprintf("DECLARE %s %s[%d]", d.Name, d.Type, d.Length)
}

// At returns a reference to one element of the region.
func (d Declaration) At(offset int) MemoryRef {
	return MemoryRef{Name: d.Name, Offset: offset}
}

// MemoryRef addresses one element of a declared memory region.
type MemoryRef struct {
	Name   string
	Offset int
}

func (r MemoryRef) String() string {
	return fmt.Sprintf("%s[%d]", r.Name, r.Offset)
}

// Program is an ordered list of instructions with its memory declarations.
type Program struct {
	declarations []Declaration
	instructions []Instruction
	numShots     int
}

// NewProgram creates a program holding the given instructions.
func NewProgram(insts ...Instruction) *Program {
	p := &Program{numShots: 1}
	p.Inst(insts...)

	return p
}

// Declare adds a memory region to the program and returns its declaration.
// Declaring the same name twice is a programming error.
func (p *Program) Declare(name string, typ MemoryType, length int) Declaration {
	if _, found := p.Declaration(name); found {
		panic(fmt.Sprintf("memory region %q declared twice", name))
	}

	if length <= 0 {
		panic(fmt.Sprintf("memory region %q must have a positive length", name))
	}

	d := Declaration{Name: name, Type: typ, Length: length}
	p.declarations = append(p.declarations, d)

	return d
}

// Declaration looks up a memory region by name.
func (p *Program) Declaration(name string) (Declaration, bool) {
	for _, d := range p.declarations {
		if d.Name == name {
			return d, true
		}
	}

	return Declaration{}, false
}

// Declarations returns the memory declarations in order.
func (p *Program) Declarations() []Declaration {
	return append([]Declaration(nil), p.declarations...)
}

// Inst appends instructions to the program.
func (p *Program) Inst(insts ...Instruction) *Program {
	p.instructions = append(p.instructions, insts...)
	return p
}

// Instructions returns the instructions in order.
func (p *Program) Instructions() []Instruction {
	return append([]Instruction(nil), p.instructions...)
}

// Gates returns the gate instructions in order.
func (p *Program) Gates() []Gate {
	var gates []Gate

	for _, inst := range p.instructions {
		if g, ok := inst.(Gate); ok {
			gates = append(gates, g)
		}
	}

	return gates
}

// CountGates counts the gates of the program with the given name.
func CountGates(p *Program, name string) int {
	n := 0

	for _, g := range p.Gates() {
		if g.Name == name {
			n++
		}
	}

	return n
}

// Measurements returns the measurement instructions in order.
func (p *Program) Measurements() []Measurement {
	var measurements []Measurement

	for _, inst := range p.instructions {
		if m, ok := inst.(Measurement); ok {
			measurements = append(measurements, m)
		}
	}

	return measurements
}

// WrapInNumShotsLoop sets how many times the program is executed. Each shot
// produces one row of readout.
func (p *Program) WrapInNumShotsLoop(shots int) *Program {
	p.numShots = shots
	return p
}

// NumShots returns the number of shots the program is run for.
func (p *Program) NumShots() int {
	return p.numShots
}

// Qubits returns the sorted set of qubits the program touches.
func (p *Program) Qubits() []int {
	seen := make(map[int]bool)

	for _, inst := range p.instructions {
		for _, q := range inst.Qubits() {
			seen[q] = true
		}
	}

	qubits := make([]int, 0, len(seen))
	for q := range seen {
		qubits = append(qubits, q)
	}

	sort.Ints(qubits)

	return qubits
}

// Copy returns a program that shares no mutable state with p.
func (p *Program) Copy() *Program {
	return &Program{
		declarations: p.Declarations(),
		instructions: p.Instructions(),
		numShots:     p.numShots,
	}
}

// String renders the program as Quil text. The shot count is not part of the
// text; it travels with the executable.
func (p *Program) String() string {
	var sb strings.Builder

	for _, d := range p.declarations {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}

	for _, inst := range p.instructions {
		sb.WriteString(inst.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
