package device

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// QVMSuffix marks a device name as a request for a simulated device.
	QVMSuffix = "-qvm"

	// MaxQubits is the largest qubit count a device name may ask for.
	MaxQubits = 128
)

var (
	// ErrUnknownDevice is returned for names that match no device.
	ErrUnknownDevice = errors.New("unknown device")

	// ErrQPUUnavailable is returned when real hardware is requested. Only
	// QVM execution is supported.
	ErrQPUUnavailable = errors.New("QPU access is not available")

	//go:embed lattices.yaml
	builtinLattices []byte

	numQubitsQVM   = regexp.MustCompile(`^(\d+)q-qvm$`)
	genericQVMName = regexp.MustCompile(`^(\d+)q-generic-qvm$`)
)

type latticeFile struct {
	Lattices []latticeEntry `yaml:"lattices"`
}

type latticeEntry struct {
	Name   string   `yaml:"name"`
	Qubits []int    `yaml:"qubits"`
	Edges  [][2]int `yaml:"edges"`
}

// Catalog resolves device names to devices.
type Catalog struct {
	lattices map[string]Device
}

// NewCatalog creates an empty catalog. Names of the form "Nq-qvm" and
// "Nq-generic-qvm" resolve even in an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{lattices: make(map[string]Device)}
}

// DefaultCatalog creates a catalog holding the built-in lattices.
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	if err := c.Load(bytes.NewReader(builtinLattices)); err != nil {
		panic(err)
	}

	return c
}

// LoadFile adds the lattices defined in a YAML file.
func (c *Catalog) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open device file")
	}
	defer f.Close()

	return errors.Wrapf(c.Load(f), "load device file %s", path)
}

// Load adds the lattices defined in a YAML document. A lattice with an
// existing name replaces the old one.
func (c *Catalog) Load(r io.Reader) error {
	var file latticeFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil {
		return errors.Wrap(err, "decode lattices")
	}

	for _, l := range file.Lattices {
		if err := l.validate(); err != nil {
			return err
		}

		c.lattices[l.Name] = Builder{}.
			WithQubits(l.Qubits...).
			WithEdges(l.Edges...).
			Build(l.Name)
	}

	return nil
}

func (l latticeEntry) validate() error {
	if l.Name == "" {
		return errors.New("lattice without a name")
	}

	if strings.HasSuffix(l.Name, QVMSuffix) {
		return errors.Errorf("lattice %s: name must not end in %s", l.Name, QVMSuffix)
	}

	if len(l.Qubits) == 0 {
		return errors.Errorf("lattice %s: no qubits", l.Name)
	}

	qubits := make(map[int]bool, len(l.Qubits))
	for _, q := range l.Qubits {
		if q < 0 {
			return errors.Errorf("lattice %s: negative qubit %d", l.Name, q)
		}

		if qubits[q] {
			return errors.Errorf("lattice %s: qubit %d listed twice", l.Name, q)
		}

		qubits[q] = true
	}

	for _, e := range l.Edges {
		if !qubits[e[0]] || !qubits[e[1]] || e[0] == e[1] {
			return errors.Errorf("lattice %s: invalid edge %d-%d", l.Name, e[0], e[1])
		}
	}

	return nil
}

// Names returns the lattice names in the catalog, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.lattices))
	for name := range c.lattices {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Lookup resolves a device name. When asQVM is set, lattice names resolve to
// a simulated device even without the "-qvm" suffix.
func (c *Catalog) Lookup(name string, asQVM bool) (Device, error) {
	if m := genericQVMName.FindStringSubmatch(name); m != nil {
		if _, err := qubitCount(name, m[1]); err != nil {
			return Device{}, err
		}

		return Builder{}.AsQVM().Build(name), nil
	}

	if m := numQubitsQVM.FindStringSubmatch(name); m != nil {
		n, err := qubitCount(name, m[1])
		if err != nil {
			return Device{}, err
		}

		return Builder{}.
			WithNumQubits(n).
			WithFullConnectivity().
			AsQVM().
			Build(name), nil
	}

	lattice := strings.TrimSuffix(name, QVMSuffix)
	simulated := asQVM || lattice != name

	dev, found := c.lattices[lattice]
	if !found {
		return Device{}, errors.Wrapf(ErrUnknownDevice, "%q", name)
	}

	if !simulated {
		return Device{}, errors.Wrapf(ErrQPUUnavailable, "%q", name)
	}

	dev.Name = name
	dev.Simulated = true

	return dev, nil
}

// qubitCount parses the N of an "Nq-..." name. It must be in 1..MaxQubits.
func qubitCount(name, digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n == 0 {
		return 0, errors.Wrapf(ErrUnknownDevice, "%q", name)
	}

	if n > MaxQubits {
		return 0, errors.Wrapf(ErrUnknownDevice, "%q: more than %d qubits", name, MaxQubits)
	}

	return n, nil
}
