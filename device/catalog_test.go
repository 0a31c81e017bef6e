package device_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/qmi/device"
)

var _ = Describe("Catalog", func() {
	var c *device.Catalog

	BeforeEach(func() {
		c = device.DefaultCatalog()
	})

	It("should hold the built-in lattices", func() {
		Expect(c.Names()).To(Equal([]string{"9q-square", "Aspen-4-16Q-A"}))
	})

	It("should resolve a generic QVM without restricting qubits", func() {
		dev, err := c.Lookup("9q-generic-qvm", true)
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.Name).To(Equal("9q-generic-qvm"))
		Expect(dev.Simulated).To(BeTrue())
		Expect(dev.Generic()).To(BeTrue())
		Expect(dev.HasQubit(17)).To(BeTrue())
		Expect(dev.HasEdge(1, 16)).To(BeTrue())
	})

	It("should resolve a fully connected QVM", func() {
		dev, err := c.Lookup("4q-qvm", false)
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.Simulated).To(BeTrue())
		Expect(dev.Qubits).To(Equal([]int{0, 1, 2, 3}))
		Expect(dev.HasEdge(0, 3)).To(BeTrue())
		Expect(dev.HasQubit(4)).To(BeFalse())
	})

	DescribeTable("should reject qubit counts out of range",
		func(name string) {
			_, err := c.Lookup(name, true)
			Expect(err).To(MatchError(device.ErrUnknownDevice))
		},
		Entry("zero qubit QVM", "0q-qvm"),
		Entry("zero qubit generic QVM", "0q-generic-qvm"),
		Entry("huge QVM", "2000000000q-qvm"),
		Entry("huge generic QVM", "129q-generic-qvm"),
		Entry("overflowing count", "99999999999999999999q-qvm"),
	)

	It("should accept the largest qubit count", func() {
		dev, err := c.Lookup("128q-qvm", true)
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.Qubits).To(HaveLen(device.MaxQubits))
	})

	It("should resolve a lattice with the QVM suffix", func() {
		dev, err := c.Lookup("9q-square-qvm", false)
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.Name).To(Equal("9q-square-qvm"))
		Expect(dev.Simulated).To(BeTrue())
		Expect(dev.HasEdge(4, 1)).To(BeTrue())
		Expect(dev.HasEdge(0, 4)).To(BeFalse())
	})

	It("should resolve a lattice as a QVM on request", func() {
		dev, err := c.Lookup("Aspen-4-16Q-A", true)
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.Simulated).To(BeTrue())
		Expect(dev.HasEdge(16, 1)).To(BeTrue())
		Expect(dev.HasQubit(8)).To(BeFalse())
	})

	It("should refuse hardware access", func() {
		_, err := c.Lookup("Aspen-4-16Q-A", false)
		Expect(err).To(MatchError(device.ErrQPUUnavailable))
	})

	It("should report unknown devices", func() {
		_, err := c.Lookup("no-such-device", true)
		Expect(err).To(MatchError(device.ErrUnknownDevice))
		Expect(err.Error()).To(ContainSubstring("no-such-device"))
	})

	It("should load extra lattices from a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "devices.yaml")
		Expect(os.WriteFile(path, []byte(`
lattices:
  - name: line-3
    qubits: [0, 1, 2]
    edges: [[0, 1], [1, 2]]
`), 0o644)).To(Succeed())

		Expect(c.LoadFile(path)).To(Succeed())

		dev, err := c.Lookup("line-3-qvm", false)
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.HasEdge(2, 1)).To(BeTrue())
		Expect(dev.HasEdge(0, 2)).To(BeFalse())
	})

	DescribeTable("should reject invalid lattices",
		func(doc string) {
			Expect(c.Load(strings.NewReader(doc))).NotTo(Succeed())
		},
		Entry("no name", "lattices:\n  - qubits: [0]\n"),
		Entry("qvm suffix", "lattices:\n  - name: x-qvm\n    qubits: [0]\n"),
		Entry("no qubits", "lattices:\n  - name: x\n"),
		Entry("duplicate qubit", "lattices:\n  - name: x\n    qubits: [0, 0]\n"),
		Entry("dangling edge", "lattices:\n  - name: x\n    qubits: [0, 1]\n    edges: [[0, 2]]\n"),
		Entry("unknown field", "lattices:\n  - name: x\n    qubits: [0]\n    color: red\n"),
	)

	It("should fail on a missing file", func() {
		Expect(c.LoadFile("/does/not/exist.yaml")).NotTo(Succeed())
	})
})

var _ = Describe("Builder", func() {
	It("should sort qubits", func() {
		dev := device.Builder{}.WithQubits(3, 1, 2).Build("d")
		Expect(dev.Qubits).To(Equal([]int{1, 2, 3}))
		Expect(dev.Simulated).To(BeFalse())
		Expect(dev.String()).To(Equal("QPU(d, 3 qubits)"))
	})

	It("should never couple a qubit to itself", func() {
		dev := device.Builder{}.AsQVM().Build("g")
		Expect(dev.HasEdge(2, 2)).To(BeFalse())
		Expect(dev.String()).To(Equal("QVM(g, generic)"))
	})
})
