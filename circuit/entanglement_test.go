package circuit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/qmi/circuit"
	"github.com/sarchlab/qmi/quil"
)

var _ = Describe("Entanglement circuit", func() {
	var p *quil.Program

	BeforeEach(func() {
		p = circuit.Build()
	})

	It("should declare a 16 bit readout register", func() {
		Expect(p.Declarations()).To(Equal([]quil.Declaration{
			{Name: "ro", Type: quil.BIT, Length: 16},
		}))
	})

	It("should start with a single rotation on qubit 1", func() {
		Expect(p.Gates()[0]).To(Equal(quil.RX(math.Pi/2, 1)))
		Expect(quil.CountGates(p, "RX")).To(Equal(1))
		Expect(quil.CountGates(p, "CNOT")).To(Equal(15))
		Expect(p.Gates()).To(HaveLen(16))
	})

	It("should apply the CNOT pair list in order", func() {
		var cnots []circuit.Pair
		for _, g := range p.Gates() {
			if g.Name == "CNOT" {
				cnots = append(cnots, circuit.Pair{Control: g.Targets[0], Target: g.Targets[1]})
			}
		}

		chain := [][2]int{
			{1, 0}, {0, 7}, {7, 6}, {6, 5},
			{1, 2}, {2, 3}, {3, 4},
			{1, 16}, {16, 17}, {17, 10}, {10, 11},
			{16, 15}, {15, 14}, {14, 13}, {13, 12},
		}

		expected := make([]circuit.Pair, len(chain))
		for i, c := range chain {
			expected[i] = circuit.Pair{Control: c[0], Target: c[1]}
		}

		Expect(cnots).To(Equal(expected))
	})

	It("should connect every measured qubit", func() {
		reached := map[int]bool{circuit.Seed.Qubit: true}
		for _, pair := range circuit.EntanglingPairs {
			Expect(reached).To(HaveKey(pair.Control))
			reached[pair.Target] = true
		}

		Expect(reached).To(HaveLen(16))
		for _, q := range circuit.Qubits() {
			Expect(reached).To(HaveKey(q))
		}
	})

	It("should measure each qubit into an ascending readout bit", func() {
		ms := p.Measurements()
		Expect(ms).To(HaveLen(16))

		expectedQubits := []int{0, 1, 2, 3, 4, 5, 6, 7, 10, 11, 12, 13, 14, 15, 16, 17}
		bits := map[int]bool{}
		for i, m := range ms {
			Expect(m.Qubit).To(Equal(expectedQubits[i]))
			Expect(m.Target).NotTo(BeNil())
			Expect(m.Target.Name).To(Equal("ro"))
			Expect(m.Target.Offset).To(Equal(i))
			bits[m.Target.Offset] = true
		}
		Expect(bits).To(HaveLen(16))
	})

	It("should run for 100 shots", func() {
		Expect(p.NumShots()).To(Equal(100))
	})

	It("should put measurements after all gates", func() {
		insts := p.Instructions()
		Expect(insts).To(HaveLen(1 + 15 + 16))
		for _, inst := range insts[:16] {
			Expect(inst).To(BeAssignableToTypeOf(quil.Gate{}))
		}
		for _, inst := range insts[16:] {
			Expect(inst).To(BeAssignableToTypeOf(quil.Measurement{}))
		}
	})

	It("should build independent programs", func() {
		p.Inst(quil.X(0))
		Expect(circuit.Build().Instructions()).To(HaveLen(32))
	})
})
