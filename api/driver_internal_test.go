package api

import (
	"context"
	"errors"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/qmi/circuit"
	"github.com/sarchlab/qmi/compiler"
	"github.com/sarchlab/qmi/device"
	"github.com/sarchlab/qmi/result"
)

func bitRows(shots, bits, value int) [][]int {
	rows := make([][]int, shots)
	for i := range rows {
		rows[i] = make([]int, bits)
		for j := range rows[i] {
			rows[i][j] = value
		}
	}

	return rows
}

var _ = Describe("QuantumComputer", func() {
	var (
		mockCtrl *gomock.Controller
		mockQVM  *MockClient
		qc       QuantumComputer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockQVM = NewMockClient(mockCtrl)

		var err error
		qc, err = QCBuilder{}.
			WithCatalog(device.DefaultCatalog()).
			WithQVM(mockQVM).
			Build("9q-generic-qvm", true)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should report the device name and simulation flag", func() {
		Expect(qc.Name()).To(Equal("9q-generic-qvm"))
		Expect(qc.IsSimulated()).To(BeTrue())
	})

	It("should compile and run the entanglement circuit", func() {
		exe, err := qc.Compile(circuit.Build())
		Expect(err).NotTo(HaveOccurred())

		rows := bitRows(100, 16, 1)
		mockQVM.EXPECT().
			Run(gomock.Any(), exe.Quil, 100, "ro").
			Return(rows, nil)

		m, err := qc.Run(context.Background(), exe)

		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(Equal(result.Matrix(rows)))
	})

	It("should pass QVM failures through", func() {
		exe, err := qc.Compile(circuit.Build())
		Expect(err).NotTo(HaveOccurred())

		boom := errors.New("boom")
		mockQVM.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, boom)

		_, err = qc.Run(context.Background(), exe)
		Expect(err).To(MatchError(boom))
		Expect(err.Error()).To(ContainSubstring("run on 9q-generic-qvm"))
	})

	It("should reject readout of the wrong shape", func() {
		exe, err := qc.Compile(circuit.Build())
		Expect(err).NotTo(HaveOccurred())

		mockQVM.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bitRows(99, 16, 0), nil)

		_, err = qc.Run(context.Background(), exe)
		Expect(err).To(MatchError(ContainSubstring("expected 100 shots, got 99")))
	})

	It("should reject ragged readout", func() {
		exe, err := qc.Compile(circuit.Build())
		Expect(err).NotTo(HaveOccurred())

		mockQVM.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([][]int{{0, 1}, {1}}, nil)

		_, err = qc.Run(context.Background(), exe)
		Expect(err).To(MatchError(ContainSubstring("malformed readout")))
	})

	It("should refuse executables compiled for another device", func() {
		exe := &compiler.Executable{Device: "4q-qvm", Shots: 1, Readout: "ro", ReadoutWidth: 1}

		_, err := qc.Run(context.Background(), exe)
		Expect(err).To(MatchError("executable was compiled for 4q-qvm, not 9q-generic-qvm"))
	})

	It("should surface compile errors", func() {
		lattice, err := QCBuilder{}.WithQVM(mockQVM).Build("9q-square-qvm", true)
		Expect(err).NotTo(HaveOccurred())

		_, err = lattice.Compile(circuit.Build())

		var lintErr *compiler.LintError
		Expect(errors.As(err, &lintErr)).To(BeTrue())
	})
})

var _ = Describe("QCBuilder", func() {
	It("should fail for unknown devices", func() {
		_, err := QCBuilder{}.Build("nowhere", true)
		Expect(err).To(MatchError(device.ErrUnknownDevice))
	})

	It("should fail for hardware", func() {
		_, err := QCBuilder{}.Build("Aspen-4-16Q-A", false)
		Expect(err).To(MatchError(device.ErrQPUUnavailable))
	})
})
