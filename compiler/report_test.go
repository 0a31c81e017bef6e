package compiler_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/qmi/compiler"
)

var _ = Describe("Report", func() {
	It("should group issues by type", func() {
		lintErr := &compiler.LintError{
			Device: "9q-square-qvm",
			Issues: []compiler.Issue{
				{Type: compiler.IssueTopology, Index: 3, Message: "qubit 12 is not on the device",
					Details: map[string]interface{}{"qubit": 12, "device": "9q-square-qvm"}},
				{Type: compiler.IssueStruct, Index: -1, Message: "no readout register"},
				{Type: compiler.IssueTopology, Index: 4, Message: "qubits 1 and 5 are not coupled"},
			},
		}

		report := compiler.NewReport(lintErr)
		Expect(report.StructIssues).To(HaveLen(1))
		Expect(report.TopologyIssues).To(HaveLen(2))

		var buf bytes.Buffer
		report.WriteReport(&buf)

		out := buf.String()
		Expect(out).To(ContainSubstring("PROGRAM DOES NOT COMPILE FOR 9q-square-qvm"))
		Expect(out).To(ContainSubstring("STRUCT ISSUES (1):"))
		Expect(out).To(ContainSubstring("TOPOLOGY ISSUES (2):"))
		Expect(out).To(ContainSubstring("  no readout register\n"))
		Expect(out).To(ContainSubstring("  [#3] qubit 12 is not on the device\n" +
			"    device: 9q-square-qvm\n" +
			"    qubit: 12\n"))
		Expect(out).To(ContainSubstring("3 issues (1 STRUCT, 2 TOPOLOGY)"))
	})

	It("should omit empty sections", func() {
		var buf bytes.Buffer
		compiler.NewReport(&compiler.LintError{
			Device: "4q-qvm",
			Issues: []compiler.Issue{{Type: compiler.IssueStruct, Index: -1, Message: "bad"}},
		}).WriteReport(&buf)

		Expect(buf.String()).NotTo(ContainSubstring("TOPOLOGY ISSUES"))
	})
})
