package runner

import (
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/qmi/api"
)

// Builder creates runners.
type Builder struct {
	getQC      QCGetter
	stdout     io.Writer
	summary    io.Writer
	outputPath string
	log        *slog.Logger
}

// WithQCGetter sets how quantum computers are acquired.
func (b Builder) WithQCGetter(getQC QCGetter) Builder {
	b.getQC = getQC
	return b
}

// WithQCBuilder acquires quantum computers through a QCBuilder.
func (b Builder) WithQCBuilder(qcBuilder api.QCBuilder) Builder {
	b.getQC = qcBuilder.Build
	return b
}

// WithStdout sets where the greeting and readout are printed.
func (b Builder) WithStdout(w io.Writer) Builder {
	b.stdout = w
	return b
}

// WithSummary prints a bitstring histogram to w after the readout.
func (b Builder) WithSummary(w io.Writer) Builder {
	b.summary = w
	return b
}

// WithOutputPath sets the readout file.
func (b Builder) WithOutputPath(path string) Builder {
	b.outputPath = path
	return b
}

// WithLogger sets the logger.
func (b Builder) WithLogger(log *slog.Logger) Builder {
	b.log = log
	return b
}

// Build creates a runner.
func (b Builder) Build() *Runner {
	r := &Runner{
		getQC:      b.getQC,
		stdout:     b.stdout,
		summary:    b.summary,
		outputPath: b.outputPath,
		log:        b.log,
	}

	if r.getQC == nil {
		r.getQC = api.QCBuilder{}.WithLogger(b.log).Build
	}

	if r.stdout == nil {
		r.stdout = os.Stdout
	}

	if r.outputPath == "" {
		r.outputPath = OutputFile
	}

	if r.log == nil {
		r.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return r
}
