package api

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/sarchlab/qmi/device"
	"github.com/sarchlab/qmi/qvm"
)

// QCBuilder acquires quantum computer handles.
type QCBuilder struct {
	catalog *device.Catalog
	qam     qvm.Client
	log     *slog.Logger
}

// WithCatalog sets the catalog device names are resolved against.
func (b QCBuilder) WithCatalog(catalog *device.Catalog) QCBuilder {
	b.catalog = catalog
	return b
}

// WithQVM sets the QVM programs run on.
func (b QCBuilder) WithQVM(qam qvm.Client) QCBuilder {
	b.qam = qam
	return b
}

// WithLogger sets the logger.
func (b QCBuilder) WithLogger(log *slog.Logger) QCBuilder {
	b.log = log
	return b
}

// Build acquires a handle for the named device. When asQVM is set, the
// device is simulated on the QVM even if its name does not say so.
func (b QCBuilder) Build(name string, asQVM bool) (QuantumComputer, error) {
	catalog := b.catalog
	if catalog == nil {
		catalog = device.DefaultCatalog()
	}

	dev, err := catalog.Lookup(name, asQVM)
	if err != nil {
		return nil, errors.Wrap(err, "get quantum computer")
	}

	qc := &qcImpl{
		device: dev,
		qam:    b.qam,
		log:    b.log,
	}

	if qc.qam == nil {
		qc.qam = qvm.ClientBuilder{}.WithLogger(b.log).Build()
	}

	if qc.log == nil {
		qc.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	qc.log.Debug("Acquired quantum computer", "device", dev.String())

	return qc, nil
}
