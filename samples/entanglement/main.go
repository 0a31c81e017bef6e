// Entanglement spreads one qubit's superposition over 16 qubits and prints
// the readout of 100 shots.
//
// Usage:
//
//	entanglement [device_name]
//
// The device name defaults to 9q-generic-qvm. Settings are read from
// $QMI_CONFIG or ~/.qmi.toml.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/tebeka/atexit"
	"github.com/urfave/cli/v2"

	"github.com/sarchlab/qmi/api"
	"github.com/sarchlab/qmi/compiler"
	"github.com/sarchlab/qmi/config"
	"github.com/sarchlab/qmi/device"
	"github.com/sarchlab/qmi/qvm"
	"github.com/sarchlab/qmi/runner"
)

// deviceName picks the device from the positional arguments.
func deviceName(args []string) (string, error) {
	switch len(args) {
	case 0:
		return runner.DefaultDevice, nil
	case 1:
		return strings.TrimSpace(args[0]), nil
	default:
		return "", errors.Errorf("expected at most one device name, got %d arguments", len(args))
	}
}

func newApp(run func(ctx context.Context, deviceName string) error) *cli.App {
	return &cli.App{
		Name:            "entanglement",
		Usage:           "entangle 16 qubits and print the readout of 100 shots",
		ArgsUsage:       "[device_name]",
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			name, err := deviceName(c.Args().Slice())
			if err != nil {
				return err
			}

			return run(c.Context, name)
		},
	}
}

func newRunner(cfg config.Config) (*runner.Runner, error) {
	log, err := config.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(log)

	catalog := device.DefaultCatalog()
	if cfg.DevicesFile != "" {
		if err := catalog.LoadFile(cfg.DevicesFile); err != nil {
			return nil, err
		}
	}

	qvmBuilder := qvm.ClientBuilder{}.
		WithURL(cfg.QVMURL).
		WithTimeout(cfg.Timeout()).
		WithLogger(log)
	if cfg.RandomSeed != 0 {
		qvmBuilder = qvmBuilder.WithSeed(cfg.RandomSeed)
	}

	qcBuilder := api.QCBuilder{}.
		WithCatalog(catalog).
		WithQVM(qvmBuilder.Build()).
		WithLogger(log)

	b := runner.Builder{}.
		WithQCBuilder(qcBuilder).
		WithStdout(os.Stdout).
		WithLogger(log)
	if cfg.Summary {
		b = b.WithSummary(os.Stderr)
	}

	config.Trace("Configured", "qvm", cfg.QVMURL, "timeout", cfg.Timeout())

	return b.Build(), nil
}

func fail(err error) {
	var lintErr *compiler.LintError
	if errors.As(err, &lintErr) {
		compiler.NewReport(lintErr).WriteReport(os.Stderr)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	atexit.Exit(1)
}

func main() {
	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		fail(err)
	}

	r, err := newRunner(cfg)
	if err != nil {
		fail(err)
	}

	if err := newApp(r.RunExperiment).RunContext(context.Background(), os.Args); err != nil {
		fail(err)
	}

	atexit.Exit(0)
}
