// Package qvm is a client for the Quantum Virtual Machine HTTP API.
package qvm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// maxResponseSize bounds how much of a reply is read.
const maxResponseSize = 64 << 20

// Client runs programs on a QVM.
type Client interface {
	// Run executes the Quil program for the given number of trials and
	// returns one row per trial of the named readout register.
	Run(ctx context.Context, quil string, trials int, readout string) ([][]int, error)

	// Version returns the version string reported by the QVM.
	Version(ctx context.Context) (string, error)
}

// Error is a failure reported by the QVM.
type Error struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *Error) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("qvm returned %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("qvm returned %d (%s): %s", e.StatusCode, e.Type, e.Message)
}

type multishotRequest struct {
	Type         string          `json:"type"`
	Addresses    map[string]bool `json:"addresses"`
	Trials       int             `json:"trials"`
	CompiledQuil string          `json:"compiled-quil"`
	RNGSeed      *int64          `json:"rng-seed,omitempty"`
}

type versionRequest struct {
	Type string `json:"type"`
}

type errorReply struct {
	ErrorType string `json:"error_type"`
	Status    string `json:"status"`
}

type clientImpl struct {
	url    string
	client *resty.Client
	seed   *int64
	log    *slog.Logger
}

func (c *clientImpl) Run(
	ctx context.Context,
	quil string,
	trials int,
	readout string,
) ([][]int, error) {
	req := multishotRequest{
		Type:         "multishot",
		Addresses:    map[string]bool{readout: true},
		Trials:       trials,
		CompiledQuil: quil,
		RNGSeed:      c.seed,
	}

	c.log.Debug("QVM multishot", "url", c.url, "trials", trials, "readout", readout)

	var reply map[string][][]int

	res, err := c.request(ctx, req).
		SetResult(&reply).
		ForceContentType("application/json").
		Post(c.url)
	if err != nil {
		if res != nil && res.RawResponse != nil {
			return nil, errors.Wrap(err, "decode qvm multishot reply")
		}

		return nil, errors.Wrapf(err, "reach qvm at %s", c.url)
	}

	if res.IsError() {
		return nil, parseError(res.StatusCode(), res.Body())
	}

	rows, found := reply[readout]
	if !found {
		return nil, errors.Errorf("qvm reply has no %s register", readout)
	}

	return rows, nil
}

func (c *clientImpl) Version(ctx context.Context) (string, error) {
	res, err := c.request(ctx, versionRequest{Type: "version"}).Post(c.url)
	if err != nil {
		return "", errors.Wrapf(err, "reach qvm at %s", c.url)
	}

	if res.IsError() {
		return "", parseError(res.StatusCode(), res.Body())
	}

	return strings.TrimSpace(string(res.Body())), nil
}

func (c *clientImpl) request(ctx context.Context, payload interface{}) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json; charset=utf-8").
		SetHeader("Accept", "application/octet-stream").
		SetBody(payload)
}

func parseError(status int, body []byte) error {
	var reply errorReply
	if err := json.Unmarshal(body, &reply); err == nil && reply.Status != "" {
		return &Error{StatusCode: status, Type: reply.ErrorType, Message: reply.Status}
	}

	return &Error{StatusCode: status, Message: strings.TrimSpace(string(body))}
}

// restyLogger sends resty's own diagnostics to slog.
type restyLogger struct {
	log *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, v...))
}
