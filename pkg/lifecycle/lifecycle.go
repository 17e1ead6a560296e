/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package lifecycle

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/trustbloc/credential-agent/internal/pkg/log"
)

var logger = log.New("lifecycle")

// ErrNotStarted is returned by services used before Start completed or after Stop.
var ErrNotStarted = errors.New("service has not started")

// State of a service. Transitions only move forward: not started, starting, started, stopped.
type State uint32

const (
	StateNotStarted State = iota
	StateStarting
	StateStarted
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateStarting:
		return "starting"
	case StateStarted:
		return "started"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(s))
	}
}

type options struct {
	start func()
	stop  func()
}

// Opt sets a Lifecycle option.
type Opt func(opts *options)

// WithStart sets the function run once by Start.
func WithStart(start func()) Opt {
	return func(opts *options) {
		opts.start = start
	}
}

// WithStop sets the function run once by Stop.
func WithStop(stop func()) Opt {
	return func(opts *options) {
		opts.stop = stop
	}
}

// Lifecycle runs the start and stop hooks of a service at most once each.
type Lifecycle struct {
	name  string
	start func()
	stop  func()
	state atomic.Uint32
}

func New(name string, opts ...Opt) *Lifecycle {
	o := &options{
		start: func() {},
		stop:  func() {},
	}

	for _, fn := range opts {
		fn(o)
	}

	return &Lifecycle{
		name:  name,
		start: o.start,
		stop:  o.stop,
	}
}

// Start runs the start hook unless the service was already started.
func (l *Lifecycle) Start() {
	if !l.transition(StateNotStarted, StateStarting) {
		logger.Debug("service already started", log.WithService(l.name), log.WithState(l.State().String()))

		return
	}

	logger.Debug("starting service", log.WithService(l.name))

	l.start()

	l.state.Store(uint32(StateStarted))
}

// Stop runs the stop hook of a started service. It is a no-op in any other state.
func (l *Lifecycle) Stop() {
	if !l.transition(StateStarted, StateStopped) {
		logger.Debug("service not running", log.WithService(l.name), log.WithState(l.State().String()))

		return
	}

	logger.Debug("stopping service", log.WithService(l.name))

	l.stop()
}

func (l *Lifecycle) State() State {
	return State(l.state.Load())
}

// EnsureStarted returns ErrNotStarted unless the service is running.
func (l *Lifecycle) EnsureStarted() error {
	if s := l.State(); s != StateStarted {
		return fmt.Errorf("%s is %s: %w", l.name, s, ErrNotStarted)
	}

	return nil
}

func (l *Lifecycle) transition(from, to State) bool {
	return l.state.CompareAndSwap(uint32(from), uint32(to))
}
