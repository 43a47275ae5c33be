// MIT License
//
// Copyright (c) 2025-2026 Gotell Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package messaging

import (
	"context"
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/zokli/gotell/log"
)

// registeredAgent pairs an agent with the name it was registered under.
type registeredAgent struct {
	name  string
	agent Agent
}

// System orchestrates a set of named agents: Start launches each agent's
// run loop on its own goroutine, Stop performs the cooperative shutdown
// protocol: signal Close to every agent, then join them all. Senders never
// outlive their receivers because no receiver is torn down before every run
// loop has returned.
type System struct {
	logger log.Logger
	names  mapset.Set[string]

	mu     sync.Mutex
	agents []registeredAgent
	group  *errgroup.Group

	started *atomic.Bool
	stopped *atomic.Bool

	errMu  sync.Mutex
	runErr error
}

// NewSystem creates an instance of System
func NewSystem(opts ...SystemOption) *System {
	system := &System{
		logger:  log.DefaultLogger,
		names:   mapset.NewSet[string](),
		started: atomic.NewBool(false),
		stopped: atomic.NewBool(false),
	}

	// apply the various options
	for _, opt := range opts {
		opt.Apply(system)
	}

	return system
}

// Register adds an agent under a unique name. Registration is only allowed
// before Start; duplicate names are rejected.
func (x *System) Register(name string, agent Agent) error {
	if x.started.Load() {
		return ErrSystemStarted
	}
	if name == "" {
		return ErrNameRequired
	}
	if agent == nil {
		return fmt.Errorf("agent=(%s): %w", name, ErrAgentRequired)
	}
	if !x.names.Add(name) {
		return fmt.Errorf("agent=(%s): %w", name, ErrAgentAlreadyRegistered)
	}

	x.mu.Lock()
	x.agents = append(x.agents, registeredAgent{name: name, agent: agent})
	x.mu.Unlock()
	return nil
}

// Start launches every registered agent on its own goroutine. It returns
// ErrSystemStarted when called twice.
func (x *System) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !x.started.CompareAndSwap(false, true) {
		return ErrSystemStarted
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.group = new(errgroup.Group)
	for _, entry := range x.agents {
		entry := entry
		x.group.Go(func() error {
			x.logger.Infof("agent=(%s) started", entry.name)
			if err := entry.agent.Run(); err != nil {
				err = fmt.Errorf("agent=(%s) run failed: %w", entry.name, err)
				x.recordError(err)
				x.logger.Error(err.Error())
				return err
			}
			x.logger.Infof("agent=(%s) stopped", entry.name)
			return nil
		})
	}

	x.logger.Infof("system started, agents=(%d)", len(x.agents))
	return nil
}

// Stop signals Close to every agent, newest registration first, and joins
// their goroutines. It returns the combined run errors of the agents, or the
// context error when ctx expires first (the join then finishes in the
// background). Stop before Start and repeated Stops are no-ops.
func (x *System) Stop(ctx context.Context) error {
	if !x.started.Load() {
		return nil
	}
	if !x.stopped.CompareAndSwap(false, true) {
		return nil
	}

	x.mu.Lock()
	agents := make([]registeredAgent, len(x.agents))
	copy(agents, x.agents)
	group := x.group
	x.mu.Unlock()

	x.logger.Info("system stopping...")
	for i := len(agents) - 1; i >= 0; i-- {
		agents[i].agent.Done()
	}

	joined := make(chan struct{})
	go func() {
		_ = group.Wait()
		close(joined)
	}()

	select {
	case <-joined:
		x.logger.Info("system stopped")
		return x.runError()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (x *System) recordError(err error) {
	x.errMu.Lock()
	x.runErr = multierr.Append(x.runErr, err)
	x.errMu.Unlock()
}

func (x *System) runError() error {
	x.errMu.Lock()
	defer x.errMu.Unlock()
	return x.runErr
}
