package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/core"
	"github.com/lixenwraith/rally/events"
)

// ErrClockRunning is returned by a second Start
var ErrClockRunning = errors.New("clock already running")

// InputSource yields the input snapshot for the next tick
type InputSource interface {
	Poll() component.Input
}

// Clock drives a Simulation at a fixed interval on its own goroutine
// Events are dispatched after every tick, the latest snapshot is published atomically
type Clock struct {
	sim      *Simulation
	input    InputSource
	router   *events.Router[*Simulation]
	interval time.Duration

	latest atomic.Pointer[Snapshot]
	ticks  atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

func NewClock(sim *Simulation, input InputSource, interval time.Duration) *Clock {
	c := &Clock{
		sim:      sim,
		input:    input,
		router:   events.NewRouter[*Simulation](sim.Queue()),
		interval: interval,
		stopChan: make(chan struct{}),
	}
	snap := sim.Snapshot()
	c.latest.Store(&snap)
	return c
}

// RegisterEventHandler adds a handler to the router, must be called before Start
func (c *Clock) RegisterEventHandler(h events.Handler[*Simulation]) {
	c.router.Register(h)
}

// Latest returns the snapshot published by the most recent tick
func (c *Clock) Latest() *Snapshot {
	return c.latest.Load()
}

// Ticks returns the number of loop iterations run, paused ones included
func (c *Clock) Ticks() uint64 {
	return c.ticks.Load()
}

func (c *Clock) Name() string { return "clock" }

func (c *Clock) Dependencies() []string { return nil }

// Start begins the tick loop, it ends on Stop or when ctx is cancelled
func (c *Clock) Start(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrClockRunning
	}
	c.wg.Add(1)
	core.Go(func() { c.loop(ctx) })
	return nil
}

// Stop halts the loop and waits for the current tick to finish, safe to call repeatedly
func (c *Clock) Stop() error {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
	c.wg.Wait()
	return nil
}

// Wait blocks until the loop has exited
func (c *Clock) Wait() {
	c.wg.Wait()
}

func (c *Clock) loop(ctx context.Context) {
	defer c.wg.Done()
	defer c.running.Store(false)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.Step()
		}
	}
}

// Step runs one tick synchronously, exposed for tests and single-stepping
func (c *Clock) Step() {
	c.sim.Tick(c.input.Poll())
	c.router.DispatchAll(c.sim)
	snap := c.sim.Snapshot()
	c.latest.Store(&snap)
	c.ticks.Add(1)
}
