package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/linesmerrill/report-nui/models"
	"github.com/linesmerrill/report-nui/nui"
)

// ErrStopped is returned by WaitFor once the controller's loop has exited
var ErrStopped = errors.New("session controller stopped")

// Controller owns a Session and runs it on a single goroutine. Host calls
// requested by the state machine run on their own goroutines and report
// back through the event queue, so the session has exactly one writer.
type Controller struct {
	transport nui.Transport
	session   *Session
	events    chan Event
	done      chan struct{}

	mu        sync.RWMutex
	snapshot  Snapshot
	watchers  map[chan struct{}]struct{}
	observers []func(Snapshot)
	pending   int
	settled   []chan struct{}
}

// NewController creates a controller for a closed session
func NewController(t nui.Transport) *Controller {
	s := New()
	return &Controller{
		transport: t,
		session:   s,
		events:    make(chan Event, 64),
		done:      make(chan struct{}),
		snapshot:  s.Snapshot(),
		watchers:  map[chan struct{}]struct{}{},
	}
}

// Dispatch queues an event. It reports false once the controller stopped.
func (c *Controller) Dispatch(ev Event) bool {
	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	}
}

// Snapshot returns a copy of the session as of the last processed event
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// OnChange registers fn to be called from the loop after every event
func (c *Controller) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

// Run processes events until ctx is cancelled. Call it once.
func (c *Controller) Run(ctx context.Context) error {
	defer close(c.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-c.events:
			c.handle(ctx, ev)
		}
	}
}

func (c *Controller) handle(ctx context.Context, ev Event) {
	before := c.session.View
	if _, ok := ev.(Result); ok && before != ViewSubmitting {
		zap.S().Infow("ignoring submission result outside of a submission",
			"view", before)
	}

	effects := c.session.Apply(ev)

	if after := c.session.View; after != before {
		zap.S().Debugw("overlay view changed",
			"from", before,
			"to", after,
			"event", fmt.Sprintf("%T", ev))
	}
	// calls are counted before the new view is visible to WaitFor
	for _, eff := range effects {
		c.execute(ctx, eff)
	}
	c.publish()
}

func (c *Controller) execute(ctx context.Context, eff Effect) {
	switch e := eff.(type) {
	case FetchPlayerData:
		c.spawn(func() {
			data, err := nui.RequestPlayerData(ctx, c.transport)
			if err != nil {
				zap.S().Warnw("failed to load player data", "error", err)
			}
			c.Dispatch(PlayerDataLoaded{Generation: e.Generation, Data: data, Err: err})
		})
	case FetchServerConfig:
		c.spawn(func() {
			cfg, err := nui.RequestServerConfig(ctx, c.transport)
			if err != nil {
				zap.S().Warnw("failed to load server config, using defaults", "error", err)
			}
			c.Dispatch(ServerConfigLoaded{Generation: e.Generation, Config: cfg, Err: err})
		})
	case CaptureScreenshot:
		c.spawn(func() {
			res, err := nui.RequestScreenshotUpload(ctx, c.transport)
			if err != nil {
				zap.S().Warnw("screenshot request failed", "error", err)
			}
			c.Dispatch(ScreenshotCaptured{Generation: e.Generation, FieldID: e.FieldID, Response: res, Err: err})
		})
	case SendReport:
		c.spawn(func() {
			res, err := nui.SubmitReport(ctx, c.transport, e.Report)
			if err != nil {
				zap.S().Errorw("failed to send report", "error", err)
			}
			c.Dispatch(SubmitAcknowledged{Token: e.Token, Response: res, Err: err})
		})
	case NotifyClosed:
		c.spawn(func() { nui.CloseReport(ctx, c.transport) })
	}
}

func (c *Controller) spawn(fn func()) {
	c.mu.Lock()
	c.pending++
	c.mu.Unlock()

	go func() {
		defer c.finish()
		fn()
	}()
}

func (c *Controller) finish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending--
	if c.pending == 0 {
		for _, ch := range c.settled {
			close(ch)
		}
		c.settled = nil
	}
}

// Settle waits until no host call is in flight, or ctx ends
func (c *Controller) Settle(ctx context.Context) error {
	c.mu.Lock()
	if c.pending == 0 {
		c.mu.Unlock()
		return nil
	}
	idle := make(chan struct{})
	c.settled = append(c.settled, idle)
	c.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) publish() {
	snap := c.session.Snapshot()

	c.mu.Lock()
	c.snapshot = snap
	for ch := range c.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	observers := append([]func(Snapshot){}, c.observers...)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

// WaitFor blocks until cond holds for the current snapshot, ctx ends or the
// controller stops
func (c *Controller) WaitFor(ctx context.Context, cond func(Snapshot) bool) (Snapshot, error) {
	wake := make(chan struct{}, 1)
	c.mu.Lock()
	c.watchers[wake] = struct{}{}
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.watchers, wake)
		c.mu.Unlock()
	}()

	for {
		snap := c.Snapshot()
		if cond(snap) {
			return snap, nil
		}
		select {
		case <-wake:
		case <-ctx.Done():
			return snap, ctx.Err()
		case <-c.done:
			snap = c.Snapshot()
			if cond(snap) {
				return snap, nil
			}
			return snap, ErrStopped
		}
	}
}

// Forward feeds host notifications into the controller until notes is
// closed, ctx ends or the controller stops
func (c *Controller) Forward(ctx context.Context, notes <-chan models.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-notes:
			if !ok {
				return
			}
			ev, ok := EventFor(n)
			if !ok {
				zap.S().Warnw("ignoring unsupported host notification",
					"action", n.NotificationAction())
				continue
			}
			if !c.Dispatch(ev) {
				return
			}
		}
	}
}
