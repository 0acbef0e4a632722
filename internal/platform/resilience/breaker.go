// Package resilience guards calls to flaky dependencies.
package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type Config struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

// DefaultConfig opens after three consecutive failures and probes with a
// single request after 30s.
func DefaultConfig() Config {
	return Config{Enabled: true, FailureThreshold: 3, OpenTimeout: 30 * time.Second, HalfOpenMaxReq: 1}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = d.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = d.HalfOpenMaxReq
	}
	return c
}

// Breaker fails fast while a dependency keeps failing. After OpenTimeout it
// admits up to HalfOpenMaxReq probes; all of them must succeed to close.
// A nil *Breaker admits everything.
type Breaker struct {
	cfg      Config
	now      func() time.Time
	onChange func(from, to State)

	mu        sync.Mutex
	state     State
	failures  int
	openedAt  time.Time
	inFlight  int
	succeeded int
	// gen changes on every transition. Half-open only counts completions
	// admitted in the current generation.
	gen uint64
}

// New returns nil when cfg is disabled.
func New(cfg Config) *Breaker {
	if !cfg.Enabled {
		return nil
	}
	return &Breaker{cfg: cfg.withDefaults(), now: time.Now}
}

// OnStateChange registers fn for transitions. fn runs with the breaker lock
// held and must not call back into the breaker.
func (b *Breaker) OnStateChange(fn func(from, to State)) {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Allow admits one call. The caller must invoke done exactly once with
// whether the call counted as a failure.
func (b *Breaker) Allow() (done func(failed bool), err error) {
	if b == nil {
		return func(bool) {}, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return nil, ErrCircuitOpen
		}
		b.setState(StateHalfOpen)
	}
	if b.state == StateHalfOpen {
		if b.inFlight >= b.cfg.HalfOpenMaxReq {
			return nil, ErrCircuitOpen
		}
		b.inFlight++
	}

	gen := b.gen
	var once sync.Once
	return func(failed bool) {
		once.Do(func() { b.record(failed, gen) })
	}, nil
}

// Execute runs fn through the breaker. Only errors accepted by isFailure
// count against it; a nil isFailure counts every error.
func (b *Breaker) Execute(fn func() error, isFailure func(error) bool) error {
	done, err := b.Allow()
	if err != nil {
		return err
	}
	err = fn()
	done(err != nil && (isFailure == nil || isFailure(err)))
	return err
}

func (b *Breaker) record(failed bool, gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		if !failed {
			b.failures = 0
			return
		}
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.setState(StateOpen)
		}
	case StateHalfOpen:
		if gen != b.gen {
			return
		}
		if failed {
			b.setState(StateOpen)
			return
		}
		if b.inFlight > 0 {
			b.inFlight--
		}
		b.succeeded++
		if b.succeeded >= b.cfg.HalfOpenMaxReq && b.inFlight == 0 {
			b.setState(StateClosed)
		}
	case StateOpen:
		// A call admitted before the breaker opened; a late failure extends the window.
		if failed {
			b.openedAt = b.now()
		}
	}
}

// State reports half-open once the open timeout has elapsed, even before the
// next probe moves the breaker there.
func (b *Breaker) State() State {
	if b == nil {
		return StateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) setState(to State) {
	from := b.state
	b.state = to
	b.failures, b.inFlight, b.succeeded = 0, 0, 0
	b.gen++
	if to == StateOpen {
		b.openedAt = b.now()
	}
	if b.onChange != nil && from != to {
		b.onChange(from, to)
	}
}
